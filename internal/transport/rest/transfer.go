package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
	"github.com/empirepm/ecc-backend/internal/service/transfer"
	"github.com/empirepm/ecc-backend/pkg/ctxutil"
)

// transferService defines the minimal interface needed by TransferHandler.
type transferService interface {
	Initiate(ctx context.Context, input transfer.InitiateInput) (*transfer.InitiateResult, error)
	Submit(ctx context.Context, id uuid.UUID) error
	ApproveAccounting(ctx context.Context, id uuid.UUID) error
	Authorize(ctx context.Context, id uuid.UUID) error
	Execute(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, reason string) error
	Get(ctx context.Context, id uuid.UUID) (*transfer.GetResult, error)
	AddAudit(ctx context.Context, id uuid.UUID, input transfer.AddAuditInput) (*domain.AuditEvent, error)
}

// TransferHandler serves the owner-transfer REST endpoints.
type TransferHandler struct {
	svc transferService
	log *slog.Logger
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(svc transferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{svc: svc, log: logger.With("handler", "transfer")}
}

type initiateRequest struct {
	OldOwnerID    uuid.UUID   `json:"old_owner_id"`
	NewOwnerID    uuid.UUID   `json:"new_owner_id"`
	PropertyIDs   []uuid.UUID `json:"property_ids"`
	EffectiveDate string      `json:"effective_date"`
	Notes         *string     `json:"notes"`
	InitiatedBy   *string     `json:"initiated_by"`
	Draft         bool        `json:"draft"`
}

type initiateResponse struct {
	TransferID uuid.UUID `json:"transfer_id"`
	Status     string    `json:"status"`
}

// transferIDRequest is the body of the admin forwarding endpoints. Reason
// is only read by the fail endpoint.
type transferIDRequest struct {
	TransferID uuid.UUID `json:"transfer_id"`
	Reason     string    `json:"reason"`
}

type addAuditRequest struct {
	Action string  `json:"action"`
	Actor  *string `json:"actor"`
	Detail *string `json:"detail"`
}

type transferResponse struct {
	ID            uuid.UUID   `json:"id"`
	OldOwnerID    uuid.UUID   `json:"old_owner_id"`
	NewOwnerID    uuid.UUID   `json:"new_owner_id"`
	PropertyIDs   []uuid.UUID `json:"property_ids"`
	EffectiveDate string      `json:"effective_date"`
	Status        string      `json:"status"`
	Notes         *string     `json:"notes,omitempty"`
	InitiatedBy   *string     `json:"initiated_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	ExecutedAt    *time.Time  `json:"executed_at,omitempty"`
}

type auditEventResponse struct {
	ID        uuid.UUID      `json:"id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Label     *string        `json:"label,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type getResponse struct {
	Transfer transferResponse     `json:"transfer"`
	Audit    []auditEventResponse `json:"audit"`
}

// Initiate handles POST /api/owner-transfer/initiate.
func (h *TransferHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "effective_date must be YYYY-MM-DD")
		return
	}

	result, err := h.svc.Initiate(r.Context(), transfer.InitiateInput{
		OldOwnerID:    req.OldOwnerID,
		NewOwnerID:    req.NewOwnerID,
		PropertyIDs:   req.PropertyIDs,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
		InitiatedBy:   req.InitiatedBy,
		Draft:         req.Draft,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, initiateResponse{
		TransferID: result.TransferID,
		Status:     result.Status.String(),
	})
}

// Get handles GET /api/owner-transfer/{id}.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := getResponse{
		Transfer: toTransferResponse(result.Transfer),
		Audit:    make([]auditEventResponse, 0, len(result.Audit)),
	}
	for _, event := range result.Audit {
		resp.Audit = append(resp.Audit, auditEventResponse{
			ID:        event.ID,
			EventType: event.EventType,
			Payload:   event.Payload,
			Label:     event.Label,
			CreatedAt: event.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /api/owner-transfer/{id}/submit.
func (h *TransferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Submit(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddAudit handles POST /api/owner-transfer/{id}/audit.
func (h *TransferHandler) AddAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req addAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	event, err := h.svc.AddAudit(r.Context(), id, transfer.AddAuditInput{
		Action: req.Action,
		Actor:  req.Actor,
		Detail: req.Detail,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, auditEventResponse{
		ID:        event.ID,
		EventType: event.EventType,
		Payload:   event.Payload,
		Label:     event.Label,
		CreatedAt: event.CreatedAt,
	})
}

// Approve handles POST /bff/owners/approvetransfer.
func (h *TransferHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, req transferIDRequest) error {
		return h.svc.ApproveAccounting(ctx, req.TransferID)
	})
}

// Authorize handles POST /bff/owners/authorizetransfer.
func (h *TransferHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, req transferIDRequest) error {
		return h.svc.Authorize(ctx, req.TransferID)
	})
}

// Execute handles POST /bff/owners/executetransfer.
func (h *TransferHandler) Execute(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, req transferIDRequest) error {
		return h.svc.Execute(ctx, req.TransferID)
	})
}

// Fail handles POST /bff/owners/failtransfer.
func (h *TransferHandler) Fail(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, req transferIDRequest) error {
		return h.svc.Fail(ctx, req.TransferID, req.Reason)
	})
}

// forward decodes the shared admin request body, runs op, and writes the
// uniform response. The acting operator, when known, is logged.
func (h *TransferHandler) forward(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, req transferIDRequest) error) {
	var req transferIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.TransferID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "validation_error", "transfer_id is required")
		return
	}

	if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok {
		h.log.InfoContext(r.Context(), "admin transfer action",
			slog.String("transfer_id", req.TransferID.String()),
			slog.String("actor", actor),
		)
	}

	if err := op(r.Context(), req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "transfer_id": req.TransferID.String()})
}

func toTransferResponse(t domain.Transfer) transferResponse {
	return transferResponse{
		ID:            t.ID,
		OldOwnerID:    t.OldOwnerID,
		NewOwnerID:    t.NewOwnerID,
		PropertyIDs:   t.PropertyIDs,
		EffectiveDate: t.EffectiveDate.Format("2006-01-02"),
		Status:        t.Status.String(),
		Notes:         t.Notes,
		InitiatedBy:   t.InitiatedBy,
		CreatedAt:     t.CreatedAt,
		ExecutedAt:    t.ExecutedAt,
	}
}

// pathID parses the {id} path segment as a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid transfer id")
		return uuid.Nil, false
	}
	return id, true
}
