package doorloop

import "encoding/json"

// UpstreamOwner is an owner record as the DoorLoop API returns it. Only
// the fields the sync consumes are decoded.
type UpstreamOwner struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// apiEnvelope is the paginated response shape: {"data": [...], "meta": {...}}.
// Some endpoints return a bare array instead; decodePage handles both.
type apiEnvelope struct {
	Data []UpstreamOwner `json:"data"`
	Meta *apiMeta        `json:"meta"`
}

// apiMeta carries upstream pagination hints.
type apiMeta struct {
	Total   *int  `json:"total"`
	HasMore *bool `json:"hasMore"`
}

// decodePage decodes one page body, accepting either a bare array of
// owners or the {data, meta} envelope. The meta pointer is nil for the
// bare-array shape.
func decodePage(body []byte) ([]UpstreamOwner, *apiMeta, error) {
	var bare []UpstreamOwner
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil, nil
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, err
	}
	return envelope.Data, envelope.Meta, nil
}
