// Package doorloop is the HTTP client for the upstream DoorLoop API, the
// source of truth for owner records.
package doorloop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/empirepm/ecc-backend/internal/config"
	"github.com/empirepm/ecc-backend/internal/domain"
)

// Client fetches owner records from the DoorLoop API.
type Client struct {
	baseURL        string
	ownersEndpoint string
	apiKey         string
	pageSize       int
	pageDelay      time.Duration
	httpClient     *http.Client
	log            *slog.Logger
}

// NewClient creates a Client from config.
func NewClient(cfg config.DoorLoopConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		ownersEndpoint: cfg.OwnersEndpoint,
		apiKey:         cfg.APIKey,
		pageSize:       cfg.PageSize,
		pageDelay:      cfg.PageDelay,
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		log:            logger.With("adapter", "doorloop"),
	}
}

// FetchOwnersIncremental returns every owner updated after since,
// paginating until a short page or an explicit no-more signal from the
// upstream. A delay separates page requests to stay polite with the
// upstream rate limit. Any non-2xx response aborts the fetch with
// domain.ErrUpstream; the caller resumes from its checkpoint next run.
func (c *Client) FetchOwnersIncremental(ctx context.Context, since time.Time) ([]UpstreamOwner, error) {
	var all []UpstreamOwner

	for page := 1; ; page++ {
		if page > 1 && c.pageDelay > 0 {
			select {
			case <-time.After(c.pageDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		owners, meta, err := c.fetchPage(ctx, page, since)
		if err != nil {
			return nil, err
		}
		all = append(all, owners...)

		c.log.DebugContext(ctx, "owners page fetched",
			slog.Int("page", page),
			slog.Int("count", len(owners)),
			slog.Int("total", len(all)),
		)

		if len(owners) < c.pageSize {
			break
		}
		if meta != nil {
			if meta.HasMore != nil && !*meta.HasMore {
				break
			}
			if meta.Total != nil && len(all) >= *meta.Total {
				break
			}
		}
	}

	return all, nil
}

// fetchPage requests a single page of owners.
func (c *Client) fetchPage(ctx context.Context, page int, since time.Time) ([]UpstreamOwner, *apiMeta, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprint(page))
	query.Set("limit", fmt.Sprint(c.pageSize))
	query.Set("updated_after", since.UTC().Format(time.RFC3339))

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, c.ownersEndpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("doorloop: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("doorloop: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.ErrorContext(ctx, "doorloop error response",
			slog.Int("status", resp.StatusCode),
			slog.Int("page", page),
		)
		return nil, nil, fmt.Errorf("doorloop: owners page %d: status %d: %w",
			page, resp.StatusCode, domain.ErrUpstream)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("doorloop: read body: %w", err)
	}

	owners, meta, err := decodePage(body)
	if err != nil {
		return nil, nil, fmt.Errorf("doorloop: decode page %d: %w", page, err)
	}
	return owners, meta, nil
}
