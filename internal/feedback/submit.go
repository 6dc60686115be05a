package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Submitter delivers an accepted submission to an analytics endpoint.
type Submitter interface {
	Submit(ctx context.Context, sessionID string, sub Submission) error
}

// HTTPSubmitter posts submissions as JSON to a configured endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter creates a submitter for the given endpoint URL.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type submitPayload struct {
	SessionID string  `json:"session_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// Submit posts the submission. Any non-2xx response is an error.
func (h *HTTPSubmitter) Submit(ctx context.Context, sessionID string, sub Submission) error {
	body, err := json.Marshal(submitPayload{
		SessionID: sessionID,
		Rating:    sub.Rating,
		Comment:   sub.Comment,
	})
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post feedback: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("feedback endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// NopSubmitter accepts every submission without delivering it anywhere.
// Used when no analytics endpoint is configured.
type NopSubmitter struct{}

func (NopSubmitter) Submit(ctx context.Context, sessionID string, sub Submission) error {
	return nil
}
