// Package backend is the HTTP client for the transcription backend's API,
// the transcript provider feeding the topic engine.
package backend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// apiError mirrors the backend's error envelope; detail messages are in
// Swedish and shown to the user as-is.
type apiError struct {
	Detail string `json:"detail"`
}

// Client fetches transcripts from a running backend instance.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: http}
}

// Transcript fetches the transcript export for a completed job. The backend
// rejects jobs that are not completed yet; that surfaces as an error with
// the backend's own detail message.
func (c *Client) Transcript(ctx context.Context, jobID string) (*transcript.Transcript, error) {
	var (
		tr     transcript.Transcript
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tr).
		SetError(&apiErr).
		Get(fmt.Sprintf("/api/v1/jobs/%s/transcript", jobID))
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}
	if resp.IsError() {
		if apiErr.Detail != "" {
			return nil, fmt.Errorf("backend: %s (status %d)", apiErr.Detail, resp.StatusCode())
		}
		return nil, fmt.Errorf("backend: status %d", resp.StatusCode())
	}
	sort.Slice(tr.Segments, func(i, j int) bool {
		return tr.Segments[i].Index < tr.Segments[j].Index
	})
	return &tr, nil
}
