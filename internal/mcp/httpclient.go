package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/pulseplan/internal/planner"
)

// HTTPClient implements DataSource by calling the PulsePlan REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but the planner
// lives on a remote server (typically reached over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey is
// sent as X-API-Key on mutating requests; it may be empty when the server
// runs without one.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("httpclient: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: read body: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, status, body)
	}
	return json.Unmarshal(body, out)
}

func (c *HTTPClient) State(ctx context.Context) (*planner.State, error) {
	var state planner.State
	if err := c.get(ctx, "/api/v1/state", &state); err != nil {
		return nil, err
	}
	state.Normalize()
	return &state, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (planner.Summary, error) {
	var summary planner.Summary
	err := c.get(ctx, "/api/v1/summary", &summary)
	return summary, err
}

func (c *HTTPClient) Catalog(ctx context.Context) ([]planner.Exercise, error) {
	var catalog []planner.Exercise
	err := c.get(ctx, "/api/v1/catalog", &catalog)
	return catalog, err
}

// idResponse is the body of successful mutation responses.
type idResponse struct {
	ID string `json:"id"`
}

func (c *HTTPClient) CreateWorkout(ctx context.Context, draft planner.WorkoutDraft) (string, bool, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/api/v1/workouts", draft)
	if err != nil {
		return "", false, err
	}
	switch status {
	case http.StatusCreated:
		var resp idResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", false, fmt.Errorf("httpclient: decode create response: %w", err)
		}
		return resp.ID, true, nil
	case http.StatusUnprocessableEntity:
		// Server-side decline mirrors the core's silent guard.
		return "", false, nil
	default:
		return "", false, fmt.Errorf("httpclient: create workout returned %d: %s", status, body)
	}
}

func (c *HTTPClient) AssignSlot(ctx context.Context, day planner.Day, workoutID string, timeOfDay planner.TimeOfDay, notes string) (string, bool, error) {
	payload := map[string]string{
		"workoutId": workoutID,
		"timeOfDay": string(timeOfDay),
		"notes":     notes,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/api/v1/schedule/"+string(day)+"/slots", payload)
	if err != nil {
		return "", false, err
	}
	switch status {
	case http.StatusCreated:
		var resp idResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", false, fmt.Errorf("httpclient: decode assign response: %w", err)
		}
		return resp.ID, true, nil
	case http.StatusUnprocessableEntity:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("httpclient: assign slot returned %d: %s", status, body)
	}
}

func (c *HTTPClient) RemoveSlot(ctx context.Context, day planner.Day, slotID string) error {
	status, body, err := c.do(ctx, http.MethodDelete, "/api/v1/schedule/"+string(day)+"/slots/"+slotID, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("httpclient: remove slot returned %d: %s", status, body)
	}
	return nil
}
