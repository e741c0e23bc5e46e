package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

var resWeek = mcp.NewResource("pulseplan://week", "Current week",
	mcp.WithResourceDescription("The full planner state (workouts and schedule) plus the weekly summary."),
	mcp.WithMIMEType("application/json"),
)

var resCatalog = mcp.NewResource("pulseplan://catalog", "Exercise catalog",
	mcp.WithResourceDescription("The fixed exercise library available for composing workouts."),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) weekResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	state, err := h.ds.State(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := h.ds.Summary(ctx)
	if err != nil {
		h.log.Warn("week resource: summary failed", "error", err)
	}

	data, err := json.Marshal(map[string]any{
		"workouts": state.Workouts,
		"schedule": state.Schedule,
		"summary":  summary,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog, err := h.ds.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
