package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/powerup/internal/catalog"
	"github.com/meltforce/powerup/internal/views"
)

func (h *handlers) trainingVaultResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(catalog.Vault())
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

func (h *handlers) workoutSummaryResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	strength, err := h.ds.QueryStrengthWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	endurance, err := h.ds.QueryEnduranceWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	hic, err := h.ds.QueryHICWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(views.Summarize(time.Now(), strength, endurance, hic))
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
