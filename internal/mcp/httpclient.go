package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meltforce/powerup/internal/models"
)

// HTTPClient implements DataSource by calling the Power Up REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func kindParams(kind models.Kind) url.Values {
	v := url.Values{}
	v.Set("kind", string(kind))
	return v
}

func (c *HTTPClient) QueryStrengthWorkouts(ctx context.Context) ([]models.StrengthWorkout, error) {
	body, err := c.get(ctx, "/api/v1/workouts", kindParams(models.KindStrength))
	if err != nil {
		return nil, err
	}

	var workouts []models.StrengthWorkout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode strength workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) QueryEnduranceWorkouts(ctx context.Context) ([]models.EnduranceWorkout, error) {
	body, err := c.get(ctx, "/api/v1/workouts", kindParams(models.KindEndurance))
	if err != nil {
		return nil, err
	}

	var workouts []models.EnduranceWorkout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode endurance workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) QueryHICWorkouts(ctx context.Context) ([]models.HICWorkout, error) {
	body, err := c.get(ctx, "/api/v1/workouts", kindParams(models.KindHIC))
	if err != nil {
		return nil, err
	}

	var workouts []models.HICWorkout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode hic workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) QueryAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	body, err := c.get(ctx, "/api/v1/workouts", nil)
	if err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return workouts, nil
}
