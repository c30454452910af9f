package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tripgenie/tripgenie-api/internal/types"
)

// Client talks to the itinerary-generation backend. All trip intelligence
// (activities, pricing, weather, hotels, routes) lives behind that service;
// this client issues one request and awaits one response, no retries.
type Client interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.Itinerary, error)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type backendError struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) GenerateItinerary(ctx context.Context, tripReq types.TripRequest) (*types.Itinerary, error) {
	body, err := json.Marshal(tripReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trip request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/trip/generate-itinerary", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var backendErr backendError
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&backendErr); decodeErr == nil && backendErr.Detail != "" {
			return nil, fmt.Errorf("%w: %s (status %d)", types.ErrUpstream, backendErr.Detail, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d", types.ErrUpstream, resp.StatusCode)
	}

	var itinerary types.Itinerary
	if err := json.NewDecoder(resp.Body).Decode(&itinerary); err != nil {
		return nil, fmt.Errorf("%w: failed to decode itinerary: %w", types.ErrUpstream, err)
	}
	return &itinerary, nil
}
