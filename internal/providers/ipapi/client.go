package ipapi

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json?fields=status,message,lat,lon,city,country
const (
	baseURL = "http://ip-api.com"
)

// GeolocateAPIResponse is the raw ip-api.com geolocation payload
type GeolocateAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

type Client struct {
	httpClient *resty.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(baseURL)
}

// NewClientWithBaseURL is useful for pointing the client at a test server
func NewClientWithBaseURL(base string) *Client {
	return &Client{
		httpClient: resty.New().SetBaseURL(base),
	}
}

// Geolocate resolves the caller's public IP to approximate coordinates
func (c *Client) Geolocate(ctx context.Context) (*GeolocateAPIResponse, error) {
	var apiResp GeolocateAPIResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon,city,country").
		SetResult(&apiResp).
		Get("/json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if apiResp.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", apiResp.Message)
	}

	return &apiResp, nil
}
