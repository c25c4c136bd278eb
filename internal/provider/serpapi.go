package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://serpapi.com/search.json"

	engineGoogleFlights = "google_flights"

	// Provider-side trip type flags.
	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"
)

var _ Client = (*SerpAPIClient)(nil)

type SerpAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewSerpAPIClient(baseURL, apiKey string, timeout time.Duration) *SerpAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SerpAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SerpAPIClient) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := u.Query()
	params.Set("engine", engineGoogleFlights)
	params.Set("departure_id", q.Origin)
	params.Set("arrival_id", q.Destination)
	params.Set("outbound_date", q.DepartureDate)
	if q.RoundTrip {
		params.Set("return_date", q.ReturnDate)
		params.Set("type", tripTypeRoundTrip)
	} else {
		params.Set("type", tripTypeOneWay)
	}
	params.Set("currency", q.Currency)
	params.Set("hl", q.Locale)
	params.Set("api_key", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     "malformed response body",
			Err:        err,
		}
	}

	// The provider reports API-level failures in a 200 body.
	if result.Error != "" {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     result.Error,
		}
	}

	return &result, nil
}
