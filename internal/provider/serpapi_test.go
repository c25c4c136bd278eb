package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQueryParameters(t *testing.T) {
	var captured url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"best_flights": []}`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{
		Origin:        "BOM",
		Destination:   "DEL",
		DepartureDate: "2026-01-15",
		ReturnDate:    "2026-01-20",
		RoundTrip:     true,
		Currency:      "USD",
		Locale:        "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "google_flights", captured.Get("engine"))
	assert.Equal(t, "BOM", captured.Get("departure_id"))
	assert.Equal(t, "DEL", captured.Get("arrival_id"))
	assert.Equal(t, "2026-01-15", captured.Get("outbound_date"))
	assert.Equal(t, "2026-01-20", captured.Get("return_date"))
	assert.Equal(t, "1", captured.Get("type"))
	assert.Equal(t, "USD", captured.Get("currency"))
	assert.Equal(t, "en", captured.Get("hl"))
	assert.Equal(t, "test-key", captured.Get("api_key"))
}

func TestSearchOneWayOmitsReturnDate(t *testing.T) {
	var captured url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{
		Origin:        "BOM",
		Destination:   "DEL",
		DepartureDate: "2026-01-15",
		Currency:      "USD",
		Locale:        "en",
	})
	require.NoError(t, err)

	assert.False(t, captured.Has("return_date"))
	assert.Equal(t, "2", captured.Get("type"))
}

func TestSearchDecodesItineraries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"best_flights": [{
				"flights": [{
					"airline": "IndiGo",
					"flight_number": "6E 205",
					"duration": 130,
					"departure_airport": {"id": "BOM", "name": "Mumbai", "time": "2026-01-15 08:00"},
					"arrival_airport": {"id": "DEL", "name": "Delhi", "time": "2026-01-15 10:10"}
				}],
				"total_duration": 130,
				"price": 5000
			}],
			"price_insights": {"lowest_price": 4800}
		}`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	resp, err := client.Search(context.Background(), Query{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"})
	require.NoError(t, err)
	require.Len(t, resp.BestFlights, 1)
	require.Len(t, resp.BestFlights[0].Flights, 1)

	legResp := resp.BestFlights[0].Flights[0]
	assert.Equal(t, "IndiGo", legResp.Airline)
	assert.Equal(t, "BOM", legResp.DepartureAirport.ID)
	require.NotNil(t, resp.BestFlights[0].Price)
	assert.Equal(t, float64(5000), *resp.BestFlights[0].Price)
	assert.NotEmpty(t, resp.PriceInsights)
}

func TestSearchNon2xxStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusTooManyRequests, ue.StatusCode)
	assert.Contains(t, ue.Detail, "rate limited")
}

func TestSearchErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "bad-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Invalid API key", ue.Detail)
}

func TestSearchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, ue.Detail, "malformed")
}

func TestSearchTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	client := NewSerpAPIClient(ts.URL, "test-key", 5*time.Second)

	_, err := client.Search(context.Background(), Query{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"})
	require.Error(t, err)

	var ue *UpstreamError
	assert.True(t, errors.As(err, &ue))
}
