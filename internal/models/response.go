package models

import "encoding/json"

type SearchResult struct {
	Success       bool            `json:"success"`
	Route         string          `json:"route"`
	Date          string          `json:"date"`
	ReturnDate    *string         `json:"returnDate"`
	TripType      string          `json:"tripType"`
	Flights       []FlightResult  `json:"flights"`
	TotalResults  int             `json:"totalResults"`
	PriceInsights json.RawMessage `json:"priceInsights"`
}

type FailureResult struct {
	Success         bool   `json:"success"`
	Error           string `json:"error"`
	FallbackMessage string `json:"fallbackMessage,omitempty"`
	UpstreamError   string `json:"upstreamError,omitempty"`
}

func NewFailure(err *SearchError) FailureResult {
	return FailureResult{
		Error:           err.Message,
		FallbackMessage: err.Fallback,
		UpstreamError:   err.Upstream,
	}
}

type IntentResult struct {
	Success    bool             `json:"success"`
	Parameters IntentParameters `json:"parameters"`
	Confidence float64          `json:"confidence"`
	Model      string           `json:"model"`
}

// IntentParameters mirrors the search_flights parameter bag so a successful
// extraction can be fed straight back into /execute-tool.
type IntentParameters struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
}
