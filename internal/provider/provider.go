package provider

import "context"

// Query is the relay's vocabulary for one upstream search. Trip type and
// dates are already resolved by the caller; the client only maps fields to
// the provider's query parameters.
type Query struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	RoundTrip     bool
	Currency      string
	Locale        string
}

type Client interface {
	Search(ctx context.Context, q Query) (*SearchResponse, error)
}

type UpstreamError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return "upstream search failed: " + e.Err.Error()
	}
	return "upstream search failed: " + e.Detail
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
