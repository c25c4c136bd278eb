package models

import "strings"

const (
	TripTypeOneWay    = "one_way"
	TripTypeRoundTrip = "round_trip"
)

type SearchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(r.Destination) == "" {
		return ErrMissingDestination
	}
	if strings.TrimSpace(r.DepartureDate) == "" {
		return ErrMissingDepartureDate
	}
	return nil
}

// IsRoundTrip classifies the trip type. The literal string "null" counts as
// absent because some callers serialize a missing date that way.
func (r *SearchRequest) IsRoundTrip() bool {
	if r.ReturnDate == nil {
		return false
	}
	v := strings.TrimSpace(*r.ReturnDate)
	return v != "" && v != "null"
}

func (r *SearchRequest) TripType() string {
	if r.IsRoundTrip() {
		return TripTypeRoundTrip
	}
	return TripTypeOneWay
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
)
