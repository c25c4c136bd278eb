package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSearchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SearchRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  SearchRequest{Origin: "BOM", Destination: "DEL", DepartureDate: "2026-01-15"},
		},
		{
			name:    "missing origin",
			req:     SearchRequest{Destination: "DEL", DepartureDate: "2026-01-15"},
			wantErr: ErrMissingOrigin,
		},
		{
			name:    "missing destination",
			req:     SearchRequest{Origin: "BOM", DepartureDate: "2026-01-15"},
			wantErr: ErrMissingDestination,
		},
		{
			name:    "missing departure date",
			req:     SearchRequest{Origin: "BOM", Destination: "DEL"},
			wantErr: ErrMissingDepartureDate,
		},
		{
			name:    "whitespace origin",
			req:     SearchRequest{Origin: "  ", Destination: "DEL", DepartureDate: "2026-01-15"},
			wantErr: ErrMissingOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripTypeClassification(t *testing.T) {
	tests := []struct {
		name       string
		returnDate *string
		roundTrip  bool
	}{
		{name: "nil return date", returnDate: nil, roundTrip: false},
		{name: "empty return date", returnDate: strPtr(""), roundTrip: false},
		{name: "blank return date", returnDate: strPtr("   "), roundTrip: false},
		{name: "literal null", returnDate: strPtr("null"), roundTrip: false},
		{name: "real date", returnDate: strPtr("2026-01-20"), roundTrip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SearchRequest{
				Origin:        "BOM",
				Destination:   "DEL",
				DepartureDate: "2026-01-15",
				ReturnDate:    tt.returnDate,
			}
			assert.Equal(t, tt.roundTrip, req.IsRoundTrip())
			if tt.roundTrip {
				assert.Equal(t, TripTypeRoundTrip, req.TripType())
			} else {
				assert.Equal(t, TripTypeOneWay, req.TripType())
			}
		})
	}
}
