package models

import "encoding/json"

const (
	CategoryBest  = "best"
	CategoryOther = "other"

	// Placeholder values surfaced when the provider omits a field. Existing
	// callers match on these strings, so they must not change.
	UnknownAirline = "Unknown"
	NotAvailable   = "N/A"
)

// FlightResult is the relay's flattened view of one priced itinerary.
// Price and Duration carry the upstream numeric value when present and the
// "N/A" placeholder string when absent, hence the any type.
type FlightResult struct {
	Category         string          `json:"category"`
	Airline          string          `json:"airline"`
	FlightNumber     string          `json:"flightNumber"`
	DepartureTime    string          `json:"departureTime"`
	ArrivalTime      string          `json:"arrivalTime"`
	DepartureAirport string          `json:"departureAirport"`
	ArrivalAirport   string          `json:"arrivalAirport"`
	Duration         any             `json:"duration"`
	Price            any             `json:"price"`
	StopCount        int             `json:"stopCount"`
	IsRoundTrip      bool            `json:"isRoundTrip"`
	OutboundLeg      *LegSummary     `json:"outboundLeg,omitempty"`
	ReturnLeg        *LegSummary     `json:"returnLeg,omitempty"`
	CarbonEmissions  json.RawMessage `json:"carbonEmissions,omitempty"`
}

type LegSummary struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	Duration         any    `json:"duration"`
}
