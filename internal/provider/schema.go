package provider

import "encoding/json"

// Upstream response shapes, decoded leniently: every field the relay reads
// is optional and defaults are applied downstream, not here.

type SearchResponse struct {
	BestFlights   []Itinerary     `json:"best_flights"`
	OtherFlights  []Itinerary     `json:"other_flights"`
	PriceInsights json.RawMessage `json:"price_insights,omitempty"`
	Error         string          `json:"error,omitempty"`
}

type Itinerary struct {
	Flights         []Leg           `json:"flights"`
	TotalDuration   *int            `json:"total_duration,omitempty"`
	Price           *float64        `json:"price,omitempty"`
	CarbonEmissions json.RawMessage `json:"carbon_emissions,omitempty"`
}

type Leg struct {
	DepartureAirport *Endpoint `json:"departure_airport,omitempty"`
	ArrivalAirport   *Endpoint `json:"arrival_airport,omitempty"`
	Duration         *int      `json:"duration,omitempty"`
	Airline          string    `json:"airline,omitempty"`
	FlightNumber     string    `json:"flight_number,omitempty"`
}

type Endpoint struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
	Time string `json:"time,omitempty"`
}
