package transform

import (
	"sort"
	"strings"

	"github.com/dharmasatrya/flightrelay/internal/models"
	"github.com/dharmasatrya/flightrelay/internal/provider"
)

// maxOtherResults caps how many itineraries from the provider's "other"
// list are surfaced. Deliberate result-size bound, applied before sorting.
const maxOtherResults = 5

// Flatten maps the provider's nested itinerary/leg response into the relay's
// flat result records. Every "best" itinerary is kept; "other" itineraries
// are capped at maxOtherResults. Itineraries with no legs are skipped.
func Flatten(resp *provider.SearchResponse, origin, destination string, roundTrip bool) []models.FlightResult {
	results := make([]models.FlightResult, 0, len(resp.BestFlights)+maxOtherResults)

	for _, it := range resp.BestFlights {
		if r, ok := flatten(it, models.CategoryBest, origin, destination, roundTrip); ok {
			results = append(results, r)
		}
	}

	for i, it := range resp.OtherFlights {
		if i >= maxOtherResults {
			break
		}
		if r, ok := flatten(it, models.CategoryOther, origin, destination, roundTrip); ok {
			results = append(results, r)
		}
	}

	return results
}

func flatten(it provider.Itinerary, category, origin, destination string, roundTrip bool) (models.FlightResult, bool) {
	legs := it.Flights
	if len(legs) == 0 {
		return models.FlightResult{}, false
	}

	if roundTrip {
		return flattenRoundTrip(it, category, origin, destination), true
	}

	leg := legs[0]
	return models.FlightResult{
		Category:         category,
		Airline:          airlineOrUnknown(leg.Airline),
		FlightNumber:     textOrNA(leg.FlightNumber),
		DepartureTime:    endpointTime(leg.DepartureAirport),
		ArrivalTime:      endpointTime(leg.ArrivalAirport),
		DepartureAirport: endpointID(leg.DepartureAirport),
		ArrivalAirport:   endpointID(leg.ArrivalAirport),
		Duration:         durationOrNA(leg.Duration),
		Price:            priceOrNA(it.Price),
		StopCount:        len(legs) - 1,
		IsRoundTrip:      false,
		CarbonEmissions:  it.CarbonEmissions,
	}, true
}

func flattenRoundTrip(it provider.Itinerary, category, origin, destination string) models.FlightResult {
	legs := it.Flights
	outbound := legs[findOutboundLeg(legs, origin)]
	returnLeg := legs[findReturnLeg(legs, origin, destination)]

	return models.FlightResult{
		Category:         category,
		Airline:          airlineOrUnknown(outbound.Airline),
		FlightNumber:     textOrNA(outbound.FlightNumber),
		DepartureTime:    endpointTime(outbound.DepartureAirport),
		ArrivalTime:      endpointTime(outbound.ArrivalAirport),
		DepartureAirport: endpointID(outbound.DepartureAirport),
		ArrivalAirport:   endpointID(outbound.ArrivalAirport),
		Duration:         durationOrNA(it.TotalDuration),
		Price:            priceOrNA(it.Price),
		// Undercounts when either directional leg has its own connections.
		// Known approximation, kept for output compatibility.
		StopCount:       len(legs) - 2,
		IsRoundTrip:     true,
		OutboundLeg:     legSummary(outbound),
		ReturnLeg:       legSummary(returnLeg),
		CarbonEmissions: it.CarbonEmissions,
	}
}

// findOutboundLeg picks the leg departing from the requested origin,
// falling back to the first leg.
func findOutboundLeg(legs []provider.Leg, origin string) int {
	for i, leg := range legs {
		if matchesAirport(leg.DepartureAirport, origin) {
			return i
		}
	}
	return 0
}

// findReturnLeg picks the first leg after index zero that departs from the
// destination or arrives back at the origin, falling back to the last leg.
// Unusual orderings (multi-city) can mis-assign; known limitation.
func findReturnLeg(legs []provider.Leg, origin, destination string) int {
	for i := 1; i < len(legs); i++ {
		if matchesAirport(legs[i].DepartureAirport, destination) ||
			matchesAirport(legs[i].ArrivalAirport, origin) {
			return i
		}
	}
	return len(legs) - 1
}

func matchesAirport(e *provider.Endpoint, code string) bool {
	return e != nil && strings.EqualFold(e.ID, code)
}

func legSummary(leg provider.Leg) *models.LegSummary {
	return &models.LegSummary{
		Airline:          airlineOrUnknown(leg.Airline),
		FlightNumber:     textOrNA(leg.FlightNumber),
		DepartureTime:    endpointTime(leg.DepartureAirport),
		ArrivalTime:      endpointTime(leg.ArrivalAirport),
		DepartureAirport: endpointID(leg.DepartureAirport),
		ArrivalAirport:   endpointID(leg.ArrivalAirport),
		Duration:         durationOrNA(leg.Duration),
	}
}

func airlineOrUnknown(s string) string {
	if s == "" {
		return models.UnknownAirline
	}
	return s
}

func textOrNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}

func endpointTime(e *provider.Endpoint) string {
	if e == nil {
		return models.NotAvailable
	}
	return textOrNA(e.Time)
}

func endpointID(e *provider.Endpoint) string {
	if e == nil {
		return models.NotAvailable
	}
	return textOrNA(e.ID)
}

func durationOrNA(d *int) any {
	if d == nil {
		return models.NotAvailable
	}
	return *d
}

func priceOrNA(p *float64) any {
	if p == nil {
		return models.NotAvailable
	}
	return *p
}

// SortByPrice orders results ascending by price, stable, with entries
// lacking a numeric price last.
func SortByPrice(results []models.FlightResult) {
	sort.SliceStable(results, func(i, j int) bool {
		pi, iok := numericPrice(results[i].Price)
		pj, jok := numericPrice(results[j].Price)
		if iok && jok {
			return pi < pj
		}
		return iok && !jok
	})
}

func numericPrice(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, true
	case int:
		return float64(p), true
	default:
		return 0, false
	}
}
