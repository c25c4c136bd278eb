package intent

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dharmasatrya/flightrelay/internal/models"
	"github.com/dharmasatrya/flightrelay/pkg/logger"
	"github.com/dharmasatrya/flightrelay/pkg/metrics"
)

const fallbackGuidance = "Could not understand the travel request. Please provide origin, destination, and departure date explicitly."

type Service struct {
	generator Generator
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewService wires an intent extraction service. A nil generator means no
// model credential is configured; extractions then fail with a configuration
// envelope instead of an attempt.
func NewService(generator Generator, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		generator: generator,
		logger:    log,
		metrics:   m,
	}
}

type extractedParams struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
	Confidence    float64 `json:"confidence"`
}

// Extract turns a free-text travel query into structured search parameters
// with one bounded model call. Undecodable or incomplete model output is a
// fallback failure, not a retry.
func (s *Service) Extract(ctx context.Context, query string) (*models.IntentResult, error) {
	s.metrics.IntentRequests.Inc()

	if s.generator == nil {
		s.metrics.IntentErrors.WithLabelValues(string(models.ErrKindConfig)).Inc()
		return nil, &models.SearchError{
			Kind:     models.ErrKindConfig,
			Message:  "intent extraction is not configured: GEMINI_API_KEY is missing",
			Fallback: fallbackGuidance,
		}
	}

	prompt := BuildPrompt(query, time.Now())

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("intent generation failed", "error", err)
		s.metrics.IntentErrors.WithLabelValues(string(models.ErrKindUpstream)).Inc()
		return nil, &models.SearchError{
			Kind:     models.ErrKindUpstream,
			Message:  "intent extraction failed",
			Fallback: fallbackGuidance,
			Upstream: err.Error(),
			Err:      err,
		}
	}

	params, ok := decodeParams(text)
	if !ok || params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
		s.logger.Warn("model output missing required fields", "output_length", len(text))
		s.metrics.IntentErrors.WithLabelValues(string(models.ErrKindUpstream)).Inc()
		return nil, &models.SearchError{
			Kind:     models.ErrKindUpstream,
			Message:  "could not extract flight parameters from the query",
			Fallback: fallbackGuidance,
		}
	}

	returnDate := params.ReturnDate
	if returnDate != nil {
		v := strings.TrimSpace(*returnDate)
		if v == "" || v == "null" {
			returnDate = nil
		}
	}

	return &models.IntentResult{
		Success: true,
		Parameters: models.IntentParameters{
			Origin:        strings.ToUpper(params.Origin),
			Destination:   strings.ToUpper(params.Destination),
			DepartureDate: params.DepartureDate,
			ReturnDate:    returnDate,
		},
		Confidence: params.Confidence,
		Model:      s.generator.ModelName(),
	}, nil
}

// decodeParams pulls the first JSON object out of model text, tolerating
// code fences and surrounding prose.
func decodeParams(text string) (extractedParams, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return extractedParams{}, false
	}

	var params extractedParams
	if err := json.Unmarshal([]byte(text[start:end+1]), &params); err != nil {
		return extractedParams{}, false
	}
	return params, true
}
