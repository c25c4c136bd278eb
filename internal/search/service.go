package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dharmasatrya/flightrelay/internal/models"
	"github.com/dharmasatrya/flightrelay/internal/provider"
	"github.com/dharmasatrya/flightrelay/internal/transform"
	"github.com/dharmasatrya/flightrelay/pkg/logger"
	"github.com/dharmasatrya/flightrelay/pkg/metrics"
)

type Config struct {
	APIKey   string
	Currency string
	Locale   string
	Timeout  time.Duration
}

type Service struct {
	client  provider.Client
	config  Config
	logger  logger.Logger
	metrics *metrics.Metrics
}

func NewService(client provider.Client, config Config, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		config:  config,
		logger:  log,
		metrics: m,
	}
}

// Search runs the whole relay flow: validate, check configuration, call the
// provider once, flatten, sort, wrap. Failures come back as *models.SearchError;
// nothing is retried.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	s.metrics.SearchesTotal.Inc()

	if err := req.Validate(); err != nil {
		s.metrics.SearchErrors.WithLabelValues(string(models.ErrKindValidation)).Inc()
		return nil, &models.SearchError{
			Kind:    models.ErrKindValidation,
			Message: err.Error(),
			Err:     err,
		}
	}

	if s.config.APIKey == "" {
		s.logger.Warn("search rejected, provider credential not configured")
		s.metrics.SearchErrors.WithLabelValues(string(models.ErrKindConfig)).Inc()
		return nil, &models.SearchError{
			Kind:     models.ErrKindConfig,
			Message:  "flight search is not configured: SERPAPI_KEY is missing",
			Fallback: fallbackMessage(req),
		}
	}

	roundTrip := req.IsRoundTrip()
	query := provider.Query{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		RoundTrip:     roundTrip,
		Currency:      s.config.Currency,
		Locale:        s.config.Locale,
	}
	if roundTrip {
		query.ReturnDate = *req.ReturnDate
	}

	searchCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Search(searchCtx, query)
	s.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.logger.Error("upstream search failed",
			"origin", req.Origin,
			"destination", req.Destination,
			"error", err,
		)
		s.metrics.SearchErrors.WithLabelValues(string(models.ErrKindUpstream)).Inc()
		return nil, &models.SearchError{
			Kind:     models.ErrKindUpstream,
			Message:  "flight search failed",
			Fallback: fallbackMessage(req),
			Upstream: upstreamDetail(err),
			Err:      err,
		}
	}

	flights := transform.Flatten(resp, req.Origin, req.Destination, roundTrip)
	transform.SortByPrice(flights)

	s.logger.Info("search completed",
		"origin", req.Origin,
		"destination", req.Destination,
		"trip_type", req.TripType(),
		"results", len(flights),
	)

	result := &models.SearchResult{
		Success:       true,
		Route:         req.Origin + " to " + req.Destination,
		Date:          req.DepartureDate,
		TripType:      req.TripType(),
		Flights:       flights,
		TotalResults:  len(flights),
		PriceInsights: resp.PriceInsights,
	}
	if roundTrip {
		result.ReturnDate = req.ReturnDate
	}

	return result, nil
}

func fallbackMessage(req models.SearchRequest) string {
	return fmt.Sprintf("Could not complete the flight search from %s to %s on %s. Please try again in a moment.",
		req.Origin, req.Destination, req.DepartureDate)
}

func upstreamDetail(err error) string {
	var ue *provider.UpstreamError
	if errors.As(err, &ue) && ue.Detail != "" {
		return ue.Detail
	}
	return err.Error()
}
