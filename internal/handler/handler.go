package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightrelay/internal/models"
	"github.com/dharmasatrya/flightrelay/pkg/logger"
)

const (
	ServiceName = "flight-search-relay"

	ToolSearchFlights = "search_flights"
)

var availableRoutes = []string{
	"GET /",
	"GET /health",
	"POST /execute-tool",
	"POST /extract-intent",
}

type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
}

type Extractor interface {
	Extract(ctx context.Context, query string) (*models.IntentResult, error)
}

type Handler struct {
	searcher  Searcher
	extractor Extractor
	logger    logger.Logger
	version   string
	port      string
	hasAPIKey bool
}

func New(searcher Searcher, extractor Extractor, log logger.Logger, version, port string, hasAPIKey bool) *Handler {
	return &Handler{
		searcher:  searcher,
		extractor: extractor,
		logger:    log,
		version:   version,
		port:      port,
		hasAPIKey: hasAPIKey,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/execute-tool", h.ExecuteTool)
	e.POST("/extract-intent", h.ExtractIntent)
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": ServiceName,
		"status":  "running",
		"version": h.version,
		"port":    h.port,
		"endpoints": map[string]string{
			"GET /":                "service info",
			"GET /health":          "health check",
			"POST /execute-tool":   "execute a tool ({tool, parameters})",
			"POST /extract-intent": "extract search parameters from a travel query",
		},
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":           "ok",
		"timestamp":        time.Now().Format(time.RFC3339),
		"apiKeyConfigured": h.hasAPIKey,
	})
}

type toolRequest struct {
	Tool       string          `json:"tool"`
	Parameters json.RawMessage `json:"parameters"`
}

func (h *Handler) ExecuteTool(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.FailureResult{
			Error: "Failed to read request body",
		})
	}

	var req toolRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.JSON(http.StatusBadRequest, models.FailureResult{
			Error: "Invalid request: body must be a JSON object",
		})
	}

	if req.Tool == "" || len(req.Parameters) == 0 || string(req.Parameters) == "null" {
		// Echo the offending body back so callers can see what was sent.
		var received any
		_ = json.Unmarshal(body, &received)
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success":  false,
			"error":    "Invalid request: expected {tool, parameters}",
			"received": received,
		})
	}

	if req.Tool != ToolSearchFlights {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success":        false,
			"error":          "Unknown tool: " + req.Tool,
			"availableTools": []string{ToolSearchFlights},
		})
	}

	var params models.SearchRequest
	if err := json.Unmarshal(req.Parameters, &params); err != nil {
		return c.JSON(http.StatusBadRequest, models.FailureResult{
			Error: "Invalid parameters: " + err.Error(),
		})
	}

	result, err := h.searcher.Search(c.Request().Context(), params)
	if err != nil {
		return h.respondFailure(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

type intentRequest struct {
	Query string `json:"query"`
}

func (h *Handler) ExtractIntent(c echo.Context) error {
	var req intentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.FailureResult{
			Error: "Invalid request: body must be a JSON object",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, models.FailureResult{
			Error: "query is required",
		})
	}

	result, err := h.extractor.Extract(c.Request().Context(), req.Query)
	if err != nil {
		return h.respondFailure(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// respondFailure maps a search error onto the failure envelope. Validation
// problems are the caller's fault (400); configuration and upstream failures
// are reported in a 200 envelope since the relay itself answered fine.
func (h *Handler) respondFailure(c echo.Context, err error) error {
	var serr *models.SearchError
	if errors.As(err, &serr) {
		status := http.StatusOK
		if serr.Kind == models.ErrKindValidation {
			status = http.StatusBadRequest
		}
		return c.JSON(status, models.NewFailure(serr))
	}

	h.logger.Error("unexpected failure", "error", err)
	return c.JSON(http.StatusInternalServerError, models.FailureResult{
		Error: "Internal server error",
	})
}

// HTTPErrorHandler keeps every error response a structured JSON envelope.
// Unknown routes (and method mismatches) get the 404 route envelope; anything
// else is a generic 500 with no internals leaked.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
		_ = c.JSON(http.StatusNotFound, map[string]any{
			"success":         false,
			"error":           fmt.Sprintf("Route not found: %s %s", c.Request().Method, c.Request().URL.Path),
			"availableRoutes": availableRoutes,
		})
		return
	}

	h.logger.Error("unhandled error", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	_ = c.JSON(http.StatusInternalServerError, models.FailureResult{
		Error: "Internal server error",
	})
}
