package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dharmasatrya/flightrelay/internal/config"
	"github.com/dharmasatrya/flightrelay/internal/handler"
	"github.com/dharmasatrya/flightrelay/internal/intent"
	"github.com/dharmasatrya/flightrelay/internal/provider"
	"github.com/dharmasatrya/flightrelay/internal/search"
	"github.com/dharmasatrya/flightrelay/pkg/logger"
	"github.com/dharmasatrya/flightrelay/pkg/metrics"
)

func main() {
	cfg := config.Load()
	log := logger.New()
	m := metrics.New(prometheus.DefaultRegisterer)

	if cfg.SerpAPIKey == "" {
		log.Warn("SERPAPI_KEY is not set, flight searches will fail until configured")
	}

	serpClient := provider.NewSerpAPIClient(cfg.SerpAPIBaseURL, cfg.SerpAPIKey, cfg.UpstreamTimeout)
	searchService := search.NewService(serpClient, search.Config{
		APIKey:   cfg.SerpAPIKey,
		Currency: cfg.SearchCurrency,
		Locale:   cfg.SearchLocale,
		Timeout:  cfg.UpstreamTimeout,
	}, log, m)

	var generator intent.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := intent.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("failed to initialize Gemini client", "error", err)
		}
		defer gemini.Close()
		generator = gemini
		log.Info("intent extraction enabled", "model", cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY is not set, intent extraction disabled")
	}
	intentService := intent.NewService(generator, log, m)

	h := handler.New(searchService, intentService, log, cfg.AppVersion, cfg.Port, cfg.SerpAPIKey != "")

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = h.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Info("starting flight search relay", "port", cfg.Port, "version", cfg.AppVersion)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
