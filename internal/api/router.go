package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/stayinn/rating-gateway/docs"
	"github.com/stayinn/rating-gateway/internal/api/handler"
	"github.com/stayinn/rating-gateway/internal/api/middleware"
	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
)

// ToastQueue is both ends of the per-guest toast queue.
type ToastQueue interface {
	handler.ToastSink
	handler.ToastDrainer
}

// Dependencies are the adapters the router wires into its handlers.
type Dependencies struct {
	Accommodations ports.AccommodationLookup
	Ratings        ports.RatingSubmitter
	Attempts       ports.RatingAttemptRepository
	Drafts         ports.RatingDraftStore
	Toasts         ToastQueue
	Readiness      map[string]handler.Pinger
	JWTSecret      string
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("stayinn_gateway"))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Guest routes ---
	ratingHandler := handler.NewRatingHandler(deps.Accommodations, deps.Ratings, deps.Attempts, deps.Drafts, deps.Toasts, deps.Log)
	notificationHandler := handler.NewNotificationHandler(deps.Toasts)

	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret), middleware.RBAC(domain.RoleGuest))
	v1.GET("/accommodations/:accommodation_id/rating", ratingHandler.View)
	v1.PUT("/accommodations/:accommodation_id/rating", ratingHandler.SaveDraft)
	v1.POST("/accommodations/:accommodation_id/rating", ratingHandler.Submit)
	v1.GET("/notifications", notificationHandler.List)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
