package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/handler"
	appmw "sea-catering-backend/internal/middleware"
	"sea-catering-backend/internal/service"
)

type Server struct {
	echo                *echo.Echo
	authService         service.AuthService
	authHandler         *handler.AuthHandler
	planHandler         *handler.PlanHandler
	subscriptionHandler *handler.SubscriptionHandler
	testimonialHandler  *handler.TestimonialHandler
	adminHandler        *handler.AdminHandler
}

func NewServer(
	logger *slog.Logger,
	authService service.AuthService,
	catalogService service.CatalogService,
	subscriptionService service.SubscriptionService,
	testimonialService service.TestimonialService,
	metricsService service.MetricsService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:                e,
		authService:         authService,
		authHandler:         handler.NewAuthHandler(authService),
		planHandler:         handler.NewPlanHandler(catalogService),
		subscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		testimonialHandler:  handler.NewTestimonialHandler(testimonialService),
		adminHandler:        handler.NewAdminHandler(metricsService, subscriptionService, testimonialService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.GET("/plans", s.planHandler.List)

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.GET("/me", s.authHandler.Me, appmw.Authenticate(s.authService))

	// -------- testimonials --------
	api.POST("/testimonials", s.testimonialHandler.Create)
	api.GET("/testimonials", s.testimonialHandler.ListApproved)

	// -------- subscriptions --------
	api.GET("/subscriptions/price-preview", s.subscriptionHandler.PricePreview)

	subs := api.Group("/subscriptions", appmw.Authenticate(s.authService))
	subs.POST("", s.subscriptionHandler.Create)
	subs.GET("", s.subscriptionHandler.List)
	subs.GET("/:id", s.subscriptionHandler.Get)
	subs.POST("/:id/pause", s.subscriptionHandler.Pause)
	subs.POST("/:id/cancel", s.subscriptionHandler.Cancel)
	subs.POST("/:id/reactivate", s.subscriptionHandler.Reactivate)

	// -------- admin --------
	admin := api.Group("/admin", appmw.Authenticate(s.authService), appmw.RequireAdmin())
	admin.GET("/metrics", s.adminHandler.Metrics)
	admin.GET("/subscriptions", s.adminHandler.ListSubscriptions)
	admin.GET("/testimonials", s.adminHandler.ListTestimonials)
	admin.POST("/testimonials/:id/approve", s.adminHandler.ApproveTestimonial)
	admin.DELETE("/testimonials/:id", s.adminHandler.DeleteTestimonial)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo returns the underlying router, used by handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// httpErrorHandler maps the service error taxonomy onto HTTP statuses and a
// uniform {"error": ...} JSON body. Validation errors additionally carry a
// per-field message map.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := map[string]interface{}{"error": "internal server error"}

		var (
			validationErr apperr.ValidationError
			authErr       *apperr.AuthError
			permissionErr *apperr.PermissionError
			notFoundErr   *apperr.NotFoundError
			stateErr      *apperr.InvalidStateError
			httpErr       *echo.HTTPError
		)
		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			body = map[string]interface{}{"error": validationErr.Error(), "fields": validationErr}
		case errors.As(err, &authErr):
			status = http.StatusUnauthorized
			body["error"] = authErr.Error()
		case errors.As(err, &permissionErr):
			status = http.StatusForbidden
			body["error"] = permissionErr.Error()
		case errors.As(err, &notFoundErr):
			status = http.StatusNotFound
			body["error"] = notFoundErr.Error()
		case errors.As(err, &stateErr):
			status = http.StatusConflict
			body["error"] = stateErr.Error()
		case errors.As(err, &httpErr):
			status = httpErr.Code
			body["error"] = fmt.Sprint(httpErr.Message)
		default:
			logger.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	})
}
