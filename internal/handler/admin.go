package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/service"
)

type AdminHandler struct {
	metricsService      service.MetricsService
	subscriptionService service.SubscriptionService
	testimonialService  service.TestimonialService
}

func NewAdminHandler(
	metricsService service.MetricsService,
	subscriptionService service.SubscriptionService,
	testimonialService service.TestimonialService,
) *AdminHandler {
	return &AdminHandler{
		metricsService:      metricsService,
		subscriptionService: subscriptionService,
		testimonialService:  testimonialService,
	}
}

// Metrics serves the dashboard numbers. Missing range bounds default to the
// current calendar month, which is what the dashboard opens on.
func (h *AdminHandler) Metrics(c echo.Context) error {
	ctx := c.Request().Context()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	verr := apperr.NewValidation()
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			verr.Add("from", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
		} else {
			from = parsed
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			verr.Add("to", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
		} else {
			to = parsed
		}
	}
	if len(verr) == 0 && to.Before(from) {
		verr.Add("to", "must not be before from")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	metrics, err := h.metricsService.Range(ctx, from, to)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"metrics": metrics,
	})
}

func (h *AdminHandler) ListSubscriptions(c echo.Context) error {
	ctx := c.Request().Context()

	subs, err := h.subscriptionService.ListAll(ctx, model.SubscriptionStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscriptions": subs,
	})
}

func (h *AdminHandler) ListTestimonials(c echo.Context) error {
	ctx := c.Request().Context()

	testimonials, err := h.testimonialService.ListAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
	})
}

func (h *AdminHandler) ApproveTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.testimonialService.Approve(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

func (h *AdminHandler) DeleteTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.testimonialService.Delete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
