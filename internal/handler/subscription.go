package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/middleware"
	"sea-catering-backend/internal/service"
)

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sub, err := h.subscriptionService.Create(ctx, middleware.Caller(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	subs, err := h.subscriptionService.ListByUser(ctx, middleware.Caller(c), c.QueryParam("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscriptions": subs,
	})
}

func (h *SubscriptionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	sub, err := h.subscriptionService.Get(ctx, middleware.Caller(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) Pause(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PauseSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pauseUntil, err := time.Parse(time.RFC3339, req.PauseUntil)
	if err != nil {
		verr := apperr.NewValidation()
		verr.Add("pauseUntil", "must be a valid RFC 3339 date")
		return verr
	}

	sub, err := h.subscriptionService.Pause(ctx, middleware.Caller(c), c.Param("id"), pauseUntil)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()

	sub, err := h.subscriptionService.Cancel(ctx, middleware.Caller(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) Reactivate(c echo.Context) error {
	ctx := c.Request().Context()

	sub, err := h.subscriptionService.Reactivate(ctx, middleware.Caller(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}

// PricePreview serves the live total on the checkout form. Incomplete or
// unknown selections price to 0 rather than erroring so the form can poll it
// as the user fills fields in.
func (h *SubscriptionHandler) PricePreview(c echo.Context) error {
	ctx := c.Request().Context()

	mealTypes := intQueryParam(c, "mealTypes")
	deliveryDays := intQueryParam(c, "deliveryDays")

	total, err := h.subscriptionService.PreviewPrice(ctx, c.QueryParam("plan"), mealTypes, deliveryDays)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PricePreviewResponse{TotalPrice: total})
}

func intQueryParam(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
