package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sea-catering-backend/internal/service"
)

type PlanHandler struct {
	catalogService service.CatalogService
}

func NewPlanHandler(catalogService service.CatalogService) *PlanHandler {
	return &PlanHandler{
		catalogService: catalogService,
	}
}

func (h *PlanHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.catalogService.ListPlans(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}
