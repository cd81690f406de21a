package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/service"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

func (h *TestimonialHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	testimonial, err := h.testimonialService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, testimonial)
}

// ListApproved is the public testimonial wall; unreviewed entries stay out.
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	ctx := c.Request().Context()

	testimonials, err := h.testimonialService.ListApproved(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
	})
}
