package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pnikitin/recruitflow/api/http/presenter"
	"github.com/pnikitin/recruitflow/pkg/scheduling"
)

// AvailabilityHandler serves calendar reads: free slots, the embeddable
// calendar view and upcoming interviews.
type AvailabilityHandler struct {
	svc *scheduling.Service
}

func NewAvailabilityHandler(svc *scheduling.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// Availability lists free interview slots for the upcoming business days.
// @Summary Free interview slots
// @Description Returns the upcoming business days with their open 30-minute slots inside business hours. Fully booked days are present with an empty slot list.
// @Tags    scheduling
// @Produce json
// @Success 200 {array} scheduling.DayAvailability
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /api/availability [get]
func (h *AvailabilityHandler) Availability(c *fiber.Ctx) error {
	days, err := h.svc.Availability(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "failed to fetch calendar availability")
	}
	return presenter.JSON(c, http.StatusOK, days)
}

// CalendarURL returns the embeddable calendar view.
// @Summary Embeddable calendar URL
// @Tags    scheduling
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /api/calendar [get]
func (h *AvailabilityHandler) CalendarURL(c *fiber.Ctx) error {
	u, err := h.svc.CalendarURL(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "failed to fetch calendar url")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"calendar_url": u})
}

// Interviews lists upcoming scheduled interviews.
// @Summary Upcoming interviews
// @Tags    scheduling
// @Produce json
// @Success 200 {array} calendar.Interview
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /api/interviews [get]
func (h *AvailabilityHandler) Interviews(c *fiber.Ctx) error {
	interviews, err := h.svc.Interviews(c.Context(), 30)
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "failed to list interviews")
	}
	return presenter.JSON(c, http.StatusOK, interviews)
}
