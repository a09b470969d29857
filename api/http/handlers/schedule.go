package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pnikitin/recruitflow/api/http/presenter"
	"github.com/pnikitin/recruitflow/pkg/scheduling"
)

// ScheduleHandler turns slot selections into calendar events and emails.
type ScheduleHandler struct {
	svc *scheduling.Service
	loc *time.Location
}

func NewScheduleHandler(svc *scheduling.Service, loc *time.Location) *ScheduleHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleHandler{svc: svc, loc: loc}
}

type scheduleRequest struct {
	Candidate  *scheduling.Candidate  `json:"candidate"`
	Candidates []scheduling.Candidate `json:"candidates"`
	StartTime  string                 `json:"start_time"`
	EndTime    string                 `json:"end_time"`
	Template   string                 `json:"template"`
}

type bulkResponse struct {
	Status  scheduling.Status       `json:"status"`
	Message string                  `json:"message"`
	Details scheduling.BulkOutcome  `json:"details"`
}

// Schedule creates an interview for one candidate, or for a batch when
// "candidates" is provided.
// @Summary Schedule one interview or a batch
// @Description For a single candidate requires start_time and end_time; for a batch the earliest free slots are assigned automatically. Partial success (event created, email not sent) is reported distinctly from failure.
// @Tags    scheduling
// @Accept  json
// @Produce json
// @Param   request body scheduleRequest true "Scheduling request"
// @Success 200 {object} scheduling.Outcome
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} scheduling.Outcome
// @Router  /api/schedule [post]
func (h *ScheduleHandler) Schedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Candidates) > 0 {
		return h.scheduleBulk(c, req)
	}
	if req.Candidate == nil {
		return presenter.Error(c, http.StatusBadRequest, "candidate is required")
	}

	start, err := h.parseTime(req.StartTime)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "start_time is required in RFC3339 or 2006-01-02T15:04:05 format")
	}
	end, err := h.parseTime(req.EndTime)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "end_time is required in RFC3339 or 2006-01-02T15:04:05 format")
	}

	out, err := h.svc.Schedule(c.Context(), scheduling.Request{
		Candidate: *req.Candidate,
		Start:     start,
		End:       end,
		Template:  req.Template,
	})
	if err != nil {
		var verr scheduling.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "internal error occurred while scheduling")
	}
	if out.Status == scheduling.StatusFailed {
		return presenter.JSON(c, http.StatusBadGateway, out)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

func (h *ScheduleHandler) scheduleBulk(c *fiber.Ctx, req scheduleRequest) error {
	out, err := h.svc.ScheduleBulk(c.Context(), req.Candidates, req.Template)
	if err != nil {
		var verr scheduling.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusBadGateway, fmt.Sprintf("scheduling failed: %v", err))
	}
	resp := bulkResponse{Details: out}
	switch {
	case out.Failed == 0 && out.Partial == 0:
		resp.Status = scheduling.StatusSuccess
		resp.Message = fmt.Sprintf("scheduled %d interviews", out.Succeeded)
	case out.Succeeded+out.Partial > 0:
		resp.Status = scheduling.StatusPartial
		resp.Message = fmt.Sprintf("%d scheduled, %d partial, %d failed", out.Succeeded, out.Partial, out.Failed)
	default:
		resp.Status = scheduling.StatusFailed
		resp.Message = "no interviews could be scheduled"
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

func (h *ScheduleHandler) parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, h.loc)
}
