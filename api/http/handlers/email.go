package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pnikitin/recruitflow/api/http/presenter"
	"github.com/pnikitin/recruitflow/pkg/mail"
	"github.com/pnikitin/recruitflow/pkg/scheduling"
)

// EmailHandler previews confirmation emails without sending them.
type EmailHandler struct {
	svc *scheduling.Service
}

func NewEmailHandler(svc *scheduling.Service) *EmailHandler {
	return &EmailHandler{svc: svc}
}

type draftEmailRequest struct {
	Candidate        scheduling.Candidate  `json:"candidate"`
	InterviewDetails mail.InterviewDetails `json:"interview_details"`
	Template         string                `json:"template"`
}

// Draft fills the named static template with candidate and interview details.
// @Summary Draft a confirmation email
// @Description Renders the professional, casual or technical template. Unknown template names fall back to professional. No model call is involved.
// @Tags    scheduling
// @Accept  json
// @Produce json
// @Param   request body draftEmailRequest true "Draft request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/draft_email [post]
func (h *EmailHandler) Draft(c *fiber.Ctx) error {
	var req draftEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	draft, err := h.svc.DraftEmail(req.Candidate, req.InterviewDetails, req.Template)
	if err != nil {
		var verr scheduling.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to draft email")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"draft": draft})
}
