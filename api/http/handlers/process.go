package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pnikitin/recruitflow/api/http/presenter"
	"github.com/pnikitin/recruitflow/pkg/ranking"
)

// ProcessHandler ranks uploaded resumes against a job description.
type ProcessHandler struct {
	svc *ranking.Service
	// Limit per uploaded file read into memory (bytes)
	maxBytes int64
}

func NewProcessHandler(svc *ranking.Service, maxBytes int64) *ProcessHandler {
	if maxBytes <= 0 {
		maxBytes = 16 << 20 // 16MB
	}
	return &ProcessHandler{svc: svc, maxBytes: maxBytes}
}

// Process ranks uploaded PDF resumes against the posted job description.
// @Summary Rank resumes against a job description
// @Description Accepts a job description and a set of PDF resumes, returns candidates ordered by descending match score. Files that cannot be read are reported per item, not fatal to the batch.
// @Tags    candidates
// @Accept  multipart/form-data
// @Produce json
// @Param   job_description formData string true "Job description text"
// @Param   resumes formData file true "Resume files (PDF)"
// @Success 200 {object} ranking.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/process [post]
func (h *ProcessHandler) Process(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "multipart form is required")
	}
	jobDescription := c.FormValue("job_description")

	var files []ranking.File
	var oversized []ranking.SkippedFile
	for _, fh := range form.File["resumes"] {
		data, err := readFile(fh, h.maxBytes)
		if err != nil {
			oversized = append(oversized, ranking.SkippedFile{Filename: fh.Filename, Reason: err.Error()})
			continue
		}
		files = append(files, ranking.File{Name: fh.Filename, Data: data})
	}

	result, err := h.svc.Process(c.Context(), jobDescription, files)
	if err != nil {
		var verr ranking.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "internal error occurred while processing resumes")
	}
	result.Skipped = append(result.Skipped, oversized...)
	return presenter.JSON(c, http.StatusOK, result)
}

func readFile(fh *multipart.FileHeader, max int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
