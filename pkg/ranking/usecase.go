package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pnikitin/recruitflow/pkg/llm"
	"github.com/pnikitin/recruitflow/pkg/resume"
)

// Service is the candidate ranking pipeline: extract text from each uploaded
// PDF, ask the model for a scored assessment, fall back to the keyword
// heuristic when the model is unavailable or unparseable, and return the
// batch ordered by descending score.
type Service struct {
	extractor resume.Extractor
	model     llm.ChatModel
	log       zerolog.Logger
}

func NewService(extractor resume.Extractor, model llm.ChatModel, log zerolog.Logger) *Service {
	return &Service{
		extractor: extractor,
		model:     model,
		log:       log.With().Str("component", "ranking").Logger(),
	}
}

// Process ranks the uploaded resumes against the job description.
// Validation failures return ErrValidation before any provider call.
func (s *Service) Process(ctx context.Context, jobDescription string, files []File) (Result, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return Result{}, ErrValidation("job description cannot be empty")
	}
	if len(files) == 0 {
		return Result{}, ErrValidation("at least one resume file is required")
	}
	var pdfs []File
	for _, f := range files {
		if resume.IsPDF(f.Name) {
			pdfs = append(pdfs, f)
		}
	}
	if len(pdfs) == 0 {
		return Result{}, ErrValidation("no valid PDF files found")
	}

	job := truncate(jobDescription, maxJobChars)
	res := Result{Candidates: []Candidate{}}
	for i, f := range pdfs {
		text, err := s.extractor.Extract(f.Name, f.Data)
		if err != nil {
			s.log.Warn().Str("file", f.Name).Err(err).Msg("text extraction failed, skipping file")
			res.Skipped = append(res.Skipped, SkippedFile{Filename: f.Name, Reason: err.Error()})
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			res.Skipped = append(res.Skipped, SkippedFile{Filename: f.Name, Reason: "empty resume content"})
			continue
		}
		text = truncate(text, maxResumeChars)

		c := s.scoreOne(ctx, i, f.Name, job, text)
		res.Candidates = append(res.Candidates, c)
	}

	// Descending by score; stable so ties keep upload order.
	sort.SliceStable(res.Candidates, func(a, b int) bool {
		return res.Candidates[a].Score > res.Candidates[b].Score
	})
	return res, nil
}

// scoreOne asks the model for an assessment and degrades to the keyword
// heuristic on any failure. It always returns a candidate.
func (s *Service) scoreOne(ctx context.Context, id int, filename, jobDescription, resumeText string) Candidate {
	if s.model != nil {
		raw, err := s.model.Ask(ctx, systemPrompt, buildUserPrompt(jobDescription, resumeText))
		if err == nil {
			if a, perr := parseModelReply(raw); perr == nil {
				return Candidate{
					ID:      id,
					Name:    a.Name,
					Email:   a.Email,
					Phone:   a.Phone,
					Score:   a.Score,
					Summary: a.Summary,
					Source:  SourceModel,
				}
			}
			s.log.Warn().Str("file", filename).Msg("model reply unparseable, using keyword fallback")
		} else {
			s.log.Warn().Str("file", filename).Err(err).Msg("model call failed, using keyword fallback")
		}
	}

	score, reasons := fallbackScore(jobDescription, resumeText)
	name, email, phone := extractContacts(resumeText, filename)
	return Candidate{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Score:   score,
		Summary: reasons,
		Source:  SourceFallback,
	}
}
