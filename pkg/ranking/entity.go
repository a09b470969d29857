package ranking

// ScoreSource tags how a candidate's score was produced.
type ScoreSource string

const (
	// SourceModel means the hosted model returned a parseable assessment.
	SourceModel ScoreSource = "model"
	// SourceFallback means the deterministic keyword heuristic was used.
	SourceFallback ScoreSource = "fallback"
)

// Candidate is a parsed resume with a 0-100 match score against the job
// description. IDs are assigned from upload order.
type Candidate struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone,omitempty"`
	Score   float64     `json:"score"`
	Summary []string    `json:"summary"`
	Source  ScoreSource `json:"source"`
}

// SkippedFile reports a resume that could not be processed. One broken file
// never fails the batch.
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Result is the outcome of one processing batch.
type Result struct {
	Candidates []Candidate   `json:"candidates"`
	Skipped    []SkippedFile `json:"skipped,omitempty"`
}

// File is an uploaded resume held in memory for the duration of the request.
type File struct {
	Name string
	Data []byte
}

// ErrValidation marks user-input errors that are reported before any
// provider call is made.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
