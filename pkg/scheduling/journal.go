package scheduling

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SagaState tracks the create-event-then-send-email sequence. The two steps
// are not transactional.
type SagaState string

const (
	StateEmailPending SagaState = "email_pending"
	StateEmailSent    SagaState = "email_sent"
	StateEmailFailed  SagaState = "email_failed"
)

// SagaRecord is one interview's progress through the two-step sequence.
type SagaRecord struct {
	ID        uuid.UUID `json:"id"`
	Candidate Candidate `json:"candidate"`
	EventID   string    `json:"event_id"`
	State     SagaState `json:"state"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Journal is the in-memory saga log. State lives for the process lifetime.
type Journal struct {
	mu    sync.RWMutex
	recs  map[uuid.UUID]*SagaRecord
	order []uuid.UUID
}

func NewJournal() *Journal {
	return &Journal{recs: make(map[uuid.UUID]*SagaRecord)}
}

// Begin records a created event whose confirmation email is still pending.
func (j *Journal) Begin(c Candidate, eventID string) uuid.UUID {
	now := time.Now().UTC()
	rec := &SagaRecord{
		ID:        uuid.New(),
		Candidate: c,
		EventID:   eventID,
		State:     StateEmailPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	j.mu.Lock()
	j.recs[rec.ID] = rec
	j.order = append(j.order, rec.ID)
	j.mu.Unlock()
	return rec.ID
}

func (j *Journal) MarkEmailSent(id uuid.UUID) {
	j.setState(id, StateEmailSent, "")
}

func (j *Journal) MarkEmailFailed(id uuid.UUID, reason string) {
	j.setState(id, StateEmailFailed, reason)
}

func (j *Journal) setState(id uuid.UUID, state SagaState, reason string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	rec, ok := j.recs[id]
	if !ok {
		return
	}
	rec.State = state
	rec.Error = reason
	rec.UpdatedAt = time.Now().UTC()
}

// Get returns a copy of one record.
func (j *Journal) Get(id uuid.UUID) (SagaRecord, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	rec, ok := j.recs[id]
	if !ok {
		return SagaRecord{}, false
	}
	return *rec, true
}

// List returns copies of all records in creation order.
func (j *Journal) List() []SagaRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]SagaRecord, 0, len(j.order))
	for _, id := range j.order {
		out = append(out, *j.recs[id])
	}
	return out
}
