package mail

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MockSender is the dev-mode transport: it logs instead of sending.
type MockSender struct {
	Latency time.Duration
	log     zerolog.Logger
}

func NewMockSender(log zerolog.Logger) *MockSender {
	return &MockSender{Latency: 100 * time.Millisecond, log: log.With().Str("component", "mail-mock").Logger()}
}

func (m *MockSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.log.Info().Str("to", to).Str("subject", subject).Msg("mock: would send email")
	return nil
}
