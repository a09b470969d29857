package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedChecker struct {
	name string
	err  error
}

func (c namedChecker) Name() string                    { return c.name }
func (c namedChecker) Check(ctx context.Context) error { return c.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(namedChecker{name: "a"}, namedChecker{name: "b"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReadyReportsFailingCheckerByName(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(namedChecker{name: "a"}, namedChecker{name: "smtp", err: boom})
	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "smtp")
}
