package checkers

import (
	"context"
	"time"

	"github.com/pnikitin/recruitflow/pkg/calendar"
)

// CalendarChecker verifies the calendar provider answers a cheap read.
type CalendarChecker struct {
	provider calendar.Provider
}

func NewCalendarChecker(provider calendar.Provider) *CalendarChecker {
	return &CalendarChecker{provider: provider}
}

func (c *CalendarChecker) Name() string { return "calendar" }

func (c *CalendarChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_, err := c.provider.EmbedURL(ctx)
	return err
}
