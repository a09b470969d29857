package scheduling

import (
	"time"

	"github.com/pnikitin/recruitflow/pkg/calendar"
)

// Business-hours template: interviews run 09:00-17:00 local time, so the
// last slot of a 30-minute grid starts at 16:30.
const (
	businessStartHour = 9
	businessEndHour   = 17
)

// businessDays returns the next n weekdays starting from (and including) the
// day of `from`.
func businessDays(from time.Time, n int, loc *time.Location) []time.Time {
	var out []time.Time
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	for len(out) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// daySlots subtracts busy intervals from the business-hours grid of one day.
// Slots that have already started and slots overlapping any busy interval
// are dropped. A fully booked day yields an empty (non-nil) list.
func daySlots(day time.Time, slotDur time.Duration, busy []calendar.Interval, now time.Time) []string {
	slots := []string{}
	start := day.Add(businessStartHour * time.Hour)
	dayEnd := day.Add(businessEndHour * time.Hour)
	for t := start; !t.Add(slotDur).After(dayEnd); t = t.Add(slotDur) {
		if t.Before(now) {
			continue
		}
		end := t.Add(slotDur)
		free := true
		for _, b := range busy {
			if b.Overlaps(t, end) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, t.Format("15:04"))
		}
	}
	return slots
}
