package goal

import (
	"fmt"
	"strings"
	"time"
)

// TimeSpan is the recurring window a goal is evaluated over.
type TimeSpan string

const (
	SpanDay       TimeSpan = "day"
	SpanWeek      TimeSpan = "week"
	SpanMonth     TimeSpan = "month"
	SpanMorning   TimeSpan = "morning"
	SpanAfternoon TimeSpan = "afternoon"
)

// ParseTimeSpan accepts one of day, week, month, morning, afternoon.
func ParseTimeSpan(value string) (TimeSpan, error) {
	span := TimeSpan(strings.ToLower(strings.TrimSpace(value)))
	switch span {
	case SpanDay, SpanWeek, SpanMonth, SpanMorning, SpanAfternoon:
		return span, nil
	default:
		return "", fmt.Errorf("%w: %q (expected day|week|month|morning|afternoon)", ErrInvalidTimeSpan, value)
	}
}

// Window returns the half-open interval [start, end) of the span that
// contains ref. Weeks begin on weekStart.
func (s TimeSpan) Window(ref time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch s {
	case SpanWeek:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case SpanMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, 0)
	case SpanMorning:
		return day, day.Add(12 * time.Hour)
	case SpanAfternoon:
		return day.Add(12 * time.Hour), day.Add(18 * time.Hour)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}
