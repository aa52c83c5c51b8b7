package activity

import (
	"fmt"
	"strings"
	"time"
)

// Category identifies what the user was focused on during an interval.
type Category string

const (
	DevCode           Category = "dev_code"
	DevDebug          Category = "dev_debug"
	DevReview         Category = "dev_review"
	DevVersionControl Category = "dev_vc"
	ReadWriteDocument Category = "read_write_document"
	PlannedMeeting    Category = "planned_meeting"
	InformalMeeting   Category = "informal_meeting"
	Email             Category = "email"
	InstantMessaging  Category = "instant_messaging"
	WebBrowsing       Category = "web_browsing"
	FileNavigation    Category = "file_navigation"
	OtherRDP          Category = "other_rdp"
	Idle              Category = "idle"
	Other             Category = "other"
)

var descriptions = map[Category]string{
	DevCode:           "Development",
	DevDebug:          "Debugging",
	DevReview:         "Code Reviewing",
	DevVersionControl: "Version Control",
	ReadWriteDocument: "Reading/Editing Documents",
	PlannedMeeting:    "Scheduled Meetings",
	InformalMeeting:   "Ad-hoc Meetings",
	Email:             "Emails",
	InstantMessaging:  "Instant Messaging",
	WebBrowsing:       "Web Browsing",
	FileNavigation:    "File Navigation",
	OtherRDP:          "Remote Desktop",
	Idle:              "Idle",
	Other:             "Other",
}

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		DevCode, DevDebug, DevReview, DevVersionControl, ReadWriteDocument,
		PlannedMeeting, InformalMeeting, Email, InstantMessaging, WebBrowsing,
		FileNavigation, OtherRDP, Idle, Other,
	}
}

// ParseCategory accepts the storage code of a category, case-insensitively.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := descriptions[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
	}
	return c, nil
}

// Description returns the human label, falling back to the raw code.
func (c Category) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return string(c)
}

// Interval is a single focus period. Each recorded interval counts as one
// switch to its category.
type Interval struct {
	ID       int64
	Category Category
	Start    time.Time
	End      time.Time
}

// Duration returns the length of the interval, never negative.
func (i Interval) Duration() time.Duration {
	if i.End.Before(i.Start) {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Clip returns the part of the interval that falls inside [start, end).
func (i Interval) Clip(start, end time.Time) Interval {
	clipped := i
	if clipped.Start.Before(start) {
		clipped.Start = start
	}
	if clipped.End.After(end) {
		clipped.End = end
	}
	if clipped.End.Before(clipped.Start) {
		clipped.End = clipped.Start
	}
	return clipped
}

// Usage aggregates the intervals of one category over a window.
type Usage struct {
	Duration time.Duration
	Switches int
}

// Summarize clips every interval to the window and totals them. Intervals
// that do not overlap the window are ignored.
func Summarize(intervals []Interval, start, end time.Time) Usage {
	var usage Usage
	for _, interval := range intervals {
		if !interval.Start.Before(end) || !interval.End.After(start) {
			continue
		}
		usage.Duration += interval.Clip(start, end).Duration()
		usage.Switches++
	}
	return usage
}
