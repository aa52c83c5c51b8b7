package goal

import (
	"fmt"
	"strings"
	"time"

	"github.com/faizmokh/analitik/internal/activity"
)

// Kind selects which metric of an activity a goal is measured against.
type Kind uint8

const (
	// KindSwitchesTo counts how often the user switched to the activity.
	KindSwitchesTo Kind = iota + 1
	// KindTimeSpentOn measures time spent on the activity. Targets are in milliseconds.
	KindTimeSpentOn
)

// ParseKind accepts "switches" or "time".
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "switches", "switch":
		return KindSwitchesTo, nil
	case "time":
		return KindTimeSpentOn, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected switches|time)", ErrInvalidKind, value)
	}
}

// String returns the code used for storage.
func (k Kind) String() string {
	switch k {
	case KindSwitchesTo:
		return "switches"
	case KindTimeSpentOn:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Operator is the comparison the user wants between the tracked value and the target.
type Operator uint8

const (
	GreaterThan Operator = iota + 1
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
	Equal
)

// ParseOperator accepts short codes (gt, ge, lt, le, eq) or their symbols.
func ParseOperator(value string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "gt", ">":
		return GreaterThan, nil
	case "ge", ">=":
		return GreaterThanOrEqual, nil
	case "lt", "<":
		return LessThan, nil
	case "le", "<=":
		return LessThanOrEqual, nil
	case "eq", "=", "==":
		return Equal, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected gt|ge|lt|le|eq)", ErrInvalidOperator, value)
	}
}

// String returns the short code used for storage.
func (o Operator) String() string {
	switch o {
	case GreaterThan:
		return "gt"
	case GreaterThanOrEqual:
		return "ge"
	case LessThan:
		return "lt"
	case LessThanOrEqual:
		return "le"
	case Equal:
		return "eq"
	default:
		return fmt.Sprintf("operator(%d)", uint8(o))
	}
}

// Description phrases the operator for goal sentences.
func (o Operator) Description() string {
	switch o {
	case GreaterThan:
		return "more than"
	case GreaterThanOrEqual:
		return "at least"
	case LessThan:
		return "less than"
	case LessThanOrEqual:
		return "at most"
	case Equal:
		return "exactly"
	default:
		return o.String()
	}
}

// Status is the five-level classification of progress toward a goal.
// Values are ordered: a larger Status is a better outcome.
type Status uint8

const (
	StatusVeryLow Status = iota
	StatusLow
	StatusAverage
	StatusHigh
	StatusVeryHigh
)

var statusNames = [...]string{"very-low", "low", "average", "high", "very-high"}

// String returns the journal code, e.g. "very-high".
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Label returns a display label, e.g. "Very high".
func (s Status) Label() string {
	switch s {
	case StatusVeryLow:
		return "Very low"
	case StatusLow:
		return "Low"
	case StatusAverage:
		return "Average"
	case StatusHigh:
		return "High"
	case StatusVeryHigh:
		return "Very high"
	default:
		return s.String()
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(value string) (Status, error) {
	for i, name := range statusNames {
		if name == value {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Goal is a user-configured rule over one activity.
type Goal struct {
	ID       int64
	Title    string
	Kind     Kind
	Operator Operator
	// Target is a switch count for KindSwitchesTo and milliseconds for KindTimeSpentOn.
	Target    float64
	Activity  activity.Category
	TimeSpan  TimeSpan
	CreatedAt time.Time
}

// TargetDuration converts the target of a time goal.
func (g Goal) TargetDuration() time.Duration {
	return time.Duration(g.Target * float64(time.Millisecond))
}

// Validate checks that the goal can be evaluated.
func (g Goal) Validate() error {
	switch g.Kind {
	case KindSwitchesTo, KindTimeSpentOn:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidKind, g.Kind)
	}
	if _, err := ParseOperator(g.Operator.String()); err != nil {
		return err
	}
	if g.Target <= 0 {
		return fmt.Errorf("%w: target must be > 0", ErrInvalidTarget)
	}
	if _, err := activity.ParseCategory(string(g.Activity)); err != nil {
		return err
	}
	if _, err := ParseTimeSpan(string(g.TimeSpan)); err != nil {
		return err
	}
	return nil
}

// Progress is the observed outcome for a goal within its time span.
type Progress struct {
	Hours    float64
	Switches int
	// Success is only set for Equal goals, when the tracked value hit the target.
	Success *bool
	Status  Status
}
