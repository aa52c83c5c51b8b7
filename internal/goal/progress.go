package goal

import (
	"fmt"
	"math"
	"time"

	"github.com/faizmokh/analitik/internal/activity"
)

// equalTimeTolerance is how close tracked time must be to the target for an
// Equal time goal to count as a success.
const equalTimeTolerance = time.Minute

// ProgressFromUsage converts aggregated activity usage into a Progress.
func ProgressFromUsage(usage activity.Usage) Progress {
	return Progress{
		Hours:    usage.Duration.Hours(),
		Switches: usage.Switches,
	}
}

// Percentage returns actual / target for the goal's metric. It returns NaN
// when the target is zero, negative, or not finite so the classifier can
// degrade to StatusVeryLow.
func Percentage(g Goal, p Progress) float64 {
	if g.Target <= 0 || math.IsInf(g.Target, 0) || math.IsNaN(g.Target) {
		return math.NaN()
	}

	switch g.Kind {
	case KindTimeSpentOn:
		targetHours := g.Target / 1000 / 60 / 60
		return p.Hours / targetHours
	case KindSwitchesTo:
		return float64(p.Switches) / g.Target
	default:
		return math.NaN()
	}
}

// Evaluate fills the success flag for Equal goals and classifies the progress.
func Evaluate(g Goal, p Progress) (Progress, error) {
	p.Success = nil
	if g.Operator == Equal && g.Target > 0 {
		var hit bool
		switch g.Kind {
		case KindSwitchesTo:
			hit = float64(p.Switches) == g.Target
		case KindTimeSpentOn:
			actual := time.Duration(p.Hours * float64(time.Hour))
			diff := actual - g.TargetDuration()
			hit = diff > -equalTimeTolerance && diff < equalTimeTolerance
		default:
			return p, fmt.Errorf("%w: %s", ErrInvalidKind, g.Kind)
		}
		p.Success = &hit
	}

	status, err := Classify(g.Operator, Percentage(g, p), p.Success)
	if err != nil {
		return p, err
	}
	p.Status = status
	return p, nil
}

// ProgressMessage renders tracked values, e.g. "1.50 hours / 3 switches".
func ProgressMessage(p Progress) string {
	return fmt.Sprintf("%.2f hours / %d switches", p.Hours, p.Switches)
}
