package goal

import (
	"fmt"
	"math"
)

// Classify maps the ratio of actual to target onto a Status.
//
// The greater and less families use different, deliberately asymmetric
// thresholds around 1.0. For Equal goals an explicit success wins over the
// percentage. A NaN percentage (zero or unparseable target) yields
// StatusVeryLow. The only error is an unknown operator.
func Classify(op Operator, percentage float64, success *bool) (Status, error) {
	switch op {
	case GreaterThan, GreaterThanOrEqual:
		switch {
		case math.IsNaN(percentage):
			return StatusVeryLow, nil
		case percentage < 0.3:
			return StatusVeryLow, nil
		case percentage < 0.7:
			return StatusLow, nil
		case percentage < 0.9:
			return StatusAverage, nil
		case percentage < 1:
			return StatusHigh, nil
		default:
			return StatusVeryHigh, nil
		}
	case LessThan, LessThanOrEqual:
		switch {
		case math.IsNaN(percentage):
			return StatusVeryLow, nil
		case percentage < 0.9:
			return StatusVeryHigh, nil
		case percentage <= 1:
			return StatusHigh, nil
		case percentage <= 1.1:
			return StatusAverage, nil
		case percentage <= 1.5:
			return StatusLow, nil
		default:
			return StatusVeryLow, nil
		}
	case Equal:
		switch {
		case success != nil && *success:
			return StatusVeryHigh, nil
		case math.IsNaN(percentage):
			return StatusVeryLow, nil
		case percentage >= 0.9 && percentage <= 1.1:
			return StatusHigh, nil
		case percentage >= 0.8 && percentage <= 1.2:
			return StatusAverage, nil
		case percentage >= 0.7 && percentage <= 1.3:
			return StatusLow, nil
		default:
			return StatusVeryLow, nil
		}
	default:
		return StatusVeryLow, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}
}
