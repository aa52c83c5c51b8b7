package goal

import "errors"

// ErrInvalidOperator signals a goal configured with an operator the classifier does not know.
var ErrInvalidOperator = errors.New("invalid goal operator")

// ErrInvalidKind is returned for goal kinds other than switches or time.
var ErrInvalidKind = errors.New("invalid goal kind")

// ErrInvalidTarget indicates a missing, zero, or unparseable target value.
var ErrInvalidTarget = errors.New("invalid goal target")

// ErrInvalidTimeSpan is returned for unknown time spans.
var ErrInvalidTimeSpan = errors.New("invalid time span")

// ErrInvalidStatus is returned when a status code cannot be parsed.
var ErrInvalidStatus = errors.New("invalid progress status")
