package activity

import "errors"

// ErrUnknownCategory is returned when a category code is not recognized.
var ErrUnknownCategory = errors.New("unknown activity category")

// ErrInvalidInterval indicates an interval that ends before it starts.
var ErrInvalidInterval = errors.New("interval ends before it starts")
