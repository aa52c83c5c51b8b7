package emotion

import "errors"

// ErrOutOfScale is returned when valence or arousal fall outside the configured scale.
var ErrOutOfScale = errors.New("rating out of scale")
