package emotion

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PopupOpened marks the row written when the questionnaire is shown, before
// the user answers it.
const PopupOpened = "POPUP_OPENED"

// Questionnaire is one self-reported emotional state.
type Questionnaire struct {
	ID        int64
	Timestamp time.Time
	Activity  string
	Valence   int
	Arousal   int
}

// Marker reports whether q is a popup-opened marker rather than an answer.
func (q Questionnaire) Marker() bool {
	return q.Activity == PopupOpened
}

// Repository persists questionnaires. LastQuestionnaire ignores popup markers.
type Repository interface {
	SaveQuestionnaire(ctx context.Context, q Questionnaire) (int64, error)
	QuestionnairesBetween(ctx context.Context, start, end time.Time) ([]Questionnaire, error)
	LastQuestionnaire(ctx context.Context) (Questionnaire, bool, error)
}

// Scale bounds valence and arousal ratings, inclusive.
type Scale struct {
	Min int
	Max int
}

func (s Scale) contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Summary averages the answered questionnaires in a window.
type Summary struct {
	Responses int
	Opened    int
	Valence   float64
	Arousal   float64
}

// Tracker records questionnaires on the configured scale and works out when
// the next check-in is due.
type Tracker struct {
	repo     Repository
	scale    Scale
	interval time.Duration
	now      func() time.Time
}

// NewTracker wires a tracker. interval is how long after an answer the next
// check-in is due.
func NewTracker(repo Repository, scale Scale, interval time.Duration) *Tracker {
	return &Tracker{
		repo:     repo,
		scale:    scale,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Record validates and stores an answer. A zero Timestamp is set to now.
func (t *Tracker) Record(ctx context.Context, q Questionnaire) (Questionnaire, error) {
	if !t.scale.contains(q.Valence) {
		return Questionnaire{}, fmt.Errorf("%w: valence %d not in %d..%d", ErrOutOfScale, q.Valence, t.scale.Min, t.scale.Max)
	}
	if !t.scale.contains(q.Arousal) {
		return Questionnaire{}, fmt.Errorf("%w: arousal %d not in %d..%d", ErrOutOfScale, q.Arousal, t.scale.Min, t.scale.Max)
	}
	q.Activity = strings.TrimSpace(q.Activity)
	if q.Activity == PopupOpened {
		return Questionnaire{}, fmt.Errorf("activity %q is reserved", PopupOpened)
	}
	if q.Timestamp.IsZero() {
		q.Timestamp = t.now()
	}
	q.Timestamp = q.Timestamp.Truncate(time.Second)

	id, err := t.repo.SaveQuestionnaire(ctx, q)
	if err != nil {
		return Questionnaire{}, fmt.Errorf("save questionnaire: %w", err)
	}
	q.ID = id
	return q, nil
}

// PopupOpened stores the marker row written when the questionnaire is shown.
func (t *Tracker) PopupOpened(ctx context.Context) error {
	q := Questionnaire{
		Timestamp: t.now().Truncate(time.Second),
		Activity:  PopupOpened,
	}
	if _, err := t.repo.SaveQuestionnaire(ctx, q); err != nil {
		return fmt.Errorf("save popup marker: %w", err)
	}
	return nil
}

// Summary averages answers in [start, end), counting markers separately.
func (t *Tracker) Summary(ctx context.Context, start, end time.Time) (Summary, error) {
	items, err := t.repo.QuestionnairesBetween(ctx, start, end)
	if err != nil {
		return Summary{}, err
	}

	var (
		summary              Summary
		valenceSum, arousSum int
	)
	for _, q := range items {
		if q.Marker() {
			summary.Opened++
			continue
		}
		summary.Responses++
		valenceSum += q.Valence
		arousSum += q.Arousal
	}
	if summary.Responses > 0 {
		summary.Valence = float64(valenceSum) / float64(summary.Responses)
		summary.Arousal = float64(arousSum) / float64(summary.Responses)
	}
	return summary, nil
}

// NextCheckIn is when the next questionnaire is due: one interval after the
// most recent answer, or now when there is none.
func (t *Tracker) NextCheckIn(ctx context.Context) (time.Time, error) {
	last, ok, err := t.repo.LastQuestionnaire(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return t.now(), nil
	}
	return last.Timestamp.Add(t.interval), nil
}
