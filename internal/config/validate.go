package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a config, so they can be
// fixed in one pass.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "invalid config"
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Problems, "; "))
}

// Validate checks value ranges and enumerations and returns a
// *ValidationError when anything is wrong.
func Validate(cfg Config) error {
	problems := []string{}

	if cfg.Version != 1 {
		problems = append(problems, "version must be 1")
	}

	switch strings.ToLower(strings.TrimSpace(cfg.WeekStart)) {
	case "monday", "sunday":
	default:
		problems = append(problems, "week_start must be monday or sunday")
	}

	if cfg.Pomodoro.WorkMinutes <= 0 {
		problems = append(problems, "pomodoro.work_minutes must be > 0")
	}
	if cfg.Pomodoro.BreakMinutes < 0 {
		problems = append(problems, "pomodoro.break_minutes must be >= 0")
	}

	if cfg.Emotion.ScaleMin < 1 {
		problems = append(problems, "emotion.scale_min must be >= 1")
	}
	if cfg.Emotion.ScaleMax <= cfg.Emotion.ScaleMin {
		problems = append(problems, "emotion.scale_max must be greater than emotion.scale_min")
	}
	if cfg.Emotion.PromptIntervalMinutes <= 0 {
		problems = append(problems, "emotion.prompt_interval_minutes must be > 0")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
