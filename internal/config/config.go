package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the analitik data directory.
const FileName = "config.yaml"

// Config is the on-disk YAML configuration.
type Config struct {
	Version   int      `yaml:"version"`
	WeekStart string   `yaml:"week_start"`
	Pomodoro  Pomodoro `yaml:"pomodoro"`
	Emotion   Emotion  `yaml:"emotion"`
}

// Pomodoro sets session lengths in minutes.
type Pomodoro struct {
	WorkMinutes  int `yaml:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
}

// Emotion holds the questionnaire scale and how often the user wants to be
// asked. The interval is passed explicitly to the emotion tracker rather
// than read from process-wide state.
type Emotion struct {
	ScaleMin              int `yaml:"scale_min"`
	ScaleMax              int `yaml:"scale_max"`
	PromptIntervalMinutes int `yaml:"prompt_interval_minutes"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:   1,
		WeekStart: "monday",
		Pomodoro: Pomodoro{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		Emotion: Emotion{
			ScaleMin:              1,
			ScaleMax:              5,
			PromptIntervalMinutes: 60,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error. The merged result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores cfg as YAML at path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// WorkDuration is the length a pomodoro must reach to count as completed.
func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.Pomodoro.WorkMinutes) * time.Minute
}

// BreakDuration is the pause suggested after a completed pomodoro.
func (c Config) BreakDuration() time.Duration {
	return time.Duration(c.Pomodoro.BreakMinutes) * time.Minute
}

// PromptInterval is how long after an answer the next check-in is due.
func (c Config) PromptInterval() time.Duration {
	return time.Duration(c.Emotion.PromptIntervalMinutes) * time.Minute
}

// WeekStartDay resolves week_start, defaulting to Monday.
func (c Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(c.WeekStart), "sunday") {
		return time.Sunday
	}
	return time.Monday
}
