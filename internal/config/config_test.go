package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WorkDuration() != 25*time.Minute {
		t.Fatalf("WorkDuration() = %s, want 25m", cfg.WorkDuration())
	}
	if cfg.WeekStartDay() != time.Monday {
		t.Fatalf("WeekStartDay() = %s, want Monday", cfg.WeekStartDay())
	}
	if cfg.PromptInterval() != time.Hour {
		t.Fatalf("PromptInterval() = %s, want 1h", cfg.PromptInterval())
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := strings.TrimLeft(`
version: 1
week_start: sunday
pomodoro:
  work_minutes: 50
`, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pomodoro.WorkMinutes != 50 {
		t.Fatalf("WorkMinutes = %d, want 50", cfg.Pomodoro.WorkMinutes)
	}
	if cfg.Pomodoro.BreakMinutes != 5 {
		t.Fatalf("BreakMinutes = %d, want default 5", cfg.Pomodoro.BreakMinutes)
	}
	if cfg.WeekStartDay() != time.Sunday {
		t.Fatalf("WeekStartDay() = %s, want Sunday", cfg.WeekStartDay())
	}
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Emotion.ScaleMax != 5 {
		t.Fatalf("ScaleMax = %d, want 5", cfg.Emotion.ScaleMax)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("version: 1\nthemes: dark\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for unknown key")
	}
}

func TestLoadReportsValidationProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "version: 2\nemotion:\n  scale_min: 5\n  scale_max: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Load() error = %v, want ValidationError", err)
	}
	if len(verr.Problems) != 2 {
		t.Fatalf("Problems = %v, want 2 entries", verr.Problems)
	}
	if !strings.Contains(err.Error(), "version must be 1") {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Pomodoro.WorkMinutes = 45
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}
