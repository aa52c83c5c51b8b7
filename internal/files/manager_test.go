package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerPaths(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	if got, want := mgr.MonthPath(date), filepath.Join(tmp, "journal", "2025", "2025-11.md"); got != want {
		t.Fatalf("MonthPath() = %q, want %q", got, want)
	}
	if got, want := mgr.DatabasePath(), filepath.Join(tmp, "analitik.db"); got != want {
		t.Fatalf("DatabasePath() = %q, want %q", got, want)
	}
	if got, want := mgr.ConfigPath(), filepath.Join(tmp, "config.yaml"); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestEnsureBaseCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")
	mgr, err := NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureBase(); err != nil {
		t.Fatalf("EnsureBase: %v", err)
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %q: %v", base, err)
	}
}

func TestEnsureMonthFileCreatesSkeleton(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	path, err := mgr.EnsureMonthFile(date)
	if err != nil {
		t.Fatalf("EnsureMonthFile: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	wantHeader := "# Goal journal, November 2025\n\n"
	if string(contents) != wantHeader {
		t.Fatalf("month file contents = %q, want %q", contents, wantHeader)
	}

	// Second ensure should not duplicate the header.
	if _, err := mgr.EnsureMonthFile(date); err != nil {
		t.Fatalf("EnsureMonthFile second call: %v", err)
	}
	contentsAgain, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile second: %v", err)
	}
	if string(contentsAgain) != wantHeader {
		t.Fatalf("month file contents after second ensure = %q, want %q", contentsAgain, wantHeader)
	}
}
