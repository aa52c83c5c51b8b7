package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	databaseName = "analitik.db"
	configName   = "config.yaml"
	journalDir   = "journal"
)

// Manager centralizes where analitik data lives on disk: the SQLite
// database, the YAML config, and the monthly Markdown journal.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.analitik (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all analitik data.
func (m *Manager) BasePath() string {
	return m.basePath
}

// EnsureBase creates the data directory when missing.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// DatabasePath is the SQLite file holding tracked data and goals.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, databaseName)
}

// ConfigPath is the optional YAML config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configName)
}

// MonthPath resolves the absolute path to the journal file for the supplied time.
// The file may not exist yet; callers can choose to create it.
func (m *Manager) MonthPath(t time.Time) string {
	yearDir := filepath.Join(m.basePath, journalDir, fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, fmt.Sprintf("%04d-%02d.md", t.Year(), t.Month()))
}

// EnsureMonthFile guarantees the directory tree exists and the month file is
// present with the expected heading. It returns the absolute path to the file.
func (m *Manager) EnsureMonthFile(t time.Time) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.MonthPath(t)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open month file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat month file: %w", err)
	}

	if info.Size() == 0 {
		if _, err := file.WriteString(monthHeader(t)); err != nil {
			return "", fmt.Errorf("write month header: %w", err)
		}
	}

	return path, nil
}

func monthHeader(t time.Time) string {
	return fmt.Sprintf("# Goal journal, %s %04d\n\n", t.Month().String(), t.Year())
}
