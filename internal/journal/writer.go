package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faizmokh/analitik/internal/files"
)

// Writer records daily goal snapshots into the monthly Markdown journal.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to manipulate journal files.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Record writes the snapshots as the section for date. An existing section
// for the same date is replaced, so recording twice keeps the latest values.
// An empty snapshot list is rejected with ErrNoSnapshots.
func (w *Writer) Record(ctx context.Context, date time.Time, snapshots []Snapshot) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("writer not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return ErrNoSnapshots
	}

	path, err := w.manager.EnsureMonthFile(date)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := splitLines(string(data))
	block := make([]string, 0, len(snapshots)+1)
	for _, s := range snapshots {
		block = append(block, formatSnapshot(s))
	}

	start, end := findSection(lines, dateHeading(date))
	if start == -1 {
		if needsSeparation(lines) {
			lines = append(lines, "")
		}
		lines = append(lines, dateHeading(date))
		lines = append(lines, block...)
		return writeLines(path, lines)
	}

	if end < len(lines) {
		block = append(block, "")
	}
	tail := append(block, lines[end:]...)
	lines = append(lines[:start+1], tail...)
	return writeLines(path, lines)
}

// findSection returns the heading line index and the index one past the last
// line of the section, or -1 when the heading is missing.
func findSection(lines []string, heading string) (int, int) {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			start = i
			break
		}
	}
	if start == -1 {
		return -1, -1
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "## ") {
			end = i
			break
		}
	}
	return start, end
}

func dateHeading(date time.Time) string {
	return fmt.Sprintf("## %04d-%02d-%02d", date.Year(), date.Month(), date.Day())
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func needsSeparation(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	return strings.TrimSpace(lines[len(lines)-1]) != ""
}

func writeLines(path string, lines []string) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "analitik-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
