package journal

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/analitik/internal/goal"
)

// Parser incrementally reads Markdown journals and emits sections as they are discovered.
type Parser struct {
	r        io.Reader
	scanner  *bufio.Scanner
	pending  *DateSection
	initDone bool
}

// NewParser returns a parser ready to tokenize Markdown from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// NextSection streams the next parsed DateSection, returning io.EOF when done.
// Lines that are not snapshot lines are skipped.
func (p *Parser) NextSection() (*DateSection, error) {
	if p.r == nil {
		return nil, io.EOF
	}

	if !p.initDone {
		p.scanner = bufio.NewScanner(p.r)
		p.initDone = true
	}

	section := p.pending
	p.pending = nil

	if section == nil {
		var err error
		section, err = p.consumeUntilSection()
		if err != nil {
			return nil, err
		}
		if section == nil {
			return nil, io.EOF
		}
	}

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if date, ok := parseSectionHeading(line); ok {
			p.pending = &DateSection{Date: date}
			return section, nil
		}
		if snapshot, ok := parseSnapshotLine(line); ok {
			section.Snapshots = append(section.Snapshots, snapshot)
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return section, nil
}

func (p *Parser) consumeUntilSection() (*DateSection, error) {
	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if date, ok := parseSectionHeading(line); ok {
			return &DateSection{Date: date}, nil
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

var snapshotPattern = regexp.MustCompile(`^- \[([a-z-]+)\] \[#(\d+)\] (.*) \(([^()]*)\)$`)

func parseSnapshotLine(line string) (Snapshot, bool) {
	matches := snapshotPattern.FindStringSubmatch(line)
	if matches == nil {
		return Snapshot{}, false
	}

	status, err := goal.ParseStatus(matches[1])
	if err != nil {
		return Snapshot{}, false
	}
	id, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return Snapshot{}, false
	}

	return Snapshot{
		GoalID:      id,
		Status:      status,
		Description: strings.TrimSpace(matches[3]),
		Progress:    strings.TrimSpace(matches[4]),
	}, true
}

func parseSectionHeading(line string) (time.Time, bool) {
	if !strings.HasPrefix(line, "## ") {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(line[3:]), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func formatSnapshot(s Snapshot) string {
	return fmt.Sprintf("- [%s] [#%d] %s (%s)", s.Status, s.GoalID, s.Description, s.Progress)
}
