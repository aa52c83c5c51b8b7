package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/analitik/internal/analytics"
	"github.com/faizmokh/analitik/internal/journal"
	"github.com/faizmokh/analitik/internal/ui/theme"
)

// Evaluator produces goal results for the day containing ref.
type Evaluator interface {
	Evaluate(ctx context.Context, ref time.Time) ([]analytics.Result, error)
}

// Recorder stores a day's snapshots in the journal.
type Recorder interface {
	Record(ctx context.Context, date time.Time, snapshots []journal.Snapshot) error
}

// Model owns Bubble Tea state for the goal dashboard.
type Model struct {
	ctx       context.Context
	evaluator Evaluator
	recorder  Recorder

	currentDate time.Time
	results     []analytics.Result
	loadErr     error

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	loading    bool
	statusLine string
	errorLine  string
}

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Today    key.Binding
	Reload   key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("h/←", "prev day")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("l/→", "next day")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Snapshot: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snapshot")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Snapshot, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today},
		{k.Reload, k.Snapshot},
		{k.Help, k.Quit},
	}
}

type resultsLoadedMsg struct {
	date    time.Time
	results []analytics.Result
	err     error
}

type snapshotRecordedMsg struct {
	date  time.Time
	count int
	err   error
}

// NewModel seeds the dashboard with its collaborators.
func NewModel(ctx context.Context, evaluator Evaluator, recorder Recorder) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Title

	return Model{
		ctx:         ctx,
		evaluator:   evaluator,
		recorder:    recorder,
		currentDate: today(),
		keys:        defaultKeys(),
		help:        help.New(),
		spinner:     sp,
		loading:     true,
		statusLine:  "Evaluating today's goals...",
	}
}

// Init evaluates the goals for today.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.evaluateCmd(m.currentDate), m.spinner.Tick)
}

// Update wires state transitions from key presses and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case resultsLoadedMsg:
		return m.handleResultsLoaded(msg)
	case snapshotRecordedMsg:
		return m.handleSnapshotRecorded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Next):
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		return m.gotoDate(today())
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Snapshot):
		if m.loading {
			return m, nil
		}
		// Recording without results would replace the day's journal section.
		if m.loadErr != nil || len(m.results) == 0 {
			m.statusLine = fmt.Sprintf("Nothing to snapshot for %s.", m.currentDate.Format("2006-01-02"))
			return m, nil
		}
		m.statusLine = "Writing snapshot..."
		m.errorLine = ""
		return m, m.snapshotCmd(m.currentDate, m.results)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleResultsLoaded(msg resultsLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if !sameDay(m.currentDate, msg.date) {
		return m, nil
	}
	m.loading = false
	m.loadErr = msg.err
	if msg.err != nil {
		m.results = nil
		m.errorLine = fmt.Sprintf("Failed to evaluate %s: %v", msg.date.Format("2006-01-02"), msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.results = msg.results
	if len(m.results) == 0 {
		m.statusLine = "No goals yet. Add one with `analitik goal add`."
	} else {
		m.statusLine = fmt.Sprintf("Evaluated %d goal%s.", len(m.results), plural(len(m.results)))
	}
	return m, nil
}

func (m Model) handleSnapshotRecorded(msg snapshotRecordedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Snapshot failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Recorded %d goal%s for %s.", msg.count, plural(msg.count), msg.date.Format("2006-01-02"))
	return m, nil
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	if sameDay(m.currentDate, date) {
		return m.reload()
	}

	m.currentDate = date
	m.results = nil
	m.loading = true
	m.statusLine = fmt.Sprintf("Evaluating %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	return m, tea.Batch(m.evaluateCmd(date), m.spinner.Tick)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.currentDate.Format("2006-01-02"))
	m.errorLine = ""
	return m, tea.Batch(m.evaluateCmd(m.currentDate), m.spinner.Tick)
}

func (m Model) evaluateCmd(date time.Time) tea.Cmd {
	evaluator := m.evaluator
	ctx := m.ctx
	return func() tea.Msg {
		results, err := evaluator.Evaluate(ctx, date)
		return resultsLoadedMsg{date: date, results: results, err: err}
	}
}

func (m Model) snapshotCmd(date time.Time, results []analytics.Result) tea.Cmd {
	recorder := m.recorder
	ctx := m.ctx
	return func() tea.Msg {
		snapshots := analytics.Snapshots(results)
		if err := recorder.Record(ctx, date, snapshots); err != nil {
			return snapshotRecordedMsg{date: date, err: err}
		}
		return snapshotRecordedMsg{date: date, count: len(snapshots)}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Format("Monday, 02 January 2006")
	b.WriteString(theme.Title.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Evaluating...\n")
	} else if len(m.results) == 0 {
		b.WriteString(theme.Muted.Render("(no goals)"))
		b.WriteByte('\n')
	} else {
		for _, r := range m.results {
			b.WriteString(formatResult(r))
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(theme.Error.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func formatResult(r analytics.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("%s #%d %s", theme.Error.Render("[error]"), r.Goal.ID, r.Err)
	}
	return fmt.Sprintf("%s #%d %s\n    %s",
		theme.StatusTag(r.Progress.Status),
		r.Goal.ID,
		r.Description(),
		theme.Muted.Render(r.Message()),
	)
}

func today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
