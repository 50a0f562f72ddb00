// Package dashboard implements the live TUI view for 'sysmon watch'.
//
// It follows the Bubble Tea Model-Update-View pattern: a tick fires at the
// configured poll interval, each tick triggers one blocking sample in a
// command goroutine, and the resulting status line replaces the previous
// one. A spinner is shown until the first sample lands.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/statuskit/sysmon/internal/ui"
)

// SampleFunc produces one rendered status line. It blocks for the duration
// of the underlying OS queries.
type SampleFunc func() (string, error)

// maxHistory bounds the number of past lines kept on screen.
const maxHistory = 8

// defaultInterval is used when the caller passes a non-positive interval.
const defaultInterval = 2 * time.Second

// tickMsg schedules the next sample.
type tickMsg time.Time

// sampleMsg carries the result of one sample.
type sampleMsg struct {
	line string
	err  error
}

// Model is the Bubble Tea model for the watch view.
type Model struct {
	sample   SampleFunc
	interval time.Duration
	spin     spinner.Model

	line    string
	err     error
	sampled bool // true once the first sample has landed
	samples int
	history []string // previous lines, newest last

	width    int
	height   int
	quitting bool
}

// NewModel creates a watch model sampling via fn every interval.
func NewModel(fn SampleFunc, interval time.Duration) Model {
	if interval <= 0 {
		interval = defaultInterval
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorInfo)
	return Model{
		sample:   fn,
		interval: interval,
		spin:     s,
		history:  make([]string, 0, maxHistory),
	}
}

// Init starts the spinner and fires the first sample immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, sampleCmd(m.sample))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			// Force an immediate refresh between ticks.
			return m, sampleCmd(m.sample)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sampleMsg:
		m.sampled = true
		m.err = msg.err
		if msg.err == nil {
			if m.line != "" {
				m.history = append(m.history, m.line)
				if len(m.history) > maxHistory {
					m.history = m.history[len(m.history)-maxHistory:]
				}
			}
			m.line = msg.line
			m.samples++
		}
		return m, tickCmd(m.interval)

	case tickMsg:
		return m, sampleCmd(m.sample)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// sampleCmd runs one blocking sample off the update loop.
func sampleCmd(fn SampleFunc) tea.Cmd {
	return func() tea.Msg {
		line, err := fn()
		return sampleMsg{line: line, err: err}
	}
}

// tickCmd schedules the next sample after the poll interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Line returns the most recent status line (for tests).
func (m Model) Line() string { return m.line }

// Samples returns how many samples have landed (for tests).
func (m Model) Samples() int { return m.samples }
