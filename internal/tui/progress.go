// Package tui draws terminal progress for long odds calculations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/pokerodds/equity"
	"github.com/muesli/termenv"
)

const maxBarWidth = 60

// ProgressMsg reports completions or trials done out of total
type ProgressMsg struct {
	Done  int
	Total int
}

// DoneMsg ends the program once the work finishes
type DoneMsg struct {
	Err error
}

// Model is a Bubble Tea model showing a single progress bar
type Model struct {
	title    string
	bar      progress.Model
	done     int
	total    int
	finished bool
	err      error
}

// NewModel creates a progress model. With color false the bar is drawn
// with plain characters.
func NewModel(title string, color bool) Model {
	opts := []progress.Option{progress.WithWidth(40)}
	if color {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii), progress.WithoutPercentage())
	}
	return Model{
		title: title,
		bar:   progress.New(opts...),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.done = msg.Done
		m.total = msg.Total

	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-len(m.title)-20, maxBarWidth)
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the progress line
func (m Model) View() string {
	if m.finished {
		return ""
	}
	var b strings.Builder
	b.WriteString(InfoStyle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(m.bar.ViewAs(m.Fraction()))
	if m.total > 0 {
		fmt.Fprintf(&b, " %d/%d", m.done, m.total)
	}
	b.WriteString("\n")
	return b.String()
}

// Fraction returns how much of the work is done, from 0 to 1
func (m Model) Fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Finished reports whether the work completed
func (m Model) Finished() bool {
	return m.finished
}

// throttle forwards progress only when the whole percentage changes.
// Equity engines serialize progress calls so no locking is needed.
func throttle(send func(tea.Msg)) equity.ProgressFunc {
	last := -1
	return func(done, total int) {
		if total <= 0 {
			return
		}
		pct := done * 100 / total
		if pct == last && done != total {
			return
		}
		last = pct
		send(ProgressMsg{Done: done, Total: total})
	}
}

// Run runs work while drawing a progress bar to out. work must pass the
// progress function it is given to the equity engine. Interrupting the
// program cancels the context handed to work.
func Run(ctx context.Context, out io.Writer, title string, color bool,
	work func(ctx context.Context, progress equity.ProgressFunc) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, color),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	workErr := make(chan error, 1)
	go func() {
		err := work(ctx, throttle(p.Send))
		workErr <- err
		p.Send(DoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err == nil {
		if m, ok := final.(Model); ok && m.Finished() {
			return <-workErr
		}
	}

	cancel()
	if werr := <-workErr; werr != nil {
		return werr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return context.Canceled
}
