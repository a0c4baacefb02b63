package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	barFull    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	barEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

type model struct {
	total       int
	remaining   int
	failsafe    bool
	tick        time.Duration
	interrupted bool
}

func newModel(seconds int, failsafe bool, tick time.Duration) model {
	return model{total: seconds, remaining: seconds, failsafe: failsafe, tick: tick}
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}

	case tickMsg:
		m.remaining--
		if m.remaining <= 0 {
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	if m.interrupted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d seconds to click into target window...", m.total)))
	b.WriteString("\n")
	if m.failsafe {
		b.WriteString(hintStyle.Render("   (Move mouse to a screen corner to abort, ctrl+c to cancel)"))
		b.WriteString("\n")
	}
	b.WriteString("\n   ")
	if m.remaining > 0 {
		b.WriteString(countStyle.Render(fmt.Sprintf("%d...", m.remaining)))
	} else {
		b.WriteString(doneStyle.Render("go"))
	}
	b.WriteString("  ")
	elapsed := m.total - m.remaining
	b.WriteString(barFull.Render(strings.Repeat("█", elapsed)))
	b.WriteString(barEmpty.Render(strings.Repeat("░", m.remaining)))
	b.WriteString("\n")
	return b.String()
}

// RunTUI runs the countdown as a Bubble Tea program on the terminal. Ctrl+C
// inside the program and cancellation of ctx both return ErrInterrupted.
func (c *Countdown) RunTUI(ctx context.Context, in io.Reader) error {
	if c.Seconds <= 0 {
		return nil
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}

	final, err := tea.NewProgram(newModel(c.Seconds, c.Failsafe, c.tick()), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return ErrInterrupted
		}
		return err
	}
	if m, ok := final.(model); ok && m.interrupted {
		return ErrInterrupted
	}
	return nil
}
