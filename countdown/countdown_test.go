package countdown

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRunCountsDown(t *testing.T) {
	var out bytes.Buffer
	c := &Countdown{Seconds: 3, Failsafe: true, Out: &out, Tick: time.Millisecond}

	if err := c.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "3 seconds to click into target window...") {
		t.Errorf("missing heading: %q", got)
	}
	if !strings.Contains(got, "screen corner to abort") {
		t.Errorf("missing failsafe hint: %q", got)
	}
	i3, i2, i1 := strings.Index(got, "3..."), strings.Index(got, "2..."), strings.Index(got, "1...")
	if i3 < 0 || i2 < i3 || i1 < i2 {
		t.Errorf("countdown out of order: %q", got)
	}
}

func TestRunTakesTheDelay(t *testing.T) {
	c := &Countdown{Seconds: 2, Tick: 20 * time.Millisecond}
	start := time.Now()
	if err := c.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("returned after %v, want at least 40ms", elapsed)
	}
}

func TestRunZero(t *testing.T) {
	var out bytes.Buffer
	for _, s := range []int{0, -3} {
		c := &Countdown{Seconds: s, Out: &out}
		if err := c.Run(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if out.Len() != 0 {
		t.Errorf("printed for a zero delay: %q", out.String())
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Countdown{Seconds: 60, Tick: time.Hour}

	if err := c.Run(ctx); !errors.Is(err, ErrInterrupted) {
		t.Errorf("got %v, want ErrInterrupted", err)
	}
}

func TestModelTicksToQuit(t *testing.T) {
	var m tea.Model = newModel(2, false, time.Second)

	m, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected another tick after the first second")
	}
	if got := m.(model).remaining; got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}
	if !strings.Contains(m.View(), "1...") {
		t.Errorf("view = %q", m.View())
	}

	m, cmd = m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("countdown did not quit at zero")
	}
	if m.(model).interrupted {
		t.Error("completed countdown marked interrupted")
	}
}

func TestModelCtrlC(t *testing.T) {
	var m tea.Model = newModel(5, true, time.Second)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.(model).interrupted {
		t.Error("ctrl+c not recorded")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}
