// Package teatest drives bubbletea models synchronously in tests.
//
// Driver calls Update directly and drains returned Cmds on the test
// goroutine's schedule, so view assertions run against a settled model.
// Cmds that do not return within the driver's timeout are dropped; this
// is how blocking timer Cmds such as cursor blinks are skipped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may trigger.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates message factories, which return at once,
// from timer Cmds such as cursor blinks (~530ms).
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg has been seen.
	Quitting bool

	timeout time.Duration
	seen    []tea.Msg
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithCmdTimeout sets how long a Cmd may run before it is dropped. Use it
// when Cmds do real work such as database queries.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit runs the model's Init command and drains what follows.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a key of the given type, e.g. tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Press(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Press(tea.KeyEsc)
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.Press(tea.KeyTab)
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Press(tea.KeySpace)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.Press(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Press(tea.KeyDown)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Press(tea.KeyCtrlC)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── inspection ───────────────────────────────────────────────────────────────

// View returns the rendered model.
func (d *Driver) View() string {
	return d.Model.View()
}

// Seen returns every message the driver fed back into the model, oldest
// first.
func (d *Driver) Seen() []tea.Msg {
	return d.seen
}

// ViewContains fails the test unless the rendered view contains all of
// wants.
func (d *Driver) ViewContains(wants ...string) {
	d.T.Helper()
	view := d.View()
	for _, w := range wants {
		if !strings.Contains(view, w) {
			d.T.Fatalf("view does not contain %q:\n%s", w, view)
		}
	}
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.exec(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
	}

	d.seen = append(d.seen, msg)
	updated, next := d.Model.Update(msg)
	d.Model = updated
	if d.Quitting {
		return
	}
	d.drainCmd(next, depth+1)
}

// exec runs cmd on a goroutine and returns nil if it outlives the timeout.
func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.timeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
