// Package input decodes raw terminal mouse events into semantic actions.
// A small state machine disambiguates clicks from drags: SingleClick and
// EndDrag are mutually exclusive outcomes of one press-release gesture,
// and UpdateDrag is rate-limited to cell-granularity movement so sub-cell
// motion storms never reach the panes. Pane ownership is resolved once at
// press time and kept for the whole gesture, which scopes mouse capture
// to the pane under the initial press.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"pagegrid/internal/layout"
)

// Action is a semantic input event produced by the Router. Coordinates
// are absolute terminal cells; translating them to pane-relative and
// then to matrix (row, col) is the receiving pane handler's job.
type Action interface{ isAction() }

// SingleClick fires on release of a press that never moved beyond the
// click threshold.
type SingleClick struct {
	Pane layout.PaneID
	X, Y int
	Alt  bool
	Ctrl bool
}

// UpdateDrag fires while a drag is in progress, at most once per cell of
// movement.
type UpdateDrag struct {
	Pane           layout.PaneID
	StartX, StartY int
	X, Y           int
	Alt            bool
	Ctrl           bool
}

// EndDrag fires on release of a gesture that crossed the click threshold.
type EndDrag struct {
	Pane           layout.PaneID
	StartX, StartY int
	EndX, EndY     int
	Alt            bool
	Ctrl           bool
}

// Wheel fires on scroll wheel events over a pane. Delta is negative for
// wheel-up.
type Wheel struct {
	Pane  layout.PaneID
	Delta int
}

func (SingleClick) isAction() {}
func (UpdateDrag) isAction()  {}
func (EndDrag) isAction()     {}
func (Wheel) isAction()       {}

type dragPhase int

const (
	phaseIdle dragPhase = iota
	phasePressed
	phaseDragging
)

// Router turns tea mouse messages into Actions. Not safe for concurrent
// use; it is owned by the event loop.
type Router struct {
	threshold int

	phase          dragPhase
	pane           layout.PaneID
	startX, startY int
	lastX, lastY   int // last emitted drag position
	alt            bool
	ctrl           bool
}

// NewRouter creates a Router with the given click threshold in cells.
// Movement of at least threshold cells (Chebyshev) turns a press into a
// drag; anything less stays a click.
func NewRouter(threshold int) *Router {
	if threshold < 1 {
		threshold = 1
	}
	return &Router{threshold: threshold}
}

// Reset discards any in-flight gesture. Called on mode changes so a
// modal overlay never inherits half a drag.
func (r *Router) Reset() { r.phase = phaseIdle }

// Mouse feeds one terminal mouse event through the state machine and
// returns the resulting Action, or nil when the event is swallowed
// (out-of-pane presses, sub-threshold motion, unknown buttons).
func (r *Router) Mouse(msg tea.MouseMsg, lay *layout.Manager) Action {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if p := lay.PaneAt(msg.X, msg.Y); p != nil {
			d := 1
			if msg.Button == tea.MouseButtonWheelUp {
				d = -1
			}
			return Wheel{Pane: p.ID, Delta: d}
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		p := lay.PaneAt(msg.X, msg.Y)
		if p == nil {
			// outside all panes: drop the whole gesture
			r.phase = phaseIdle
			return nil
		}
		r.phase = phasePressed
		r.pane = p.ID
		r.startX, r.startY = msg.X, msg.Y
		r.lastX, r.lastY = msg.X, msg.Y
		r.alt = msg.Alt
		r.ctrl = msg.Ctrl
		return nil

	case tea.MouseActionMotion:
		switch r.phase {
		case phasePressed:
			if chebyshev(msg.X-r.startX, msg.Y-r.startY) < r.threshold {
				return nil
			}
			r.phase = phaseDragging
		case phaseDragging:
			if msg.X == r.lastX && msg.Y == r.lastY {
				return nil
			}
		default:
			return nil
		}
		r.lastX, r.lastY = msg.X, msg.Y
		return UpdateDrag{
			Pane:   r.pane,
			StartX: r.startX, StartY: r.startY,
			X: msg.X, Y: msg.Y,
			Alt: r.alt, Ctrl: r.ctrl,
		}

	case tea.MouseActionRelease:
		phase := r.phase
		r.phase = phaseIdle
		switch phase {
		case phasePressed:
			return SingleClick{Pane: r.pane, X: msg.X, Y: msg.Y, Alt: r.alt, Ctrl: r.ctrl}
		case phaseDragging:
			return EndDrag{
				Pane:   r.pane,
				StartX: r.startX, StartY: r.startY,
				EndX: msg.X, EndY: msg.Y,
				Alt: r.alt, Ctrl: r.ctrl,
			}
		}
		return nil
	}
	return nil
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
