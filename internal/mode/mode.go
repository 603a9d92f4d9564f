// Package mode implements the editor's modal state machine. Transitions
// are validated against the currently focused pane; illegal transitions
// are no-ops rather than errors, so callers can dispatch key commands
// without pre-checking legality.
package mode

// Mode is one of the editor's input modes.
type Mode int

const (
	// Normal is the default mode: navigation and command dispatch.
	Normal Mode = iota
	// Insert accepts character-level typing into the matrix.
	Insert
	// Visual extends an active selection.
	Visual
	// FileSelect is the modal file picker; it captures all input until
	// confirmed or cancelled.
	FileSelect
	// TextEditModal is the small prefilled edit box opened by typing
	// over a selected cell.
	TextEditModal
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case FileSelect:
		return "FILES"
	case TextEditModal:
		return "EDIT"
	}
	return "?"
}

// Modal reports whether the mode captures all input in an overlay.
func (m Mode) Modal() bool { return m == FileSelect || m == TextEditModal }

// Machine tracks the current mode and enforces legal transitions.
// The zero value starts in Normal.
type Machine struct {
	cur Mode
}

// Current returns the active mode.
func (s *Machine) Current() Mode { return s.cur }

// To attempts a transition. matrixFocused reports whether the MatrixView
// pane holds focus; Insert, Visual and TextEditModal are only reachable
// while it does. Returns true when the transition was taken.
func (s *Machine) To(target Mode, matrixFocused bool) bool {
	if target == s.cur {
		return false
	}
	switch target {
	case Normal:
		// every mode can fall back to Normal
	case Insert, Visual, TextEditModal:
		if s.cur != Normal || !matrixFocused {
			return false
		}
	case FileSelect:
		// reachable from any non-modal state
		if s.cur.Modal() {
			return false
		}
	default:
		return false
	}
	s.cur = target
	return true
}

// Cancel drops back to Normal from any mode.
func (s *Machine) Cancel() { s.cur = Normal }
