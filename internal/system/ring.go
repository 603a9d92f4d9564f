package system

import "strings"

// Ring keeps the last N log lines for the aux output pane. It is an
// io.Writer so it can sit behind the logger's MultiWriter; the event
// loop is the only reader, no locking needed.
type Ring struct {
	cap     int
	lines   []string
	partial string
}

// NewRing creates a ring holding up to capacity lines.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{cap: capacity}
}

// Write implements io.Writer, splitting input into lines.
func (r *Ring) Write(p []byte) (int, error) {
	s := r.partial + string(p)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		r.push(s[:i])
		s = s[i+1:]
	}
	r.partial = s
	return len(p), nil
}

// Lines returns the buffered lines, oldest first.
func (r *Ring) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *Ring) push(line string) {
	if line == "" {
		return
	}
	r.lines = append(r.lines, line)
	if len(r.lines) > r.cap {
		r.lines = r.lines[len(r.lines)-r.cap:]
	}
}
