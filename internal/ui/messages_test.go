package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Closing the watcher (file reopen, quit) must also release the pending
// subscribe command, or every reopen leaks a goroutine blocked on the
// forward channel.
func TestWatchSubscribeReturnsOnWatcherClose(t *testing.T) {
	f := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(f, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	msg := startWatchCmd(f)()
	ws, ok := msg.(watchStartedMsg)
	if !ok {
		t.Fatalf("startWatchCmd returned %T, want watchStartedMsg", msg)
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- watchSubscribeCmd(ws.ch)() }()

	if err := ws.w.Close(); err != nil {
		t.Fatalf("close watcher: %v", err)
	}
	select {
	case got := <-done:
		if got != nil {
			t.Fatalf("subscriber after watcher close returned %T, want nil", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber still blocked after watcher close")
	}
}

func TestWatchSubscribeNilChannel(t *testing.T) {
	if got := watchSubscribeCmd(nil)(); got != nil {
		t.Fatalf("nil channel returned %T, want nil", got)
	}
}
