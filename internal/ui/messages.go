package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}

// fileChangedMsg fires when the opened PDF was rewritten on disk.
type fileChangedMsg struct{}

func startWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		if err := w.Add(path); err != nil {
			_ = w.Close()
			return nil
		}
		ch := make(chan struct{}, 1)
		go func() {
			// Closing ch releases the pending subscribe command once the
			// watcher shuts down.
			defer close(ch)
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		if _, ok := <-ch; !ok {
			return nil
		}
		// writers often replace the file in several operations; let the
		// dust settle before re-extracting
		time.Sleep(150 * time.Millisecond)
		return fileChangedMsg{}
	}
}
