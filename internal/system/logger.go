package system

import (
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"

	"pagegrid/internal/config"
)

// Logger is the shared application logger. CLI subcommands log to
// stderr; the TUI redirects it to a file (the alt screen owns stderr)
// via UseFileSink.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// UseFileSink points Logger at pagegrid.log under the config dir, teeing
// into extra writers (the aux pane ring). Returns a close func.
func UseFileSink(extra ...io.Writer) (func(), error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "pagegrid.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	ws := append([]io.Writer{f}, extra...)
	Logger.SetOutput(io.MultiWriter(ws...))
	return func() {
		Logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
