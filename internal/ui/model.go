package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"pagegrid/internal/config"
	"pagegrid/internal/input"
	"pagegrid/internal/layout"
	"pagegrid/internal/matrix"
	"pagegrid/internal/mode"
	"pagegrid/internal/pdf"
	"pagegrid/internal/render"
	"pagegrid/internal/system"
)

// model is the single owned state struct threaded through the event
// loop. All mutation happens between event dispatches; nothing here is
// shared with another goroutine.
type model struct {
	cfg      config.Settings
	width    int
	height   int
	quitting bool

	lay    *layout.Manager
	modes  mode.Machine
	router *input.Router
	orch   *render.Orchestrator

	// open document
	doc  *pdf.Document
	page int

	// matrix editor state
	mat       *matrix.Matrix
	cursor    matrix.Pos
	sel       *matrix.Selection
	clip      matrix.Clip
	scrollRow int

	// overlays
	fs fileSelect
	em editModal

	// split border drag in progress
	splitDrag bool

	// aux output
	ring *system.Ring

	// file watcher
	watcher *fsnotify.Watcher
	watchCh chan struct{}

	status      string
	statusIsErr bool
}

func initialModel(cfg config.Settings, path string) model {
	m := model{
		cfg:    cfg,
		lay:    layout.New(cfg.CellPixelWidth, cfg.CellPixelHeight, cfg.SplitRatio),
		router: input.NewRouter(cfg.ClickThresholdCells),
		orch:   render.New(nil),
		mat:    matrix.New(nil),
		ring:   system.NewRing(64),
		fs:     newFileSelect(),
		em:     newEditModal(),
	}
	m.lay.SetFocus(layout.PaneMatrix)
	if path != "" {
		m.openDocument(path)
	} else {
		m.status = "press o to open a file"
	}
	return m
}

// InitialModel builds the TUI model for the app entry point. ring is the
// log tee shown in the aux pane; nil keeps a private buffer.
func InitialModel(cfg config.Settings, path string, ring *system.Ring) tea.Model {
	m := initialModel(cfg, path)
	if ring != nil {
		m.ring = ring
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.doc != nil {
		return startWatchCmd(m.doc.Path)
	}
	return nil
}

// matrixFocused reports whether the MatrixView pane holds focus.
func (m *model) matrixFocused() bool {
	return m.lay.Focused().ID == layout.PaneMatrix
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *model) setError(s string) {
	m.status = s
	m.statusIsErr = true
	system.Logger.Error(s)
}
