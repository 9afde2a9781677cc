// Package tui is the interactive playback viewer: it paces frames with
// tick messages, accumulates the trail on screen and replays the trace
// when the underlying file changes.
package tui

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"traceview/internal/config"
	"traceview/internal/playback"
	"traceview/internal/surface"
	"traceview/internal/trace"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	tracePath string
	states    trace.Trace
	bounds    trace.Bounds
	cfg       config.Config
	opts      playback.Options

	geom     surface.Geometry
	driver   *playback.Driver
	frame    playback.Frame
	hasFrame bool
	done     bool
	paused   bool
	gen      int // invalidates stale tick chains

	// scaled world coordinates of the sampled states so far, feeding
	// the braille path overlay
	path [][2]float64

	showPath    bool
	showSidebar bool

	status string

	cwd string
	l   list.Model

	help help.Model

	watcher *fsnotify.Watcher
}

func New(path string, states trace.Trace, bounds trace.Bounds, cfg config.Config, opts playback.Options) Model {
	m := Model{
		tracePath: path,
		states:    states,
		bounds:    bounds,
		cfg:       cfg,
		opts:      opts,
		status:    "playing " + filepath.Base(path),
		help:      help.New(),
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Traces"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	if w, err := fsnotify.NewWatcher(); err == nil {
		if err := w.Add(path); err == nil {
			m.watcher = w
		} else {
			w.Close()
		}
	}
	return m
}

// Init only starts the file watch; playback begins once the first
// WindowSizeMsg fixes the surface geometry.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return watchFile(m.watcher)
	}
	return nil
}

type tickMsg struct{ gen int }

func (m Model) tick() tea.Cmd {
	delay := m.opts.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// rebuild derives a fresh geometry from the current layout and starts a
// new run: new driver, empty trail, playback from the first state. A
// partially played trace is never resumed onto a new mask.
func (m *Model) rebuild() {
	mapW, mapH := m.mapArea()
	g := surface.Geometry{
		Width:  min(m.cfg.Surface.MaxWidth, mapW),
		Height: min(m.cfg.Surface.MaxHeight, mapH),
	}
	if g.Width < 1 {
		g.Width = 1
	}
	if g.Height < 1 {
		g.Height = 1
	}
	m.geom = g
	m.driver = playback.New(m.states, m.bounds, g, m.opts)
	m.path = m.path[:0]
	m.hasFrame = false
	m.done = false
	m.paused = false
	m.gen++
}

// mapArea returns the cell extent available to the grid: one header
// row and two footer rows are reserved, plus the sidebar when shown.
func (m Model) mapArea() (int, int) {
	h := m.height - 3
	if h < 4 {
		h = 4
	}
	w := m.width
	if m.showSidebar {
		w -= sidebarWidth + 1
	}
	if w < 10 {
		w = 10
	}
	return w, h
}
