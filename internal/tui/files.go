package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"traceview/internal/trace"
)

type traceItem struct {
	title string
	path  string
}

func (t traceItem) Title() string       { return t.title }
func (t traceItem) Description() string { return "" }
func (t traceItem) FilterValue() string { return t.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		items = append(items, traceItem{title: name, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].(traceItem).title < items[j].(traceItem).title
	})
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .json traces in current directory"
	}
}

// openTrace switches playback to another trace file.
func (m *Model) openTrace(path string) {
	states, err := trace.Load(path)
	if err != nil {
		// the caller schedules a fresh tick either way; keep one pacer
		m.gen++
		m.status = "load error: " + err.Error()
		return
	}
	if m.watcher != nil {
		_ = m.watcher.Remove(m.tracePath)
		_ = m.watcher.Add(path)
	}
	m.tracePath = path
	m.states = states
	m.bounds = trace.ComputeBounds(states, m.opts.Scale)
	m.rebuild()
	m.status = "loaded: " + filepath.Base(path)
}
