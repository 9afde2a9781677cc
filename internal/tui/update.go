package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"traceview/internal/trace"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-3)
		}
		m.rebuild()
		return m, m.tick()

	case tickMsg:
		if msg.gen != m.gen || m.driver == nil {
			return m, nil
		}
		f, ok := m.driver.Next()
		if !ok {
			m.done = true
			m.status = fmt.Sprintf("finished  %d states", len(m.states))
			return m, nil
		}
		m.frame = f
		m.hasFrame = true
		m.path = append(m.path, [2]float64{f.X, f.Y})
		m.status = fmt.Sprintf("step %d  (%d/%d)", f.Step, f.Index+1, len(m.states))
		return m, m.tick()

	case fileChangedMsg:
		m.reload()
		return m, tea.Batch(m.tick(), watchFile(m.watcher))

	case tea.KeyMsg:
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, keys.Quit):
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Pause):
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			m.gen++ // drop the pending tick chain either way
			if m.paused {
				m.status = "paused"
				return m, nil
			}
			m.status = "playing"
			return m, m.tick()

		case key.Matches(msg, keys.Restart):
			m.rebuild()
			m.status = "restarted"
			return m, m.tick()

		case key.Matches(msg, keys.Path):
			m.showPath = !m.showPath

		case key.Matches(msg, keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-3)
			}
			// map width changed, so the run starts over
			m.rebuild()
			return m, m.tick()

		case key.Matches(msg, keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(traceItem); ok {
					m.openTrace(it.path)
					return m, m.tick()
				}
			}

		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reload re-reads the watched trace file and replays it from the start.
// A malformed rewrite keeps the current run and surfaces the error in
// the status line.
func (m *Model) reload() {
	states, err := trace.Load(m.tracePath)
	if err != nil {
		// the caller schedules a fresh tick; drop the old chain so the
		// run keeps a single pacer
		m.gen++
		m.status = "reload error: " + err.Error()
		return
	}
	m.states = states
	m.bounds = trace.ComputeBounds(states, m.opts.Scale)
	m.rebuild()
	m.status = "trace changed, replaying"
}
