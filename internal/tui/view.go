package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"traceview/internal/surface"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" traceview ─ trace playback ") +
		dimStyle.Render(" "+filepath.Base(m.tracePath))
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	mapW, mapH := m.mapArea()
	mapView := lipgloss.NewStyle().Width(mapW).Height(mapH).Render(m.renderGrid())

	var body string
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(m.width).Render(status) + "\n" +
		lipgloss.NewStyle().Width(m.width).Render(" "+m.help.View(keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

// renderGrid composes the trail, the optional braille path overlay and
// the cursor marker into the grid lines.
func (m Model) renderGrid() string {
	if m.driver == nil {
		return ""
	}
	g := m.geom
	t := m.driver.Trail()
	trail := markerRune(m.cfg.Style.Trail, '.')

	rows := make([][]rune, g.Height)
	for y := range rows {
		row := make([]rune, g.Width)
		for x := range row {
			if t.Marked(x, y) {
				row[x] = trail
			} else {
				row[x] = ' '
			}
		}
		rows[y] = row
	}

	if m.showPath && len(m.path) > 1 {
		br := surface.NewBraille(g.Width, g.Height)
		proj := surface.Projector{Bounds: m.bounds, Geom: g}
		px, py := 0, 0
		for i, p := range m.path {
			mx, my := proj.Micro(p[0], p[1])
			if i > 0 {
				br.Line(px, py, mx, my)
			}
			px, py = mx, my
		}
		for y, line := range br.Rows() {
			if y >= len(rows) {
				break
			}
			for x, r := range []rune(line) {
				if r != ' ' && x < len(rows[y]) {
					rows[y][x] = r
				}
			}
		}
	}

	lines := make([]string, g.Height)
	for y, row := range rows {
		if m.hasFrame && m.frame.OnGrid && m.frame.CursorY == y {
			x := m.frame.CursorX
			lines[y] = string(row[:x]) +
				cursorStyle.Render(string(markerRune(m.cfg.Style.Cursor, '@'))) +
				string(row[x+1:])
			continue
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func markerRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
