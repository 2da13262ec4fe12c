package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursor.Col -= speed
	case "l", "right", "L", "shift+right":
		m.cursor.Col += speed
	case "k", "up", "K", "shift+up":
		m.cursor.Row -= speed
	case "j", "down", "J", "shift+down":
		m.cursor.Row += speed
	}
	m.clampCursor()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 5
	default:
		return 1
	}
}

// handleMouse drives the painters. Presses outside any tile, including on
// grout, do nothing. A left-button drag that leaves the surface ends the
// stroke, and so does a release anywhere.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode == ModePattern {
		m.handlePatternMouse(msg)
		return
	}
	if m.mode != ModeNormal || !m.editMode {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.painter.Painting() {
			return
		}
		cell, ok := m.mosaicCellAt(msg.X, msg.Y)
		if m.painter.PointerDown(cell, ok, m.selectedColor) {
			m.cursor = cell
			m.redraw()
		}
	case tea.MouseActionMotion:
		if !m.painter.Painting() {
			return
		}
		if msg.Button != tea.MouseButtonLeft {
			// button came up without a release event
			m.painter.PointerUp()
			return
		}
		if _, inside := m.surfacePoint(msg.X, msg.Y); !inside {
			m.painter.PointerUp()
			return
		}
		cell, ok := m.mosaicCellAt(msg.X, msg.Y)
		if m.painter.PointerMove(cell, ok, m.selectedColor) {
			m.cursor = cell
			m.redraw()
		}
	case tea.MouseActionRelease:
		m.painter.PointerUp()
	}
}

// handlePatternMouse paints the motif. Dragging off the motif grid ends the
// stroke like a release.
func (m *model) handlePatternMouse(msg tea.MouseMsg) {
	p := m.designer.painter
	cell, ok := m.designerCellAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || p.Painting() {
			return
		}
		p.PointerDown(cell, ok, m.designer.selected)
	case tea.MouseActionMotion:
		if !p.Painting() {
			return
		}
		if msg.Button != tea.MouseButtonLeft || !ok {
			p.PointerUp()
			return
		}
		p.PointerMove(cell, ok, m.designer.selected)
	case tea.MouseActionRelease:
		p.PointerUp()
	}
	if ok {
		m.designer.cursor = cell
	}
}

// designerCellAt maps a terminal cell to a motif tile; see patternView for
// where the grid is drawn.
func (m *model) designerCellAt(x, y int) (Cell, bool) {
	col := (x - designerLeft) / designerCellWidth
	row := y - designerTop
	if x < designerLeft || row < 0 {
		return Cell{}, false
	}
	c := Cell{Row: row, Col: col}
	if !m.designer.grid.InBounds(c) {
		return Cell{}, false
	}
	return c, true
}
