package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (f Field) Label() string {
	switch f {
	case FieldRoomWidth:
		return "Room width (cm)"
	case FieldRoomHeight:
		return "Room height (cm)"
	case FieldTileSize:
		return "Tile size (cm)"
	case FieldTileCount:
		return "Tile types"
	case FieldSwatch, FieldDesignerSwatch:
		return "Paint color"
	case FieldGroutWidth:
		return "Grout width (cm)"
	case FieldGroutColor:
		return "Grout color"
	case FieldShowGrid:
		return "Show grid"
	case FieldSymmetry:
		return "Symmetry"
	case FieldEditMode:
		return "Edit mode"
	}
	return ""
}

func (m *model) fieldValue(f Field) string {
	switch f {
	case FieldRoomWidth:
		return formatCm(m.layout.RoomWidth)
	case FieldRoomHeight:
		return formatCm(m.layout.RoomHeight)
	case FieldTileSize:
		return formatCm(m.layout.TileSize)
	case FieldTileCount:
		return strconv.Itoa(m.tileCount)
	case FieldSwatch:
		return fmt.Sprintf("%d %s", m.selectedColor+1, HexString(m.palette.Color(m.selectedColor)))
	case FieldGroutWidth:
		return formatCm(m.grout.Width)
	case FieldGroutColor:
		return HexString(m.grout.Color)
	case FieldShowGrid:
		return onOff(m.showGrid)
	case FieldSymmetry:
		return m.symmetry.Label()
	case FieldEditMode:
		return onOff(m.editMode)
	}
	return ""
}

// adjustField nudges a field by dir steps. Geometry changes are debounced;
// everything else redraws at once.
func (m *model) adjustField(f Field, dir int) tea.Cmd {
	d := float64(dir)
	switch f {
	case FieldRoomWidth:
		return m.setGeometry(func(l *Layout) { l.RoomWidth = max(0, l.RoomWidth+d*roomStep) })
	case FieldRoomHeight:
		return m.setGeometry(func(l *Layout) { l.RoomHeight = max(0, l.RoomHeight+d*roomStep) })
	case FieldTileSize:
		return m.setGeometry(func(l *Layout) { l.TileSize = max(tileStep, l.TileSize+d*tileStep) })
	case FieldTileCount:
		m.setTileCount(m.tileCount + dir)
	case FieldSwatch:
		m.selectColor(m.selectedColor + dir)
	case FieldGroutWidth:
		m.grout.Width = clampFloat(m.grout.Width+d*groutStep, 0, maxGrout)
		m.redraw()
	case FieldShowGrid:
		m.showGrid = !m.showGrid
		m.redraw()
	case FieldSymmetry:
		m.symmetry = m.symmetry.Next()
		m.painter.SetSymmetry(m.symmetry)
	case FieldEditMode:
		m.editMode = !m.editMode
	}
	return nil
}

func (m *model) setGeometry(change func(*Layout)) tea.Cmd {
	next := m.layout
	change(&next)
	if next == m.layout {
		return nil
	}
	m.layout = next
	return m.scheduleResize()
}

// setTileCount re-creates the palette. Custom colours are lost.
func (m *model) setTileCount(n int) {
	n = clampInt(n, 1, maxTiles)
	if n == m.tileCount {
		return
	}
	m.tileCount = n
	m.palette = m.palette.Resize(n)
	m.selectedColor = min(m.selectedColor, n-1)
	m.recolor()
}

func (m *model) startFieldInput(f Field) {
	switch f {
	case FieldShowGrid, FieldSymmetry, FieldEditMode:
		m.adjustField(f, 1)
		return
	}
	m.inputField = f
	m.inputReturn = m.mode
	m.inputText = ""
	m.mode = ModeInput
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = m.inputReturn
		m.inputText = ""
		return m, nil
	case tea.KeyEnter:
		cmd, err := m.commitInput(m.inputField, strings.TrimSpace(m.inputText))
		if err != nil {
			// rejected input leaves everything as it was
			m.errorMessage = err.Error()
		} else {
			m.errorMessage = ""
		}
		m.mode = m.inputReturn
		m.inputText = ""
		return m, cmd
	case tea.KeyBackspace:
		if r := []rune(m.inputText); len(r) > 0 {
			m.inputText = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.inputText += " "
		return m, nil
	case tea.KeyRunes:
		m.inputText += string(msg.Runes)
	}
	return m, nil
}

func (m *model) commitInput(f Field, text string) (tea.Cmd, error) {
	switch f {
	case FieldRoomWidth, FieldRoomHeight, FieldTileSize:
		v, err := parseLength(text)
		if err != nil {
			return nil, err
		}
		return m.setGeometry(func(l *Layout) {
			switch f {
			case FieldRoomWidth:
				l.RoomWidth = v
			case FieldRoomHeight:
				l.RoomHeight = v
			default:
				l.TileSize = v
			}
		}), nil
	case FieldTileCount:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("tile types must be a whole number of at least 1")
		}
		m.setTileCount(n)
	case FieldGroutWidth:
		v, err := parseLength(text)
		if err != nil {
			return nil, err
		}
		m.grout.Width = clampFloat(v, 0, maxGrout)
		m.redraw()
	case FieldGroutColor:
		c, err := ParseColorInput(text)
		if err != nil {
			return nil, err
		}
		m.grout.Color = c
		m.redraw()
	case FieldSwatch:
		c, err := ParseColorInput(text)
		if err != nil {
			return nil, err
		}
		m.palette.Set(m.selectedColor, c)
		m.recolor()
	case FieldDesignerSwatch:
		c, err := ParseColorInput(text)
		if err != nil {
			return nil, err
		}
		m.designer.SetSwatch(m.designer.selected, c)
	}
	return nil, nil
}

func parseLength(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(text, "cm")), 64)
	if err != nil || !finite(v) || v < 0 {
		return 0, fmt.Errorf("%q is not a length in cm", text)
	}
	return v, nil
}

func formatCm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
