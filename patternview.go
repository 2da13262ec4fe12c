package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen position of the motif grid, used by designerCellAt.
const (
	designerLeft = formWidth + 3
	designerTop  = 4
)

func (m model) handlePatternKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.designer
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "esc", "q":
		d.painter.PointerUp()
		m.mode = ModeNormal
	case "enter":
		if m.applyPattern() {
			m.mode = ModeNormal
		}
	case "h", "left":
		d.MoveCursor(-1, 0)
	case "l", "right":
		d.MoveCursor(1, 0)
	case "k", "up":
		d.MoveCursor(0, -1)
	case "j", "down":
		d.MoveCursor(0, 1)
	case " ":
		d.PaintCursor()
	case "s":
		d.CycleSymmetry()
	case "g":
		if err := d.Generate(m.rng); err != nil {
			m.errorMessage = "Cannot generate pattern: " + err.Error()
		}
	case "u":
		if !d.Undo() {
			m.errorMessage = "Nothing to undo"
		}
	case "+", "=":
		d.SetSize(d.width+1, d.height)
	case "-", "_":
		d.SetSize(d.width-1, d.height)
	case ">", ".":
		d.SetSize(d.width, d.height+1)
	case "<", ",":
		d.SetSize(d.width, d.height-1)
	case "c":
		m.inputField = FieldDesignerSwatch
		m.inputReturn = ModePattern
		m.inputText = ""
		m.mode = ModeInput
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		d.Select(int(key[0] - '1'))
	}
	return m, nil
}

func (m model) patternView() string {
	d := m.designer
	pad := "  "
	lines := []string{
		pad + titleStyle.Render("Design Pattern"),
		pad + fmt.Sprintf("Size %dx%d   Symmetry: %s", d.width, d.height, d.symmetry.Label()),
		"",
		"",
	}
	for y, row := range d.grid {
		var b strings.Builder
		b.WriteString(pad)
		for x, idx := range row {
			c := d.palette.Color(idx)
			cell := "  "
			if d.cursor == (Cell{Row: y, Col: x}) {
				cell = "[]"
			}
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(HexString(c))).
				Foreground(lipgloss.Color(contrastHex(c))).
				Render(cell))
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, "", pad+"Colors:", pad+strings.ReplaceAll(swatchRow(d.palette, d.selected), "\n", "\n"+pad))
	if !d.painter.CanUndo() {
		lines = append(lines, "", pad+dimStyle.Render("undo: nothing to undo"))
	}
	return strings.Join(lines, "\n")
}
