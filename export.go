package main

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) startExport(op FileOperation, name string) {
	if !m.store.HasContent() {
		m.errorMessage = "Nothing to export, press n for a new layout"
		return
	}
	m.fileOp = op
	m.filename = name
	m.inputReturn = m.mode
	m.mode = ModeFileInput
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = m.inputReturn
		m.filename = ""
	case tea.KeyEnter:
		filename := strings.TrimSpace(m.filename)
		if filename == "" {
			m.errorMessage = "Filename cannot be empty"
			return m, nil
		}
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		m.export(m.config.GetSavePath(filename))
		m.mode = m.inputReturn
		m.filename = ""
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) export(path string) {
	var img image.Image
	switch m.fileOp {
	case FileOpSaveLegend:
		legend, err := RenderLegend(m.store.State())
		if err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting legend: %s", err.Error())
			return
		}
		img = legend
	default:
		// re-render so the file never depends on what the preview last showed
		img = m.compositor.Render(m.store.State(), m.grout, m.showGrid)
	}

	if err := SavePNG(path, img); err != nil {
		m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
		return
	}
	absPath, _ := filepath.Abs(path)
	log.Printf("exported %s", absPath)
	m.successMessage = fmt.Sprintf("Exported to %s", absPath)
	m.errorMessage = ""
}
