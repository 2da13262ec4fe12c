package main

import (
	"errors"
	"image"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// resizeMsg fires once the geometry fields have been quiet for
// resizeDebounce. Only the newest sequence number is acted on.
type resizeMsg struct {
	seq int
}

// scheduleResize supersedes any pending resize; the last edit of a burst
// always runs.
func (m *model) scheduleResize() tea.Cmd {
	m.resizeSeq++
	seq := m.resizeSeq
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeMsg{seq: seq}
	})
}

func (m *model) newLayout() {
	if err := m.store.NewLayout(m.layout, m.palette, m.symmetry, m.rng); err != nil {
		m.errorMessage = "Cannot generate layout: " + err.Error()
		return
	}
	m.painter.Forget()
	m.clampCursor()
	m.redraw()
	if !m.store.HasContent() {
		m.awaitingRoom = true
		m.errorMessage = tooSmallMessage
		return
	}
	m.awaitingRoom = false
	shape := m.store.State().Shape()
	log.Printf("new layout %dx%d, %d colors, symmetry %s", shape.Cols, shape.Rows, len(m.palette), m.symmetry)
}

const tooSmallMessage = "Room is smaller than one tile, the layout returns once one fits"

func (m *model) applyResize() {
	if !m.store.HasContent() {
		if m.awaitingRoom {
			m.restoreLayout()
		}
		return
	}
	err := m.store.Resize(m.layout, m.rng)
	switch {
	case errors.Is(err, ErrZeroArea):
		m.awaitingRoom = true
		m.errorMessage = tooSmallMessage
	case err != nil:
		m.errorMessage = "Cannot resize: " + err.Error()
	default:
		shape := m.store.State().Shape()
		log.Printf("resized to %dx%d", shape.Cols, shape.Rows)
	}
	m.painter.Forget()
	m.clampCursor()
	m.redraw()
}

// restoreLayout regenerates a mosaic that a too-small room cleared. A kept
// pattern template is tiled again; otherwise the fill is random.
func (m *model) restoreLayout() {
	var err error
	if tmpl := m.store.Template(); tmpl != nil {
		if err = m.store.ApplyPattern(m.layout, *tmpl); err == nil {
			m.store.Recolor(m.palette)
		}
	} else {
		err = m.store.NewLayout(m.layout, m.palette, m.symmetry, m.rng)
	}
	if err != nil {
		m.errorMessage = "Cannot restore layout: " + err.Error()
		return
	}
	m.painter.Forget()
	m.clampCursor()
	m.redraw()
	if !m.store.HasContent() {
		m.errorMessage = tooSmallMessage
		return
	}
	m.awaitingRoom = false
	m.errorMessage = ""
	m.successMessage = "Layout restored"
	shape := m.store.State().Shape()
	log.Printf("restored layout %dx%d", shape.Cols, shape.Rows)
}

func (m *model) applyPattern() bool {
	tmpl := m.designer.Template()
	if err := m.store.ApplyPattern(m.layout, tmpl); err != nil {
		m.errorMessage = "Cannot apply pattern: " + err.Error()
		return false
	}
	m.palette = tmpl.Palette.Clone()
	m.tileCount = len(m.palette)
	m.selectedColor = min(m.selectedColor, m.tileCount-1)
	m.painter.Forget()
	m.clampCursor()
	m.redraw()
	if !m.store.HasContent() {
		m.awaitingRoom = true
		m.errorMessage = tooSmallMessage
		return true
	}
	m.awaitingRoom = false
	m.successMessage = "Pattern applied"
	return true
}

// recolor pushes the form palette into the mosaic so swatch edits show at once.
func (m *model) recolor() {
	m.store.Recolor(m.palette)
	m.redraw()
}

func (m *model) undo() {
	if m.painter.Undo() {
		m.redraw()
		m.successMessage = "Undone"
		return
	}
	m.errorMessage = "Nothing to undo"
}

func (m *model) selectColor(i int) {
	if i >= 0 && i < len(m.palette) {
		m.selectedColor = i
	}
}

func (m *model) paintAtCursor() {
	if m.painter.PointerDown(m.cursor, m.store.HasContent(), m.selectedColor) {
		m.painter.PointerUp()
		m.redraw()
	}
}

func (m *model) clampCursor() {
	shape := m.store.State().Shape()
	m.cursor.Col = clampInt(m.cursor.Col, 0, max(0, shape.Cols-1))
	m.cursor.Row = clampInt(m.cursor.Row, 0, max(0, shape.Rows-1))
}

// redraw re-renders the preview surface from the store. View only reads the
// result.
func (m *model) redraw() {
	m.surface = nil
	m.preview = previewView{left: formWidth + 1}
	if !m.store.HasContent() {
		return
	}
	cols := m.width - m.preview.left
	rows := m.height - statusLines
	if cols <= 0 || rows <= 0 {
		return
	}

	state := m.store.State()
	m.previewComp = NewCompositor(Converter{PxPerCm: previewDensity(state, m.grout, cols, rows*2)})
	m.surface = m.previewComp.Render(state, m.grout, m.showGrid)
	m.preview.image, m.preview.scale = fitSurface(m.surface, cols, rows*2)
}

// previewDensity picks a pixel density that renders the mosaic at about twice
// the preview size, never finer than the export density.
func previewDensity(state *MosaicState, grout GroutMetrics, maxW, maxH int) float64 {
	shape := state.Shape()
	widthCm := float64(shape.Cols)*state.TileSize + float64(shape.Cols+1)*grout.Width
	heightCm := float64(shape.Rows)*state.TileSize + float64(shape.Rows+1)*grout.Width
	k := cmToPx
	if widthCm > 0 {
		k = min(k, 2*float64(maxW)/widthCm)
	}
	if heightCm > 0 {
		k = min(k, 2*float64(maxH)/heightCm)
	}
	if k <= 0 || !finite(k) {
		return cmToPx
	}
	return k
}

// surfacePoint converts a terminal cell inside the preview to a surface pixel.
func (m *model) surfacePoint(x, y int) (image.Point, bool) {
	pv := m.preview
	if pv.image == nil || pv.scale <= 0 {
		return image.Point{}, false
	}
	px := x - pv.left
	py := (y-pv.top)*2 + 1
	b := pv.image.Bounds()
	if px < 0 || py < 0 || px >= b.Dx() || py >= b.Dy() {
		return image.Point{}, false
	}
	return image.Point{
		X: int((float64(px) + 0.5) / pv.scale),
		Y: int(float64(py) / pv.scale),
	}, true
}

func (m *model) mosaicCellAt(x, y int) (Cell, bool) {
	pt, ok := m.surfacePoint(x, y)
	if !ok || !m.store.HasContent() {
		return Cell{}, false
	}
	state := m.store.State()
	return m.previewComp.Metrics(state, m.grout).ToCell(pt.X, pt.Y, state.Shape())
}
