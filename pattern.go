package main

import (
	"image/color"
	"math/rand"
)

const (
	minPatternSize     = 1
	maxPatternSize     = 20
	defaultPatternSize = 3
)

// PatternDesigner edits a small motif with its own palette copy, symmetry
// and undo, independent of the main mosaic.
type PatternDesigner struct {
	width    int
	height   int
	grid     TileGrid
	palette  Palette
	symmetry Symmetry
	selected int
	cursor   Cell
	painter  *Painter
}

func NewPatternDesigner() *PatternDesigner {
	d := &PatternDesigner{
		width:  defaultPatternSize,
		height: defaultPatternSize,
	}
	d.grid = NewTileGrid(GridShape{Cols: d.width, Rows: d.height}, 0)
	d.painter = NewPainter(func() *TileGrid { return &d.grid })
	return d
}

// Open starts a session from the current main palette. The motif itself
// survives between sessions.
func (d *PatternDesigner) Open(palette Palette) {
	d.palette = palette.Clone()
	if d.selected >= len(d.palette) {
		d.selected = 0
	}
	d.painter.PointerUp()
}

func (d *PatternDesigner) Shape() GridShape {
	return GridShape{Cols: d.width, Rows: d.height}
}

// SetSize clamps to 1..20 and resets the motif to swatch 0 whenever the size
// actually changes.
func (d *PatternDesigner) SetSize(width, height int) {
	width = clampInt(width, minPatternSize, maxPatternSize)
	height = clampInt(height, minPatternSize, maxPatternSize)
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	d.grid = NewTileGrid(d.Shape(), 0)
	d.cursor = Cell{Row: min(d.cursor.Row, height-1), Col: min(d.cursor.Col, width-1)}
	d.painter.Forget()
}

func (d *PatternDesigner) CycleSymmetry() {
	d.symmetry = d.symmetry.Next()
	d.painter.SetSymmetry(d.symmetry)
}

func (d *PatternDesigner) Select(i int) {
	if i >= 0 && i < len(d.palette) {
		d.selected = i
	}
}

func (d *PatternDesigner) SetSwatch(i int, c color.RGBA) bool {
	return d.palette.Set(i, c)
}

// Generate fills the motif randomly under the designer's symmetry. The
// previous motif can be restored with Undo.
func (d *PatternDesigner) Generate(rng *rand.Rand) error {
	grid, err := Generate(d.Shape(), len(d.palette), d.symmetry, rng)
	if err != nil {
		return err
	}
	d.painter.undo.record(d.grid)
	d.grid = grid
	return nil
}

func (d *PatternDesigner) MoveCursor(dx, dy int) {
	d.cursor.Col = clampInt(d.cursor.Col+dx, 0, d.width-1)
	d.cursor.Row = clampInt(d.cursor.Row+dy, 0, d.height-1)
}

// PaintCursor paints the tile under the keyboard cursor as a one-tile stroke.
func (d *PatternDesigner) PaintCursor() {
	if d.painter.PointerDown(d.cursor, true, d.selected) {
		d.painter.PointerUp()
	}
}

func (d *PatternDesigner) Undo() bool {
	return d.painter.Undo()
}

// Template snapshots the motif for Store.ApplyPattern.
func (d *PatternDesigner) Template() PatternTemplate {
	return PatternTemplate{
		Grid:    d.grid.Clone(),
		Width:   d.width,
		Height:  d.height,
		Palette: d.palette.Clone(),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
