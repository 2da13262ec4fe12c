package main

import "math"

// 1 cm at 96 DPI
const cmToPx = 37.7952755906

// floorEpsilon absorbs float error in ratios like 500/5 that should land on an integer.
const floorEpsilon = 1e-9

type GridShape struct {
	Cols int
	Rows int
}

func (s GridShape) Area() int {
	return s.Cols * s.Rows
}

func (s GridShape) Empty() bool {
	return s.Cols <= 0 || s.Rows <= 0
}

// Converter turns physical measurements (cm) into grid and pixel dimensions.
type Converter struct {
	PxPerCm float64
}

var DefaultConverter = Converter{PxPerCm: cmToPx}

func (c Converter) ratio() float64 {
	if c.PxPerCm <= 0 || !finite(c.PxPerCm) {
		return cmToPx
	}
	return c.PxPerCm
}

// ToGrid derives the number of whole tiles that fit the room. Degenerate
// input yields a zero shape.
func (c Converter) ToGrid(roomWidth, roomHeight, tileSize float64) GridShape {
	if !finite(roomWidth) || !finite(roomHeight) || !finite(tileSize) {
		return GridShape{}
	}
	if tileSize <= 0 || roomWidth <= 0 || roomHeight <= 0 {
		return GridShape{}
	}
	k := c.ratio()
	tilePx := tileSize * k
	cols := wholeTiles(roomWidth*k, tilePx)
	rows := wholeTiles(roomHeight*k, tilePx)
	if cols == 0 || rows == 0 {
		return GridShape{}
	}
	return GridShape{Cols: cols, Rows: rows}
}

func wholeTiles(lengthPx, tilePx float64) int {
	n := math.Floor(lengthPx/tilePx + floorEpsilon)
	if n < 0 || !finite(n) || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// TileMetrics holds the integer pixel sizes every layout computation shares.
type TileMetrics struct {
	TilePx  int
	GroutPx int
}

func (c Converter) Metrics(tileSize, groutWidth float64) TileMetrics {
	k := c.ratio()
	m := TileMetrics{TilePx: 1}
	if finite(tileSize) && tileSize > 0 {
		m.TilePx = max(1, int(math.Round(tileSize*k)))
	}
	if finite(groutWidth) && groutWidth > 0 {
		m.GroutPx = int(math.Round(groutWidth * k))
	}
	return m
}

// Pitch is the distance between the left edges of two neighbouring tiles.
func (m TileMetrics) Pitch() int {
	return m.TilePx + m.GroutPx
}

// Offset is the pixel position of the leading edge of tile i. Grout surrounds
// every tile, so the first tile starts one grout width in.
func (m TileMetrics) Offset(i int) int {
	return i*m.Pitch() + m.GroutPx
}

// SurfaceSize returns cols*tile + (cols+1)*grout by rows*tile + (rows+1)*grout.
func (m TileMetrics) SurfaceSize(shape GridShape) (int, int) {
	if shape.Empty() {
		return 0, 0
	}
	w := shape.Cols*m.TilePx + (shape.Cols+1)*m.GroutPx
	h := shape.Rows*m.TilePx + (shape.Rows+1)*m.GroutPx
	return w, h
}

// ToCell maps a surface pixel back to the tile under it. Points on grout or
// outside the grid report ok=false.
func (m TileMetrics) ToCell(px, py int, shape GridShape) (Cell, bool) {
	col, ok := m.axisCell(px, shape.Cols)
	if !ok {
		return Cell{}, false
	}
	row, ok := m.axisCell(py, shape.Rows)
	if !ok {
		return Cell{}, false
	}
	return Cell{Row: row, Col: col}, true
}

func (m TileMetrics) axisCell(p, n int) (int, bool) {
	if n <= 0 || m.TilePx <= 0 {
		return 0, false
	}
	p -= m.GroutPx
	if p < 0 {
		return 0, false
	}
	i := p / m.Pitch()
	if i >= n {
		return 0, false
	}
	if p%m.Pitch() >= m.TilePx {
		return 0, false
	}
	return i, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
