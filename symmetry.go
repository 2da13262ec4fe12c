package main

import (
	"fmt"
	"strings"
)

type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryHorizontal
	SymmetryVertical
	SymmetryCentral
)

var symmetryNames = []string{"none", "horizontal", "vertical", "central"}

func (s Symmetry) String() string {
	if s < 0 || int(s) >= len(symmetryNames) {
		return "unknown"
	}
	return symmetryNames[s]
}

// Label is the human readable name shown in the form.
func (s Symmetry) Label() string {
	switch s {
	case SymmetryHorizontal:
		return "Horizontal"
	case SymmetryVertical:
		return "Vertical"
	case SymmetryCentral:
		return "Central (4-way)"
	default:
		return "None"
	}
}

// Next cycles through the modes in form order.
func (s Symmetry) Next() Symmetry {
	return Symmetry((int(s) + 1) % len(symmetryNames))
}

func ParseSymmetry(name string) (Symmetry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range symmetryNames {
		if n == name {
			return Symmetry(i), nil
		}
	}
	return SymmetryNone, fmt.Errorf("unknown symmetry %q", name)
}

type Cell struct {
	Row int
	Col int
}

func (s Symmetry) mirrorsCols() bool {
	return s == SymmetryHorizontal || s == SymmetryCentral
}

func (s Symmetry) mirrorsRows() bool {
	return s == SymmetryVertical || s == SymmetryCentral
}

// Mirrors returns the cell and every cell that must share its colour under
// s. The cell itself is always first and no cell appears twice, so a cell on
// an axis of symmetry is written once.
func (s Symmetry) Mirrors(c Cell, shape GridShape) []Cell {
	cells := []Cell{c}
	mirrorCol := shape.Cols - 1 - c.Col
	mirrorRow := shape.Rows - 1 - c.Row
	colDiffers := s.mirrorsCols() && mirrorCol != c.Col
	rowDiffers := s.mirrorsRows() && mirrorRow != c.Row
	if colDiffers {
		cells = append(cells, Cell{Row: c.Row, Col: mirrorCol})
	}
	if rowDiffers {
		cells = append(cells, Cell{Row: mirrorRow, Col: c.Col})
	}
	if colDiffers && rowDiffers {
		cells = append(cells, Cell{Row: mirrorRow, Col: mirrorCol})
	}
	return cells
}

// IndependentRegion bounds the freely assigned cells: rows [0,Rows) and cols
// [0,Cols). Odd dimensions keep the centre line inside the region. Every cell
// outside is a mirror of exactly one cell inside.
func (s Symmetry) IndependentRegion(shape GridShape) GridShape {
	region := shape
	if s.mirrorsCols() {
		region.Cols = (shape.Cols + 1) / 2
	}
	if s.mirrorsRows() {
		region.Rows = (shape.Rows + 1) / 2
	}
	return region
}
