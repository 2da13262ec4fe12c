package main

import (
	"errors"
	"math/rand"
)

var ErrZeroArea = errors.New("layout has no whole tiles")

// Reconcile builds a grid of the new shape that keeps every tile of old
// still inside the bounds. Newly exposed cells take the template value at
// the same position (the motif repeats from the origin, not from the edge of
// the old content), or an independent random index when there is no template.
func Reconcile(old *MosaicState, shape GridShape, tmpl *PatternTemplate, rng *rand.Rand) (TileGrid, error) {
	if shape.Empty() {
		return nil, ErrZeroArea
	}
	grid := NewTileGrid(shape, Unset)

	var prev TileGrid
	var paletteSize int
	if old != nil {
		prev = old.Grid
		paletteSize = len(old.Palette)
	}
	oldShape := prev.Shape()

	var motif TileGrid
	if tmpl != nil && !tmpl.Grid.Shape().Empty() {
		motif = tmpl.Grid
	}
	ms := motif.Shape()

	for y := 0; y < shape.Rows; y++ {
		for x := 0; x < shape.Cols; x++ {
			switch {
			case x < oldShape.Cols && y < oldShape.Rows:
				grid[y][x] = prev[y][x]
			case motif != nil:
				grid[y][x] = motif[y%ms.Rows][x%ms.Cols]
			}
		}
	}

	if err := fillRandom(grid, paletteSize, rng); err != nil {
		return nil, err
	}
	return grid, nil
}
