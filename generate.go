package main

import (
	"errors"
	"math/rand"
)

var ErrEmptyPalette = errors.New("palette has no colors")

// Generate fills shape with random palette indices. Only the independent
// region of sym is drawn; every draw is copied to its mirrors, so the result
// is symmetric by construction.
func Generate(shape GridShape, paletteSize int, sym Symmetry, rng *rand.Rand) (TileGrid, error) {
	if paletteSize <= 0 {
		return nil, ErrEmptyPalette
	}
	grid := NewTileGrid(shape, Unset)
	if shape.Empty() {
		return grid, nil
	}

	region := sym.IndependentRegion(shape)
	for y := 0; y < region.Rows; y++ {
		for x := 0; x < region.Cols; x++ {
			grid.paint(Cell{Row: y, Col: x}, rng.Intn(paletteSize), sym)
		}
	}
	return grid, nil
}

// fillRandom assigns an independent draw to every cell still Unset. A grid
// with nothing left to fill never needs the palette.
func fillRandom(grid TileGrid, paletteSize int, rng *rand.Rand) error {
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != Unset {
				continue
			}
			if paletteSize <= 0 {
				return ErrEmptyPalette
			}
			grid[y][x] = rng.Intn(paletteSize)
		}
	}
	return nil
}
