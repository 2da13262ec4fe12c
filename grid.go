package main

// Unset marks a cell that has not been assigned a palette index yet. It only
// exists while a grid is being generated.
const Unset = -1

// TileGrid holds palette indices, indexed [row][col].
type TileGrid [][]int

func NewTileGrid(shape GridShape, fill int) TileGrid {
	if shape.Empty() {
		return TileGrid{}
	}
	cells := make([]int, shape.Cols*shape.Rows)
	for i := range cells {
		cells[i] = fill
	}
	g := make(TileGrid, shape.Rows)
	for y := range g {
		g[y] = cells[y*shape.Cols : (y+1)*shape.Cols : (y+1)*shape.Cols]
	}
	return g
}

func (g TileGrid) Shape() GridShape {
	if len(g) == 0 {
		return GridShape{}
	}
	return GridShape{Cols: len(g[0]), Rows: len(g)}
}

func (g TileGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < len(g) && c.Col >= 0 && c.Col < len(g[c.Row])
}

func (g TileGrid) At(c Cell) int {
	if !g.InBounds(c) {
		return Unset
	}
	return g[c.Row][c.Col]
}

func (g TileGrid) Clone() TileGrid {
	if g == nil {
		return nil
	}
	out := NewTileGrid(g.Shape(), 0)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

func (g TileGrid) Equal(o TileGrid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Complete reports whether every cell holds an index in [0, paletteSize).
func (g TileGrid) Complete(paletteSize int) bool {
	for _, row := range g {
		for _, v := range row {
			if v < 0 || v >= paletteSize {
				return false
			}
		}
	}
	return true
}

// paint writes index into c and all of its mirrors under sym.
func (g TileGrid) paint(c Cell, index int, sym Symmetry) {
	shape := g.Shape()
	for _, m := range sym.Mirrors(c, shape) {
		if g.InBounds(m) {
			g[m.Row][m.Col] = index
		}
	}
}

// Repeat tiles motif across shape starting at the origin.
func Repeat(motif TileGrid, shape GridShape) TileGrid {
	ms := motif.Shape()
	if shape.Empty() || ms.Empty() {
		return NewTileGrid(shape, 0)
	}
	out := NewTileGrid(shape, 0)
	for y := range out {
		for x := range out[y] {
			out[y][x] = motif[y%ms.Rows][x%ms.Cols]
		}
	}
	return out
}
