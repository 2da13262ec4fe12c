package main

import "testing"

func newTestPainter(grid TileGrid, sym Symmetry) (*Painter, *TileGrid) {
	g := grid
	p := NewPainter(func() *TileGrid { return &g })
	p.SetSymmetry(sym)
	return p, &g
}

func TestPainter_CentralPaint(t *testing.T) {
	p, g := newTestPainter(NewTileGrid(GridShape{4, 4}, 0), SymmetryCentral)
	if !p.PointerDown(Cell{Row: 0, Col: 0}, true, 2) {
		t.Fatal("PointerDown on a tile should start a stroke")
	}
	p.PointerUp()

	painted := 0
	for y := range *g {
		for x := range (*g)[y] {
			if (*g)[y][x] == 2 {
				painted++
			}
		}
	}
	if painted != 4 {
		t.Errorf("painted %d cells, want 4", painted)
	}
	for _, c := range []Cell{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		if (*g)[c.Row][c.Col] != 2 {
			t.Errorf("cell %+v not painted", c)
		}
	}
}

func TestPainter_UndoRestoresExactly(t *testing.T) {
	start := TileGrid{{0, 1, 2}, {2, 1, 0}}
	p, g := newTestPainter(start.Clone(), SymmetryHorizontal)

	p.PointerDown(Cell{Row: 0, Col: 0}, true, 3)
	p.PointerUp()
	if g.Equal(start) {
		t.Fatal("stroke should change the grid")
	}
	if !p.CanUndo() || !p.Undo() {
		t.Fatal("undo after a stroke should succeed")
	}
	if !g.Equal(start) {
		t.Errorf("after undo: got %v, want %v", *g, start)
	}
	if p.CanUndo() || p.Undo() {
		t.Error("second undo should be a no-op")
	}
	if !g.Equal(start) {
		t.Error("second undo changed the grid")
	}
}

func TestPainter_StrokeUndoesAsOneUnit(t *testing.T) {
	start := NewTileGrid(GridShape{3, 3}, 0)
	p, g := newTestPainter(start.Clone(), SymmetryNone)

	p.PointerDown(Cell{Row: 0, Col: 0}, true, 1)
	p.PointerMove(Cell{Row: 1, Col: 1}, true, 1)
	p.PointerMove(Cell{Row: 2, Col: 2}, true, 1)
	if p.Undo() {
		t.Error("undo while painting should be refused")
	}
	p.PointerUp()

	for i := 0; i < 3; i++ {
		if (*g)[i][i] != 1 {
			t.Fatalf("diagonal cell %d not painted", i)
		}
	}
	p.Undo()
	if !g.Equal(start) {
		t.Errorf("undo should revert the whole stroke, got %v", *g)
	}
}

func TestPainter_IgnoresGroutAndOutside(t *testing.T) {
	start := NewTileGrid(GridShape{2, 2}, 0)
	p, g := newTestPainter(start.Clone(), SymmetryNone)

	if p.PointerDown(Cell{}, false, 1) {
		t.Error("PointerDown on grout should be ignored")
	}
	if p.PointerDown(Cell{Row: 5, Col: 0}, true, 1) {
		t.Error("PointerDown outside the grid should be ignored")
	}
	if p.Painting() || p.CanUndo() {
		t.Error("ignored presses must not start a stroke or record undo")
	}
	if p.PointerMove(Cell{Row: 0, Col: 0}, true, 1) {
		t.Error("PointerMove while idle should do nothing")
	}
	if !g.Equal(start) {
		t.Errorf("grid changed: %v", *g)
	}

	p.PointerDown(Cell{Row: 0, Col: 0}, true, 1)
	if p.PointerMove(Cell{}, false, 1) {
		t.Error("moving over grout should not paint")
	}
	if !p.Painting() {
		t.Error("moving over grout should not end the stroke")
	}
}

func TestPainter_NewStrokeReplacesSnapshot(t *testing.T) {
	p, g := newTestPainter(NewTileGrid(GridShape{2, 1}, 0), SymmetryNone)
	p.PointerDown(Cell{Row: 0, Col: 0}, true, 1)
	p.PointerUp()
	p.PointerDown(Cell{Row: 0, Col: 1}, true, 1)
	p.PointerUp()
	p.Undo()
	want := TileGrid{{1, 0}}
	if !g.Equal(want) {
		t.Errorf("undo should only revert the last stroke: got %v, want %v", *g, want)
	}
}

func TestPainter_Forget(t *testing.T) {
	p, _ := newTestPainter(NewTileGrid(GridShape{2, 2}, 0), SymmetryNone)
	p.PointerDown(Cell{}, true, 1)
	p.Forget()
	if p.Painting() || p.CanUndo() {
		t.Error("Forget should end the stroke and drop the snapshot")
	}
}

func TestPainter_NoTarget(t *testing.T) {
	p := NewPainter(func() *TileGrid { return nil })
	if p.PointerDown(Cell{}, true, 0) {
		t.Error("painting without a grid should be ignored")
	}
	if p.Undo() {
		t.Error("undo without a grid should be ignored")
	}
}
