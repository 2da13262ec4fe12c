package main

import (
	"math"
	"testing"
)

func TestToGrid_WholeTiles(t *testing.T) {
	got := DefaultConverter.ToGrid(500, 300, 5)
	if got.Cols != 100 || got.Rows != 60 {
		t.Fatalf("ToGrid(500, 300, 5) = %dx%d, want 100x60", got.Cols, got.Rows)
	}
	if got.Area() != 6000 {
		t.Errorf("Area: got %d, want 6000", got.Area())
	}
}

func TestToGrid_Degenerate(t *testing.T) {
	cases := []struct {
		name       string
		w, h, tile float64
	}{
		{"zero tile", 500, 300, 0},
		{"negative tile", 500, 300, -5},
		{"zero width", 0, 300, 5},
		{"negative height", 500, -1, 5},
		{"room smaller than tile", 4, 300, 5},
		{"nan tile", 500, 300, math.NaN()},
		{"inf room", math.Inf(1), 300, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultConverter.ToGrid(tc.w, tc.h, tc.tile)
			if got != (GridShape{}) {
				t.Errorf("ToGrid(%v, %v, %v) = %+v, want zero shape", tc.w, tc.h, tc.tile, got)
			}
			if !got.Empty() {
				t.Error("zero shape should report Empty")
			}
		})
	}
}

func TestToGrid_Monotonic(t *testing.T) {
	prev := 0
	for w := 0.0; w <= 200; w += 0.7 {
		got := DefaultConverter.ToGrid(w, 50, 3.3)
		if got.Cols < prev {
			t.Fatalf("cols decreased from %d to %d at width %v", prev, got.Cols, w)
		}
		prev = got.Cols
	}
	if prev != 60 {
		t.Errorf("cols at width ~200: got %d, want 60", prev)
	}
}

func TestToGrid_IndependentOfDensity(t *testing.T) {
	for _, k := range []float64{1, 2.5, 10, cmToPx} {
		got := Converter{PxPerCm: k}.ToGrid(500, 300, 5)
		if got.Cols != 100 || got.Rows != 60 {
			t.Errorf("PxPerCm %v: got %dx%d, want 100x60", k, got.Cols, got.Rows)
		}
	}
}

func TestMetrics_SurfaceSize(t *testing.T) {
	m := Converter{PxPerCm: 1}.Metrics(4, 1)
	if m.TilePx != 4 || m.GroutPx != 1 {
		t.Fatalf("metrics: got %+v, want tile 4 grout 1", m)
	}
	w, h := m.SurfaceSize(GridShape{Cols: 3, Rows: 2})
	// 3*4 + 4*1, 2*4 + 3*1
	if w != 16 || h != 11 {
		t.Errorf("SurfaceSize: got %dx%d, want 16x11", w, h)
	}
	if w, h := m.SurfaceSize(GridShape{}); w != 0 || h != 0 {
		t.Errorf("empty SurfaceSize: got %dx%d, want 0x0", w, h)
	}
}

func TestMetrics_DegenerateTile(t *testing.T) {
	m := DefaultConverter.Metrics(-3, -1)
	if m.TilePx != 1 || m.GroutPx != 0 {
		t.Errorf("degenerate metrics: got %+v", m)
	}
}

func TestToCell(t *testing.T) {
	m := TileMetrics{TilePx: 4, GroutPx: 1}
	shape := GridShape{Cols: 3, Rows: 2}
	cases := []struct {
		px, py int
		want   Cell
		ok     bool
	}{
		{0, 0, Cell{}, false},              // leading grout
		{1, 1, Cell{Row: 0, Col: 0}, true}, // first tile pixel
		{4, 4, Cell{Row: 0, Col: 0}, true}, // last tile pixel
		{5, 1, Cell{}, false},              // grout between columns
		{6, 1, Cell{Row: 0, Col: 1}, true},
		{11, 6, Cell{Row: 1, Col: 2}, true},
		{15, 1, Cell{}, false},             // trailing grout
		{16, 1, Cell{}, false},             // outside
		{1, 10, Cell{}, false},             // trailing grout row
		{-1, 1, Cell{}, false},
	}
	for _, tc := range cases {
		got, ok := m.ToCell(tc.px, tc.py, shape)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ToCell(%d, %d) = %+v, %v; want %+v, %v", tc.px, tc.py, got, ok, tc.want, tc.ok)
		}
	}
}

func TestToCell_NoGrout(t *testing.T) {
	m := TileMetrics{TilePx: 3}
	shape := GridShape{Cols: 2, Rows: 2}
	for px := 0; px < 6; px++ {
		got, ok := m.ToCell(px, 0, shape)
		if !ok || got.Col != px/3 {
			t.Errorf("ToCell(%d, 0) = %+v, %v; want col %d", px, got, ok, px/3)
		}
	}
	if _, ok := m.ToCell(6, 0, shape); ok {
		t.Error("pixel past the last tile should not map to a cell")
	}
}
