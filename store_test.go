package main

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"
)

var testConv = Converter{PxPerCm: 1}

func TestStore_NewLayout(t *testing.T) {
	s := NewStore(testConv)
	if s.HasContent() || s.State() != nil {
		t.Fatal("new store should be empty")
	}
	layout := Layout{RoomWidth: 500, RoomHeight: 300, TileSize: 5}
	if err := s.NewLayout(layout, NewPalette(3), SymmetryNone, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if st.Shape() != (GridShape{Cols: 100, Rows: 60}) {
		t.Errorf("shape: got %+v, want 100x60", st.Shape())
	}
	if st.Layout() != layout {
		t.Errorf("layout: got %+v, want %+v", st.Layout(), layout)
	}
	if !st.Grid.Complete(3) {
		t.Error("grid should only hold palette indices")
	}
}

func TestStore_NewLayoutEmptyPaletteKeepsState(t *testing.T) {
	s := NewStore(testConv)
	layout := Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}
	_ = s.NewLayout(layout, NewPalette(2), SymmetryNone, rand.New(rand.NewSource(1)))
	before := s.State()
	err := s.NewLayout(layout, Palette{}, SymmetryNone, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("expected ErrEmptyPalette, got %v", err)
	}
	if s.State() != before {
		t.Error("failed generation must not replace the mosaic")
	}
}

func TestStore_NewLayoutDropsTemplate(t *testing.T) {
	s := NewStore(testConv)
	layout := Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}
	tmpl := PatternTemplate{Grid: TileGrid{{0, 1}}, Width: 2, Height: 1, Palette: NewPalette(2)}
	if err := s.ApplyPattern(layout, tmpl); err != nil {
		t.Fatal(err)
	}
	if s.Template() == nil {
		t.Fatal("ApplyPattern should keep the template")
	}
	_ = s.NewLayout(layout, NewPalette(2), SymmetryNone, rand.New(rand.NewSource(1)))
	if s.Template() != nil {
		t.Error("NewLayout should drop the template")
	}
}

func TestStore_ApplyPattern(t *testing.T) {
	s := NewStore(testConv)
	red := color.RGBA{R: 255, A: 255}
	tmpl := PatternTemplate{
		Grid:    TileGrid{{0, 1}, {1, 0}},
		Width:   2,
		Height:  2,
		Palette: Palette{red, defaultSwatch},
	}
	if err := s.ApplyPattern(Layout{RoomWidth: 15, RoomHeight: 10, TileSize: 5}, tmpl); err != nil {
		t.Fatal(err)
	}
	want := TileGrid{{0, 1, 0}, {1, 0, 1}}
	if !s.State().Grid.Equal(want) {
		t.Errorf("grid: got %v, want %v", s.State().Grid, want)
	}
	if s.State().Palette[0] != red {
		t.Error("palette should be adopted from the template")
	}
	tmpl.Grid[0][0] = 1
	if s.Template().Grid[0][0] != 0 {
		t.Error("store must keep its own copy of the template")
	}
}

func TestStore_ApplyPatternEmptyPalette(t *testing.T) {
	s := NewStore(testConv)
	err := s.ApplyPattern(Layout{RoomWidth: 10, RoomHeight: 10, TileSize: 5}, PatternTemplate{Grid: TileGrid{{0}}})
	if !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("expected ErrEmptyPalette, got %v", err)
	}
	if s.HasContent() {
		t.Error("store should stay empty")
	}
}

func TestStore_ResizeWithTemplate(t *testing.T) {
	s := NewStore(testConv)
	tmpl := PatternTemplate{Grid: TileGrid{{0, 1}, {1, 0}}, Width: 2, Height: 2, Palette: NewPalette(2)}
	if err := s.ApplyPattern(Layout{RoomWidth: 10, RoomHeight: 10, TileSize: 5}, tmpl); err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	want := Repeat(tmpl.Grid, GridShape{4, 4})
	if !s.State().Grid.Equal(want) {
		t.Errorf("resize: got %v, want %v", s.State().Grid, want)
	}
	if s.State().RoomWidth != 20 {
		t.Errorf("room width: got %v, want 20", s.State().RoomWidth)
	}
}

func TestStore_ResizeToZeroClears(t *testing.T) {
	s := NewStore(testConv)
	_ = s.NewLayout(Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}, NewPalette(2), SymmetryNone, rand.New(rand.NewSource(1)))
	err := s.Resize(Layout{RoomWidth: 2, RoomHeight: 20, TileSize: 5}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrZeroArea) {
		t.Fatalf("expected ErrZeroArea, got %v", err)
	}
	if s.HasContent() {
		t.Error("zero-area resize should clear the store")
	}
}

func TestStore_ResizeEmptyStoreIsNoop(t *testing.T) {
	s := NewStore(testConv)
	if err := s.Resize(Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	if s.State() != nil {
		t.Error("resizing an empty store should not create a mosaic")
	}
}

func TestStore_Recolor(t *testing.T) {
	s := NewStore(testConv)
	_ = s.NewLayout(Layout{RoomWidth: 20, RoomHeight: 20, TileSize: 5}, NewPalette(3), SymmetryNone, rand.New(rand.NewSource(1)))
	grid := s.State().Grid
	blue := color.RGBA{B: 255, A: 255}
	p := Palette{blue}
	s.Recolor(p)
	p[0] = defaultSwatch
	if s.State().Palette[0] != blue {
		t.Error("Recolor should copy the palette")
	}
	if !s.State().Grid.Equal(grid) {
		t.Error("Recolor must not touch the grid")
	}
}

func TestStore_GridIsLive(t *testing.T) {
	s := NewStore(testConv)
	if s.Grid() != nil {
		t.Fatal("empty store should expose no grid")
	}
	_ = s.NewLayout(Layout{RoomWidth: 10, RoomHeight: 10, TileSize: 5}, NewPalette(2), SymmetryNone, rand.New(rand.NewSource(1)))
	(*s.Grid())[0][0] = 1
	if s.State().Grid[0][0] != 1 {
		t.Error("edits through Grid should reach the stored state")
	}
}
