package main

import (
	"errors"
	"math/rand"
)

// Layout is the physical description of the room and its tiles, in cm.
type Layout struct {
	RoomWidth  float64
	RoomHeight float64
	TileSize   float64
}

type MosaicState struct {
	Grid       TileGrid
	Palette    Palette
	TileSize   float64
	RoomWidth  float64
	RoomHeight float64
}

func (s *MosaicState) Shape() GridShape {
	if s == nil {
		return GridShape{}
	}
	return s.Grid.Shape()
}

func (s *MosaicState) Layout() Layout {
	return Layout{RoomWidth: s.RoomWidth, RoomHeight: s.RoomHeight, TileSize: s.TileSize}
}

// PatternTemplate is a small motif repeated from the origin to fill area
// revealed by a resize.
type PatternTemplate struct {
	Grid    TileGrid
	Width   int
	Height  int
	Palette Palette
}

// Store owns the one authoritative mosaic. Every mutation builds a complete
// grid before swapping it in.
type Store struct {
	conv     Converter
	state    *MosaicState
	template *PatternTemplate
}

func NewStore(conv Converter) *Store {
	return &Store{conv: conv}
}

func (s *Store) State() *MosaicState {
	return s.state
}

func (s *Store) Template() *PatternTemplate {
	return s.template
}

func (s *Store) HasContent() bool {
	return s.state != nil && !s.state.Grid.Shape().Empty()
}

func (s *Store) Clear() {
	s.state = nil
}

// NewLayout replaces the mosaic with a fresh random layout. The pattern
// template is dropped so later resizes fill randomly.
func (s *Store) NewLayout(layout Layout, palette Palette, sym Symmetry, rng *rand.Rand) error {
	shape := s.conv.ToGrid(layout.RoomWidth, layout.RoomHeight, layout.TileSize)
	grid, err := Generate(shape, len(palette), sym, rng)
	if err != nil {
		return err
	}
	s.template = nil
	s.swap(grid, palette.Clone(), layout)
	return nil
}

// ApplyPattern tiles tmpl over the whole room, adopts its palette and keeps
// it as the fill source for later resizes.
func (s *Store) ApplyPattern(layout Layout, tmpl PatternTemplate) error {
	if len(tmpl.Palette) == 0 {
		return ErrEmptyPalette
	}
	shape := s.conv.ToGrid(layout.RoomWidth, layout.RoomHeight, layout.TileSize)
	motif := tmpl.Grid.Clone()
	grid := Repeat(motif, shape)
	s.template = &PatternTemplate{
		Grid:    motif,
		Width:   motif.Shape().Cols,
		Height:  motif.Shape().Rows,
		Palette: tmpl.Palette.Clone(),
	}
	s.swap(grid, tmpl.Palette.Clone(), layout)
	return nil
}

// Resize reconciles the current mosaic against a new layout. A zero-area
// result clears the store and returns ErrZeroArea.
func (s *Store) Resize(layout Layout, rng *rand.Rand) error {
	if s.state == nil {
		return nil
	}
	shape := s.conv.ToGrid(layout.RoomWidth, layout.RoomHeight, layout.TileSize)
	grid, err := Reconcile(s.state, shape, s.template, rng)
	if err != nil {
		if errors.Is(err, ErrZeroArea) {
			s.Clear()
		}
		return err
	}
	s.swap(grid, s.state.Palette, layout)
	return nil
}

// Recolor replaces the palette snapshot. Indices beyond a shorter palette
// stay in the grid and render with the fallback colour.
func (s *Store) Recolor(palette Palette) {
	if s.state == nil {
		return
	}
	next := *s.state
	next.Palette = palette.Clone()
	s.state = &next
}

// Grid exposes the live grid for in-place single tile edits.
func (s *Store) Grid() *TileGrid {
	if s.state == nil {
		return nil
	}
	return &s.state.Grid
}

func (s *Store) swap(grid TileGrid, palette Palette, layout Layout) {
	s.state = &MosaicState{
		Grid:       grid,
		Palette:    palette,
		TileSize:   layout.TileSize,
		RoomWidth:  layout.RoomWidth,
		RoomHeight: layout.RoomHeight,
	}
}
