package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModePattern
	ModeFileInput
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveLegend
)

// Field is a row of the parameter form.
type Field int

const (
	FieldRoomWidth Field = iota
	FieldRoomHeight
	FieldTileSize
	FieldTileCount
	FieldSwatch
	FieldGroutWidth
	FieldGroutColor
	FieldShowGrid
	FieldSymmetry
	FieldEditMode
	numFields

	// not part of the form; the designer's own swatch row
	FieldDesignerSwatch
)

const (
	formWidth         = 34
	statusLines       = 2
	designerCellWidth = 2

	resizeDebounce = 500 * time.Millisecond

	roomStep  = 10.0
	tileStep  = 0.5
	groutStep = 0.05
	maxGrout  = 2.0
	maxTiles  = 16

	defaultLegendName = "mosaic-legend.png"
)
