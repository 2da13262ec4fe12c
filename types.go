package main

import (
	"image"
	"math/rand"
)

// previewView describes where the scaled surface sits on screen.
type previewView struct {
	left, top int
	scale     float64
	image     *image.RGBA
}

type model struct {
	width  int
	height int

	config      *Config
	store       *Store
	compositor  Compositor // export density
	previewComp Compositor
	painter     *Painter
	designer    *PatternDesigner
	rng         *rand.Rand

	layout    Layout
	tileCount int
	palette   Palette
	grout     GroutMetrics
	showGrid  bool
	symmetry  Symmetry
	editMode  bool

	selectedColor int
	cursor        Cell
	field         Field

	mode        Mode
	inputField  Field
	inputText   string
	inputReturn Mode
	filename    string
	fileOp      FileOperation

	resizeSeq    int
	awaitingRoom bool // a layout was cleared or refused because no tile fit
	surface      *image.RGBA
	preview      previewView

	help           bool
	errorMessage   string
	successMessage string
}
