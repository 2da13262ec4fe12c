package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"

	"github.com/fogleman/gg"
)

const defaultExportName = "mosaic.png"

type GroutMetrics struct {
	Width float64 // cm
	Color color.RGBA
}

// Compositor draws a mosaic into a pixel surface. Grout surrounds every tile,
// leading and trailing edges included.
type Compositor struct {
	conv Converter
}

func NewCompositor(conv Converter) Compositor {
	return Compositor{conv: conv}
}

func (c Compositor) Metrics(state *MosaicState, grout GroutMetrics) TileMetrics {
	if state == nil {
		return c.conv.Metrics(0, grout.Width)
	}
	return c.conv.Metrics(state.TileSize, grout.Width)
}

// Render returns a fresh surface for state. A mosaic without whole tiles
// renders as an empty 0x0 image.
func (c Compositor) Render(state *MosaicState, grout GroutMetrics, showGrid bool) *image.RGBA {
	shape := state.Shape()
	if shape.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	m := c.Metrics(state, grout)
	w, h := m.SurfaceSize(shape)

	dc := gg.NewContext(w, h)
	dc.SetColor(opaque(grout.Color))
	dc.Clear()

	// One fill per colour keeps the path count proportional to the palette.
	byIndex := make(map[int][]Cell)
	for y, row := range state.Grid {
		for x, idx := range row {
			byIndex[idx] = append(byIndex[idx], Cell{Row: y, Col: x})
		}
	}
	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tile := float64(m.TilePx)
	for _, idx := range indices {
		for _, cell := range byIndex[idx] {
			dc.DrawRectangle(float64(m.Offset(cell.Col)), float64(m.Offset(cell.Row)), tile, tile)
		}
		dc.SetColor(state.Palette.Color(idx))
		dc.Fill()
	}

	if showGrid && m.GroutPx == 0 {
		drawGridLines(dc, shape, m, w, h)
	}

	return toRGBA(dc.Image())
}

// drawGridLines outlines tile boundaries. Only used without grout, where
// nothing else separates neighbouring tiles of the same colour.
func drawGridLines(dc *gg.Context, shape GridShape, m TileMetrics, w, h int) {
	dc.SetRGBA(0, 0, 0, 0.2)
	dc.SetLineWidth(1)
	for x := 0; x <= shape.Cols; x++ {
		lx := lineCenter(m.Offset(x), w)
		dc.DrawLine(lx, 0, lx, float64(h))
		dc.Stroke()
	}
	for y := 0; y <= shape.Rows; y++ {
		ly := lineCenter(m.Offset(y), h)
		dc.DrawLine(0, ly, float64(w), ly)
		dc.Stroke()
	}
}

// lineCenter keeps a 1px line on the pixel column starting at p, pulling the
// trailing edge back inside the surface.
func lineCenter(p, size int) float64 {
	if p >= size {
		p = size - 1
	}
	return float64(p) + 0.5
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

func toRGBA(im image.Image) *image.RGBA {
	if rgba, ok := im.(*image.RGBA); ok {
		return rgba
	}
	b := im.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, im.At(x, y))
		}
	}
	return out
}

// EncodePNG serializes a surface for the export collaborator.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("nothing to export")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func SavePNG(path string, img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("nothing to export")
	}
	return gg.SavePNG(path, img)
}
