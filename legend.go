package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// TileCount is how many tiles of one swatch a mosaic uses.
type TileCount struct {
	Index int
	Color color.RGBA
	Count int
}

// TileCounts tallies tiles per swatch. Indices the palette no longer holds
// are summed into stray.
func TileCounts(state *MosaicState) (counts []TileCount, stray int) {
	if state == nil {
		return nil, 0
	}
	counts = make([]TileCount, len(state.Palette))
	for i, c := range state.Palette {
		counts[i] = TileCount{Index: i, Color: c}
	}
	for _, row := range state.Grid {
		for _, idx := range row {
			if idx >= 0 && idx < len(counts) {
				counts[idx].Count++
			} else {
				stray++
			}
		}
	}
	return counts, stray
}

const (
	legendWidth   = 420
	legendRow     = 28
	legendPadding = 12
	legendSwatch  = 20
)

// RenderLegend draws the bill of materials for state: one row per swatch
// with its colour, hex value and tile count.
func RenderLegend(state *MosaicState) (*image.RGBA, error) {
	counts, stray := TileCounts(state)
	if len(counts) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}
	rows := len(counts) + 1
	if stray > 0 {
		rows++
	}
	height := rows*legendRow + 2*legendPadding

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(legendWidth, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)

	total := 0
	for i, tc := range counts {
		y := float64(legendPadding + i*legendRow)
		dc.DrawRectangle(legendPadding, y+4, legendSwatch, legendSwatch)
		dc.SetColor(tc.Color)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.Stroke()

		label := fmt.Sprintf("Tile %-2d %s %6d", tc.Index+1, HexString(tc.Color), tc.Count)
		dc.DrawStringAnchored(label, legendPadding+legendSwatch+10, y+legendRow/2, 0, 0.5)
		total += tc.Count
	}

	y := float64(legendPadding + len(counts)*legendRow)
	if stray > 0 {
		dc.DrawStringAnchored(fmt.Sprintf("Unassigned      %6d", stray), legendPadding+legendSwatch+10, y+legendRow/2, 0, 0.5)
		y += legendRow
		total += stray
	}
	dc.DrawStringAnchored(fmt.Sprintf("Total           %6d", total), legendPadding+legendSwatch+10, y+legendRow/2, 0, 0.5)

	return toRGBA(dc.Image()), nil
}
