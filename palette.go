package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// new swatches start out grey
	defaultSwatch = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	// drawn for an index the palette no longer holds
	fallbackTile = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	defaultGrout = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Palette is the ordered list of tile colours; index i is swatch i.
type Palette []color.RGBA

func NewPalette(n int) Palette {
	p := make(Palette, max(0, n))
	for i := range p {
		p[i] = defaultSwatch
	}
	return p
}

// Resize re-creates the palette with n default swatches. Custom colours are
// discarded even when n grows.
func (p Palette) Resize(n int) Palette {
	return NewPalette(n)
}

func (p Palette) Set(i int, c color.RGBA) bool {
	if i < 0 || i >= len(p) {
		return false
	}
	c.A = 0xff
	p[i] = c
	return true
}

// Color returns swatch i, or the fallback colour when i is out of range.
func (p Palette) Color(i int) color.RGBA {
	if i < 0 || i >= len(p) {
		return fallbackTile
	}
	return p[i]
}

func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = HexString(c)
	}
	return out
}

func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func ParsePalette(list string) (Palette, error) {
	var p Palette
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseHexColor(part)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func HexString(c color.Color) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
