package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigParse(t *testing.T) {
	rc := `
# mosaic settings
savedirectory = ~/tiles
roomwidth = 420
room_height=250.5
tilesize = 2.5
groutwidth = 0
groutcolor = RAL 9010
palette = #ff0000, #00ff00
symmetry = Central
showgrid = false
pxpercm = 20
unknown = 1
not a pair
`
	c := defaultConfig()
	c.parse(strings.NewReader(rc), "/home/tiler")

	if c.SaveDirectory != filepath.Join("/home/tiler", "tiles") {
		t.Errorf("SaveDirectory: got %q", c.SaveDirectory)
	}
	if c.RoomWidth != 420 || c.RoomHeight != 250.5 || c.TileSize != 2.5 {
		t.Errorf("layout: got %+v", c.Layout())
	}
	if c.GroutWidth != 0 {
		t.Errorf("GroutWidth: got %v, want 0", c.GroutWidth)
	}
	if HexString(c.GroutColor) != "#ffffff" {
		t.Errorf("GroutColor: got %s", HexString(c.GroutColor))
	}
	if len(c.Palette) != 2 || HexString(c.Palette[1]) != "#00ff00" {
		t.Errorf("Palette: got %v", c.Palette.Hex())
	}
	if c.Symmetry != SymmetryCentral {
		t.Errorf("Symmetry: got %s", c.Symmetry)
	}
	if c.ShowGrid {
		t.Error("ShowGrid should be off")
	}
	if c.Converter().PxPerCm != 20 {
		t.Errorf("PxPerCm: got %v", c.PxPerCm)
	}
}

func TestConfigParse_InvalidValuesKeepDefaults(t *testing.T) {
	rc := `
roomwidth = -5
tilesize = abc
groutwidth = -1
groutcolor = RAL 0000
palette = #zzzzzz
symmetry = spiral
pxpercm = 0
`
	c := defaultConfig()
	c.parse(strings.NewReader(rc), "")
	d := defaultConfig()

	if c.Layout() != d.Layout() {
		t.Errorf("layout: got %+v, want %+v", c.Layout(), d.Layout())
	}
	if c.GroutWidth != d.GroutWidth || c.GroutColor != d.GroutColor {
		t.Errorf("grout: got %v %v", c.GroutWidth, c.GroutColor)
	}
	if len(c.Palette) != len(d.Palette) {
		t.Errorf("palette: got %d colors, want %d", len(c.Palette), len(d.Palette))
	}
	if c.Symmetry != d.Symmetry || c.PxPerCm != d.PxPerCm {
		t.Errorf("symmetry/density changed: %s %v", c.Symmetry, c.PxPerCm)
	}
}

func TestGetSavePath(t *testing.T) {
	c := defaultConfig()
	if got := c.GetSavePath("mosaic.png"); got != "mosaic.png" {
		t.Errorf("without save directory: got %q", got)
	}
	dir := t.TempDir()
	c.SaveDirectory = filepath.Join(dir, "out")
	if got := c.GetSavePath("mosaic.png"); got != filepath.Join(dir, "out", "mosaic.png") {
		t.Errorf("with save directory: got %q", got)
	}
}
