package main

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	RoomWidth     float64
	RoomHeight    float64
	TileSize      float64
	GroutWidth    float64
	GroutColor    color.RGBA
	Palette       Palette
	Symmetry      Symmetry
	ShowGrid      bool
	PxPerCm       float64
}

// Export pixel density. 96 DPI (cmToPx) turns a 5x3 m room into a ~900 MB
// raster, so exports default to 10 px/cm.
const defaultExportPxPerCm = 10.0

var starterPalette = Palette{
	{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff},
	{R: 0x2e, G: 0x86, B: 0xab, A: 0xff},
	{R: 0xe9, G: 0xd8, B: 0xa6, A: 0xff},
	{R: 0xee, G: 0x9b, B: 0x00, A: 0xff},
	{R: 0xca, G: 0x67, B: 0x02, A: 0xff},
}

func defaultConfig() *Config {
	return &Config{
		RoomWidth:  500,
		RoomHeight: 300,
		TileSize:   5,
		GroutWidth: 0.1,
		GroutColor: defaultGrout,
		Palette:    starterPalette.Clone(),
		Symmetry:   SymmetryNone,
		ShowGrid:   true,
		PxPerCm:    defaultExportPxPerCm,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".mosaicrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

// parse applies key=value lines over the current values. Unknown keys and
// malformed values are skipped.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			c.SaveDirectory = value
		case "roomwidth", "room_width":
			setPositive(&c.RoomWidth, value)
		case "roomheight", "room_height":
			setPositive(&c.RoomHeight, value)
		case "tilesize", "tile_size":
			setPositive(&c.TileSize, value)
		case "groutwidth", "grout_width":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 && finite(f) {
				c.GroutWidth = f
			}
		case "groutcolor", "grout_color":
			if col, err := ParseColorInput(value); err == nil {
				c.GroutColor = col
			}
		case "palette":
			if p, err := ParsePalette(value); err == nil && len(p) > 0 {
				c.Palette = p
			}
		case "symmetry":
			if s, err := ParseSymmetry(value); err == nil {
				c.Symmetry = s
			}
		case "showgrid", "show_grid":
			c.ShowGrid = strings.ToLower(value) == "true"
		case "pxpercm", "px_per_cm":
			setPositive(&c.PxPerCm, value)
		}
	}
}

func setPositive(dst *float64, value string) {
	if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 && finite(f) {
		*dst = f
	}
}

func (c *Config) Converter() Converter {
	return Converter{PxPerCm: c.PxPerCm}
}

func (c *Config) Layout() Layout {
	return Layout{RoomWidth: c.RoomWidth, RoomHeight: c.RoomHeight, TileSize: c.TileSize}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
