package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	panelStyle   = lipgloss.NewStyle().Width(formWidth).MaxWidth(formWidth)
	sepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#585858"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bodyHeight := max(1, m.height-statusLines)
	panel := panelStyle.Height(bodyHeight).MaxHeight(bodyHeight).Render(m.formView())
	sep := sepStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", bodyHeight), "\n"))

	var right string
	if m.mode == ModePattern || (m.mode == ModeInput && m.inputReturn == ModePattern) {
		right = m.patternView()
	} else {
		right = m.previewView()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panel, sep, right)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView())
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mosaic Designer"))
	b.WriteString("\n\n")

	for f := Field(0); f < numFields; f++ {
		line := fmt.Sprintf("%-17s %s", f.Label()+":", m.fieldValue(f))
		if f == m.field && m.mode == ModeNormal {
			line = focusStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(swatchRow(m.palette, m.selectedColor))
	b.WriteString("\n\n")

	state := m.store.State()
	shape := state.Shape()
	if shape.Empty() {
		b.WriteString(dimStyle.Render("No mosaic yet, press n"))
		b.WriteString("\n")
		return b.String()
	}
	w, h := m.compositor.Metrics(state, m.grout).SurfaceSize(shape)
	fmt.Fprintf(&b, "Grid %dx%d  (%d tiles)\n", shape.Cols, shape.Rows, shape.Area())
	fmt.Fprintf(&b, "Image %dx%d px\n", w, h)
	if m.store.Template() != nil {
		b.WriteString("Fill: pattern template\n")
	} else {
		b.WriteString("Fill: random\n")
	}

	counts, stray := TileCounts(state)
	b.WriteString("\n")
	for _, tc := range counts {
		chip := lipgloss.NewStyle().Background(lipgloss.Color(HexString(tc.Color))).Render("  ")
		fmt.Fprintf(&b, "%s %2d: %d\n", chip, tc.Index+1, tc.Count)
	}
	if stray > 0 {
		fmt.Fprintf(&b, "   ?: %d\n", stray)
	}
	return b.String()
}

// swatchRow renders numbered colour chips, eight per line.
func swatchRow(p Palette, selected int) string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 && i%8 == 0 {
			b.WriteString("\n")
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(HexString(c))).
			Foreground(lipgloss.Color(contrastHex(c)))
		label := fmt.Sprintf("%2d", i+1)
		if i == selected {
			style = style.Underline(true).Bold(true)
		}
		b.WriteString(style.Render(label))
		b.WriteString(" ")
	}
	return b.String()
}

func contrastHex(c color.RGBA) string {
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 > 128000 {
		return "#000000"
	}
	return "#ffffff"
}

func (m model) previewView() string {
	img := m.preview.image
	if img == nil {
		return dimStyle.Render(" nothing to render")
	}
	if m.editMode && m.store.HasContent() {
		img = m.withCursor(img)
	}
	return halfBlocks(img)
}

// withCursor outlines the cursor tile on a copy of the preview.
func (m model) withCursor(src *image.RGBA) *image.RGBA {
	state := m.store.State()
	metrics := m.previewComp.Metrics(state, m.grout)
	s := m.preview.scale
	x0 := int(float64(metrics.Offset(m.cursor.Col)) * s)
	y0 := int(float64(metrics.Offset(m.cursor.Row)) * s)
	x1 := max(x0, int(float64(metrics.Offset(m.cursor.Col)+metrics.TilePx)*s)-1)
	y1 := max(y0, int(float64(metrics.Offset(m.cursor.Row)+metrics.TilePx)*s)-1)

	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	b := out.Bounds()
	mark := func(x, y int) {
		if image.Pt(x, y).In(b) {
			c := out.RGBAAt(x, y)
			out.SetRGBA(x, y, color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255})
		}
	}
	for x := x0; x <= x1; x++ {
		mark(x, y0)
		if y1 != y0 {
			mark(x, y1)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		mark(x0, y)
		if x1 != x0 {
			mark(x1, y)
		}
	}
	return out
}

// fitSurface scales src to fit maxW x maxH preview pixels, keeping its aspect
// ratio. The height is kept even so every terminal row holds two pixels.
func fitSurface(src *image.RGBA, maxW, maxH int) (*image.RGBA, float64) {
	sb := src.Bounds()
	if sb.Empty() || maxW <= 0 || maxH < 2 {
		return nil, 0
	}
	scale := min(float64(maxW)/float64(sb.Dx()), float64(maxH)/float64(sb.Dy()))
	dw := max(1, int(float64(sb.Dx())*scale))
	dh := max(2, int(float64(sb.Dy())*scale))
	dh += dh % 2

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst, scale
}

// halfBlocks draws two pixel rows per terminal row with "▀": foreground is
// the upper pixel, background the lower.
func halfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	lines := make([]string, 0, b.Dy()/2)
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var line strings.Builder
		runStart := b.Min.X
		for x := b.Min.X + 1; x <= b.Max.X; x++ {
			if x < b.Max.X && img.RGBAAt(x, y) == img.RGBAAt(runStart, y) && img.RGBAAt(x, y+1) == img.RGBAAt(runStart, y+1) {
				continue
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(HexString(img.RGBAAt(runStart, y)))).
				Background(lipgloss.Color(HexString(img.RGBAAt(runStart, y+1))))
			line.WriteString(style.Render(strings.Repeat("▀", x-runStart)))
			runStart = x
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (m model) statusView() string {
	var status string
	switch m.mode {
	case ModeInput:
		status = fmt.Sprintf("%s: %s█  (enter to set, esc to cancel)", m.inputField.Label(), m.inputText)
	case ModeFileInput:
		status = fmt.Sprintf("Export to: %s█", m.filename)
	case ModePattern:
		status = "Pattern: arrows move, space paint, 1-9 color, c edit color, s symmetry, g generate, +/- width, >/< height, u undo, enter apply, esc cancel"
	default:
		status = "n new layout | p pattern | e edit | u undo | S export | ? help | q quit"
		if m.editMode {
			status = "EDIT: arrows move, space/mouse paint, 1-9 color, u undo | " + status
		}
	}
	line := dimStyle.Render(truncate(status, m.width))

	var msg string
	switch {
	case m.errorMessage != "":
		msg = errorStyle.Render(truncate(m.errorMessage, m.width))
	case m.successMessage != "":
		msg = successStyle.Render(truncate(m.successMessage, m.width))
	}
	return msg + "\n" + line
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width])
}

func (m model) helpView() string {
	lines := []string{
		"Mosaic Designer Help",
		"====================",
		"",
		"Form:",
		"  tab / j k        Move between fields",
		"  h l / ← →        Adjust the focused field",
		"  enter            Type a value (colors accept #rrggbb, RAL 3020, NCS S 1050-Y90R)",
		"",
		"Mosaic:",
		"  n                New random layout (uses symmetry, drops the pattern template)",
		"  p                Open the pattern designer",
		"  g                Toggle grid lines (drawn only when grout width is 0)",
		"  s                Cycle symmetry",
		"",
		"Editing:",
		"  e                Toggle edit mode",
		"  arrows / hjkl    Move the tile cursor (shift moves 5)",
		"  space            Paint the tile under the cursor",
		"  mouse drag       Paint tiles; grout and empty space are ignored",
		"  1-9              Select paint color",
		"  u                Undo the last stroke (one level)",
		"",
		"Colors:",
		"  c                Set the selected color",
		"  y / v            Copy / paste the selected color via the clipboard",
		"",
		"Export:",
		"  S                Export the mosaic as PNG",
		"  L                Export the tile legend as PNG",
		"",
		"Press ? or esc to close",
	}
	return strings.Join(lines, "\n")
}
