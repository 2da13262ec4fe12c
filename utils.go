package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// copySwatch puts the selected swatch on the clipboard as #rrggbb.
func (m *model) copySwatch() {
	hex := HexString(m.palette.Color(m.selectedColor))
	if err := clipboard.WriteAll(hex); err != nil {
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	m.successMessage = "Copied " + hex
}

// pasteSwatch reads a hex value or RAL/NCS code from the clipboard into the
// selected swatch. Anything unrecognised is rejected and the palette kept.
func (m *model) pasteSwatch() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	text = firstLine(text)
	c, err := ParseColorInput(text)
	if err != nil {
		m.errorMessage = "Rejected: " + err.Error()
		return
	}
	m.palette.Set(m.selectedColor, c)
	m.recolor()
	m.successMessage = "Pasted " + HexString(c)
}

func firstLine(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
