package main

import (
	"fmt"
	"image/color"
	"strings"
)

type ColorSystem string

const (
	SystemRAL ColorSystem = "RAL"
	SystemNCS ColorSystem = "NCS"
)

// Approximate sRGB values for the codes people ask tile shops for most.
var ralColors = map[string]string{
	"1000": "#bebd7f", "1001": "#c2b078", "1013": "#eae6ca", "1015": "#e6d690",
	"1021": "#f3da0b", "1023": "#fad201", "2004": "#f44611", "3000": "#af2b1e",
	"3003": "#9b111e", "3020": "#cc0605", "4005": "#6c4675", "5002": "#20214f",
	"5010": "#0e294b", "5012": "#3b83bd", "5015": "#2271b3", "5024": "#5d9b9b",
	"6005": "#2f4538", "6011": "#587246", "6018": "#57a639", "6019": "#bdecb6",
	"7001": "#8a9597", "7016": "#293133", "7035": "#d7d7d7", "7040": "#9da1aa",
	"7047": "#d0d0d0", "8017": "#45322e", "9001": "#fdf4e3", "9003": "#f4f4f4",
	"9005": "#0a0a0a", "9010": "#ffffff", "9016": "#f6f6f6",
}

var ncsColors = map[string]string{
	"S 0500-N": "#f1f0ea", "S 1000-N": "#e1e1dc", "S 2000-N": "#c6c6c1",
	"S 3000-N": "#aaaaa5", "S 4000-N": "#8f8f8b", "S 5000-N": "#777773",
	"S 7000-N": "#4b4b48", "S 9000-N": "#1e1e1c", "S 1050-Y90R": "#ee8a6f",
	"S 2060-R": "#b8323f", "S 1080-Y": "#f6c500", "S 2065-B": "#0072b0",
	"S 3060-G": "#00825a", "S 1020-Y10R": "#ecd7a8", "S 2030-B": "#7ba3c6",
	"S 4050-Y90R": "#9b4a33",
}

// ResolveColorCode looks up a colour by its code in the given system.
func ResolveColorCode(code string, system ColorSystem) (color.RGBA, bool) {
	var hex string
	var ok bool
	switch system {
	case SystemRAL:
		hex, ok = ralColors[normalizeRAL(code)]
	case SystemNCS:
		hex, ok = ncsColors[normalizeNCS(code)]
	}
	if !ok {
		return color.RGBA{}, false
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

func normalizeRAL(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.TrimPrefix(code, "RAL")
	return strings.Join(strings.Fields(code), "")
}

func normalizeNCS(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.TrimSpace(strings.TrimPrefix(code, "NCS"))
	code = strings.Join(strings.Fields(code), "")
	code = strings.TrimPrefix(code, "S")
	return "S " + code
}

// ParseColorInput accepts "#rrggbb", "RAL 3020" or "NCS S 1050-Y90R".
func ParseColorInput(text string) (color.RGBA, error) {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)
	switch {
	case text == "":
		return color.RGBA{}, fmt.Errorf("empty color")
	case strings.HasPrefix(upper, "RAL"):
		if c, ok := ResolveColorCode(text, SystemRAL); ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown RAL code %q", text)
	case strings.HasPrefix(upper, "NCS"):
		if c, ok := ResolveColorCode(text, SystemNCS); ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown NCS code %q", text)
	}
	return ParseHexColor(text)
}
