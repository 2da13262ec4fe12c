package main

import (
	"image/color"
	"testing"
)

func TestResolveColorCode(t *testing.T) {
	cases := []struct {
		code   string
		system ColorSystem
		want   string
		ok     bool
	}{
		{"3020", SystemRAL, "#cc0605", true},
		{"RAL 3020", SystemRAL, "#cc0605", true},
		{"ral9010", SystemRAL, "#ffffff", true},
		{"S 1050-Y90R", SystemNCS, "#ee8a6f", true},
		{"NCS S 1050-Y90R", SystemNCS, "#ee8a6f", true},
		{"ncs s2060-r", SystemNCS, "#b8323f", true},
		{"1050-Y90R", SystemNCS, "#ee8a6f", true},
		{"9999", SystemRAL, "", false},
		{"3020", SystemNCS, "", false},
		{"3020", ColorSystem("PANTONE"), "", false},
	}
	for _, tc := range cases {
		got, ok := ResolveColorCode(tc.code, tc.system)
		if ok != tc.ok {
			t.Errorf("ResolveColorCode(%q, %s) ok = %v, want %v", tc.code, tc.system, ok, tc.ok)
			continue
		}
		if ok && HexString(got) != tc.want {
			t.Errorf("ResolveColorCode(%q, %s) = %s, want %s", tc.code, tc.system, HexString(got), tc.want)
		}
	}
}

func TestParseColorInput(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#123456", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, true},
		{"RAL 9005", color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255}, true},
		{"NCS S 9000-N", color.RGBA{R: 0x1e, G: 0x1e, B: 0x1c, A: 255}, true},
		{"RAL 0000", color.RGBA{}, false},
		{"NCS S 0000-X", color.RGBA{}, false},
		{"   ", color.RGBA{}, false},
		{"teal", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColorInput(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColorInput(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseColorInput(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
