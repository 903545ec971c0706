package ui

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#3366cc", color.RGBA{0x33, 0x66, 0xcc, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"3366cc", color.RGBA{102, 102, 102, 255}},
		{"#zzzzzz", color.RGBA{102, 102, 102, 255}},
	}
	for _, tt := range tests {
		if got := parseHex(tt.in); got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCameraScreenY(t *testing.T) {
	cam := Camera{Forward: 100, AnchorY: 384, Scale: 24}
	tests := []struct {
		forward, want float64
	}{
		{100, 384},
		{101, 360}, // ahead of the camera is higher up the screen
		{99, 408},
	}
	for _, tt := range tests {
		if got := cam.ScreenY(tt.forward); got != tt.want {
			t.Errorf("ScreenY(%v) = %v, want %v", tt.forward, got, tt.want)
		}
	}
}
