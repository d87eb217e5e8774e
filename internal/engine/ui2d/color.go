package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}

	// Classic 16-color palette, as the buttons use it
	ColorDarkGray  = RGB(85, 85, 85)
	ColorLightGray = RGB(170, 170, 170)
	ColorLightRed  = RGB(255, 85, 85)

	ColorBackground   = ColorBlack
	ColorWireframe    = ColorWhite
	ColorButtonFill   = ColorDarkGray
	ColorButtonBorder = ColorLightGray
	ColorText         = ColorWhite
	ColorTextError    = ColorLightRed
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// Bytes returns the color as 8-bit channels.
func (c Color) Bytes() (r, g, b, a uint8) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	default:
		return uint8(f*255 + 0.5)
	}
}
