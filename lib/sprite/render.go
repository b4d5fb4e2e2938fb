// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sprite

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	reset     = termenv.CSI + termenv.ResetSeq + "m"

	// alphaThreshold is the alpha below which a pixel counts as
	// transparent.
	alphaThreshold = 0x80
)

// Render scales img to width columns, preserving aspect ratio, and
// draws it with half blocks in profile's colors. Each line ends with a
// reset so styling never leaks into surrounding text. The Ascii
// profile emits the glyphs alone.
func Render(img image.Image, width int, profile termenv.Profile) string {
	bounds := img.Bounds()
	if width < 1 || bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}
	scaled := imaging.Resize(img, width, 0, imaging.Lanczos)
	bounds = scaled.Bounds()

	lineEnd := reset
	if profile == termenv.Ascii {
		lineEnd = ""
	}

	var builder strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			builder.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			upper, upperVisible := pixel(scaled, x, y)
			lower, lowerVisible := pixel(scaled, x, y+1)
			switch {
			case upperVisible && lowerVisible:
				builder.WriteString(cell(profile, upperHalf, upper, lower))
			case upperVisible:
				builder.WriteString(cell(profile, upperHalf, upper, ""))
			case lowerVisible:
				builder.WriteString(cell(profile, lowerHalf, lower, ""))
			default:
				builder.WriteString(cell(profile, " ", "", ""))
			}
		}
		builder.WriteString(lineEnd)
	}
	return builder.String()
}

// pixel returns the hex color at (x, y) and whether it is opaque
// enough to draw. Rows past the bottom (the lower half of an
// odd-height image) are transparent.
func pixel(img *image.NRGBA, x, y int) (string, bool) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return "", false
	}
	value := img.NRGBAAt(x, y)
	if value.A < alphaThreshold {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", value.R, value.G, value.B), true
}

// cell draws glyph with the given colors. An empty background leaves
// the terminal's default background.
func cell(profile termenv.Profile, glyph, foreground, background string) string {
	if profile == termenv.Ascii {
		return glyph
	}
	sequences := []string{}
	if foreground != "" {
		if sequence := profile.Color(foreground).Sequence(false); sequence != "" {
			sequences = append(sequences, sequence)
		}
	}
	if background != "" {
		if sequence := profile.Color(background).Sequence(true); sequence != "" {
			sequences = append(sequences, sequence)
		}
	} else {
		sequences = append(sequences, "49")
	}
	return termenv.CSI + strings.Join(sequences, ";") + "m" + glyph
}
