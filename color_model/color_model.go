/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package colormodel renders RGBA colors in the textual format a picker is
// configured to report (hex, rgb, rgba, hsl, or hsla), and derives the
// contrast decisions pickers make about a color.
package colormodel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ilhamster/swatch/color"
)

// Format is an output color notation.
type Format string

// Supported formats.
const (
	Hex  Format = "hex"
	RGB  Format = "rgb"
	RGBA Format = "rgba"
	HSL  Format = "hsl"
	HSLA Format = "hsla"
)

// ParseFormat returns the Format named by the provided string, and whether
// it names one.
func ParseFormat(name string) (Format, bool) {
	switch f := Format(name); f {
	case Hex, RGB, RGBA, HSL, HSLA:
		return f, true
	}
	return Hex, false
}

// hasOpacity returns true if the receiver's notation carries an alpha
// component.
func (f Format) hasOpacity() bool {
	return f == RGBA || f == HSLA
}

// isHSL returns true if the receiver is an HSL-based notation.
func (f Format) isHSL() bool {
	return f == HSL || f == HSLA
}

// Formatted is a color rendered in some Format, with the channel values the
// rendering shows.  RGB, HSL, and Alpha are nil when the rendering does not
// include them; a hex rendering has only its Value.
type Formatted struct {
	Value string
	RGB   *color.RGB
	HSL   *color.HSL
	Alpha *float64
}

// Model formats colors for a single picker.
type Model struct {
	Format Format
	// If false, opacity is never rendered.
	AllowOpacity bool
}

// Render formats the provided color.
//
// An opaque color, or any color when the receiver disallows opacity, uses
// the configured notation, with an opacity-bearing notation showing an
// opacity of 1.  A translucent color uses the opacity-bearing sibling of the
// configured notation (rgba for rgb, hsla for hsl); hex has no such sibling
// and always drops opacity.
func (m Model) Render(c color.RGBA) Formatted {
	rgb := c.RGB()
	a := c.A
	if a == 1 || !m.AllowOpacity {
		a = 1
	}
	switch {
	case m.Format.isHSL():
		hsl := color.RGBToHSL(rgb)
		ret := Formatted{HSL: &hsl}
		if a == 1 && !m.Format.hasOpacity() {
			ret.Value = fmt.Sprintf("hsl(%d,%d%%,%d%%)", hsl.H, hsl.S, hsl.L)
			return ret
		}
		ret.Alpha = &a
		ret.Value = fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)", hsl.H, hsl.S, hsl.L, FormatAlpha(a))
		return ret
	case m.Format == RGB || m.Format == RGBA:
		ret := Formatted{RGB: &rgb}
		if a == 1 && !m.Format.hasOpacity() {
			ret.Value = fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
			return ret
		}
		ret.Alpha = &a
		ret.Value = fmt.Sprintf("rgba(%d,%d,%d,%s)", rgb.R, rgb.G, rgb.B, FormatAlpha(a))
		return ret
	}
	return Formatted{Value: color.RGBToHex(rgb)}
}

// FormatAlpha renders an opacity with as few digits as represent it.
func FormatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Canonical renders the provided color as 'rgba(r, g, b, a)'.  Two colors
// are the same palette entry iff their canonical strings are equal.
func Canonical(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatAlpha(c.A))
}

// darknessThreshold is the highest perceived luminance considered dark.
const darknessThreshold = 125

// Luminance returns the perceived luminance of the provided color, in
// [0, 255].
func Luminance(c color.RGBA) int {
	return int(math.Round(float64(c.R*299+c.G*587+c.B*114) / 1000))
}

// IsDark returns true if overlays on the provided color should be drawn in
// their dark-background variant.  Opacity is not considered.
func IsDark(c color.RGBA) bool {
	return Luminance(c) <= darknessThreshold
}
