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

// Package color provides the color representations used by pickers and the
// conversions between them: RGB, RGBA, HSL, and hex strings, plus parsing of
// HTML color strings (named colors and the hex, rgb, rgba, hsl, and hsla
// notations) into RGBA.
//
// All channel values are integers: r, g, and b in [0, 255], h in degrees
// [0, 360), and s and l in percent [0, 100].  Conversions round to the
// nearest integer, so RGB -> HSL -> RGB is exact only up to rounding.
package color

import (
	"fmt"
	"math"
	"strings"
)

const (
	channelMax = 255
	hueMax     = 360
	percentMax = 100
)

// RGB is an opaque color with integer channels in [0, 255].
type RGB struct {
	R, G, B int
}

// RGBA is an RGB color with an opacity in [0, 1].
type RGBA struct {
	R, G, B int
	A       float64
}

// Opaque returns the receiver as an RGBA with full opacity.
func (c RGB) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// RGB returns the receiver without its opacity.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns a copy of the receiver with the provided opacity.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clampUnit(a)
	return c
}

// Max returns the largest of the receiver's channels.
func (c RGB) Max() int {
	return max(c.R, c.G, c.B)
}

// Min returns the smallest of the receiver's channels.
func (c RGB) Min() int {
	return min(c.R, c.G, c.B)
}

// Channels returns the receiver's channels in r, g, b order.
func (c RGB) Channels() [3]int {
	return [3]int{c.R, c.G, c.B}
}

// HSL is a color in hue/saturation/lightness space.
type HSL struct {
	// Hue in degrees.  360 is accepted and is equivalent to 0.
	H int
	// Saturation in percent.
	S int
	// Lightness in percent.
	L int
}

// RGBToHex renders the provided color as '#RRGGBB', with uppercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// HexToRGB parses a '#RRGGBB' or '#RGB' string (the leading '#' is
// optional).  Any alpha digits are rejected.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, &ParseError{Input: hex, Reason: "hex color must have 3 or 6 digits"}
	}
	c, err := parseHexDigits(hex, digits)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB(), nil
}

// RGBToHSL converts the provided color to HSL.  Grays (r == g == b) have
// h = 0 and s = 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / channelMax
	g := float64(c.G) / channelMax
	b := float64(c.B) / channelMax
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2
	var h, s float64
	if maxC != minC {
		delta := maxC - minC
		if l < 0.5 {
			s = delta / (maxC + minC)
		} else {
			s = delta / (2 - maxC - minC)
		}
		switch maxC {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
	}
	hue := int(math.Round(h * 60))
	if hue < 0 {
		hue += hueMax
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * percentMax)),
		L: int(math.Round(l * percentMax)),
	}
}

// HSLToRGB converts the provided HSL color to RGB.
func HSLToRGB(c HSL) RGB {
	return hslToRGB(float64(c.H), float64(c.S)/percentMax, float64(c.L)/percentMax)
}

// hslToRGB converts h in degrees (any value; it is wrapped) and s, l in [0, 1]
// to RGB.
func hslToRGB(h, s, l float64) RGB {
	h = math.Mod(h, hueMax)
	if h < 0 {
		h += hueMax
	}
	h /= hueMax
	s = clampUnit(s)
	l = clampUnit(l)
	if s == 0 {
		v := channelOf(l)
		return RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: channelOf(hueToChannel(p, q, h+1.0/3)),
		G: channelOf(hueToChannel(p, q, h)),
		B: channelOf(hueToChannel(p, q, h-1.0/3)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	} else if t > 1 {
		t--
	}
	switch {
	case 6*t < 1:
		return p + (q-p)*6*t
	case 2*t < 1:
		return q
	case 3*t < 2:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func channelOf(unit float64) int {
	return clampChannel(int(math.Round(unit * channelMax)))
}

func clampChannel(v int) int {
	return min(max(v, 0), channelMax)
}

func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
