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

// Package geometry maps between dragger positions within a picker's boxes
// and colors.  A picker has a two-dimensional major box, a one-dimensional
// minor strip, and a one-dimensional opacity strip; the meaning of the major
// and minor axes depends on the picker's Style.
//
// All positions are crosshair centers relative to the top-left of their box,
// and are clamped into the box rather than rejected.
package geometry

import (
	"fmt"
	"math"

	"github.com/ilhamster/swatch/color"
)

const (
	channelMax = 255
	hueMax     = 360
	percentMax = 100
)

// Size is a picker size class.
type Size string

// Supported size classes.
const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// ParseSize returns the Size named by the provided string, and whether it
// names one.
func ParseSize(name string) (Size, bool) {
	switch s := Size(name); s {
	case Small, Medium, Large:
		return s, true
	}
	return Medium, false
}

// Box is the extent of a single picker.  Offset is half the size of the
// picker's dragger, and is subtracted from a crosshair position to place the
// dragger's top-left corner.
type Box struct {
	Width, Height, Offset int
}

// Clamp returns the provided position clamped into the receiver.
func (b Box) Clamp(p Position) Position {
	return Position{
		X: min(max(p.X, 0), b.Width),
		Y: min(max(p.Y, 0), b.Height),
	}
}

// Center returns the horizontal center of the receiver; strip draggers are
// always centered horizontally.
func (b Box) Center() int {
	return b.Width / 2
}

// Boxes holds the boxes of a picker's three pickers.
type Boxes struct {
	Major, Minor, Opacity Box
}

const (
	majorOffset = 9
	stripOffset = 7
)

// BoxesFor returns the boxes for the provided size class.  Unknown sizes get
// medium boxes.
func BoxesFor(size Size) Boxes {
	var major, stripWidth int
	switch size {
	case Small:
		major, stripWidth = 125, 20
	case Large:
		major, stripWidth = 250, 30
	default:
		major, stripWidth = 175, 30
	}
	strip := Box{Width: stripWidth, Height: major, Offset: stripOffset}
	return Boxes{
		Major:   Box{Width: major, Height: major, Offset: majorOffset},
		Minor:   strip,
		Opacity: strip,
	}
}

// Style selects the meaning of the major and minor pickers.
type Style int

const (
	// Classic pickers have a saturation/value major box at the hue selected
	// by a hue minor strip.
	Classic Style = 0
	// HueSaturation pickers have a hue/saturation major box and a lightness
	// minor strip.
	HueSaturation Style = 1
)

// ParseStyle returns the Style with the provided number, and whether there
// is one.
func ParseStyle(n int) (Style, bool) {
	switch s := Style(n); s {
	case Classic, HueSaturation:
		return s, true
	}
	return HueSaturation, false
}

func (s Style) String() string {
	switch s {
	case Classic:
		return "classic"
	case HueSaturation:
		return "hue-saturation"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Position is a crosshair position within a box.
type Position struct {
	X, Y int
}

// Axes holds the values a picker threads between its major and minor pickers
// so that moving one preserves what the other selected.
type Axes struct {
	// Base is the fully saturated color at the current hue, against which a
	// Classic major box is drawn.
	Base color.RGB
	// HSL is the most recently selected hue, saturation, and lightness.  For
	// Classic pickers only the hue is meaningful.
	HSL color.HSL
}

// Placement is the positions of all three draggers, plus the Axes they
// select.
type Placement struct {
	Major, Minor, Opacity Position
	Axes
}

// Engine maps positions to colors and back for a given Style and Boxes.
type Engine struct {
	Style Style
	Boxes Boxes
}

// New returns a new Engine.
func New(style Style, boxes Boxes) Engine {
	return Engine{Style: style, Boxes: boxes}
}

func round(v float64) int {
	return int(math.Round(v))
}

// HueBase returns the fully saturated, half-lightness color at the provided
// hue.
func HueBase(hue int) color.RGB {
	return color.HSLToRGB(color.HSL{H: hue, S: percentMax, L: percentMax / 2})
}

// Origin returns the placement of a picker with no color: major and minor
// draggers at their origins, and the opacity dragger at full opacity.
func (e Engine) Origin() Placement {
	return Placement{
		Major:   Position{},
		Minor:   Position{X: e.Boxes.Minor.Center()},
		Opacity: Position{X: e.Boxes.Opacity.Center()},
		Axes: Axes{
			Base: HueBase(0),
			HSL:  color.HSL{S: percentMax, L: percentMax / 2},
		},
	}
}

// DeriveFromMajor returns the color selected by moving the major dragger to
// the provided position, with the minor dragger and the partner values as in
// the provided placement, along with the Axes that result.
func (e Engine) DeriveFromMajor(pos Position, pl Placement) (color.RGB, Axes) {
	pos = e.Boxes.Major.Clamp(pos)
	if e.Style == Classic {
		return e.classicMajor(pos, pl.Base), pl.Axes
	}
	box := e.Boxes.Major
	hsl := color.HSL{
		H: round(float64(hueMax*pos.X) / float64(box.Width)),
		S: round(percentMax - float64(percentMax*pos.Y)/float64(box.Height)),
		L: e.lightnessAt(pl.Minor.Y),
	}
	return color.HSLToRGB(hsl), Axes{Base: pl.Base, HSL: hsl}
}

// DeriveFromMinor returns the color selected by moving the minor dragger to
// the provided position, with the major dragger and the partner values as in
// the provided placement, along with the Axes that result.
func (e Engine) DeriveFromMinor(pos Position, pl Placement) (color.RGB, Axes) {
	pos = e.Boxes.Minor.Clamp(pos)
	if e.Style == Classic {
		hue := round(float64(hueMax*pos.Y) / float64(e.Boxes.Minor.Height))
		axes := Axes{
			Base: HueBase(hue),
			HSL:  color.HSL{H: hue, S: percentMax, L: percentMax / 2},
		}
		return e.classicMajor(e.Boxes.Major.Clamp(pl.Major), axes.Base), axes
	}
	hsl := pl.HSL
	hsl.L = e.lightnessAt(pos.Y)
	return color.HSLToRGB(hsl), Axes{Base: pl.Base, HSL: hsl}
}

// AlphaAt returns the opacity selected by an opacity dragger at the provided
// vertical position: 1 at the top, 0 at the bottom, in steps of 0.01.
func (e Engine) AlphaAt(y int) float64 {
	h := e.Boxes.Opacity.Height
	y = min(max(y, 0), h)
	return float64(round(float64(percentMax*(h-y))/float64(h))) / percentMax
}

// classicMajor returns the color at the provided position of a Classic major
// box drawn against the provided base.  The top edge runs from white to the
// base, and every column darkens to black at the bottom.
func (e Engine) classicMajor(pos Position, base color.RGB) color.RGB {
	w, h := float64(e.Boxes.Major.Width), float64(e.Boxes.Major.Height)
	x, y := float64(pos.X), float64(pos.Y)
	var ret [3]int
	for i, v := range base.Channels() {
		if v == channelMax {
			ret[i] = round(channelMax - channelMax*y/h)
			continue
		}
		top := round((h - y) * float64(v) / h)
		left := round((w - x) * float64(channelMax-v) / w)
		ret[i] = top + round((h-y)*float64(left)/h)
	}
	return color.RGB{R: ret[0], G: ret[1], B: ret[2]}
}

func (e Engine) lightnessAt(y int) int {
	h := e.Boxes.Minor.Height
	y = min(max(y, 0), h)
	return round(percentMax - float64(percentMax*y)/float64(h))
}

// Place returns the placement of draggers that selects the provided color.
//
// Some colors do not determine every coordinate: grays have no hue, black
// and white have no saturation, and hue 0 is also hue 360.  For these, the
// coordinate (and the partner value it selects) is taken from the provided
// hint, which should be the picker's current placement, so that setting such
// a color does not move the undetermined draggers.
func (e Engine) Place(c color.RGBA, hint Placement) Placement {
	rgb := c.RGB()
	hsl := color.RGBToHSL(rgb)
	var ret Placement
	if e.Style == Classic {
		ret = e.placeClassic(rgb, hsl, hint)
	} else {
		ret = e.placeHueSaturation(hsl, hint)
	}
	ret.Minor.X = e.Boxes.Minor.Center()
	ret.Opacity = Position{
		X: e.Boxes.Opacity.Center(),
		Y: round(float64(e.Boxes.Opacity.Height) * (1 - c.A)),
	}
	return ret
}

func (e Engine) placeClassic(rgb color.RGB, hsl color.HSL, hint Placement) Placement {
	box, minor := e.Boxes.Major, e.Boxes.Minor
	w, h := float64(box.Width), float64(box.Height)
	maxC, minC := float64(rgb.Max()), float64(rgb.Min())
	var ret Placement
	ret.Major.Y = round(h - h*maxC/channelMax)
	if maxC == 0 {
		ret.Major.X = hint.Major.X
	} else {
		ret.Major.X = round(w-w*minC/channelMax) -
			round(w*float64(ret.Major.Y)*minC/(h*maxC))
	}
	ret.Major = box.Clamp(ret.Major)
	if hsl.S == 0 {
		ret.Minor.Y = hint.Minor.Y
		ret.Axes = hint.Axes
		return ret
	}
	hue := nearestHue(hsl.H, minor.Height, hint.Minor.Y)
	ret.Minor.Y = round(float64(minor.Height) * float64(hue) / hueMax)
	ret.Axes = Axes{
		Base: HueBase(hue),
		HSL:  color.HSL{H: hue, S: percentMax, L: percentMax / 2},
	}
	return ret
}

func (e Engine) placeHueSaturation(hsl color.HSL, hint Placement) Placement {
	box, minor := e.Boxes.Major, e.Boxes.Minor
	w, h := float64(box.Width), float64(box.Height)
	ret := Placement{Axes: Axes{Base: hint.Base, HSL: hsl}}
	ret.Minor.Y = round(float64(minor.Height) - float64(minor.Height*hsl.L)/percentMax)
	switch {
	case hsl.L == 0 || hsl.L == percentMax:
		ret.Major = hint.Major
		ret.HSL.H, ret.HSL.S = hint.HSL.H, hint.HSL.S
		return ret
	case hsl.S == 0:
		ret.Major = Position{X: hint.Major.X, Y: box.Height}
		ret.HSL.H = hint.HSL.H
		return ret
	}
	// A hue of 0 lies on both the left and right edges.
	ret.HSL.H = nearestHue(hsl.H, box.Width, hint.Major.X)
	ret.Major = Position{
		X: round(w * float64(ret.HSL.H) / hueMax),
		Y: round(h - h*float64(hsl.S)/percentMax),
	}
	return ret
}

// nearestHue returns whichever of 0 and 360 lies closer to the hint along a
// hue axis of the given extent if hue is one of those, and hue otherwise.
func nearestHue(hue, extent, hint int) int {
	if hue != 0 && hue != hueMax {
		return hue
	}
	if hint*2 > extent {
		return hueMax
	}
	return 0
}
