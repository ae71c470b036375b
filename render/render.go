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

// Package render builds the presentation frames that external renderers draw
// pickers from.
//
// A frame holds one element per visual part of a picker.  Dragger elements
// carry the dragger as their only child, positioned by its top-left corner
// relative to its picker box.  Backgrounds and positions are attached as
// style properties (see package style); contrast markers as `dark`
// properties.
package render

import (
	"github.com/ilhamster/swatch/color"
	colormodel "github.com/ilhamster/swatch/color_model"
	"github.com/ilhamster/swatch/config"
	"github.com/ilhamster/swatch/geometry"
	pickerstate "github.com/ilhamster/swatch/picker_state"
	"github.com/ilhamster/swatch/style"
	"github.com/ilhamster/swatch/util"
)

// Element names.
const (
	PickerElement        = "picker"
	OverlayElement       = "overlay"
	MajorPickerElement   = "major_picker"
	MinorPickerElement   = "minor_picker"
	OpacityPickerElement = "opacity_picker"
	ConsoleElement       = "console"
	InputElement         = "input"
	ClearButtonElement   = "clear_button"
	InitialColorElement  = "initial_color"
	ButtonsElement       = "buttons"
	PaletteElement       = "palette"
)

// Property keys.
const (
	VisibleKey  = "visible"
	EmbedKey    = "embed"
	StyleKey    = "picker_style"
	SizeKey     = "size"
	DraggingKey = "dragging"
	DarkKey     = "dark"
	ValueKey    = "value"
	ColorKey    = "color"
	IndexKey    = "index"
	AllowAddKey = "allow_add"
	ActionsKey  = "actions"
	AlphaKey    = "alpha"
	EmptyKey    = "empty"
)

const transparent = "transparent"

// Snapshot is everything needed to draw a picker at one moment.
type Snapshot struct {
	// Options are the picker's normalized options.
	Options   config.Options
	Engine    geometry.Engine
	Placement geometry.Placement
	// Current is nil if the picker is cleared.
	Current *color.RGBA
	// Value is the formatted current color, and is empty if Current is nil.
	Value   string
	Input   string
	Flags   pickerstate.Flags
	Initial *color.RGBA
	// Palette holds the canonical palette colors, in order.
	Palette  []string
	Visible  bool
	Dragging pickerstate.Target
}

// Build returns the frame for the provided Snapshot.
func Build(s Snapshot) (*util.Frame, error) {
	fb := util.NewFrameBuilder()
	classic := s.Engine.Style == geometry.Classic
	current := transparent
	alpha := 1.0
	if s.Current != nil {
		current = s.Value
		if s.Options.AllowOpacity {
			alpha = s.Current.A
		}
	}

	fb.Element(PickerElement).With(
		util.BoolProperty(VisibleKey, s.Visible),
		util.BoolProperty(EmbedKey, s.Options.Embed),
		util.StringProperty(StyleKey, s.Engine.Style.String()),
		util.StringProperty(SizeKey, string(s.Options.Size)),
		util.StringProperty(DraggingKey, s.Dragging.String()),
	)
	if !s.Options.Embed {
		fb.Element(OverlayElement).With(
			style.New().With("background", current).Define(),
		)
	}

	hsl := s.Placement.HSL
	majorBackground := util.If(classic,
		style.New().
			With("background", style.HSL(hsl.H, 100, 50)).
			Define(),
	)
	minorBackground := util.If(!classic,
		style.New().
			With("background", style.LinearGradient("to bottom",
				style.HSL(0, 100, 100),
				style.HSL(hsl.H, hsl.S, 50),
				style.HSL(0, 0, 0),
			)).
			Define(),
	)
	boxes := s.Engine.Boxes
	picker(fb.Element(MajorPickerElement), boxes.Major, s.Placement.Major,
		classic && s.Flags.ColorDragger, majorBackground)
	picker(fb.Element(MinorPickerElement), boxes.Minor, s.Placement.Minor,
		!classic && s.Flags.ColorDragger, minorBackground)
	if s.Options.AllowOpacity {
		opaque := color.RGB{R: 255, G: 255, B: 255}
		if s.Current != nil {
			opaque = s.Current.RGB()
		}
		picker(fb.Element(OpacityPickerElement), boxes.Opacity, s.Placement.Opacity,
			s.Flags.OpacityDragger,
			style.New().
				With("background", style.LinearGradient("to bottom",
					style.RGBA(opaque.R, opaque.G, opaque.B, 1),
					style.RGBA(opaque.R, opaque.G, opaque.B, 0),
				)).
				Define(),
		)
	}

	fb.Element(ConsoleElement).With(
		style.New().With("background", current).Define(),
		util.If(s.Current != nil, util.DoubleProperty(AlphaKey, alpha)),
	)
	if s.Options.ShowColorValue {
		fb.Element(InputElement).With(
			util.StringProperty(ValueKey, s.Input),
			util.BoolProperty(DarkKey, s.Flags.Input),
		)
	}
	if s.Options.AllowClearColor {
		fb.Element(ClearButtonElement).With(
			util.BoolProperty(DarkKey, s.Flags.ClearButton),
		)
	}
	initial := transparent
	if s.Initial != nil {
		initial = colormodel.Model{
			Format:       s.Options.ColorFormat,
			AllowOpacity: s.Options.AllowOpacity,
		}.Render(*s.Initial).Value
	}
	fb.Element(InitialColorElement).With(
		style.New().With("background", initial).Define(),
		util.IfElse(s.Initial != nil,
			util.StringProperty(ColorKey, initial),
			util.BoolProperty(EmptyKey, true),
		),
		util.BoolProperty(DarkKey, s.Flags.InitialColor),
	)
	if s.Options.ShowButtons {
		fb.Element(ButtonsElement).With(
			util.StringsProperty(ActionsKey, "save", "cancel"),
		)
	}
	if s.Options.ShowPalette {
		palette := fb.Element(PaletteElement).With(
			util.BoolProperty(AllowAddKey, s.Options.AllowPaletteAddColor),
		)
		for idx, c := range s.Palette {
			palette.Child().With(
				util.StringProperty(ColorKey, c),
				util.IntegerProperty(IndexKey, int64(idx)),
				style.New().With("background", c).Define(),
			)
		}
	}
	return fb.Frame()
}

// picker populates a picker box element with its size and background, and
// its dragger child centered on pos.
func picker(db util.DataBuilder, box geometry.Box, pos geometry.Position, dark bool, background util.PropertyUpdate) {
	db.With(
		style.New().
			With("width", style.Px(float64(box.Width))).
			With("height", style.Px(float64(box.Height))).
			Define(),
		background,
	).Child().With(
		style.New().At(pos.X-box.Offset, pos.Y-box.Offset).Define(),
		util.BoolProperty(DarkKey, dark),
	)
}
