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

// Package pickerstate holds the state of a single color picker: its current
// and initial colors, its dragger placement, the contrast markers drawn over
// its color, its visibility, and any drag in progress.  It applies every
// change to that state in a fixed order and notifies a single listener.
//
// A State is not safe for concurrent use; every operation runs to
// completion on the calling goroutine.
package pickerstate

import (
	"log/slog"
	"strings"

	"github.com/ilhamster/swatch/color"
	colormodel "github.com/ilhamster/swatch/color_model"
	"github.com/ilhamster/swatch/geometry"
	"github.com/ilhamster/swatch/util"
)

const (
	// Below this opacity, the opacity dragger is drawn dark.
	opacityDraggerThreshold = 0.25
	// Below this opacity, the typed-value input, the clear button, and the
	// initial-color swatch are drawn dark.
	consoleThreshold = 0.4
)

// Target identifies one of a picker's draggers.
type Target int

// Drag targets.
const (
	None Target = iota
	Major
	Minor
	Opacity
)

func (t Target) String() string {
	switch t {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Opacity:
		return "opacity"
	}
	return "none"
}

// Update specifies what a color change should update beyond the color
// itself.
type Update struct {
	// If true, Changed is delivered if the color changes.
	EmitChange bool
	// If true, the typed-value input shows the new color.
	UpdateInput bool
	// If true, the draggers are moved to select the new color.
	UpdateDraggers bool
}

// Flags holds the contrast markers of a picker's overlays.  A true flag
// means the overlay sits on a dark background and should be drawn light.
type Flags struct {
	ColorDragger   bool
	OpacityDragger bool
	Input          bool
	ClearButton    bool
	InitialColor   bool
}

// Options configures a new State.
type Options struct {
	Model  colormodel.Model
	Engine geometry.Engine
	// Embedded pickers are always visible.  Others start hidden, and hide
	// when their color is saved or canceled.
	Embed bool
	// If nil, color.DefaultParser() is used.
	Parser   *color.Parser
	Listener Listener
}

// State is the state of a single picker.
type State struct {
	model    colormodel.Model
	engine   geometry.Engine
	embed    bool
	parser   *color.Parser
	listener Listener

	// The most recently applied color.  Retained while cleared, so that its
	// hue can seed the next drag.
	rgba color.RGBA
	// The formatted current color, meaningful only if hasColor.
	value    string
	hasColor bool

	initial *color.RGBA

	input     string
	flags     Flags
	placement geometry.Placement
	dragging  Target
	visible   bool
}

// New returns a new State showing the provided color, or no color if it is
// nil.  The provided color is also the initial color.  No events are
// delivered during construction.
func New(opts Options, c *color.RGBA) *State {
	s := &State{
		model:     opts.Model,
		engine:    opts.Engine,
		embed:     opts.Embed,
		parser:    opts.Parser,
		listener:  opts.Listener,
		rgba:      color.RGBA{A: 1},
		placement: opts.Engine.Origin(),
		visible:   opts.Embed,
	}
	if s.parser == nil {
		s.parser = color.DefaultParser()
	}
	if c == nil {
		s.Clear(true)
	} else {
		s.rgba = *c
		s.value = s.model.Render(*c).Value
		s.hasColor = true
		initial := *c
		s.initial = &initial
		s.SetColor(nil, Update{UpdateInput: true, UpdateDraggers: true})
	}
	s.updateInitialFlag()
	return s
}

// SetListener replaces the receiver's listener.  A nil listener discards
// events.
func (s *State) SetListener(l Listener) {
	s.listener = l
}

func (s *State) emit(e Event) {
	if s.listener != nil {
		s.listener(e)
	}
}

// Model returns the receiver's color model.
func (s *State) Model() colormodel.Model {
	return s.model
}

// Engine returns the receiver's geometry engine.
func (s *State) Engine() geometry.Engine {
	return s.engine
}

// Current returns the current color, or nil if the receiver is cleared.
func (s *State) Current() *color.RGBA {
	if !s.hasColor {
		return nil
	}
	ret := s.rgba
	return &ret
}

// Initial returns the initial color: the color at construction or at the
// last Commit.  It is nil if that color was cleared.
func (s *State) Initial() *color.RGBA {
	if s.initial == nil {
		return nil
	}
	ret := *s.initial
	return &ret
}

// Formatted returns the current color in the receiver's format, and false if
// the receiver is cleared.
func (s *State) Formatted() (colormodel.Formatted, bool) {
	if !s.hasColor {
		return colormodel.Formatted{}, false
	}
	return s.model.Render(s.rgba), true
}

// Input returns the text of the typed-value input.
func (s *State) Input() string {
	return s.input
}

// Flags returns the receiver's contrast markers.
func (s *State) Flags() Flags {
	return s.flags
}

// Placement returns the receiver's dragger placement.
func (s *State) Placement() geometry.Placement {
	return s.placement
}

// Dragging returns the dragger being dragged, or None.
func (s *State) Dragging() Target {
	return s.dragging
}

// Visible returns true if the receiver is shown.
func (s *State) Visible() bool {
	return s.visible
}

// SetColor sets the current color.  If c is nil, the presentation of the
// retained color is reapplied instead.  It returns false, doing nothing
// else, if the new color formats identically to the current one.
//
// In order, SetColor updates the contrast markers, then the typed-value
// input and the draggers as directed by u, and finally delivers Changed if
// u directs.
func (s *State) SetColor(c *color.RGBA, u Update) bool {
	if c != nil {
		value := s.model.Render(*c).Value
		s.rgba = *c
		if s.hasColor && value == s.value {
			return false
		}
		s.value = value
		s.hasColor = true
	}
	dark := colormodel.IsDark(s.rgba)
	s.flags.ColorDragger = dark
	s.flags.OpacityDragger = dark || s.rgba.A < opacityDraggerThreshold
	s.flags.Input = dark || s.rgba.A < consoleThreshold
	s.flags.ClearButton = s.flags.Input
	if u.UpdateInput {
		s.input = s.value
	}
	if u.UpdateDraggers {
		s.placement = s.engine.Place(s.rgba, s.placement)
	}
	if u.EmitChange {
		s.emit(Changed)
	}
	return true
}

// SetColorFromPosition moves the specified dragger to the provided position,
// clamped into its box, and sets the color it then selects.  The other
// draggers stay where they are.  It returns true if the color changed.
func (s *State) SetColorFromPosition(pos geometry.Position, target Target, emitChange bool) bool {
	boxes := s.engine.Boxes
	c := s.rgba
	switch target {
	case Major:
		pos = boxes.Major.Clamp(pos)
		rgb, axes := s.engine.DeriveFromMajor(pos, s.placement)
		s.placement.Major, s.placement.Axes = pos, axes
		c = rgb.Opaque().WithAlpha(s.rgba.A)
	case Minor:
		pos = boxes.Minor.Clamp(pos)
		pos.X = boxes.Minor.Center()
		rgb, axes := s.engine.DeriveFromMinor(pos, s.placement)
		s.placement.Minor, s.placement.Axes = pos, axes
		c = rgb.Opaque().WithAlpha(s.rgba.A)
	case Opacity:
		pos = boxes.Opacity.Clamp(pos)
		pos.X = boxes.Opacity.Center()
		s.placement.Opacity = pos
		c = c.WithAlpha(s.engine.AlphaAt(pos.Y))
	default:
		return false
	}
	return s.SetColor(&c, Update{EmitChange: emitChange, UpdateInput: true})
}

// Clear removes the current color, moving all draggers to their origins and
// marking all overlays dark.  It does nothing if there is no current color,
// unless force is true.  Unless force is true, Changed is delivered.
func (s *State) Clear(force bool) {
	if !s.hasColor && !force {
		return
	}
	s.placement = s.engine.Origin()
	s.rgba.A = 1
	s.flags = Flags{
		ColorDragger:   true,
		OpacityDragger: true,
		Input:          true,
		ClearButton:    true,
		InitialColor:   s.flags.InitialColor,
	}
	s.input = ""
	if !force {
		s.hasColor = false
		s.value = ""
		s.emit(Changed)
	}
}

// RestoreInitial makes the initial color current, clearing if it is nil.
// Changed is delivered if the color changes.
func (s *State) RestoreInitial() {
	if s.initial == nil {
		s.Clear(false)
		return
	}
	c := *s.initial
	s.SetColor(&c, Update{EmitChange: true, UpdateInput: true, UpdateDraggers: true})
}

// Commit makes the current color the initial color, hides the receiver if
// it is not embedded, and delivers Save.
func (s *State) Commit() {
	s.initial = s.Current()
	s.updateInitialFlag()
	if !s.embed {
		s.Hide()
	}
	s.emit(Save)
}

// Revert restores the initial color, hides the receiver if it is not
// embedded, and delivers Cancel.
func (s *State) Revert() {
	s.RestoreInitial()
	if !s.embed {
		s.Hide()
	}
	s.emit(Cancel)
}

func (s *State) updateInitialFlag() {
	if s.initial == nil {
		s.flags.InitialColor = true
		return
	}
	s.flags.InitialColor = colormodel.IsDark(*s.initial) || s.initial.A < consoleThreshold
}

// SetFromTypedValue sets the current color from text typed into the
// typed-value input.  Blank text, text equal to the current formatted color,
// and text that does not parse as a color are ignored.
func (s *State) SetFromTypedValue(text string) {
	if strings.TrimSpace(text) == "" || (s.hasColor && text == s.value) {
		return
	}
	c, err := s.parser.Parse(text)
	if err != nil {
		util.Logger().Debug("ignoring typed color", slog.String("text", text), slog.Any("err", err))
		return
	}
	s.input = text
	s.SetColor(&c, Update{EmitChange: true, UpdateDraggers: true})
}

// Show makes the receiver visible, delivering Open if it was hidden.
func (s *State) Show() {
	if s.visible {
		return
	}
	s.visible = true
	s.emit(Open)
}

// Hide makes the receiver invisible, delivering Close if it was shown.
func (s *State) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	s.emit(Close)
}

// BeginDrag starts dragging the specified dragger, moving it to the provided
// position.  If the receiver is cleared, the partner dragger's position is
// first applied, without notification, so that the dragged dragger has a
// color to work against; Changed is then always delivered.
func (s *State) BeginDrag(target Target, pos geometry.Position) {
	if target == None {
		return
	}
	s.dragging = target
	cleared := !s.hasColor
	if cleared {
		classic := s.engine.Style == geometry.Classic
		switch {
		case classic && target != Minor:
			s.SetColorFromPosition(s.placement.Minor, Minor, false)
		case !classic && target != Major:
			s.SetColorFromPosition(s.placement.Major, Major, false)
		}
	}
	if !s.SetColorFromPosition(pos, target, true) && cleared {
		s.emit(Changed)
	}
}

// MoveDrag moves the dragger being dragged to the provided position.  It
// does nothing if no drag is in progress.
func (s *State) MoveDrag(pos geometry.Position) {
	if s.dragging == None {
		return
	}
	s.SetColorFromPosition(pos, s.dragging, true)
}

// EndDrag ends any drag in progress.
func (s *State) EndDrag() {
	s.dragging = None
}
