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

// Package picker provides Picker, a single color picker instance as a host
// embeds it: built from config.Options, driven by host calls and pointer
// drags, and drawn from the frames it produces.
package picker

import (
	"log/slog"

	"github.com/ilhamster/swatch/color"
	colormodel "github.com/ilhamster/swatch/color_model"
	"github.com/ilhamster/swatch/config"
	"github.com/ilhamster/swatch/geometry"
	"github.com/ilhamster/swatch/palette"
	pickerstate "github.com/ilhamster/swatch/picker_state"
	"github.com/ilhamster/swatch/render"
	"github.com/ilhamster/swatch/util"
)

// Value is a picker's color as reported to the host.
type Value struct {
	// Value is the formatted color, or nil if the picker is cleared.
	Value *string
	// Channels breaks Value down into its channels.  It is nil if the picker
	// is cleared.
	Channels *colormodel.Formatted
}

// Option customizes a new Picker.
type Option func(p *Picker)

// WithListener delivers the Picker's events to the provided listener.
func WithListener(l pickerstate.Listener) Option {
	return func(p *Picker) {
		p.listener = l
	}
}

// WithParser has the Picker parse colors with the provided Parser, which may
// be shared between Pickers.
func WithParser(parser *color.Parser) Option {
	return func(p *Picker) {
		p.parser = parser
	}
}

// Picker is a single color picker.  A Picker is not safe for concurrent use.
type Picker struct {
	opts     config.Options
	parser   *color.Parser
	listener pickerstate.Listener
	state    *pickerstate.State
	palette  *palette.Store
}

// New returns a new Picker configured by the provided Options.  Invalid
// options fall back to their defaults, and unparseable colors are ignored;
// both are logged, and neither prevents construction.
func New(opts config.Options, options ...Option) *Picker {
	p := &Picker{}
	for _, option := range options {
		option(p)
	}
	if p.parser == nil {
		p.parser = color.DefaultParser()
	}
	normalized, err := opts.Normalize()
	if err != nil {
		util.Logger().Warn("using fallback options", slog.Any("err", err))
	}
	p.opts = normalized

	var initial *color.RGBA
	if normalized.Color != nil {
		c, err := p.parser.Parse(*normalized.Color)
		switch {
		case err == nil:
			initial = &c
		case !normalized.AllowClearColor:
			util.Logger().Warn("ignoring unparseable color; using red",
				slog.String("color", *normalized.Color), slog.Any("err", err))
			initial = &color.RGBA{R: 255, A: 1}
		default:
			util.Logger().Warn("ignoring unparseable color",
				slog.String("color", *normalized.Color), slog.Any("err", err))
		}
	}

	p.palette = palette.New()
	for _, str := range normalized.PaletteColors {
		c, err := p.parser.Parse(str)
		if err != nil {
			util.Logger().Warn("skipping unparseable palette color",
				slog.String("color", str), slog.Any("err", err))
			continue
		}
		p.palette.Add(&c)
	}

	p.state = pickerstate.New(pickerstate.Options{
		Model: colormodel.Model{
			Format:       normalized.ColorFormat,
			AllowOpacity: normalized.AllowOpacity,
		},
		Engine:   geometry.New(normalized.PickerStyle, geometry.BoxesFor(normalized.Size)),
		Embed:    normalized.Embed,
		Parser:   p.parser,
		Listener: p.listener,
	}, initial)
	return p
}

// Options returns the receiver's normalized Options.
func (p *Picker) Options() config.Options {
	return p.opts
}

// Get returns the receiver's current color.
func (p *Picker) Get() Value {
	formatted, ok := p.state.Formatted()
	if !ok {
		return Value{}
	}
	value := formatted.Value
	return Value{
		Value:    &value,
		Channels: &formatted,
	}
}

// Set makes the provided color current, delivering Changed if it differs
// from the current color.  A nil or empty color clears the receiver if
// clearing is allowed, and is otherwise ignored.  Unparseable colors are
// ignored.
func (p *Picker) Set(str *string) {
	if str == nil || *str == "" {
		p.Clear()
		return
	}
	c, err := p.parser.Parse(*str)
	if err != nil {
		util.Logger().Debug("ignoring unparseable color", slog.String("color", *str), slog.Any("err", err))
		return
	}
	p.state.SetColor(&c, pickerstate.Update{
		EmitChange:     true,
		UpdateInput:    true,
		UpdateDraggers: true,
	})
}

// Show shows the receiver, delivering Open if it was hidden.
func (p *Picker) Show() {
	p.state.Show()
}

// Hide hides the receiver, delivering Close if it was shown.
func (p *Picker) Hide() {
	p.state.Hide()
}

// Save makes the current color the initial color and delivers Save.  A
// picker that is not embedded is hidden first.
func (p *Picker) Save() {
	p.state.Commit()
}

// Cancel restores the initial color and delivers Cancel.  A picker that is
// not embedded is hidden first.
func (p *Picker) Cancel() {
	p.state.Revert()
}

// Visible returns true if the receiver is shown.
func (p *Picker) Visible() bool {
	return p.state.Visible()
}

// TypeValue applies text typed into the color value input.
func (p *Picker) TypeValue(text string) {
	p.state.SetFromTypedValue(text)
}

// Clear removes the current color, delivering Changed.  It does nothing
// unless clearing is allowed.
func (p *Picker) Clear() {
	if !p.opts.AllowClearColor {
		return
	}
	p.state.Clear(false)
}

// RestoreInitial makes the initial color current without delivering Cancel.
func (p *Picker) RestoreInitial() {
	p.state.RestoreInitial()
}

// AddToPalette appends the current color to the palette.  It returns false
// if adding is not allowed, the receiver is cleared, or the palette already
// holds the color.
func (p *Picker) AddToPalette() bool {
	if !p.opts.AllowPaletteAddColor {
		return false
	}
	c := p.state.Current()
	if c != nil && !p.opts.AllowOpacity {
		opaque := c.WithAlpha(1)
		c = &opaque
	}
	return p.palette.Add(c)
}

// Palette returns the palette's colors in canonical form.
func (p *Picker) Palette() []string {
	return p.palette.List()
}

// SelectPalette makes the palette color at the provided index current.  It
// returns false if there is no such color.
func (p *Picker) SelectPalette(idx int) bool {
	c, ok := p.palette.At(idx)
	if !ok {
		return false
	}
	p.state.SetColor(&c, pickerstate.Update{
		EmitChange:     true,
		UpdateInput:    true,
		UpdateDraggers: true,
	})
	return true
}

// BeginDrag starts dragging the specified dragger at the provided
// box-relative position.  Dragging the opacity dragger of a picker without
// opacity does nothing.
func (p *Picker) BeginDrag(target pickerstate.Target, pos geometry.Position) {
	if target == pickerstate.Opacity && !p.opts.AllowOpacity {
		return
	}
	p.state.BeginDrag(target, pos)
}

// MoveDrag moves the dragger being dragged.
func (p *Picker) MoveDrag(pos geometry.Position) {
	p.state.MoveDrag(pos)
}

// EndDrag ends the drag in progress, if any.
func (p *Picker) EndDrag() {
	p.state.EndDrag()
}

// Frame returns the presentation frame for the receiver's current state.
func (p *Picker) Frame() (*util.Frame, error) {
	snapshot := render.Snapshot{
		Options:   p.opts,
		Engine:    p.state.Engine(),
		Placement: p.state.Placement(),
		Current:   p.state.Current(),
		Input:     p.state.Input(),
		Flags:     p.state.Flags(),
		Initial:   p.state.Initial(),
		Palette:   p.palette.List(),
		Visible:   p.state.Visible(),
		Dragging:  p.state.Dragging(),
	}
	if formatted, ok := p.state.Formatted(); ok {
		snapshot.Value = formatted.Value
	}
	return render.Build(snapshot)
}
