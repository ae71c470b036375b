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

// Package config defines the options a picker is constructed with, their
// defaults, and loaders reading them from markup attributes, YAML, and TOML.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ilhamster/swatch/color"
	colormodel "github.com/ilhamster/swatch/color_model"
	"github.com/ilhamster/swatch/geometry"
)

// Options configures a picker.
type Options struct {
	Size        geometry.Size  `yaml:"size" toml:"size"`
	Embed       bool           `yaml:"embed" toml:"embed"`
	PickerStyle geometry.Style `yaml:"pickerStyle" toml:"pickerStyle"`
	// If false, the opacity picker is not shown and colors are reported
	// opaque.
	AllowOpacity    bool              `yaml:"allowOpacity" toml:"allowOpacity"`
	AllowClearColor bool              `yaml:"allowClearColor" toml:"allowClearColor"`
	ShowColorValue  bool              `yaml:"showColorValue" toml:"showColorValue"`
	ColorFormat     colormodel.Format `yaml:"colorFormat" toml:"colorFormat"`
	// The starting color.  Nil or empty means no color, which is replaced by
	// red in ColorFormat unless AllowClearColor is set.
	Color                *string  `yaml:"color" toml:"color"`
	ShowButtons          bool     `yaml:"showButtons" toml:"showButtons"`
	ShowPalette          bool     `yaml:"showPalette" toml:"showPalette"`
	PaletteColors        []string `yaml:"paletteColors" toml:"paletteColors"`
	AllowPaletteAddColor bool     `yaml:"allowPaletteAddColor" toml:"allowPaletteAddColor"`
}

// DefaultPaletteColors are the palette colors of a default picker.
var DefaultPaletteColors = []string{
	"#FFFFB5", "#FBBD87", "#F45151", "#7AEA89", "#91C8E7", "#8EB4E6", "#B0A7F1",
}

// Defaults returns the default Options.
func Defaults() Options {
	red := "#FF0000"
	return Options{
		Size:                 geometry.Medium,
		Embed:                true,
		PickerStyle:          geometry.Classic,
		AllowOpacity:         true,
		AllowClearColor:      false,
		ShowColorValue:       true,
		ColorFormat:          colormodel.Hex,
		Color:                &red,
		ShowButtons:          true,
		ShowPalette:          true,
		PaletteColors:        append([]string(nil), DefaultPaletteColors...),
		AllowPaletteAddColor: true,
	}
}

// Error reports an option value that was replaced by a fallback.
type Error struct {
	Option   string
	Value    any
	Fallback any
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v; using %v", e.Option, e.Value, e.Fallback)
}

// Normalize returns a copy of the receiver with every invalid option
// replaced by its fallback, and an error joining an *Error for each
// replacement.  The returned Options are always usable.
//
// A missing color is not an error: it is left missing if colors may be
// cleared, and otherwise set to red in the configured format.
func (o Options) Normalize() (Options, error) {
	var errs []error
	if size, ok := geometry.ParseSize(string(o.Size)); !ok {
		errs = append(errs, &Error{"size", o.Size, size})
		o.Size = size
	}
	if style, ok := geometry.ParseStyle(int(o.PickerStyle)); !ok {
		errs = append(errs, &Error{"pickerStyle", int(o.PickerStyle), int(style)})
		o.PickerStyle = style
	}
	if format, ok := colormodel.ParseFormat(string(o.ColorFormat)); !ok {
		errs = append(errs, &Error{"colorFormat", o.ColorFormat, format})
		o.ColorFormat = format
	}
	if o.Color != nil && *o.Color == "" {
		o.Color = nil
	}
	if o.Color == nil && !o.AllowClearColor {
		red := colormodel.Model{Format: o.ColorFormat}.Render(color.RGBA{R: 255, A: 1}).Value
		o.Color = &red
	}
	o.PaletteColors = append([]string(nil), o.PaletteColors...)
	return o, errors.Join(errs...)
}

// LoadYAML reads Options from YAML.  Options absent from the document keep
// their defaults.
func LoadYAML(r io.Reader) (Options, error) {
	o := Defaults()
	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("failed to decode YAML options: %w", err)
	}
	return o, nil
}

// LoadTOML reads Options from TOML.  Options absent from the document keep
// their defaults.
func LoadTOML(r io.Reader) (Options, error) {
	o := Defaults()
	if err := toml.NewDecoder(r).Decode(&o); err != nil {
		return Options{}, fmt.Errorf("failed to decode TOML options: %w", err)
	}
	return o, nil
}
