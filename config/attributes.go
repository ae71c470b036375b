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

package config

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	colormodel "github.com/ilhamster/swatch/color_model"
	"github.com/ilhamster/swatch/geometry"
)

type attributeSetter func(o *Options, value string) error

func boolAttribute(field func(o *Options) *bool) attributeSetter {
	return func(o *Options, value string) error {
		switch value {
		case "true":
			*field(o) = true
		case "false":
			*field(o) = false
		default:
			return errors.New("expected true or false")
		}
		return nil
	}
}

var attributeSetters = map[string]attributeSetter{
	"size": func(o *Options, value string) error {
		o.Size = geometry.Size(value)
		return nil
	},
	"embed": boolAttribute(func(o *Options) *bool { return &o.Embed }),
	"pickerStyle": func(o *Options, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		o.PickerStyle = geometry.Style(n)
		return nil
	},
	"allowOpacity":    boolAttribute(func(o *Options) *bool { return &o.AllowOpacity }),
	"allowClearColor": boolAttribute(func(o *Options) *bool { return &o.AllowClearColor }),
	"showColorValue":  boolAttribute(func(o *Options) *bool { return &o.ShowColorValue }),
	"colorFormat": func(o *Options, value string) error {
		o.ColorFormat = colormodel.Format(value)
		return nil
	},
	"color": func(o *Options, value string) error {
		o.Color = &value
		return nil
	},
	"showButtons": boolAttribute(func(o *Options) *bool { return &o.ShowButtons }),
	"showPalette": boolAttribute(func(o *Options) *bool { return &o.ShowPalette }),
	"paletteColors": func(o *Options, value string) error {
		o.PaletteColors = splitColors(value)
		return nil
	},
	"allowPaletteAddColor": boolAttribute(func(o *Options) *bool { return &o.AllowPaletteAddColor }),
}

// ParseAttributes returns the Options specified by markup attributes.  Only
// attributes whose names begin with the provided prefix are considered; the
// remainder of each name is the kebab-case form of an option name (for
// instance, 'color-format' for colorFormat).  Unnamed options keep their
// defaults.  Boolean options take 'true' or 'false', and paletteColors takes
// a comma-separated list of colors.
//
// Attributes that name no option are ignored.  An attribute value that
// cannot be read leaves its option at the default, and is reported in the
// returned error as an *Error; the returned Options are always usable.
func ParseAttributes(prefix string, attrs map[string]string) (Options, error) {
	o := Defaults()
	defaults := Defaults()
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		option := camelCase(rest)
		setter, ok := attributeSetters[option]
		if !ok {
			continue
		}
		if err := setter(&o, attrs[name]); err != nil {
			errs = append(errs, &Error{option, attrs[name], defaultValue(defaults, option)})
		}
	}
	return o, errors.Join(errs...)
}

func defaultValue(defaults Options, option string) any {
	switch option {
	case "pickerStyle":
		return int(defaults.PickerStyle)
	case "embed":
		return defaults.Embed
	case "allowOpacity":
		return defaults.AllowOpacity
	case "allowClearColor":
		return defaults.AllowClearColor
	case "showColorValue":
		return defaults.ShowColorValue
	case "showButtons":
		return defaults.ShowButtons
	case "showPalette":
		return defaults.ShowPalette
	case "allowPaletteAddColor":
		return defaults.AllowPaletteAddColor
	}
	return nil
}

// camelCase converts a kebab-case name to camelCase.
func camelCase(kebab string) string {
	parts := strings.Split(kebab, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// splitColors splits a comma-separated list of colors.  Commas within
// parentheses, as in 'rgb(1,2,3)', do not split.
func splitColors(list string) []string {
	var ret []string
	depth, start := 0, 0
	emit := func(end int) {
		if c := strings.TrimSpace(list[start:end]); c != "" {
			ret = append(ret, c)
		}
	}
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			depth = max(depth-1, 0)
		case ',':
			if depth == 0 {
				emit(i)
				start = i + 1
			}
		}
	}
	emit(len(list))
	return ret
}
