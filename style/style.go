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

// Package style supports specifying the CSS styling of picker frame elements.
//
// A Style instance comprises a mapping from style attribute name to value,
// both represented as strings.  A Style may be attached to a frame Datum via
// the `Define()` method.  Attributes should have the names and expected
// values of CSS properties, e.g. `left`, `top`, or `background`.
package style

import (
	"fmt"
	"strings"

	"github.com/ilhamster/swatch/util"
)

const (
	keyPrefix = "style_"
)

// Style defines a set of styles that can be attached to a Datum.
type Style struct {
	attrs map[string]string
}

// New returns a new, empty Style.
func New() *Style {
	return &Style{
		attrs: map[string]string{},
	}
}

// Define returns a PropertyUpdate defining the receiver into a Datum.
func (s *Style) Define() util.PropertyUpdate {
	ret := make([]util.PropertyUpdate, 0, len(s.attrs))
	for attr, val := range s.attrs {
		ret = append(ret, util.StringProperty(keyPrefix+attr, val))
	}
	return util.Chain(ret...)
}

// Key returns the frame property key under which the specified attribute is
// defined.
func Key(attr string) string {
	return keyPrefix + attr
}

// Px formats the provided value as a pixel specifier.
func Px(valPx float64) string {
	return fmt.Sprintf("%.2fpx", valPx)
}

// With sets the specified attribute type and value in the receiver.
func (s *Style) With(attrType string, attrVal string) *Style {
	s.attrs[attrType] = attrVal
	return s
}

// At positions the receiver at the provided box-relative pixel offsets.
func (s *Style) At(left, top int) *Style {
	return s.
		With("left", Px(float64(left))).
		With("top", Px(float64(top)))
}

// HSL formats the provided hue, saturation, and lightness as a CSS color.
func HSL(h, s, l int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// RGBA formats the provided channels and opacity as a CSS color.
func RGBA(r, g, b int, a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, a)
}

// LinearGradient formats a CSS linear gradient running in the provided
// direction through the provided color stops.
func LinearGradient(direction string, stops ...string) string {
	return "linear-gradient(" + strings.Join(append([]string{direction}, stops...), ", ") + ")"
}
