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

// Package palette provides an ordered collection of preset colors.
package palette

import (
	"github.com/ilhamster/swatch/color"
	colormodel "github.com/ilhamster/swatch/color_model"
)

// Store is an ordered set of colors, in the order they were added.  Colors
// are identified by their canonical 'rgba(r, g, b, a)' form.
type Store struct {
	colors []color.RGBA
	keys   []string
	index  map[string]int
}

// New returns a new Store containing the provided colors, less duplicates.
func New(colors ...color.RGBA) *Store {
	s := &Store{
		index: map[string]int{},
	}
	for _, c := range colors {
		s.Add(&c)
	}
	return s
}

// Add appends the provided color if it is non-nil and not already present.
// It returns true if the color was appended.
func (s *Store) Add(c *color.RGBA) bool {
	if c == nil {
		return false
	}
	key := colormodel.Canonical(*c)
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.keys)
	s.keys = append(s.keys, key)
	s.colors = append(s.colors, *c)
	return true
}

// Contains returns true if the receiver contains a color with the provided
// canonical form.
func (s *Store) Contains(canonical string) bool {
	_, ok := s.index[canonical]
	return ok
}

// List returns the canonical forms of the receiver's colors, in order.
func (s *Store) List() []string {
	return append([]string(nil), s.keys...)
}

// At returns the color at the provided index, and false if there is none.
func (s *Store) At(i int) (color.RGBA, bool) {
	if i < 0 || i >= len(s.colors) {
		return color.RGBA{}, false
	}
	return s.colors[i], true
}

// Len returns the number of colors in the receiver.
func (s *Store) Len() int {
	return len(s.keys)
}
