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

// Package util defines the presentation frame that pickers hand to their
// renderers, and the builders that assemble it.
//
// A Frame is a sequence of named Elements, one per visual part of a picker.
// Each Element is a tree of Datums carrying typed properties.  Property keys,
// and string property values, are interned in the Frame's string table.
// Frames are assembled with a FrameBuilder, whose DataBuilders accept
// PropertyUpdates such as StringProperty or BoolProperty.
package util

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
)

type valueType int

// Enumerated value types.  The numbering is part of the JSON encoding.
const (
	unsetValue valueType = iota
	StringValueType
	StringIndexValueType
	StringsValueType
	StringIndicesValueType
	IntegerValueType
	DoubleValueType
	BoolValueType
)

// V represents a value in a presentation frame.
type V struct {
	V any
	T valueType
}

// PrettyPrint returns the receiver, deterministically prettyprinted.
// String-index values print as the strings they index.  Only for use in
// tests.
func (v *V) PrettyPrint(st []string) string {
	quote := func(strs []string) string {
		return "[ '" + strings.Join(strs, "', '") + "' ]"
	}
	switch val := v.V.(type) {
	case string:
		return "'" + val + "'"
	case []string:
		return quote(val)
	case int64:
		if v.T == StringIndexValueType {
			return "'" + st[val] + "'"
		}
		return strconv.FormatInt(val, 10)
	case []int64:
		return quote(lookupStrings(st, val))
	case float64:
		return fmt.Sprintf("%.6f", val)
	case bool:
		return strconv.FormatBool(val)
	}
	return "unset"
}

func lookupStrings(st []string, strIdxs []int64) []string {
	ret := make([]string, len(strIdxs))
	for idx, strIdx := range strIdxs {
		ret[idx] = st[strIdx]
	}
	return ret
}

// MarshalJSON encodes a V as the JS tuple `[type, value]`, where type is
// the numeric valueType above and value is a string, number, boolean, or
// array of strings or numbers.
func (v *V) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{v.T, v.V})
}

// Datum represents a single node in a presentation frame.
type Datum struct {
	Properties map[int64]*V
	Children   []*Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted, with
// properties in alphabetical order of their keys.  Only for use in tests.
func (d *Datum) PrettyPrint(indent string, st []string) string {
	keys := slices.SortedFunc(maps.Keys(d.Properties), func(a, b int64) int {
		return cmp.Compare(st[a], st[b])
	})
	ret := make([]string, 0, len(keys)+2*len(d.Children))
	for _, k := range keys {
		ret = append(ret,
			fmt.Sprintf("%sProp '%s': %s", indent, st[k], d.Properties[k].PrettyPrint(st)),
		)
	}
	for _, child := range d.Children {
		ret = append(ret,
			fmt.Sprintf("%sChild:", indent),
			child.PrettyPrint(indent+"  ", st),
		)
	}
	return strings.Join(ret, "\n")
}

// MarshalJSON encodes a Datum as the JS tuple `[properties, children]`,
// where properties is an array of `[key, V]` pairs in increasing key order.
func (d *Datum) MarshalJSON() ([]byte, error) {
	props := []any{}
	for _, k := range slices.Sorted(maps.Keys(d.Properties)) {
		props = append(props, []any{k, d.Properties[k]})
	}
	children := d.Children
	if children == nil {
		children = []*Datum{}
	}
	return json.Marshal([]any{props, children})
}

// Element is a single named part of a presentation frame, such as a dragger
// or the palette.
type Element struct {
	Name string
	Root *Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (e *Element) PrettyPrint(indent string, st []string) string {
	return fmt.Sprintf("%sElement %s\n%s", indent, e.Name, e.Root.PrettyPrint(indent+"  ", st))
}

// Frame is a complete presentation frame: everything a renderer needs to
// draw a picker.
type Frame struct {
	StringTable []string
	Elements    []*Element
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (f *Frame) PrettyPrint() string {
	ret := []string{"Frame:"}
	for _, element := range f.Elements {
		ret = append(ret, element.PrettyPrint("  ", f.StringTable))
	}
	return strings.Join(ret, "\n")
}

// Element returns the root Datum of the named element, or nil if there is no
// such element.
func (f *Frame) Element(name string) *Datum {
	for _, element := range f.Elements {
		if element.Name == name {
			return element.Root
		}
	}
	return nil
}

// Property returns the value of the specified property on the provided
// Datum, which must belong to the receiver.  String-index values are
// returned as literal string values.
func (f *Frame) Property(d *Datum, key string) (*V, bool) {
	if d == nil {
		return nil, false
	}
	keyIdx := slices.Index(f.StringTable, key)
	if keyIdx < 0 {
		return nil, false
	}
	v, ok := d.Properties[int64(keyIdx)]
	if !ok {
		return nil, false
	}
	switch v.T {
	case StringIndexValueType:
		return StringValue(f.StringTable[v.V.(int64)]), true
	case StringIndicesValueType:
		return StringsValue(lookupStrings(f.StringTable, v.V.([]int64))...), true
	}
	return v, true
}

// stringTable interns strings as dense indices.  It is safe for concurrent
// use.
type stringTable struct {
	mu      sync.RWMutex
	indices map[string]int64
	strs    []string
}

func newStringTable() *stringTable {
	return &stringTable{
		indices: map[string]int64{},
		strs:    []string{},
	}
}

// index returns the index of the provided string, interning it if needed.
func (st *stringTable) index(str string) int64 {
	st.mu.RLock()
	idx, ok := st.indices[str]
	st.mu.RUnlock()
	if ok {
		return idx
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	// Another writer may have interned str since the read above.
	if idx, ok := st.indices[str]; ok {
		return idx
	}
	idx = int64(len(st.strs))
	st.strs = append(st.strs, str)
	st.indices[str] = idx
	return idx
}

// buildErrors collects the errors raised while building a Frame.
type buildErrors struct {
	mu   sync.Mutex
	errs []error
}

func (be *buildErrors) add(err error) {
	be.mu.Lock()
	defer be.mu.Unlock()
	be.errs = append(be.errs, err)
}

func (be *buildErrors) err() error {
	be.mu.Lock()
	defer be.mu.Unlock()
	if len(be.errs) == 0 {
		return nil
	}
	return fmt.Errorf("failed to build frame: %w", errors.Join(be.errs...))
}

// FrameBuilder streamlines assembling Frames.
type FrameBuilder struct {
	st   *stringTable
	errs *buildErrors
	mu   sync.Mutex
	f    *Frame
}

// NewFrameBuilder returns a new, empty FrameBuilder.
func NewFrameBuilder() *FrameBuilder {
	return &FrameBuilder{
		st:   newStringTable(),
		errs: &buildErrors{},
		f: &Frame{
			Elements: []*Element{},
		},
	}
}

// DataBuilder is implemented by types that can assemble frame data.
type DataBuilder interface {
	With(updates ...PropertyUpdate) DataBuilder
	Child() DataBuilder
}

// Element returns a new DataBuilder for assembling the named element.
// Elements appear in the Frame in the order they are begun.  Element is safe
// for concurrent use.
func (fb *FrameBuilder) Element(name string) DataBuilder {
	ret := newDatumBuilder(fb.errs, fb.st)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.f.Elements = append(fb.f.Elements, &Element{
		Name: name,
		Root: ret.d,
	})
	return ret
}

// Frame completes and returns the Frame under construction, or the errors
// raised by any PropertyUpdate.
func (fb *FrameBuilder) Frame() (*Frame, error) {
	if err := fb.errs.err(); err != nil {
		return nil, err
	}
	fb.f.StringTable = fb.st.strs
	return fb.f, nil
}

// StringValue returns a new Value wrapping the provided string.
func StringValue(str string) *V {
	return &V{V: str, T: StringValueType}
}

// StringIndexValue returns a new Value wrapping the provided string index.
func StringIndexValue(strIdx int64) *V {
	return &V{V: strIdx, T: StringIndexValueType}
}

// StringsValue returns a new Value wrapping the provided strings.
func StringsValue(strs ...string) *V {
	return &V{V: strs, T: StringsValueType}
}

// StringIndicesValue returns a new Value wrapping the provided string
// indices.
func StringIndicesValue(strIdxs ...int64) *V {
	return &V{V: strIdxs, T: StringIndicesValueType}
}

// IntegerValue returns a new Value wrapping the provided int64.
func IntegerValue(i int64) *V {
	return &V{V: i, T: IntegerValueType}
}

// DoubleValue returns a new Value wrapping the provided float64.
func DoubleValue(f float64) *V {
	return &V{V: f, T: DoubleValueType}
}

// BoolValue returns a new Value wrapping the provided bool.
func BoolValue(b bool) *V {
	return &V{V: b, T: BoolValueType}
}

// PropertyUpdate is a function that updates a provided datumBuilder.  A nil
// PropertyUpdate does nothing.
type PropertyUpdate func(db *datumBuilder) error

// EmptyUpdate is a PropertyUpdate that does nothing.
var EmptyUpdate PropertyUpdate = nil

// datumBuilder assembles a single Datum.
type datumBuilder struct {
	errs *buildErrors
	st   *stringTable
	d    *Datum
}

func newDatumBuilder(errs *buildErrors, st *stringTable) *datumBuilder {
	return &datumBuilder{
		errs: errs,
		st:   st,
		d: &Datum{
			Properties: map[int64]*V{},
			Children:   []*Datum{},
		},
	}
}

// With applies the provided PropertyUpdates to the receiver in order,
// stopping at the first that fails.
func (db *datumBuilder) With(updates ...PropertyUpdate) DataBuilder {
	for _, update := range updates {
		if update == nil {
			continue
		}
		if err := update(db); err != nil {
			db.errs.add(err)
			break
		}
	}
	return db
}

func (db *datumBuilder) Child() DataBuilder {
	child := newDatumBuilder(db.errs, db.st)
	db.d.Children = append(db.d.Children, child.d)
	return child
}

func (db *datumBuilder) set(key string, v *V) {
	db.d.Properties[db.st.index(key)] = v
}

// If applies the provided PropertyUpdate if the provided predicate is true.
func If(predicate bool, update PropertyUpdate) PropertyUpdate {
	if predicate {
		return update
	}
	return EmptyUpdate
}

// IfElse applies PropertyUpdate t if the provided predicate is true, and
// applies f otherwise.
func IfElse(predicate bool, t, f PropertyUpdate) PropertyUpdate {
	if predicate {
		return t
	}
	return f
}

// Chain applies the provided PropertyUpdates in order.
func Chain(updates ...PropertyUpdate) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.With(updates...)
		return nil
	}
}

// StringProperty returns a PropertyUpdate setting the specified string
// property.
func StringProperty(key, value string) PropertyUpdate {
	return func(db *datumBuilder) error {
		keyIdx := db.st.index(key)
		db.d.Properties[keyIdx] = StringIndexValue(db.st.index(value))
		return nil
	}
}

// StringsProperty returns a PropertyUpdate setting the specified string
// slice property.
func StringsProperty(key string, values ...string) PropertyUpdate {
	return func(db *datumBuilder) error {
		keyIdx := db.st.index(key)
		valIdxs := make([]int64, len(values))
		for idx, val := range values {
			valIdxs[idx] = db.st.index(val)
		}
		db.d.Properties[keyIdx] = StringIndicesValue(valIdxs...)
		return nil
	}
}

// IntegerProperty returns a PropertyUpdate setting the specified integer
// property.
func IntegerProperty(key string, value int64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, IntegerValue(value))
		return nil
	}
}

// DoubleProperty returns a PropertyUpdate setting the specified double
// property.
func DoubleProperty(key string, value float64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, DoubleValue(value))
		return nil
	}
}

// BoolProperty returns a PropertyUpdate setting the specified bool property.
func BoolProperty(key string, value bool) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, BoolValue(value))
		return nil
	}
}
