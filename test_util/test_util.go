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

// Package testutil provides types and methods facilitating testing picker
// frame construction.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ilhamster/swatch/util"
)

// UpdateComparator facilitates testing of PropertyUpdates, ensuring that a
// 'got' set of PropertyUpdates-under-test yields the same transformation as
// a provided 'want' set of PropertyUpdates.
type UpdateComparator struct {
	got  []util.PropertyUpdate
	want []util.PropertyUpdate
}

// NewUpdateComparator returns a new, empty UpdateComparator.
func NewUpdateComparator() *UpdateComparator {
	return &UpdateComparator{}
}

// WithTestUpdates specifies the receiver's set of PropertyUpdates-under-test.
func (uc *UpdateComparator) WithTestUpdates(got ...util.PropertyUpdate) *UpdateComparator {
	uc.got = got
	return uc
}

// WithWantUpdates specifies a set of PropertyUpdates that should yield the
// same result as the receiver's 'WithTestUpdate'.
func (uc *UpdateComparator) WithWantUpdates(want ...util.PropertyUpdate) *UpdateComparator {
	uc.want = want
	return uc
}

// Compare the receiver's 'got' and 'want' PropertyUpdates, returning a
// difference message (empty if no difference) and a boolean indicating whether
// the two are different (true) or not (false).  Repeated-field ordering must
// be preserved, but string-table ordering need not be preserved.
func (uc *UpdateComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	fb := util.NewFrameBuilder()
	fb.Element("got").With(uc.got...)
	fb.Element("want").With(uc.want...)
	f, err := fb.Frame()
	if err != nil {
		t.Fatal(err.Error())
	}
	got, want := f.Elements[0].Root, f.Elements[1].Root
	diff := cmp.Diff(
		want.PrettyPrint("", f.StringTable),
		got.PrettyPrint("", f.StringTable))
	if diff != "" {
		return fmt.Sprintf("Got element %s, diff (-want +got):\n%s",
			f.Elements[0].PrettyPrint("", f.StringTable), diff), true
	}
	return "", false
}

// TestDataBuilder is implemented by types that can assemble frame data in
// tests.
type TestDataBuilder interface {
	With(updates ...util.PropertyUpdate) TestDataBuilder
	Child() TestDataBuilder
	AndChild() TestDataBuilder
	Parent() TestDataBuilder
}

// testDataBuilder provides a mechanism for fluently assembling Datum trees
// in test contexts.
type testDataBuilder struct {
	db     util.DataBuilder
	parent *testDataBuilder
}

// With applies the provided PropertyUpdate to the receiver in order.
func (tdb *testDataBuilder) With(updates ...util.PropertyUpdate) TestDataBuilder {
	if tdb != nil {
		tdb.db.With(updates...)
	}
	return tdb
}

// Child adds a child Datum to the receiver, returning a DataBuilder
// for that child.  It supports chaining.
func (tdb *testDataBuilder) Child() TestDataBuilder {
	db := tdb.db.Child()
	return &testDataBuilder{
		db:     db,
		parent: tdb,
	}
}

// AndChild adds a sibling datum, adding a new Datum to the receiver's parent
// and returning a DataBuilder for that new Datum.  If the receiver has no parent,
// adds a child to the receiver.
func (tdb *testDataBuilder) AndChild() TestDataBuilder {
	if tdb == nil {
		return nil
	}
	if tdb.parent == nil {
		return tdb.Child()
	}
	return tdb.Parent().Child()
}

// Parent returns the parent of the receiver, or the receiver itself if it has
// no parent.  It supports chaining.
func (tdb *testDataBuilder) Parent() TestDataBuilder {
	if tdb == nil {
		return nil
	}
	if tdb.parent == nil {
		return tdb
	}
	return tdb.parent
}

// TestFrameBuilder assembles expected Frames in tests.
type TestFrameBuilder struct {
	fb *util.FrameBuilder
}

// NewTestFrameBuilder returns a new, empty TestFrameBuilder.
func NewTestFrameBuilder() *TestFrameBuilder {
	return &TestFrameBuilder{
		fb: util.NewFrameBuilder(),
	}
}

// Element begins the named element, returning a TestDataBuilder for its root.
func (tfb *TestFrameBuilder) Element(name string) TestDataBuilder {
	return &testDataBuilder{
		db: tfb.fb.Element(name),
	}
}

func frameOf(f any) (*util.Frame, error) {
	switch v := f.(type) {
	case *util.FrameBuilder:
		return v.Frame()
	case *TestFrameBuilder:
		return v.fb.Frame()
	case *util.Frame:
		return v, nil
	default:
		return nil, fmt.Errorf("argument must be a *util.FrameBuilder, a *testutil.TestFrameBuilder, or a *util.Frame")
	}
}

// CompareFrames compares the provided got and want values, which must each be
// a *util.FrameBuilder, a *TestFrameBuilder, or a *util.Frame.  If the two
// compare equal, returns nil.  If they do not compare equal, raises an error
// on the provided testing.T object.  If another problem is encountered,
// returns it as an error.
func CompareFrames(t *testing.T, got any, want any) error {
	t.Helper()
	gotFrame, err := frameOf(got)
	if err != nil {
		return err
	}
	wantFrame, err := frameOf(want)
	if err != nil {
		return err
	}
	gotPP := gotFrame.PrettyPrint()
	wantPP := wantFrame.PrettyPrint()
	if diff := cmp.Diff(wantPP, gotPP); diff != "" {
		t.Errorf("Got frame %s, diff (-want, +got) %s", gotPP, diff)
	}
	return nil
}

// CompareElements is a test helper for frame producers.  It compares a single
// element built by the system under test with a desired element.  Both are
// produced by callbacks accepting either a util.DataBuilder or a
// TestDataBuilder.
func CompareElements(t *testing.T, name string, buildGotIf any, buildWantIf any) error {
	t.Helper()
	gotFb := util.NewFrameBuilder()
	switch buildGot := buildGotIf.(type) {
	case func(util.DataBuilder):
		buildGot(gotFb.Element(name))
	case func(TestDataBuilder):
		buildGot(&testDataBuilder{
			db: gotFb.Element(name),
		})
	default:
		t.Fatalf("expected buildGot to be func(util.DataBuilder) or func(testutil.TestDataBuilder)")
	}
	wantFb := util.NewFrameBuilder()
	switch buildWant := buildWantIf.(type) {
	case func(util.DataBuilder):
		buildWant(wantFb.Element(name))
	case func(TestDataBuilder):
		buildWant(&testDataBuilder{
			db: wantFb.Element(name),
		})
	default:
		t.Fatalf("expected buildWant to be func(util.DataBuilder) or func(testutil.TestDataBuilder)")
	}
	return CompareFrames(t, gotFb, wantFb)
}
