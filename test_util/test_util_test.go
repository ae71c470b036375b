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

package testutil

import (
	"testing"

	"github.com/ilhamster/swatch/util"
)

func TestUpdateComparator(t *testing.T) {
	for _, test := range []struct {
		description string
		comparator  *UpdateComparator
		different   bool
	}{{
		description: "equal simple updates",
		comparator: NewUpdateComparator().
			WithTestUpdates(util.StringProperty("value", "#FF0000")).
			WithWantUpdates(util.StringProperty("value", "#FF0000")),
	}, {
		description: "order independence",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.StringProperty("value", "#FF0000"),
				util.BoolProperty("dark", true),
			).
			WithWantUpdates(
				util.BoolProperty("dark", true),
				util.StringProperty("value", "#FF0000"),
			),
	}, {
		description: "redefinition",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.IntegerProperty("x", 5),
				util.IntegerProperty("x", 10),
			).
			WithWantUpdates(
				util.IntegerProperty("x", 10),
			),
	}, {
		description: "unequal (strings version)",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.StringProperty("value", "#FF0000"),
			).
			WithWantUpdates(
				util.StringProperty("value", "rgb(255,0,0)"),
			),
		different: true,
	}, {
		description: "unequal (numeric version)",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.IntegerProperty("alpha", 1),
			).
			WithWantUpdates(
				util.DoubleProperty("alpha", 1),
			),
		different: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			gotMsg, different := test.comparator.Compare(t)
			if test.different != different {
				t.Errorf("Compare() yielded unexpected return message '%s'", gotMsg)
			}
		})
	}
}

func TestCompareElements(t *testing.T) {
	if err := CompareElements(t, "palette",
		func(db util.DataBuilder) {
			db.With(util.IntegerProperty("count", 2))
			db.Child().With(util.StringProperty("color", "rgba(255, 0, 0, 1)"))
			db.Child().With(util.StringProperty("color", "rgba(0, 0, 255, 1)"))
		},
		func(tdb TestDataBuilder) {
			tdb.With(util.IntegerProperty("count", 2)).
				Child().With(util.StringProperty("color", "rgba(255, 0, 0, 1)")).
				AndChild().With(util.StringProperty("color", "rgba(0, 0, 255, 1)"))
		},
	); err != nil {
		t.Fatalf("CompareElements() yielded unexpected error %s", err)
	}
}

func TestCompareFrames(t *testing.T) {
	got := util.NewFrameBuilder()
	got.Element("console").With(util.StringProperty("background", "transparent"))
	got.Element("input").With(util.StringProperty("value", ""))
	want := NewTestFrameBuilder()
	want.Element("console").With(util.StringProperty("background", "transparent"))
	want.Element("input").With(util.StringProperty("value", ""))
	if err := CompareFrames(t, got, want); err != nil {
		t.Fatalf("CompareFrames() yielded unexpected error %s", err)
	}
	if err := CompareFrames(t, got, "not a frame"); err == nil {
		t.Errorf("CompareFrames() with a non-frame argument yielded no error")
	}
}
