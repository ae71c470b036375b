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

package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	testutil "github.com/ilhamster/swatch/test_util"
	"github.com/ilhamster/swatch/util"
)

func TestStyle(t *testing.T) {
	for _, test := range []struct {
		description string
		style       *Style
		wantUpdates []util.PropertyUpdate
	}{{
		description: "empty",
		style:       New(),
	}, {
		description: "positioned",
		style:       New().At(3, -7),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("style_left", "3.00px"),
			util.StringProperty("style_top", "-7.00px"),
		},
	}, {
		description: "overridden attribute",
		style: New().
			With("background", "red").
			With("background", HSL(120, 100, 50)),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("style_background", "hsl(120, 100%, 50%)"),
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if msg, failed := testutil.NewUpdateComparator().
				WithTestUpdates(test.style.Define()).
				WithWantUpdates(test.wantUpdates...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	for _, test := range []struct {
		description string
		got         string
		want        string
	}{{
		description: "px",
		got:         Px(12.5),
		want:        "12.50px",
	}, {
		description: "key",
		got:         Key("left"),
		want:        "style_left",
	}, {
		description: "rgba",
		got:         RGBA(10, 20, 30, 0.5),
		want:        "rgba(10, 20, 30, 0.5)",
	}, {
		description: "opaque rgba",
		got:         RGBA(10, 20, 30, 1),
		want:        "rgba(10, 20, 30, 1)",
	}, {
		description: "gradient",
		got:         LinearGradient("to bottom", RGBA(0, 0, 0, 1), RGBA(0, 0, 0, 0)),
		want:        "linear-gradient(to bottom, rgba(0, 0, 0, 1), rgba(0, 0, 0, 0))",
	}} {
		t.Run(test.description, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.got); diff != "" {
				t.Errorf("diff (-want +got) %s", diff)
			}
		})
	}
}
