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

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ilhamster/swatch/color"
	"github.com/ilhamster/swatch/config"
	"github.com/ilhamster/swatch/geometry"
	pickerstate "github.com/ilhamster/swatch/picker_state"
	"github.com/ilhamster/swatch/style"
	testutil "github.com/ilhamster/swatch/test_util"
	"github.com/ilhamster/swatch/util"
)

func TestBuildClassic(t *testing.T) {
	red := color.RGBA{R: 255, A: 1}
	got, err := Build(Snapshot{
		Options: config.Defaults(),
		Engine:  geometry.New(geometry.Classic, geometry.BoxesFor(geometry.Medium)),
		Placement: geometry.Placement{
			Major:   geometry.Position{X: 175, Y: 0},
			Minor:   geometry.Position{X: 15, Y: 0},
			Opacity: geometry.Position{X: 15, Y: 0},
			Axes: geometry.Axes{
				Base: geometry.HueBase(0),
				HSL:  color.HSL{H: 0, S: 100, L: 50},
			},
		},
		Current: &red,
		Value:   "#FF0000",
		Input:   "#FF0000",
		Initial: &red,
		Palette: []string{"rgba(255, 0, 0, 1)"},
		Visible: true,
	})
	if err != nil {
		t.Fatalf("Build() yielded unexpected error %s", err)
	}
	want := testutil.NewTestFrameBuilder()
	want.Element(PickerElement).With(
		util.BoolProperty(VisibleKey, true),
		util.BoolProperty(EmbedKey, true),
		util.StringProperty(StyleKey, "classic"),
		util.StringProperty(SizeKey, "medium"),
		util.StringProperty(DraggingKey, "none"),
	)
	want.Element(MajorPickerElement).With(
		util.StringProperty("style_width", "175.00px"),
		util.StringProperty("style_height", "175.00px"),
		util.StringProperty("style_background", "hsl(0, 100%, 50%)"),
	).Child().With(
		util.StringProperty("style_left", "166.00px"),
		util.StringProperty("style_top", "-9.00px"),
		util.BoolProperty(DarkKey, false),
	)
	want.Element(MinorPickerElement).With(
		util.StringProperty("style_width", "30.00px"),
		util.StringProperty("style_height", "175.00px"),
	).Child().With(
		util.StringProperty("style_left", "8.00px"),
		util.StringProperty("style_top", "-7.00px"),
		util.BoolProperty(DarkKey, false),
	)
	want.Element(OpacityPickerElement).With(
		util.StringProperty("style_width", "30.00px"),
		util.StringProperty("style_height", "175.00px"),
		util.StringProperty("style_background", "linear-gradient(to bottom, rgba(255, 0, 0, 1), rgba(255, 0, 0, 0))"),
	).Child().With(
		util.StringProperty("style_left", "8.00px"),
		util.StringProperty("style_top", "-7.00px"),
		util.BoolProperty(DarkKey, false),
	)
	want.Element(ConsoleElement).With(
		util.StringProperty("style_background", "#FF0000"),
		util.DoubleProperty(AlphaKey, 1),
	)
	want.Element(InputElement).With(
		util.StringProperty(ValueKey, "#FF0000"),
		util.BoolProperty(DarkKey, false),
	)
	want.Element(InitialColorElement).With(
		util.StringProperty("style_background", "#FF0000"),
		util.StringProperty(ColorKey, "#FF0000"),
		util.BoolProperty(DarkKey, false),
	)
	want.Element(ButtonsElement).With(
		util.StringsProperty(ActionsKey, "save", "cancel"),
	)
	want.Element(PaletteElement).With(
		util.BoolProperty(AllowAddKey, true),
	).Child().With(
		util.StringProperty(ColorKey, "rgba(255, 0, 0, 1)"),
		util.IntegerProperty(IndexKey, 0),
		util.StringProperty("style_background", "rgba(255, 0, 0, 1)"),
	)
	if err := testutil.CompareFrames(t, got, want); err != nil {
		t.Fatal(err)
	}
}

func TestBuildConsoleAlpha(t *testing.T) {
	for _, test := range []struct {
		description  string
		allowOpacity bool
		want         *util.V
	}{{
		description:  "translucent",
		allowOpacity: true,
		want:         util.DoubleValue(0.25),
	}, {
		description: "opacity disallowed",
		want:        util.DoubleValue(1),
	}} {
		t.Run(test.description, func(t *testing.T) {
			opts := config.Defaults()
			opts.AllowOpacity = test.allowOpacity
			engine := geometry.New(geometry.Classic, geometry.BoxesFor(geometry.Medium))
			c := color.RGBA{B: 255, A: 0.25}
			f, err := Build(Snapshot{
				Options:   opts,
				Engine:    engine,
				Placement: engine.Place(c, engine.Origin()),
				Current:   &c,
				Value:     "#0000FF",
			})
			if err != nil {
				t.Fatalf("Build() yielded unexpected error %s", err)
			}
			got, _ := f.Property(f.Element(ConsoleElement), AlphaKey)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("alpha: diff (-want +got) %s", diff)
			}
		})
	}
}

func TestBuildClearedHueSaturation(t *testing.T) {
	opts := config.Defaults()
	opts.Embed = false
	opts.PickerStyle = geometry.HueSaturation
	opts.AllowOpacity = false
	opts.AllowClearColor = true
	opts.ShowPalette = false
	opts.ShowButtons = false
	engine := geometry.New(geometry.HueSaturation, geometry.BoxesFor(geometry.Small))
	f, err := Build(Snapshot{
		Options:   opts,
		Engine:    engine,
		Placement: engine.Origin(),
		Flags: pickerstate.Flags{
			ColorDragger:   true,
			OpacityDragger: true,
			Input:          true,
			ClearButton:    true,
			InitialColor:   true,
		},
		Dragging: pickerstate.Major,
	})
	if err != nil {
		t.Fatalf("Build() yielded unexpected error %s", err)
	}
	for _, test := range []struct {
		description string
		element     string
		key         string
		want        *util.V
	}{{
		description: "hidden",
		element:     PickerElement,
		key:         VisibleKey,
		want:        util.BoolValue(false),
	}, {
		description: "dragging",
		element:     PickerElement,
		key:         DraggingKey,
		want:        util.StringValue("major"),
	}, {
		description: "overlay is transparent",
		element:     OverlayElement,
		key:         style.Key("background"),
		want:        util.StringValue("transparent"),
	}, {
		description: "console is transparent",
		element:     ConsoleElement,
		key:         style.Key("background"),
		want:        util.StringValue("transparent"),
	}, {
		description: "minor gradient at the origin hue",
		element:     MinorPickerElement,
		key:         style.Key("background"),
		want:        util.StringValue("linear-gradient(to bottom, hsl(0, 100%, 100%), hsl(0, 100%, 50%), hsl(0, 0%, 0%))"),
	}, {
		description: "major has no dynamic background",
		element:     MajorPickerElement,
		key:         style.Key("background"),
	}, {
		description: "input is empty",
		element:     InputElement,
		key:         ValueKey,
		want:        util.StringValue(""),
	}, {
		description: "clear button is dark",
		element:     ClearButtonElement,
		key:         DarkKey,
		want:        util.BoolValue(true),
	}, {
		description: "console has no alpha",
		element:     ConsoleElement,
		key:         AlphaKey,
	}, {
		description: "initial color marked empty",
		element:     InitialColorElement,
		key:         EmptyKey,
		want:        util.BoolValue(true),
	}, {
		description: "no initial color",
		element:     InitialColorElement,
		key:         style.Key("background"),
		want:        util.StringValue("transparent"),
	}, {
		description: "no opacity picker",
		element:     OpacityPickerElement,
		key:         style.Key("background"),
	}, {
		description: "no palette",
		element:     PaletteElement,
		key:         AllowAddKey,
	}} {
		t.Run(test.description, func(t *testing.T) {
			got, _ := f.Property(f.Element(test.element), test.key)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("got %v, diff (-want +got) %s", got, diff)
			}
		})
	}
	minor := f.Element(MinorPickerElement)
	if len(minor.Children) != 1 {
		t.Fatalf("minor picker has %d children, want 1", len(minor.Children))
	}
	dark, ok := f.Property(minor.Children[0], DarkKey)
	if !ok || !dark.V.(bool) {
		t.Errorf("minor dragger dark = %v, want true", dark)
	}
}
