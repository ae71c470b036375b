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

package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBToHex(t *testing.T) {
	for _, test := range []struct {
		rgb  RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#FFFFFF"},
		{RGB{255, 0, 0}, "#FF0000"},
		{RGB{10, 171, 254}, "#0AABFE"},
	} {
		if got := RGBToHex(test.rgb); got != test.want {
			t.Errorf("RGBToHex(%v) = %s, want %s", test.rgb, got, test.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				want := RGB{r, g, b}
				got, err := HexToRGB(RGBToHex(want))
				if err != nil {
					t.Fatalf("HexToRGB(RGBToHex(%v)) yielded unexpected error %s", want, err)
				}
				if got != want {
					t.Fatalf("HexToRGB(RGBToHex(%v)) = %v", want, got)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	for _, test := range []struct {
		description string
		rgb         RGB
		want        HSL
	}{{
		description: "black",
		rgb:         RGB{0, 0, 0},
		want:        HSL{0, 0, 0},
	}, {
		description: "white",
		rgb:         RGB{255, 255, 255},
		want:        HSL{0, 0, 100},
	}, {
		description: "mid gray",
		rgb:         RGB{128, 128, 128},
		want:        HSL{0, 0, 50},
	}, {
		description: "red",
		rgb:         RGB{255, 0, 0},
		want:        HSL{0, 100, 50},
	}, {
		description: "magenta wraps negative hue",
		rgb:         RGB{255, 0, 255},
		want:        HSL{300, 100, 50},
	}, {
		description: "azure",
		rgb:         RGB{0, 128, 255},
		want:        HSL{210, 100, 50},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if diff := cmp.Diff(test.want, RGBToHSL(test.rgb)); diff != "" {
				t.Errorf("RGBToHSL(%v) diff (-want +got):\n%s", test.rgb, diff)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	for _, test := range []struct {
		hsl  HSL
		want RGB
	}{
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{360, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 50}, RGB{0, 255, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{180, 100, 50}, RGB{0, 255, 255}},
		{HSL{0, 0, 50}, RGB{128, 128, 128}},
		{HSL{200, 0, 100}, RGB{255, 255, 255}},
		{HSL{200, 70, 0}, RGB{0, 0, 0}},
	} {
		if diff := cmp.Diff(test.want, HSLToRGB(test.hsl)); diff != "" {
			t.Errorf("HSLToRGB(%v) diff (-want +got):\n%s", test.hsl, diff)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHSLReconstruction(t *testing.T) {
	// Exactly representable colors survive the trip within one unit.
	for _, rgb := range []RGB{
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128}, {37, 37, 37},
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
	} {
		got := HSLToRGB(RGBToHSL(rgb))
		if absInt(got.R-rgb.R) > 1 || absInt(got.G-rgb.G) > 1 || absInt(got.B-rgb.B) > 1 {
			t.Errorf("HSLToRGB(RGBToHSL(%v)) = %v, want within 1 per channel", rgb, got)
		}
	}
	// Elsewhere, integer h, s, and l bound the error: half a degree of hue
	// and half a percent of s and l move a channel by less than 6 units.
	const tolerance = 6
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				rgb := RGB{r, g, b}
				hsl := RGBToHSL(rgb)
				got := HSLToRGB(hsl)
				if absInt(got.R-r) > tolerance || absInt(got.G-g) > tolerance || absInt(got.B-b) > tolerance {
					t.Fatalf("HSLToRGB(RGBToHSL(%v)) = HSLToRGB(%v) = %v, want within %d per channel", rgb, hsl, got, tolerance)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		description string
		input       string
		want        RGBA
		wantErr     bool
	}{{
		description: "named color",
		input:       "Red",
		want:        RGBA{255, 0, 0, 1},
	}, {
		description: "transparent",
		input:       "transparent",
		want:        RGBA{0, 0, 0, 0},
	}, {
		description: "short hex",
		input:       "#abc",
		want:        RGBA{170, 187, 204, 1},
	}, {
		description: "long hex",
		input:       "  #FF0000 ",
		want:        RGBA{255, 0, 0, 1},
	}, {
		description: "hex with alpha",
		input:       "#11223380",
		want:        RGBA{17, 34, 51, 0.5},
	}, {
		description: "rgb",
		input:       "rgb(0,128,255)",
		want:        RGBA{0, 128, 255, 1},
	}, {
		description: "rgba with spaces",
		input:       "rgba( 0, 128, 255, 0.5 )",
		want:        RGBA{0, 128, 255, 0.5},
	}, {
		description: "rgb clamps and accepts percentages",
		input:       "rgb(300, -5, 50%)",
		want:        RGBA{255, 0, 128, 1},
	}, {
		description: "space separated with slash alpha",
		input:       "rgb(0 128 255 / 50%)",
		want:        RGBA{0, 128, 255, 0.5},
	}, {
		description: "hsl",
		input:       "hsl(0,100%,50%)",
		want:        RGBA{255, 0, 0, 1},
	}, {
		description: "hsla",
		input:       "hsla(240, 100%, 50%, 0.3)",
		want:        RGBA{0, 0, 255, 0.3},
	}, {
		description: "hsl with angle unit",
		input:       "hsl(0.5turn 100% 50%)",
		want:        RGBA{0, 255, 255, 1},
	}, {
		description: "unknown name",
		input:       "notacolor",
		wantErr:     true,
	}, {
		description: "five hex digits",
		input:       "#FF000",
		wantErr:     true,
	}, {
		description: "bad hex digit",
		input:       "#GG0000",
		wantErr:     true,
	}, {
		description: "too few arguments",
		input:       "rgb(1,2)",
		wantErr:     true,
	}, {
		description: "trailing garbage",
		input:       "rgb(1,2,3) x",
		wantErr:     true,
	}, {
		description: "unterminated",
		input:       "rgb(1,2,3",
		wantErr:     true,
	}, {
		description: "unknown function",
		input:       "lab(1,2,3)",
		wantErr:     true,
	}, {
		description: "empty",
		input:       "   ",
		wantErr:     true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			got, err := Parse(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("Parse(%q) yielded error %v, wanted error: %t", test.input, err, test.wantErr)
			}
			if err != nil {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Parse(%q) error %v is not a *ParseError", test.input, err)
				}
				return
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(%q) diff (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestParserCache(t *testing.T) {
	p, err := NewParser(2)
	if err != nil {
		t.Fatalf("NewParser yielded unexpected error %s", err)
	}
	for i := 0; i < 3; i++ {
		got, err := p.Parse("#00FF00")
		if err != nil {
			t.Fatalf("Parse yielded unexpected error %s", err)
		}
		if diff := cmp.Diff(RGBA{0, 255, 0, 1}, got); diff != "" {
			t.Errorf("Parse diff (-want +got):\n%s", diff)
		}
	}
	if _, err := p.Parse("nope"); err == nil {
		t.Errorf("Parse(\"nope\") yielded no error")
	}
	if _, err := p.Parse("nope"); err == nil {
		t.Errorf("cached Parse(\"nope\") yielded no error")
	}
	if got := p.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	p.Parse("blue")
	if got := p.Len(); got != 2 {
		t.Errorf("Len() after eviction = %d, want 2", got)
	}
	if _, err := NewParser(0); err == nil {
		t.Errorf("NewParser(0) yielded no error")
	}
}
