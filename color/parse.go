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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// ParseError reports a string that is not a color in any supported notation.
type ParseError struct {
	Input  string
	Reason string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("cannot parse color %q: %s", pe.Input, pe.Reason)
}

// Parse interprets the provided string as an HTML color and returns it as
// RGBA.  Supported notations are color names (e.g. 'rebeccapurple',
// 'transparent'), '#RGB', '#RGBA', '#RRGGBB', '#RRGGBBAA', and the rgb(),
// rgba(), hsl(), and hsla() functions with comma- or space-separated
// arguments.  Notations without opacity yield A = 1.  Out-of-range
// components are clamped.  Any other input yields a *ParseError.
func Parse(s string) (RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "":
		return RGBA{}, &ParseError{Input: s, Reason: "empty string"}
	case strings.HasPrefix(str, "#"):
		return parseHexDigits(s, str[1:])
	case strings.Contains(str, "("):
		return parseFunction(s, str)
	case str == "transparent":
		return RGBA{}, nil
	}
	named, ok := colornames.Map[str]
	if !ok {
		return RGBA{}, &ParseError{Input: s, Reason: "unknown color name"}
	}
	return RGBA{R: int(named.R), G: int(named.G), B: int(named.B), A: 1}, nil
}

func parseHexDigits(input, digits string) (RGBA, error) {
	var vals []uint64
	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			v, err := strconv.ParseUint(digits[i:i+1], 16, 8)
			if err != nil {
				return RGBA{}, &ParseError{Input: input, Reason: "invalid hex digit"}
			}
			vals = append(vals, v*17)
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
			if err != nil {
				return RGBA{}, &ParseError{Input: input, Reason: "invalid hex digit"}
			}
			vals = append(vals, v)
		}
	default:
		return RGBA{}, &ParseError{Input: input, Reason: fmt.Sprintf("hex color has %d digits", len(digits))}
	}
	ret := RGBA{R: int(vals[0]), G: int(vals[1]), B: int(vals[2]), A: 1}
	if len(vals) == 4 {
		ret.A = quantizeAlpha(float64(vals[3]) / channelMax)
	}
	return ret, nil
}

// component is a single numeric argument of a color function.
type component struct {
	value float64
	// unit is "" for plain numbers, "%" for percentages, or an angle unit.
	unit string
}

// parseFunction parses rgb(), rgba(), hsl(), and hsla() notation.
func parseFunction(input, str string) (RGBA, error) {
	fail := func(reason string) (RGBA, error) {
		return RGBA{}, &ParseError{Input: input, Reason: reason}
	}
	lexer := css.NewLexer(parse.NewInputString(str))
	tt, data := lexer.Next()
	if tt != css.FunctionToken {
		return fail("expected a color function")
	}
	name := strings.TrimSuffix(string(data), "(")
	var args []component
	closed := false
	for !closed {
		tt, data = lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommaToken:
		case css.DelimToken:
			if string(data) != "/" || len(args) != 3 {
				return fail("unexpected '" + string(data) + "'")
			}
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return fail("invalid number")
			}
			args = append(args, component{value: v})
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return fail("invalid percentage")
			}
			args = append(args, component{value: v, unit: "%"})
		case css.DimensionToken:
			c, ok := parseAngle(string(data))
			if !ok {
				return fail("invalid dimension '" + string(data) + "'")
			}
			args = append(args, c)
		case css.RightParenthesisToken:
			closed = true
		default:
			return fail("unterminated color function")
		}
	}
	for {
		tt, _ = lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt != css.WhitespaceToken {
			return fail("trailing characters after color function")
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return fail(fmt.Sprintf("%s() takes 3 or 4 arguments, got %d", name, len(args)))
	}
	alpha := 1.0
	if len(args) == 4 {
		alpha = args[3].alpha()
	}
	switch name {
	case "rgb", "rgba":
		for _, arg := range args[:3] {
			if arg.isAngle() {
				return fail("angles are not rgb channels")
			}
		}
		return RGBA{
			R: args[0].channel(),
			G: args[1].channel(),
			B: args[2].channel(),
			A: alpha,
		}, nil
	case "hsl", "hsla":
		if args[1].isAngle() || args[2].isAngle() {
			return fail("angles are not saturation or lightness")
		}
		rgb := hslToRGB(args[0].degrees(), args[1].percent()/percentMax, args[2].percent()/percentMax)
		return rgb.Opaque().WithAlpha(alpha), nil
	}
	return fail("unsupported color function " + name + "()")
}

var angleUnits = []struct {
	suffix    string
	toDegrees float64
}{
	{"deg", 1},
	{"grad", 360.0 / 400},
	{"rad", 180 / math.Pi},
	{"turn", 360},
}

func parseAngle(dim string) (component, bool) {
	for _, au := range angleUnits {
		if num, ok := strings.CutSuffix(dim, au.suffix); ok {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return component{}, false
			}
			return component{value: v * au.toDegrees, unit: "deg"}, true
		}
	}
	return component{}, false
}

func (c component) isAngle() bool {
	return c.unit == "deg"
}

func (c component) channel() int {
	v := c.value
	if c.unit == "%" {
		v = v * channelMax / percentMax
	}
	return clampChannel(int(math.Round(v)))
}

func (c component) alpha() float64 {
	v := c.value
	if c.unit == "%" {
		v /= percentMax
	}
	return quantizeAlpha(v)
}

func (c component) degrees() float64 {
	return c.value
}

// percent treats plain numbers as percentages.
func (c component) percent() float64 {
	return math.Min(math.Max(c.value, 0), percentMax)
}

// quantizeAlpha clamps an opacity to [0, 1] and stores it at 8-bit
// precision, expressed with as few decimal places (2 or 3) as still identify
// the same 8-bit value.
func quantizeAlpha(a float64) float64 {
	a = clampUnit(a)
	byteVal := math.Round(a * channelMax)
	twoPlaces := math.Round(byteVal/channelMax*100) / 100
	if math.Round(twoPlaces*channelMax) == byteVal {
		return twoPlaces
	}
	return math.Round(byteVal/channelMax*1000) / 1000
}
