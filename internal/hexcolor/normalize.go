// Package hexcolor turns CSS color values into canonical six-digit color codes.
package hexcolor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amterp/colorbox/internal/model"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([^,\s]+)\s*,\s*([^,\s]+)\s*,\s*([^,\s)]+)\s*(?:,\s*[^)]*)?\)$`)
)

// Normalize converts a CSS color value to a ColorCode.
// Accepts hex (3 or 6 digits, with or without '#'), rgb()/rgba() and CSS color
// keywords. Anything else, including "transparent", yields model.NoColor.
func Normalize(raw string) model.ColorCode {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "transparent" {
		return model.NoColor
	}

	if hexPattern.MatchString(s) {
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return model.NoColor
		}
		return fromColorful(c)
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return fromRGB(m[1], m[2], m[3])
	}

	if code, ok := Named(s); ok {
		return code
	}
	return model.NoColor
}

// NormalizeOr is Normalize with a fallback for values that do not resolve.
func NormalizeOr(raw string, fallback model.ColorCode) model.ColorCode {
	if code := Normalize(raw); !code.IsEmpty() {
		return code
	}
	return fallback
}

// Named looks up a CSS color keyword ("red", "darkslategray").
func Named(raw string) (model.ColorCode, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return model.NoColor, false
	}
	c, _ := colorful.MakeColor(rgba)
	return fromColorful(c), true
}

// IsValid reports whether raw resolves to a color.
func IsValid(raw string) bool {
	return !Normalize(raw).IsEmpty()
}

func fromColorful(c colorful.Color) model.ColorCode {
	return model.ColorCode(strings.ToUpper(strings.TrimPrefix(c.Clamped().Hex(), "#")))
}

func fromRGB(r, g, b string) model.ColorCode {
	var channels [3]float64
	for i, part := range []string{r, g, b} {
		v, ok := parseChannel(part)
		if !ok {
			return model.NoColor
		}
		channels[i] = v
	}
	return fromColorful(colorful.Color{R: channels[0], G: channels[1], B: channels[2]})
}

// parseChannel reads an rgb() channel ("255" or "100%") as a 0..1 value.
func parseChannel(s string) (float64, bool) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return clamp(v / 100), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp(v / 255), true
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Contrast returns black or white, whichever reads better on top of code.
func Contrast(code model.ColorCode) model.ColorCode {
	c, err := colorful.Hex(code.Hex())
	if err != nil {
		return "000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "000000"
	}
	return model.White
}
