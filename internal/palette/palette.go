// Package palette parses the configured color list shown in the panel.
package palette

import (
	"strings"

	"github.com/amterp/colorbox/internal/hexcolor"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/util"
)

// Color is one palette box.
type Color struct {
	Name  string          `json:"name,omitempty"` // Only set for "Name/CODE" entries
	Code  model.ColorCode `json:"code"`
	Label string          `json:"label"`
}

// Parse reads a comma-separated palette of "CODE" or "Name/CODE" entries.
// A bare code is labelled from model.ColorLabels (falling back to the code);
// a named entry is labelled by its name. Entries that are not colors are skipped.
func Parse(spec string) []Color {
	var colors []Color
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, codePart, named := strings.Cut(raw, "/")
		if !named {
			codePart = name
			name = ""
		}

		code := hexcolor.Normalize(codePart)
		if code.IsEmpty() {
			continue
		}

		c := Color{Code: code}
		if named {
			c.Name = util.NormalizeLabel(name)
			c.Label = c.Name
		} else {
			c.Label = model.LabelFor(code)
		}
		colors = append(colors, c)
	}
	return colors
}

// Find returns the index of the first color satisfying match, or -1.
func Find(colors []Color, match func(model.ColorCode) bool) int {
	for i, c := range colors {
		if match(c.Code) {
			return i
		}
	}
	return -1
}
