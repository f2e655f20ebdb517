package api

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/hexcolor"
	"github.com/amterp/colorbox/internal/model"
)

// GenerateSwatchSVG creates a square SVG color box with the color's label.
func GenerateSwatchSVG(code model.ColorCode, label string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><title>%s</title>`+
			`<rect width="32" height="32" rx="4" fill="%s" stroke="#00000022"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="central" text-anchor="middle" fill="%s" font-family="system-ui, -apple-system, sans-serif" font-size="7">%s</text></svg>`,
		html.EscapeString(label), code.Hex(), hexcolor.Contrast(code).Hex(), html.EscapeString(string(code)),
	)
}

// GetSwatch serves an SVG swatch for any color value, e.g. /api/v1/swatches/E74C3C.svg.
func (h *Handler) GetSwatch(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSuffix(r.PathValue("code"), ".svg")
	code := hexcolor.Normalize(raw)
	if code.IsEmpty() {
		Error(w, cberr.InvalidColor(raw))
		return
	}

	svg := GenerateSwatchSVG(code, model.LabelFor(code))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(svg))
}
