package model

// ColorCode is a canonical color identifier: six uppercase hex digits, no '#'.
// The empty code means "no color".
type ColorCode string

// NoColor is the sentinel for values that do not resolve to a color.
const NoColor ColorCode = ""

// White is used wherever a color must be shown but none could be resolved.
const White ColorCode = "FFFFFF"

// IsEmpty reports whether the code is the no-color sentinel.
func (c ColorCode) IsEmpty() bool {
	return c == NoColor
}

// Hex returns the code in CSS form ("#RRGGBB"), or "" for the sentinel.
func (c ColorCode) Hex() string {
	if c.IsEmpty() {
		return ""
	}
	return "#" + string(c)
}

func (c ColorCode) String() string {
	return string(c)
}

// ColorEntry is one color in the history.
// Frequency only matters for the initial seed; after that the order is recency-based.
type ColorEntry struct {
	Code      ColorCode `json:"code"`
	Label     string    `json:"label"`
	Frequency int       `json:"frequency,omitempty"`
}

// Position is the accessible position of a history entry: 1-based index
// left-to-right across all rows, plus the total set size.
type Position struct {
	Code    ColorCode `json:"code"`
	Index   int       `json:"index"`
	SetSize int       `json:"set_size"`
}

// StyledNode is a content node carrying inline style.
type StyledNode interface {
	// Style returns the raw inline value for a CSS property, or "".
	Style(property string) string
	// ComputedStyle returns the resolved value for a CSS property.
	ComputedStyle(property string) string
}
