// Package extract counts how often each color is used in document content.
package extract

import (
	"cmp"
	"slices"

	"github.com/amterp/colorbox/internal/hexcolor"
	"github.com/amterp/colorbox/internal/model"
)

// Frequencies counts colors and remembers the order they were first observed in.
type Frequencies struct {
	order  []model.ColorCode
	counts map[model.ColorCode]int
}

// NewFrequencies returns an empty counter.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[model.ColorCode]int)}
}

// Add records one occurrence of code.
func (f *Frequencies) Add(code model.ColorCode) {
	if _, seen := f.counts[code]; !seen {
		f.order = append(f.order, code)
	}
	f.counts[code]++
}

// Count returns the occurrences of code.
func (f *Frequencies) Count(code model.ColorCode) int {
	return f.counts[code]
}

// Len returns the number of distinct colors.
func (f *Frequencies) Len() int {
	return len(f.order)
}

// Codes returns the distinct colors in first-observed order.
func (f *Frequencies) Codes() []model.ColorCode {
	return slices.Clone(f.order)
}

// Extract counts the colors used for cssProperty across nodes.
//
// Nodes without an inline value for the property are skipped; this drops nodes
// that matched a broader query (a background-color span when scanning for color).
// A keyword value maps through the named color table, anything else is read from
// the node's computed style. Zero nodes is not an error: the result is just empty.
func Extract(nodes []model.StyledNode, cssProperty string) *Frequencies {
	freq := NewFrequencies()
	for _, node := range nodes {
		code, ok := nodeColor(node, cssProperty)
		if !ok {
			continue
		}
		freq.Add(code)
	}
	return freq
}

func nodeColor(node model.StyledNode, cssProperty string) (model.ColorCode, bool) {
	raw := node.Style(cssProperty)
	if raw == "" {
		return model.NoColor, false
	}
	if code, ok := hexcolor.Named(raw); ok {
		return code, true
	}
	code := hexcolor.Normalize(node.ComputedStyle(cssProperty))
	return code, !code.IsEmpty()
}

// RankDescending orders the colors by descending frequency.
// Colors with equal counts keep their first-observed order.
func RankDescending(freq *Frequencies) []model.ColorEntry {
	entries := make([]model.ColorEntry, 0, freq.Len())
	for _, code := range freq.order {
		entries = append(entries, model.ColorEntry{Code: code, Frequency: freq.counts[code]})
	}
	slices.SortStableFunc(entries, func(a, b model.ColorEntry) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	return entries
}

// Truncate caps entries to capacity.
func Truncate(entries []model.ColorEntry, capacity int) []model.ColorEntry {
	if capacity < 0 {
		capacity = 0
	}
	if len(entries) > capacity {
		return entries[:capacity]
	}
	return entries
}

// Label fills each entry's label from the label table.
func Label(entries []model.ColorEntry) {
	for i := range entries {
		entries[i].Label = model.LabelFor(entries[i].Code)
	}
}

// Rank runs the full pipeline used to seed a history: extract, rank, cap, label.
func Rank(nodes []model.StyledNode, cssProperty string, capacity int) []model.ColorEntry {
	ranked := Truncate(RankDescending(Extract(nodes, cssProperty)), capacity)
	Label(ranked)
	return ranked
}
