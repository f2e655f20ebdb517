package extract

import (
	"testing"

	"github.com/amterp/colorbox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode is an in-memory StyledNode.
type testNode struct {
	inline   map[string]string
	computed map[string]string
}

func (n *testNode) Style(property string) string         { return n.inline[property] }
func (n *testNode) ComputedStyle(property string) string { return n.computed[property] }

func colorNode(value string) *testNode {
	return &testNode{
		inline:   map[string]string{"color": value},
		computed: map[string]string{"color": value},
	}
}

func nodes(ns ...*testNode) []model.StyledNode {
	out := make([]model.StyledNode, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

func codes(entries []model.ColorEntry) []model.ColorCode {
	out := make([]model.ColorCode, len(entries))
	for i, e := range entries {
		out[i] = e.Code
	}
	return out
}

func TestExtract_Empty(t *testing.T) {
	freq := Extract(nil, "color")
	assert.Equal(t, 0, freq.Len())
	assert.Empty(t, RankDescending(freq))
}

func TestExtract_CountsNormalizedCodes(t *testing.T) {
	freq := Extract(nodes(
		colorNode("#ff0000"),
		colorNode("#F00"),
		colorNode("rgb(255, 0, 0)"),
		colorNode("#00ff00"),
	), "color")

	assert.Equal(t, 2, freq.Len())
	assert.Equal(t, 3, freq.Count("FF0000"))
	assert.Equal(t, 1, freq.Count("00FF00"))
	assert.Equal(t, []model.ColorCode{"FF0000", "00FF00"}, freq.Codes())
}

func TestExtract_NamedColorUsesTable(t *testing.T) {
	// The computed value is ignored for keywords.
	n := &testNode{
		inline:   map[string]string{"color": "red"},
		computed: map[string]string{"color": "rgb(1, 2, 3)"},
	}
	freq := Extract(nodes(n), "color")
	assert.Equal(t, 1, freq.Count("FF0000"))
}

func TestExtract_UsesComputedStyleForNonKeywords(t *testing.T) {
	n := &testNode{
		inline:   map[string]string{"color": "var(--brand)"},
		computed: map[string]string{"color": "rgb(0, 0, 255)"},
	}
	freq := Extract(nodes(n), "color")
	assert.Equal(t, 1, freq.Count("0000FF"))
}

func TestExtract_SkipsNodesWithoutProperty(t *testing.T) {
	bg := &testNode{
		inline:   map[string]string{"background-color": "#ff0000"},
		computed: map[string]string{"color": "#000000", "background-color": "#ff0000"},
	}
	freq := Extract(nodes(bg, colorNode("#00f")), "color")

	require.Equal(t, 1, freq.Len())
	assert.Equal(t, 1, freq.Count("0000FF"))
	assert.Equal(t, 0, freq.Count("000000"))
}

func TestExtract_SkipsUnresolvableColors(t *testing.T) {
	n := &testNode{
		inline:   map[string]string{"background-color": "transparent"},
		computed: map[string]string{"background-color": "transparent"},
	}
	freq := Extract(nodes(n), "background-color")
	assert.Equal(t, 0, freq.Len())
}

func TestRankDescending_TieBreakKeepsFirstObserved(t *testing.T) {
	x, y, z := "#111111", "#222222", "#333333"
	freq := Extract(nodes(
		colorNode(x), colorNode(y), colorNode(x),
		colorNode(z), colorNode(y), colorNode(x),
	), "color")

	ranked := RankDescending(freq)
	assert.Equal(t, []model.ColorCode{"111111", "222222", "333333"}, codes(ranked))
	assert.Equal(t, []int{3, 2, 1}, []int{ranked[0].Frequency, ranked[1].Frequency, ranked[2].Frequency})
}

func TestRankDescending_EqualCounts(t *testing.T) {
	freq := Extract(nodes(colorNode("#ccc"), colorNode("#aaa"), colorNode("#bbb")), "color")
	assert.Equal(t, []model.ColorCode{"CCCCCC", "AAAAAA", "BBBBBB"}, codes(RankDescending(freq)))
}

func TestTruncate(t *testing.T) {
	entries := []model.ColorEntry{{Code: "A"}, {Code: "B"}, {Code: "C"}}
	assert.Len(t, Truncate(entries, 2), 2)
	assert.Len(t, Truncate(entries, 5), 3)
	assert.Empty(t, Truncate(entries, 0))
	assert.Empty(t, Truncate(entries, -1))
}

func TestRank_LabelsAndCaps(t *testing.T) {
	ranked := Rank(nodes(
		colorNode("#000"), colorNode("#000"),
		colorNode("#123456"),
		colorNode("#fff"),
	), "color", 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, model.ColorEntry{Code: "000000", Label: "Black", Frequency: 2}, ranked[0])
	assert.Equal(t, model.ColorEntry{Code: "123456", Label: "123456", Frequency: 1}, ranked[1])
}
