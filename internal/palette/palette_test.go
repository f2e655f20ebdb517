package palette

import (
	"testing"

	"github.com/amterp/colorbox/internal/model"
)

func TestParse_Default(t *testing.T) {
	colors := Parse(model.DefaultColors)
	if len(colors) != 24 {
		t.Fatalf("Expected 24 colors, got %d", len(colors))
	}
	if colors[0].Code != "1ABC9C" || colors[0].Label != "Strong Cyan" {
		t.Errorf("First color = %+v, want 1ABC9C/Strong Cyan", colors[0])
	}
	// Shorthand entries are expanded
	if colors[16].Code != "DDDDDD" {
		t.Errorf("Expected DDD to expand to DDDDDD, got %q", colors[16].Code)
	}
	if colors[23].Code != "000000" || colors[23].Label != "Black" {
		t.Errorf("Last color = %+v, want 000000/Black", colors[23])
	}
}

func TestParse_NamedEntries(t *testing.T) {
	colors := Parse("FontColor1/FF9900, FontColor2/0066CC,FontColor3/F00")
	if len(colors) != 3 {
		t.Fatalf("Expected 3 colors, got %d", len(colors))
	}
	want := []struct {
		name string
		code model.ColorCode
	}{
		{"FontColor1", "FF9900"},
		{"FontColor2", "0066CC"},
		{"FontColor3", "FF0000"},
	}
	for i, w := range want {
		if colors[i].Name != w.name || colors[i].Code != w.code || colors[i].Label != w.name {
			t.Errorf("colors[%d] = %+v, want name=%s code=%s", i, colors[i], w.name, w.code)
		}
	}
}

func TestParse_UnknownCodeLabelledByCode(t *testing.T) {
	colors := Parse("123456")
	if len(colors) != 1 || colors[0].Label != "123456" {
		t.Errorf("Expected label to fall back to code, got %+v", colors)
	}
}

func TestParse_SkipsInvalid(t *testing.T) {
	colors := Parse("zzz,,FF0000, ,Bad/nope")
	if len(colors) != 1 || colors[0].Code != "FF0000" {
		t.Errorf("Expected only FF0000, got %+v", colors)
	}
}

func TestFind(t *testing.T) {
	colors := Parse("F00,0F0,00F")
	idx := Find(colors, func(c model.ColorCode) bool { return c == "00FF00" })
	if idx != 1 {
		t.Errorf("Find = %d, want 1", idx)
	}
	idx = Find(colors, func(c model.ColorCode) bool { return false })
	if idx != -1 {
		t.Errorf("Find = %d, want -1", idx)
	}
}
