package cli

import (
	"strings"
	"testing"

	"github.com/amterp/colorbox/internal/document"
)

func TestRenderSelection(t *testing.T) {
	doc, err := document.ParseString(`<p id="a">x</p><p id="b">y</p>`, document.Options{})
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if got := renderSelection(doc); !strings.Contains(got, "(no selection)") {
		t.Errorf("renderSelection() = %q, want no selection", got)
	}

	if err := doc.Select("a", "b"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	got := renderSelection(doc)
	if !strings.Contains(got, "#a") || !strings.Contains(got, "#b") {
		t.Errorf("renderSelection() = %q, want both ids", got)
	}
}

func TestRenderColor_EmptyIsMuted(t *testing.T) {
	if got := RenderColor("none", ""); !strings.Contains(got, "none") {
		t.Errorf("RenderColor() = %q, want text kept", got)
	}
}
