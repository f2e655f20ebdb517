package cli

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/palette"
	"github.com/amterp/colorbox/internal/service"
)

// TestEntryJsonFieldSync ensures entryJson stays in sync with model.ColorEntry.
// If this test fails, you probably added a field to model.ColorEntry but forgot
// to add it to entryJson in json_output.go.
func TestEntryJsonFieldSync(t *testing.T) {
	entryType := reflect.TypeOf(model.ColorEntry{})
	entryJsonType := reflect.TypeOf(entryJson{})

	// Fields that exist in entryJson but not in model.ColorEntry
	entryJsonOnly := map[string]bool{
		"Hex":      true,
		"Row":      true,
		"Column":   true,
		"Position": true,
		"SetSize":  true,
	}

	for i := 0; i < entryType.NumField(); i++ {
		field := entryType.Field(i)

		jsonField, found := entryJsonType.FieldByName(field.Name)
		if !found {
			t.Errorf("model.ColorEntry has field %q but entryJson does not. "+
				"Add it to entryJson and entriesToJson().", field.Name)
			continue
		}
		if field.Type.Kind() != jsonField.Type.Kind() {
			t.Errorf("Field %q has kind %v in model.ColorEntry but %v in entryJson",
				field.Name, field.Type.Kind(), jsonField.Type.Kind())
		}
	}

	for i := 0; i < entryJsonType.NumField(); i++ {
		field := entryJsonType.Field(i)
		if entryJsonOnly[field.Name] {
			continue
		}
		if _, found := entryType.FieldByName(field.Name); !found {
			t.Errorf("entryJson has field %q that doesn't exist in model.ColorEntry. "+
				"If this is intentional, add it to entryJsonOnly map.", field.Name)
		}
	}
}

func TestEntriesToJson_Positions(t *testing.T) {
	rows := [][]model.ColorEntry{
		{{Code: "FF0000", Label: "Red"}, {Code: "00FF00", Label: "Lime"}},
		{{Code: "0000FF", Label: "Blue"}},
	}
	positions := []model.Position{
		{Code: "FF0000", Index: 1, SetSize: 4},
		{Code: "00FF00", Index: 2, SetSize: 4},
		{Code: "0000FF", Index: 3, SetSize: 4},
	}

	got := entriesToJson(rows, positions)

	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	last := got[2]
	if last.Row != 1 || last.Column != 0 {
		t.Errorf("Row/Column = %d/%d, want 1/0", last.Row, last.Column)
	}
	if last.Position != 3 || last.SetSize != 4 {
		t.Errorf("Position = %d of %d, want 3 of 4", last.Position, last.SetSize)
	}
	if last.Hex != "#0000FF" {
		t.Errorf("Hex = %q, want #0000FF", last.Hex)
	}
}

// TestEmptySlicesNotNull ensures JSON output uses [] rather than null.
func TestEmptySlicesNotNull(t *testing.T) {
	tests := []struct {
		name  string
		value any
		key   string
	}{
		{"history output", NewHistoryOutput("doc.html", nil), `"panels": []`},
		{"panel output", NewPanelOutput(service.PanelView{Type: model.StyleFore}), `"history": []`},
		{"palette output", NewPaletteOutput(nil), `"colors": []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.MarshalIndent(tt.value, "", "  ")
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !strings.Contains(string(data), tt.key) {
				t.Errorf("Expected %s in output, got:\n%s", tt.key, data)
			}
		})
	}
}

func TestNewPaletteOutput(t *testing.T) {
	colors := palette.Parse("Brand/123456,FF0000")

	out := NewPaletteOutput(colors)

	if len(out.Colors) != 2 {
		t.Fatalf("Expected 2 colors, got %d", len(out.Colors))
	}
	if out.Colors[0].Name != "Brand" || out.Colors[0].Label != "Brand" {
		t.Errorf("First color = %+v, want named Brand", out.Colors[0])
	}
	if out.Colors[1].Hex != "#FF0000" {
		t.Errorf("Hex = %q, want #FF0000", out.Colors[1].Hex)
	}
}
