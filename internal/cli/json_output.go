package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/palette"
	"github.com/amterp/colorbox/internal/service"
)

// entryJson represents a history entry for JSON output.
//
// SYNC WARNING: This struct must stay in sync with model.ColorEntry fields.
// If you add fields to model.ColorEntry, add them here too. See TestEntryJsonFieldSync.
type entryJson struct {
	Code      string `json:"code"`
	Hex       string `json:"hex"`
	Label     string `json:"label"`
	Frequency int    `json:"frequency,omitempty"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	Position  int    `json:"position"`
	SetSize   int    `json:"set_size"`
}

func entriesToJson(rows [][]model.ColorEntry, positions []model.Position) []entryJson {
	result := make([]entryJson, 0, len(positions))
	i := 0
	for r, row := range rows {
		for c, e := range row {
			out := entryJson{
				Code:      string(e.Code),
				Hex:       e.Code.Hex(),
				Label:     e.Label,
				Frequency: e.Frequency,
				Row:       r,
				Column:    c,
			}
			if i < len(positions) {
				out.Position = positions[i].Index
				out.SetSize = positions[i].SetSize
			}
			result = append(result, out)
			i++
		}
	}
	return result
}

// PanelOutput wraps one button's state for JSON output.
type PanelOutput struct {
	Type      string      `json:"type"`
	Title     string      `json:"title"`
	PerRow    int         `json:"colors_per_row"`
	History   []entryJson `json:"history"`
	Automatic string      `json:"automatic,omitempty"`
	Selection string      `json:"selection_color,omitempty"`
	Selected  string      `json:"selected,omitempty"`
}

// NewPanelOutput creates a PanelOutput from a panel view.
// History is always an array (not null), even when empty.
func NewPanelOutput(view service.PanelView) PanelOutput {
	return PanelOutput{
		Type:      string(view.Type),
		Title:     view.Title,
		PerRow:    view.ColorsPerRow,
		History:   entriesToJson(view.History, view.Positions),
		Automatic: string(view.Automatic),
		Selection: string(view.SelectionColor),
		Selected:  string(view.Selected),
	}
}

// HistoryOutput wraps the panels of a document for JSON output.
type HistoryOutput struct {
	Document string        `json:"document"`
	Panels   []PanelOutput `json:"panels"`
}

// NewHistoryOutput creates a HistoryOutput from panel views.
// Always returns an empty array (not null) when there are no panels.
func NewHistoryOutput(document string, views []service.PanelView) HistoryOutput {
	panels := make([]PanelOutput, 0, len(views))
	for _, v := range views {
		panels = append(panels, NewPanelOutput(v))
	}
	return HistoryOutput{Document: document, Panels: panels}
}

// PickOutput wraps the result of applying colors for JSON output.
type PickOutput struct {
	Picked  []string    `json:"picked"`
	Written bool        `json:"written"`
	Panel   PanelOutput `json:"panel"`
}

// paletteColorJson represents a palette color for JSON output.
type paletteColorJson struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

// PaletteOutput wraps the configured palette for JSON output.
type PaletteOutput struct {
	Colors []paletteColorJson `json:"colors"`
}

// NewPaletteOutput creates a PaletteOutput from palette colors.
// Always returns an empty array (not null) when the palette is empty.
func NewPaletteOutput(colors []palette.Color) PaletteOutput {
	result := make([]paletteColorJson, 0, len(colors))
	for _, c := range colors {
		result = append(result, paletteColorJson{
			Name:  c.Name,
			Code:  string(c.Code),
			Hex:   c.Code.Hex(),
			Label: c.Label,
		})
	}
	return PaletteOutput{Colors: result}
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
