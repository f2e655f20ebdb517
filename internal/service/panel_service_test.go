package service

import (
	"errors"
	"testing"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/logging"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/prompt"
)

// testNode is a span with only an inline color.
type testNode struct {
	property, value string
}

func (n testNode) Style(property string) string {
	if property == n.property {
		return n.value
	}
	return ""
}

func (n testNode) ComputedStyle(property string) string {
	return n.Style(property)
}

// testHost implements Host in memory and records style commands.
type testHost struct {
	readOnly  bool
	nodes     []model.StyledNode
	automatic model.ColorCode
	selection model.ColorCode

	applied []model.StyleDescriptor
	removed []model.StyleDescriptor
	queries int
}

func (h *testHost) ReadOnly() bool { return h.readOnly }

func (h *testHost) StyledNodes(property string) []model.StyledNode {
	h.queries++
	return h.nodes
}

func (h *testHost) AutomaticColor(property string) model.ColorCode { return h.automatic }
func (h *testHost) SelectionColor(property string) model.ColorCode { return h.selection }

func (h *testHost) ApplyStyle(desc model.StyleDescriptor)  { h.applied = append(h.applied, desc) }
func (h *testHost) RemoveStyle(desc model.StyleDescriptor) { h.removed = append(h.removed, desc) }

// testPrompter answers Input with a fixed value or error.
type testPrompter struct {
	prompt.NoopPrompter
	value string
	err   error
	calls int
}

func (p *testPrompter) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if validate != nil {
		if err := validate(p.value); err != nil {
			return "", err
		}
	}
	return p.value, nil
}

// recorder collects history changes.
type recorder struct {
	changes []HistoryChange
}

func (r *recorder) OnHistoryChange(change HistoryChange) {
	r.changes = append(r.changes, change)
}

func colorNodes(values ...string) []model.StyledNode {
	out := make([]model.StyledNode, len(values))
	for i, v := range values {
		out[i] = testNode{property: "color", value: v}
	}
	return out
}

func newTestPanel(t *testing.T, cfg *model.Config, host *testHost, p prompt.Prompter) *PanelService {
	t.Helper()
	panel, err := NewPanelService(cfg, model.StyleFore, host, p, logging.Discard())
	if err != nil {
		t.Fatalf("NewPanelService failed: %v", err)
	}
	return panel
}

func historyCodes(panel *PanelService) []model.ColorCode {
	var codes []model.ColorCode
	for _, row := range panel.History() {
		for _, e := range row {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

func equalCodes(a, b []model.ColorCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewPanelService_RejectsInvalidConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.ColorsPerRow = -1

	_, err := NewPanelService(cfg, model.StyleFore, &testHost{}, nil, logging.Discard())
	if !cberr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestOpen_SeedsOnce(t *testing.T) {
	host := &testHost{nodes: colorNodes("#00f", "red", "#0000ff", "#f00", "blue")}
	panel := newTestPanel(t, nil, host, nil)

	panel.Open()
	want := []model.ColorCode{"0000FF", "FF0000"}
	if got := historyCodes(panel); !equalCodes(got, want) {
		t.Fatalf("history = %v, want %v", got, want)
	}

	host.nodes = colorNodes("#123456")
	panel.Open()

	if host.queries != 1 {
		t.Errorf("expected host to be queried once, got %d", host.queries)
	}
	if got := historyCodes(panel); !equalCodes(got, want) {
		t.Errorf("history changed on reopen: %v", got)
	}
}

func TestOpen_SeedCappedToCapacity(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.ColorsPerRow = 2
	host := &testHost{nodes: colorNodes("#111", "#222", "#333", "#111")}
	panel := newTestPanel(t, cfg, host, nil)

	panel.Open()

	want := []model.ColorCode{"111111", "222222"}
	if got := historyCodes(panel); !equalCodes(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}
}

func TestOpen_DisabledHistoryStaysEmpty(t *testing.T) {
	cfg := model.DefaultConfig()
	zero := 0
	cfg.HistoryRowLimit = &zero
	host := &testHost{nodes: colorNodes("#f00")}
	panel := newTestPanel(t, cfg, host, nil)

	panel.Open()
	if _, err := panel.Pick("00ff00"); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	if len(panel.History()) != 0 {
		t.Errorf("expected no history rows, got %v", panel.History())
	}
	if len(host.applied) != 1 {
		t.Errorf("style should still be applied, got %d applies", len(host.applied))
	}
}

func TestOpen_MarksSelectionColor(t *testing.T) {
	host := &testHost{selection: "E74C3C", automatic: "FFFFFF"}
	panel := newTestPanel(t, nil, host, nil)

	view := panel.Open()

	if view.Selected != "E74C3C" {
		t.Errorf("Selected = %q, want E74C3C", view.Selected)
	}
	if view.Automatic != "FFFFFF" {
		t.Errorf("Automatic = %q, want FFFFFF", view.Automatic)
	}
	if view.Title != "Text Color" {
		t.Errorf("Title = %q", view.Title)
	}

	host.selection = "ABCDEF"
	if view := panel.Open(); view.Selected != model.NoColor {
		t.Errorf("expected selection cleared, got %q", view.Selected)
	}
}

func TestPick_AppliesStyleAndRecords(t *testing.T) {
	host := &testHost{}
	panel := newTestPanel(t, nil, host, nil)
	rec := &recorder{}
	panel.Subscribe(rec)
	panel.Open()

	code, err := panel.Pick("#e74c3c")
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if code != "E74C3C" {
		t.Errorf("code = %q", code)
	}

	if len(host.removed) != 1 || host.removed[0].Value != model.AutomaticValue {
		t.Errorf("expected default style removed first, got %v", host.removed)
	}
	wantApplied := model.StyleDescriptor{Element: "span", Property: "color", Value: "#E74C3C"}
	if len(host.applied) != 1 || host.applied[0] != wantApplied {
		t.Errorf("applied = %v, want %v", host.applied, wantApplied)
	}

	entries := panel.History()[0]
	if entries[0].Code != "E74C3C" || entries[0].Label != "Pale Red" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if panel.Selected() != "E74C3C" {
		t.Errorf("Selected = %q", panel.Selected())
	}

	if len(rec.changes) != 1 || rec.changes[0].Type != ChangeHistory || rec.changes[0].StyleType != model.StyleFore {
		t.Errorf("unexpected changes %+v", rec.changes)
	}
}

func TestPick_UsesPaletteName(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Colors = "Brand/123456,FFF"
	panel := newTestPanel(t, cfg, &testHost{}, nil)

	if _, err := panel.Pick("123456"); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if got := panel.History()[0][0].Label; got != "Brand" {
		t.Errorf("label = %q, want Brand", got)
	}
}

func TestPick_InvalidColor(t *testing.T) {
	host := &testHost{}
	panel := newTestPanel(t, nil, host, nil)

	_, err := panel.Pick("not-a-color")
	if !cberr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(host.applied) != 0 || len(panel.History()) != 0 {
		t.Error("invalid pick should not change anything")
	}
}

func TestPick_ReadOnlyStillRecords(t *testing.T) {
	host := &testHost{readOnly: true}
	panel := newTestPanel(t, nil, host, nil)

	if _, err := panel.Pick("00ff00"); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if len(host.applied)+len(host.removed) != 0 {
		t.Errorf("read-only host should not receive style commands")
	}
	if got := historyCodes(panel); !equalCodes(got, []model.ColorCode{"00FF00"}) {
		t.Errorf("history = %v", got)
	}
}

func TestPickAutomatic(t *testing.T) {
	host := &testHost{}
	panel := newTestPanel(t, nil, host, nil)
	panel.Pick("ff0000")

	if err := panel.PickAutomatic(); err != nil {
		t.Fatalf("PickAutomatic failed: %v", err)
	}

	if len(host.removed) != 2 {
		t.Errorf("expected a second removal, got %d", len(host.removed))
	}
	if len(host.applied) != 1 {
		t.Errorf("automatic should not apply a style")
	}
	if got := historyCodes(panel); !equalCodes(got, []model.ColorCode{"FF0000"}) {
		t.Errorf("history changed: %v", got)
	}
	if panel.Selected() != model.NoColor {
		t.Errorf("Selected = %q", panel.Selected())
	}
}

func TestPickAutomatic_Disabled(t *testing.T) {
	cfg := model.DefaultConfig()
	off := false
	cfg.EnableAutomatic = &off
	panel := newTestPanel(t, cfg, &testHost{}, nil)

	if err := panel.PickAutomatic(); !cberr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPickMore(t *testing.T) {
	tests := []struct {
		name     string
		prompter *testPrompter
		want     model.ColorCode
		wantErr  bool
		history  int
	}{
		{"picked", &testPrompter{value: "#abc"}, "AABBCC", false, 1},
		{"cancelled", &testPrompter{err: prompt.ErrCancelled}, model.NoColor, false, 0},
		{"empty", &testPrompter{value: ""}, model.NoColor, false, 0},
		{"invalid", &testPrompter{value: "nope"}, model.NoColor, true, 0},
		{"non-interactive", &testPrompter{err: prompt.ErrNonInteractive}, model.NoColor, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := newTestPanel(t, nil, &testHost{}, tt.prompter)

			got, err := panel.PickMore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
			if n := len(historyCodes(panel)); n != tt.history {
				t.Errorf("history size = %d, want %d", n, tt.history)
			}
		})
	}
}

func TestPickMore_Disabled(t *testing.T) {
	cfg := model.DefaultConfig()
	off := false
	cfg.EnableMore = &off
	p := &testPrompter{value: "fff"}
	panel := newTestPanel(t, cfg, &testHost{}, p)

	if _, err := panel.PickMore(); !cberr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if p.calls != 0 {
		t.Error("prompter should not be called")
	}
}

func TestSelectFirst(t *testing.T) {
	panel := newTestPanel(t, nil, &testHost{}, nil)
	panel.Pick("123456")

	if got := panel.SelectFirst(func(c model.ColorCode) bool { return c == "3498DB" }); got != "3498DB" {
		t.Errorf("palette match = %q", got)
	}
	if got := panel.SelectFirst(func(c model.ColorCode) bool { return c == "123456" }); got != "123456" {
		t.Errorf("history match = %q", got)
	}
	if got := panel.SelectFirst(func(model.ColorCode) bool { return false }); got != model.NoColor {
		t.Errorf("no match = %q", got)
	}
	// The first palette color wins over later ones.
	if got := panel.SelectFirst(func(model.ColorCode) bool { return true }); got != "1ABC9C" {
		t.Errorf("first match = %q", got)
	}
}

func TestSubscribers_SeedEmitsReset(t *testing.T) {
	host := &testHost{nodes: colorNodes("#f00")}
	panel := newTestPanel(t, nil, host, nil)
	rec := &recorder{}
	panel.Subscribe(rec)

	panel.Open()
	panel.Open()

	if len(rec.changes) != 1 || rec.changes[0].Type != ChangeReset {
		t.Errorf("expected one reset, got %+v", rec.changes)
	}
}

func TestPanelService_BackStyle(t *testing.T) {
	host := &testHost{}
	cfg := model.DefaultConfig()
	cfg.BackStyle.Element = "mark"
	panel, err := NewPanelService(cfg, model.StyleBack, host, nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	panel.Pick("ff0")

	want := model.StyleDescriptor{Element: "mark", Property: "background-color", Value: "#FFFF00"}
	if len(host.applied) != 1 || host.applied[0] != want {
		t.Errorf("applied = %v, want %v", host.applied, want)
	}
}

func TestPickMore_PropagatesUnknownError(t *testing.T) {
	boom := errors.New("boom")
	panel := newTestPanel(t, nil, &testHost{}, &testPrompter{err: boom})

	if _, err := panel.PickMore(); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestPick_BeforeOpenSeedsFirst(t *testing.T) {
	host := &testHost{nodes: colorNodes("#111", "#111", "#222")}
	panel := newTestPanel(t, nil, host, nil)

	panel.Pick("333")
	panel.Open()

	want := []model.ColorCode{"333333", "111111", "222222"}
	if got := historyCodes(panel); !equalCodes(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}
}
