package service

import (
	"errors"
	"log/slog"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/extract"
	"github.com/amterp/colorbox/internal/hexcolor"
	"github.com/amterp/colorbox/internal/history"
	"github.com/amterp/colorbox/internal/logging"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/palette"
	"github.com/amterp/colorbox/internal/prompt"
)

// Host is the editor content a panel reads colors from and applies styles to.
type Host interface {
	ReadOnly() bool
	StyledNodes(property string) []model.StyledNode
	AutomaticColor(property string) model.ColorCode
	SelectionColor(property string) model.ColorCode
	ApplyStyle(desc model.StyleDescriptor)
	RemoveStyle(desc model.StyleDescriptor)
}

// History change types broadcast to subscribers.
const (
	ChangeHistory = "history_changed"
	ChangeReset   = "history_reset"
)

// HistoryChange describes a change to a panel's history.
type HistoryChange struct {
	Type      string          `json:"type"`
	StyleType model.StyleType `json:"style_type"`
	Code      model.ColorCode `json:"code,omitempty"`
}

// PanelSubscriber is notified after a panel's history changes.
type PanelSubscriber interface {
	OnHistoryChange(change HistoryChange)
}

// PanelView is a snapshot of a panel for display.
type PanelView struct {
	Type             model.StyleType      `json:"type"`
	Title            string               `json:"title"`
	ColorsPerRow     int                  `json:"colors_per_row"`
	Palette          []palette.Color      `json:"palette"`
	History          [][]model.ColorEntry `json:"history"`
	Positions        []model.Position     `json:"positions"`
	AutomaticEnabled bool                 `json:"automatic_enabled"`
	Automatic        model.ColorCode      `json:"automatic,omitempty"`
	MoreEnabled      bool                 `json:"more_enabled"`
	SelectionColor   model.ColorCode      `json:"selection_color,omitempty"`
	Selected         model.ColorCode      `json:"selected,omitempty"`
}

// PanelService drives one color button: its palette, its history and the
// styles it applies to the host. Build a new one each time the panel is
// initialized. It is not safe for concurrent use.
type PanelService struct {
	cfg       *model.Config
	styleType model.StyleType
	host      Host
	prompter  prompt.Prompter
	logger    *slog.Logger

	palette []palette.Color
	history *history.Manager
	seeded  bool

	automatic model.ColorCode
	selection model.ColorCode
	selected  model.ColorCode

	subscribers []PanelSubscriber
}

// NewPanelService creates a panel for the given button type.
// A nil prompter disables the "more colors" dialog, a nil logger uses slog's default.
func NewPanelService(cfg *model.Config, styleType model.StyleType, host Host, prompter prompt.Prompter, logger *slog.Logger) (*PanelService, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	manager, err := history.NewManager(cfg.PerRow(), cfg.RowLimit())
	if err != nil {
		return nil, err
	}
	if prompter == nil {
		prompter = &prompt.NoopPrompter{}
	}

	return &PanelService{
		cfg:       cfg,
		styleType: styleType,
		host:      host,
		prompter:  prompter,
		logger:    logging.For(logger, "panel").With("type", string(styleType)),
		palette:   palette.Parse(cfg.PaletteSpec()),
		history:   manager,
	}, nil
}

// Subscribe registers a subscriber for history changes.
func (s *PanelService) Subscribe(sub PanelSubscriber) {
	s.subscribers = append(s.subscribers, sub)
}

func (s *PanelService) notify(change HistoryChange) {
	change.StyleType = s.styleType
	for _, sub := range s.subscribers {
		sub.OnHistoryChange(change)
	}
}

// Type returns the button type.
func (s *PanelService) Type() model.StyleType {
	return s.styleType
}

// Open prepares the panel for display.
//
// The first call seeds the history from the colors already used in the host
// content, most frequent first. Every call refreshes the automatic color and
// the selection color and marks the box matching the selection.
func (s *PanelService) Open() PanelView {
	property := s.styleType.CSSProperty()
	s.ensureSeeded()

	if s.cfg.AutomaticEnabled() {
		s.automatic = s.host.AutomaticColor(property)
	}
	s.selection = s.host.SelectionColor(property)
	s.SelectFirst(func(code model.ColorCode) bool { return code == s.selection })

	return s.View()
}

// ensureSeeded seeds the history from the host the first time it is needed.
func (s *PanelService) ensureSeeded() {
	if s.seeded {
		return
	}
	s.seeded = true

	property := s.styleType.CSSProperty()
	ranked := extract.Rank(s.host.StyledNodes(property), property, s.history.Capacity())
	s.history.Seed(ranked)
	s.logger.Debug("seeded history", "colors", len(ranked), "capacity", s.history.Capacity())
	if len(ranked) > 0 {
		s.notify(HistoryChange{Type: ChangeReset})
	}
}

// Pick applies a color to the selection and records it in the history.
// The style is not applied when the host is read-only, but the history is still updated.
func (s *PanelService) Pick(raw string) (model.ColorCode, error) {
	code := hexcolor.Normalize(raw)
	if code.IsEmpty() {
		return model.NoColor, cberr.InvalidColor(raw)
	}

	s.ensureSeeded()
	s.applyColor(code)
	s.history.ChooseColor(code, s.labelFor(code))
	s.selected = code
	s.logger.Debug("picked color", "code", code, "history", s.history.TotalEntries())

	s.notify(HistoryChange{Type: ChangeHistory, Code: code})
	return code, nil
}

// PickAutomatic removes the color style from the selection. The history is unchanged.
func (s *PanelService) PickAutomatic() error {
	if !s.cfg.AutomaticEnabled() {
		return cberr.InvalidField("enable_automatic", "the automatic color is disabled")
	}
	s.ensureSeeded()
	if s.host.ReadOnly() {
		s.logger.Debug("host is read-only, skipping style removal")
	} else {
		s.host.RemoveStyle(s.defaultStyle())
	}
	s.selected = model.NoColor
	return nil
}

// PickMore asks for an arbitrary color and picks it.
// Returns the empty code without error when the dialog is cancelled or left empty.
func (s *PanelService) PickMore() (model.ColorCode, error) {
	if !s.cfg.MoreEnabled() {
		return model.NoColor, cberr.InvalidField("enable_more", "the more colors dialog is disabled")
	}

	value, err := s.prompter.Input("More Colors", s.selected.Hex(), validateColor)
	if errors.Is(err, prompt.ErrCancelled) {
		s.logger.Debug("more colors dialog cancelled")
		return model.NoColor, nil
	}
	if err != nil {
		return model.NoColor, err
	}
	if value == "" {
		return model.NoColor, nil
	}
	return s.Pick(value)
}

func validateColor(value string) error {
	if value == "" || hexcolor.IsValid(value) {
		return nil
	}
	return cberr.InvalidColor(value)
}

// SelectFirst marks the first palette or history color satisfying match.
// The selection is cleared when nothing matches.
func (s *PanelService) SelectFirst(match func(model.ColorCode) bool) model.ColorCode {
	s.selected = model.NoColor
	if i := palette.Find(s.palette, match); i >= 0 {
		s.selected = s.palette[i].Code
		return s.selected
	}
	for _, e := range s.history.Entries() {
		if match(e.Code) {
			s.selected = e.Code
			break
		}
	}
	return s.selected
}

// Selected returns the currently marked color, or the empty code.
func (s *PanelService) Selected() model.ColorCode {
	return s.selected
}

// Automatic returns the automatic color computed at the last Open.
func (s *PanelService) Automatic() model.ColorCode {
	return s.automatic
}

// Palette returns the configured palette.
func (s *PanelService) Palette() []palette.Color {
	out := make([]palette.Color, len(s.palette))
	copy(out, s.palette)
	return out
}

// History returns the history rows.
func (s *PanelService) History() [][]model.ColorEntry {
	return s.history.Rows()
}

// Positions returns the accessible position of each history entry.
func (s *PanelService) Positions() []model.Position {
	return s.history.Positions()
}

// View returns a snapshot of the panel.
func (s *PanelService) View() PanelView {
	return PanelView{
		Type:             s.styleType,
		Title:            s.styleType.Title(),
		ColorsPerRow:     s.cfg.PerRow(),
		Palette:          s.Palette(),
		History:          s.History(),
		Positions:        s.Positions(),
		AutomaticEnabled: s.cfg.AutomaticEnabled(),
		Automatic:        s.automatic,
		MoreEnabled:      s.cfg.MoreEnabled(),
		SelectionColor:   s.selection,
		Selected:         s.selected,
	}
}

func (s *PanelService) applyColor(code model.ColorCode) {
	if s.host.ReadOnly() {
		s.logger.Debug("host is read-only, skipping style", "code", code)
		return
	}
	s.host.RemoveStyle(s.defaultStyle())
	s.host.ApplyStyle(s.cfg.StyleFor(s.styleType, code.Hex()))
}

func (s *PanelService) defaultStyle() model.StyleDescriptor {
	return s.cfg.StyleFor(s.styleType, model.AutomaticValue)
}

// labelFor prefers the palette's name for a color over the label table.
func (s *PanelService) labelFor(code model.ColorCode) string {
	if i := palette.Find(s.palette, func(c model.ColorCode) bool { return c == code }); i >= 0 {
		return s.palette[i].Label
	}
	return model.LabelFor(code)
}
