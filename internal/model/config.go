package model

import (
	"fmt"

	cberr "github.com/amterp/colorbox/internal/errors"
)

// Config holds the color button settings.
// Stored at .colorbox/config.toml (project) or ~/.config/colorbox/config.toml (global).
// Schema changes require a version bump, see internal/version/version.go.
type Config struct {
	ColorboxSchema string `toml:"colorbox_schema" json:"-"`

	// Colors is the palette: comma-separated "CODE" or "Name/CODE" entries, codes without '#'.
	Colors string `toml:"colors,omitempty" json:"colors,omitempty"`

	ColorsPerRow int `toml:"colors_per_row,omitempty" json:"colors_per_row,omitempty"`

	// HistoryRowLimit is a pointer so an explicit 0 (history disabled) differs from unset.
	HistoryRowLimit *int `toml:"history_row_limit,omitempty" json:"history_row_limit,omitempty"`

	EnableMore          *bool `toml:"enable_more,omitempty" json:"enable_more,omitempty"`
	EnableAutomatic     *bool `toml:"enable_automatic,omitempty" json:"enable_automatic,omitempty"`
	NormalizeBackground *bool `toml:"normalize_background,omitempty" json:"normalize_background,omitempty"`

	ForeStyle StyleTemplate `toml:"fore_style,omitempty" json:"fore_style,omitempty"`
	BackStyle StyleTemplate `toml:"back_style,omitempty" json:"back_style,omitempty"`

	// Editor overrides $EDITOR for `colorbox config --edit`.
	Editor string `toml:"editor,omitempty" json:"editor,omitempty"`
}

// StyleTemplate describes the element that carries an applied color.
type StyleTemplate struct {
	Element string `toml:"element,omitempty" json:"element,omitempty"`
}

// Defaults used when a setting is absent.
const (
	DefaultColors = "1ABC9C,2ECC71,3498DB,9B59B6,4E5F70,F1C40F," +
		"16A085,27AE60,2980B9,8E44AD,2C3E50,F39C12," +
		"E67E22,E74C3C,ECF0F1,95A5A6,DDD,FFF," +
		"D35400,C0392B,BDC3C7,7F8C8D,999,000"
	DefaultColorsPerRow    = 6
	DefaultHistoryRowLimit = 1
	DefaultStyleElement    = "span"
)

// DefaultConfig returns a config with every setting filled in.
func DefaultConfig() *Config {
	rowLimit := DefaultHistoryRowLimit
	enabled := true
	return &Config{
		Colors:              DefaultColors,
		ColorsPerRow:        DefaultColorsPerRow,
		HistoryRowLimit:     &rowLimit,
		EnableMore:          &enabled,
		EnableAutomatic:     &enabled,
		NormalizeBackground: &enabled,
		ForeStyle:           StyleTemplate{Element: DefaultStyleElement},
		BackStyle:           StyleTemplate{Element: DefaultStyleElement},
	}
}

// PaletteSpec returns the configured palette or the default one.
func (c *Config) PaletteSpec() string {
	if c.Colors == "" {
		return DefaultColors
	}
	return c.Colors
}

// PerRow returns colors_per_row, defaulting when unset.
// A negative value is returned as-is so Validate can reject it.
func (c *Config) PerRow() int {
	if c.ColorsPerRow == 0 {
		return DefaultColorsPerRow
	}
	return c.ColorsPerRow
}

// RowLimit returns history_row_limit; 0 disables the history.
func (c *Config) RowLimit() int {
	if c.HistoryRowLimit == nil {
		return DefaultHistoryRowLimit
	}
	return *c.HistoryRowLimit
}

// MoreEnabled reports whether the "More Colors" dialog is offered.
func (c *Config) MoreEnabled() bool {
	return c.EnableMore == nil || *c.EnableMore
}

// AutomaticEnabled reports whether the "Automatic" button is offered.
func (c *Config) AutomaticEnabled() bool {
	return c.EnableAutomatic == nil || *c.EnableAutomatic
}

// BackgroundNormalized reports whether color-only `background` shorthands
// are rewritten to `background-color`.
func (c *Config) BackgroundNormalized() bool {
	return c.NormalizeBackground == nil || *c.NormalizeBackground
}

// StyleFor returns the descriptor template for a button type with the given value.
func (c *Config) StyleFor(t StyleType, value string) StyleDescriptor {
	tmpl := c.ForeStyle
	if t == StyleBack {
		tmpl = c.BackStyle
	}
	element := tmpl.Element
	if element == "" {
		element = DefaultStyleElement
	}
	return StyleDescriptor{Element: element, Property: t.CSSProperty(), Value: value}
}

// Validate rejects settings that cannot produce a bounded history layout.
func (c *Config) Validate() error {
	if c.PerRow() <= 0 {
		return cberr.InvalidField("colors_per_row", fmt.Sprintf("must be at least 1, got %d", c.ColorsPerRow))
	}
	if c.RowLimit() < 0 {
		return cberr.InvalidField("history_row_limit", fmt.Sprintf("must not be negative, got %d", c.RowLimit()))
	}
	return nil
}

// Overlay copies every setting present in over onto c.
func (c *Config) Overlay(over *Config) {
	if over == nil {
		return
	}
	if over.Colors != "" {
		c.Colors = over.Colors
	}
	if over.ColorsPerRow != 0 {
		c.ColorsPerRow = over.ColorsPerRow
	}
	if over.HistoryRowLimit != nil {
		v := *over.HistoryRowLimit
		c.HistoryRowLimit = &v
	}
	if over.EnableMore != nil {
		v := *over.EnableMore
		c.EnableMore = &v
	}
	if over.EnableAutomatic != nil {
		v := *over.EnableAutomatic
		c.EnableAutomatic = &v
	}
	if over.NormalizeBackground != nil {
		v := *over.NormalizeBackground
		c.NormalizeBackground = &v
	}
	if over.ForeStyle.Element != "" {
		c.ForeStyle.Element = over.ForeStyle.Element
	}
	if over.BackStyle.Element != "" {
		c.BackStyle.Element = over.BackStyle.Element
	}
	if over.Editor != "" {
		c.Editor = over.Editor
	}
}
