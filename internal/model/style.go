package model

import "fmt"

// StyleType identifies which color a button controls.
type StyleType string

const (
	StyleFore StyleType = "fore"
	StyleBack StyleType = "back"
)

// CSS properties driven by the two buttons.
const (
	PropertyColor           = "color"
	PropertyBackgroundColor = "background-color"
)

// AutomaticValue is the style value used to clear a color back to its inherited value.
const AutomaticValue = "inherit"

// ParseStyleType parses "fore"/"back" (and the aliases "text"/"bg").
func ParseStyleType(s string) (StyleType, error) {
	switch s {
	case "fore", "text", "":
		return StyleFore, nil
	case "back", "bg":
		return StyleBack, nil
	}
	return "", fmt.Errorf("unknown style type %q (expected fore or back)", s)
}

// CSSProperty returns the CSS property the button edits.
func (t StyleType) CSSProperty() string {
	if t == StyleBack {
		return PropertyBackgroundColor
	}
	return PropertyColor
}

// CommandName returns the editor command name for the button.
func (t StyleType) CommandName() string {
	if t == StyleBack {
		return "bgColor"
	}
	return "textColor"
}

// Title returns the button title.
func (t StyleType) Title() string {
	if t == StyleBack {
		return "Background Color"
	}
	return "Text Color"
}

// StyleTypes lists both button types in toolbar order.
func StyleTypes() []StyleType {
	return []StyleType{StyleFore, StyleBack}
}

// StyleDescriptor is a CSS-property-keyed style applied to or removed from the selection.
type StyleDescriptor struct {
	Element  string `json:"element"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

// IsAutomatic reports whether the descriptor resets the color to its inherited value.
func (d StyleDescriptor) IsAutomatic() bool {
	return d.Value == AutomaticValue
}
