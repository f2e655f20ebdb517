package cli

import (
	"reflect"
	"testing"
)

func TestDocumentFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional", []string{"colorbox", "pick", "page.html", "--select", "a"}, "page.html"},
		{"after flags", []string{"colorbox", "pick", "-t", "back", "docs/Index.HTM"}, "docs/Index.HTM"},
		{"flag value skipped", []string{"colorbox", "pick", "--select=x.html"}, ""},
		{"no document", []string{"colorbox", "palette"}, ""},
		{"empty args", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documentFromArgs(tt.args); got != tt.want {
				t.Errorf("documentFromArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompleteStyleTypes(t *testing.T) {
	got, _ := completeStyleTypes("b")
	if !reflect.DeepEqual(got, []string{"back"}) {
		t.Errorf("completeStyleTypes(b) = %v, want [back]", got)
	}

	got, _ = completeStyleTypes("")
	if !reflect.DeepEqual(got, []string{"fore", "back"}) {
		t.Errorf("completeStyleTypes() = %v, want [fore back]", got)
	}
}
