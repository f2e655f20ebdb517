package id

import (
	"strings"
	"time"

	fid "github.com/amterp/flexid"
)

// SessionPrefix marks ids handed out to panel server sessions.
const SessionPrefix = "s_"

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique ID.
func Generate() string {
	return generator.MustGenerate()
}

// NewSession returns a new session ID.
func NewSession() string {
	return SessionPrefix + Generate()
}

// IsSession reports whether s looks like a session ID.
func IsSession(s string) bool {
	return strings.HasPrefix(s, SessionPrefix) && len(s) > len(SessionPrefix)
}
