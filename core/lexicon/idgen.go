package lexicon

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// idgen.go - host-side identifier generation for newly created entries and
// senses. The codec itself never invents ids during generation; ids are
// assigned here, explicitly, before a document is handed to the generator.

// NewEntryID returns a new entry id in the producer-conventional form
// "headword_guid". The headword part is normalized to a safe token; an
// empty headword yields a bare guid.
func NewEntryID(headword string) string {
	token := idToken(headword)
	if token == "" {
		return uuid.NewString()
	}
	return token + "_" + uuid.NewString()
}

// NewSenseID returns a new sense id.
func NewSenseID() string {
	return uuid.NewString()
}

// NewGUID returns a new entry guid.
func NewGUID() string {
	return uuid.NewString()
}

// idToken normalizes a headword for use inside an id: letters, digits and
// hyphens kept, runs of anything else collapsed to single underscores.
func idToken(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
