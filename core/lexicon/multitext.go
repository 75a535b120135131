package lexicon

// LangText is a single language-tagged text value within a Multitext.
type LangText struct {
	// Lang is the BCP-47 language tag (e.g., "en", "seh-fonipa").
	Lang string `json:"lang"`

	// Text is the literal text content in that language.
	Text string `json:"text"`
}

// Multitext maps language tags to literal text. It is stored as an ordered
// sequence with unique language keys: insertion order is preserved for
// deterministic regeneration but is irrelevant for equality. Setting an
// existing language overwrites its text in place (last-wins).
//
// The zero value is an empty mapping and is ready to use; "has no content"
// is always represented by emptiness, never by a nil sentinel.
type Multitext []LangText

// NewMultitext creates a Multitext with a single language/text pair.
func NewMultitext(lang, text string) Multitext {
	return Multitext{{Lang: lang, Text: text}}
}

// Set stores text under the given language tag. If the tag is already
// present its text is overwritten and its position kept.
func (m *Multitext) Set(lang, text string) {
	for i := range *m {
		if (*m)[i].Lang == lang {
			(*m)[i].Text = text
			return
		}
	}
	*m = append(*m, LangText{Lang: lang, Text: text})
}

// Get returns the text for a language tag and whether it is present.
func (m Multitext) Get(lang string) (string, bool) {
	for _, lt := range m {
		if lt.Lang == lang {
			return lt.Text, true
		}
	}
	return "", false
}

// Text returns the text for a language tag, or "" if absent.
func (m Multitext) Text(lang string) string {
	text, _ := m.Get(lang)
	return text
}

// First returns the first language/text pair, or zero values when empty.
// Useful for headword display where any writing system will do.
func (m Multitext) First() (lang, text string) {
	if len(m) == 0 {
		return "", ""
	}
	return m[0].Lang, m[0].Text
}

// Langs returns the language tags in insertion order.
func (m Multitext) Langs() []string {
	if len(m) == 0 {
		return nil
	}
	langs := make([]string, len(m))
	for i, lt := range m {
		langs[i] = lt.Lang
	}
	return langs
}

// Len returns the number of language entries.
func (m Multitext) Len() int {
	return len(m)
}

// IsEmpty reports whether the Multitext has no content.
func (m Multitext) IsEmpty() bool {
	return len(m) == 0
}

// Equal reports whether two Multitexts carry the same language/text pairs,
// ignoring insertion order.
func (m Multitext) Equal(other Multitext) bool {
	if len(m) != len(other) {
		return false
	}
	for _, lt := range m {
		text, ok := other.Get(lt.Lang)
		if !ok || text != lt.Text {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (m Multitext) Clone() Multitext {
	if m == nil {
		return nil
	}
	out := make(Multitext, len(m))
	copy(out, m)
	return out
}
