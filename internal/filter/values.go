package filter

import "github.com/lexfield/liftkit/core/lexicon"

// keyValues gathers every value an entry carries for a key. Sense-scoped
// keys include subsenses.
func keyValues(key string, e *lexicon.Entry) []string {
	kind, name := splitKey(key)
	switch kind {
	case "id":
		if e.ID == "" {
			return nil
		}
		return []string{e.ID}
	case "lexeme":
		return texts(e.LexicalUnit)
	case "citation":
		return texts(e.CitationForm)
	case "gloss":
		var out []string
		eachSense(e.Senses, func(s *lexicon.Sense) {
			out = append(out, texts(s.Gloss)...)
		})
		return out
	case "definition":
		var out []string
		eachSense(e.Senses, func(s *lexicon.Sense) {
			out = append(out, texts(s.Definition)...)
		})
		return out
	case "pos":
		var out []string
		if e.GrammaticalInfo != nil {
			out = append(out, e.GrammaticalInfo.Value)
		}
		eachSense(e.Senses, func(s *lexicon.Sense) {
			if s.GrammaticalInfo != nil {
				out = append(out, s.GrammaticalInfo.Value)
			}
		})
		return out
	case "trait":
		var out []string
		collect := func(ts []lexicon.Trait) {
			for _, t := range ts {
				if t.Name == name {
					out = append(out, t.Value)
				}
			}
		}
		collect(e.Traits)
		for _, v := range e.Variants {
			collect(v.Traits)
		}
		for _, r := range e.Relations {
			collect(r.Traits)
		}
		eachSense(e.Senses, func(s *lexicon.Sense) {
			collect(s.Traits)
			for _, r := range s.Relations {
				collect(r.Traits)
			}
		})
		return out
	case "field":
		var out []string
		collect := func(fs []lexicon.Field) {
			for _, f := range fs {
				if f.Type == name {
					out = append(out, texts(f.Content)...)
				}
			}
		}
		collect(e.Fields)
		eachSense(e.Senses, func(s *lexicon.Sense) {
			collect(s.Fields)
		})
		return out
	}
	return nil
}

func texts(mt lexicon.Multitext) []string {
	if mt.IsEmpty() {
		return nil
	}
	out := make([]string, len(mt))
	for i, lt := range mt {
		out[i] = lt.Text
	}
	return out
}

func eachSense(senses []*lexicon.Sense, fn func(*lexicon.Sense)) {
	for _, s := range senses {
		fn(s)
		eachSense(s.Subsenses, fn)
	}
}
