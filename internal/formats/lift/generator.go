package lift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lexfield/liftkit/core/encoding"
	"github.com/lexfield/liftkit/core/errors"
	"github.com/lexfield/liftkit/core/lexicon"
)

// Generate serializes the document model to LIFT 0.13 XML. Output is
// deterministic: fixed element order within each construct, fixed attribute
// order, stable indentation. Equal documents always produce byte-identical
// output, which makes the serialization usable as a canonical form for
// fingerprinting and diffing.
//
// Singular multitext containers (lexical-unit, citation, definition,
// description) are omitted entirely when empty. List members the model
// carries (notes, variants, relations) are always emitted, self-closing when
// they have no content, so the model and its serialization stay inverses.
//
// Every entry must carry a non-empty id. A missing id is a caller bug and
// fails generation; ids are never synthesized here.
func Generate(doc *lexicon.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, errors.NewPrecondition("document", "nil document")
	}
	for i, e := range doc.Entries {
		if e == nil {
			return nil, errors.NewPrecondition("entry", fmt.Sprintf("entry %d is nil", i))
		}
		if e.ID == "" {
			return nil, errors.NewPrecondition("entry", fmt.Sprintf("entry %d has no id", i))
		}
	}

	g := &gen{indent: opts.Indent}
	if g.indent == "" {
		g.indent = "  "
	}

	g.b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	open := `<lift xmlns="` + Namespace + `" version="` + Version + `"`
	if doc.Header.IsEmpty() && len(doc.Entries) == 0 && len(doc.Raw) == 0 {
		g.b.WriteString(open + "/>\n")
		return []byte(g.b.String()), nil
	}
	g.b.WriteString(open + ">\n")

	if !doc.Header.IsEmpty() {
		g.header(1, doc.Header)
	}
	for _, e := range doc.Entries {
		g.entry(1, e)
	}
	for _, raw := range doc.Raw {
		g.line(1, raw)
	}

	g.b.WriteString("</lift>\n")
	return []byte(g.b.String()), nil
}

// gen accumulates indented XML lines.
type gen struct {
	b      strings.Builder
	indent string
}

func (g *gen) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		g.b.WriteString(g.indent)
	}
	g.b.WriteString(s)
	g.b.WriteByte('\n')
}

// attr renders a single attribute with a leading space.
func attr(name, value string) string {
	return " " + name + `="` + encoding.EscapeXMLAttr(value) + `"`
}

func (g *gen) entry(depth int, e *lexicon.Entry) {
	attrs := attr("id", e.ID)
	if e.DateCreated != "" {
		attrs += attr("dateCreated", e.DateCreated)
	}
	if e.DateModified != "" {
		attrs += attr("dateModified", e.DateModified)
	}
	if e.GUID != "" {
		attrs += attr("guid", e.GUID)
	}
	if e.Order != nil {
		attrs += attr("order", strconv.Itoa(*e.Order))
	}

	if entryEmpty(e) {
		g.line(depth, "<entry"+attrs+"/>")
		return
	}
	g.line(depth, "<entry"+attrs+">")
	g.wrapped(depth+1, "lexical-unit", "", e.LexicalUnit)
	g.wrapped(depth+1, "citation", "", e.CitationForm)
	g.grammaticalInfo(depth+1, e.GrammaticalInfo)
	for _, p := range e.Pronunciations {
		g.pronunciation(depth+1, p)
	}
	for _, s := range e.Senses {
		g.sense(depth+1, "sense", s)
	}
	for _, v := range e.Variants {
		g.variant(depth+1, v)
	}
	for _, r := range e.Relations {
		g.relation(depth+1, r)
	}
	for _, f := range e.Fields {
		g.field(depth+1, f)
	}
	for _, n := range e.Notes {
		g.note(depth+1, n)
	}
	for _, t := range e.Traits {
		g.trait(depth+1, t)
	}
	for _, et := range e.Etymologies {
		g.etymology(depth+1, et)
	}
	for _, raw := range e.Raw {
		g.line(depth+1, raw)
	}
	g.line(depth, "</entry>")
}

func entryEmpty(e *lexicon.Entry) bool {
	return e.LexicalUnit.IsEmpty() && e.CitationForm.IsEmpty() &&
		e.GrammaticalInfo == nil &&
		len(e.Pronunciations) == 0 && len(e.Senses) == 0 &&
		len(e.Variants) == 0 && len(e.Relations) == 0 &&
		len(e.Fields) == 0 && len(e.Notes) == 0 &&
		len(e.Traits) == 0 && len(e.Etymologies) == 0 &&
		len(e.Raw) == 0
}

// sense also serves subsenses; name selects the element.
func (g *gen) sense(depth int, name string, s *lexicon.Sense) {
	attrs := ""
	if s.ID != "" {
		attrs += attr("id", s.ID)
	}
	if s.Order != nil {
		attrs += attr("order", strconv.Itoa(*s.Order))
	}

	if senseEmpty(s) {
		g.line(depth, "<"+name+attrs+"/>")
		return
	}
	g.line(depth, "<"+name+attrs+">")
	g.grammaticalInfo(depth+1, s.GrammaticalInfo)
	g.glosses(depth+1, s.Gloss)
	g.wrapped(depth+1, "definition", "", s.Definition)
	for _, r := range s.Relations {
		g.relation(depth+1, r)
	}
	for _, ex := range s.Examples {
		g.example(depth+1, ex)
	}
	for _, f := range s.Fields {
		g.field(depth+1, f)
	}
	for _, t := range s.Traits {
		g.trait(depth+1, t)
	}
	for _, n := range s.Notes {
		g.note(depth+1, n)
	}
	for _, sub := range s.Subsenses {
		g.sense(depth+1, "subsense", sub)
	}
	for _, raw := range s.Raw {
		g.line(depth+1, raw)
	}
	g.line(depth, "</"+name+">")
}

func senseEmpty(s *lexicon.Sense) bool {
	return s.GrammaticalInfo == nil && s.Gloss.IsEmpty() &&
		s.Definition.IsEmpty() &&
		len(s.Relations) == 0 && len(s.Examples) == 0 &&
		len(s.Fields) == 0 && len(s.Traits) == 0 &&
		len(s.Notes) == 0 && len(s.Subsenses) == 0 &&
		len(s.Raw) == 0
}

func (g *gen) variant(depth int, v lexicon.Variant) {
	if v.Form.IsEmpty() && len(v.Traits) == 0 && len(v.Fields) == 0 {
		g.line(depth, "<variant/>")
		return
	}
	g.line(depth, "<variant>")
	g.forms(depth+1, v.Form)
	for _, t := range v.Traits {
		g.trait(depth+1, t)
	}
	for _, f := range v.Fields {
		g.field(depth+1, f)
	}
	g.line(depth, "</variant>")
}

func (g *gen) relation(depth int, r lexicon.Relation) {
	attrs := attr("type", r.Type) + attr("ref", r.Ref)
	if r.Order != nil {
		attrs += attr("order", strconv.Itoa(*r.Order))
	}
	if len(r.Traits) == 0 && len(r.Fields) == 0 {
		g.line(depth, "<relation"+attrs+"/>")
		return
	}
	g.line(depth, "<relation"+attrs+">")
	for _, t := range r.Traits {
		g.trait(depth+1, t)
	}
	for _, f := range r.Fields {
		g.field(depth+1, f)
	}
	g.line(depth, "</relation>")
}

func (g *gen) pronunciation(depth int, p lexicon.Pronunciation) {
	if p.Form.IsEmpty() && len(p.Media) == 0 && len(p.Fields) == 0 && len(p.Traits) == 0 {
		g.line(depth, "<pronunciation/>")
		return
	}
	g.line(depth, "<pronunciation>")
	g.forms(depth+1, p.Form)
	for _, m := range p.Media {
		g.media(depth+1, m)
	}
	for _, f := range p.Fields {
		g.field(depth+1, f)
	}
	for _, t := range p.Traits {
		g.trait(depth+1, t)
	}
	g.line(depth, "</pronunciation>")
}

func (g *gen) media(depth int, m lexicon.Media) {
	attrs := attr("href", m.Href)
	if m.Label.IsEmpty() {
		g.line(depth, "<media"+attrs+"/>")
		return
	}
	g.line(depth, "<media"+attrs+">")
	g.wrapped(depth+1, "label", "", m.Label)
	g.line(depth, "</media>")
}

func (g *gen) example(depth int, ex lexicon.Example) {
	attrs := ""
	if ex.Source != "" {
		attrs += attr("source", ex.Source)
	}
	if ex.Form.IsEmpty() && len(ex.Translations) == 0 && len(ex.Fields) == 0 && len(ex.Traits) == 0 {
		g.line(depth, "<example"+attrs+"/>")
		return
	}
	g.line(depth, "<example"+attrs+">")
	g.forms(depth+1, ex.Form)
	for _, tr := range ex.Translations {
		g.member(depth+1, "translation", typeAttr(tr.Type), tr.Content)
	}
	for _, f := range ex.Fields {
		g.field(depth+1, f)
	}
	for _, t := range ex.Traits {
		g.trait(depth+1, t)
	}
	g.line(depth, "</example>")
}

func (g *gen) etymology(depth int, et lexicon.Etymology) {
	attrs := ""
	if et.Type != "" {
		attrs += attr("type", et.Type)
	}
	if et.Source != "" {
		attrs += attr("source", et.Source)
	}
	if et.Form.IsEmpty() && et.Gloss.IsEmpty() && len(et.Fields) == 0 {
		g.line(depth, "<etymology"+attrs+"/>")
		return
	}
	g.line(depth, "<etymology"+attrs+">")
	g.forms(depth+1, et.Form)
	g.glosses(depth+1, et.Gloss)
	for _, f := range et.Fields {
		g.field(depth+1, f)
	}
	g.line(depth, "</etymology>")
}

func (g *gen) field(depth int, f lexicon.Field) {
	attrs := typeAttr(f.Type)
	if f.Content.IsEmpty() && len(f.Traits) == 0 {
		g.line(depth, "<field"+attrs+"/>")
		return
	}
	g.line(depth, "<field"+attrs+">")
	g.forms(depth+1, f.Content)
	for _, t := range f.Traits {
		g.trait(depth+1, t)
	}
	g.line(depth, "</field>")
}

func (g *gen) note(depth int, n lexicon.Note) {
	g.member(depth, "note", typeAttr(n.Type), n.Content)
}

func (g *gen) trait(depth int, t lexicon.Trait) {
	g.line(depth, "<trait"+attr("name", t.Name)+attr("value", t.Value)+"/>")
}

func (g *gen) grammaticalInfo(depth int, gi *lexicon.GrammaticalInfo) {
	if gi == nil {
		return
	}
	attrs := attr("value", gi.Value)
	if len(gi.Traits) == 0 {
		g.line(depth, "<grammatical-info"+attrs+"/>")
		return
	}
	g.line(depth, "<grammatical-info"+attrs+">")
	for _, t := range gi.Traits {
		g.trait(depth+1, t)
	}
	g.line(depth, "</grammatical-info>")
}

// wrapped emits a multitext wrapper element. A wrapper with no attributes
// and no content is omitted entirely; with attributes it self-closes so the
// attributes survive the round trip.
func (g *gen) wrapped(depth int, name, attrs string, mt lexicon.Multitext) {
	if mt.IsEmpty() {
		if attrs == "" {
			return
		}
		g.line(depth, "<"+name+attrs+"/>")
		return
	}
	g.line(depth, "<"+name+attrs+">")
	g.forms(depth+1, mt)
	g.line(depth, "</"+name+">")
}

// member emits a list-member multitext wrapper. Unlike wrapped, an empty
// member is still emitted self-closing: the model carries it, so the
// serialization must too.
func (g *gen) member(depth int, name, attrs string, mt lexicon.Multitext) {
	if mt.IsEmpty() {
		g.line(depth, "<"+name+attrs+"/>")
		return
	}
	g.line(depth, "<"+name+attrs+">")
	g.forms(depth+1, mt)
	g.line(depth, "</"+name+">")
}

// forms emits the form children of a multitext, one line each, preserving
// language order.
func (g *gen) forms(depth int, mt lexicon.Multitext) {
	for _, lt := range mt {
		g.line(depth, "<form"+attr("lang", lt.Lang)+"><text>"+
			encoding.EscapeXMLText(lt.Text)+"</text></form>")
	}
}

func (g *gen) glosses(depth int, mt lexicon.Multitext) {
	for _, lt := range mt {
		g.line(depth, "<gloss"+attr("lang", lt.Lang)+"><text>"+
			encoding.EscapeXMLText(lt.Text)+"</text></gloss>")
	}
}

func typeAttr(v string) string {
	if v == "" {
		return ""
	}
	return attr("type", v)
}
