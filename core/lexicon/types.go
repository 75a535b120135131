package lexicon

// types.go - Consolidated document model type definitions.
// All codec components import these types from core/lexicon rather than
// defining their own.

// Trait is an open name/value annotation. Traits attach to entries, senses,
// variants, relations, grammatical-info, and fields; unknown names are
// preserved verbatim.
type Trait struct {
	// Name is the trait name (e.g., "morph-type", "variant-type").
	Name string `json:"name"`

	// Value is the trait value (e.g., "stem", "informal").
	Value string `json:"value"`
}

// Equal reports field-by-field equality.
func (t Trait) Equal(other Trait) bool {
	return t.Name == other.Name && t.Value == other.Value
}

// Field is an open, possibly multilingual, typed extension value.
// Duplicate types may occur on one parent and are preserved in order.
type Field struct {
	// Type is the field type tag (e.g., "cv-pattern", "literal-meaning").
	// Unknown types are preserved verbatim.
	Type string `json:"type"`

	// Content is the multilingual field content.
	Content Multitext `json:"content,omitempty"`

	// Traits are annotations attached to this field occurrence.
	Traits []Trait `json:"traits,omitempty"`
}

// Equal reports field-by-field equality.
func (f Field) Equal(other Field) bool {
	return f.Type == other.Type &&
		f.Content.Equal(other.Content) &&
		traitsEqual(f.Traits, other.Traits)
}

// Clone returns an independent copy.
func (f Field) Clone() Field {
	return Field{
		Type:    f.Type,
		Content: f.Content.Clone(),
		Traits:  cloneTraits(f.Traits),
	}
}

// GrammaticalInfo is a part-of-speech tag with optional traits.
// A nil *GrammaticalInfo means the parent carries none.
type GrammaticalInfo struct {
	// Value is the part-of-speech value (validated against the
	// grammatical-info range when ranges are loaded).
	Value string `json:"value"`

	// Traits are annotations scoped to the grammatical info, distinct
	// from traits on the owning entry, sense, or variant.
	Traits []Trait `json:"traits,omitempty"`
}

// Equal reports equality, treating two nils as equal.
func (g *GrammaticalInfo) Equal(other *GrammaticalInfo) bool {
	if g == nil || other == nil {
		return g == nil && other == nil
	}
	return g.Value == other.Value && traitsEqual(g.Traits, other.Traits)
}

// Clone returns an independent copy, or nil for nil.
func (g *GrammaticalInfo) Clone() *GrammaticalInfo {
	if g == nil {
		return nil
	}
	return &GrammaticalInfo{Value: g.Value, Traits: cloneTraits(g.Traits)}
}

// Relation is a cross-entry reference. The type vocabulary is open: standard
// types ("synonym", "antonym") and private underscore-prefixed types
// ("_component-lexeme") are treated identically, including trait handling.
type Relation struct {
	// Type is the relation type (open vocabulary).
	Type string `json:"type"`

	// Ref is the id of the target entry or sense. Dangling refs are
	// tolerated and round-trip unchanged.
	Ref string `json:"ref"`

	// Order is the optional position among sibling relations of one type.
	Order *int `json:"order,omitempty"`

	// Traits are annotations on this relation (e.g., variant-type on a
	// _component-lexeme relation).
	Traits []Trait `json:"traits,omitempty"`

	// Fields are typed extension values on this relation.
	Fields []Field `json:"fields,omitempty"`
}

// Equal reports field-by-field equality.
func (r Relation) Equal(other Relation) bool {
	return r.Type == other.Type &&
		r.Ref == other.Ref &&
		intPtrEqual(r.Order, other.Order) &&
		traitsEqual(r.Traits, other.Traits) &&
		fieldsEqual(r.Fields, other.Fields)
}

// Clone returns an independent copy.
func (r Relation) Clone() Relation {
	return Relation{
		Type:   r.Type,
		Ref:    r.Ref,
		Order:  cloneIntPtr(r.Order),
		Traits: cloneTraits(r.Traits),
		Fields: cloneFields(r.Fields),
	}
}

// VariantLabel returns the target reference for uniform display of
// variant-typed relations alongside inline variants.
func (r Relation) VariantLabel() string {
	return r.Ref
}

// VariantTraits returns the relation's traits.
func (r Relation) VariantTraits() []Trait {
	return r.Traits
}

// Media is a reference to an external media file on a pronunciation.
type Media struct {
	// Href is the file reference.
	Href string `json:"href"`

	// Label is an optional multilingual caption.
	Label Multitext `json:"label,omitempty"`
}

// Equal reports field-by-field equality.
func (m Media) Equal(other Media) bool {
	return m.Href == other.Href && m.Label.Equal(other.Label)
}

// Pronunciation is a phonetic or orthographic rendering of an entry.
// Open extension data such as cv-pattern and tone ride along as Fields
// rather than bespoke attributes.
type Pronunciation struct {
	// Form is the pronunciation content keyed by writing system
	// (e.g., "seh-fonipa" for IPA).
	Form Multitext `json:"form,omitempty"`

	// Media are references to audio files.
	Media []Media `json:"media,omitempty"`

	// Fields are typed extension values (cv-pattern, tone, ...).
	Fields []Field `json:"fields,omitempty"`

	// Traits are annotations on the pronunciation.
	Traits []Trait `json:"traits,omitempty"`
}

// Equal reports field-by-field equality.
func (p Pronunciation) Equal(other Pronunciation) bool {
	if !p.Form.Equal(other.Form) || !fieldsEqual(p.Fields, other.Fields) || !traitsEqual(p.Traits, other.Traits) {
		return false
	}
	if len(p.Media) != len(other.Media) {
		return false
	}
	for i := range p.Media {
		if !p.Media[i].Equal(other.Media[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (p Pronunciation) Clone() Pronunciation {
	out := Pronunciation{
		Form:   p.Form.Clone(),
		Fields: cloneFields(p.Fields),
		Traits: cloneTraits(p.Traits),
	}
	if p.Media != nil {
		out.Media = make([]Media, len(p.Media))
		for i, m := range p.Media {
			out.Media[i] = Media{Href: m.Href, Label: m.Label.Clone()}
		}
	}
	return out
}

// Variant is an inline allomorph embedded in an entry: form content plus its
// own trait set (morph-type, environment, ...). Variant-typed cross-entry
// references are a different LIFT construct and stay Relations; the two
// shapes are never merged.
type Variant struct {
	// Form is the alternate surface form.
	Form Multitext `json:"form,omitempty"`

	// Traits are annotations attached directly to the variant, distinct
	// from any grammatical-info traits.
	Traits []Trait `json:"traits,omitempty"`

	// Fields are typed extension values on the variant.
	Fields []Field `json:"fields,omitempty"`
}

// Equal reports field-by-field equality.
func (v Variant) Equal(other Variant) bool {
	return v.Form.Equal(other.Form) &&
		traitsEqual(v.Traits, other.Traits) &&
		fieldsEqual(v.Fields, other.Fields)
}

// Clone returns an independent copy.
func (v Variant) Clone() Variant {
	return Variant{
		Form:   v.Form.Clone(),
		Traits: cloneTraits(v.Traits),
		Fields: cloneFields(v.Fields),
	}
}

// VariantLabel returns the variant's first form text for uniform display.
func (v Variant) VariantLabel() string {
	_, text := v.Form.First()
	return text
}

// VariantTraits returns the variant's traits.
func (v Variant) VariantTraits() []Trait {
	return v.Traits
}

// VariantLike is implemented by both variant shapes (inline Variant and
// variant-typed Relation) so hosts can enumerate them uniformly without the
// model conflating their distinct serialization shapes.
type VariantLike interface {
	VariantLabel() string
	VariantTraits() []Trait
}

// Note is a typed multilingual annotation on an entry or sense.
type Note struct {
	// Type is the note type ("" for the general note).
	Type string `json:"type,omitempty"`

	// Content is the note text.
	Content Multitext `json:"content,omitempty"`
}

// Equal reports field-by-field equality.
func (n Note) Equal(other Note) bool {
	return n.Type == other.Type && n.Content.Equal(other.Content)
}

// Translation is one translation of an example sentence.
type Translation struct {
	// Type is the translation type (e.g., "Free translation"), "" if untyped.
	Type string `json:"type,omitempty"`

	// Content is the translated text.
	Content Multitext `json:"content,omitempty"`
}

// Equal reports field-by-field equality.
func (tr Translation) Equal(other Translation) bool {
	return tr.Type == other.Type && tr.Content.Equal(other.Content)
}

// Example is a usage example under a sense.
type Example struct {
	// Source is the attribution for the example, if any.
	Source string `json:"source,omitempty"`

	// Form is the example text in the vernacular.
	Form Multitext `json:"form,omitempty"`

	// Translations are the translations of the example.
	Translations []Translation `json:"translations,omitempty"`

	// Fields are typed extension values on the example.
	Fields []Field `json:"fields,omitempty"`

	// Traits are annotations on the example.
	Traits []Trait `json:"traits,omitempty"`
}

// Equal reports field-by-field equality.
func (e Example) Equal(other Example) bool {
	if e.Source != other.Source || !e.Form.Equal(other.Form) {
		return false
	}
	if len(e.Translations) != len(other.Translations) {
		return false
	}
	for i := range e.Translations {
		if !e.Translations[i].Equal(other.Translations[i]) {
			return false
		}
	}
	return fieldsEqual(e.Fields, other.Fields) && traitsEqual(e.Traits, other.Traits)
}

// Etymology is a historical source note on an entry.
type Etymology struct {
	// Type is the etymology type (e.g., "proto", "borrowed").
	Type string `json:"type,omitempty"`

	// Source names the source language or lexicon.
	Source string `json:"source,omitempty"`

	// Form is the source form.
	Form Multitext `json:"form,omitempty"`

	// Gloss is the source gloss.
	Gloss Multitext `json:"gloss,omitempty"`

	// Fields are typed extension values on the etymology.
	Fields []Field `json:"fields,omitempty"`
}

// Equal reports field-by-field equality.
func (e Etymology) Equal(other Etymology) bool {
	return e.Type == other.Type &&
		e.Source == other.Source &&
		e.Form.Equal(other.Form) &&
		e.Gloss.Equal(other.Gloss) &&
		fieldsEqual(e.Fields, other.Fields)
}

// Sense is one meaning of an entry. A sense is exclusively owned by its
// entry (or parent sense, for subsenses).
type Sense struct {
	// ID is the sense identifier. It may be absent; an absent id is kept
	// absent through a round trip, never silently synthesized.
	ID string `json:"id,omitempty"`

	// Order is the optional position among sibling senses.
	Order *int `json:"order,omitempty"`

	// GrammaticalInfo is the part-of-speech tag, nil if absent.
	GrammaticalInfo *GrammaticalInfo `json:"grammatical_info,omitempty"`

	// Gloss is the short interlinear gloss keyed by language.
	Gloss Multitext `json:"gloss,omitempty"`

	// Definition is the full definition keyed by language.
	Definition Multitext `json:"definition,omitempty"`

	// Relations are cross-references scoped to this sense.
	Relations []Relation `json:"relations,omitempty"`

	// Examples are usage examples.
	Examples []Example `json:"examples,omitempty"`

	// Fields are typed extension values.
	Fields []Field `json:"fields,omitempty"`

	// Traits are open annotations (semantic-domain, usage-type, ...).
	Traits []Trait `json:"traits,omitempty"`

	// Notes are typed notes on the sense.
	Notes []Note `json:"notes,omitempty"`

	// Subsenses are nested senses.
	Subsenses []*Sense `json:"subsenses,omitempty"`

	// Raw holds verbatim XML of unmodeled child elements when parsing in
	// lossless mode. Empty in known-subset mode.
	Raw []string `json:"raw,omitempty"`
}

// Equal reports field-by-field equality, including subsenses.
func (s *Sense) Equal(other *Sense) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	if s.ID != other.ID ||
		!intPtrEqual(s.Order, other.Order) ||
		!s.GrammaticalInfo.Equal(other.GrammaticalInfo) ||
		!s.Gloss.Equal(other.Gloss) ||
		!s.Definition.Equal(other.Definition) ||
		!relationsEqual(s.Relations, other.Relations) ||
		!fieldsEqual(s.Fields, other.Fields) ||
		!traitsEqual(s.Traits, other.Traits) ||
		!notesEqual(s.Notes, other.Notes) ||
		!rawEqual(s.Raw, other.Raw) {
		return false
	}
	if len(s.Examples) != len(other.Examples) {
		return false
	}
	for i := range s.Examples {
		if !s.Examples[i].Equal(other.Examples[i]) {
			return false
		}
	}
	if len(s.Subsenses) != len(other.Subsenses) {
		return false
	}
	for i := range s.Subsenses {
		if !s.Subsenses[i].Equal(other.Subsenses[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (s *Sense) Clone() *Sense {
	if s == nil {
		return nil
	}
	out := &Sense{
		ID:              s.ID,
		Order:           cloneIntPtr(s.Order),
		GrammaticalInfo: s.GrammaticalInfo.Clone(),
		Gloss:           s.Gloss.Clone(),
		Definition:      s.Definition.Clone(),
		Fields:          cloneFields(s.Fields),
		Traits:          cloneTraits(s.Traits),
	}
	if s.Relations != nil {
		out.Relations = make([]Relation, len(s.Relations))
		for i, r := range s.Relations {
			out.Relations[i] = r.Clone()
		}
	}
	if s.Examples != nil {
		out.Examples = make([]Example, len(s.Examples))
		for i, e := range s.Examples {
			ex := Example{Source: e.Source, Form: e.Form.Clone(), Fields: cloneFields(e.Fields), Traits: cloneTraits(e.Traits)}
			if e.Translations != nil {
				ex.Translations = make([]Translation, len(e.Translations))
				for j, tr := range e.Translations {
					ex.Translations[j] = Translation{Type: tr.Type, Content: tr.Content.Clone()}
				}
			}
			out.Examples[i] = ex
		}
	}
	if s.Notes != nil {
		out.Notes = make([]Note, len(s.Notes))
		for i, n := range s.Notes {
			out.Notes[i] = Note{Type: n.Type, Content: n.Content.Clone()}
		}
	}
	if s.Subsenses != nil {
		out.Subsenses = make([]*Sense, len(s.Subsenses))
		for i, sub := range s.Subsenses {
			out.Subsenses[i] = sub.Clone()
		}
	}
	if s.Raw != nil {
		out.Raw = append([]string(nil), s.Raw...)
	}
	return out
}

// Entry is a single lexical entry, the top-level aggregate of a lexicon
// document. The id is the join key for relation refs across the document.
type Entry struct {
	// ID is the entry identifier. Required and non-empty.
	ID string `json:"id"`

	// GUID is the producer-assigned globally unique id, passed through.
	GUID string `json:"guid,omitempty"`

	// Order is the optional homograph order.
	Order *int `json:"order,omitempty"`

	// DateCreated is an opaque timestamp passed through unchanged.
	DateCreated string `json:"date_created,omitempty"`

	// DateModified is an opaque timestamp passed through unchanged.
	DateModified string `json:"date_modified,omitempty"`

	// LexicalUnit is the headword keyed by writing system.
	LexicalUnit Multitext `json:"lexical_unit,omitempty"`

	// CitationForm is the optional citation form.
	CitationForm Multitext `json:"citation_form,omitempty"`

	// GrammaticalInfo is an optional entry-level part-of-speech tag,
	// nil if absent.
	GrammaticalInfo *GrammaticalInfo `json:"grammatical_info,omitempty"`

	// Pronunciations are phonetic renderings.
	Pronunciations []Pronunciation `json:"pronunciations,omitempty"`

	// Variants are inline allomorphs.
	Variants []Variant `json:"variants,omitempty"`

	// Senses are the meanings of this entry, exclusively owned.
	Senses []*Sense `json:"senses,omitempty"`

	// Notes are typed notes on the entry.
	Notes []Note `json:"notes,omitempty"`

	// Relations are entry-scope cross-references.
	Relations []Relation `json:"relations,omitempty"`

	// Etymologies are historical source notes.
	Etymologies []Etymology `json:"etymologies,omitempty"`

	// Fields are typed extension values.
	Fields []Field `json:"fields,omitempty"`

	// Traits are open annotations.
	Traits []Trait `json:"traits,omitempty"`

	// Raw holds verbatim XML of unmodeled child elements when parsing in
	// lossless mode. Empty in known-subset mode.
	Raw []string `json:"raw,omitempty"`
}

// Headword returns a display form for the entry: the first lexical-unit
// text, falling back to the citation form, then the id.
func (e *Entry) Headword() string {
	if _, text := e.LexicalUnit.First(); text != "" {
		return text
	}
	if _, text := e.CitationForm.First(); text != "" {
		return text
	}
	return e.ID
}

// Equal reports field-by-field equality.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	if e.ID != other.ID ||
		e.GUID != other.GUID ||
		!intPtrEqual(e.Order, other.Order) ||
		e.DateCreated != other.DateCreated ||
		e.DateModified != other.DateModified ||
		!e.LexicalUnit.Equal(other.LexicalUnit) ||
		!e.CitationForm.Equal(other.CitationForm) ||
		!e.GrammaticalInfo.Equal(other.GrammaticalInfo) ||
		!relationsEqual(e.Relations, other.Relations) ||
		!fieldsEqual(e.Fields, other.Fields) ||
		!traitsEqual(e.Traits, other.Traits) ||
		!notesEqual(e.Notes, other.Notes) ||
		!rawEqual(e.Raw, other.Raw) {
		return false
	}
	if len(e.Pronunciations) != len(other.Pronunciations) {
		return false
	}
	for i := range e.Pronunciations {
		if !e.Pronunciations[i].Equal(other.Pronunciations[i]) {
			return false
		}
	}
	if len(e.Variants) != len(other.Variants) {
		return false
	}
	for i := range e.Variants {
		if !e.Variants[i].Equal(other.Variants[i]) {
			return false
		}
	}
	if len(e.Etymologies) != len(other.Etymologies) {
		return false
	}
	for i := range e.Etymologies {
		if !e.Etymologies[i].Equal(other.Etymologies[i]) {
			return false
		}
	}
	if len(e.Senses) != len(other.Senses) {
		return false
	}
	for i := range e.Senses {
		if !e.Senses[i].Equal(other.Senses[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := &Entry{
		ID:              e.ID,
		GUID:            e.GUID,
		Order:           cloneIntPtr(e.Order),
		DateCreated:     e.DateCreated,
		DateModified:    e.DateModified,
		LexicalUnit:     e.LexicalUnit.Clone(),
		CitationForm:    e.CitationForm.Clone(),
		GrammaticalInfo: e.GrammaticalInfo.Clone(),
		Fields:          cloneFields(e.Fields),
		Traits:          cloneTraits(e.Traits),
	}
	if e.Pronunciations != nil {
		out.Pronunciations = make([]Pronunciation, len(e.Pronunciations))
		for i, p := range e.Pronunciations {
			out.Pronunciations[i] = p.Clone()
		}
	}
	if e.Variants != nil {
		out.Variants = make([]Variant, len(e.Variants))
		for i, v := range e.Variants {
			out.Variants[i] = v.Clone()
		}
	}
	if e.Senses != nil {
		out.Senses = make([]*Sense, len(e.Senses))
		for i, s := range e.Senses {
			out.Senses[i] = s.Clone()
		}
	}
	if e.Notes != nil {
		out.Notes = make([]Note, len(e.Notes))
		for i, n := range e.Notes {
			out.Notes[i] = Note{Type: n.Type, Content: n.Content.Clone()}
		}
	}
	if e.Relations != nil {
		out.Relations = make([]Relation, len(e.Relations))
		for i, r := range e.Relations {
			out.Relations[i] = r.Clone()
		}
	}
	if e.Etymologies != nil {
		out.Etymologies = make([]Etymology, len(e.Etymologies))
		for i, et := range e.Etymologies {
			out.Etymologies[i] = Etymology{
				Type:   et.Type,
				Source: et.Source,
				Form:   et.Form.Clone(),
				Gloss:  et.Gloss.Clone(),
				Fields: cloneFields(et.Fields),
			}
		}
	}
	if e.Raw != nil {
		out.Raw = append([]string(nil), e.Raw...)
	}
	return out
}

// slice equality and clone helpers

func traitsEqual(a, b []Trait) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func relationsEqual(a, b []Relation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func notesEqual(a, b []Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func rawEqual(a, b []string) bool {
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

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTraits(ts []Trait) []Trait {
	if ts == nil {
		return nil
	}
	return append([]Trait(nil), ts...)
}

func cloneFields(fs []Field) []Field {
	if fs == nil {
		return nil
	}
	out := make([]Field, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}
