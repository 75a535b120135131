package lexicon

// FieldDef declares a custom field type in the document header.
type FieldDef struct {
	// Tag is the declared field type tag (e.g., "cv-pattern").
	Tag string `json:"tag"`

	// Content is the multilingual description of the field.
	Content Multitext `json:"content,omitempty"`
}

// Equal reports field-by-field equality.
func (fd FieldDef) Equal(other FieldDef) bool {
	return fd.Tag == other.Tag && fd.Content.Equal(other.Content)
}

// Header is the file-scoped metadata of a lexicon document. It is parsed
// once per document load and regenerated independently of entry mutations.
// The zero value represents a document with no header.
type Header struct {
	// Description is the document description.
	Description Multitext `json:"description,omitempty"`

	// RangesHref points to the external ranges document, "" if none.
	RangesHref string `json:"ranges_href,omitempty"`

	// FieldDefs are the declared custom field types, in document order.
	FieldDefs []FieldDef `json:"field_defs,omitempty"`
}

// IsEmpty reports whether the header carries no content at all.
// An empty header is not emitted on generation.
func (h Header) IsEmpty() bool {
	return h.Description.IsEmpty() && h.RangesHref == "" && len(h.FieldDefs) == 0
}

// Equal reports field-by-field equality.
func (h Header) Equal(other Header) bool {
	if !h.Description.Equal(other.Description) || h.RangesHref != other.RangesHref {
		return false
	}
	if len(h.FieldDefs) != len(other.FieldDefs) {
		return false
	}
	for i := range h.FieldDefs {
		if !h.FieldDefs[i].Equal(other.FieldDefs[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (h Header) Clone() Header {
	out := Header{
		Description: h.Description.Clone(),
		RangesHref:  h.RangesHref,
	}
	if h.FieldDefs != nil {
		out.FieldDefs = make([]FieldDef, len(h.FieldDefs))
		for i, fd := range h.FieldDefs {
			out.FieldDefs[i] = FieldDef{Tag: fd.Tag, Content: fd.Content.Clone()}
		}
	}
	return out
}

// Document is the aggregate produced by one parse call and consumed by one
// generate call: header metadata plus the ordered entry list. No codec
// component mutates a Document between calls.
type Document struct {
	// Header is the file-scoped metadata.
	Header Header `json:"header,omitempty"`

	// Entries are the lexical entries in document order.
	Entries []*Entry `json:"entries,omitempty"`

	// Raw holds verbatim XML of unmodeled root-level elements when parsing
	// in lossless mode, in document order.
	Raw []string `json:"raw,omitempty"`
}

// Entry returns the entry with the given id, or nil.
func (d *Document) Entry(id string) *Entry {
	for _, e := range d.Entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Equal reports field-by-field equality of header and all entries.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	if !d.Header.Equal(other.Header) {
		return false
	}
	if len(d.Entries) != len(other.Entries) {
		return false
	}
	for i := range d.Entries {
		if !d.Entries[i].Equal(other.Entries[i]) {
			return false
		}
	}
	return rawEqual(d.Raw, other.Raw)
}

// Clone returns an independent deep copy.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Header: d.Header.Clone()}
	if d.Entries != nil {
		out.Entries = make([]*Entry, len(d.Entries))
		for i, e := range d.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	if d.Raw != nil {
		out.Raw = append([]string(nil), d.Raw...)
	}
	return out
}
