package lexicon

// RangeElement is one value of a controlled vocabulary. Elements may form a
// hierarchy within their range through the Parent id (e.g., semantic-domain).
type RangeElement struct {
	// ID is the element identifier, unique within its range.
	ID string `json:"id"`

	// Parent is the id of the parent element within the same range,
	// "" for top-level elements.
	Parent string `json:"parent,omitempty"`

	// GUID is the producer-assigned globally unique id, passed through.
	GUID string `json:"guid,omitempty"`

	// Label is the display label.
	Label Multitext `json:"label,omitempty"`

	// Abbrev is the optional abbreviation.
	Abbrev Multitext `json:"abbrev,omitempty"`

	// Description is the optional long description.
	Description Multitext `json:"description,omitempty"`
}

// Equal reports field-by-field equality.
func (re *RangeElement) Equal(other *RangeElement) bool {
	if re == nil || other == nil {
		return re == nil && other == nil
	}
	return re.ID == other.ID &&
		re.Parent == other.Parent &&
		re.GUID == other.GUID &&
		re.Label.Equal(other.Label) &&
		re.Abbrev.Equal(other.Abbrev) &&
		re.Description.Equal(other.Description)
}

// Range is a named controlled vocabulary loaded from a ranges document.
// Ranges are read-only reference data relative to a parse/generate cycle.
type Range struct {
	// ID is the range identifier (e.g., "grammatical-info", "morph-type").
	ID string `json:"id"`

	// Href points to an external definition of this range, if the ranges
	// document only references it.
	Href string `json:"href,omitempty"`

	// GUID is the producer-assigned globally unique id, passed through.
	GUID string `json:"guid,omitempty"`

	// Label is the display label.
	Label Multitext `json:"label,omitempty"`

	// Description is the optional long description.
	Description Multitext `json:"description,omitempty"`

	// Elements are the vocabulary values in document order.
	Elements []*RangeElement `json:"elements,omitempty"`
}

// Element returns the element with the given id, or nil.
func (r *Range) Element(id string) *RangeElement {
	for _, el := range r.Elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

// Contains reports whether the range defines the given value.
func (r *Range) Contains(id string) bool {
	return r.Element(id) != nil
}

// Children returns the elements whose Parent is the given id, in order.
// Pass "" for top-level elements.
func (r *Range) Children(parent string) []*RangeElement {
	var out []*RangeElement
	for _, el := range r.Elements {
		if el.Parent == parent {
			out = append(out, el)
		}
	}
	return out
}
