// Package liftranges parses .lift-ranges documents into an immutable
// registry of controlled vocabularies and offers advisory validation of
// lexicon documents against them.
//
// A registry is read-only after Parse and safe to share across goroutines.
package liftranges

import (
	"fmt"
	"strings"

	"github.com/lexfield/liftkit/core/errors"
	"github.com/lexfield/liftkit/core/lexicon"
	corexml "github.com/lexfield/liftkit/core/xml"
)

// Registry holds the ranges of one .lift-ranges document.
type Registry struct {
	ranges []*lexicon.Range
	byID   map[string]*lexicon.Range
}

// IsRanges reports whether the data looks like a ranges document.
func IsRanges(data []byte) bool {
	head := data
	if len(head) > 4096 {
		head = head[:4096]
	}
	return strings.Contains(string(head), "<lift-ranges")
}

// Parse reads a .lift-ranges document. Ranges that only reference an
// external definition (<range href>) are kept as stubs with no elements.
func Parse(data []byte) (*Registry, error) {
	xdoc, err := corexml.Parse(data)
	if err != nil {
		return nil, errors.NewMalformedXML("", err)
	}
	root := xdoc.Root()
	if root == nil {
		return nil, errors.NewMalformedXML("", fmt.Errorf("document has no root element"))
	}
	if root.Name() != "lift-ranges" {
		return nil, &errors.SchemaError{
			ElemPath: "/",
			Element:  root.Name(),
			Message:  "root element must be <lift-ranges>",
		}
	}

	reg := &Registry{byID: make(map[string]*lexicon.Range)}
	for i, node := range root.ChildrenNamed("range") {
		r, err := parseRange(node, fmt.Sprintf("range[%d]", i))
		if err != nil {
			return nil, err
		}
		reg.ranges = append(reg.ranges, r)
		reg.byID[r.ID] = r
	}
	return reg, nil
}

func parseRange(node *corexml.Node, path string) (*lexicon.Range, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, errors.NewSchema(path, "range", "id")
	}

	r := &lexicon.Range{
		ID:   id,
		Href: node.Attr("href"),
		GUID: node.Attr("guid"),
	}
	if l := node.Child("label"); l != nil {
		r.Label = parseForms(l)
	}
	if d := node.Child("description"); d != nil {
		r.Description = parseForms(d)
	}
	for j, en := range node.ChildrenNamed("range-element") {
		el, err := parseElement(en, fmt.Sprintf("%s/range-element[%d]", path, j))
		if err != nil {
			return nil, err
		}
		r.Elements = append(r.Elements, el)
	}
	return r, nil
}

func parseElement(node *corexml.Node, path string) (*lexicon.RangeElement, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, errors.NewSchema(path, "range-element", "id")
	}

	el := &lexicon.RangeElement{
		ID:     id,
		Parent: node.Attr("parent"),
		GUID:   node.Attr("guid"),
	}
	if l := node.Child("label"); l != nil {
		el.Label = parseForms(l)
	}
	if a := node.Child("abbrev"); a != nil {
		el.Abbrev = parseForms(a)
	}
	if d := node.Child("description"); d != nil {
		el.Description = parseForms(d)
	}
	return el, nil
}

func parseForms(node *corexml.Node) lexicon.Multitext {
	var mt lexicon.Multitext
	for _, form := range node.ChildrenNamed("form") {
		text := form.Text()
		if t := form.Child("text"); t != nil {
			text = t.Text()
		}
		mt.Set(form.Attr("lang"), text)
	}
	return mt
}

// Range returns the range with the given id, or nil.
func (reg *Registry) Range(id string) *lexicon.Range {
	return reg.byID[id]
}

// Ranges returns all ranges in document order. Callers must not mutate the
// returned values.
func (reg *Registry) Ranges() []*lexicon.Range {
	return reg.ranges
}

// Len returns the number of ranges.
func (reg *Registry) Len() int {
	return len(reg.ranges)
}

// Element returns the element with the given id within a range, or nil if
// either the range or the element does not exist.
func (reg *Registry) Element(rangeID, elemID string) *lexicon.RangeElement {
	r := reg.byID[rangeID]
	if r == nil {
		return nil
	}
	return r.Element(elemID)
}

// Children returns the elements of a range whose parent is the given id.
// Pass "" for top-level elements.
func (reg *Registry) Children(rangeID, parent string) []*lexicon.RangeElement {
	r := reg.byID[rangeID]
	if r == nil {
		return nil
	}
	return r.Children(parent)
}
