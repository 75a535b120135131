package liftranges

import (
	"fmt"

	"github.com/lexfield/liftkit/core/lexicon"
)

// grammaticalInfoRange is the conventional range id for part-of-speech
// values.
const grammaticalInfoRange = "grammatical-info"

// RangeWarning flags a value that its associated range does not define.
// Warnings are advisory: unresolved references never fail a parse or a
// generate and the value always round-trips unchanged.
type RangeWarning struct {
	// EntryID is the id of the owning entry.
	EntryID string `json:"entry_id"`

	// Path locates the construct within the entry
	// (e.g., "entry[0]/sense[1]/grammatical-info").
	Path string `json:"path"`

	// RangeID is the range the value was checked against.
	RangeID string `json:"range_id"`

	// Value is the value not found in the range.
	Value string `json:"value"`
}

func (w RangeWarning) String() string {
	return fmt.Sprintf("%s: %q not in range %q (entry %s)", w.Path, w.Value, w.RangeID, w.EntryID)
}

// CheckDocument verifies trait and grammatical-info values against the
// registry. A trait is only checked when its name matches a range id; open
// annotations with no corresponding range are not the registry's business.
func (reg *Registry) CheckDocument(doc *lexicon.Document) []RangeWarning {
	var c checker
	c.reg = reg
	for i, e := range doc.Entries {
		c.entry(e, fmt.Sprintf("entry[%d]", i))
	}
	return c.warnings
}

type checker struct {
	reg      *Registry
	warnings []RangeWarning
	entryID  string
}

func (c *checker) entry(e *lexicon.Entry, path string) {
	c.entryID = e.ID
	c.grammaticalInfo(e.GrammaticalInfo, path+"/grammatical-info")
	c.traits(e.Traits, path)
	for i, v := range e.Variants {
		c.traits(v.Traits, fmt.Sprintf("%s/variant[%d]", path, i))
	}
	for i, p := range e.Pronunciations {
		c.traits(p.Traits, fmt.Sprintf("%s/pronunciation[%d]", path, i))
	}
	for i, r := range e.Relations {
		c.traits(r.Traits, fmt.Sprintf("%s/relation[%d]", path, i))
	}
	for i, s := range e.Senses {
		c.sense(s, fmt.Sprintf("%s/sense[%d]", path, i))
	}
}

func (c *checker) sense(s *lexicon.Sense, path string) {
	c.grammaticalInfo(s.GrammaticalInfo, path+"/grammatical-info")
	c.traits(s.Traits, path)
	for i, r := range s.Relations {
		c.traits(r.Traits, fmt.Sprintf("%s/relation[%d]", path, i))
	}
	for i, sub := range s.Subsenses {
		c.sense(sub, fmt.Sprintf("%s/subsense[%d]", path, i))
	}
}

func (c *checker) grammaticalInfo(gi *lexicon.GrammaticalInfo, path string) {
	if gi == nil {
		return
	}
	c.value(grammaticalInfoRange, gi.Value, path)
}

func (c *checker) traits(ts []lexicon.Trait, path string) {
	for i, t := range ts {
		if c.reg.Range(t.Name) == nil {
			continue
		}
		c.value(t.Name, t.Value, fmt.Sprintf("%s/trait[%d]", path, i))
	}
}

func (c *checker) value(rangeID, value, path string) {
	r := c.reg.Range(rangeID)
	if r == nil {
		return
	}
	// Href stubs define their elements elsewhere; nothing to check against.
	if len(r.Elements) == 0 && r.Href != "" {
		return
	}
	if r.Contains(value) {
		return
	}
	c.warnings = append(c.warnings, RangeWarning{
		EntryID: c.entryID,
		Path:    path,
		RangeID: rangeID,
		Value:   value,
	})
}
