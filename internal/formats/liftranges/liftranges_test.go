package liftranges

import (
	"testing"

	"github.com/lexfield/liftkit/core/errors"
)

const sampleRanges = `<?xml version="1.0" encoding="UTF-8"?>
<lift-ranges>
  <range id="grammatical-info" guid="2fcc09e6-a276-4078-8b08-3a2a170569da">
    <label>
      <form lang="en"><text>Parts of Speech</text></form>
    </label>
    <range-element id="Noun" guid="a8e41fd3-e343-4c7c-aa05-01ea3dd5cfb5">
      <label><form lang="en"><text>Noun</text></form></label>
      <abbrev><form lang="en"><text>n</text></form></abbrev>
    </range-element>
    <range-element id="Proper Noun" parent="Noun">
      <label><form lang="en"><text>Proper Noun</text></form></label>
    </range-element>
    <range-element id="Verb">
      <label><form lang="en"><text>Verb</text></form></label>
    </range-element>
  </range>
  <range id="morph-type">
    <range-element id="stem"/>
    <range-element id="enclitic"/>
  </range>
  <range id="semantic-domain-ddp4" href="SemDom.lift-ranges"/>
</lift-ranges>
`

func TestParseRegistry(t *testing.T) {
	reg, err := Parse([]byte(sampleRanges))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}

	gi := reg.Range("grammatical-info")
	if gi == nil {
		t.Fatal("grammatical-info range missing")
	}
	if gi.GUID != "2fcc09e6-a276-4078-8b08-3a2a170569da" {
		t.Errorf("guid = %q", gi.GUID)
	}
	if got := gi.Label.Text("en"); got != "Parts of Speech" {
		t.Errorf("label = %q", got)
	}
	if len(gi.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(gi.Elements))
	}

	noun := reg.Element("grammatical-info", "Noun")
	if noun == nil {
		t.Fatal("Noun element missing")
	}
	if got := noun.Abbrev.Text("en"); got != "n" {
		t.Errorf("abbrev = %q", got)
	}

	if reg.Range("no-such-range") != nil {
		t.Error("lookup of missing range returned non-nil")
	}
	if reg.Element("grammatical-info", "Adposition") != nil {
		t.Error("lookup of missing element returned non-nil")
	}

	stub := reg.Range("semantic-domain-ddp4")
	if stub == nil || stub.Href != "SemDom.lift-ranges" {
		t.Errorf("href stub = %+v", stub)
	}
	if len(stub.Elements) != 0 {
		t.Errorf("stub should carry no elements: %+v", stub.Elements)
	}
}

func TestRegistryHierarchy(t *testing.T) {
	reg, err := Parse([]byte(sampleRanges))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	top := reg.Children("grammatical-info", "")
	if len(top) != 2 {
		t.Fatalf("top-level = %d, want 2 (Noun, Verb)", len(top))
	}
	if top[0].ID != "Noun" || top[1].ID != "Verb" {
		t.Errorf("top-level = %q, %q", top[0].ID, top[1].ID)
	}

	under := reg.Children("grammatical-info", "Noun")
	if len(under) != 1 || under[0].ID != "Proper Noun" {
		t.Errorf("children of Noun = %+v", under)
	}

	if got := reg.Children("no-such-range", ""); got != nil {
		t.Errorf("children of missing range = %+v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"malformed", `<lift-ranges><range id="x">`, errors.ErrMalformedXML},
		{"wrong root", `<lift><entry id="a"/></lift>`, errors.ErrSchemaViolation},
		{"range without id", `<lift-ranges><range/></lift-ranges>`, errors.ErrSchemaViolation},
		{"element without id", `<lift-ranges><range id="x"><range-element/></range></lift-ranges>`, errors.ErrSchemaViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIsRanges(t *testing.T) {
	if !IsRanges([]byte(sampleRanges)) {
		t.Error("IsRanges() = false for ranges document")
	}
	if IsRanges([]byte(`<lift version="0.13"/>`)) {
		t.Error("IsRanges() = true for lift document")
	}
}
