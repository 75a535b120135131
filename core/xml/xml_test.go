package xml

import (
	"strings"
	"testing"
)

// TestParseValidXML verifies parsing of well-formed XML.
func TestParseValidXML(t *testing.T) {
	xmlData := `<?xml version="1.0"?>
<root>
	<element attr="value">text</element>
</root>`

	doc, err := Parse([]byte(xmlData))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc == nil {
		t.Fatal("Parse returned nil document")
	}
	if doc.Root().Name() != "root" {
		t.Errorf("Root().Name() = %q, want root", doc.Root().Name())
	}
}

// TestParseInvalidXML verifies error handling for malformed XML.
func TestParseInvalidXML(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"unclosed tag", "<root><element></root>"},
		{"mismatched tags", "<root></other>"},
		{"invalid chars", "<root>\x00</root>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.xml))
			if err == nil {
				t.Error("Parse should fail for invalid XML")
			}
		})
	}
}

// TestValidateWellFormed verifies well-formedness validation.
func TestValidateWellFormed(t *testing.T) {
	valid := `<?xml version="1.0"?><root><child/></root>`
	result := Validate([]byte(valid))
	if !result.Valid {
		t.Errorf("Valid XML should pass: %v", result.Errors)
	}

	invalid := `<root><child></root>`
	result = Validate([]byte(invalid))
	if result.Valid {
		t.Error("mismatched tags should fail validation")
	}
	if len(result.Errors) == 0 {
		t.Error("invalid result should carry at least one error")
	}
}

// TestChildLookupNamespaceTolerant verifies that qualified and bare elements
// resolve through the same lookup.
func TestChildLookupNamespaceTolerant(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			"bare",
			`<lift><entry id="a"/><entry id="b"/></lift>`,
		},
		{
			"prefixed",
			`<lift:lift xmlns:lift="http://fieldworks.sil.org/schemas/lift/0.13"><lift:entry id="a"/><lift:entry id="b"/></lift:lift>`,
		},
		{
			"default namespace",
			`<lift xmlns="http://fieldworks.sil.org/schemas/lift/0.13"><entry id="a"/><entry id="b"/></lift>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.xml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			root := doc.Root()
			if root.Name() != "lift" {
				t.Errorf("root name = %q, want lift", root.Name())
			}
			entries := root.ChildrenNamed("entry")
			if len(entries) != 2 {
				t.Fatalf("ChildrenNamed(entry) = %d nodes, want 2", len(entries))
			}
			if entries[0].Attr("id") != "a" || entries[1].Attr("id") != "b" {
				t.Error("attribute lookup failed on namespace variant")
			}
			if first := root.Child("entry"); first == nil || first.Attr("id") != "a" {
				t.Error("Child should return the first matching element")
			}
		})
	}
}

// TestAttrPresence verifies HasAttr distinguishes absent from empty.
func TestAttrPresence(t *testing.T) {
	doc, err := Parse([]byte(`<entry id="" dateCreated="2020-01-01"/>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	n := doc.Root()
	if !n.HasAttr("id") {
		t.Error("HasAttr(id) should be true for empty attribute")
	}
	if n.HasAttr("dateModified") {
		t.Error("HasAttr(dateModified) should be false")
	}
	if n.Attr("dateCreated") != "2020-01-01" {
		t.Errorf("Attr(dateCreated) = %q", n.Attr("dateCreated"))
	}
}

// TestTextAndInnerXML verifies text extraction helpers.
func TestTextAndInnerXML(t *testing.T) {
	doc, err := Parse([]byte(`<form lang="en"><text>grass roots</text></form>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	form := doc.Root()
	if form.Text() != "grass roots" {
		t.Errorf("Text() = %q", form.Text())
	}
	if !strings.Contains(form.InnerXML(), "<text>") {
		t.Errorf("InnerXML() = %q, want text element", form.InnerXML())
	}
	if !strings.Contains(form.OuterXML(), `lang="en"`) {
		t.Errorf("OuterXML() = %q, want lang attribute", form.OuterXML())
	}
}

// TestXPathQuery verifies XPath query execution.
func TestXPathQuery(t *testing.T) {
	xmlData := `<?xml version="1.0"?>
<lift>
	<entry id="one"><sense/></entry>
	<entry id="two"><sense/><sense/></entry>
</lift>`

	doc, err := Parse([]byte(xmlData))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	nodes, err := doc.XPath("//sense")
	if err != nil {
		t.Fatalf("XPath failed: %v", err)
	}
	if len(nodes) != 3 {
		t.Errorf("XPath(//sense) = %d nodes, want 3", len(nodes))
	}

	node, err := doc.XPathFirst(`//entry[@id="two"]`)
	if err != nil {
		t.Fatalf("XPathFirst failed: %v", err)
	}
	if node == nil || node.Attr("id") != "two" {
		t.Error("XPathFirst should locate entry two")
	}

	if _, err := doc.XPath("///bad["); err == nil {
		t.Error("invalid xpath should fail")
	}
}

// TestFormat verifies pretty-printing round-trips structure.
func TestFormat(t *testing.T) {
	input := `<?xml version="1.0"?><lift><entry id="a"><lexical-unit><form lang="en"><text>test</text></form></lexical-unit></entry></lift>`
	out, err := Format([]byte(input), FormatOptions{Indent: "  "})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	formatted := string(out)
	if !strings.Contains(formatted, "<entry id=\"a\">") {
		t.Errorf("formatted output missing entry: %s", formatted)
	}
	// Output must still parse.
	if _, err := Parse(out); err != nil {
		t.Errorf("formatted output no longer parses: %v", err)
	}
}
