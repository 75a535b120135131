package lift

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lexfield/liftkit/core/errors"
	"github.com/lexfield/liftkit/core/lexicon"
)

func TestGenerateRequiresEntryID(t *testing.T) {
	doc := &lexicon.Document{Entries: []*lexicon.Entry{
		{ID: "ok", LexicalUnit: lexicon.NewMultitext("en", "sun")},
		{LexicalUnit: lexicon.NewMultitext("en", "moon")},
	}}
	_, err := Generate(doc, Options{})
	if err == nil {
		t.Fatal("Generate() succeeded, want precondition error for missing id")
	}
	if !errors.Is(err, errors.ErrPrecondition) {
		t.Errorf("err = %v, want ErrPrecondition", err)
	}
	if !strings.Contains(err.Error(), "entry 1") {
		t.Errorf("err = %v, want offending index named", err)
	}
}

func TestGenerateNilDocument(t *testing.T) {
	if _, err := Generate(nil, Options{}); !errors.Is(err, errors.ErrPrecondition) {
		t.Errorf("err = %v, want ErrPrecondition", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	doc, _, err := Parse([]byte(sampleDoc), Options{})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	first, err := Generate(doc, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Generate(doc, Options{})
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("repeated generation of the same document differs")
		}
	}
}

func TestGenerateDeclarationAndNamespace(t *testing.T) {
	out, err := Generate(&lexicon.Document{Entries: []*lexicon.Entry{{ID: "a"}}}, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing xml declaration: %q", s[:40])
	}
	if !strings.Contains(s, `<lift xmlns="`+Namespace+`" version="0.13">`) {
		t.Errorf("missing lift namespace/version: %s", s)
	}
}

func TestGenerateOmitsEmptyContainers(t *testing.T) {
	doc := &lexicon.Document{Entries: []*lexicon.Entry{{
		ID:     "a",
		Senses: []*lexicon.Sense{{Gloss: lexicon.NewMultitext("en", "sun")}},
	}}}
	out, err := Generate(doc, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s := string(out)
	for _, absent := range []string{"<lexical-unit", "<citation", "<definition", "<header", "<variant", "<relation"} {
		if strings.Contains(s, absent) {
			t.Errorf("output contains %s for empty content:\n%s", absent, s)
		}
	}
	if !strings.Contains(s, `<gloss lang="en"><text>sun</text></gloss>`) {
		t.Errorf("gloss missing:\n%s", s)
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	out, err := Generate(&lexicon.Document{}, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<lift xmlns="` + Namespace + `" version="0.13"/>` + "\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestGenerateEscaping(t *testing.T) {
	doc := &lexicon.Document{Entries: []*lexicon.Entry{{
		ID:          `a&b<c>"d"`,
		LexicalUnit: lexicon.NewMultitext("en", `salt & <pepper> "mix"`),
	}}}
	out, err := Generate(doc, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `id="a&amp;b&lt;c&gt;&quot;d&quot;"`) {
		t.Errorf("attribute not escaped:\n%s", s)
	}
	if !strings.Contains(s, `<text>salt &amp; &lt;pepper&gt; "mix"</text>`) {
		t.Errorf("text not escaped:\n%s", s)
	}

	back, _, err := Parse(out, Options{})
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	if got := back.Entries[0].LexicalUnit.Text("en"); got != `salt & <pepper> "mix"` {
		t.Errorf("reparsed text = %q", got)
	}
}

func TestGenerateElementOrderFixed(t *testing.T) {
	// Same model content, construction order reversed: output must not care.
	a := &lexicon.Entry{ID: "x"}
	a.Traits = []lexicon.Trait{{Name: "morph-type", Value: "stem"}}
	a.LexicalUnit = lexicon.NewMultitext("en", "sun")

	b := &lexicon.Entry{ID: "x"}
	b.LexicalUnit = lexicon.NewMultitext("en", "sun")
	b.Traits = []lexicon.Trait{{Name: "morph-type", Value: "stem"}}

	outA, err := Generate(&lexicon.Document{Entries: []*lexicon.Entry{a}}, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	outB, err := Generate(&lexicon.Document{Entries: []*lexicon.Entry{b}}, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !bytes.Equal(outA, outB) {
		t.Errorf("element order depends on struct assignment order:\n%s\nvs\n%s", outA, outB)
	}
	if lu := strings.Index(string(outA), "<lexical-unit"); lu > strings.Index(string(outA), "<trait") {
		t.Errorf("lexical-unit emitted after trait:\n%s", outA)
	}
}

func TestGenerateHeaderIndependence(t *testing.T) {
	entries := []*lexicon.Entry{{ID: "a", LexicalUnit: lexicon.NewMultitext("en", "sun")}}

	with := &lexicon.Document{
		Header: lexicon.Header{
			Description: lexicon.NewMultitext("en", "demo"),
			RangesHref:  "file://demo.lift-ranges",
		},
		Entries: entries,
	}
	without := &lexicon.Document{Entries: entries}

	outWith, err := Generate(with, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	outWithout, err := Generate(without, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if !strings.Contains(string(outWith), "<header>") {
		t.Error("header missing from document that has one")
	}
	if strings.Contains(string(outWithout), "<header") {
		t.Error("empty header emitted")
	}

	// Entry serialization must be identical either way.
	entryOf := func(out []byte) string {
		s := string(out)
		i := strings.Index(s, "<entry")
		j := strings.Index(s, "</entry>")
		if i < 0 || j < 0 {
			t.Fatalf("no entry in output:\n%s", s)
		}
		return s[i : j+len("</entry>")]
	}
	if entryOf(outWith) != entryOf(outWithout) {
		t.Error("entry serialization depends on header presence")
	}
}

func TestFingerprintStability(t *testing.T) {
	doc, _, err := Parse([]byte(sampleDoc), Options{})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	fp1, err := Fingerprint(doc)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	fp2, err := Fingerprint(doc.Clone())
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	if fp1 != fp2 {
		t.Errorf("clone fingerprint differs: %s vs %s", fp1, fp2)
	}
	if len(fp1) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(fp1))
	}

	other := doc.Clone()
	other.Entries[0].Traits[0].Value = "root"
	fp3, err := Fingerprint(other)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	if fp3 == fp1 {
		t.Error("fingerprint unchanged after model edit")
	}

	efp, err := EntryFingerprint(doc.Entries[0])
	if err != nil {
		t.Fatalf("EntryFingerprint() error: %v", err)
	}
	if efp == fp1 {
		t.Error("entry fingerprint should differ from document fingerprint")
	}
}
