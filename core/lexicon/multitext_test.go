package lexicon

import "testing"

func TestMultitextSetLastWins(t *testing.T) {
	var m Multitext
	m.Set("en", "first")
	m.Set("pt", "segundo")
	m.Set("en", "second")

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if got := m.Text("en"); got != "second" {
		t.Errorf("Text(en) = %q, want second", got)
	}
	// Overwrite keeps the original position.
	langs := m.Langs()
	if langs[0] != "en" || langs[1] != "pt" {
		t.Errorf("Langs = %v, want [en pt]", langs)
	}
}

func TestMultitextGet(t *testing.T) {
	m := NewMultitext("en", "test")
	if text, ok := m.Get("en"); !ok || text != "test" {
		t.Errorf("Get(en) = %q, %v", text, ok)
	}
	if _, ok := m.Get("fr"); ok {
		t.Error("Get(fr) should report absent")
	}
	if m.Text("fr") != "" {
		t.Error("Text(fr) should be empty")
	}
}

func TestMultitextFirst(t *testing.T) {
	var empty Multitext
	if lang, text := empty.First(); lang != "" || text != "" {
		t.Error("First on empty should return zero values")
	}
	m := NewMultitext("seh", "nyakatsa")
	m.Set("en", "grass")
	if lang, text := m.First(); lang != "seh" || text != "nyakatsa" {
		t.Errorf("First = %q/%q", lang, text)
	}
}

func TestMultitextEqualIgnoresOrder(t *testing.T) {
	var a, b Multitext
	a.Set("en", "one")
	a.Set("pt", "um")
	b.Set("pt", "um")
	b.Set("en", "one")

	if !a.Equal(b) {
		t.Error("order must not affect equality")
	}

	b.Set("en", "two")
	if a.Equal(b) {
		t.Error("different text must not be equal")
	}

	var c Multitext
	c.Set("en", "one")
	if a.Equal(c) {
		t.Error("different lengths must not be equal")
	}
}

func TestMultitextEmptyVsNil(t *testing.T) {
	var nilMT Multitext
	empty := Multitext{}
	if !nilMT.Equal(empty) {
		t.Error("nil and empty Multitext must be equal")
	}
	if !nilMT.IsEmpty() || !empty.IsEmpty() {
		t.Error("both must report empty")
	}
}

func TestMultitextClone(t *testing.T) {
	m := NewMultitext("en", "original")
	c := m.Clone()
	c.Set("en", "changed")
	if m.Text("en") != "original" {
		t.Error("Clone must be independent of the source")
	}
	if (Multitext)(nil).Clone() != nil {
		t.Error("Clone of nil should stay nil")
	}
}
