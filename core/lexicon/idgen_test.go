package lexicon

import (
	"strings"
	"testing"
)

func TestNewEntryID(t *testing.T) {
	id := NewEntryID("grass roots")
	if !strings.HasPrefix(id, "grass_roots_") {
		t.Errorf("NewEntryID = %q, want grass_roots_ prefix", id)
	}
	if len(id) <= len("grass_roots_") {
		t.Error("id must carry a guid suffix")
	}

	// Two calls never collide.
	if NewEntryID("x") == NewEntryID("x") {
		t.Error("ids must be unique")
	}
}

func TestNewEntryIDEmptyHeadword(t *testing.T) {
	id := NewEntryID("  ")
	if id == "" || strings.HasPrefix(id, "_") {
		t.Errorf("empty headword should yield a bare guid, got %q", id)
	}
}

func TestIDToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grass roots", "grass_roots"},
		{"  nyakatsa  ", "nyakatsa"},
		{"to-and-fro", "to-and-fro"},
		{"a  b!!c", "a_b_c"},
		{"trailing!", "trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := idToken(tt.in); got != tt.want {
			t.Errorf("idToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSenseID(t *testing.T) {
	if NewSenseID() == NewSenseID() {
		t.Error("sense ids must be unique")
	}
}
