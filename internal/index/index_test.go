package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lexfield/liftkit/core/lexicon"
)

func testDoc() *lexicon.Document {
	return &lexicon.Document{Entries: []*lexicon.Entry{
		{
			ID:          "casa_1",
			LexicalUnit: lexicon.NewMultitext("seh", "casa"),
			Senses: []*lexicon.Sense{{
				GrammaticalInfo: &lexicon.GrammaticalInfo{Value: "Noun"},
				Gloss:           lexicon.NewMultitext("en", "house"),
			}},
		},
		{
			ID:           "mesa_1",
			LexicalUnit:  lexicon.NewMultitext("seh", "mesa"),
			CitationForm: lexicon.NewMultitext("seh", "meza"),
			Senses: []*lexicon.Sense{{
				Gloss: lexicon.NewMultitext("en", "table"),
			}},
		},
	}}
}

func buildIndex(t *testing.T) (*Index, *lexicon.Document) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	ix, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	t.Cleanup(func() { ix.Close() })

	doc := testDoc()
	if err := ix.Build(context.Background(), doc, "test.lift"); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return ix, doc
}

func TestBuildAndCount(t *testing.T) {
	ix, _ := buildIndex(t)
	n, err := ix.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	source, err := ix.Source(context.Background())
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	if source != "test.lift" {
		t.Errorf("Source() = %q", source)
	}
}

func TestSearch(t *testing.T) {
	ix, _ := buildIndex(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"casa", []string{"casa_1"}},
		{"CASA", []string{"casa_1"}},   // case-insensitive
		{"house", []string{"casa_1"}},  // gloss match
		{"meza", []string{"mesa_1"}},   // citation match
		{"sa", []string{"casa_1", "mesa_1"}},
		{"zebra", nil},
		{"100%", nil}, // wildcard must be literal
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			hits, err := ix.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("Search() error: %v", err)
			}
			if len(hits) != len(tt.want) {
				t.Fatalf("Search(%q) = %+v, want ids %v", tt.query, hits, tt.want)
			}
			for i, id := range tt.want {
				if hits[i].EntryID != id {
					t.Errorf("hit[%d] = %+v, want id %s", i, hits[i], id)
				}
			}
		})
	}

	hits, err := ix.Search(ctx, "house")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if hits[0].Gloss != "house" || hits[0].POS != "Noun" || hits[0].Headword != "casa" {
		t.Errorf("hit = %+v", hits[0])
	}
}

func TestStaleness(t *testing.T) {
	ix, doc := buildIndex(t)
	ctx := context.Background()

	stale, err := ix.Stale(ctx, doc)
	if err != nil {
		t.Fatalf("Stale() error: %v", err)
	}
	if stale {
		t.Error("index stale immediately after build")
	}

	doc.Entries[0].Senses[0].Gloss.Set("en", "dwelling")
	stale, err = ix.Stale(ctx, doc)
	if err != nil {
		t.Fatalf("Stale() error: %v", err)
	}
	if !stale {
		t.Error("index not stale after document edit")
	}
}

func TestRebuildReplaces(t *testing.T) {
	ix, doc := buildIndex(t)
	ctx := context.Background()

	doc.Entries = doc.Entries[:1]
	if err := ix.Build(ctx, doc, "test.lift"); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	n, err := ix.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d after rebuild, want 1", n)
	}
	if hits, _ := ix.Search(ctx, "table"); len(hits) != 0 {
		t.Errorf("removed entry still searchable: %+v", hits)
	}
}
