// Package index maintains a SQLite search index over parsed lexicon
// entries. The index is a derived cache: it can always be rebuilt from the
// LIFT source and is never the source of truth. The stored document
// fingerprint tells callers when a rebuild is due.
package index

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lexfield/liftkit/core/errors"
	"github.com/lexfield/liftkit/core/lexicon"
	"github.com/lexfield/liftkit/core/sqlite"
	"github.com/lexfield/liftkit/internal/formats/lift"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	id          TEXT PRIMARY KEY,
	headword    TEXT NOT NULL,
	citation    TEXT NOT NULL DEFAULT '',
	pos         TEXT NOT NULL DEFAULT '',
	fingerprint TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS glosses (
	entry_id TEXT NOT NULL,
	lang     TEXT NOT NULL,
	gloss    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_headword ON entries(headword);
CREATE INDEX IF NOT EXISTS idx_glosses_entry ON glosses(entry_id);
`

const (
	metaSource      = "source"
	metaFingerprint = "fingerprint"
)

// Index is an open index database.
type Index struct {
	db   *sql.DB
	path string
}

// Hit is one search result.
type Hit struct {
	EntryID  string `json:"entry_id"`
	Headword string `json:"headword"`
	POS      string `json:"pos,omitempty"`
	Gloss    string `json:"gloss,omitempty"`
}

// Create opens (or creates) an index database and ensures the schema.
func Create(path string) (*Index, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "creating index schema in %s", path)
	}
	return &Index{db: db, path: path}, nil
}

// Open opens an existing index database read-only.
func Open(path string) (*Index, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &Index{db: db, path: path}, nil
}

// Close closes the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Path returns the database file path.
func (ix *Index) Path() string {
	return ix.path
}

// Build replaces the index contents with the document's entries and records
// the document fingerprint plus the source name it was built from.
func (ix *Index) Build(ctx context.Context, doc *lexicon.Document, source string) error {
	fp, err := lift.Fingerprint(doc)
	if err != nil {
		return err
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning index transaction")
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM entries`, `DELETE FROM glosses`, `DELETE FROM meta`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "clearing index")
		}
	}

	for _, e := range doc.Entries {
		efp, err := lift.EntryFingerprint(e)
		if err != nil {
			return err
		}
		pos := ""
		if e.GrammaticalInfo != nil {
			pos = e.GrammaticalInfo.Value
		} else if len(e.Senses) > 0 && e.Senses[0].GrammaticalInfo != nil {
			pos = e.Senses[0].GrammaticalInfo.Value
		}
		_, citation := e.CitationForm.First()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (id, headword, citation, pos, fingerprint) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Headword(), citation, pos, efp); err != nil {
			return errors.Wrapf(err, "indexing entry %s", e.ID)
		}
		for _, s := range e.Senses {
			for _, lt := range s.Gloss {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO glosses (entry_id, lang, gloss) VALUES (?, ?, ?)`,
					e.ID, lt.Lang, lt.Text); err != nil {
					return errors.Wrapf(err, "indexing glosses of %s", e.ID)
				}
			}
		}
	}

	for key, value := range map[string]string{metaSource: source, metaFingerprint: fp} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return errors.Wrap(err, "writing index metadata")
		}
	}

	return tx.Commit()
}

// Fingerprint returns the fingerprint of the document the index was built
// from, or "" for an empty index.
func (ix *Index) Fingerprint(ctx context.Context) (string, error) {
	return ix.meta(ctx, metaFingerprint)
}

// Source returns the source name recorded at build time.
func (ix *Index) Source(ctx context.Context) (string, error) {
	return ix.meta(ctx, metaSource)
}

func (ix *Index) meta(ctx context.Context, key string) (string, error) {
	var value string
	err := ix.db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading index metadata")
	}
	return value, nil
}

// Stale reports whether the index no longer matches the document.
func (ix *Index) Stale(ctx context.Context, doc *lexicon.Document) (bool, error) {
	stored, err := ix.Fingerprint(ctx)
	if err != nil {
		return false, err
	}
	current, err := lift.Fingerprint(doc)
	if err != nil {
		return false, err
	}
	return stored != current, nil
}

// Count returns the number of indexed entries.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := ix.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting index entries")
	}
	return n, nil
}

// Search returns entries whose headword, citation form, or any gloss
// contains the query, case-insensitively, ordered by headword then id.
// Each matching entry appears once, with its first matching gloss.
func (ix *Index) Search(ctx context.Context, query string) ([]Hit, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := ix.db.QueryContext(ctx, `
		SELECT e.id, e.headword, e.pos,
		       COALESCE((SELECT g.gloss FROM glosses g
		                 WHERE g.entry_id = e.id
		                   AND (? = '' OR g.gloss LIKE ? ESCAPE '\')
		                 LIMIT 1), '')
		FROM entries e
		WHERE e.headword LIKE ? ESCAPE '\'
		   OR e.citation LIKE ? ESCAPE '\'
		   OR EXISTS (SELECT 1 FROM glosses g
		              WHERE g.entry_id = e.id AND g.gloss LIKE ? ESCAPE '\')
		ORDER BY e.headword, e.id`,
		query, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, errors.Wrap(err, "searching index")
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.EntryID, &h.Headword, &h.POS, &h.Gloss); err != nil {
			return nil, errors.Wrap(err, "scanning search hit")
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
