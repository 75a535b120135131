package lift

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/lexfield/liftkit/core/lexicon"
)

// Fingerprint returns the BLAKE3 digest of the document's canonical
// serialization, hex-encoded. Because generation is deterministic, equal
// documents always fingerprint identically, so the digest works as a cheap
// round-trip check and as a staleness marker for derived indexes.
func Fingerprint(doc *lexicon.Document) (string, error) {
	data, err := Generate(doc, Options{})
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// EntryFingerprint returns the fingerprint of a single entry, computed over
// a one-entry document so the digest is independent of the entry's siblings.
func EntryFingerprint(e *lexicon.Entry) (string, error) {
	return Fingerprint(&lexicon.Document{Entries: []*lexicon.Entry{e}})
}

// RawFingerprint returns the BLAKE3 digest of raw bytes, hex-encoded.
func RawFingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
