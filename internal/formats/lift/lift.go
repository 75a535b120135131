// Package lift implements the LIFT 0.13 codec: a namespace-tolerant parser
// from LIFT XML to the core/lexicon document model, and a deterministic
// generator back to XML. The two directions are inverses over the modeled
// subset: parse(generate(doc)) equals doc field by field.
//
// Both directions are pure transformations over byte slices. They hold no
// process-wide state and are safe to call concurrently as long as each call
// operates on its own Document.
package lift

import (
	"fmt"
	"strings"
)

// Namespace is the LIFT 0.13 XML namespace.
const Namespace = "http://fieldworks.sil.org/schemas/lift/0.13"

// Version is the LIFT schema version produced and accepted.
const Version = "0.13"

// UnknownPolicy selects how unmodeled LIFT elements are handled.
type UnknownPolicy int

const (
	// KnownSubset drops unmodeled elements. Each drop is recorded in the
	// parse report, so nothing disappears without a signal.
	KnownSubset UnknownPolicy = iota

	// StrictLossless preserves unmodeled elements verbatim on the owning
	// construct and re-emits them on generation. Preservation slots exist
	// on the document root, entries, and senses; unmodeled children of
	// variant, pronunciation, relation, and header carry no raw slot and
	// are recorded in the report only.
	StrictLossless
)

// Options configures a parse or generate call.
type Options struct {
	// Unknown is the policy for unmodeled elements. Default KnownSubset.
	Unknown UnknownPolicy

	// Lenient makes per-construct schema violations (entry without id,
	// relation without ref) skip the construct and record it in the
	// report instead of aborting the parse.
	Lenient bool

	// Indent is the generator indentation. Default two spaces.
	Indent string
}

// Skip records a construct dropped during a lenient parse.
type Skip struct {
	// Path is the element path (e.g., "entry[3]/relation[0]").
	Path string `json:"path"`

	// Element is the element name.
	Element string `json:"element"`

	// Reason is a human-readable explanation.
	Reason string `json:"reason"`
}

// Unmodeled records an element outside the modeled subset that was seen
// during parsing (and, under KnownSubset, dropped).
type Unmodeled struct {
	// Path is the path of the owning construct.
	Path string `json:"path"`

	// Element is the unmodeled element name.
	Element string `json:"element"`
}

// Report accumulates non-fatal findings of one parse call. A parse that
// skips or drops anything always says so here; data is never silently lost.
type Report struct {
	// Entries is the number of entries parsed successfully.
	Entries int `json:"entries"`

	// Skipped lists constructs dropped due to schema violations in
	// lenient mode.
	Skipped []Skip `json:"skipped,omitempty"`

	// Unmodeled lists elements outside the modeled subset.
	Unmodeled []Unmodeled `json:"unmodeled,omitempty"`
}

// Clean reports whether the parse had no skips and no unmodeled elements.
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Unmodeled) == 0
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d entries", r.Entries)
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, ", %d skipped", len(r.Skipped))
	}
	if len(r.Unmodeled) > 0 {
		fmt.Fprintf(&b, ", %d unmodeled elements", len(r.Unmodeled))
	}
	return b.String()
}

// IsLift reports whether the data looks like a LIFT document. Used for
// cheap input sniffing before a full parse.
func IsLift(data []byte) bool {
	head := data
	if len(head) > 4096 {
		head = head[:4096]
	}
	s := string(head)
	return strings.Contains(s, "<lift") && !strings.Contains(s, "<lift-ranges")
}
