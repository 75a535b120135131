// Package lexicon defines the typed document model for LIFT lexicon data:
// entries, senses, variants, relations, pronunciations, open-ended fields
// and traits, file-level header metadata, and controlled-vocabulary ranges.
//
// The types here are pure data containers. They perform no I/O and carry no
// behavior beyond construction defaults, field-by-field equality, and deep
// copy. Parsing and generation live in internal/formats/lift; ranges parsing
// lives in internal/formats/liftranges.
package lexicon
