// Package validation guards CLI-supplied inputs: path sanity, size caps,
// and cheap file type detection before a full parse.
package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on accepted inputs.
const (
	// MaxFileSize is the maximum accepted input size (256 MB), applied to
	// the decompressed content.
	MaxFileSize = 256 << 20
	// MaxPathLength is the maximum accepted path length.
	MaxPathLength = 4096
	// MaxFilenameLength is the maximum accepted filename length.
	MaxFilenameLength = 255
)

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrFilenameTooLong  = errors.New("filename too long")
)

// ValidatePath checks a user-supplied path for length limits and characters
// that have no business in a filename.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateFilename checks a bare filename (no directory part).
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}
	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}
	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidFilename)
	}
	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}
	return nil
}

// FileType classifies an input file by its name.
type FileType string

const (
	FileTypeLift       FileType = "lift"
	FileTypeLiftXZ     FileType = "lift.xz"
	FileTypeLiftRanges FileType = "lift-ranges"
	FileTypeSQLite     FileType = "sqlite"
	FileTypeUnknown    FileType = "unknown"
)

// DetectFileType classifies a path by extension. Content sniffing is left
// to the format packages, which see the decompressed bytes.
func DetectFileType(path string) FileType {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".lift.xz"):
		return FileTypeLiftXZ
	case strings.HasSuffix(lower, ".lift-ranges"):
		return FileTypeLiftRanges
	case strings.HasSuffix(lower, ".lift"):
		return FileTypeLift
	}
	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return FileTypeSQLite
	}
	return FileTypeUnknown
}
