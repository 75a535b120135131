package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"valid relative", "data/test.lift", nil},
		{"valid absolute", "/home/user/test.lift", nil},
		{"empty", "", ErrEmptyPath},
		{"too long", strings.Repeat("a", MaxPathLength+1), ErrPathTooLong},
		{"null byte", "test\x00.lift", ErrInvalidCharacter},
		{"control char", "test\n.lift", ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidatePath(%q) = %v, want nil", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid", "lexicon.lift", false},
		{"valid ranges", "lexicon.lift-ranges", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"slash", "a/b.lift", true},
		{"backslash", `a\b.lift`, true},
		{"null byte", "a\x00.lift", true},
		{"leading hyphen", "-rf.lift", true},
		{"too long", strings.Repeat("a", MaxFilenameLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"lexicon.lift", FileTypeLift},
		{"LEXICON.LIFT", FileTypeLift},
		{"lexicon.lift.xz", FileTypeLiftXZ},
		{"lexicon.lift-ranges", FileTypeLiftRanges},
		{"index.db", FileTypeSQLite},
		{"index.sqlite3", FileTypeSQLite},
		{"notes.txt", FileTypeUnknown},
		{"lexicon", FileTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFileType(tt.path); got != tt.want {
				t.Errorf("DetectFileType(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
