// Package errors provides standardized error types and helpers for the liftkit codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrMalformedXML indicates input that is not well-formed XML
	ErrMalformedXML = errors.New("malformed xml")
	// ErrSchemaViolation indicates a required attribute or element is missing
	// on a construct the codec models
	ErrSchemaViolation = errors.New("schema violation")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
	// ErrPrecondition indicates a caller-side invariant violation
	// (e.g. generating an entry without an id)
	ErrPrecondition = errors.New("precondition failed")
)

// MalformedXMLError reports input that failed XML well-formedness.
// It is always fatal to the whole parse.
type MalformedXMLError struct {
	Path string // file path, if known
	Err  error  // underlying decoder error
}

func (e *MalformedXMLError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed xml in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed xml: %v", e.Err)
}

func (e *MalformedXMLError) Unwrap() error {
	return ErrMalformedXML
}

// SchemaError reports a construct the codec models that is missing a
// required attribute or element. Fatal for that construct; the caller
// decides whether to abort the document or skip and report.
type SchemaError struct {
	Element  string // element name (e.g. "entry", "relation")
	Attr     string // missing attribute, if the violation is attribute-level
	ElemPath string // element path within the document (e.g. "entry[3]/sense[0]")
	Message  string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Attr != "":
		return fmt.Sprintf("%s: <%s> missing required attribute %q", e.ElemPath, e.Element, e.Attr)
	case e.Message != "":
		return fmt.Sprintf("%s: <%s>: %s", e.ElemPath, e.Element, e.Message)
	default:
		return fmt.Sprintf("%s: <%s> violates schema", e.ElemPath, e.Element)
	}
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "range", "range-element", "entry")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// PreconditionError represents a caller-side invariant violation detected
// before or during generation. Such failures indicate a bug in the caller,
// not a recoverable format error.
type PreconditionError struct {
	Construct string // construct kind (e.g. "entry", "sense")
	Message   string
}

func (e *PreconditionError) Error() string {
	if e.Construct != "" {
		return fmt.Sprintf("precondition failed for %s: %s", e.Construct, e.Message)
	}
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewMalformedXML creates a MalformedXMLError
func NewMalformedXML(path string, err error) *MalformedXMLError {
	return &MalformedXMLError{Path: path, Err: err}
}

// NewSchema creates a SchemaError for a missing required attribute
func NewSchema(elemPath, element, attr string) *SchemaError {
	return &SchemaError{ElemPath: elemPath, Element: element, Attr: attr}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewPrecondition creates a PreconditionError
func NewPrecondition(construct, message string) *PreconditionError {
	return &PreconditionError{Construct: construct, Message: message}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
