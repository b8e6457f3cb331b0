// Package welderrors provides structured error types for apiweld.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between failure categories and
// implement appropriate recovery strategies.
//
// # Error Categories
//
//   - IOError: an input file could not be read
//   - ParseError: document text could not be decoded (after the one documented
//     numeric-literal repair attempt)
//   - ReferenceError: $ref resolution failures, including circular references
//   - PointerError: JSON pointer navigation failures (bad sequence index,
//     descent into a scalar)
//   - ResourceLimitError: resource exhaustion (file size, cache count)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := resolver.Weld(resolver.WithFilePath("api.yaml"))
//	if err != nil {
//	    var refErr *welderrors.ReferenceError
//	    if errors.As(err, &refErr) && refErr.IsCircular {
//	        // the reference graph contains a cycle
//	    }
//	}
package welderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrIO indicates an input file could not be read.
	ErrIO = errors.New("io error")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrPointer indicates a JSON pointer could not be navigated.
	ErrPointer = errors.New("pointer navigation error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// IOError represents a failure to read an input file.
type IOError struct {
	// Path is the file path that could not be read
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError represents a failure to decode document text.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Repaired is true when the documented numeric-literal repair was
	// attempted before surfacing this error
	Repaired bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Repaired {
		msg += " (after literal repair attempt)"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure to resolve a $ref.
// The only non-recoverable variant is a circular reference; other resolution
// failures degrade to fallback stubs instead of producing errors.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Path is the canonical file path involved, if any
	Path string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// PointerError represents a JSON pointer navigation failure.
// Raised only for an invalid or out-of-bounds sequence index, or for
// attempting to descend into a scalar; mapping-key misses are not errors.
type PointerError struct {
	// Pointer is the full pointer being evaluated
	Pointer string
	// Segment is the path segment that failed
	Segment string
	// Message describes the navigation failure
	Message string
}

// Error returns a human-readable error message.
func (e *PointerError) Error() string {
	msg := "pointer navigation error"
	if e.Pointer != "" {
		msg += " at " + e.Pointer
	}
	if e.Segment != "" {
		msg += " (segment " + e.Segment + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PointerError) Is(target error) bool {
	return target == ErrPointer
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "file_size", "cached_documents"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
