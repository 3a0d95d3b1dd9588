package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDependencyMissing is returned when the library a converter relies on is not wired in.
	ErrDependencyMissing = errors.New("required parsing library is not available")

	// ErrParse matches every *ParseError.
	ErrParse = errors.New("malformed source document")

	// ErrShape is returned when a document parses but its top-level structure cannot be flattened.
	ErrShape = errors.New("unexpected document shape")

	// ErrInvalidOption is returned for converter options that cannot be applied.
	ErrInvalidOption = errors.New("invalid converter option")

	// ErrUnsupportedFormat is returned for unknown source or output formats.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ParseError wraps an error raised by an underlying parsing library.
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
