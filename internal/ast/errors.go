package ast

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree decoding and node access.
var (
	ErrParse       = errors.New("malformed document tree")
	ErrShape       = errors.New("unexpected node shape")
	ErrEmptyInput  = errors.New("empty input")
	ErrNotDocument = errors.New("root is not a pandoc document")
)

// ParseError reports input that is not a well-formed pandoc JSON document.
// It matches ErrParse with errors.Is.
type ParseError struct {
	Offset int64 // byte offset of a syntax error, 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%v: offset %d: %v", ErrParse, e.Offset, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ShapeError reports a node whose contents do not have the structure its
// kind requires. It matches ErrShape with errors.Is.
type ShapeError struct {
	Filter string // set by the filter that hit the node, may be empty
	Kind   Kind
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Filter != "" {
		return fmt.Sprintf("%v: %s: %s node: %s", ErrShape, e.Filter, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s node: %s", ErrShape, e.Kind, e.Reason)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

func shapeErrorf(kind Kind, format string, args ...any) *ShapeError {
	return &ShapeError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
