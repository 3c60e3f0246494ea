package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofhir/metadata/pkg/fhirtype"
)

// Reasons a path fails to resolve, wrapped by PathError.
var (
	ErrTooShort     = errors.New("path has no field segment")
	ErrUnknownField = errors.New("unknown field")
	ErrNotNavigable = errors.New("field type cannot be navigated")
)

// PathError describes where and why Explain stopped.
type PathError struct {
	// Path is the full input path.
	Path string
	// Segment is the segment being resolved when resolution stopped.
	Segment string
	// Index is the zero-based position of Segment within Path.
	Index int
	// Type is the type name Segment was looked up on.
	Type string
	// Err is one of ErrTooShort, ErrUnknownField or ErrNotNavigable.
	Err error
}

func (e *PathError) Error() string {
	switch {
	case errors.Is(e.Err, ErrTooShort):
		return fmt.Sprintf("resolve %q: %v", e.Path, e.Err)
	case errors.Is(e.Err, ErrNotNavigable):
		return fmt.Sprintf("resolve %q: segment %d %q: %v", e.Path, e.Index, e.Segment, e.Err)
	default:
		return fmt.Sprintf("resolve %q: segment %d: %v %q on %s", e.Path, e.Index, e.Err, e.Segment, e.Type)
	}
}

func (e *PathError) Unwrap() error { return e.Err }

// Explain resolves path exactly like Resolve and, on failure, reports which
// segment stopped resolution and why.
func Explain(l Lookup, path string) (fhirtype.FieldType, error) {
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return fhirtype.FieldType{}, &PathError{Path: path, Segment: path, Err: ErrTooShort}
	}

	current := segments[0]
	for i := 1; i < len(segments); i++ {
		field := segments[i]
		fi, ok := l.FieldInfo(current, field)
		if !ok {
			return fhirtype.FieldType{}, &PathError{Path: path, Segment: field, Index: i, Type: current, Err: ErrUnknownField}
		}
		if i == len(segments)-1 {
			return fi.Type, nil
		}
		if !fi.Type.Navigable() {
			return fhirtype.FieldType{}, &PathError{
				Path:    path,
				Segment: field,
				Index:   i,
				Type:    current,
				Err:     fmt.Errorf("%w: %s", ErrNotNavigable, fi.Type),
			}
		}
		current = fi.Type.Name()
	}
	return fhirtype.FieldType{}, &PathError{Path: path, Segment: path, Err: ErrTooShort}
}
