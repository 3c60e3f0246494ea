package fhirtype

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// Unbounded is the Max of a field with cardinality "*".
const Unbounded = -1

// Sentinel errors reported by FieldInfo.Validate.
var (
	ErrInvalidType = errors.New("invalid field type")
	ErrEmptyName   = errors.New("type name is empty")
	ErrCardinality = errors.New("invalid cardinality")
	ErrChoiceTypes = errors.New("inconsistent choice types")
)

// FieldInfo is the metadata the registry records for one field.
type FieldInfo struct {
	// Type is the field's type. For choice fields it is the first type
	// listed by the definition.
	Type FieldType

	// Min is the minimum occurrence count.
	Min uint32

	// Max is the maximum occurrence count, or Unbounded.
	Max int

	// IsChoice is set for polymorphic fields, whose names end in "[x]".
	IsChoice bool

	choiceTypes []string
}

// NewFieldInfo returns the metadata of a non-choice field.
func NewFieldInfo(t FieldType, min uint32, max int) FieldInfo {
	return FieldInfo{Type: t, Min: min, Max: max}
}

// NewChoice returns the metadata of a choice field allowing the given type
// codes. The codes are copied.
func NewChoice(t FieldType, min uint32, max int, codes ...string) FieldInfo {
	return FieldInfo{Type: t, Min: min, Max: max, IsChoice: true, choiceTypes: slices.Clone(codes)}
}

// ChoiceTypes returns a copy of the type codes allowed by a choice field, in
// definition order. It is nil for non-choice fields.
func (fi FieldInfo) ChoiceTypes() []string {
	return slices.Clone(fi.choiceTypes)
}

// AllowsChoiceType reports whether code is one of the choice field's types.
func (fi FieldInfo) AllowsChoiceType(code string) bool {
	return slices.Contains(fi.choiceTypes, code)
}

// Unbounded reports whether the field has no upper occurrence bound.
func (fi FieldInfo) Unbounded() bool { return fi.Max == Unbounded }

// MaxOccurs returns the upper bound, or false when unbounded.
func (fi FieldInfo) MaxOccurs() (uint32, bool) {
	if fi.Max < 0 {
		return 0, false
	}
	return uint32(fi.Max), true
}

// Required reports whether at least one occurrence is mandatory.
func (fi FieldInfo) Required() bool { return fi.Min > 0 }

// Repeating reports whether the field may occur more than once.
func (fi FieldInfo) Repeating() bool { return fi.Max == Unbounded || fi.Max > 1 }

// Cardinality renders the bounds in FHIR notation, e.g. "0..*" or "1..1".
func (fi FieldInfo) Cardinality() string {
	upper := "*"
	if fi.Max != Unbounded {
		upper = strconv.Itoa(fi.Max)
	}
	return strconv.FormatUint(uint64(fi.Min), 10) + ".." + upper
}

// Equal reports whether fi and other describe the same field.
func (fi FieldInfo) Equal(other FieldInfo) bool {
	return fi.Type == other.Type &&
		fi.Min == other.Min &&
		fi.Max == other.Max &&
		fi.IsChoice == other.IsChoice &&
		slices.Equal(fi.choiceTypes, other.choiceTypes)
}

// Clone returns a copy of fi that shares no memory with it.
func (fi FieldInfo) Clone() FieldInfo {
	fi.choiceTypes = slices.Clone(fi.choiceTypes)
	return fi
}

// Validate checks the structural invariants of a single field: a valid type
// with a non-empty name where one is required, and a non-empty range with a
// positive upper bound.
func (fi FieldInfo) Validate() error {
	switch fi.Type.kind {
	case KindPrimitive:
		if !fi.Type.prim.Valid() {
			return fmt.Errorf("%w: primitive %d", ErrInvalidType, fi.Type.prim)
		}
	case KindComplex, KindBackboneElement:
		if fi.Type.name == "" {
			return fmt.Errorf("%s: %w", fi.Type.kind, ErrEmptyName)
		}
	case KindSystem:
		if !IsSystemType(fi.Type.name) {
			return fmt.Errorf("%w: system type %q", ErrInvalidType, fi.Type.name)
		}
	case KindReference:
	default:
		return ErrInvalidType
	}

	switch {
	case fi.Max == Unbounded:
	case fi.Max < 1:
		return fmt.Errorf("%w: max %d", ErrCardinality, fi.Max)
	case uint64(fi.Max) < uint64(fi.Min):
		return fmt.Errorf("%w: %s", ErrCardinality, fi.Cardinality())
	}

	if !fi.IsChoice && len(fi.choiceTypes) > 0 {
		return fmt.Errorf("%w: non-choice field lists %d types", ErrChoiceTypes, len(fi.choiceTypes))
	}
	return nil
}
