package fhirtype

import "strings"

// Kind discriminates the variants of FieldType.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindComplex
	KindReference
	KindBackboneElement
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindComplex:
		return "Complex"
	case KindReference:
		return "Reference"
	case KindBackboneElement:
		return "BackboneElement"
	case KindSystem:
		return "System"
	default:
		return "Invalid"
	}
}

// FieldType describes what a FHIR field holds.
//
// It is a closed tagged union built through Primitive, Complex, Reference,
// BackboneElement and System. The zero value is invalid. FieldType values
// are comparable with ==.
type FieldType struct {
	kind Kind
	prim PrimitiveType
	name string
}

// Primitive returns the type of a field holding a FHIR primitive.
func Primitive(p PrimitiveType) FieldType {
	return FieldType{kind: KindPrimitive, prim: p}
}

// Complex returns the type of a field holding a nested complex type such as
// "CodeableConcept". Navigation through the field succeeds when name is a
// registry key.
func Complex(name string) FieldType {
	return FieldType{kind: KindComplex, name: name}
}

// Reference returns the type of a field holding a FHIR Reference. The
// resolver never navigates into references.
func Reference() FieldType {
	return FieldType{kind: KindReference}
}

// BackboneElement returns the type of a field holding an inline backbone.
// The name is the element path of the backbone (e.g. "Patient.contact"),
// which is also its registry key.
func BackboneElement(name string) FieldType {
	return FieldType{kind: KindBackboneElement, name: name}
}

// System returns the type of a field holding a FHIRPath System primitive,
// identified by its URL (e.g. SystemString). System types terminate
// navigation.
func System(url string) FieldType {
	return FieldType{kind: KindSystem, name: url}
}

// Kind returns the variant of t.
func (t FieldType) Kind() Kind { return t.kind }

// IsZero reports whether t is the zero FieldType.
func (t FieldType) IsZero() bool { return t == FieldType{} }

// Primitive returns the primitive held by a Primitive field type.
func (t FieldType) Primitive() (PrimitiveType, bool) {
	if t.kind != KindPrimitive {
		return 0, false
	}
	return t.prim, true
}

// Name returns the type name: the complex type, backbone path or System URL
// for those variants, the FHIR code for primitives and "Reference" for
// references.
func (t FieldType) Name() string {
	switch t.kind {
	case KindPrimitive:
		return t.prim.Code()
	case KindReference:
		return "Reference"
	default:
		return t.name
	}
}

// Navigable reports whether a path may continue past a field of this type.
func (t FieldType) Navigable() bool {
	return t.kind == KindComplex || t.kind == KindBackboneElement
}

// String renders t as Variant(payload), e.g. "Complex(HumanName)".
func (t FieldType) String() string {
	var b strings.Builder
	b.WriteString(t.kind.String())
	switch t.kind {
	case KindPrimitive:
		b.WriteByte('(')
		b.WriteString(t.prim.String())
		b.WriteByte(')')
	case KindComplex, KindBackboneElement, KindSystem:
		b.WriteByte('(')
		b.WriteString(t.name)
		b.WriteByte(')')
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
