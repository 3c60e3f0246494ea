package registry

import "github.com/gofhir/metadata/pkg/fhirtype"

// Shorthands used by the generated tables.

const unbounded = fhirtype.Unbounded

func fld(t fhirtype.FieldType, min uint32, max int) fhirtype.FieldInfo {
	return fhirtype.NewFieldInfo(t, min, max)
}

func choice(t fhirtype.FieldType, min uint32, max int, codes ...string) fhirtype.FieldInfo {
	return fhirtype.NewChoice(t, min, max, codes...)
}

func prim(p fhirtype.PrimitiveType) fhirtype.FieldType { return fhirtype.Primitive(p) }

func cplx(name string) fhirtype.FieldType { return fhirtype.Complex(name) }

func ref() fhirtype.FieldType { return fhirtype.Reference() }

func bb(path string) fhirtype.FieldType { return fhirtype.BackboneElement(path) }

func sys(url string) fhirtype.FieldType { return fhirtype.System(url) }
