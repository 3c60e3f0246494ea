// Package fhirmetadata provides compile-time metadata about FHIR R4 types.
//
// For every resource, complex datatype and primitive of FHIR R4, and for the
// core profiles it ships, the registry records the named fields of the type,
// the type of each field, its cardinality and whether it is a choice ("[x]")
// field. On top of that it resolves dotted element paths to the type of their
// last segment. Extension definitions are only present in tables regenerated
// with "fhirmeta generate" from the hl7.fhir.r4.core package.
//
// # Quick Start
//
//	import fm "github.com/gofhir/metadata"
//
//	t, ok := fm.ResolvePath("Patient.contact.telecom.system")
//	// t == fhirtype.Primitive(fhirtype.Code), ok == true
//
//	fi, ok := fm.GetFieldInfo("Patient", "name")
//	// fi.Type == fhirtype.Complex("HumanName"), fi.Cardinality() == "0..*"
//
// # Lookups
//
// Lookups never fail loudly: an unknown type, an unknown field and a path
// that cannot be followed all report ok == false. ExplainPath returns the
// same result with a *resolver.PathError describing which segment failed.
//
// # Choice Fields
//
// Choice fields are stored under their declared name, for example
// "onset[x]". Paths using a concrete variant such as "Condition.onsetDateTime"
// do not resolve directly; NormalizePath rewrites them to the declared name
// and ResolveChoicePath resolves them to the variant's own type.
//
// # Architecture
//
//   - pkg/fhirtype: the type model (PrimitiveType, FieldType, FieldInfo)
//   - pkg/registry: the immutable table, built once on first use
//   - pkg/resolver: path resolution over any registry
//   - pkg/choice: choice-variant normalization
//   - pkg/codegen and pkg/loader: regenerate the table from FHIR packages
//   - cmd/fhirmeta: command-line access to all of the above
package fhirmetadata
