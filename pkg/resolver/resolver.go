// Package resolver walks dotted FHIR element paths through a type registry.
//
// Resolve answers a single question: what type sits at the end of a path
// such as "Patient.contact.telecom.system". It follows Complex and
// BackboneElement fields only. Primitives, References and FHIRPath System
// types end navigation, and typed choice names ("onsetDateTime") are not
// recognized; see package choice for normalizing them first.
package resolver

import (
	"strings"

	"github.com/gofhir/metadata/pkg/fhirtype"
)

// Lookup is the registry surface the resolver needs.
// *registry.Registry implements it.
type Lookup interface {
	FieldInfo(typeName, field string) (fhirtype.FieldInfo, bool)
}

// Resolve returns the type of the last segment of path, or false when any
// segment is unknown, when an intermediate segment is not navigable, or when
// the path has fewer than two segments. The root segment is only checked by
// the first field lookup. Empty segments never match and no trimming is
// performed. Resolve does not allocate.
func Resolve(l Lookup, path string) (fhirtype.FieldType, bool) {
	current, rest, found := strings.Cut(path, ".")
	if !found {
		return fhirtype.FieldType{}, false
	}
	for {
		field, tail, more := strings.Cut(rest, ".")
		fi, ok := l.FieldInfo(current, field)
		if !ok {
			return fhirtype.FieldType{}, false
		}
		if !more {
			return fi.Type, true
		}
		if !fi.Type.Navigable() {
			return fhirtype.FieldType{}, false
		}
		current, rest = fi.Type.Name(), tail
	}
}
