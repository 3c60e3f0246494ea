package fhirmetadata

import (
	"github.com/gofhir/metadata/pkg/choice"
	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/registry"
	"github.com/gofhir/metadata/pkg/resolver"
)

// Aliases for the types returned by the package-level functions.
type (
	FieldType     = fhirtype.FieldType
	FieldInfo     = fhirtype.FieldInfo
	PrimitiveType = fhirtype.PrimitiveType
	Fields        = registry.Fields
)

// Default returns the R4 registry used by the package-level functions.
func Default() *registry.Registry {
	return registry.R4()
}

// GetFields returns all fields of typeName.
func GetFields(typeName string) (Fields, bool) {
	return Default().Fields(typeName)
}

// GetFieldInfo returns the metadata of one field of typeName.
func GetFieldInfo(typeName, fieldName string) (FieldInfo, bool) {
	return Default().FieldInfo(typeName, fieldName)
}

// ResolvePath returns the type of the last segment of a dotted path such as
// "Patient.name.given". The first segment is the root type; choice fields
// must be spelled with their "[x]" name.
func ResolvePath(path string) (FieldType, bool) {
	return resolver.Resolve(Default(), path)
}

// ExplainPath is ResolvePath with a *resolver.PathError describing failures.
func ExplainPath(path string) (FieldType, error) {
	return resolver.Explain(Default(), path)
}

// NormalizePath rewrites typed choice names to their registry form:
// "Observation.valueQuantity.unit" becomes "Observation.value[x].unit".
// It reports false for paths that navigate through a variant other than the
// recorded type of the choice field, such as "Condition.onsetPeriod.start";
// ResolveChoicePath resolves those.
func NormalizePath(path string) (string, bool) {
	return choice.Path(Default(), path)
}

// ResolveChoicePath resolves a path that may use typed choice names. A
// typed name resolves to the selected variant, so
// "Condition.onsetPeriod.start" is a dateTime.
func ResolveChoicePath(path string) (FieldType, bool) {
	return choice.Resolve(Default(), path)
}
