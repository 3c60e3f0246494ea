package registry

import (
	"iter"

	"golang.org/x/exp/slices"

	"github.com/gofhir/metadata/pkg/fhirtype"
)

// Fields is a read-only view of the fields one type declares.
// The zero value is an empty view.
type Fields struct {
	m map[string]fhirtype.FieldInfo
}

// Get returns the metadata of a single field.
func (f Fields) Get(name string) (fhirtype.FieldInfo, bool) {
	fi, ok := f.m[name]
	return fi, ok
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f.m) }

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f.m))
	for name := range f.m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All iterates over the fields in no particular order.
func (f Fields) All() iter.Seq2[string, fhirtype.FieldInfo] {
	return func(yield func(string, fhirtype.FieldInfo) bool) {
		for name, fi := range f.m {
			if !yield(name, fi) {
				return
			}
		}
	}
}
