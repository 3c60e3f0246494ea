// Package registry provides the immutable FHIR type metadata registry.
//
// A Registry maps a type name (a resource, datatype, primitive, profile or
// backbone element path) to the fields that type declares, and each field to
// its FieldInfo. The R4 registry is compiled into the binary and built on
// first use; afterwards it is read without synchronization.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/gofhir/metadata/pkg/fhirtype"
)

// R4Version is the FHIR version string of the compiled-in registry.
const R4Version = "4.0.1"

// Errors reported by Validate and New.
var (
	ErrEmptyTypeName  = errors.New("empty type name")
	ErrEmptyFieldName = errors.New("empty field name")
	ErrDanglingType   = errors.New("type is not a registry key")
	ErrChoiceName     = errors.New("choice flag does not match [x] suffix")
)

// Table is the raw form of a registry: type name to field name to metadata.
type Table map[string]map[string]fhirtype.FieldInfo

// Registry is an immutable two-level map of FHIR type metadata.
// All methods are safe for concurrent use.
type Registry struct {
	version string
	types   Table
}

var r4 = sync.OnceValue(func() *Registry {
	return &Registry{version: R4Version, types: r4Types()}
})

// R4 returns the process-wide FHIR R4 registry.
func R4() *Registry {
	return r4()
}

// New builds a registry from a caller-supplied table. The table is copied,
// so later changes to it are not observed. New fails when the table breaks
// a registry invariant; the error joins every violation found.
func New(version string, t Table) (*Registry, error) {
	r := &Registry{version: version, types: make(Table, len(t))}
	for typeName, fields := range t {
		cp := make(map[string]fhirtype.FieldInfo, len(fields))
		for name, fi := range fields {
			cp[name] = fi.Clone()
		}
		r.types[typeName] = cp
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Version returns the FHIR version the registry describes.
func (r *Registry) Version() string { return r.version }

// Fields returns the fields declared by typeName, or false when typeName is
// not a registry key. Matching is byte-exact.
func (r *Registry) Fields(typeName string) (Fields, bool) {
	m, ok := r.types[typeName]
	if !ok {
		return Fields{}, false
	}
	return Fields{m: m}, true
}

// FieldInfo returns the metadata for field on typeName. Unknown types and
// unknown fields both report false.
func (r *Registry) FieldInfo(typeName, field string) (fhirtype.FieldInfo, bool) {
	fi, ok := r.types[typeName][field]
	return fi, ok
}

// Has reports whether typeName is a registry key.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.types[typeName]
	return ok
}

// TypeCount returns the number of registered types.
func (r *Registry) TypeCount() int {
	return len(r.types)
}

// TypeNames returns all registered type names in sorted order.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks every registry invariant: each FieldInfo is well formed,
// choice fields and only choice fields carry the [x] suffix, and every
// Complex or BackboneElement type names a registry key.
func (r *Registry) Validate() error {
	var errs []error
	for _, typeName := range r.TypeNames() {
		if typeName == "" {
			errs = append(errs, ErrEmptyTypeName)
			continue
		}
		fields := Fields{m: r.types[typeName]}
		for _, name := range fields.Names() {
			fi := fields.m[name]
			if err := r.validateField(name, fi); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", typeName, name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) validateField(name string, fi fhirtype.FieldInfo) error {
	if name == "" {
		return ErrEmptyFieldName
	}
	if err := fi.Validate(); err != nil {
		return err
	}
	if fi.IsChoice != strings.HasSuffix(name, "[x]") {
		return ErrChoiceName
	}
	if fi.Type.Navigable() && !r.Has(fi.Type.Name()) {
		return fmt.Errorf("%w: %s", ErrDanglingType, fi.Type)
	}
	return nil
}
