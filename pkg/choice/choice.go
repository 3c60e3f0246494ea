// Package choice maps typed choice element names to their registry form.
//
// FHIR instances spell polymorphic elements with the chosen type appended,
// e.g. "onsetDateTime" or "valueQuantity", while the registry records them
// once as "onset[x]" and "value[x]". The resolver deliberately does not
// perform that mapping; callers that start from instance names use this
// package first.
package choice

import (
	"fmt"
	"strings"

	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/resolver"
)

// Match describes how a field name was found on a type.
type Match struct {
	// Name is the registry field name, e.g. "onset[x]".
	Name string
	// Code is the FHIR type code selected by a typed choice name, e.g.
	// "dateTime". It is empty when the field matched by its registry name.
	Code string
	// Info is the registry metadata of the field.
	Info fhirtype.FieldInfo
}

// Type returns the concrete type of the matched field: the selected variant
// for typed choice names and the recorded type otherwise.
func (m Match) Type() fhirtype.FieldType {
	if m.Code == "" {
		return m.Info.Type
	}
	return fhirtype.FromCode(m.Code)
}

// Lookup finds field on typeName, accepting registry names as well as typed
// choice names whose suffix is one of the choice field's allowed types.
func Lookup(l resolver.Lookup, typeName, field string) (Match, bool) {
	if fi, ok := l.FieldInfo(typeName, field); ok {
		return Match{Name: field, Info: fi}, true
	}
	if strings.HasSuffix(field, "[x]") {
		return Match{}, false
	}
	// The type suffix starts at an upper-case letter; try each split point.
	for i := 1; i < len(field); i++ {
		c := field[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		name := field[:i] + "[x]"
		fi, ok := l.FieldInfo(typeName, name)
		if !ok || !fi.IsChoice {
			continue
		}
		suffix := field[i:]
		for _, code := range fi.ChoiceTypes() {
			if fhirtype.ChoiceSuffix(code) == suffix {
				return Match{Name: name, Code: code, Info: fi}, true
			}
		}
	}
	return Match{}, false
}

// Field returns the registry name for field on typeName: the field itself
// when it is registered, or the [x] form of a typed choice name.
func Field(l resolver.Lookup, typeName, field string) (string, bool) {
	m, ok := Lookup(l, typeName, field)
	if !ok {
		return "", false
	}
	return m.Name, true
}

// Path rewrites every typed choice segment of path into its [x] form, so
// that resolver.Resolve on the result yields the type choice.Resolve yields
// on the input. It reports false when a segment cannot be matched, a
// non-terminal segment cannot be navigated, or a non-terminal typed segment
// selects a variant other than the recorded type of its choice field: the
// [x] form navigates through the recorded type only, so
// "Condition.onsetPeriod.start" has no registry form. The root segment is
// copied unchanged.
func Path(l resolver.Lookup, path string) (string, bool) {
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return "", false
	}
	current := segments[0]
	for i := 1; i < len(segments); i++ {
		m, ok := Lookup(l, current, segments[i])
		if !ok {
			return "", false
		}
		segments[i] = m.Name
		if i == len(segments)-1 {
			break
		}
		next := m.Type()
		if next != m.Info.Type || !next.Navigable() {
			return "", false
		}
		current = next.Name()
	}
	return strings.Join(segments, "."), true
}

// Resolve behaves like resolver.Resolve but accepts typed choice names. A
// typed choice segment resolves to its selected variant, so
// "Observation.valueQuantity.unit" reaches Quantity.unit.
func Resolve(l resolver.Lookup, path string) (fhirtype.FieldType, bool) {
	current, rest, found := strings.Cut(path, ".")
	if !found {
		return fhirtype.FieldType{}, false
	}
	for {
		field, tail, more := strings.Cut(rest, ".")
		m, ok := Lookup(l, current, field)
		if !ok {
			return fhirtype.FieldType{}, false
		}
		t := m.Type()
		if !more {
			return t, true
		}
		if !t.Navigable() {
			return fhirtype.FieldType{}, false
		}
		current, rest = t.Name(), tail
	}
}

// Explain is Resolve with a *resolver.PathError describing failures. Typed
// choice segments are matched the way Resolve matches them, so the reported
// segment is the one that failed after choice matching, e.g. "start" on
// Age for "Condition.onsetAge.start".
func Explain(l resolver.Lookup, path string) (fhirtype.FieldType, error) {
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return fhirtype.FieldType{}, &resolver.PathError{Path: path, Segment: path, Err: resolver.ErrTooShort}
	}

	current := segments[0]
	for i := 1; i < len(segments); i++ {
		field := segments[i]
		m, ok := Lookup(l, current, field)
		if !ok {
			return fhirtype.FieldType{}, &resolver.PathError{Path: path, Segment: field, Index: i, Type: current, Err: resolver.ErrUnknownField}
		}
		t := m.Type()
		if i == len(segments)-1 {
			return t, nil
		}
		if !t.Navigable() {
			return fhirtype.FieldType{}, &resolver.PathError{
				Path:    path,
				Segment: field,
				Index:   i,
				Type:    current,
				Err:     fmt.Errorf("%w: %s", resolver.ErrNotNavigable, t),
			}
		}
		current = t.Name()
	}
	return fhirtype.FieldType{}, &resolver.PathError{Path: path, Segment: path, Err: resolver.ErrTooShort}
}
