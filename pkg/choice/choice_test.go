package choice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/metadata/pkg/choice"
	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/registry"
	"github.com/gofhir/metadata/pkg/resolver"
)

func TestField(t *testing.T) {
	tests := []struct {
		typeName string
		field    string
		want     string
		ok       bool
	}{
		{"Condition", "onsetDateTime", "onset[x]", true},
		{"Condition", "onsetAge", "onset[x]", true},
		{"Condition", "onsetString", "onset[x]", true},
		{"Condition", "onset[x]", "onset[x]", true},
		{"Condition", "subject", "subject", true},
		{"Condition", "onsetBoolean", "", false},
		{"Condition", "onsetdateTime", "", false},
		{"Condition", "onset", "", false},
		{"Patient", "deceasedBoolean", "deceased[x]", true},
		{"Patient", "multipleBirthInteger", "multipleBirth[x]", true},
		{"Observation", "valueQuantity", "value[x]", true},
		{"Observation", "valueCodeableConcept", "value[x]", true},
		{"Observation", "effectivePeriod", "effective[x]", true},
		{"Extension", "valueBase64Binary", "value[x]", true},
		{"Annotation", "authorReference", "author[x]", true},
		{"Patient", "nameString", "", false},
		{"NoSuchType", "onsetDateTime", "", false},
	}

	r := registry.R4()
	for _, tt := range tests {
		t.Run(tt.typeName+"."+tt.field, func(t *testing.T) {
			got, ok := choice.Field(r, tt.typeName, tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupSelectsVariant(t *testing.T) {
	r := registry.R4()

	m, ok := choice.Lookup(r, "Condition", "onsetAge")
	require.True(t, ok)
	assert.Equal(t, "onset[x]", m.Name)
	assert.Equal(t, "Age", m.Code)
	assert.True(t, m.Info.IsChoice)
	assert.Equal(t, fhirtype.Complex("Age"), m.Type())

	m, ok = choice.Lookup(r, "Condition", "onsetDateTime")
	require.True(t, ok)
	assert.Equal(t, fhirtype.Primitive(fhirtype.DateTime), m.Type())

	m, ok = choice.Lookup(r, "Annotation", "authorReference")
	require.True(t, ok)
	assert.Equal(t, fhirtype.Reference(), m.Type())

	m, ok = choice.Lookup(r, "Condition", "subject")
	require.True(t, ok)
	assert.Empty(t, m.Code)
	assert.Equal(t, fhirtype.Reference(), m.Type())
}

func TestPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"Condition.onsetDateTime", "Condition.onset[x]", true},
		{"Observation.valueQuantity.unit", "Observation.value[x].unit", true},
		{"Observation.component.valueString", "Observation.component.value[x]", true},
		{"Patient.name.given", "Patient.name.given", true},
		{"Condition.onset[x]", "Condition.onset[x]", true},
		{"Condition.onsetDateTime.value", "", false},
		{"Condition.subject.display", "", false},
		{"Condition.onsetBoolean", "", false},
		{"Condition.onsetPeriod.start", "", false},
		{"Observation.valuePeriod.end", "", false},
		{"Observation.effectivePeriod.start", "", false},
		{"Patient", "", false},
	}

	r := registry.R4()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := choice.Path(r, tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathResolvesLikeResolve(t *testing.T) {
	r := registry.R4()
	paths := []string{
		"Condition.onsetDateTime",
		"Condition.onsetPeriod",
		"Condition.onsetPeriod.start",
		"Observation.valueQuantity.unit",
		"Observation.valuePeriod.end",
		"Observation.effectivePeriod.start",
		"Observation.component.valueString",
		"Patient.name.given",
	}
	for _, path := range paths {
		normalized, ok := choice.Path(r, path)
		if !ok {
			continue
		}
		want, wantOK := choice.Resolve(r, path)
		got, gotOK := resolver.Resolve(r, normalized)
		assert.Equal(t, wantOK, gotOK, "%s -> %s", path, normalized)
		assert.Equal(t, want, got, "%s -> %s", path, normalized)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want fhirtype.FieldType
		ok   bool
	}{
		{"Condition.onsetDateTime", fhirtype.Primitive(fhirtype.DateTime), true},
		{"Condition.onsetPeriod", fhirtype.Complex("Period"), true},
		{"Condition.onsetPeriod.start", fhirtype.Primitive(fhirtype.DateTime), true},
		{"Observation.valueQuantity.unit", fhirtype.Primitive(fhirtype.String), true},
		{"Observation.valueQuantity.code", fhirtype.Primitive(fhirtype.Code), true},
		{"Patient.name.given", fhirtype.Primitive(fhirtype.String), true},
		{"Condition.onsetDateTime.value", fhirtype.FieldType{}, false},
		{"Condition.subject.display", fhirtype.FieldType{}, false},
		{"Patient", fhirtype.FieldType{}, false},
	}

	r := registry.R4()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := choice.Resolve(r, tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExplain(t *testing.T) {
	r := registry.R4()

	got, err := choice.Explain(r, "Condition.onsetPeriod.start")
	require.NoError(t, err)
	assert.Equal(t, fhirtype.Primitive(fhirtype.DateTime), got)

	tests := []struct {
		path    string
		segment string
		typ     string
		want    error
	}{
		{"Condition.onsetAge.start", "start", "Age", resolver.ErrUnknownField},
		{"Condition.onsetPeriod.nonexistent", "nonexistent", "Period", resolver.ErrUnknownField},
		{"Condition.onsetBoolean", "onsetBoolean", "Condition", resolver.ErrUnknownField},
		{"Condition.onsetDateTime.value", "onsetDateTime", "Condition", resolver.ErrNotNavigable},
		{"Condition", "Condition", "", resolver.ErrTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := choice.Explain(r, tt.path)
			require.ErrorIs(t, err, tt.want)

			var pe *resolver.PathError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.segment, pe.Segment)
			assert.Equal(t, tt.typ, pe.Type)
		})
	}
}
