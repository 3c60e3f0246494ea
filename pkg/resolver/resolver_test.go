package resolver_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/registry"
	"github.com/gofhir/metadata/pkg/resolver"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want fhirtype.FieldType
		ok   bool
	}{
		{"Patient.name.given", fhirtype.Primitive(fhirtype.String), true},
		{"Patient.name", fhirtype.Complex("HumanName"), true},
		{"Observation.subject", fhirtype.Reference(), true},
		{"Condition.subject", fhirtype.Reference(), true},
		{"Condition.subject.display", fhirtype.FieldType{}, false},
		{"Patient.nonexistentField", fhirtype.FieldType{}, false},
		{"Period.start", fhirtype.Primitive(fhirtype.DateTime), true},
		{"Patient", fhirtype.FieldType{}, false},
		{"Condition.onsetDateTime", fhirtype.FieldType{}, false},
		{"Patient.contact.telecom.system", fhirtype.Primitive(fhirtype.Code), true},
		{"Bundle.entry.resource", fhirtype.Complex("Resource"), true},
		{"Bundle.entry.request.method", fhirtype.Primitive(fhirtype.Code), true},
		{"Questionnaire.item.item.linkId", fhirtype.Primitive(fhirtype.String), true},
		{"Questionnaire.item.item.item.text", fhirtype.Primitive(fhirtype.String), true},
		{"Patient.id", fhirtype.System(fhirtype.SystemString), true},
		{"Patient.id.value", fhirtype.FieldType{}, false},
		{"Patient.active.extension", fhirtype.FieldType{}, false},
		{"Condition.onset[x]", fhirtype.Primitive(fhirtype.DateTime), true},
		{"NoSuchType.name", fhirtype.FieldType{}, false},
		{"", fhirtype.FieldType{}, false},
		{".", fhirtype.FieldType{}, false},
		{"Patient.", fhirtype.FieldType{}, false},
		{".name", fhirtype.FieldType{}, false},
		{"Patient..name", fhirtype.FieldType{}, false},
		{"Patient.name.", fhirtype.FieldType{}, false},
		{"Patient. name", fhirtype.FieldType{}, false},
		{"Patient.Name", fhirtype.FieldType{}, false},
	}

	r := registry.R4()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := resolver.Resolve(r, tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			explained, err := resolver.Explain(r, tt.path)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, explained)
			} else {
				var pe *resolver.PathError
				assert.True(t, errors.As(err, &pe), "Explain(%q) error = %v", tt.path, err)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	r := registry.R4()
	for _, path := range []string{"Patient.name.given", "Condition.subject.display", "Patient"} {
		first, firstOK := resolver.Resolve(r, path)
		for i := 0; i < 5; i++ {
			got, ok := resolver.Resolve(r, path)
			require.Equal(t, firstOK, ok)
			require.Equal(t, first, got)
		}
	}
}

func TestResolveAgreesWithManualLookups(t *testing.T) {
	r := registry.R4()
	paths := []string{
		"Patient.name.given",
		"Patient.contact.telecom.system",
		"Observation.component.code.coding.system",
		"Bundle.entry.request.url",
		"Questionnaire.item.item.linkId",
		"Encounter.location.location",
	}
	for _, path := range paths {
		got, ok := resolver.Resolve(r, path)
		require.True(t, ok, path)

		segments := strings.Split(path, ".")
		current := segments[0]
		var manual fhirtype.FieldType
		for _, seg := range segments[1:] {
			fi, ok := r.FieldInfo(current, seg)
			require.True(t, ok, "%s: %s.%s", path, current, seg)
			manual = fi.Type
			current = fi.Type.Name()
		}
		assert.Equal(t, manual, got, path)
	}
}

func TestSingleSegmentPathsNeverResolve(t *testing.T) {
	r := registry.R4()
	for _, name := range r.TypeNames() {
		if strings.Contains(name, ".") {
			continue
		}
		_, ok := resolver.Resolve(r, name)
		assert.False(t, ok, name)
	}
}

func TestExplainReasons(t *testing.T) {
	r := registry.R4()
	tests := []struct {
		path    string
		reason  error
		segment string
		index   int
		typ     string
	}{
		{"Patient", resolver.ErrTooShort, "Patient", 0, ""},
		{"", resolver.ErrTooShort, "", 0, ""},
		{"Patient.nonexistentField", resolver.ErrUnknownField, "nonexistentField", 1, "Patient"},
		{"NoSuchType.name", resolver.ErrUnknownField, "name", 1, "NoSuchType"},
		{"Patient.contact.bogus", resolver.ErrUnknownField, "bogus", 2, "Patient.contact"},
		{"Condition.subject.display", resolver.ErrNotNavigable, "subject", 1, "Condition"},
		{"Patient.birthDate.value", resolver.ErrNotNavigable, "birthDate", 1, "Patient"},
		{"Patient.id.value", resolver.ErrNotNavigable, "id", 1, "Patient"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := resolver.Explain(r, tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)

			var pe *resolver.PathError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.path, pe.Path)
			assert.Equal(t, tt.segment, pe.Segment)
			assert.Equal(t, tt.index, pe.Index)
			assert.Equal(t, tt.typ, pe.Type)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestResolveCustomRegistry(t *testing.T) {
	r, err := registry.New("test", registry.Table{
		"Root": {
			"child": fhirtype.NewFieldInfo(fhirtype.BackboneElement("Root.child"), 0, fhirtype.Unbounded),
			"link":  fhirtype.NewFieldInfo(fhirtype.Reference(), 0, 1),
		},
		"Root.child": {
			"self":  fhirtype.NewFieldInfo(fhirtype.BackboneElement("Root.child"), 0, fhirtype.Unbounded),
			"value": fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Decimal), 1, 1),
		},
	})
	require.NoError(t, err)

	got, ok := resolver.Resolve(r, "Root.child.self.self.value")
	require.True(t, ok)
	assert.Equal(t, fhirtype.Primitive(fhirtype.Decimal), got)

	_, ok = resolver.Resolve(r, "Root.link.value")
	assert.False(t, ok)
}

func TestResolveDoesNotAllocate(t *testing.T) {
	r := registry.R4()
	var lookup resolver.Lookup = r
	allocs := testing.AllocsPerRun(100, func() {
		resolver.Resolve(lookup, "Patient.contact.telecom.system")
		resolver.Resolve(lookup, "Condition.subject.display")
	})
	assert.Zero(t, allocs)
}

func TestConcurrentResolve(t *testing.T) {
	r := registry.R4()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				got, ok := resolver.Resolve(r, "Patient.name.given")
				if !ok || got != fhirtype.Primitive(fhirtype.String) {
					t.Errorf("Resolve() = %v, %v", got, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkResolve(b *testing.B) {
	r := registry.R4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resolver.Resolve(r, "Patient.contact.telecom.system")
	}
}
