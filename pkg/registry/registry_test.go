package registry

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gofhir/metadata/pkg/fhirtype"
)

func TestR4IsSingleton(t *testing.T) {
	if R4() != R4() {
		t.Fatal("R4() should return the same registry on every call")
	}
	if got := R4().Version(); got != R4Version {
		t.Errorf("Version() = %q, want %q", got, R4Version)
	}
}

func TestR4Validate(t *testing.T) {
	if err := R4().Validate(); err != nil {
		t.Fatalf("R4 registry violates invariants:\n%v", err)
	}
}

func TestR4Coverage(t *testing.T) {
	r := R4()
	want := []string{
		// base types
		"Resource", "DomainResource", "Element", "BackboneElement", "Extension",
		// datatypes
		"HumanName", "Period", "CodeableConcept", "Coding", "Reference", "Quantity",
		"SimpleQuantity", "Timing", "Dosage", "Meta", "Narrative", "ElementDefinition",
		// primitives
		"string", "boolean", "dateTime", "xhtml",
		// resources
		"Patient", "Observation", "Condition", "Bundle", "HealthcareService",
		"Questionnaire", "StructureDefinition", "Library", "Binary",
		// backbones
		"Patient.contact", "Bundle.entry", "Bundle.entry.request", "Questionnaire.item",
		// profiles
		"Shareable ValueSet", "CQL Library",
	}
	for _, name := range want {
		if !r.Has(name) {
			t.Errorf("R4 registry is missing %q", name)
		}
	}
	if r.TypeCount() < 500 {
		t.Errorf("TypeCount() = %d, expected several hundred types", r.TypeCount())
	}
}

func TestR4HasNoExtensionDefinitions(t *testing.T) {
	r := R4()
	for _, name := range []string{"Addendum Of", "Goal acceptance", "media", "replaces", "genderIdentity"} {
		if r.Has(name) {
			t.Errorf("R4 registry should not contain extension %q", name)
		}
	}

	// Only the base Extension type has the bare id/extension/url/value[x] shape.
	for _, name := range r.TypeNames() {
		fields, _ := r.Fields(name)
		if fields.Len() != 4 || name == "Extension" {
			continue
		}
		_, hasURL := fields.Get("url")
		_, hasValue := fields.Get("value[x]")
		if hasURL && hasValue {
			t.Errorf("%q has the shape of an unconstrained extension", name)
		}
	}
}

func TestFieldInfoMatchesTable(t *testing.T) {
	r := R4()
	for _, typeName := range r.TypeNames() {
		fields, ok := r.Fields(typeName)
		if !ok {
			t.Fatalf("Fields(%q) absent for a registry key", typeName)
		}
		n := 0
		for name, fi := range fields.All() {
			n++
			got, ok := r.FieldInfo(typeName, name)
			if !ok {
				t.Fatalf("FieldInfo(%q, %q) absent", typeName, name)
			}
			if !got.Equal(fi) {
				t.Errorf("FieldInfo(%q, %q) = %+v, want %+v", typeName, name, got, fi)
			}
		}
		if n != fields.Len() {
			t.Errorf("%s: All() yielded %d fields, Len() = %d", typeName, n, fields.Len())
		}
		if _, ok := r.FieldInfo(typeName, "noSuchField"); ok {
			t.Errorf("FieldInfo(%q, noSuchField) should be absent", typeName)
		}
	}
}

func TestUnknownTypes(t *testing.T) {
	r := R4()
	for _, name := range []string{"", "patient", "PATIENT", "Patient ", "NoSuchType", "Patient.name"} {
		if _, ok := r.Fields(name); ok {
			t.Errorf("Fields(%q) should be absent", name)
		}
		if _, ok := r.FieldInfo(name, "id"); ok {
			t.Errorf("FieldInfo(%q, id) should be absent", name)
		}
	}
}

func TestCardinalityInvariants(t *testing.T) {
	r := R4()
	for _, typeName := range r.TypeNames() {
		fields, _ := r.Fields(typeName)
		for name, fi := range fields.All() {
			if fi.Unbounded() {
				continue
			}
			if fi.Max < 1 || uint64(fi.Max) < uint64(fi.Min) {
				t.Errorf("%s.%s has cardinality %s", typeName, name, fi.Cardinality())
			}
		}
	}
}

func TestNamedTypesAreKeys(t *testing.T) {
	r := R4()
	for _, typeName := range r.TypeNames() {
		fields, _ := r.Fields(typeName)
		for name, fi := range fields.All() {
			switch fi.Type.Kind() {
			case fhirtype.KindComplex, fhirtype.KindBackboneElement:
				if !r.Has(fi.Type.Name()) {
					t.Errorf("%s.%s: %v is not a registry key", typeName, name, fi.Type)
				}
			case fhirtype.KindSystem:
				if !strings.HasPrefix(fi.Type.Name(), fhirtype.SystemPrefix) {
					t.Errorf("%s.%s: bad system type %v", typeName, name, fi.Type)
				}
			}
		}
	}
}

func TestKnownFields(t *testing.T) {
	tests := []struct {
		typeName string
		field    string
		want     fhirtype.FieldInfo
	}{
		{"HealthcareService", "active", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Boolean), 0, 1)},
		{"Patient", "name", fhirtype.NewFieldInfo(fhirtype.Complex("HumanName"), 0, fhirtype.Unbounded)},
		{"Patient", "contact", fhirtype.NewFieldInfo(fhirtype.BackboneElement("Patient.contact"), 0, fhirtype.Unbounded)},
		{"HumanName", "given", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.String), 0, fhirtype.Unbounded)},
		{"Period", "start", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.DateTime), 0, 1)},
		{"Condition", "subject", fhirtype.NewFieldInfo(fhirtype.Reference(), 1, 1)},
		{"Bundle.entry", "resource", fhirtype.NewFieldInfo(fhirtype.Complex("Resource"), 0, 1)},
		{"Extension", "url", fhirtype.NewFieldInfo(fhirtype.System(fhirtype.SystemString), 1, 1)},
		{"ContactPoint", "system", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Code), 0, 1)},
	}

	r := R4()
	for _, tt := range tests {
		t.Run(tt.typeName+"."+tt.field, func(t *testing.T) {
			got, ok := r.FieldInfo(tt.typeName, tt.field)
			if !ok {
				t.Fatalf("FieldInfo(%q, %q) absent", tt.typeName, tt.field)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FieldInfo(%q, %q) = %v %s choice=%v; want %v %s",
					tt.typeName, tt.field, got.Type, got.Cardinality(), got.IsChoice, tt.want.Type, tt.want.Cardinality())
			}
		})
	}
}

func TestChoiceField(t *testing.T) {
	fi, ok := R4().FieldInfo("Condition", "onset[x]")
	if !ok {
		t.Fatal("Condition.onset[x] absent")
	}
	if !fi.IsChoice {
		t.Error("Condition.onset[x] should be a choice field")
	}
	if fi.Type != fhirtype.Primitive(fhirtype.DateTime) {
		t.Errorf("onset[x] type = %v, want the first choice type", fi.Type)
	}
	for _, code := range []string{"dateTime", "Age", "Period", "Range", "string"} {
		if !fi.AllowsChoiceType(code) {
			t.Errorf("onset[x] should allow %q", code)
		}
	}
	if _, ok := R4().FieldInfo("Condition", "onsetDateTime"); ok {
		t.Error("typed choice names are not registry fields")
	}
}

func TestFieldsNamesSorted(t *testing.T) {
	fields, ok := R4().Fields("Period")
	if !ok {
		t.Fatal("Period absent")
	}
	got := strings.Join(fields.Names(), ",")
	if got != "end,extension,id,start" {
		t.Errorf("Names() = %s", got)
	}
	var empty Fields
	if empty.Len() != 0 || len(empty.Names()) != 0 {
		t.Error("zero Fields should be empty")
	}
}

func TestNewCopiesTable(t *testing.T) {
	table := Table{
		"Thing": {
			"value": fld(prim(fhirtype.String), 0, 1),
			"part":  fld(cplx("Part"), 0, unbounded),
		},
		"Part": {
			"code": fld(prim(fhirtype.Code), 1, 1),
		},
	}
	r, err := New("test", table)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	table["Thing"]["value"] = fld(prim(fhirtype.Boolean), 0, 1)
	delete(table, "Part")

	fi, ok := r.FieldInfo("Thing", "value")
	if !ok || fi.Type != prim(fhirtype.String) {
		t.Errorf("registry observed caller mutation: %v", fi.Type)
	}
	if !r.Has("Part") {
		t.Error("registry observed caller deletion")
	}
	if r.Version() != "test" {
		t.Errorf("Version() = %q", r.Version())
	}
}

func TestNewRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  error
	}{
		{
			name:  "dangling complex",
			table: Table{"A": {"b": fld(cplx("Missing"), 0, 1)}},
			want:  ErrDanglingType,
		},
		{
			name:  "dangling backbone",
			table: Table{"A": {"b": fld(bb("A.b"), 0, 1)}},
			want:  ErrDanglingType,
		},
		{
			name:  "max zero",
			table: Table{"A": {"b": fld(prim(fhirtype.String), 0, 0)}},
			want:  fhirtype.ErrCardinality,
		},
		{
			name:  "choice without suffix",
			table: Table{"A": {"value": choice(prim(fhirtype.String), 0, 1, "string")}},
			want:  ErrChoiceName,
		},
		{
			name:  "suffix without choice",
			table: Table{"A": {"value[x]": fld(prim(fhirtype.String), 0, 1)}},
			want:  ErrChoiceName,
		},
		{
			name:  "empty field name",
			table: Table{"A": {"": fld(prim(fhirtype.String), 0, 1)}},
			want:  ErrEmptyFieldName,
		},
		{
			name:  "empty type name",
			table: Table{"": {}},
			want:  ErrEmptyTypeName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.table)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSystemSentinelsAllowed(t *testing.T) {
	table := Table{"A": {"id": fld(sys(fhirtype.SystemString), 0, 1)}}
	if _, err := New("test", table); err != nil {
		t.Errorf("System types need no registry key: %v", err)
	}
}

func TestConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := R4()
			for j := 0; j < 200; j++ {
				if _, ok := r.FieldInfo("Patient", "name"); !ok {
					t.Error("Patient.name absent")
					return
				}
				if fields, ok := r.Fields("HumanName"); !ok || fields.Len() == 0 {
					t.Error("HumanName fields absent")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkFieldInfo(b *testing.B) {
	r := R4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.FieldInfo("Patient", "name")
	}
}
