package fhirmetadata_test

import (
	"errors"
	"fmt"
	"testing"

	fm "github.com/gofhir/metadata"
	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/resolver"
)

func TestGetFieldInfo(t *testing.T) {
	fi, ok := fm.GetFieldInfo("Patient", "name")
	if !ok {
		t.Fatal("Patient.name not found")
	}
	if fi.Type != fhirtype.Complex("HumanName") || fi.Cardinality() != "0..*" || fi.IsChoice {
		t.Errorf("Patient.name = %v %s choice=%v", fi.Type, fi.Cardinality(), fi.IsChoice)
	}

	if _, ok := fm.GetFieldInfo("Patient", "nonexistent"); ok {
		t.Error("unknown field should not be found")
	}
	if _, ok := fm.GetFieldInfo("patient", "name"); ok {
		t.Error("type names are case-sensitive")
	}
}

func TestGetFields(t *testing.T) {
	fields, ok := fm.GetFields("Period")
	if !ok {
		t.Fatal("Period not found")
	}
	if _, ok := fields.Get("start"); !ok {
		t.Error("Period.start missing")
	}
	if _, ok := fm.GetFields("NotAType"); ok {
		t.Error("unknown type should not be found")
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		path string
		want fhirtype.FieldType
		ok   bool
	}{
		{"Patient.name.given", fhirtype.Primitive(fhirtype.String), true},
		{"Patient.contact.telecom.system", fhirtype.Primitive(fhirtype.Code), true},
		{"Condition.subject", fhirtype.Reference(), true},
		{"Questionnaire.item.item.linkId", fhirtype.Primitive(fhirtype.String), true},
		{"Condition.onset[x]", fhirtype.Primitive(fhirtype.DateTime), true},
		{"Condition.onsetDateTime", fhirtype.FieldType{}, false},
		{"Patient", fhirtype.FieldType{}, false},
		{"", fhirtype.FieldType{}, false},
	}

	for _, tt := range tests {
		got, ok := fm.ResolvePath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolvePath(%q) = (%v, %v); want (%v, %v)", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExplainPath(t *testing.T) {
	if _, err := fm.ExplainPath("Patient.name.given"); err != nil {
		t.Errorf("ExplainPath() error = %v", err)
	}

	_, err := fm.ExplainPath("Patient.name.nonexistent")
	var pe *resolver.PathError
	if !errors.As(err, &pe) || !errors.Is(err, resolver.ErrUnknownField) {
		t.Fatalf("ExplainPath() error = %v, want *PathError wrapping ErrUnknownField", err)
	}
	if pe.Segment != "nonexistent" {
		t.Errorf("Segment = %q", pe.Segment)
	}
}

func TestChoicePaths(t *testing.T) {
	norm, ok := fm.NormalizePath("Observation.valueQuantity.unit")
	if !ok || norm != "Observation.value[x].unit" {
		t.Errorf("NormalizePath() = %q, %v", norm, ok)
	}
	if got, ok := fm.ResolvePath(norm); !ok || got != fhirtype.Primitive(fhirtype.String) {
		t.Errorf("ResolvePath(%q) = %v, %v", norm, got, ok)
	}

	if norm, ok := fm.NormalizePath("Condition.onsetPeriod.start"); ok {
		t.Errorf("NormalizePath(Condition.onsetPeriod.start) = %q, want no registry form", norm)
	}

	got, ok := fm.ResolveChoicePath("Condition.onsetPeriod.start")
	if !ok || got != fhirtype.Primitive(fhirtype.DateTime) {
		t.Errorf("ResolveChoicePath() = %v, %v", got, ok)
	}
}

func TestResolveAgreesWithFieldInfo(t *testing.T) {
	r := fm.Default()
	for _, name := range r.TypeNames() {
		fields, _ := r.Fields(name)
		for field, fi := range fields.All() {
			got, ok := fm.ResolvePath(name + "." + field)
			if !ok || got != fi.Type {
				t.Fatalf("ResolvePath(%s.%s) = (%v, %v); want %v", name, field, got, ok, fi.Type)
			}
		}
	}
}

func ExampleResolvePath() {
	t, ok := fm.ResolvePath("Patient.contact.telecom.system")
	fmt.Println(t, ok)

	_, ok = fm.ResolvePath("Patient.name.given.value")
	fmt.Println(ok)
	// Output:
	// Primitive(Code) true
	// false
}

func ExampleGetFieldInfo() {
	fi, _ := fm.GetFieldInfo("Observation", "value[x]")
	fmt.Println(fi.IsChoice, fi.Cardinality(), fi.AllowsChoiceType("Quantity"))
	// Output:
	// true 0..1 true
}
