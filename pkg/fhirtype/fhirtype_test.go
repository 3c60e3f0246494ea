package fhirtype

import (
	"errors"
	"testing"
)

func TestPrimitiveFromCode(t *testing.T) {
	tests := []struct {
		code string
		want PrimitiveType
		ok   bool
	}{
		{"boolean", Boolean, true},
		{"dateTime", DateTime, true},
		{"base64Binary", Base64Binary, true},
		{"positiveInt", PositiveInt, true},
		{"uuid", Uri, true},
		{"xhtml", String, true},
		{"DateTime", 0, false},
		{"integer64", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := PrimitiveFromCode(tt.code)
			if ok != tt.ok || got != tt.want {
				t.Errorf("PrimitiveFromCode(%q) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPrimitiveCodesRoundTrip(t *testing.T) {
	all := Primitives()
	if len(all) != 18 {
		t.Fatalf("Primitives() returned %d values, want 18", len(all))
	}
	for _, p := range all {
		got, ok := PrimitiveFromCode(p.Code())
		if !ok || got != p {
			t.Errorf("PrimitiveFromCode(%q) = %v, %v; want %v", p.Code(), got, ok, p)
		}
	}
	var zero PrimitiveType
	if zero.Valid() {
		t.Error("zero PrimitiveType should be invalid")
	}
	if zero.Code() != "" {
		t.Errorf("zero Code() = %q, want empty", zero.Code())
	}
}

func TestFieldTypeAccessors(t *testing.T) {
	tests := []struct {
		name      string
		ft        FieldType
		kind      Kind
		typeName  string
		navigable bool
		str       string
	}{
		{"primitive", Primitive(DateTime), KindPrimitive, "dateTime", false, "Primitive(DateTime)"},
		{"complex", Complex("HumanName"), KindComplex, "HumanName", true, "Complex(HumanName)"},
		{"reference", Reference(), KindReference, "Reference", false, "Reference"},
		{"backbone", BackboneElement("Patient.contact"), KindBackboneElement, "Patient.contact", true, "BackboneElement(Patient.contact)"},
		{"system", System(SystemString), KindSystem, SystemString, false, "System(" + SystemString + ")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ft.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.ft.Name(); got != tt.typeName {
				t.Errorf("Name() = %q, want %q", got, tt.typeName)
			}
			if got := tt.ft.Navigable(); got != tt.navigable {
				t.Errorf("Navigable() = %v, want %v", got, tt.navigable)
			}
			if got := tt.ft.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestFieldTypeEquality(t *testing.T) {
	if Complex("Period") != Complex("Period") {
		t.Error("equal Complex types should compare equal")
	}
	if Complex("Patient.contact") == BackboneElement("Patient.contact") {
		t.Error("Complex and BackboneElement with the same name must differ")
	}
	if Primitive(Code) == Primitive(String) {
		t.Error("different primitives must differ")
	}
	if !(FieldType{}).IsZero() {
		t.Error("zero FieldType should report IsZero")
	}
	if p, ok := Complex("Period").Primitive(); ok || p != 0 {
		t.Error("Primitive() on a complex type should report false")
	}
}

func TestFromCode(t *testing.T) {
	tests := []struct {
		code string
		want FieldType
	}{
		{"string", Primitive(String)},
		{"uuid", Primitive(Uri)},
		{"Reference", Reference()},
		{"CodeableConcept", Complex("CodeableConcept")},
		{SystemBoolean, System(SystemBoolean)},
	}
	for _, tt := range tests {
		if got := FromCode(tt.code); got != tt.want {
			t.Errorf("FromCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestSystemTypes(t *testing.T) {
	if !IsSystemType(SystemDateTime) {
		t.Error("SystemDateTime should be a system type")
	}
	if IsSystemType(SystemPrefix) {
		t.Error("bare prefix is not a system type")
	}
	if IsSystemType("string") {
		t.Error("string is not a system type")
	}
	if code, ok := SystemPrimitive(SystemInteger); !ok || code != "integer" {
		t.Errorf("SystemPrimitive(SystemInteger) = %q, %v", code, ok)
	}
}

func TestChoiceSuffix(t *testing.T) {
	tests := map[string]string{
		"dateTime":        "DateTime",
		"string":          "String",
		"CodeableConcept": "CodeableConcept",
		"":                "",
	}
	for in, want := range tests {
		if got := ChoiceSuffix(in); got != want {
			t.Errorf("ChoiceSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldInfoCardinality(t *testing.T) {
	tests := []struct {
		fi        FieldInfo
		card      string
		required  bool
		repeating bool
	}{
		{NewFieldInfo(Primitive(Boolean), 0, 1), "0..1", false, false},
		{NewFieldInfo(Reference(), 1, 1), "1..1", true, false},
		{NewFieldInfo(Complex("HumanName"), 0, Unbounded), "0..*", false, true},
		{NewFieldInfo(Complex("Coding"), 1, 3), "1..3", true, true},
	}
	for _, tt := range tests {
		if got := tt.fi.Cardinality(); got != tt.card {
			t.Errorf("Cardinality() = %q, want %q", got, tt.card)
		}
		if got := tt.fi.Required(); got != tt.required {
			t.Errorf("%s Required() = %v", tt.card, got)
		}
		if got := tt.fi.Repeating(); got != tt.repeating {
			t.Errorf("%s Repeating() = %v", tt.card, got)
		}
	}

	if _, ok := NewFieldInfo(Reference(), 0, Unbounded).MaxOccurs(); ok {
		t.Error("MaxOccurs() should report false for unbounded fields")
	}
	if n, ok := NewFieldInfo(Reference(), 0, 1).MaxOccurs(); !ok || n != 1 {
		t.Errorf("MaxOccurs() = %d, %v; want 1, true", n, ok)
	}
}

func TestFieldInfoValidate(t *testing.T) {
	tests := []struct {
		name string
		fi   FieldInfo
		want error
	}{
		{"ok", NewFieldInfo(Primitive(String), 0, 1), nil},
		{"ok choice", NewChoice(Primitive(DateTime), 0, 1, "dateTime", "Period"), nil},
		{"ok system", NewFieldInfo(System(SystemString), 0, 1), nil},
		{"zero type", FieldInfo{Max: 1}, ErrInvalidType},
		{"bad primitive", NewFieldInfo(Primitive(0), 0, 1), ErrInvalidType},
		{"empty complex", NewFieldInfo(Complex(""), 0, 1), ErrEmptyName},
		{"empty backbone", NewFieldInfo(BackboneElement(""), 0, 1), ErrEmptyName},
		{"bad system", NewFieldInfo(System("String"), 0, 1), ErrInvalidType},
		{"max zero", NewFieldInfo(Primitive(String), 0, 0), ErrCardinality},
		{"min over max", NewFieldInfo(Primitive(String), 2, 1), ErrCardinality},
		{"stray choice types", FieldInfo{Type: Reference(), Max: 1, choiceTypes: []string{"Reference"}}, ErrChoiceTypes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fi.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChoiceTypesAreCopied(t *testing.T) {
	codes := []string{"dateTime", "Age"}
	fi := NewChoice(Primitive(DateTime), 0, 1, codes...)
	codes[0] = "string"

	got := fi.ChoiceTypes()
	if got[0] != "dateTime" {
		t.Fatalf("constructor did not copy codes: %v", got)
	}
	got[1] = "Range"
	if !fi.AllowsChoiceType("Age") || fi.AllowsChoiceType("Range") {
		t.Error("ChoiceTypes() must return a copy")
	}

	clone := fi.Clone()
	if !clone.Equal(fi) {
		t.Error("Clone() should be Equal to the original")
	}
	if fi.Equal(NewFieldInfo(Primitive(DateTime), 0, 1)) {
		t.Error("choice and non-choice fields must not be Equal")
	}
}
