package fhirmetadata

import (
	"testing"
)

func TestFHIRVersion_String(t *testing.T) {
	if got := R4.String(); got != "R4" {
		t.Errorf("R4.String() = %q; want %q", got, "R4")
	}
}

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    bool
	}{
		{R4, true},
		{"R4B", false},
		{"R5", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want FHIRVersion
		ok   bool
	}{
		{"R4", R4, true},
		{"r4", R4, true},
		{"4.0.1", R4, true},
		{" 4.0.1 ", R4, true},
		{"4.3.0", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseVersion(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseVersion(%q) = (%q, %v); want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGetVersionConfig_R4(t *testing.T) {
	cfg, ok := getVersionConfig(R4)
	if !ok {
		t.Fatal("getVersionConfig(R4) returned false")
	}

	if cfg.CorePackageName != "hl7.fhir.r4.core" {
		t.Errorf("CorePackageName = %q; want %q", cfg.CorePackageName, "hl7.fhir.r4.core")
	}
	if cfg.CorePackageVersion != "4.0.1" {
		t.Errorf("CorePackageVersion = %q; want %q", cfg.CorePackageVersion, "4.0.1")
	}
	if cfg.FHIRVersionString != "4.0.1" {
		t.Errorf("FHIRVersionString = %q; want %q", cfg.FHIRVersionString, "4.0.1")
	}
}

func TestGetVersionConfig_Invalid(t *testing.T) {
	_, ok := getVersionConfig("R3")
	if ok {
		t.Error("getVersionConfig(R3) should return false")
	}
}

func TestFHIRVersion_CorePackageAndRegistry(t *testing.T) {
	ref, ok := R4.CorePackage()
	if !ok || ref.String() != "hl7.fhir.r4.core#4.0.1" {
		t.Errorf("R4.CorePackage() = %v, %v", ref, ok)
	}
	if R4.Number() != "4.0.1" {
		t.Errorf("R4.Number() = %q", R4.Number())
	}

	r, ok := R4.Registry()
	if !ok || r != Default() {
		t.Error("R4.Registry() should return the default registry")
	}
	if _, ok := FHIRVersion("R5").Registry(); ok {
		t.Error("R5 has no registry")
	}
}

func BenchmarkFHIRVersion_IsValid(b *testing.B) {
	versions := []FHIRVersion{R4, "R4B", "R5", "invalid"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = versions[i%len(versions)].IsValid()
	}
}
