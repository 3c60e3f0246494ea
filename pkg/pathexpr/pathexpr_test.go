package pathexpr

import (
	"errors"
	"testing"
)

func TestIsFlat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"Patient.name.given", true},
		{"Condition.onset[x]", true},
		{"Patient", true},
		{"Observation.value_1", true},
		{"Patient..name", false},
		{"Patient.name.", false},
		{".name", false},
		{"Patient.name.where(use = 'official')", false},
		{"Patient.name[0]", false},
		{"Patient.1name", false},
		{"Patient. name", false},
		{"[x]", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFlat(tt.path); got != tt.want {
			t.Errorf("IsFlat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	c := NewChecker()

	for _, path := range []string{"Patient.name.given", "Bundle.entry.resource", "Condition.onset[x]"} {
		if err := c.Validate(path); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", path, err)
		}
	}

	tests := []struct {
		path string
		want error
	}{
		{"", ErrEmpty},
		{"Patient.name.where(", ErrSyntax},
		{"Patient.name.where(use = 'official')", ErrNotFlat},
		{"Patient.name.first()", ErrNotFlat},
	}
	for _, tt := range tests {
		if err := c.Validate(tt.path); !errors.Is(err, tt.want) {
			t.Errorf("Validate(%q) = %v, want %v", tt.path, err, tt.want)
		}
	}
}

func TestCompileCaches(t *testing.T) {
	c := NewChecker()
	first, err := c.Compile("Patient.name")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := c.Compile("Patient.name")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if first != second {
		t.Error("Compile() should return the cached expression")
	}
	if c.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1", c.CacheSize())
	}
	if _, err := c.Compile("Patient.name.where("); err == nil {
		t.Error("Compile() should fail on invalid syntax")
	}
	if c.CacheSize() != 1 {
		t.Errorf("failed compiles must not be cached, CacheSize() = %d", c.CacheSize())
	}
}

func TestCheckerCacheBound(t *testing.T) {
	c := NewChecker(WithCacheSize(2))
	for _, path := range []string{"Patient.name", "Patient.gender", "Patient.birthDate"} {
		if err := c.Validate(path); err != nil {
			t.Fatalf("Validate(%q) = %v", path, err)
		}
	}
	if c.CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2", c.CacheSize())
	}

	if err := c.Validate("Patient.birthDate"); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	s := c.CacheStats()
	if s.Evictions != 1 || s.Hits != 1 {
		t.Errorf("CacheStats() = %+v, want 1 eviction and 1 hit", s)
	}
}
