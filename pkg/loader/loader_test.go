package loader

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofhir/metadata/pkg/logger"
)

const testManifest = `{"name":"example.fhir.test","version":"0.1.0","fhirVersions":["4.0.1"]}`

const testPatientSD = `{
	"resourceType": "StructureDefinition",
	"id": "Patient",
	"url": "http://hl7.org/fhir/StructureDefinition/Patient",
	"name": "Patient",
	"kind": "resource",
	"type": "Patient",
	"derivation": "specialization"
}`

const testPeriodSD = `{
	"resourceType": "StructureDefinition",
	"id": "Period",
	"url": "http://hl7.org/fhir/StructureDefinition/Period",
	"name": "Period",
	"kind": "complex-type",
	"type": "Period"
}`

const testValueSet = `{
	"resourceType": "ValueSet",
	"id": "test-valueset",
	"url": "http://example.org/fhir/ValueSet/test-valueset"
}`

func quietLoader(basePath string) *Loader {
	return NewLoader(basePath, WithLogger(logger.New(io.Discard, logger.LevelNone)))
}

func buildTgz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeCachePackage(t *testing.T, base, spec string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(base, spec, "package")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDefaultPackagePath(t *testing.T) {
	path := DefaultPackagePath()
	if path == "" {
		t.Error("DefaultPackagePath returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".fhir", "packages")
	if path != expected {
		t.Errorf("DefaultPackagePath = %q, want %q", path, expected)
	}
}

func TestPackageRefString(t *testing.T) {
	ref := PackageRef{Name: "hl7.fhir.r4.core", Version: "4.0.1"}
	expected := "hl7.fhir.r4.core#4.0.1"
	if ref.String() != expected {
		t.Errorf("PackageRef.String() = %q, want %q", ref.String(), expected)
	}
}

func TestParsePackageSpec(t *testing.T) {
	tests := []struct {
		spec        string
		wantName    string
		wantVersion string
	}{
		{"hl7.fhir.r4.core#4.0.1", "hl7.fhir.r4.core", "4.0.1"},
		{"hl7.terminology.r4#7.0.1", "hl7.terminology.r4", "7.0.1"},
		{"package-without-version", "package-without-version", ""},
	}

	for _, tt := range tests {
		name, version := ParsePackageSpec(tt.spec)
		if name != tt.wantName || version != tt.wantVersion {
			t.Errorf("ParsePackageSpec(%q) = (%q, %q), want (%q, %q)",
				tt.spec, name, version, tt.wantName, tt.wantVersion)
		}
	}
}

func TestDefaultPackagesConfig(t *testing.T) {
	refs, ok := DefaultPackages["4.0.1"]
	if !ok {
		t.Fatal("DefaultPackages missing version 4.0.1")
	}
	if refs[0].Name != "hl7.fhir.r4.core" {
		t.Errorf("first package = %s, want the R4 core package", refs[0])
	}
	if got := SupportedVersions(); len(got) != 1 || got[0] != "4.0.1" {
		t.Errorf("SupportedVersions() = %v", got)
	}
}

func TestLoaderLoadPackage(t *testing.T) {
	base := t.TempDir()
	writeCachePackage(t, base, "example.fhir.test#0.1.0", map[string]string{
		"package.json":                     testManifest,
		".index.json":                      `{"files":[]}`,
		"StructureDefinition-Period.json":  testPeriodSD,
		"StructureDefinition-Patient.json": testPatientSD,
		"ValueSet-test.json":               testValueSet,
		"notes.txt":                        "ignored",
	})

	l := quietLoader(base)
	pkg, err := l.LoadPackage("example.fhir.test", "0.1.0")
	if err != nil {
		t.Fatalf("LoadPackage() error: %v", err)
	}
	if pkg.FHIRVersion != "4.0.1" {
		t.Errorf("FHIRVersion = %q, want 4.0.1", pkg.FHIRVersion)
	}
	if len(pkg.Definitions) != 2 {
		t.Fatalf("got %d definitions, want 2", len(pkg.Definitions))
	}
	if pkg.Definitions[0].Type != "Patient" || pkg.Definitions[1].Type != "Period" {
		t.Errorf("definitions not ordered by file name: %s, %s", pkg.Definitions[0].Source, pkg.Definitions[1].Source)
	}
	d, ok := pkg.Definition("http://hl7.org/fhir/StructureDefinition/Patient")
	if !ok {
		t.Fatal("Definition(Patient) not found")
	}
	if d.Kind != "resource" || d.Derivation != "specialization" || d.Name != "Patient" {
		t.Errorf("unexpected probe result %+v", d)
	}
}

func TestLoaderLoadPackageMissing(t *testing.T) {
	l := quietLoader(t.TempDir())
	_, err := l.LoadPackage("hl7.fhir.r4.core", "4.0.1")
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("LoadPackage() error = %v, want ErrPackageNotFound", err)
	}
}

func TestLoaderListPackages(t *testing.T) {
	base := t.TempDir()
	writeCachePackage(t, base, "example.fhir.test#0.1.0", map[string]string{"package.json": testManifest})
	if err := os.MkdirAll(filepath.Join(base, "not-a-package"), 0o755); err != nil {
		t.Fatal(err)
	}

	packages, err := quietLoader(base).ListPackages()
	if err != nil {
		t.Fatalf("ListPackages() error: %v", err)
	}
	if len(packages) != 1 || packages[0] != "example.fhir.test#0.1.0" {
		t.Errorf("ListPackages() = %v", packages)
	}
}

func TestLoaderLoadVersion(t *testing.T) {
	l := NewLoader("")

	packages, err := l.LoadVersion("4.0.1")
	if err != nil {
		t.Skipf("Cannot load FHIR 4.0.1 packages: %v", err)
	}

	if len(packages) == 0 {
		t.Fatal("LoadVersion returned no packages")
	}
	core := packages[0]
	for _, url := range []string{
		"http://hl7.org/fhir/StructureDefinition/Patient",
		"http://hl7.org/fhir/StructureDefinition/Observation",
		"http://hl7.org/fhir/StructureDefinition/HumanName",
	} {
		if _, ok := core.Definition(url); !ok {
			t.Errorf("core package missing %s", url)
		}
	}
	t.Logf("Loaded %d packages for FHIR 4.0.1", len(packages))
}

func TestLoaderLoadVersionUnknown(t *testing.T) {
	_, err := quietLoader(t.TempDir()).LoadVersion("99.99.99")
	if err == nil {
		t.Error("LoadVersion should fail for unknown version")
	}
}

func TestLoaderLoadVersionOptionalMissing(t *testing.T) {
	base := t.TempDir()
	writeCachePackage(t, base, "hl7.fhir.r4.core#4.0.1", map[string]string{
		"package.json":                     `{"name":"hl7.fhir.r4.core","version":"4.0.1","fhirVersion":"4.0.1"}`,
		"StructureDefinition-Patient.json": testPatientSD,
	})

	var logs bytes.Buffer
	l := NewLoader(base, WithLogger(logger.New(&logs, logger.LevelWarn)))
	packages, err := l.LoadVersion("4.0.1")
	if err != nil {
		t.Fatalf("LoadVersion() error: %v", err)
	}
	if len(packages) != 1 {
		t.Errorf("got %d packages, want only the core package", len(packages))
	}
	if !bytes.Contains(logs.Bytes(), []byte("hl7.fhir.uv.extensions.r4")) {
		t.Errorf("missing optional package should be logged, got %q", logs.String())
	}
}

func TestLoaderLoadFromTgzData(t *testing.T) {
	data := buildTgz(t, map[string]string{
		"package/package.json":                          testManifest,
		"package/StructureDefinition-Patient.json":      testPatientSD,
		"package/ValueSet-test.json":                    testValueSet,
		"package/other/StructureDefinition-Period.json": testPeriodSD,
	})

	pkg, err := quietLoader("").LoadFromTgzData(data)
	if err != nil {
		t.Fatalf("LoadFromTgzData() error: %v", err)
	}
	if pkg.Name != "example.fhir.test" || pkg.Version != "0.1.0" {
		t.Errorf("manifest not applied: %s", pkg.Ref())
	}
	if pkg.Path != "memory" {
		t.Errorf("Package.Path = %q, want %q", pkg.Path, "memory")
	}
	if len(pkg.Definitions) != 1 || pkg.Definitions[0].Type != "Patient" {
		t.Errorf("Definitions = %+v", pkg.Definitions)
	}
}

func TestLoaderLoadFromTgzNoManifest(t *testing.T) {
	data := buildTgz(t, map[string]string{"package/StructureDefinition-Patient.json": testPatientSD})
	_, err := quietLoader("").LoadFromTgzData(data)
	if !errors.Is(err, ErrNoManifest) {
		t.Errorf("error = %v, want ErrNoManifest", err)
	}
}

func TestLoaderLoadFromURL(t *testing.T) {
	data := buildTgz(t, map[string]string{
		"package/package.json":                    testManifest,
		"package/StructureDefinition-Period.json": testPeriodSD,
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/example.tgz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := NewLoader("", WithHTTPClient(srv.Client()), WithLogger(logger.New(io.Discard, logger.LevelNone)))
	pkg, err := l.LoadFromURL(context.Background(), srv.URL+"/example.tgz")
	if err != nil {
		t.Fatalf("LoadFromURL() error: %v", err)
	}
	if pkg.Path != srv.URL+"/example.tgz" || len(pkg.Definitions) != 1 {
		t.Errorf("unexpected package %+v", pkg)
	}

	if _, err := l.LoadFromURL(context.Background(), srv.URL+"/missing.tgz"); err == nil {
		t.Error("LoadFromURL should fail on HTTP 404")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.LoadFromURL(ctx, srv.URL+"/example.tgz"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled LoadFromURL error = %v, want context.Canceled", err)
	}
}

func TestLoaderLoadFromResources(t *testing.T) {
	invalid := []byte(`not valid json`)

	pkg, err := quietLoader("").LoadFromResources([][]byte{[]byte(testPatientSD), []byte(testValueSet), invalid})
	if err != nil {
		t.Fatalf("LoadFromResources() error: %v", err)
	}

	if pkg.Name != "custom" {
		t.Errorf("Package.Name = %q, want %q", pkg.Name, "custom")
	}
	if pkg.Path != "memory" {
		t.Errorf("Package.Path = %q, want %q", pkg.Path, "memory")
	}
	if len(pkg.Definitions) != 1 {
		t.Errorf("Package has %d definitions, want 1", len(pkg.Definitions))
	}
	if _, ok := pkg.Definition("http://hl7.org/fhir/StructureDefinition/Patient"); !ok {
		t.Error("Missing definition by URL")
	}
}
