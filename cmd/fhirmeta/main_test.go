package main

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/metadata/pkg/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{config.KeyPackagePath, config.KeyFHIRVersion, config.KeyLogLevel, config.KeyOutput} {
		t.Setenv(config.EnvPrefix+"_"+key, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	base := []string{"--env-file", filepath.Join(t.TempDir(), "absent.env"), "--no-color"}
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestResolveText(t *testing.T) {
	out, _, err := execute(t, "resolve", "Patient.name.given", "Bundle.entry.resource")
	require.NoError(t, err)
	assert.Contains(t, out, "Patient.name.given  Primitive(String)")
	assert.Contains(t, out, "Bundle.entry.resource  Complex(Resource)")
}

func TestResolveNotFound(t *testing.T) {
	out, _, err := execute(t, "resolve", "--explain", "Patient.name.nonexistent", "Patient.name.given")
	assert.ErrorIs(t, err, errUnresolved)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "unknown field")
	assert.Contains(t, out, "Primitive(String)")
}

func TestResolveNormalize(t *testing.T) {
	_, _, err := execute(t, "resolve", "Condition.onsetDateTime")
	assert.ErrorIs(t, err, errUnresolved, "typed choice names need --normalize")

	out, _, err := execute(t, "resolve", "--normalize", "--output", "json", "Condition.onsetDateTime", "Observation.valueQuantity.unit")
	require.NoError(t, err)

	var results []resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Condition.onset[x]", results[0].Normalized)
	assert.Equal(t, "Primitive", results[0].Type.Kind)
	assert.Equal(t, "dateTime", results[0].Type.Name)
	assert.Equal(t, "Observation.value[x].unit", results[1].Normalized)
	assert.Equal(t, "string", results[1].Type.Name)
}

func TestResolveNormalizeExplain(t *testing.T) {
	out, _, err := execute(t, "resolve", "--normalize", "--explain", "Condition.onsetAge.start")
	assert.ErrorIs(t, err, errUnresolved)
	assert.Contains(t, out, `unknown field "start" on Age`)
	assert.NotContains(t, out, "onsetAge\" on")

	out, _, err = execute(t, "resolve", "--normalize", "Condition.onsetPeriod.start")
	require.NoError(t, err)
	assert.Contains(t, out, "Primitive(DateTime)")
	assert.NotContains(t, out, "onset[x].start")
}

func TestResolveStrict(t *testing.T) {
	out, _, err := execute(t, "resolve", "--strict", "Patient.name.where(use = 'official')")
	assert.ErrorIs(t, err, errUnresolved)
	assert.Contains(t, out, "not a flat element path")

	_, _, err = execute(t, "resolve", "--strict", "Patient.name.given")
	assert.NoError(t, err)
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "info", "Patient", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Complex(HumanName)")
	assert.Contains(t, out, "0..*")

	out, _, err = execute(t, "info", "--output", "json", "Condition", "onsetAge")
	require.NoError(t, err)
	var fo fieldOutput
	require.NoError(t, json.Unmarshal([]byte(out), &fo))
	assert.Equal(t, "onset[x]", fo.Name)
	assert.Equal(t, "Age", fo.Variant)
	assert.True(t, fo.Choice)
	assert.Contains(t, fo.ChoiceTypes, "Period")

	_, _, err = execute(t, "info", "Patient", "nonexistent")
	assert.ErrorIs(t, err, errUnknownField)
	_, _, err = execute(t, "info", "NotAType", "name")
	assert.ErrorIs(t, err, errUnknownType)
}

func TestFields(t *testing.T) {
	out, _, err := execute(t, "fields", "Period")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "FIELD"))
	assert.True(t, strings.HasPrefix(lines[1], "end "))
	assert.Contains(t, out, "Primitive(DateTime)")

	_, _, err = execute(t, "fields", "NotAType")
	assert.ErrorIs(t, err, errUnknownType)
}

func TestTypes(t *testing.T) {
	out, _, err := execute(t, "types", "--prefix", "Patient", "-o", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "Patient")
	assert.Contains(t, names, "Patient.contact")
	for _, n := range names {
		assert.True(t, strings.HasPrefix(n, "Patient"), n)
	}
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: "), out)
	assert.Contains(t, out, "FHIR 4.0.1")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--output", "json")
	require.NoError(t, err)
	var info struct {
		Version     string `json:"version"`
		FHIRVersion string `json:"fhirVersion"`
		Types       int    `json:"types"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version, info.Version)
	assert.Equal(t, "4.0.1", info.FHIRVersion)
	assert.Greater(t, info.Types, 600)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--output", "yaml", "types")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

const generatePeriodSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://hl7.org/fhir/StructureDefinition/Period",
	"name": "Period",
	"kind": "complex-type",
	"type": "Period",
	"derivation": "specialization",
	"snapshot": {"element": [
		{"id": "Period", "path": "Period", "min": 0, "max": "*"},
		{"id": "Period.start", "path": "Period.start", "min": 0, "max": "1", "type": [{"code": "dateTime"}]},
		{"id": "Period.end", "path": "Period.end", "min": 0, "max": "1", "type": [{"code": "dateTime"}]}
	]}
}`

func writeTgz(t *testing.T, files map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "example.tgz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestGenerate(t *testing.T) {
	tgz := writeTgz(t, map[string]string{
		"package/package.json":                    `{"name":"example.fhir.test","version":"0.1.0","fhirVersions":["4.0.1"]}`,
		"package/StructureDefinition-Period.json": generatePeriodSD,
	})
	outFile := filepath.Join(t.TempDir(), "types_gen.go")

	_, _, err := execute(t, "--log-level", "none", "generate", "--package-file", tgz, "--out", outFile, "--func", "exampleTypes")
	require.NoError(t, err)

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	normalized := strings.Join(strings.Fields(string(src)), " ")
	assert.Contains(t, normalized, "func exampleTypes() Table {")
	assert.Contains(t, normalized, `"start": fld(prim(fhirtype.DateTime), 0, 1),`)

	out, _, err := execute(t, "--log-level", "none", "generate", "--package-file", tgz, "--out", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// Code generated by fhirmeta generate; DO NOT EDIT."))
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := execute(t, "--log-level", "none", "generate", "--fhir-package", "hl7.fhir.r4.core", "--out", "-")
	assert.Error(t, err)

	_, _, err = execute(t, "--log-level", "none", "--package-path", t.TempDir(), "generate", "--out", "-")
	assert.Error(t, err, "an empty package cache has no core package")

	_, _, err = execute(t, "--log-level", "none", "generate", "--package-file", filepath.Join(t.TempDir(), "missing.tgz"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
