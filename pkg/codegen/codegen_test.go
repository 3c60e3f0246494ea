package codegen_test

import (
	"context"
	"go/parser"
	"go/token"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/metadata/pkg/codegen"
	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/loader"
	"github.com/gofhir/metadata/pkg/logger"
	"github.com/gofhir/metadata/pkg/registry"
)

const periodSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://hl7.org/fhir/StructureDefinition/Period",
	"name": "Period",
	"kind": "complex-type",
	"type": "Period",
	"derivation": "specialization",
	"snapshot": {"element": [
		{"id": "Period", "path": "Period", "min": 0, "max": "*"},
		{"id": "Period.id", "path": "Period.id", "min": 0, "max": "1",
			"type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
		{"id": "Period.start", "path": "Period.start", "min": 0, "max": "1", "type": [{"code": "dateTime"}]},
		{"id": "Period.end", "path": "Period.end", "min": 0, "max": "1", "type": [{"code": "dateTime"}]}
	]}
}`

// A second definition of Period that must lose to the first one.
const periodDuplicateSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://hl7.org/fhir/StructureDefinition/Period",
	"name": "Period",
	"kind": "complex-type",
	"type": "Period",
	"derivation": "specialization",
	"snapshot": {"element": [
		{"id": "Period", "path": "Period", "min": 0, "max": "*"},
		{"id": "Period.duration", "path": "Period.duration", "min": 0, "max": "1", "type": [{"code": "decimal"}]}
	]}
}`

const widgetSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://hl7.org/fhir/StructureDefinition/Widget",
	"name": "Widget",
	"kind": "resource",
	"type": "Widget",
	"derivation": "specialization",
	"snapshot": {"element": [
		{"id": "Widget", "path": "Widget", "min": 0, "max": "*"},
		{"id": "Widget.id", "path": "Widget.id", "min": 0, "max": "1",
			"type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
		{"id": "Widget.status", "path": "Widget.status", "min": 1, "max": "1", "type": [{"code": "code"}]},
		{"id": "Widget.period", "path": "Widget.period", "min": 0, "max": "1", "type": [{"code": "Period"}]},
		{"id": "Widget.owner", "path": "Widget.owner", "min": 0, "max": "*", "type": [{"code": "Reference"}]},
		{"id": "Widget.value[x]", "path": "Widget.value[x]", "min": 0, "max": "1",
			"type": [{"code": "string"}, {"code": "Period"}, {"code": "Reference"}]},
		{"id": "Widget.value[x]:valueString", "path": "Widget.value[x]", "sliceName": "valueString",
			"min": 0, "max": "1", "type": [{"code": "string"}]},
		{"id": "Widget.part", "path": "Widget.part", "min": 0, "max": "*", "type": [{"code": "BackboneElement"}]},
		{"id": "Widget.part.name", "path": "Widget.part.name", "min": 1, "max": "1", "type": [{"code": "string"}]},
		{"id": "Widget.part.part", "path": "Widget.part.part", "min": 0, "max": "*", "contentReference": "#Widget.part"},
		{"id": "Widget.part.hidden", "path": "Widget.part.hidden", "min": 0, "max": "0", "type": [{"code": "boolean"}]},
		{"id": "Widget.detail", "path": "Widget.detail", "min": 0, "max": "1", "type": [{"code": "Element"}]},
		{"id": "Widget.detail.code", "path": "Widget.detail.code", "min": 0, "max": "1", "type": [{"code": "code"}]},
		{"id": "Widget.note", "path": "Widget.note", "min": 0, "max": "2", "type": [{"code": "markdown"}]},
		{"id": "Widget.removed", "path": "Widget.removed", "min": 0, "max": "0", "type": [{"code": "BackboneElement"}]},
		{"id": "Widget.removed.flag", "path": "Widget.removed.flag", "min": 0, "max": "1", "type": [{"code": "boolean"}]}
	]}
}`

const specialWidgetSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://example.org/fhir/StructureDefinition/special-widget",
	"name": "SpecialWidget",
	"title": "Special Widget",
	"kind": "resource",
	"type": "Widget",
	"derivation": "constraint",
	"snapshot": {"element": [
		{"id": "Widget", "path": "Widget", "min": 0, "max": "*"},
		{"id": "Widget.status", "path": "Widget.status", "min": 1, "max": "1", "type": [{"code": "code"}]},
		{"id": "Widget.owner", "path": "Widget.owner", "min": 1, "max": "1", "type": [{"code": "Reference"}]},
		{"id": "Widget.owner:primary", "path": "Widget.owner", "sliceName": "primary", "min": 0, "max": "1",
			"type": [{"code": "Reference"}]},
		{"id": "Widget.part", "path": "Widget.part", "min": 0, "max": "*", "type": [{"code": "BackboneElement"}]},
		{"id": "Widget.part.name", "path": "Widget.part.name", "min": 1, "max": "1", "type": [{"code": "string"}]},
		{"id": "Widget.part.extra", "path": "Widget.part.extra", "min": 0, "max": "1", "type": [{"code": "string"}]}
	]}
}`

const logicalSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://hl7.org/fhir/StructureDefinition/Definition",
	"name": "Definition",
	"kind": "logical",
	"type": "Definition",
	"derivation": "specialization",
	"snapshot": {"element": [
		{"id": "Definition", "path": "Definition", "min": 0, "max": "*"},
		{"id": "Definition.url", "path": "Definition.url", "min": 0, "max": "1", "type": [{"code": "uri"}]}
	]}
}`

const valueSet = `{"resourceType": "ValueSet", "url": "http://example.org/fhir/ValueSet/x"}`

func testPackage(t *testing.T, resources ...string) *loader.Package {
	t.Helper()
	raw := make([][]byte, len(resources))
	for i, r := range resources {
		raw[i] = []byte(r)
	}
	pkg, err := loader.NewLoader("").LoadFromResources(raw)
	require.NoError(t, err)
	return pkg
}

func quiet() codegen.Option {
	return codegen.WithLogger(logger.New(io.Discard, logger.LevelNone))
}

func buildWidgets(t *testing.T, opts ...codegen.Option) registry.Table {
	t.Helper()
	pkg := testPackage(t, specialWidgetSD, periodSD, widgetSD, periodDuplicateSD, logicalSD, valueSet)
	table, err := codegen.New(append([]codegen.Option{quiet(), codegen.WithWorkers(2)}, opts...)...).
		Table(context.Background(), pkg)
	require.NoError(t, err)
	return table
}

func TestBuildFields(t *testing.T) {
	table := buildWidgets(t)

	tests := []struct {
		typeName string
		field    string
		want     fhirtype.FieldInfo
	}{
		{"Period", "start", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.DateTime), 0, 1)},
		{"Period", "id", fhirtype.NewFieldInfo(fhirtype.System(fhirtype.SystemString), 0, 1)},
		{"Widget", "status", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Code), 1, 1)},
		{"Widget", "period", fhirtype.NewFieldInfo(fhirtype.Complex("Period"), 0, 1)},
		{"Widget", "owner", fhirtype.NewFieldInfo(fhirtype.Reference(), 0, fhirtype.Unbounded)},
		{"Widget", "note", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Markdown), 0, 2)},
		{"Widget", "value[x]", fhirtype.NewChoice(fhirtype.Primitive(fhirtype.String), 0, 1, "string", "Period", "Reference")},
		{"Widget", "part", fhirtype.NewFieldInfo(fhirtype.BackboneElement("Widget.part"), 0, fhirtype.Unbounded)},
		{"Widget", "detail", fhirtype.NewFieldInfo(fhirtype.BackboneElement("Widget.detail"), 0, 1)},
		{"Widget.part", "name", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.String), 1, 1)},
		{"Widget.part", "part", fhirtype.NewFieldInfo(fhirtype.BackboneElement("Widget.part"), 0, fhirtype.Unbounded)},
		{"Widget.detail", "code", fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.Code), 0, 1)},
		{"Special Widget", "owner", fhirtype.NewFieldInfo(fhirtype.Reference(), 1, 1)},
		{"Special Widget", "part", fhirtype.NewFieldInfo(fhirtype.BackboneElement("Widget.part"), 0, fhirtype.Unbounded)},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"."+tt.field, func(t *testing.T) {
			fields, ok := table[tt.typeName]
			require.True(t, ok, "type %s missing", tt.typeName)
			got, ok := fields[tt.field]
			require.True(t, ok, "field %s missing", tt.field)
			assert.True(t, tt.want.Equal(got), "got %v %s, want %v %s", got.Type, got.Cardinality(), tt.want.Type, tt.want.Cardinality())
		})
	}
}

func TestBuildSkips(t *testing.T) {
	table := buildWidgets(t)

	assert.NotContains(t, table["Widget.part"], "hidden", "max 0 elements are dropped")
	assert.NotContains(t, table["Widget"], "removed")
	assert.NotContains(t, table, "Widget.removed")
	assert.NotContains(t, table["Period"], "duration", "first definition of a type wins")
	assert.NotContains(t, table, "Definition", "logical models are skipped")
	assert.NotContains(t, table["Widget.part"], "extra", "profile backbones do not override base backbones")
	assert.Len(t, table["Widget"], 8)
}

func TestBuildWithoutProfiles(t *testing.T) {
	table := buildWidgets(t, codegen.WithProfiles(false))
	assert.NotContains(t, table, "Special Widget")
	assert.Contains(t, table, "Widget")
}

func TestBuildResolvesThroughRegistry(t *testing.T) {
	table := buildWidgets(t)
	r, err := registry.New(registry.R4Version, table)
	require.NoError(t, err)

	fi, ok := r.FieldInfo("Widget.part", "part")
	require.True(t, ok)
	assert.Equal(t, "Widget.part", fi.Type.Name())
}

func TestBuildRejectsDanglingTypes(t *testing.T) {
	broken := strings.Replace(widgetSD, `"type": [{"code": "Period"}]`, `"type": [{"code": "Missing"}]`, 1)
	pkg := testPackage(t, broken)

	_, err := codegen.New(quiet()).Table(context.Background(), pkg)
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDanglingType)
}

func TestDecodeErrors(t *testing.T) {
	g := codegen.New(quiet())

	bad := testPackage(t, `{"resourceType": "StructureDefinition", "snapshot": "not an object"}`)
	_, err := g.Decode(context.Background(), bad.Definitions)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Decode(ctx, testPackage(t, periodSD, widgetSD).Definitions)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = g.Table(context.Background(), testPackage(t, valueSet))
	assert.ErrorIs(t, err, codegen.ErrNoDefinitions)
}

func TestEmit(t *testing.T) {
	g := codegen.New(quiet())
	src, err := g.Generate(context.Background(), testPackage(t, periodSD, widgetSD, specialWidgetSD))
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "r4_types_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by fhirmeta generate; DO NOT EDIT.\n\npackage registry\n"))

	normalized := strings.Join(strings.Fields(out), " ")
	for _, want := range []string{
		`func r4Types() Table {`,
		`"Special Widget": {`,
		`"status": fld(prim(fhirtype.Code), 1, 1),`,
		`"owner": fld(ref(), 0, unbounded),`,
		`"part": fld(bb("Widget.part"), 0, unbounded),`,
		`"id": fld(sys("http://hl7.org/fhirpath/System.String"), 0, 1),`,
		`"value[x]": choice(prim(fhirtype.String), 0, 1, "string", "Period", "Reference"),`,
		`"period": fld(cplx("Period"), 0, 1),`,
	} {
		assert.Contains(t, normalized, want)
	}

	assert.Less(t, strings.Index(out, `"Period": {`), strings.Index(out, `"Widget": {`), "types are sorted")
}

func TestEmitOptions(t *testing.T) {
	g := codegen.New(quiet(), codegen.WithPackageName("r4meta"), codegen.WithFuncName("types"), codegen.WithGenerator("tablegen"))
	src, err := g.Emit(registry.Table{
		"Period": {"start": fhirtype.NewFieldInfo(fhirtype.Primitive(fhirtype.DateTime), 0, 1)},
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by tablegen; DO NOT EDIT.")
	assert.Contains(t, out, "package r4meta")
	assert.Contains(t, out, "func types() Table {")

	_, err = g.Emit(registry.Table{"Broken": {"x": {}}})
	assert.ErrorIs(t, err, fhirtype.ErrInvalidType)
}

func TestEmitRegistryTable(t *testing.T) {
	r := registry.R4()
	table := make(registry.Table, r.TypeCount())
	for _, name := range r.TypeNames() {
		fields, _ := r.Fields(name)
		table[name] = make(map[string]fhirtype.FieldInfo, fields.Len())
		for field, fi := range fields.All() {
			table[name][field] = fi
		}
	}

	src, err := codegen.New(quiet()).Emit(table)
	require.NoError(t, err)
	normalized := strings.Join(strings.Fields(string(src)), " ")
	assert.Contains(t, normalized, `"given": fld(prim(fhirtype.String), 0, unbounded),`)
	assert.Contains(t, normalized, `"item": fld(bb("Questionnaire.item"), 0, unbounded),`)
}

func TestGeneratorAgainstPackageCache(t *testing.T) {
	pkgs, err := loader.NewLoader("", loader.WithLogger(logger.New(io.Discard, logger.LevelNone))).LoadVersion("4.0.1")
	if err != nil {
		t.Skipf("Cannot load FHIR 4.0.1 packages: %v", err)
	}

	table, err := codegen.New(quiet()).Table(context.Background(), pkgs...)
	require.NoError(t, err)

	r, err := registry.New(registry.R4Version, table)
	require.NoError(t, err)
	fi, ok := r.FieldInfo("Patient", "name")
	require.True(t, ok)
	assert.Equal(t, fhirtype.Complex("HumanName"), fi.Type)
	fi, ok = r.FieldInfo("Questionnaire.item", "item")
	require.True(t, ok)
	assert.Equal(t, fhirtype.BackboneElement("Questionnaire.item"), fi.Type)
}
