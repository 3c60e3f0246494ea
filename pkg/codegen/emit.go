package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/exp/slices"

	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/registry"
)

var fileTemplate = template.Must(template.New("table").Parse(`// Code generated by {{.Generator}}; DO NOT EDIT.

package {{.Package}}

import "github.com/gofhir/metadata/pkg/fhirtype"

func {{.Func}}() Table {
	return Table{
{{- range .Types}}
		{{.Key}}: {
{{- range .Fields}}
			{{.Key}}: {{.Expr}},
{{- end}}
		},
{{- end}}
	}
}
`))

type fileData struct {
	Generator string
	Package   string
	Func      string
	Types     []typeData
}

type typeData struct {
	Key    string
	Fields []fieldData
}

type fieldData struct {
	Key  string
	Expr string
}

// Emit renders table as gofmt'ed Go source. Types and fields are sorted so
// the output only changes when the table does.
func (g *Generator) Emit(table registry.Table) ([]byte, error) {
	data := fileData{
		Generator: g.opts.Generator,
		Package:   g.opts.PackageName,
		Func:      g.opts.FuncName,
		Types:     make([]typeData, 0, len(table)),
	}

	for _, typeName := range sortedKeys(table) {
		fields := table[typeName]
		td := typeData{Key: strconv.Quote(typeName), Fields: make([]fieldData, 0, len(fields))}
		for _, name := range sortedKeys(fields) {
			expr, err := fieldExpr(fields[name])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", typeName, name, err)
			}
			td.Fields = append(td.Fields, fieldData{Key: strconv.Quote(name), Expr: expr})
		}
		data.Types = append(data.Types, td)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func fieldExpr(fi fhirtype.FieldInfo) (string, error) {
	t, err := typeExpr(fi.Type)
	if err != nil {
		return "", err
	}
	upper := "unbounded"
	if !fi.Unbounded() {
		upper = strconv.Itoa(fi.Max)
	}

	if !fi.IsChoice {
		return fmt.Sprintf("fld(%s, %d, %s)", t, fi.Min, upper), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "choice(%s, %d, %s", t, fi.Min, upper)
	for _, code := range fi.ChoiceTypes() {
		b.WriteString(", ")
		b.WriteString(strconv.Quote(code))
	}
	b.WriteString(")")
	return b.String(), nil
}

func typeExpr(t fhirtype.FieldType) (string, error) {
	switch t.Kind() {
	case fhirtype.KindPrimitive:
		p, _ := t.Primitive()
		return "prim(fhirtype." + p.String() + ")", nil
	case fhirtype.KindComplex:
		return "cplx(" + strconv.Quote(t.Name()) + ")", nil
	case fhirtype.KindReference:
		return "ref()", nil
	case fhirtype.KindBackboneElement:
		return "bb(" + strconv.Quote(t.Name()) + ")", nil
	case fhirtype.KindSystem:
		return "sys(" + strconv.Quote(t.Name()) + ")", nil
	default:
		return "", fhirtype.ErrInvalidType
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
