package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofhir/fhir/r4"
	"golang.org/x/exp/slices"

	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/registry"
)

const baseURL = "http://hl7.org/fhir/StructureDefinition/"

// Build turns decoded StructureDefinitions into a metadata table.
//
// Base definitions are processed before profiles; within each group the
// input order is kept and the first definition of a type name wins. Nested
// backbone elements are registered under their element path, which is also
// the name their parent field refers to. The resulting table is checked with
// registry.New before it is returned.
func (g *Generator) Build(defs []Definition) (registry.Table, error) {
	ordered := slices.Clone(defs)
	slices.SortStableFunc(ordered, func(a, b Definition) int {
		return rank(a) - rank(b)
	})

	table := make(registry.Table)
	for _, d := range ordered {
		key := g.typeKey(d)
		if key == "" {
			continue
		}
		if _, dup := table[key]; dup {
			g.log.Debug("skipping %s: %s already defined", d.URL, key)
			continue
		}
		for name, fields := range extract(key, d.SD) {
			if _, dup := table[name]; dup {
				continue
			}
			table[name] = fields
		}
	}

	if _, err := registry.New(g.opts.Version, table); err != nil {
		return nil, fmt.Errorf("generated table is inconsistent: %w", err)
	}
	g.log.Info("built metadata for %d types", len(table))
	return table, nil
}

func rank(d Definition) int {
	if isBaseTypeDefinition(d.URL, d.Type) {
		return 0
	}
	return 1
}

// isBaseTypeDefinition checks if a URL is THE base definition for its type.
// http://hl7.org/fhir/StructureDefinition/Patient is the base for Patient,
// http://hl7.org/fhir/StructureDefinition/vitalsigns is a profile.
func isBaseTypeDefinition(url, typeName string) bool {
	return typeName != "" && url == baseURL+typeName
}

// typeKey returns the registry key of a definition, or "" to skip it.
// Base types are keyed by type name; profiles by title, falling back to name.
func (g *Generator) typeKey(d Definition) string {
	if d.SD == nil || d.SD.Snapshot == nil || len(d.SD.Snapshot.Element) == 0 {
		return ""
	}
	if d.Kind == "logical" {
		return ""
	}
	if isBaseTypeDefinition(d.URL, d.Type) {
		return d.Type
	}
	if d.Derivation != "constraint" || !g.opts.IncludeProfiles {
		return ""
	}
	if title := derefString(d.SD.Title); title != "" {
		return title
	}
	return d.Name
}

// extract returns the fields of one snapshot, keyed by owner: key for the
// root element and the element path for each nested backbone.
func extract(key string, sd *r4.StructureDefinition) registry.Table {
	elements := sd.Snapshot.Element
	root := derefString(elements[0].Path)

	kept := make([]*r4.ElementDefinition, 0, len(elements))
	hasChildren := make(map[string]bool)
	for i := range elements {
		ed := &elements[i]
		path := derefString(ed.Path)
		if path == root || !keep(ed) {
			continue
		}
		kept = append(kept, ed)
		if parent, _, ok := cutLast(path); ok {
			hasChildren[parent] = true
		}
	}

	out := registry.Table{key: {}}
	for _, ed := range kept {
		path := derefString(ed.Path)
		parent, name, ok := cutLast(path)
		if !ok {
			continue
		}
		owner := parent
		if parent == root {
			owner = key
		}
		fields, ok := out[owner]
		if !ok {
			// parent was dropped, e.g. a max 0 backbone
			continue
		}
		fi, ok := fieldInfo(ed, name, path, hasChildren[path])
		if !ok {
			continue
		}
		if _, dup := fields[name]; dup {
			continue
		}
		fields[name] = fi
		if fi.Type.Kind() == fhirtype.KindBackboneElement && fi.Type.Name() == path {
			out[path] = make(map[string]fhirtype.FieldInfo)
		}
	}
	return out
}

// keep drops slices and prohibited elements.
func keep(ed *r4.ElementDefinition) bool {
	if derefString(ed.SliceName) != "" || strings.Contains(derefString(ed.Id), ":") {
		return false
	}
	return derefString(ed.Max) != "0"
}

func fieldInfo(ed *r4.ElementDefinition, name, path string, hasChildren bool) (fhirtype.FieldInfo, bool) {
	var lower uint32
	if ed.Min != nil {
		lower = *ed.Min
	}
	upper, ok := parseMax(derefString(ed.Max))
	if !ok {
		return fhirtype.FieldInfo{}, false
	}

	if ref := derefString(ed.ContentReference); ref != "" {
		_, target, found := strings.Cut(ref, "#")
		if !found || target == "" {
			return fhirtype.FieldInfo{}, false
		}
		return fhirtype.NewFieldInfo(fhirtype.BackboneElement(target), lower, upper), true
	}

	codes := make([]string, 0, len(ed.Type))
	for i := range ed.Type {
		if code := derefString(ed.Type[i].Code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return fhirtype.FieldInfo{}, false
	}

	var t fhirtype.FieldType
	switch {
	case hasChildren && (codes[0] == "BackboneElement" || codes[0] == "Element"):
		t = fhirtype.BackboneElement(path)
	default:
		t = fhirtype.FromCode(codes[0])
	}

	if strings.HasSuffix(name, "[x]") {
		return fhirtype.NewChoice(t, lower, upper, codes...), true
	}
	return fhirtype.NewFieldInfo(t, lower, upper), true
}

// parseMax converts an ElementDefinition.max value. An absent max means 1.
func parseMax(s string) (int, bool) {
	switch s {
	case "":
		return 1, true
	case "*":
		return fhirtype.Unbounded, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func cutLast(path string) (parent, name string, ok bool) {
	i := strings.LastIndexByte(path, '.')
	if i <= 0 || i == len(path)-1 {
		return "", "", false
	}
	return path[:i], path[i+1:], true
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
