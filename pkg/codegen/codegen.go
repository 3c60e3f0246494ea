// Package codegen produces the registry's metadata table from FHIR
// StructureDefinition snapshots.
//
// The pipeline has three steps that can also be used on their own:
//
//	Decode  raw package definitions into r4.StructureDefinition, in parallel
//	Build   the registry.Table (first type code, [x] choices, backbones, contentReference)
//	Emit    gofmt'ed Go source in the layout of pkg/registry/r4_types_gen.go
//
// Basic usage:
//
//	pkgs, _ := loader.NewLoader("").LoadVersion("4.0.1")
//	src, err := codegen.New().Generate(ctx, pkgs...)
package codegen

import (
	"context"
	"errors"

	"github.com/gofhir/metadata/pkg/loader"
	"github.com/gofhir/metadata/pkg/logger"
	"github.com/gofhir/metadata/pkg/registry"
)

// ErrNoDefinitions is returned when the input packages contain no
// StructureDefinitions.
var ErrNoDefinitions = errors.New("no StructureDefinitions to generate from")

// Generator turns FHIR packages into registry source code.
// A Generator is safe for concurrent use.
type Generator struct {
	opts *Options
	log  *logger.Logger
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Generator{opts: o, log: log}
}

// Options returns the generator configuration.
func (g *Generator) Options() Options {
	return *g.opts
}

// Table decodes and builds the metadata table of pkgs. Packages earlier in
// the list take precedence over later ones for the same type name.
func (g *Generator) Table(ctx context.Context, pkgs ...*loader.Package) (registry.Table, error) {
	var defs []loader.Definition
	for _, pkg := range pkgs {
		g.log.Debug("using %s (%d structure definitions)", pkg.Ref(), len(pkg.Definitions))
		defs = append(defs, pkg.Definitions...)
	}
	if len(defs) == 0 {
		return nil, ErrNoDefinitions
	}

	decoded, err := g.Decode(ctx, defs)
	if err != nil {
		return nil, err
	}
	return g.Build(decoded)
}

// Generate runs the whole pipeline and returns the formatted source file.
func (g *Generator) Generate(ctx context.Context, pkgs ...*loader.Package) ([]byte, error) {
	table, err := g.Table(ctx, pkgs...)
	if err != nil {
		return nil, err
	}
	return g.Emit(table)
}
