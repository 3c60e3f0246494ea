package codegen

import (
	"runtime"

	"github.com/gofhir/metadata/pkg/logger"
	"github.com/gofhir/metadata/pkg/registry"
)

// Option configures the Generator.
type Option func(*Options)

// Options holds all configuration for the Generator.
type Options struct {
	// Output
	PackageName string
	FuncName    string
	Generator   string // named in the "Code generated by" header

	// Input selection
	Version         string
	IncludeProfiles bool

	// Performance
	Workers int

	Logger *logger.Logger
}

// DefaultOptions returns the default configuration, which reproduces
// pkg/registry/r4_types_gen.go.
func DefaultOptions() *Options {
	return &Options{
		PackageName: "registry",
		FuncName:    "r4Types",
		Generator:   "fhirmeta generate",

		Version:         registry.R4Version,
		IncludeProfiles: true,

		Workers: runtime.NumCPU(),
	}
}

// WithPackageName sets the package clause of the emitted file.
func WithPackageName(name string) Option {
	return func(o *Options) {
		o.PackageName = name
	}
}

// WithFuncName sets the name of the emitted table function.
func WithFuncName(name string) Option {
	return func(o *Options) {
		o.FuncName = name
	}
}

// WithGenerator sets the tool name written into the generated-code header.
func WithGenerator(name string) Option {
	return func(o *Options) {
		o.Generator = name
	}
}

// WithVersion sets the FHIR version recorded on the validated registry.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithProfiles controls whether constraint StructureDefinitions (profiles
// and extension definitions) are added to the table.
func WithProfiles(enable bool) Option {
	return func(o *Options) {
		o.IncludeProfiles = enable
	}
}

// WithWorkers sets the number of concurrent StructureDefinition decoders.
// Defaults to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
