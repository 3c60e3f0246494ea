package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofhir/metadata/pkg/codegen"
	"github.com/gofhir/metadata/pkg/loader"
)

type generateFlags struct {
	out          string
	pkgName      string
	funcName     string
	packages     []string
	packageFiles []string
	packageURLs  []string
	workers      int
	noProfiles   bool
}

func newGenerateCommand(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the metadata table from FHIR packages",
		Long: `Regenerate the metadata table from the StructureDefinitions of FHIR
packages.

By default the packages for --fhir-version are read from the package cache.
--fhir-package, --package-file and --package-url select packages explicitly; the
first one given takes precedence for duplicate type names.`,
		Example: `  fhirmeta generate
  fhirmeta generate --package-file hl7.fhir.r4.core.tgz --out -
  fhirmeta generate --fhir-package hl7.fhir.r4.core#4.0.1 --no-profiles`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ld := loader.NewLoader(a.cfg.PackagePath, loader.WithLogger(a.log))

			pkgs, err := a.loadPackages(cmd, ld, f)
			if err != nil {
				return err
			}

			gen := codegen.New(
				codegen.WithPackageName(f.pkgName),
				codegen.WithFuncName(f.funcName),
				codegen.WithWorkers(f.workers),
				codegen.WithProfiles(!f.noProfiles),
				codegen.WithVersion(a.cfg.FHIRVersion),
				codegen.WithLogger(a.log),
			)
			src, err := gen.Generate(ctx, pkgs...)
			if err != nil {
				return err
			}

			if f.out == "-" {
				_, err = a.out.Write(src)
				return err
			}
			if err := os.WriteFile(f.out, src, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.out, err)
			}
			a.log.Info("wrote %s (%d bytes)", f.out, len(src))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.out, "out", "pkg/registry/r4_types_gen.go", "Output file, - for stdout")
	fl.StringVar(&f.pkgName, "package", "registry", "Package clause of the generated file")
	fl.StringVar(&f.funcName, "func", "r4Types", "Name of the generated table function")
	fl.StringSliceVar(&f.packages, "fhir-package", nil, "Cached FHIR package(s) to load (e.g. hl7.fhir.r4.core#4.0.1)")
	fl.StringSliceVar(&f.packageFiles, "package-file", nil, "Local .tgz package file(s) to load")
	fl.StringSliceVar(&f.packageURLs, "package-url", nil, "Remote .tgz package URL(s) to load")
	fl.IntVar(&f.workers, "workers", 0, "Concurrent StructureDefinition decoders (default: number of CPUs)")
	fl.BoolVar(&f.noProfiles, "no-profiles", false, "Only generate base resources and datatypes")
	return cmd
}

func (a *app) loadPackages(cmd *cobra.Command, ld *loader.Loader, f generateFlags) ([]*loader.Package, error) {
	var pkgs []*loader.Package

	for _, spec := range f.packages {
		name, version := loader.ParsePackageSpec(strings.TrimSpace(spec))
		if version == "" {
			return nil, fmt.Errorf("package %q needs a version (name#version)", spec)
		}
		pkg, err := ld.LoadPackage(name, version)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	for _, path := range f.packageFiles {
		pkg, err := ld.LoadFromTgz(strings.TrimSpace(path))
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	for _, url := range f.packageURLs {
		pkg, err := ld.LoadFromURL(cmd.Context(), strings.TrimSpace(url))
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	if len(pkgs) > 0 {
		return pkgs, nil
	}

	a.log.Info("loading FHIR %s packages from %s", a.cfg.FHIRVersion, ld.BasePath())
	return ld.LoadVersion(a.cfg.FHIRVersion)
}
