package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	fm "github.com/gofhir/metadata"
	"github.com/gofhir/metadata/pkg/config"
	"github.com/gofhir/metadata/pkg/logger"
	"github.com/gofhir/metadata/pkg/registry"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	envFile string
	noColor bool

	cfg *config.Config
	log *logger.Logger
	reg *registry.Registry
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "fhirmeta",
		Short: "FHIR R4 type metadata",
		Long: `fhirmeta - FHIR R4 type metadata

Looks up the fields of FHIR R4 resources, datatypes and profiles, resolves
dotted element paths to their types, and regenerates the metadata tables
from FHIR packages.`,
		Example: `  fhirmeta resolve Patient.name.given
  fhirmeta resolve --normalize Observation.valueQuantity.unit
  fhirmeta info Patient name
  fhirmeta fields Bundle.entry --output json
  fhirmeta generate --out pkg/registry/r4_types_gen.go`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringP("output", "o", config.OutputText, "Output format: text, json")
	pf.String("log-level", "info", "Log level: debug, info, warn, error, none")
	pf.String("package-path", "", "FHIR package cache directory (default ~/.fhir/packages)")
	pf.String("fhir-version", "4.0.1", "FHIR version")
	pf.StringVar(&a.envFile, "env-file", ".env", "Environment file to read FHIRMETA_* settings from")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newResolveCommand(a),
		newInfoCommand(a),
		newFieldsCommand(a),
		newTypesCommand(a),
		newCheckCommand(a),
		newGenerateCommand(a),
		newVersionCommand(a),
	)
	return root
}

func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := config.Load(config.Options{
		EnvFile: a.envFile,
		Flags: map[string]*pflag.Flag{
			config.KeyOutput:      flags.Lookup("output"),
			config.KeyLogLevel:    flags.Lookup("log-level"),
			config.KeyPackagePath: flags.Lookup("package-path"),
			config.KeyFHIRVersion: flags.Lookup("fhir-version"),
		},
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewConsole(a.errOut, cfg.Level())

	if a.noColor || cfg.JSON() {
		color.NoColor = true
	}

	v, ok := fm.ParseVersion(cfg.FHIRVersion)
	if !ok {
		return fmt.Errorf("unsupported FHIR version %s", cfg.FHIRVersion)
	}
	a.reg, _ = v.Registry()
	a.log.Debug("using %s registry with %d types", a.reg.Version(), a.reg.TypeCount())
	return nil
}

// emit writes v as indented JSON, or calls text when text output is selected.
func (a *app) emit(v any, text func(w io.Writer)) error {
	if a.cfg.JSON() {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(a.out)
	return nil
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version     string `json:"version"`
				FHIRVersion string `json:"fhirVersion"`
				Types       int    `json:"types"`
			}{version, a.reg.Version(), a.reg.TypeCount()}

			return a.emit(info, func(w io.Writer) {
				title := color.New(color.FgCyan, color.Bold)
				title.Fprint(w, "fhirmeta version: ")
				fmt.Fprintln(w, info.Version)
				title.Fprint(w, "FHIR version: ")
				fmt.Fprintln(w, info.FHIRVersion)
				title.Fprint(w, "Types: ")
				fmt.Fprintln(w, info.Types)
			})
		},
	}
}
