package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gofhir/metadata/pkg/choice"
	"github.com/gofhir/metadata/pkg/fhirtype"
	"github.com/gofhir/metadata/pkg/pathexpr"
	"github.com/gofhir/metadata/pkg/resolver"
)

// errUnresolved is returned when at least one path did not resolve.
var errUnresolved = errors.New("one or more paths did not resolve")

type typeOutput struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func newTypeOutput(t fhirtype.FieldType) *typeOutput {
	return &typeOutput{Kind: t.Kind().String(), Name: t.Name()}
}

type resolveOutput struct {
	Path       string      `json:"path"`
	Normalized string      `json:"normalized,omitempty"`
	Found      bool        `json:"found"`
	Type       *typeOutput `json:"type,omitempty"`
	Display    string      `json:"display,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type resolveFlags struct {
	normalize bool
	strict    bool
	explain   bool
}

func newResolveCommand(a *app) *cobra.Command {
	var f resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve dotted element paths to their types",
		Long: `Resolve dotted element paths such as Patient.name.given to the type of
their last segment.

Choice fields must be written with their [x] name (Condition.onset[x]) unless
--normalize is given, which also accepts typed names (Condition.onsetDateTime).`,
		Example: `  fhirmeta resolve Patient.name.given Bundle.entry.resource
  fhirmeta resolve --normalize --explain Observation.valueQuantity.unit
  fhirmeta resolve --strict 'Patient.name.where(use = "official")'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.resolvePaths(args, f)

			if err := a.emit(results, func(w io.Writer) { printResolveText(w, results) }); err != nil {
				return err
			}
			for _, r := range results {
				if !r.Found {
					return errUnresolved
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "Accept typed choice names such as onsetDateTime")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject input that is not a valid, flat FHIRPath path")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "Report why a path did not resolve")
	return cmd
}

func (a *app) resolvePaths(paths []string, f resolveFlags) []resolveOutput {
	var checker *pathexpr.Checker
	if f.strict {
		checker = pathexpr.NewChecker()
	}

	results := make([]resolveOutput, 0, len(paths))
	for _, path := range paths {
		res := resolveOutput{Path: path}

		if checker != nil {
			if err := checker.Validate(path); err != nil {
				res.Error = err.Error()
				results = append(results, res)
				continue
			}
		}

		var (
			t  fhirtype.FieldType
			ok bool
		)
		if f.normalize {
			t, ok = choice.Resolve(a.reg, path)
			if n, nok := choice.Path(a.reg, path); nok && n != path {
				res.Normalized = n
			}
		} else {
			t, ok = resolver.Resolve(a.reg, path)
		}

		if ok {
			res.Found = true
			res.Type = newTypeOutput(t)
			res.Display = t.String()
		} else if f.explain {
			explain := resolver.Explain
			if f.normalize {
				explain = choice.Explain
			}
			if _, err := explain(a.reg, path); err != nil {
				res.Error = err.Error()
			}
		}
		a.log.Debug("resolve %s: found=%v", path, res.Found)
		results = append(results, res)
	}
	if checker != nil {
		s := checker.CacheStats()
		a.log.Debug("expression cache: %d entries, %d hits, %d misses", s.Len, s.Hits, s.Misses)
	}
	return results
}

func printResolveText(w io.Writer, results []resolveOutput) {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	dim := color.New(color.Faint)

	for _, r := range results {
		fmt.Fprintf(w, "%s  ", r.Path)
		switch {
		case r.Found:
			ok.Fprint(w, r.Display)
			if r.Normalized != "" {
				dim.Fprintf(w, "  (%s)", r.Normalized)
			}
		case r.Error != "":
			fail.Fprintf(w, "not found: %s", r.Error)
		default:
			fail.Fprint(w, "not found")
		}
		fmt.Fprintln(w)
	}
}
