package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gofhir/metadata/pkg/choice"
	"github.com/gofhir/metadata/pkg/fhirtype"
)

// Errors returned by the lookup commands.
var (
	errUnknownType  = errors.New("unknown type")
	errUnknownField = errors.New("unknown field")
)

type fieldOutput struct {
	Name        string      `json:"name"`
	Type        *typeOutput `json:"type"`
	Min         uint32      `json:"min"`
	Max         string      `json:"max"`
	Choice      bool        `json:"choice"`
	ChoiceTypes []string    `json:"choiceTypes,omitempty"`
	Variant     string      `json:"variant,omitempty"`
}

func newFieldOutput(name string, fi fhirtype.FieldInfo) fieldOutput {
	upper := "*"
	if n, ok := fi.MaxOccurs(); ok {
		upper = strconv.FormatUint(uint64(n), 10)
	}
	return fieldOutput{
		Name:        name,
		Type:        newTypeOutput(fi.Type),
		Min:         fi.Min,
		Max:         upper,
		Choice:      fi.IsChoice,
		ChoiceTypes: fi.ChoiceTypes(),
	}
}

func (f fieldOutput) cardinality() string {
	return fmt.Sprintf("%d..%s", f.Min, f.Max)
}

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <type> <field>",
		Short: "Show the metadata of one field",
		Long: `Show the type, cardinality and choice types of one field.

Typed choice names are accepted: "info Condition onsetAge" reports onset[x]
with the Age variant selected.`,
		Example: `  fhirmeta info Patient name
  fhirmeta info Patient.contact telecom
  fhirmeta info Condition onsetDateTime`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, field := args[0], args[1]
			if !a.reg.Has(typeName) {
				return fmt.Errorf("%w: %s", errUnknownType, typeName)
			}
			m, ok := choice.Lookup(a.reg, typeName, field)
			if !ok {
				return fmt.Errorf("%w: %s.%s", errUnknownField, typeName, field)
			}

			out := newFieldOutput(m.Name, m.Info)
			out.Variant = m.Code
			return a.emit(out, func(w io.Writer) {
				label := color.New(color.FgCyan)
				label.Fprint(w, "Field:       ")
				fmt.Fprintf(w, "%s.%s\n", typeName, out.Name)
				label.Fprint(w, "Type:        ")
				fmt.Fprintln(w, m.Info.Type)
				label.Fprint(w, "Cardinality: ")
				fmt.Fprintln(w, out.cardinality())
				if out.Choice {
					label.Fprint(w, "Choice of:   ")
					fmt.Fprintln(w, strings.Join(out.ChoiceTypes, ", "))
				}
				if out.Variant != "" {
					label.Fprint(w, "Variant:     ")
					fmt.Fprintf(w, "%s (%s)\n", out.Variant, m.Type())
				}
			})
		},
	}
}

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "fields <type>",
		Short:   "List the fields of a type",
		Example: "  fhirmeta fields Patient\n  fhirmeta fields Bundle.entry.request --output json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, ok := a.reg.Fields(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errUnknownType, args[0])
			}

			out := make([]fieldOutput, 0, fields.Len())
			for _, name := range fields.Names() {
				fi, _ := fields.Get(name)
				out = append(out, newFieldOutput(name, fi))
			}

			return a.emit(out, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "FIELD\tTYPE\tCARD\tCHOICE OF")
				for _, f := range out {
					fi, _ := fields.Get(f.Name)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, fi.Type, f.cardinality(), strings.Join(f.ChoiceTypes, ","))
				}
				tw.Flush()
			})
		},
	}
}

func newTypesCommand(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, a.reg.TypeCount())
			for _, name := range a.reg.TypeNames() {
				if strings.HasPrefix(name, prefix) {
					names = append(names, name)
				}
			}
			return a.emit(names, func(w io.Writer) {
				for _, name := range names {
					fmt.Fprintln(w, name)
				}
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list types starting with this prefix")
	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the registry invariants",
		Long: `Verify that every field has a valid type and cardinality, that choice
flags match the [x] suffix, and that every navigable type name is registered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := struct {
				FHIRVersion string   `json:"fhirVersion"`
				Types       int      `json:"types"`
				Fields      int      `json:"fields"`
				Valid       bool     `json:"valid"`
				Errors      []string `json:"errors,omitempty"`
			}{FHIRVersion: a.reg.Version(), Types: a.reg.TypeCount()}

			for _, name := range a.reg.TypeNames() {
				fields, _ := a.reg.Fields(name)
				report.Fields += fields.Len()
			}

			err := a.reg.Validate()
			if err != nil {
				report.Errors = strings.Split(err.Error(), "\n")
			}
			report.Valid = err == nil

			if emitErr := a.emit(report, func(w io.Writer) {
				if report.Valid {
					color.New(color.FgGreen).Fprint(w, "ok")
					fmt.Fprintf(w, ": %d types, %d fields (FHIR %s)\n", report.Types, report.Fields, report.FHIRVersion)
					return
				}
				for _, e := range report.Errors {
					color.New(color.FgRed).Fprintln(w, e)
				}
			}); emitErr != nil {
				return emitErr
			}
			return err
		},
	}
}
