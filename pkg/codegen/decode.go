package codegen

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gofhir/fhir/r4"
	"golang.org/x/sync/errgroup"

	"github.com/gofhir/metadata/pkg/loader"
)

// Definition is a decoded StructureDefinition together with the package
// metadata the loader probed for it.
type Definition struct {
	loader.Definition
	SD *r4.StructureDefinition
}

// Decode unmarshals every definition concurrently. The result has the same
// order as defs. Decoding stops at the first error or when ctx is done.
func (g *Generator) Decode(ctx context.Context, defs []loader.Definition) ([]Definition, error) {
	out := make([]Definition, len(defs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)

	for i := range defs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var sd r4.StructureDefinition
			if err := json.Unmarshal(defs[i].Data, &sd); err != nil {
				return fmt.Errorf("failed to parse StructureDefinition %s: %w", defs[i].Source, err)
			}
			out[i] = Definition{Definition: defs[i], SD: &sd}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
