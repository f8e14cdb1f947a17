package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/erdot/pkg/erd"
	erdio "github.com/matzehuels/erdot/pkg/io"
	"github.com/matzehuels/erdot/pkg/render"
)

// generateCommand creates the generate command, which turns a relationship
// file into a diagram.
func (c *CLI) generateCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate an ER diagram from a JSON or YAML relationship file",
		Long: `Generate an ER diagram from a relationship file.

The file is a JSON or YAML list of relationships, either as objects
({"source": {"table": ..., "field": ...}, "destination": {...}}) or as
pairs of (table, field) pairs. Output goes to erd.dot next to the input
unless -o is given.`,
		Example: `  erdot generate schema.json
  erdot generate schema.yaml --colors colors.toml -f dot,svg -o out/schema`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := render.ParseFormats(opts.formats)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd, args[0], formats, &opts)
		},
	}

	opts.register(cmd, string(render.FormatDOT))
	opts.registerColors(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, formats []render.Format, opts *outputOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Infof("Reading %s", input)

	rels, err := erdio.ImportRelationships(input)
	if err != nil {
		return err
	}
	colors, err := opts.loadColors(ctx)
	if err != nil {
		return err
	}

	fallback := filepath.Join(filepath.Dir(input), defaultBase)
	return c.writeDiagram(ctx, cmd, rels, colors, formats, opts.output, fallback)
}

// writeDiagram builds the DOT document for rels and writes every format.
func (c *CLI) writeDiagram(ctx context.Context, cmd *cobra.Command, rels []erd.Relationship, colors erd.Colors, formats []render.Format, output, fallback string) error {
	logger := loggerFromContext(ctx)

	m := erd.BuildMapping(rels)
	logger.Debugf("Built mapping: %d tables from %d relationships", m.Len(), len(rels))
	dot := erd.Assemble(erd.RenderNodes(m, colors), erd.RenderEdges(rels))

	w := cmd.OutOrStdout()
	paths, err := writeOutputs(ctx, w, dot, formats, output, fallback)
	if err != nil || output == stdoutPath {
		return err
	}

	printSuccess(w, "Generated ER diagram")
	printStats(w, m.Len(), len(rels))
	for _, p := range paths {
		printFile(w, p)
	}
	return nil
}
