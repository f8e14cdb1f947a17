package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/erdot/pkg/erd"
	erdio "github.com/matzehuels/erdot/pkg/io"
	"github.com/matzehuels/erdot/pkg/render"
)

// exampleCommand writes the built-in three-table diagram.
func (c *CLI) exampleCommand() *cobra.Command {
	var opts outputOpts
	var relsPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example ER diagram (Table A, B, C)",
		Example: `  erdot example
  erdot example --relationships rels.json   # also write the input as a starting point`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := render.ParseFormats(opts.formats)
			if err != nil {
				return err
			}
			colors, err := opts.loadColors(cmd.Context())
			if err != nil {
				return err
			}

			rels := erd.ExampleRelationships()
			if relsPath != "" {
				if err := erdio.ExportRelationships(rels, relsPath); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Infof("Wrote %s", relsPath)
			}

			if err := c.writeDiagram(cmd.Context(), cmd, rels, colors, formats, opts.output, defaultBase); err != nil {
				return err
			}
			if opts.output != stdoutPath && len(formats) == 1 && formats[0] == render.FormatDOT {
				dotPath := outputPath(opts.output, basePath(opts.output, defaultBase), render.FormatDOT, true)
				printNextStep(cmd.OutOrStdout(), "Render it", "erdot render "+dotPath)
			}
			return nil
		},
	}

	opts.register(cmd, string(render.FormatDOT))
	opts.registerColors(cmd)
	cmd.Flags().StringVar(&relsPath, "relationships", "", "also write the example relationships as JSON to this file")
	return cmd
}
