package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/erdot/pkg/errors"
	"github.com/matzehuels/erdot/pkg/render"
)

// renderCommand creates the render command, which draws an existing DOT
// document.
func (c *CLI) renderCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "render [file.dot]",
		Short: "Render a DOT document to SVG, PNG, or PDF",
		Long: `Render a DOT document with the embedded Graphviz.

Output files are written next to the input with the format's extension
unless -o is given. PDF output requires rsvg-convert (librsvg).`,
		Example: `  erdot render erd.dot
  erdot render erd.dot -f svg,png -o docs/schema`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := render.ParseFormats(opts.formats)
			if err != nil {
				return err
			}
			return c.runRender(cmd, args[0], formats, &opts)
		},
	}

	opts.register(cmd, string(render.FormatSVG))
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, formats []render.Format, opts *outputOpts) error {
	ctx := cmd.Context()
	loggerFromContext(ctx).Infof("Rendering %s", input)

	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", input)
	}
	if err != nil {
		return err
	}
	dot := string(data)
	if err := render.Validate(ctx, dot); err != nil {
		return err
	}

	fallback := strings.TrimSuffix(input, filepath.Ext(input))
	w := cmd.OutOrStdout()
	paths, err := writeOutputs(ctx, w, dot, formats, opts.output, fallback)
	if err != nil || opts.output == stdoutPath {
		return err
	}

	printSuccess(w, "Rendered %s", filepath.Base(input))
	for _, p := range paths {
		printFile(w, p)
	}
	return nil
}
