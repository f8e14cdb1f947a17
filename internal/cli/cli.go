// Package cli implements the erdot command-line interface.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/erdot/pkg/buildinfo"
	"github.com/matzehuels/erdot/pkg/erd"
	"github.com/matzehuels/erdot/pkg/errors"
	erdio "github.com/matzehuels/erdot/pkg/io"
	"github.com/matzehuels/erdot/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "erdot"

	// defaultBase is the output base name when none is given ("erd" + ".dot").
	defaultBase = "erd"

	// stdoutPath as an output path writes the document to stdout.
	stdoutPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "erdot draws entity relationship diagrams with Graphviz",
		Long:         `erdot turns a list of field-to-field relationships into a Graphviz DOT document with one node per table and one edge per relationship, and optionally renders it to SVG, PNG, or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Output Helpers
// =============================================================================

// outputOpts holds the flags shared by commands that write diagrams.
type outputOpts struct {
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated formats
	colors  string // TOML color file
}

func (o *outputOpts) register(cmd *cobra.Command, defaultFormats string) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&o.formats, "format", "f", defaultFormats, "output format(s): dot, svg, png, pdf (comma-separated)")
}

func (o *outputOpts) registerColors(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.colors, "colors", "", "TOML file mapping table names to header colors")
}

// loadColors reads the color file, or returns an empty lookup when none is set.
func (o *outputOpts) loadColors(ctx context.Context) (erd.Colors, error) {
	if o.colors == "" {
		return erd.Colors{}, nil
	}
	colors, err := erdio.ImportColors(o.colors)
	if err != nil {
		return erd.Colors{}, err
	}
	loggerFromContext(ctx).Debugf("Loaded %d table colors from %s", colors.Len(), o.colors)
	return colors, nil
}

// basePath derives the base output path. An empty output falls back to
// fallback. A known format extension on output is stripped.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for format f. A single requested format with an
// explicit output path is written to that path unchanged.
func outputPath(output, base string, f render.Format, single bool) string {
	if single && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + f.Ext()
}

// writeOutputs renders dot in each format and writes the results. It returns
// the written paths in format order. An output of "-" writes the DOT document
// to stdout and is only valid with the dot format.
func writeOutputs(ctx context.Context, stdout io.Writer, dot string, formats []render.Format, output, fallback string) ([]string, error) {
	logger := loggerFromContext(ctx)
	if output == stdoutPath {
		if len(formats) != 1 || formats[0] != render.FormatDOT {
			return nil, errors.New(errors.ErrCodeInvalidPath, "-o - requires --format dot")
		}
		return nil, erdio.WriteDOT(dot, stdout)
	}
	base := basePath(output, fallback)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		prog := newProgress(logger)
		data, err := render.Render(ctx, dot, f)
		if err != nil {
			return paths, err
		}
		path := outputPath(output, base, f, len(formats) == 1)
		if f == render.FormatDOT {
			err = erdio.ExportDOT(dot, path)
		} else {
			err = erdio.ExportBytes(data, path)
		}
		if err != nil {
			return paths, err
		}
		prog.done("Wrote " + path)
		paths = append(paths, path)
	}
	return paths, nil
}
