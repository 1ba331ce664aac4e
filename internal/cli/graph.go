package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longhike"
	"github.com/katalvlaran/longhike/internal/config"
	"github.com/katalvlaran/longhike/render"
)

type graphOpts struct {
	format   string
	output   string
	slopes   bool
	detailed bool
}

func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Export the junction graph with the longest hike highlighted",
		Long:  `Read a maze from file (or stdin), compress it to its junction graph and write the graph as Graphviz DOT or SVG.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.cfg.Graph.Format
			}
			if !cmd.Flags().Changed("output") {
				opts.output = c.cfg.Graph.Output
			}
			if !cmd.Flags().Changed("slopes") {
				opts.slopes = c.cfg.Slopes
			}
			return runGraph(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.slopes, "slopes", false, "treat slope markers as one-way")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with their index")

	return cmd
}

func runGraph(ctx context.Context, stdin io.Reader, w io.Writer, args []string, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	if opts.format != config.FormatDOT && opts.format != config.FormatSVG {
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, opts.format)
	}

	rows, name, err := loadRows(stdin, args)
	if err != nil {
		return err
	}
	logger.Debug("read maze", "source", name, "rows", len(rows))

	res, err := longhike.Solve(rows, solverOptions(ctx, solveOpts{slopes: opts.slopes, route: true})...)
	if err != nil {
		return err
	}

	dot := render.ToDOT(res.Graph, render.Options{Path: res.Path, Detailed: opts.detailed})
	data := []byte(dot)
	if opts.format == config.FormatSVG {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done("rendered svg", "bytes", len(data))
	}

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(w, "wrote %s (%d nodes, hike %d)", opts.output, res.Graph.Len(), res.Length)

	return nil
}
