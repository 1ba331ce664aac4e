package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longhike"
)

// cancelEvery is how many search frames pass between context checks.
const cancelEvery = 1 << 16

type solveOpts struct {
	slopes bool
	route  bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the length of the longest hike",
		Long:  `Read a maze from file (or stdin) and print the length of the longest hike from start to finish.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("slopes") {
				opts.slopes = c.cfg.Slopes
			}
			if !cmd.Flags().Changed("route") {
				opts.route = c.cfg.Route
			}
			return runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.slopes, "slopes", false, "treat slope markers as one-way")
	cmd.Flags().BoolVar(&opts.route, "route", false, "print the junctions along the longest hike")

	return cmd
}

func runSolve(ctx context.Context, stdin io.Reader, w io.Writer, args []string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	rows, name, err := loadRows(stdin, args)
	if err != nil {
		return err
	}
	logger.Debug("read maze", "source", name, "rows", len(rows))

	prog := newProgress(logger)
	res, err := longhike.Solve(rows, solverOptions(ctx, opts)...)
	if err != nil {
		return err
	}
	prog.done("searched", "nodes", res.Graph.Len(), "calls", res.Calls)

	printSuccess(w, "longest hike: %s steps", StyleNumber.Render(strconv.Itoa(res.Length)))
	if opts.route {
		printInfo(w, "route through %d nodes", len(res.Route))
		for _, cell := range res.Route {
			printDetail(w, "%s (%d,%d)", iconArrow, cell.X, cell.Y)
		}
	}

	return nil
}

// solverOptions maps CLI options onto longhike options. The search polls ctx
// so that an interrupt stops long runs.
func solverOptions(ctx context.Context, opts solveOpts) []longhike.Option {
	calls := 0
	out := []longhike.Option{
		longhike.WithOnVisit(func(int) error {
			calls++
			if calls%cancelEvery == 0 {
				return ctx.Err()
			}
			return nil
		}),
	}
	if opts.slopes {
		out = append(out, longhike.WithSlopes())
	}
	if opts.route {
		out = append(out, longhike.WithRoute())
	}

	return out
}
