package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/ppo"
	"github.com/etnz/ppo/renderer"
	"github.com/google/subcommands"
)

// maxSweepRows bounds the length of the sweep report.
const maxSweepRows = 200

type sweepCmd struct {
	max  string
	step string
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "show the best benefit for every budget" }
func (*sweepCmd) Usage() string {
	return `ppo sweep [-max <budget>] [-step <budget>]

  Shows the best benefit reachable for the budgets -step, 2*-step, ... up to
  -max, and the gain since the previous row. -max defaults to the cost of the
  whole catalog, beyond which the benefit cannot grow. -step defaults to the
  smallest step that keeps the report within 200 rows.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.max, "max", "", "Largest budget of the sweep. Defaults to the total cost of the catalog.")
	f.StringVar(&c.step, "step", "", "Budget between two rows. Defaults to fit the report in 200 rows.")
}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := ppo.CheckCurrency(*currency); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog := ppo.DefaultCatalog()
	input := c.max
	if input == "" {
		input = strconv.Itoa(catalog.TotalCost())
	}
	limit, err := ppo.ParseBudget(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	step := (limit + maxSweepRows - 1) / maxSweepRows
	if c.step != "" {
		step, err = ppo.ParseBudget(c.step)
		if err != nil {
			fmt.Fprintf(stderr, "Error: -step: %v\n", err)
			return subcommands.ExitUsageError
		}
		if n := ppo.SweepLen(limit, step); n > maxSweepRows {
			fmt.Fprintf(stderr, "Error: a step of %d gives %d rows, more than %d\n", step, n, maxSweepRows)
			return subcommands.ExitUsageError
		}
	}

	logf("sweeping budgets %d to %d by %d", step, limit, step)
	points, err := ppo.Sweep(catalog, limit, step)
	if err != nil {
		fmt.Fprintf(stderr, "Error sweeping budgets: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSweep(renderer.NewSweepView(points, *currency)))
	return subcommands.ExitSuccess
}
