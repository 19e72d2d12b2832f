package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ppo"
	"github.com/etnz/ppo/renderer"
	"github.com/google/subcommands"
)

type solveCmd struct {
	budget  string
	explain bool
	json    bool
	query   string
	require string
}

func (*solveCmd) Name() string     { return "solve" }
func (*solveCmd) Synopsis() string { return "choose the projects with the best benefit for a budget" }
func (*solveCmd) Usage() string {
	return `ppo solve [-b <budget>] [-require <name>,...] [-explain] [-json] [-q <jsonpath>]

  Chooses the projects of the catalog with the maximum total benefit whose
  total cost fits in the budget. Without -b, the budget is read from the
  standard input. Projects listed in -require are always funded, the rest of
  the budget goes to the best of the other projects.

Usage Examples:
# Optimize for a budget of 10.
$ ppo solve -b 10

# Print only the names of the chosen projects.
$ ppo solve -b 10 -q '$.chosen[*].name'

# Fund Proj_C whatever happens.
$ ppo solve -b 10 -require Proj_C
`
}

func (c *solveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "b", "", "Available budget, a positive whole number. Asked on stdin if empty.")
	f.BoolVar(&c.explain, "explain", false, "Append an explanation of the method to the report.")
	f.BoolVar(&c.json, "json", false, "Print the plan as JSON.")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath expression evaluated on the JSON plan.")
	f.StringVar(&c.require, "require", "", "Comma separated names of projects that must be funded.")
}

func (c *solveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := ppo.CheckCurrency(*currency); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	input := c.budget
	if input == "" {
		var err error
		input, err = promptBudget()
		if err != nil {
			fmt.Fprintf(stderr, "Error reading budget: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	budget, err := ppo.ParseBudget(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog := ppo.DefaultCatalog()
	logf("optimizing %d projects for a budget of %d", catalog.Len(), budget)
	plan, err := ppo.OptimizeRequired(catalog, budget, splitNames(c.require)...)
	if errors.Is(err, ppo.ErrUnknownProject) || errors.Is(err, ppo.ErrInvalidBudget) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error optimizing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	logf("best benefit %d with %d projects", plan.MaxBenefit(), len(plan.Chosen()))

	switch {
	case c.query != "":
		val, err := ppo.Query(plan, c.query)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := printValue(val); err != nil {
			fmt.Fprintf(stderr, "Error printing query result: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.json:
		data, err := json.Marshal(plan)
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding plan: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
	default:
		opts := renderer.PlanRenderOptions{Explain: c.explain}
		printMarkdown(renderer.RenderPlan(renderer.NewPlanView(plan, *currency), opts))
	}
	return subcommands.ExitSuccess
}

// splitNames splits a comma separated list of project names, ignoring blanks.
func splitNames(list string) []string {
	var res []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			res = append(res, name)
		}
	}
	return res
}

// promptBudget asks for the budget on stderr and reads one line from stdin.
func promptBudget() (string, error) {
	fmt.Fprint(stderr, "Enter the available budget (a whole number, for example 10): ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", fmt.Errorf("no budget given: %w", err)
	}
	return line, nil
}

// printValue prints a query result: one line per list element, strings unquoted.
func printValue(val any) error {
	if list, ok := val.([]any); ok {
		for _, v := range list {
			if err := printValue(v); err != nil {
				return err
			}
		}
		return nil
	}
	if s, ok := val.(string); ok {
		fmt.Fprintln(stdout, s)
		return nil
	}
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
