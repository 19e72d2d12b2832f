package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/ppo"
	"github.com/etnz/ppo/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct {
	json bool
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list the candidate projects" }
func (*catalogCmd) Usage() string {
	return `ppo catalog [-json]

  Lists the projects of the built-in catalog with their cost, benefit and
  benefit per unit of cost.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the catalog as a JSON array.")
}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := ppo.CheckCurrency(*currency); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog := ppo.DefaultCatalog()
	if c.json {
		data, err := json.Marshal(catalog.Projects())
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding catalog: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderCatalog(renderer.NewCatalogView(catalog, *currency)))
	return subcommands.ExitSuccess
}
