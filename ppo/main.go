package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ppo/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Only acts when invoked by the shell for completion, and exits.
	cmd.Completion().Complete("ppo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
