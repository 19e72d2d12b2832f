// Package cmd implements the CLI application to optimize a project portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

const (
	EnvCurrency = "PPO_CURRENCY"
	EnvVerbose  = "PPO_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", os.Getenv(EnvCurrency), "Currency of costs and budgets in reports (ISO 4217 code). Defaults to $"+EnvCurrency+", none prints bare numbers.")
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Log progress messages on stderr. Defaults to $"+EnvVerbose+".")
var raw = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal.")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands returns all the ppo subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&catalogCmd{},
		&solveCmd{},
		&sweepCmd{},
		&topicCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands() {
		group := "portfolio"
		if cmd.Name() == "topic" {
			group = "documentation"
		}
		c.Register(cmd, group)
	}
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

// logf logs only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// printMarkdown prints md on stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logf("cannot create markdown renderer, printing raw markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logf("cannot render markdown, printing raw markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
