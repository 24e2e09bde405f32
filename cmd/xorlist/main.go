// Binary xorlist demonstrates the XOR-linked list of this module.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/segmentio/xorlist/internal/logger"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	for _, cmd := range commands(os.Stdout, os.Stderr) {
		subcommands.Register(cmd, "")
	}

	verbose := flag.Bool("v", false, "enable debug logs.")
	flag.Parse()
	logger.Setup(*verbose)

	os.Exit(int(subcommands.Execute(context.Background())))
}

// commands returns the commands of the binary. The demo prints its diagnostics
// to stderr, the exercise results are written to stdout.
func commands(stdout, stderr io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&Demo{out: stderr},
		&Exercise{out: stdout},
	}
}
