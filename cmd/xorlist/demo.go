package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/google/subcommands"
	"github.com/segmentio/xorlist/internal/logger"
	"github.com/segmentio/xorlist/list"
	"github.com/sirupsen/logrus"
)

// Demo implements subcommands.Command for the "demo" command.
type Demo struct {
	out io.Writer
}

// Name implements subcommands.Command.
func (*Demo) Name() string {
	return "demo"
}

// Synopsis implements subcommands.Command.
func (*Demo) Synopsis() string {
	return "pushes and pops values at both ends of a list and prints the results"
}

// Usage implements subcommands.Command.
func (*Demo) Usage() string {
	return "demo\n"
}

// SetFlags implements subcommands.Command.
func (*Demo) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (d *Demo) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l := list.New[int]()

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	render(d.out, l)

	for i := 10; i < 20; i++ {
		l.PushFront(i)
	}
	render(d.out, l)

	fmt.Fprintf(d.out, "List length is %d\n", l.Len())

	v, ok := l.PopBack()
	if !ok {
		logger.L.Error("popping from the back of a non-empty list returned no value")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(d.out, "Pop back: %d\n", v)
	fmt.Fprintf(d.out, "List length is %d\n", l.Len())

	logStats(l)
	return subcommands.ExitSuccess
}

// render prints the elements of l from front to back, without modifying it.
func render[T any](w io.Writer, l *list.List[T]) {
	fmt.Fprintf(w, "%v\n", slices.Collect(l.Clone().Drain().All()))
}

func logStats[T any](l *list.List[T]) {
	stats := l.Stats()
	logger.L.WithFields(logrus.Fields{
		"len":     l.Len(),
		"allocs":  stats.Allocs,
		"reuses":  stats.Reuses,
		"removes": stats.Removes,
		"faults":  stats.Faults,
	}).Debug("arena usage")
}
