package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/segmentio/xorlist/internal/logger"
	"github.com/segmentio/xorlist/list"
)

const (
	front = "front"
	back  = "back"
)

// Exercise implements subcommands.Command for the "exercise" command.
type Exercise struct {
	out  io.Writer
	n    int
	push string
	pop  string
}

// Name implements subcommands.Command.
func (*Exercise) Name() string {
	return "exercise"
}

// Synopsis implements subcommands.Command.
func (*Exercise) Synopsis() string {
	return "pushes a range of integers at one end of a list and pops them from another"
}

// Usage implements subcommands.Command.
func (*Exercise) Usage() string {
	return `exercise [-n count] [-push front|back] [-pop front|back]
`
}

// SetFlags implements subcommands.Command.
func (e *Exercise) SetFlags(f *flag.FlagSet) {
	f.IntVar(&e.n, "n", 10, "number of values to push.")
	f.StringVar(&e.push, "push", back, "end of the list values are pushed to.")
	f.StringVar(&e.pop, "pop", front, "end of the list values are popped from.")
}

// Execute implements subcommands.Command.Execute.
func (e *Exercise) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	values, err := e.run()
	if err != nil {
		logger.L.Errorf("exercise: %v", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(e.out, "%v\n", values)
	return subcommands.ExitSuccess
}

func (e *Exercise) run() ([]int, error) {
	if e.n < 0 {
		return nil, errors.Errorf("invalid count: %d", e.n)
	}

	l := list.New[int]()
	push, err := pushFunc(l, e.push)
	if err != nil {
		return nil, errors.Wrap(err, "-push")
	}
	pop, err := popFunc(l, e.pop)
	if err != nil {
		return nil, errors.Wrap(err, "-pop")
	}

	for i := 0; i < e.n; i++ {
		push(i)
	}
	logger.L.Debugf("pushed %d values to the %s of the list", l.Len(), e.push)

	values := make([]int, 0, e.n)
	for {
		v, ok := pop()
		if !ok {
			break
		}
		values = append(values, v)
	}
	logStats(l)
	return values, nil
}

func pushFunc(l *list.List[int], end string) (func(int), error) {
	switch end {
	case front:
		return l.PushFront, nil
	case back:
		return l.PushBack, nil
	default:
		return nil, errors.Errorf("unknown end of list: %q", end)
	}
}

func popFunc(l *list.List[int], end string) (func() (int, bool), error) {
	switch end {
	case front:
		return l.PopFront, nil
	case back:
		return l.PopBack, nil
	default:
		return nil, errors.Errorf("unknown end of list: %q", end)
	}
}
