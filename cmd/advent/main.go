// Command advent solves one Advent of Code 2025 day.
//
// Usage:
//
//	advent [-day N] [-v] <input-path|->
//
// Without -day the latest registered day runs. The input is a file path,
// resolved directly or under ./inputs/, or "-" for standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc2025/days"
	"github.com/katalvlaran/aoc2025/input"
	"github.com/katalvlaran/aoc2025/puzzle"
)

var log = logrus.New()

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("advent failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(log.Out)
	day := fs.Int("day", 0, "day to run; 0 means latest registered")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: advent [-day N] [-v] <input-path|->")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	reg := days.Registry()
	if *day == 0 {
		*day, _ = reg.Latest()
	}

	arg := fs.Arg(0)
	if arg != "" && arg != input.Stdin {
		path, err := input.Resolve(arg)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"day": *day, "input": path}).Debug("resolved input")
		arg = path
	}
	text, err := input.Read(arg, input.WithStdin(stdin))
	if err != nil {
		return err
	}

	runner := puzzle.NewRunner(reg, puzzle.WithLogger(log), puzzle.WithOutput(stdout))
	_, err = runner.Run(ctx, *day, text)

	return err
}
