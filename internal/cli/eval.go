// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/interval"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <args>...",
		Short: "Evaluate one interval operation",
		Long: `Evaluate one interval operation and print its result.

Operations taking an integer exponent (pown, rootn, pown_rev) read it as
their last argument.`,
		Example:      "  ivcalc eval add [1,2] [3,4]\n  ivcalc eval pown [-2,3] 2",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				line string
				err  error
			)
			if rootOpts.Format == "float32" {
				line, err = evalLine[float32](rootOpts, args)
			} else {
				line, err = evalLine[float64](rootOpts, args)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "evaluation failed", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	return cmd
}

// evalLine evaluates the operation args[0] on args[1:] and formats the
// result.
func evalLine[T interval.Float](opts *RootOptions, args []string) (string, error) {
	r, err := evaluate[T](args[0], args[1:])
	if err != nil {
		return "", err
	}
	line := newPrinter[T](opts).format(r)
	if opts.logger != nil {
		opts.logger.Debug("evaluated", slog.String("op", args[0]), slog.Any("args", args[1:]), slog.String("result", line))
	}
	return line, nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate one operation per input line",
		Long: `Evaluate one operation per line of file, or of the standard input if
file is omitted or "-". Each line holds an operation name followed by its
arguments, separated by blanks. Empty lines and lines starting with # are
skipped. Lines are evaluated concurrently; results are printed in input order.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "cannot open input", err)
				}
				defer f.Close()
				in = f
			}
			return runBatch(rootOpts, in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&rootOpts.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of concurrent evaluations")
	return cmd
}

func runBatch(opts *RootOptions, in io.Reader, out io.Writer) error {
	var lines [][]string
	s := bufio.NewScanner(in)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		lines = append(lines, strings.Fields(l))
	}
	if err := s.Err(); err != nil {
		return WrapExitError(ExitCommandError, "cannot read input", err)
	}

	results := make([]string, len(lines))
	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))
	for i, args := range lines {
		g.Go(func() error {
			var err error
			if opts.Format == "float32" {
				results[i], err = evalLine[float32](opts, args)
			} else {
				results[i], err = evalLine[float64](opts, args)
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	if opts.logger != nil {
		opts.logger.Info("batch done", slog.Int("lines", len(lines)), slog.Uint64("invalid", interval.InvalidCount()))
	}
	return nil
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range OperationNames() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
