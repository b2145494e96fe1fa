// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the ivcalc command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/db47h/interval"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "float64" | "float32"
	Decorated bool
	Color     bool
	Jobs      int

	logger *slog.Logger
}

// ValidFormats defines the allowed bound formats.
var ValidFormats = []string{"float64", "float32"}

// NewRootCommand creates the root command for the ivcalc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ivcalc",
		Short: "ivcalc - interval calculator",
		Long: `Evaluate decorated interval arithmetic operations with outward rounding.

Intervals are written [lo,hi], [lo,hi]_dec, [v], [empty], [entire] or [nai],
where dec is one of com, dac, def, trv.`,
		SilenceErrors: true, // main prints errors
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if opts.Verbose {
				interval.SetLogger(opts.logger)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "float64", "bound format (float64|float32)")
	cmd.PersistentFlags().BoolVarP(&opts.Decorated, "decorated", "d", true, "print decorations")
	cmd.PersistentFlags().BoolVar(&opts.Color, "color", false, "colorize decorations")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}
