// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/fatih/color"

	"github.com/db47h/interval"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Evaluation failure (invalid interval, unknown operation)
	ExitCommandError = 2 // Command error (bad flags, unreadable input)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// printer formats evaluation results.
type printer[T interval.Float] struct {
	decorated bool
	colors    map[interval.Decoration]*color.Color
}

func newPrinter[T interval.Float](opts *RootOptions) *printer[T] {
	p := &printer[T]{
		decorated: opts.Decorated,
		colors: map[interval.Decoration]*color.Color{
			interval.Com: color.New(color.FgGreen),
			interval.Dac: color.New(color.FgCyan),
			interval.Def: color.New(color.FgYellow),
			interval.Trv: color.New(color.FgMagenta),
			interval.Ill: color.New(color.FgHiRed),
		},
	}
	for _, c := range p.colors {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer[T]) interval(x interval.Decorated[T]) string {
	if !p.decorated {
		return x.Bare.String()
	}
	c := p.colors[x.Dec]
	if x.IsNaI() {
		return c.Sprint("[nai]")
	}
	return x.Bare.String() + "_" + c.Sprint(x.Dec.String())
}

func (p *printer[T]) format(v any) string {
	switch v := v.(type) {
	case interval.Decorated[T]:
		return p.interval(v)
	case [2]interval.Decorated[T]:
		return p.interval(v[0]) + " " + p.interval(v[1])
	case T:
		bits := 64
		if unsafe.Sizeof(v) == 4 {
			bits = 32
		}
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	case bool:
		return strconv.FormatBool(v)
	case interval.Overlap:
		return v.String()
	}
	return fmt.Sprint(v)
}
