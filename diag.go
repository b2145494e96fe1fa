// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ErrInvalid is the sentinel error wrapped by every *InvalidError.
var ErrInvalid = errors.New("invalid interval")

// InvalidError reports an operand or a constructor argument that violates
// the representation invariants of bare or decorated intervals.
//
// InvalidErrors are never returned by operations. They are delivered to the
// Handler installed with SetHandler, counted and logged, and the operation
// carries on with a safe default (Empty, NaI, Undefined or false).
type InvalidError struct {
	Op        string  // operation that detected the invalid value
	Lo        float64 // offending bounds, widened to float64
	Hi        float64
	Dec       Decoration
	Decorated bool // false for a bare interval
}

func (e *InvalidError) Error() string {
	if !e.Decorated {
		return fmt.Sprintf("%s: invalid interval [%g, %g]", e.Op, e.Lo, e.Hi)
	}
	return fmt.Sprintf("%s: invalid decorated interval [%g, %g]_%s", e.Op, e.Lo, e.Hi, e.Dec)
}

func (e *InvalidError) Unwrap() error { return ErrInvalid }

// A Handler receives invalid representation signals. It must be safe for
// concurrent use.
type Handler func(err error)

var (
	handler atomic.Pointer[Handler]
	logger  atomic.Pointer[slog.Logger]
	invalid atomic.Uint64
)

// SetHandler installs h as the handler for invalid representation signals and
// returns the previous one. A nil h removes the handler.
func SetHandler(h Handler) Handler {
	var old *Handler
	if h == nil {
		old = handler.Swap(nil)
	} else {
		old = handler.Swap(&h)
	}
	if old == nil {
		return nil
	}
	return *old
}

// SetLogger sets the logger used to report invalid representations at debug
// level. A nil l disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// InvalidCount returns the number of invalid representations detected since
// the program started or since the last call to ResetInvalidCount.
func InvalidCount() uint64 {
	return invalid.Load()
}

// ResetInvalidCount resets the invalid representation counter to zero and
// returns its previous value.
func ResetInvalidCount() uint64 {
	return invalid.Swap(0)
}

// signal reports err through the side channel.
func signal(err *InvalidError) {
	invalid.Add(1)
	if l := logger.Load(); l != nil {
		l.Debug("invalid interval",
			slog.String("op", err.Op),
			slog.Float64("lo", err.Lo),
			slog.Float64("hi", err.Hi),
			slog.Bool("decorated", err.Decorated),
			slog.String("dec", err.Dec.String()))
	}
	if h := handler.Load(); h != nil {
		(*h)(err)
	}
}

func signalBare[T Float](op string, x Interval[T]) {
	signal(&InvalidError{Op: op, Lo: float64(x.Lo), Hi: float64(x.Hi)})
}

func signalDecorated[T Float](op string, x Decorated[T]) {
	signal(&InvalidError{Op: op, Lo: float64(x.Bare.Lo), Hi: float64(x.Bare.Hi), Dec: x.Dec, Decorated: true})
}
