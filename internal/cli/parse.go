// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/db47h/interval"
	"github.com/db47h/interval/round"
)

// parsePrec is the precision used to read decimal bounds before narrowing
// them to the target format.
const parsePrec = 2200

// parseBound reads a decimal or hexadecimal number, or ±inf, and rounds it
// into T in direction m.
func parseBound[T interval.Float](s string, m round.Mode) (T, error) {
	mode := big.ToNegativeInf
	if m == round.Up {
		mode = big.ToPositiveInf
	}
	f, _, err := big.ParseFloat(strings.TrimSpace(s), 0, parsePrec, mode)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q: %w", s, err)
	}
	if f.Sign() == 0 {
		return round.Zero[T](m), nil
	}
	v, _ := round.Narrow[T](f, m)
	return v, nil
}

// ParseDecorated parses a decorated interval written [lo,hi], [v], [empty],
// [entire] or [nai], with an optional _dec suffix. Without a suffix, the
// interval gets the strongest decoration it supports. Bounds are rounded
// outward.
func ParseDecorated[T interval.Float](s string) (interval.Decorated[T], error) {
	s = strings.TrimSpace(s)
	end := strings.IndexByte(s, ']')
	if !strings.HasPrefix(s, "[") || end < 0 {
		return interval.NaI[T](), fmt.Errorf("invalid interval %q: missing brackets", s)
	}
	body, suffix := strings.ToLower(strings.TrimSpace(s[1:end])), s[end+1:]

	var x interval.Interval[T]
	switch body {
	case "nai":
		if suffix != "" {
			return interval.NaI[T](), fmt.Errorf("invalid interval %q: decorated NaI", s)
		}
		return interval.NaI[T](), nil
	case "empty":
		x = interval.Empty[T]()
	case "entire":
		x = interval.Entire[T]()
	default:
		lo, hi, ok := strings.Cut(body, ",")
		if !ok {
			hi = lo
		}
		var err error
		if x.Lo, err = parseBound[T](lo, round.Down); err != nil {
			return interval.NaI[T](), err
		}
		if x.Hi, err = parseBound[T](hi, round.Up); err != nil {
			return interval.NaI[T](), err
		}
		if !x.IsValid() || x.IsEmpty() {
			return interval.NaI[T](), fmt.Errorf("%q: %w", s, interval.ErrInvalid)
		}
	}

	if suffix == "" {
		return interval.NewDecorated(x), nil
	}
	d, ok := interval.ParseDecoration(strings.TrimPrefix(suffix, "_"))
	if !ok || !strings.HasPrefix(suffix, "_") {
		return interval.NaI[T](), fmt.Errorf("invalid decoration in %q", s)
	}
	r := interval.Decorated[T]{Bare: x, Dec: d}
	if !r.IsValid() || r.IsNaI() {
		return interval.NaI[T](), fmt.Errorf("%q: %w", s, interval.ErrInvalid)
	}
	return r, nil
}
