// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/db47h/interval/round"
)

// Float is the set of supported bound types.
type Float interface {
	round.Float
}

// An Interval is a bare interval [Lo, Hi] of extended reals.
//
// The empty set is represented with both bounds NaN. A non-empty interval
// has Lo <= Hi, Lo != +Inf and Hi != -Inf. Any other combination is
// invalid: operations report invalid operands through the side channel (see
// SetHandler) and return Empty.
//
// The zero value is the singleton [0, 0].
type Interval[T Float] struct {
	Lo, Hi T
}

// Empty returns the empty interval.
func Empty[T Float]() Interval[T] {
	nan := round.NaN[T]()
	return Interval[T]{nan, nan}
}

// Entire returns [-Inf, +Inf].
func Entire[T Float]() Interval[T] {
	return Interval[T]{round.Inf[T](-1), round.Inf[T](1)}
}

// New returns [lo, hi]. New(NaN, NaN) is the empty interval. If lo and hi do
// not form a valid interval, New signals an invalid representation and
// returns Empty.
func New[T Float](lo, hi T) Interval[T] {
	x := Interval[T]{lo, hi}
	if !x.IsValid() {
		signalBare("New", x)
		return Empty[T]()
	}
	return norm(lo, hi)
}

// Point returns the singleton [x, x]. Infinite or NaN values signal an
// invalid representation and yield Empty.
func Point[T Float](x T) Interval[T] {
	if !round.IsFinite(x) {
		signalBare("Point", Interval[T]{x, x})
		return Empty[T]()
	}
	return norm(x, x)
}

// IsValid reports whether x satisfies the representation invariants.
func (x Interval[T]) IsValid() bool {
	lnan, hnan := x.Lo != x.Lo, x.Hi != x.Hi
	if lnan || hnan {
		return lnan && hnan
	}
	return x.Lo <= x.Hi && !round.IsInf(x.Lo, 1) && !round.IsInf(x.Hi, -1)
}

// IsEmpty reports whether x is the empty interval.
func (x Interval[T]) IsEmpty() bool {
	return x.Lo != x.Lo && x.Hi != x.Hi
}

// IsEntire reports whether x is [-Inf, +Inf].
func (x Interval[T]) IsEntire() bool {
	return round.IsInf(x.Lo, -1) && round.IsInf(x.Hi, 1)
}

// IsBounded reports whether x is empty or has finite bounds.
func (x Interval[T]) IsBounded() bool {
	return x.IsEmpty() || round.IsFinite(x.Lo) && round.IsFinite(x.Hi)
}

// IsCommon reports whether x is non-empty and bounded.
func (x Interval[T]) IsCommon() bool {
	return !x.IsEmpty() && x.IsBounded()
}

// IsSingleton reports whether x contains exactly one real number.
func (x Interval[T]) IsSingleton() bool {
	return x.Lo == x.Hi && round.IsFinite(x.Lo)
}

// IsMember reports whether the real number m belongs to x.
func (x Interval[T]) IsMember(m T) bool {
	return round.IsFinite(m) && x.Lo <= m && m <= x.Hi
}

// contains reports whether the extended real v lies within x.
func (x Interval[T]) contains(v T) bool {
	return x.Lo <= v && v <= x.Hi
}

// String returns x formatted as [lo, hi], [empty] or [entire].
func (x Interval[T]) String() string {
	switch {
	case x.IsEmpty():
		return "[empty]"
	case x.IsEntire():
		return "[entire]"
	}
	return "[" + formatFloat(x.Lo) + ", " + formatFloat(x.Hi) + "]"
}

func formatFloat[T Float](v T) string {
	bits := 64
	if unsafe.Sizeof(v) == 4 {
		bits = 32
	}
	switch {
	case math.IsInf(float64(v), 1):
		return "+inf"
	case math.IsInf(float64(v), -1):
		return "-inf"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, bits)
}

// checkBare reports whether all operands are valid, signalling those that
// are not.
func checkBare[T Float](op string, xs ...Interval[T]) bool {
	ok := true
	for _, x := range xs {
		if !x.IsValid() {
			signalBare(op, x)
			ok = false
		}
	}
	return ok
}

// anyEmpty reports whether any of xs is empty.
func anyEmpty[T Float](xs ...Interval[T]) bool {
	for _, x := range xs {
		if x.IsEmpty() {
			return true
		}
	}
	return false
}

// val returns the value of a rounded result, dropping its accuracy.
func val[T Float](v T, _ round.Accuracy) T {
	return v
}

// norm returns [lo, hi] with a -0 upper bound replaced by +0 and a +0 lower
// bound replaced by -0.
func norm[T Float](lo, hi T) Interval[T] {
	if lo == 0 {
		lo = round.Zero[T](round.Down)
	}
	if hi == 0 {
		hi = 0
	}
	return Interval[T]{lo, hi}
}
