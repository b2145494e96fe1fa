// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "math"

// A step function and the test for its points of discontinuity.
type step[T Float] struct {
	f    func(v T) T
	disc func(v T) bool
}

func isInteger[T Float](v T) bool {
	return v == T(math.Trunc(float64(v))) && !math.IsInf(float64(v), 0)
}

func isNonzeroInteger[T Float](v T) bool { return v != 0 && isInteger(v) }

func isHalfInteger[T Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && f-math.Floor(f) == 0.5
}

func atZero[T Float](v T) bool { return v == 0 }

func sign[T Float](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func ceil[T Float](v T) T      { return T(math.Ceil(float64(v))) }
func floor[T Float](v T) T     { return T(math.Floor(float64(v))) }
func trunc[T Float](v T) T     { return T(math.Trunc(float64(v))) }
func roundEven[T Float](v T) T { return T(math.RoundToEven(float64(v))) }
func roundAway[T Float](v T) T { return T(math.Round(float64(v))) }

func signStep[T Float]() step[T]      { return step[T]{sign[T], atZero[T]} }
func ceilStep[T Float]() step[T]      { return step[T]{ceil[T], isInteger[T]} }
func floorStep[T Float]() step[T]     { return step[T]{floor[T], isInteger[T]} }
func truncStep[T Float]() step[T]     { return step[T]{trunc[T], isNonzeroInteger[T]} }
func roundEvenStep[T Float]() step[T] { return step[T]{roundEven[T], isHalfInteger[T]} }
func roundAwayStep[T Float]() step[T] { return step[T]{roundAway[T], isHalfInteger[T]} }

// image returns the image of x under the non-decreasing step function s.
func (s step[T]) image(op string, x Interval[T]) Interval[T] {
	if !checkBare(op, x) || x.IsEmpty() {
		return Empty[T]()
	}
	return norm(s.f(x.Lo), s.f(x.Hi))
}

// decorated returns the decorated image of x under s: Def if the function
// jumps within x, Dac if x only touches a point of discontinuity.
func (s step[T]) decorated(op string, x Decorated[T]) Decorated[T] {
	if !checkDecorated(op, x) {
		return NaI[T]()
	}
	r := s.image(op, x.Bare)
	if x.Bare.IsEmpty() {
		return trivial(r)
	}
	d := decorate(r, true, r.Lo == r.Hi, x)
	if s.disc(x.Bare.Lo) || s.disc(x.Bare.Hi) {
		d.Dec = d.Dec.Meet(Dac)
	}
	return d
}

// Sign returns the image of x under the sign function.
func Sign[T Float](x Interval[T]) Interval[T] { return signStep[T]().image("Sign", x) }

// Ceil returns the image of x under ceil.
func Ceil[T Float](x Interval[T]) Interval[T] { return ceilStep[T]().image("Ceil", x) }

// Floor returns the image of x under floor.
func Floor[T Float](x Interval[T]) Interval[T] { return floorStep[T]().image("Floor", x) }

// Trunc returns the image of x under trunc.
func Trunc[T Float](x Interval[T]) Interval[T] { return truncStep[T]().image("Trunc", x) }

// RoundTiesToEven returns the image of x under rounding to the nearest
// integer, ties to even.
func RoundTiesToEven[T Float](x Interval[T]) Interval[T] {
	return roundEvenStep[T]().image("RoundTiesToEven", x)
}

// RoundTiesToAway returns the image of x under rounding to the nearest
// integer, ties away from zero.
func RoundTiesToAway[T Float](x Interval[T]) Interval[T] {
	return roundAwayStep[T]().image("RoundTiesToAway", x)
}

// Abs returns the image of x under |t|.
func Abs[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Abs", x) || x.IsEmpty() {
		return Empty[T]()
	}
	switch {
	case x.Lo >= 0:
		return norm(x.Lo, x.Hi)
	case x.Hi <= 0:
		return norm(-x.Hi, -x.Lo)
	}
	return norm(0, max(-x.Lo, x.Hi))
}

// Min returns the image of x × y under min.
func Min[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Min", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	return norm(min(x.Lo, y.Lo), min(x.Hi, y.Hi))
}

// Max returns the image of x × y under max.
func Max[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Max", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	return norm(max(x.Lo, y.Lo), max(x.Hi, y.Hi))
}

func (x Decorated[T]) Sign() Decorated[T]  { return signStep[T]().decorated("Sign", x) }
func (x Decorated[T]) Ceil() Decorated[T]  { return ceilStep[T]().decorated("Ceil", x) }
func (x Decorated[T]) Floor() Decorated[T] { return floorStep[T]().decorated("Floor", x) }
func (x Decorated[T]) Trunc() Decorated[T] { return truncStep[T]().decorated("Trunc", x) }

func (x Decorated[T]) RoundTiesToEven() Decorated[T] {
	return roundEvenStep[T]().decorated("RoundTiesToEven", x)
}

func (x Decorated[T]) RoundTiesToAway() Decorated[T] {
	return roundAwayStep[T]().decorated("RoundTiesToAway", x)
}

// Abs returns |x|.
func (x Decorated[T]) Abs() Decorated[T] {
	if !checkDecorated("Abs", x) {
		return NaI[T]()
	}
	return decorate(Abs(x.Bare), true, true, x)
}

// Min returns min(x, y).
func (x Decorated[T]) Min(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Min", x, y) {
		return NaI[T]()
	}
	return decorate(Min(x.Bare, y.Bare), true, true, x, y)
}

// Max returns max(x, y).
func (x Decorated[T]) Max(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Max", x, y) {
		return NaI[T]()
	}
	return decorate(Max(x.Bare, y.Bare), true, true, x, y)
}
