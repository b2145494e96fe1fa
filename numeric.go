// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math/big"

	"github.com/db47h/interval/round"
)

// Inf returns the lower bound of x, or +Inf if x is empty.
func Inf[T Float](x Interval[T]) T {
	switch {
	case !checkBare("Inf", x):
		return round.NaN[T]()
	case x.IsEmpty():
		return round.Inf[T](1)
	}
	return x.Lo
}

// Sup returns the upper bound of x, or -Inf if x is empty.
func Sup[T Float](x Interval[T]) T {
	switch {
	case !checkBare("Sup", x):
		return round.NaN[T]()
	case x.IsEmpty():
		return round.Inf[T](-1)
	}
	return x.Hi
}

// Mid returns the midpoint of x rounded to nearest. It is 0 for Entire, the
// largest finite value of the right sign for half-bounded intervals, and NaN
// for the empty interval.
func Mid[T Float](x Interval[T]) T {
	if !checkBare("Mid", x) || x.IsEmpty() {
		return round.NaN[T]()
	}
	return mid(x)
}

func mid[T Float](x Interval[T]) T {
	switch {
	case x.IsEntire():
		return 0
	case round.IsInf(x.Lo, -1):
		return -round.MaxFloat[T]()
	case round.IsInf(x.Hi, 1):
		return round.MaxFloat[T]()
	}
	s := new(big.Float).SetPrec(exactPrec).Add(round.ToBig(x.Lo), round.ToBig(x.Hi))
	s.SetMantExp(s, -1)
	return val(round.Narrow[T](s, round.Nearest))
}

// Rad returns the smallest r such that [Mid(x)-r, Mid(x)+r] contains x.
func Rad[T Float](x Interval[T]) T {
	if !checkBare("Rad", x) || x.IsEmpty() {
		return round.NaN[T]()
	}
	return rad(x, mid(x))
}

func rad[T Float](x Interval[T], m T) T {
	if !x.IsBounded() {
		return round.Inf[T](1)
	}
	return max(val(round.Sub(m, x.Lo, round.Up)), val(round.Sub(x.Hi, m, round.Up)))
}

// MidRad returns Mid(x) and Rad(x).
func MidRad[T Float](x Interval[T]) (m, r T) {
	if !checkBare("MidRad", x) || x.IsEmpty() {
		return round.NaN[T](), round.NaN[T]()
	}
	m = mid(x)
	return m, rad(x, m)
}

// Wid returns the width of x rounded up.
func Wid[T Float](x Interval[T]) T {
	if !checkBare("Wid", x) || x.IsEmpty() {
		return round.NaN[T]()
	}
	return val(round.Sub(x.Hi, x.Lo, round.Up))
}

// Mag returns the largest absolute value in x.
func Mag[T Float](x Interval[T]) T {
	if !checkBare("Mag", x) || x.IsEmpty() {
		return round.NaN[T]()
	}
	return max(-x.Lo, x.Hi)
}

// Mig returns the smallest absolute value in x.
func Mig[T Float](x Interval[T]) T {
	if !checkBare("Mig", x) || x.IsEmpty() {
		return round.NaN[T]()
	}
	switch {
	case x.Lo > 0:
		return x.Lo
	case x.Hi < 0:
		return -x.Hi
	}
	return 0
}

// numeric applies f to the bare part of x, or returns NaN if x is NaI.
func numeric[T Float](op string, x Decorated[T], f func(Interval[T]) T) T {
	if !checkDecorated(op, x) {
		return round.NaN[T]()
	}
	return f(x.Bare)
}

func (x Decorated[T]) Inf() T { return numeric("Inf", x, Inf[T]) }
func (x Decorated[T]) Sup() T { return numeric("Sup", x, Sup[T]) }
func (x Decorated[T]) Mid() T { return numeric("Mid", x, Mid[T]) }
func (x Decorated[T]) Rad() T { return numeric("Rad", x, Rad[T]) }
func (x Decorated[T]) Wid() T { return numeric("Wid", x, Wid[T]) }
func (x Decorated[T]) Mag() T { return numeric("Mag", x, Mag[T]) }
func (x Decorated[T]) Mig() T { return numeric("Mig", x, Mig[T]) }

// MidRad returns the midpoint and radius of x, or NaNs if x is NaI.
func (x Decorated[T]) MidRad() (m, r T) {
	if !checkDecorated("MidRad", x) {
		return round.NaN[T](), round.NaN[T]()
	}
	return MidRad(x.Bare)
}
