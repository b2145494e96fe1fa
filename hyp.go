// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "github.com/db47h/interval/round"

// Sinh returns the image of x under sinh.
func Sinh[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Sinh", x, round.Sinh[T])
}

// Cosh returns the image of x under cosh.
func Cosh[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Cosh", x) || x.IsEmpty() {
		return Empty[T]()
	}
	switch {
	case x.Lo >= 0:
		return increasing(x, round.Cosh[T])
	case x.Hi <= 0:
		return decreasing(x, round.Cosh[T])
	}
	return Interval[T]{1, max(val(round.Cosh(x.Lo, round.Up)), val(round.Cosh(x.Hi, round.Up)))}
}

// Tanh returns the image of x under tanh.
func Tanh[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Tanh", x, round.Tanh[T])
}

// Asinh returns the image of x under asinh.
func Asinh[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Asinh", x, round.Asinh[T])
}

// Acosh returns the image of x ∩ [1, +∞] under acosh.
func Acosh[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Acosh", x) || x.IsEmpty() || x.Hi < 1 {
		return Empty[T]()
	}
	return increasing(Interval[T]{max(x.Lo, 1), x.Hi}, round.Acosh[T])
}

// Atanh returns the image of x ∩ (-1, 1) under atanh.
func Atanh[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Atanh", x) || x.IsEmpty() || x.Hi <= -1 || x.Lo >= 1 {
		return Empty[T]()
	}
	return increasing(Interval[T]{max(x.Lo, -1), min(x.Hi, 1)}, round.Atanh[T])
}

// Sinh returns sinh(x).
func (x Decorated[T]) Sinh() Decorated[T] {
	if !checkDecorated("Sinh", x) {
		return NaI[T]()
	}
	return decorate(Sinh(x.Bare), true, true, x)
}

// Cosh returns cosh(x).
func (x Decorated[T]) Cosh() Decorated[T] {
	if !checkDecorated("Cosh", x) {
		return NaI[T]()
	}
	return decorate(Cosh(x.Bare), true, true, x)
}

// Tanh returns tanh(x).
func (x Decorated[T]) Tanh() Decorated[T] {
	if !checkDecorated("Tanh", x) {
		return NaI[T]()
	}
	return decorate(Tanh(x.Bare), true, true, x)
}

// Asinh returns asinh(x).
func (x Decorated[T]) Asinh() Decorated[T] {
	if !checkDecorated("Asinh", x) {
		return NaI[T]()
	}
	return decorate(Asinh(x.Bare), true, true, x)
}

// Acosh returns acosh(x).
func (x Decorated[T]) Acosh() Decorated[T] {
	if !checkDecorated("Acosh", x) {
		return NaI[T]()
	}
	return decorate(Acosh(x.Bare), x.Bare.Lo >= 1, true, x)
}

// Atanh returns atanh(x).
func (x Decorated[T]) Atanh() Decorated[T] {
	if !checkDecorated("Atanh", x) {
		return NaI[T]()
	}
	return decorate(Atanh(x.Bare), x.Bare.Lo > -1 && x.Bare.Hi < 1, true, x)
}
