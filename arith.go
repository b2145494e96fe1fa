// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"github.com/db47h/interval/round"
)

// Neg returns -x.
func Neg[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Neg", x) || x.IsEmpty() {
		return Empty[T]()
	}
	return norm(-x.Hi, -x.Lo)
}

// Add returns x + y.
func Add[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Add", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	return norm(
		val(round.Add(x.Lo, y.Lo, round.Down)),
		val(round.Add(x.Hi, y.Hi, round.Up)),
	)
}

// Sub returns x - y.
func Sub[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Sub", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	return norm(
		val(round.Sub(x.Lo, y.Hi, round.Down)),
		val(round.Sub(x.Hi, y.Lo, round.Up)),
	)
}

type factors[T Float] struct {
	a, b T
}

// mulCases returns the pairs of bounds whose products give the lower and
// upper bounds of x×y. x and y must be non-empty and not [0, 0].
func mulCases[T Float](x, y Interval[T]) (lo, hi []factors[T]) {
	f := func(a, b T) factors[T] { return factors[T]{a, b} }
	switch {
	case x.Lo >= 0:
		switch {
		case y.Lo >= 0:
			return []factors[T]{f(x.Lo, y.Lo)}, []factors[T]{f(x.Hi, y.Hi)}
		case y.Hi <= 0:
			return []factors[T]{f(x.Hi, y.Lo)}, []factors[T]{f(x.Lo, y.Hi)}
		default:
			return []factors[T]{f(x.Hi, y.Lo)}, []factors[T]{f(x.Hi, y.Hi)}
		}
	case x.Hi <= 0:
		switch {
		case y.Lo >= 0:
			return []factors[T]{f(x.Lo, y.Hi)}, []factors[T]{f(x.Hi, y.Lo)}
		case y.Hi <= 0:
			return []factors[T]{f(x.Hi, y.Hi)}, []factors[T]{f(x.Lo, y.Lo)}
		default:
			return []factors[T]{f(x.Lo, y.Hi)}, []factors[T]{f(x.Lo, y.Lo)}
		}
	default:
		switch {
		case y.Lo >= 0:
			return []factors[T]{f(x.Lo, y.Hi)}, []factors[T]{f(x.Hi, y.Hi)}
		case y.Hi <= 0:
			return []factors[T]{f(x.Hi, y.Lo)}, []factors[T]{f(x.Lo, y.Lo)}
		default:
			return []factors[T]{f(x.Lo, y.Hi), f(x.Hi, y.Lo)},
				[]factors[T]{f(x.Lo, y.Lo), f(x.Hi, y.Hi)}
		}
	}
}

// mulBound returns a×b rounded in direction m, with 0×Inf = 0.
func mulBound[T Float](a, b T, m round.Mode) T {
	if a == 0 || b == 0 {
		return 0
	}
	return val(round.Mul(a, b, m))
}

// fmaBound returns a×b+c rounded in direction m, with 0×Inf = 0.
func fmaBound[T Float](a, b, c T, m round.Mode) T {
	if a == 0 || b == 0 {
		return c
	}
	return val(round.FMA(a, b, c, m))
}

func isZero[T Float](x Interval[T]) bool {
	return x.Lo == 0 && x.Hi == 0
}

// Mul returns x × y.
func Mul[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Mul", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	if isZero(x) || isZero(y) {
		return norm[T](0, 0)
	}
	lo, hi := mulCases(x, y)
	r := Interval[T]{mulBound(lo[0].a, lo[0].b, round.Down), mulBound(hi[0].a, hi[0].b, round.Up)}
	if len(lo) > 1 {
		r.Lo = min(r.Lo, mulBound(lo[1].a, lo[1].b, round.Down))
		r.Hi = max(r.Hi, mulBound(hi[1].a, hi[1].b, round.Up))
	}
	return norm(r.Lo, r.Hi)
}

// FMA returns x × y + z, computed with a single rounding per bound.
func FMA[T Float](x, y, z Interval[T]) Interval[T] {
	if !checkBare("FMA", x, y, z) || anyEmpty(x, y, z) {
		return Empty[T]()
	}
	if isZero(x) || isZero(y) {
		return z
	}
	lo, hi := mulCases(x, y)
	r := Interval[T]{fmaBound(lo[0].a, lo[0].b, z.Lo, round.Down), fmaBound(hi[0].a, hi[0].b, z.Hi, round.Up)}
	if len(lo) > 1 {
		r.Lo = min(r.Lo, fmaBound(lo[1].a, lo[1].b, z.Lo, round.Down))
		r.Hi = max(r.Hi, fmaBound(hi[1].a, hi[1].b, z.Hi, round.Up))
	}
	return norm(r.Lo, r.Hi)
}

func quoDown[T Float](a, b T) T { return val(round.Quo(a, b, round.Down)) }
func quoUp[T Float](a, b T) T   { return val(round.Quo(a, b, round.Up)) }

// Div returns x / y. A divisor containing zero in its interior yields Entire.
func Div[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Div", x, y) || anyEmpty(x, y) || isZero(y) {
		return Empty[T]()
	}
	r := div(x, y)
	return norm(r.Lo, r.Hi)
}

func div[T Float](x, y Interval[T]) Interval[T] {
	if isZero(x) {
		return Interval[T]{}
	}
	inf, ninf := round.Inf[T](1), round.Inf[T](-1)
	switch {
	case y.Lo > 0:
		switch {
		case x.Lo >= 0:
			return Interval[T]{quoDown(x.Lo, y.Hi), quoUp(x.Hi, y.Lo)}
		case x.Hi <= 0:
			return Interval[T]{quoDown(x.Lo, y.Lo), quoUp(x.Hi, y.Hi)}
		}
		return Interval[T]{quoDown(x.Lo, y.Lo), quoUp(x.Hi, y.Lo)}
	case y.Hi < 0:
		switch {
		case x.Lo >= 0:
			return Interval[T]{quoDown(x.Hi, y.Hi), quoUp(x.Lo, y.Lo)}
		case x.Hi <= 0:
			return Interval[T]{quoDown(x.Hi, y.Lo), quoUp(x.Lo, y.Hi)}
		}
		return Interval[T]{quoDown(x.Hi, y.Hi), quoUp(x.Lo, y.Hi)}
	case y.Lo == 0:
		// y = [0, hi], hi > 0
		switch {
		case x.Lo > 0:
			return Interval[T]{quoDown(x.Lo, y.Hi), inf}
		case x.Hi < 0:
			return Interval[T]{ninf, quoUp(x.Hi, y.Hi)}
		case x.Lo == 0:
			return Interval[T]{0, inf}
		case x.Hi == 0:
			return Interval[T]{ninf, 0}
		}
	case y.Hi == 0:
		// y = [lo, 0], lo < 0
		switch {
		case x.Lo > 0:
			return Interval[T]{ninf, quoUp(x.Lo, y.Lo)}
		case x.Hi < 0:
			return Interval[T]{quoDown(x.Hi, y.Lo), inf}
		case x.Lo == 0:
			return Interval[T]{ninf, 0}
		case x.Hi == 0:
			return Interval[T]{0, inf}
		}
	}
	return Entire[T]()
}

// Recip returns 1 / x.
func Recip[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Recip", x) {
		return Empty[T]()
	}
	return Div(Interval[T]{1, 1}, x)
}

// Sqr returns the image of x under t ↦ t².
func Sqr[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Sqr", x) || x.IsEmpty() {
		return Empty[T]()
	}
	switch {
	case x.Lo >= 0:
		return norm(mulBound(x.Lo, x.Lo, round.Down), mulBound(x.Hi, x.Hi, round.Up))
	case x.Hi <= 0:
		return norm(mulBound(x.Hi, x.Hi, round.Down), mulBound(x.Lo, x.Lo, round.Up))
	}
	return norm(0, max(mulBound(x.Lo, x.Lo, round.Up), mulBound(x.Hi, x.Hi, round.Up)))
}

// Sqrt returns the square root of x ∩ [0, +Inf].
func Sqrt[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Sqrt", x) || x.IsEmpty() || x.Hi < 0 {
		return Empty[T]()
	}
	return norm(val(round.Sqrt(max(x.Lo, 0), round.Down)), val(round.Sqrt(x.Hi, round.Up)))
}

// Neg returns -x.
func (x Decorated[T]) Neg() Decorated[T] {
	if !checkDecorated("Neg", x) {
		return NaI[T]()
	}
	return decorate(Neg(x.Bare), true, true, x)
}

// Add returns x + y.
func (x Decorated[T]) Add(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Add", x, y) {
		return NaI[T]()
	}
	return decorate(Add(x.Bare, y.Bare), true, true, x, y)
}

// Sub returns x - y.
func (x Decorated[T]) Sub(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Sub", x, y) {
		return NaI[T]()
	}
	return decorate(Sub(x.Bare, y.Bare), true, true, x, y)
}

// Mul returns x × y.
func (x Decorated[T]) Mul(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Mul", x, y) {
		return NaI[T]()
	}
	return decorate(Mul(x.Bare, y.Bare), true, true, x, y)
}

// FMA returns x × y + z.
func (x Decorated[T]) FMA(y, z Decorated[T]) Decorated[T] {
	if !checkDecorated("FMA", x, y, z) {
		return NaI[T]()
	}
	return decorate(FMA(x.Bare, y.Bare, z.Bare), true, true, x, y, z)
}

// Div returns x / y. The result is decorated with Trv if y contains zero.
func (x Decorated[T]) Div(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Div", x, y) {
		return NaI[T]()
	}
	return decorate(Div(x.Bare, y.Bare), !y.Bare.contains(0), true, x, y)
}

// Recip returns 1 / x.
func (x Decorated[T]) Recip() Decorated[T] {
	if !checkDecorated("Recip", x) {
		return NaI[T]()
	}
	return decorate(Recip(x.Bare), !x.Bare.contains(0), true, x)
}

// Sqr returns x².
func (x Decorated[T]) Sqr() Decorated[T] {
	if !checkDecorated("Sqr", x) {
		return NaI[T]()
	}
	return decorate(Sqr(x.Bare), true, true, x)
}

// Sqrt returns the square root of x.
func (x Decorated[T]) Sqrt() Decorated[T] {
	if !checkDecorated("Sqrt", x) {
		return NaI[T]()
	}
	return decorate(Sqrt(x.Bare), x.Bare.Lo >= 0, true, x)
}
