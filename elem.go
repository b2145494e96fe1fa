// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"github.com/db47h/interval/round"
)

type roundFunc[T Float] func(x T, m round.Mode) (T, round.Accuracy)

// increasing returns the image of x under the non-decreasing function f.
func increasing[T Float](x Interval[T], f roundFunc[T]) Interval[T] {
	return norm(val(f(x.Lo, round.Down)), val(f(x.Hi, round.Up)))
}

// decreasing returns the image of x under the non-increasing function f.
func decreasing[T Float](x Interval[T], f roundFunc[T]) Interval[T] {
	return norm(val(f(x.Hi, round.Down)), val(f(x.Lo, round.Up)))
}

func unaryIncreasing[T Float](op string, x Interval[T], f roundFunc[T]) Interval[T] {
	if !checkBare(op, x) || x.IsEmpty() {
		return Empty[T]()
	}
	return increasing(x, f)
}

// Exp returns the image of x under e**t.
func Exp[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Exp", x, round.Exp[T])
}

// Exp2 returns the image of x under 2**t.
func Exp2[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Exp2", x, round.Exp2[T])
}

// Exp10 returns the image of x under 10**t.
func Exp10[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Exp10", x, round.Exp10[T])
}

// logarithm returns the image of x ∩ [0, +Inf] under the logarithm f.
func logarithm[T Float](op string, x Interval[T], f roundFunc[T]) Interval[T] {
	if !checkBare(op, x) || x.IsEmpty() || x.Hi <= 0 {
		return Empty[T]()
	}
	return increasing(Interval[T]{max(x.Lo, 0), x.Hi}, f)
}

// Log returns the image of x under the natural logarithm.
func Log[T Float](x Interval[T]) Interval[T] {
	return logarithm("Log", x, round.Log[T])
}

// Log2 returns the image of x under the base 2 logarithm.
func Log2[T Float](x Interval[T]) Interval[T] {
	return logarithm("Log2", x, round.Log2[T])
}

// Log10 returns the image of x under the decimal logarithm.
func Log10[T Float](x Interval[T]) Interval[T] {
	return logarithm("Log10", x, round.Log10[T])
}

// Pown returns the image of x under t ↦ tⁿ. Pown(x, 0) = [1, 1] for a
// non-empty x; for n < 0, zero is excluded from x.
func Pown[T Float](x Interval[T], n int64) Interval[T] {
	if !checkBare("Pown", x) || x.IsEmpty() {
		return Empty[T]()
	}
	pown := func(v T, m round.Mode) (T, round.Accuracy) { return round.Pown(v, n, m) }
	inf, ninf := round.Inf[T](1), round.Inf[T](-1)
	even := n%2 == 0
	switch {
	case n == 0:
		return Interval[T]{1, 1}
	case n > 0 && !even:
		return increasing(x, pown)
	case n > 0:
		switch {
		case x.Lo >= 0:
			return increasing(x, pown)
		case x.Hi <= 0:
			return decreasing(x, pown)
		}
		return norm(0, max(val(pown(x.Lo, round.Up)), val(pown(x.Hi, round.Up))))
	case isZero(x):
		return Empty[T]()
	case even:
		switch {
		case x.Lo >= 0:
			r := decreasing(x, pown)
			if x.Lo == 0 {
				r.Hi = inf
			}
			return r
		case x.Hi <= 0:
			r := increasing(x, pown)
			if x.Hi == 0 {
				r.Hi = inf
			}
			return r
		}
		return norm(min(val(pown(x.Lo, round.Down)), val(pown(x.Hi, round.Down))), inf)
	default:
		switch {
		case x.Lo >= 0:
			r := decreasing(x, pown)
			if x.Lo == 0 {
				r.Hi = inf
			}
			return r
		case x.Hi <= 0:
			r := decreasing(x, pown)
			if x.Hi == 0 {
				r.Lo = ninf
			}
			return r
		}
		return Entire[T]()
	}
}

// Rootn returns the image of x under the real n-th root. For even n, x is
// clipped to [0, +Inf]; for n < 0, zero is excluded from x. Rootn(x, 0) is
// empty.
func Rootn[T Float](x Interval[T], n int64) Interval[T] {
	if !checkBare("Rootn", x) || x.IsEmpty() || n == 0 {
		return Empty[T]()
	}
	rootn := func(v T, m round.Mode) (T, round.Accuracy) { return round.Rootn(v, n, m) }
	inf, ninf := round.Inf[T](1), round.Inf[T](-1)
	even := n%2 == 0
	switch {
	case n > 0 && !even:
		return increasing(x, rootn)
	case n > 0:
		if x.Hi < 0 {
			return Empty[T]()
		}
		return increasing(Interval[T]{max(x.Lo, 0), x.Hi}, rootn)
	case even:
		if x.Hi <= 0 {
			return Empty[T]()
		}
		r := decreasing(Interval[T]{max(x.Lo, 0), x.Hi}, rootn)
		if x.Lo <= 0 {
			r.Hi = inf
		}
		return r
	case isZero(x):
		return Empty[T]()
	case x.Lo >= 0:
		r := decreasing(x, rootn)
		if x.Lo == 0 {
			r.Hi = inf
		}
		return r
	case x.Hi <= 0:
		r := decreasing(x, rootn)
		if x.Hi == 0 {
			r.Lo = ninf
		}
		return r
	}
	return Entire[T]()
}

// Pow returns the image of the box x × y under (s, t) ↦ sᵗ, defined for s > 0
// and for s = 0 with t > 0. x is clipped to [0, +Inf].
func Pow[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Pow", x, y) || anyEmpty(x, y) || x.Hi < 0 {
		return Empty[T]()
	}
	xp := Interval[T]{max(x.Lo, 0), x.Hi}
	switch {
	case isZero(y):
		if xp.Hi > 0 {
			return Interval[T]{1, 1}
		}
		return Empty[T]()
	case isZero(xp):
		if y.Hi > 0 {
			return norm[T](0, 0)
		}
		return Empty[T]()
	}

	// x**y is monotone in each argument: the extrema lie at the corners.
	r := Interval[T]{round.Inf[T](1), round.Inf[T](-1)}
	for _, s := range [2]T{xp.Lo, xp.Hi} {
		for _, t := range [2]T{y.Lo, y.Hi} {
			r.Lo = min(r.Lo, val(round.Pow(s, t, round.Down)))
			r.Hi = max(r.Hi, val(round.Pow(s, t, round.Up)))
		}
	}
	return norm(r.Lo, r.Hi)
}

// Exp returns e**x.
func (x Decorated[T]) Exp() Decorated[T] {
	if !checkDecorated("Exp", x) {
		return NaI[T]()
	}
	return decorate(Exp(x.Bare), true, true, x)
}

// Exp2 returns 2**x.
func (x Decorated[T]) Exp2() Decorated[T] {
	if !checkDecorated("Exp2", x) {
		return NaI[T]()
	}
	return decorate(Exp2(x.Bare), true, true, x)
}

// Exp10 returns 10**x.
func (x Decorated[T]) Exp10() Decorated[T] {
	if !checkDecorated("Exp10", x) {
		return NaI[T]()
	}
	return decorate(Exp10(x.Bare), true, true, x)
}

// Log returns the natural logarithm of x.
func (x Decorated[T]) Log() Decorated[T] {
	if !checkDecorated("Log", x) {
		return NaI[T]()
	}
	return decorate(Log(x.Bare), x.Bare.Lo > 0, true, x)
}

// Log2 returns the base 2 logarithm of x.
func (x Decorated[T]) Log2() Decorated[T] {
	if !checkDecorated("Log2", x) {
		return NaI[T]()
	}
	return decorate(Log2(x.Bare), x.Bare.Lo > 0, true, x)
}

// Log10 returns the decimal logarithm of x.
func (x Decorated[T]) Log10() Decorated[T] {
	if !checkDecorated("Log10", x) {
		return NaI[T]()
	}
	return decorate(Log10(x.Bare), x.Bare.Lo > 0, true, x)
}

// Pown returns xⁿ.
func (x Decorated[T]) Pown(n int64) Decorated[T] {
	if !checkDecorated("Pown", x) {
		return NaI[T]()
	}
	return decorate(Pown(x.Bare, n), n >= 0 || !x.Bare.contains(0), true, x)
}

// Rootn returns the n-th root of x.
func (x Decorated[T]) Rootn(n int64) Decorated[T] {
	if !checkDecorated("Rootn", x) {
		return NaI[T]()
	}
	var ok bool
	switch even := n%2 == 0; {
	case n == 0:
		ok = false
	case n > 0 && even:
		ok = x.Bare.Lo >= 0
	case n > 0:
		ok = true
	case even:
		ok = x.Bare.Lo > 0
	default:
		ok = !x.Bare.contains(0)
	}
	return decorate(Rootn(x.Bare, n), ok, true, x)
}

// Pow returns x**y.
func (x Decorated[T]) Pow(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Pow", x, y) {
		return NaI[T]()
	}
	ok := x.Bare.Lo > 0 || x.Bare.Lo >= 0 && y.Bare.Lo > 0
	return decorate(Pow(x.Bare, y.Bare), ok, true, x, y)
}
