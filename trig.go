// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math/big"

	"github.com/db47h/interval/bigmath"
	"github.com/db47h/interval/round"
)

// exactPrec is large enough to hold the exact difference of any two float64
// values.
const exactPrec = 2200

// piPrec is the precision of the π bracket used for width comparisons.
const piPrec = 128

// bigPi returns π rounded to prec bits in direction mode.
func bigPi(prec uint, mode big.RoundingMode) *big.Float {
	return bigmath.Pi(new(big.Float).SetMode(mode).SetPrec(prec))
}

// width returns x.Hi - x.Lo, exactly. x must be bounded and non-empty.
func width[T Float](x Interval[T]) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Sub(round.ToBig(x.Hi), round.ToBig(x.Lo))
}

// cmpPiMultiple compares w with k×π. It returns -1 if w < kπ, +1 if w > kπ
// and 0 if the comparison could not be decided.
func cmpPiMultiple(w *big.Float, k int64) int {
	kb := new(big.Float).SetInt64(k)
	lo := bigPi(piPrec, big.ToNegativeInf)
	lo.SetMode(big.ToNegativeInf).Mul(lo, kb)
	hi := bigPi(piPrec, big.ToPositiveInf)
	hi.SetMode(big.ToPositiveInf).Mul(hi, kb)
	switch {
	case w.Cmp(lo) < 0:
		return -1
	case w.Cmp(hi) > 0:
		return 1
	}
	return 0
}

func piDown[T Float]() T { return val(round.Pi[T](round.Down)) }
func piUp[T Float]() T   { return val(round.Pi[T](round.Up)) }

func halfPiDown[T Float]() T { return piDown[T]() / 2 }
func halfPiUp[T Float]() T   { return piUp[T]() / 2 }

// oscillating returns the image of x under sin or cos, given the function f,
// and reports through inc whether f is increasing at a bound of x.
func oscillating[T Float](x Interval[T], f roundFunc[T], inc func(v T) bool) Interval[T] {
	full := Interval[T]{-1, 1}
	if !x.IsBounded() {
		return full
	}
	w := width(x)
	if cmpPiMultiple(w, 2) >= 0 {
		return full
	}
	lessThanPi := cmpPiMultiple(w, 1) < 0
	incLo, incHi := inc(x.Lo), inc(x.Hi)
	switch {
	case incLo && incHi:
		if lessThanPi {
			return increasing(x, f)
		}
		return full
	case !incLo && !incHi:
		if lessThanPi {
			return decreasing(x, f)
		}
		return full
	case incLo:
		// maximum inside
		return norm(min(val(f(x.Lo, round.Down)), val(f(x.Hi, round.Down))), 1)
	}
	// minimum inside
	return norm(-1, max(val(f(x.Lo, round.Up)), val(f(x.Hi, round.Up))))
}

// Sin returns the image of x under sin.
func Sin[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Sin", x) || x.IsEmpty() {
		return Empty[T]()
	}
	return oscillating(x, round.Sin[T], func(v T) bool {
		return val(round.Cos(v, round.Nearest)) > 0
	})
}

// Cos returns the image of x under cos.
func Cos[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Cos", x) || x.IsEmpty() {
		return Empty[T]()
	}
	return oscillating(x, round.Cos[T], func(v T) bool {
		s := val(round.Sin(v, round.Nearest))
		// cos has a maximum at 0: increasing on its left, decreasing on its
		// right.
		return s < 0 || s == 0 && v == x.Hi && v != x.Lo
	})
}

// tanBranch returns ⌊x/π + 1/2⌋, the index of the branch of tan containing
// x. x must be finite.
func tanBranch[T Float](x T) *big.Int {
	b := round.ToBig(x)
	p := uint(256)
	if e := b.MantExp(nil); e > 0 {
		p += uint(e)
	}
	q := new(big.Float).SetPrec(p).Quo(b, bigPi(p, big.ToNearestEven))
	q.Add(q, big.NewFloat(0.5))
	i, acc := q.Int(nil)
	if q.Sign() < 0 && acc != big.Exact {
		i.Sub(i, big.NewInt(1))
	}
	return i
}

// Tan returns the image of x under tan. The result is Entire if x contains
// a pole of tan.
func Tan[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Tan", x) || x.IsEmpty() {
		return Empty[T]()
	}
	if !x.IsBounded() || cmpPiMultiple(width(x), 1) >= 0 {
		return Entire[T]()
	}
	if tanBranch(x.Lo).Cmp(tanBranch(x.Hi)) != 0 {
		return Entire[T]()
	}
	r := increasing(x, round.Tan[T])
	if r.Lo > r.Hi {
		return Entire[T]()
	}
	return r
}

// Asin returns the image of x ∩ [-1, 1] under asin.
func Asin[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Asin", x) || x.IsEmpty() || x.Hi < -1 || x.Lo > 1 {
		return Empty[T]()
	}
	return increasing(Interval[T]{max(x.Lo, -1), min(x.Hi, 1)}, round.Asin[T])
}

// Acos returns the image of x ∩ [-1, 1] under acos.
func Acos[T Float](x Interval[T]) Interval[T] {
	if !checkBare("Acos", x) || x.IsEmpty() || x.Hi < -1 || x.Lo > 1 {
		return Empty[T]()
	}
	return decreasing(Interval[T]{max(x.Lo, -1), min(x.Hi, 1)}, round.Acos[T])
}

// Atan returns the image of x under atan.
func Atan[T Float](x Interval[T]) Interval[T] {
	return unaryIncreasing("Atan", x, round.Atan[T])
}

// opposite returns the directed rounding mode opposite to m.
func opposite(m round.Mode) round.Mode {
	if m == round.Down {
		return round.Up
	}
	return round.Down
}

// atan2Upper returns atan2(y, x) rounded in direction m, for y >= 0.
func atan2Upper[T Float](y, x T, m round.Mode) T {
	return val(round.Atan2(y, x, m))
}

// atan2Lower returns atan2(y, x) rounded in direction m, for y <= 0, a zero
// y being the limit from below.
func atan2Lower[T Float](y, x T, m round.Mode) T {
	if y == 0 {
		switch {
		case x > 0:
			return 0
		case x < 0:
			return -val(round.Pi[T](opposite(m)))
		}
		return -val(round.Pi[T](opposite(m))) / 2
	}
	return val(round.Atan2(y, x, m))
}

// Atan2 returns the image of the box y × x, minus the origin, under the
// two-argument arc tangent, with values in [-π, π].
func Atan2[T Float](y, x Interval[T]) Interval[T] {
	if !checkBare("Atan2", y, x) || anyEmpty(y, x) || isZero(y) && isZero(x) {
		return Empty[T]()
	}
	r := Interval[T]{round.Inf[T](1), round.Inf[T](-1)}
	hull := func(lo, hi T) {
		r.Lo = min(r.Lo, lo)
		r.Hi = max(r.Hi, hi)
	}

	// upper half plane, y >= 0
	if y.Hi >= 0 {
		ya, yb := max(y.Lo, 0), y.Hi
		xa, xb := x.Lo, x.Hi
		if !(yb == 0 && xa == 0 && xb == 0) {
			var lo, hi T
			switch {
			case xb > 0:
				lo = atan2Upper(ya, xb, round.Down)
			case xb < 0:
				lo = atan2Upper(yb, xb, round.Down)
			case yb > 0:
				lo = halfPiDown[T]()
			default:
				lo = atan2Upper(0, xa, round.Down)
			}
			switch {
			case xa < 0:
				hi = atan2Upper(ya, xa, round.Up)
			case xa > 0:
				hi = atan2Upper(yb, xa, round.Up)
			case yb > 0:
				hi = halfPiUp[T]()
			default:
				hi = atan2Upper(0, xb, round.Up)
			}
			hull(lo, hi)
		}
	}

	// lower half plane, y < 0
	if y.Lo < 0 {
		ya, yb := y.Lo, min(y.Hi, 0)
		xa, xb := x.Lo, x.Hi
		var lo, hi T
		if xa < 0 {
			lo = atan2Lower(yb, xa, round.Down)
		} else {
			lo = atan2Lower(ya, xa, round.Down)
		}
		if xb > 0 {
			hi = atan2Lower(yb, xb, round.Up)
		} else {
			hi = atan2Lower(ya, xb, round.Up)
		}
		hull(lo, hi)
	}
	return norm(r.Lo, r.Hi)
}

// Sin returns sin(x).
func (x Decorated[T]) Sin() Decorated[T] {
	if !checkDecorated("Sin", x) {
		return NaI[T]()
	}
	return decorate(Sin(x.Bare), true, true, x)
}

// Cos returns cos(x).
func (x Decorated[T]) Cos() Decorated[T] {
	if !checkDecorated("Cos", x) {
		return NaI[T]()
	}
	return decorate(Cos(x.Bare), true, true, x)
}

// Tan returns tan(x). The result is decorated with Trv if x contains a pole
// of tan.
func (x Decorated[T]) Tan() Decorated[T] {
	if !checkDecorated("Tan", x) {
		return NaI[T]()
	}
	r := Tan(x.Bare)
	return decorate(r, !r.IsEntire(), true, x)
}

// Asin returns asin(x).
func (x Decorated[T]) Asin() Decorated[T] {
	if !checkDecorated("Asin", x) {
		return NaI[T]()
	}
	return decorate(Asin(x.Bare), x.Bare.Lo >= -1 && x.Bare.Hi <= 1, true, x)
}

// Acos returns acos(x).
func (x Decorated[T]) Acos() Decorated[T] {
	if !checkDecorated("Acos", x) {
		return NaI[T]()
	}
	return decorate(Acos(x.Bare), x.Bare.Lo >= -1 && x.Bare.Hi <= 1, true, x)
}

// Atan returns atan(x).
func (x Decorated[T]) Atan() Decorated[T] {
	if !checkDecorated("Atan", x) {
		return NaI[T]()
	}
	return decorate(Atan(x.Bare), true, true, x)
}

// Atan2 returns atan2(y, x) where y is the receiver. The result is decorated
// with Trv if the box contains the origin, and with Def if it crosses the
// branch cut along the negative x axis.
func (y Decorated[T]) Atan2(x Decorated[T]) Decorated[T] {
	if !checkDecorated("Atan2", y, x) {
		return NaI[T]()
	}
	origin := y.Bare.contains(0) && x.Bare.contains(0)
	cut := x.Bare.Lo < 0 && y.Bare.Lo < 0 && y.Bare.Hi >= 0
	return decorate(Atan2(y.Bare, x.Bare), !origin, !cut, y, x)
}
