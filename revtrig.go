// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math/big"

	"github.com/db47h/interval/round"
)

// A periodic pre-image is the union over all integers n of the branches
// k×π + s×p, where p is the principal pre-image and (k, s) = at(n). Branches
// are sorted by n and branch n lies within [(n-1)π, (n+2)π].
type periodic[T Float] struct {
	p    Interval[T]
	at   func(n *big.Int) (k *big.Int, neg bool)
	prec uint
	pi   [2]*big.Float // π rounded down and up
}

func newPeriodic[T Float](p, x Interval[T], at func(n *big.Int) (*big.Int, bool)) *periodic[T] {
	prec := uint(128)
	for _, v := range []T{x.Lo, x.Hi} {
		if round.IsFinite(v) && v != 0 {
			if e := round.ToBig(v).MantExp(nil); e > 0 {
				prec = max(prec, uint(e)+128)
			}
		}
	}
	return &periodic[T]{
		p:    p,
		at:   at,
		prec: prec,
		pi:   [2]*big.Float{bigPi(prec, big.ToNegativeInf), bigPi(prec, big.ToPositiveInf)},
	}
}

// index returns ⌊v/π⌋ for finite v, approximately.
func (r *periodic[T]) index(v T) *big.Int {
	q := new(big.Float).SetPrec(r.prec).Quo(round.ToBig(v), r.pi[0])
	i, acc := q.Int(nil)
	if q.Sign() < 0 && acc != big.Exact {
		i.Sub(i, big.NewInt(1))
	}
	return i
}

// bound returns k×π + v rounded in direction m.
func (r *periodic[T]) bound(k *big.Int, v T, m round.Mode) *big.Float {
	mode := big.ToNegativeInf
	if m == round.Up {
		mode = big.ToPositiveInf
	}
	pi := r.pi[0]
	if (k.Sign() < 0) == (m == round.Down) {
		pi = r.pi[1]
	}
	z := new(big.Float).SetPrec(r.prec).SetMode(mode).SetInt(k)
	z.Mul(z, pi)
	return z.Add(z, round.ToBig(v))
}

// branch returns an outward enclosure of branch n.
func (r *periodic[T]) branch(n *big.Int) (lo, hi *big.Float) {
	k, neg := r.at(n)
	p := r.p
	if neg {
		p = Interval[T]{-p.Hi, -p.Lo}
	}
	return r.bound(k, p.Lo, round.Down), r.bound(k, p.Hi, round.Up)
}

// within returns an enclosure of the pre-image restricted to x, the hull of
// the first branch met from x.Lo upward and the last branch met from x.Hi
// downward.
func (r *periodic[T]) within(x Interval[T]) Interval[T] {
	lo, hi := x.Lo, x.Hi
	if round.IsFinite(lo) {
		n0 := r.index(lo)
		bx := round.ToBig(lo)
		for i := int64(-1); i <= 2; i++ {
			bl, bh := r.branch(new(big.Int).Add(n0, big.NewInt(i)))
			if bh.Cmp(bx) >= 0 {
				lo = max(lo, val(round.Narrow[T](bl, round.Down)))
				break
			}
		}
	}
	if round.IsFinite(hi) {
		n0 := r.index(hi)
		bx := round.ToBig(hi)
		for i := int64(2); i >= -1; i-- {
			bl, bh := r.branch(new(big.Int).Add(n0, big.NewInt(i)))
			if bl.Cmp(bx) <= 0 {
				hi = min(hi, val(round.Narrow[T](bh, round.Up)))
				break
			}
		}
	}
	if lo > hi {
		return Empty[T]()
	}
	return norm(lo, hi)
}

var bigOne = big.NewInt(1)

func isOdd(n *big.Int) bool { return n.Bit(0) == 1 }

// SinRev returns an enclosure of {t ∈ x : sin(t) ∈ c}.
func SinRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("SinRev", c, x) || anyEmpty(c, x) || c.Hi < -1 || c.Lo > 1 {
		return Empty[T]()
	}
	if c.Lo <= -1 && c.Hi >= 1 {
		return x
	}
	p := increasing(Interval[T]{max(c.Lo, -1), min(c.Hi, 1)}, round.Asin[T])
	// branch n is nπ + (-1)ⁿ asin(c)
	return newPeriodic(p, x, func(n *big.Int) (*big.Int, bool) {
		return n, isOdd(n)
	}).within(x)
}

// CosRev returns an enclosure of {t ∈ x : cos(t) ∈ c}.
func CosRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("CosRev", c, x) || anyEmpty(c, x) || c.Hi < -1 || c.Lo > 1 {
		return Empty[T]()
	}
	if c.Lo <= -1 && c.Hi >= 1 {
		return x
	}
	p := decreasing(Interval[T]{max(c.Lo, -1), min(c.Hi, 1)}, round.Acos[T])
	// branch n is nπ + acos(c) for even n, (n+1)π - acos(c) for odd n
	return newPeriodic(p, x, func(n *big.Int) (*big.Int, bool) {
		if isOdd(n) {
			return new(big.Int).Add(n, bigOne), true
		}
		return n, false
	}).within(x)
}

// TanRev returns an enclosure of {t ∈ x : tan(t) ∈ c}.
func TanRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("TanRev", c, x) || anyEmpty(c, x) {
		return Empty[T]()
	}
	if c.IsEntire() {
		return x
	}
	p := increasing(c, round.Atan[T])
	// branch n is nπ + atan(c)
	return newPeriodic(p, x, func(n *big.Int) (*big.Int, bool) {
		return n, false
	}).within(x)
}

// SinRev returns SinRev(c, x) where c is the receiver.
func (c Decorated[T]) SinRev(x Decorated[T]) Decorated[T] {
	return reverse("SinRev", func() Interval[T] { return SinRev(c.Bare, x.Bare) }, c, x)
}

// CosRev returns CosRev(c, x) where c is the receiver.
func (c Decorated[T]) CosRev(x Decorated[T]) Decorated[T] {
	return reverse("CosRev", func() Interval[T] { return CosRev(c.Bare, x.Bare) }, c, x)
}

// TanRev returns TanRev(c, x) where c is the receiver.
func (c Decorated[T]) TanRev(x Decorated[T]) Decorated[T] {
	return reverse("TanRev", func() Interval[T] { return TanRev(c.Bare, x.Bare) }, c, x)
}
