// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "github.com/db47h/interval/round"

// A branch is an enclosure of one connected part of a pre-image, together
// with the rounding error of each bound.
type branch[T Float] struct {
	Interval[T]
	loAcc, hiAcc round.Accuracy
}

func exactBranch[T Float](x Interval[T]) branch[T] {
	return branch[T]{Interval: x}
}

// reflect returns -b.
func (b branch[T]) reflect() branch[T] {
	return branch[T]{Interval[T]{-b.Hi, -b.Lo}, -b.hiAcc, -b.loAcc}
}

// meet returns b ∩ x. If x only touches b at a bound that was rounded
// outward, the true pre-image lies strictly beyond x and the result is
// empty.
func (b branch[T]) meet(x Interval[T]) Interval[T] {
	if b.IsEmpty() {
		return b.Interval
	}
	r := Intersection(b.Interval, x)
	if r.IsEmpty() || r.Lo != r.Hi {
		return r
	}
	if r.Hi == b.Lo && b.loAcc == round.Below || r.Lo == b.Hi && b.hiAcc == round.Above {
		return Empty[T]()
	}
	return r
}

// symmetric returns the hull of (p ∩ x) and (-p ∩ x).
func symmetric[T Float](p branch[T], x Interval[T]) Interval[T] {
	return ConvexHull(p.meet(x), p.reflect().meet(x))
}

// increasingBranch returns [f(lo)↓, f(hi)↑] with the accuracies of both
// bounds.
func increasingBranch[T Float](lo, hi T, f roundFunc[T]) branch[T] {
	l, la := f(lo, round.Down)
	h, ha := f(hi, round.Up)
	return branch[T]{Interval[T]{l, h}, la, ha}
}

// SqrRev returns an enclosure of {t ∈ x : t² ∈ c}.
func SqrRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("SqrRev", c, x) || anyEmpty(c, x) || c.Hi < 0 {
		return Empty[T]()
	}
	return symmetric(increasingBranch(max(c.Lo, 0), c.Hi, round.Sqrt[T]), x)
}

// AbsRev returns an enclosure of {t ∈ x : |t| ∈ c}.
func AbsRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("AbsRev", c, x) || anyEmpty(c, x) || c.Hi < 0 {
		return Empty[T]()
	}
	return symmetric(exactBranch(Interval[T]{max(c.Lo, 0), c.Hi}), x)
}

// CoshRev returns an enclosure of {t ∈ x : cosh(t) ∈ c}.
func CoshRev[T Float](c, x Interval[T]) Interval[T] {
	if !checkBare("CoshRev", c, x) || anyEmpty(c, x) || c.Hi < 1 {
		return Empty[T]()
	}
	return symmetric(increasingBranch(max(c.Lo, 1), c.Hi, round.Acosh[T]), x)
}

// PownRev returns an enclosure of {t ∈ x : tⁿ ∈ c}.
func PownRev[T Float](c, x Interval[T], n int64) Interval[T] {
	if !checkBare("PownRev", c, x) || anyEmpty(c, x) {
		return Empty[T]()
	}
	root := func(v T, m round.Mode) (T, round.Accuracy) { return round.Rootn(v, n, m) }
	inf := round.Inf[T](1)
	switch {
	case n == 0:
		if c.contains(1) {
			return x
		}
		return Empty[T]()
	case n > 0 && n%2 == 0:
		if c.Hi < 0 {
			return Empty[T]()
		}
		return symmetric(increasingBranch(max(c.Lo, 0), c.Hi, root), x)
	case n > 0:
		return increasingBranch(c.Lo, c.Hi, root).meet(x)
	case n%2 == 0:
		if c.Hi <= 0 {
			return Empty[T]()
		}
		p := decreasingBranch(c.Hi, c.Lo, root)
		if c.Lo <= 0 {
			p.Hi, p.hiAcc = inf, round.Exact
		}
		return symmetric(p, x)
	}
	// negative odd n: t and tⁿ share their sign
	r := Empty[T]()
	if c.Hi > 0 {
		p := decreasingBranch(c.Hi, c.Lo, root)
		if c.Lo <= 0 {
			p.Hi, p.hiAcc = inf, round.Exact
		}
		r = p.meet(x)
	}
	if c.Lo < 0 {
		q := decreasingBranch(c.Hi, c.Lo, root)
		if c.Hi >= 0 {
			q.Lo, q.loAcc = -inf, round.Exact
		}
		r = ConvexHull(r, q.meet(x))
	}
	return r
}

// decreasingBranch returns [f(hi)↓, f(lo)↑] with the accuracies of both
// bounds.
func decreasingBranch[T Float](hi, lo T, f roundFunc[T]) branch[T] {
	l, la := f(hi, round.Down)
	h, ha := f(lo, round.Up)
	return branch[T]{Interval[T]{l, h}, la, ha}
}

// MulRevToPair returns an enclosure of {t : t×β = γ for some β ∈ b, γ ∈ c}
// as two disjoint intervals, the first one below the second. The second
// interval is empty unless b contains zero in its interior.
func MulRevToPair[T Float](b, c Interval[T]) (Interval[T], Interval[T]) {
	empty := Empty[T]()
	if !checkBare("MulRevToPair", b, c) || anyEmpty(b, c) {
		return empty, empty
	}
	return mulRevToPair(b, c)
}

func mulRevToPair[T Float](b, c Interval[T]) (Interval[T], Interval[T]) {
	empty := Empty[T]()
	inf := round.Inf[T](1)
	switch {
	case !b.contains(0):
		return Div(c, b), empty
	case c.contains(0):
		return Entire[T](), empty
	case isZero(b):
		return empty, empty
	case c.Hi < 0:
		switch {
		case b.Lo == 0:
			return norm(-inf, quoUp(c.Hi, b.Hi)), empty
		case b.Hi == 0:
			return norm(quoDown(c.Hi, b.Lo), inf), empty
		}
		return norm(-inf, quoUp(c.Hi, b.Hi)), norm(quoDown(c.Hi, b.Lo), inf)
	}
	switch {
	case b.Lo == 0:
		return norm(quoDown(c.Lo, b.Hi), inf), empty
	case b.Hi == 0:
		return norm(-inf, quoUp(c.Lo, b.Lo)), empty
	}
	return norm(-inf, quoUp(c.Lo, b.Lo)), norm(quoDown(c.Lo, b.Hi), inf)
}

// MulRev returns an enclosure of {t ∈ x : t×β = γ for some β ∈ b, γ ∈ c}.
func MulRev[T Float](b, c, x Interval[T]) Interval[T] {
	if !checkBare("MulRev", b, c, x) || anyEmpty(b, c, x) {
		return Empty[T]()
	}
	p, q := mulRevToPair(b, c)
	return ConvexHull(Intersection(p, x), Intersection(q, x))
}

// DivRev1 returns an enclosure of {t ∈ x : t/β = γ for some β ∈ b, γ ∈ c}.
func DivRev1[T Float](b, c, x Interval[T]) Interval[T] {
	if !checkBare("DivRev1", b, c, x) || anyEmpty(b, c, x) {
		return Empty[T]()
	}
	return Intersection(Mul(b, c), x)
}

// DivRev2 returns an enclosure of {t ∈ x : α/t = γ for some α ∈ a, γ ∈ c}.
func DivRev2[T Float](a, c, x Interval[T]) Interval[T] {
	if !checkBare("DivRev2", a, c, x) || anyEmpty(a, c, x) {
		return Empty[T]()
	}
	p, q := mulRevToPair(c, a)
	return ConvexHull(Intersection(p, x), Intersection(q, x))
}

// reverse wraps the bare result r of a reverse function of decorated
// operands: NaI if any is NaI, else r decorated with Trv.
func reverse[T Float](op string, r func() Interval[T], xs ...Decorated[T]) Decorated[T] {
	if !checkDecorated(op, xs...) {
		return NaI[T]()
	}
	return trivial(r())
}

// SqrRev returns SqrRev(c, x) where c is the receiver.
func (c Decorated[T]) SqrRev(x Decorated[T]) Decorated[T] {
	return reverse("SqrRev", func() Interval[T] { return SqrRev(c.Bare, x.Bare) }, c, x)
}

// AbsRev returns AbsRev(c, x) where c is the receiver.
func (c Decorated[T]) AbsRev(x Decorated[T]) Decorated[T] {
	return reverse("AbsRev", func() Interval[T] { return AbsRev(c.Bare, x.Bare) }, c, x)
}

// CoshRev returns CoshRev(c, x) where c is the receiver.
func (c Decorated[T]) CoshRev(x Decorated[T]) Decorated[T] {
	return reverse("CoshRev", func() Interval[T] { return CoshRev(c.Bare, x.Bare) }, c, x)
}

// PownRev returns PownRev(c, x, n) where c is the receiver.
func (c Decorated[T]) PownRev(x Decorated[T], n int64) Decorated[T] {
	return reverse("PownRev", func() Interval[T] { return PownRev(c.Bare, x.Bare, n) }, c, x)
}

// MulRevToPair returns MulRevToPair(b, c) where b is the receiver. Both
// results are NaI if either operand is NaI.
func (b Decorated[T]) MulRevToPair(c Decorated[T]) (Decorated[T], Decorated[T]) {
	if !checkDecorated("MulRevToPair", b, c) {
		return NaI[T](), NaI[T]()
	}
	p, q := mulRevToPair(b.Bare, c.Bare)
	if anyEmpty(b.Bare, c.Bare) {
		p, q = Empty[T](), Empty[T]()
	}
	return trivial(p), trivial(q)
}

// MulRev returns MulRev(b, c, x) where b is the receiver.
func (b Decorated[T]) MulRev(c, x Decorated[T]) Decorated[T] {
	return reverse("MulRev", func() Interval[T] { return MulRev(b.Bare, c.Bare, x.Bare) }, b, c, x)
}

// DivRev1 returns DivRev1(b, c, x) where b is the receiver.
func (b Decorated[T]) DivRev1(c, x Decorated[T]) Decorated[T] {
	return reverse("DivRev1", func() Interval[T] { return DivRev1(b.Bare, c.Bare, x.Bare) }, b, c, x)
}

// DivRev2 returns DivRev2(a, c, x) where a is the receiver.
func (a Decorated[T]) DivRev2(c, x Decorated[T]) Decorated[T] {
	return reverse("DivRev2", func() Interval[T] { return DivRev2(a.Bare, c.Bare, x.Bare) }, a, c, x)
}
