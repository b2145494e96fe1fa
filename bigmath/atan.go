// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

// atanSeries sets z to atan(t) = Σ (-1)**k t**(2k+1)/(2k+1), and returns z.
// |t| must be small.
func atanSeries(z, t *big.Float) *big.Float {
	var (
		p    = z.Prec()
		t2   = newFloat(p).Mul(t, t)
		term = newFloat(p).Set(t)
		q    = newFloat(p)
		s    = newFloat(p).Set(t)
	)
	for k := int64(1); ; k++ {
		term.Mul(term, t2)
		term.Neg(term)
		q.Quo(term, q.SetInt64(2*k+1))
		s.Add(s, q)
		if negligible(q, s, p) {
			break
		}
	}
	return z.Set(s)
}

// Atan sets z to the rounded value of atan(x), and returns z.
//
// Atan(±Inf) = ±π/2.
func Atan(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	p := workPrec(prec, x)
	if x.IsInf() {
		hp := Pi(newFloat(p))
		hp.SetMantExp(hp, -1)
		if x.Signbit() {
			hp.Neg(hp)
		}
		return z.SetPrec(prec).Set(hp)
	}

	neg := x.Signbit()
	t := newFloat(p).Abs(x)

	// atan(x) = π/2 - atan(1/x) for x > 1
	inv := t.Cmp(one) > 0
	if inv {
		t.Quo(one, t)
	}

	// atan(t) = 2×atan(t/(1+√(1+t²)))
	n := 0
	u := newFloat(p)
	for ; n < 8 && t.MantExp(nil) > -8; n++ {
		u.Mul(t, t)
		u.Add(u, one)
		u.Sqrt(u)
		u.Add(u, one)
		t.Quo(t, u)
	}
	r := atanSeries(newFloat(p), t)
	r.SetMantExp(r, n)

	if inv {
		hp := Pi(newFloat(p))
		hp.SetMantExp(hp, -1)
		r.Sub(hp, r)
	}
	if neg {
		r.Neg(r)
	}
	return z.SetPrec(prec).Set(r)
}

// Asin sets z to the rounded value of asin(x), and returns z.
//
// Asin panics with ErrNaN if |x| > 1.
func Asin(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	a := new(big.Float).Abs(x)
	switch a.Cmp(one) {
	case 1:
		panic(ErrNaN{"asin argument out of range"})
	case 0:
		p := prec + guardBits
		hp := Pi(newFloat(p))
		hp.SetMantExp(hp, -1)
		if x.Signbit() {
			hp.Neg(hp)
		}
		return z.SetPrec(prec).Set(hp)
	}
	p := workPrec(prec, x)

	// asin(x) = atan(x/√((1-x)(1+x)))
	u := newFloat(p).Sub(one, x)
	v := newFloat(p).Add(one, x)
	u.Mul(u, v)
	u.Sqrt(u)
	u.Quo(x, u)
	return Atan(z.SetPrec(prec), u)
}

// Acos sets z to the rounded value of acos(x), and returns z.
//
// Acos panics with ErrNaN if |x| > 1.
func Acos(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInf() || new(big.Float).Abs(x).Cmp(one) > 0 {
		panic(ErrNaN{"acos argument out of range"})
	}
	if x.Cmp(one) == 0 {
		return z.SetPrec(prec).SetInt64(0)
	}
	p := workPrec(prec, x)
	if x.Cmp(big.NewFloat(-1)) == 0 {
		return z.SetPrec(prec).Set(Pi(newFloat(p)))
	}

	// acos(x) = 2×atan(√((1-x)/(1+x)))
	u := newFloat(p).Sub(one, x)
	v := newFloat(p).Add(one, x)
	u.Quo(u, v)
	u.Sqrt(u)
	r := Atan(newFloat(p), u)
	return z.SetPrec(prec).SetMantExp(r, 1)
}

// Atan2 sets z to the rounded value of the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the result, and returns z. x and y
// must be finite and not both zero. A zero y is treated as +0.
func Atan2(z, y, x *big.Float) *big.Float {
	prec := precOf(z, y)
	p := prec + guardBits
	if x.Sign() == 0 {
		if y.Sign() == 0 {
			panic(ErrNaN{"atan2 of the origin"})
		}
		hp := Pi(newFloat(p))
		hp.SetMantExp(hp, -1)
		if y.Sign() < 0 {
			hp.Neg(hp)
		}
		return z.SetPrec(prec).Set(hp)
	}
	if y.Sign() == 0 {
		if x.Sign() > 0 {
			return z.SetPrec(prec).SetInt64(0)
		}
		return z.SetPrec(prec).Set(Pi(newFloat(p)))
	}

	wp := p
	if mp := y.MinPrec() + x.MinPrec() + 2; mp > wp {
		wp = mp
	}
	q := newFloat(wp).Quo(y, x)
	if x.Sign() > 0 {
		return Atan(z.SetPrec(prec), q)
	}
	r := Atan(newFloat(p), q)
	pi := Pi(newFloat(p))
	if y.Sign() > 0 {
		r.Add(r, pi)
	} else {
		r.Sub(r, pi)
	}
	return z.SetPrec(prec).Set(r)
}
