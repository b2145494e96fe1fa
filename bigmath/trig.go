// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

// reduceHalfPi returns r and k such that x = k×π/2 + r with |r| <= π/4, r
// computed to at least prec bits of relative precision. Only k mod 4 is
// returned. x must be finite.
func reduceHalfPi(x *big.Float, prec uint) (*big.Float, int) {
	e := x.MantExp(nil)
	if e < 0 {
		// |x| < 1/2 < π/4
		return newFloat(prec).Set(x), 0
	}
	// Cancellation in x - k×π/2 loses at most as many bits as there are in x
	// plus its exponent.
	p := prec + uint(e) + x.MinPrec() + 64
	hp := Pi(newFloat(p))
	hp.SetMantExp(hp, -1)

	q := newFloat(p).Quo(x, hp)
	q.Add(q, half)
	k := floor(q)

	r := newFloat(p).SetInt(k)
	r.Mul(r, hp)
	r.Sub(x, r)

	m := new(big.Int).And(k, big.NewInt(3))
	return r.SetPrec(prec), int(m.Int64())
}

// sinSeries sets z to sin(x) = Σ (-1)**k x**(2k+1)/(2k+1)!, and returns z.
// |x| should not exceed π/4.
func sinSeries(z, x *big.Float) *big.Float {
	var (
		p    = z.Prec()
		x2   = newFloat(p).Mul(x, x)
		term = newFloat(p).Set(x)
		s    = newFloat(p).Set(x)
		q    = newFloat(p)
	)
	if x.Sign() == 0 {
		return z.Set(x)
	}
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, q.SetInt64((2*k)*(2*k+1)))
		term.Neg(term)
		s.Add(s, term)
		if negligible(term, s, p) {
			break
		}
	}
	return z.Set(s)
}

// cosSeries sets z to cos(x) = Σ (-1)**k x**(2k)/(2k)!, and returns z.
// |x| should not exceed π/4.
func cosSeries(z, x *big.Float) *big.Float {
	var (
		p    = z.Prec()
		x2   = newFloat(p).Mul(x, x)
		term = newFloat(p).SetInt64(1)
		s    = newFloat(p).SetInt64(1)
		q    = newFloat(p)
	)
	if x.Sign() == 0 {
		return z.Set(s)
	}
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, q.SetInt64((2*k-1)*(2*k)))
		term.Neg(term)
		s.Add(s, term)
		if negligible(term, s, p) {
			break
		}
	}
	return z.Set(s)
}

// Sin sets z to the rounded value of sin(x), and returns z.
//
// Sin panics with ErrNaN if x is an infinity.
func Sin(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInf() {
		panic(ErrNaN{"sine of an infinity"})
	}
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	p := prec + guardBits
	r, k := reduceHalfPi(x, p)
	t := newFloat(p)
	switch k {
	case 0:
		sinSeries(t, r)
	case 1:
		cosSeries(t, r)
	case 2:
		sinSeries(t, r).Neg(t)
	case 3:
		cosSeries(t, r).Neg(t)
	}
	return z.SetPrec(prec).Set(t)
}

// Cos sets z to the rounded value of cos(x), and returns z.
//
// Cos panics with ErrNaN if x is an infinity.
func Cos(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInf() {
		panic(ErrNaN{"cosine of an infinity"})
	}
	if x.Sign() == 0 {
		return z.SetPrec(prec).SetInt64(1)
	}
	p := prec + guardBits
	r, k := reduceHalfPi(x, p)
	t := newFloat(p)
	switch k {
	case 0:
		cosSeries(t, r)
	case 1:
		sinSeries(t, r).Neg(t)
	case 2:
		cosSeries(t, r).Neg(t)
	case 3:
		sinSeries(t, r)
	}
	return z.SetPrec(prec).Set(t)
}

// Tan sets z to the rounded value of tan(x), and returns z.
//
// Tan panics with ErrNaN if x is an infinity.
func Tan(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInf() {
		panic(ErrNaN{"tangent of an infinity"})
	}
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	p := prec + guardBits
	r, k := reduceHalfPi(x, p)
	s := sinSeries(newFloat(p), r)
	c := cosSeries(newFloat(p), r)
	if k%2 == 0 {
		return z.SetPrec(prec).Quo(s, c)
	}
	s.Neg(s)
	return z.SetPrec(prec).Quo(c, s)
}
