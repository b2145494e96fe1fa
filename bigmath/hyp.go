// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

// Sinh sets z to the rounded value of sinh(x), and returns z.
func Sinh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 || x.IsInf() {
		return z.SetPrec(prec).Set(x)
	}
	p := workPrec(prec, x)

	// sinh(|x|) = (u + u/(u+1))/2 with u = e**|x| - 1
	a := newFloat(p).Abs(x)
	u := Expm1(newFloat(p), a)
	if u.IsInf() {
		return z.SetPrec(prec).SetInf(x.Signbit())
	}
	v := newFloat(p).Add(u, one)
	v.Quo(u, v)
	u.Add(u, v)
	u.SetMantExp(u, -1)
	if x.Signbit() {
		u.Neg(u)
	}
	return z.SetPrec(prec).Set(u)
}

// Cosh sets z to the rounded value of cosh(x), and returns z.
func Cosh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInf() {
		return z.SetPrec(prec).SetInf(false)
	}
	if x.Sign() == 0 {
		return z.SetPrec(prec).SetInt64(1)
	}
	p := workPrec(prec, x)
	a := newFloat(p).Abs(x)
	e := Exp(newFloat(p), a)
	if e.IsInf() {
		return z.SetPrec(prec).Set(e)
	}
	v := newFloat(p).Quo(one, e)
	e.Add(e, v)
	return z.SetPrec(prec).SetMantExp(e, -1)
}

// Tanh sets z to the rounded value of tanh(x), and returns z.
func Tanh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	if x.IsInf() {
		if x.Signbit() {
			return z.SetPrec(prec).SetInt64(-1)
		}
		return z.SetPrec(prec).SetInt64(1)
	}
	p := workPrec(prec, x)

	// tanh(|x|) = u/(u+2) with u = e**(2|x|) - 1
	a := newFloat(p).Abs(x)
	a.SetMantExp(a, 1)
	u := Expm1(newFloat(p), a)
	var r *big.Float
	if u.IsInf() {
		r = newFloat(p).SetInt64(1)
	} else {
		r = newFloat(p).Add(u, two)
		r.Quo(u, r)
	}
	if x.Signbit() {
		r.Neg(r)
	}
	return z.SetPrec(prec).Set(r)
}

// Asinh sets z to the rounded value of asinh(x), and returns z.
func Asinh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 || x.IsInf() {
		return z.SetPrec(prec).Set(x)
	}
	p := workPrec(prec, x)

	// asinh(|x|) = log1p(|x| + x²/(1+√(1+x²)))
	a := newFloat(p).Abs(x)
	x2 := newFloat(p).Mul(a, a)
	u := newFloat(p).Add(x2, one)
	u.Sqrt(u)
	u.Add(u, one)
	u.Quo(x2, u)
	u.Add(u, a)
	r := Log1p(newFloat(p), u)
	if x.Signbit() {
		r.Neg(r)
	}
	return z.SetPrec(prec).Set(r)
}

// Acosh sets z to the rounded value of acosh(x), and returns z.
//
// Acosh panics with ErrNaN if x < 1.
func Acosh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	switch x.Cmp(one) {
	case -1:
		panic(ErrNaN{"acosh argument out of range"})
	case 0:
		return z.SetPrec(prec).SetInt64(0)
	}
	if x.IsInf() {
		return z.SetPrec(prec).Set(x)
	}
	p := workPrec(prec, x)

	// acosh(x) = log1p(t + √(t(t+2))) with t = x-1
	t := newFloat(p).Sub(x, one)
	u := newFloat(p).Add(t, two)
	u.Mul(u, t)
	u.Sqrt(u)
	u.Add(u, t)
	return Log1p(z.SetPrec(prec), u)
}

// Atanh sets z to the rounded value of atanh(x), and returns z.
//
// Atanh panics with ErrNaN if |x| > 1. Atanh(±1) = ±Inf.
func Atanh(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() == 0 {
		return z.SetPrec(prec).Set(x)
	}
	a := new(big.Float).Abs(x)
	switch a.Cmp(one) {
	case 1:
		panic(ErrNaN{"atanh argument out of range"})
	case 0:
		return z.SetPrec(prec).SetInf(x.Signbit())
	}
	p := workPrec(prec, x)

	// atanh(|x|) = log1p(2|x|/(1-|x|))/2
	a.SetPrec(p)
	u := newFloat(p).Sub(one, a)
	u.Quo(a, u)
	u.SetMantExp(u, 1)
	r := Log1p(newFloat(p), u)
	r.SetMantExp(r, -1)
	if x.Signbit() {
		r.Neg(r)
	}
	return z.SetPrec(prec).Set(r)
}
