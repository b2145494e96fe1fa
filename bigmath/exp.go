// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math"
	"math/big"
)

// maxExpArg bounds the magnitude of arguments to Exp: beyond it the exponent
// of the result does not fit in a big.Float and the result is ±Inf or 0.
const maxExpArg = 1 << 30

// Exp sets z to the rounded value of e**x, and returns z.
//
// Arguments with |x| >= 2**30 overflow to +Inf or underflow to +0.
func Exp(z, x *big.Float) *big.Float {
	prec := precOf(z, x)

	// special cases
	switch {
	case x.Sign() == 0:
		return z.SetPrec(prec).SetInt64(1)
	case x.IsInf():
		if x.Signbit() {
			return z.SetPrec(prec).SetInt64(0)
		}
		return z.SetPrec(prec).SetInf(false)
	case x.MantExp(nil) > 30:
		if x.Signbit() {
			return z.SetPrec(prec).SetInt64(0)
		}
		return z.SetPrec(prec).SetInf(false)
	}

	p := workPrec(prec, x)

	// x = k×log(2) + r with |r| <= log(2)/2
	xf, _ := x.Float64()
	k := int64(math.Round(xf / math.Ln2))
	r := newFloat(p + 64).Set(x)
	if k != 0 {
		l := Ln2(newFloat(p + 64))
		r.Sub(r, l.Mul(l, newFloat(p+64).SetInt64(k)))
	}
	e := expm1T(newFloat(p), r)
	e.Add(e, one)
	return z.SetPrec(prec).SetMantExp(e, int(k))
}

// Expm1 sets z to the rounded value of e**x - 1, and returns z. The result is
// accurate even for values of x close to zero.
func Expm1(z, x *big.Float) *big.Float {
	prec := precOf(z, x)

	switch {
	case x.Sign() == 0:
		return z.SetPrec(prec).Set(x)
	case x.IsInf():
		if x.Signbit() {
			return z.SetPrec(prec).SetInt64(-1)
		}
		return z.SetPrec(prec).Set(x)
	}

	p := workPrec(prec, x)
	if x.MantExp(nil) < 0 {
		// |x| < 1/2
		return z.SetPrec(prec).Set(expm1T(newFloat(p), x))
	}
	e := Exp(newFloat(p), x)
	return z.SetPrec(prec).Sub(e, one)
}

// expm1T sets z to the rounded value of e**x-1, and returns z. |x| should not
// exceed 1. The computation is done at z's precision plus a few bits.
//
// x is scaled down by 2**s so that the Taylor series converges quickly and
// the result is scaled back with s squarings of the form e(e+2).
func expm1T(z, x *big.Float) *big.Float {
	var (
		prec = z.Prec()
		s    = 0
	)
	if e := x.MantExp(nil); e > -12 {
		s = e + 12
	}
	p := prec + uint(s) + 8

	var (
		y    = newFloat(p).SetMantExp(x, -s)
		term = newFloat(p).Set(y)
		sum  = newFloat(p).Set(y)
		q    = newFloat(p)
	)
	for k := int64(2); y.Sign() != 0; k++ {
		term.Mul(term, y)
		term.Quo(term, q.SetInt64(k))
		sum.Add(sum, term)
		if negligible(term, sum, p) {
			break
		}
	}
	for ; s > 0; s-- {
		q.Add(sum, two)
		sum.Mul(sum, q)
	}
	return z.Set(sum)
}

// Exp2 sets z to the rounded value of 2**x, and returns z.
func Exp2(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.IsInt() && !x.IsInf() {
		if i, acc := x.Int64(); acc == big.Exact && i > -maxExpArg && i < maxExpArg {
			return z.SetPrec(prec).SetMantExp(one, int(i))
		}
	}
	p := workPrec(prec, x)
	if e := x.MantExp(nil); e > 0 {
		p += uint(e)
	}
	t := Ln2(newFloat(p))
	return Exp(z.SetPrec(prec), t.Mul(t, x))
}

// Exp10 sets z to the rounded value of 10**x, and returns z.
func Exp10(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	p := workPrec(prec, x)
	if e := x.MantExp(nil); e > 0 {
		p += uint(e)
	}
	t := Log(newFloat(p), big.NewFloat(10))
	return Exp(z.SetPrec(prec), t.Mul(t, x))
}
