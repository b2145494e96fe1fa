// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

// Pow sets z to the rounded value of x**y, and returns z. x must be positive
// and finite, y must be finite.
//
// Pow panics with ErrNaN if x <= 0 or x is an infinity.
func Pow(z, x, y *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() <= 0 || x.IsInf() || y.IsInf() {
		panic(ErrNaN{"pow argument out of range"})
	}
	if y.Sign() == 0 || x.Cmp(one) == 0 {
		return z.SetPrec(prec).SetInt64(1)
	}
	p := workPrec(prec, x)
	if mp := y.MinPrec() + 2; mp > p {
		p = mp
	}

	// x**y = e**(y×log(x)). The absolute error of the exponent becomes the
	// relative error of the result, so compute it with as many extra bits as
	// its magnitude.
	t := Log(newFloat(p), x)
	t.Mul(t, y)
	if e := t.MantExp(nil); e > 0 {
		if e > 32 {
			e = 32
		}
		p += uint(e)
		t = Log(newFloat(p), x)
		t.Mul(t, y)
	}
	return Exp(z.SetPrec(prec), t)
}

// Root sets z to the rounded value of the n-th root of x, and returns z.
// Negative values of x are only allowed for odd n.
//
// Root panics with ErrNaN if n == 0 or if x < 0 and n is even.
func Root(z, x *big.Float, n int64) *big.Float {
	prec := precOf(z, x)
	switch {
	case n == 0:
		panic(ErrNaN{"zeroth root"})
	case x.Signbit() && x.Sign() != 0 && n%2 == 0:
		panic(ErrNaN{"even root of a negative number"})
	case n == 1:
		return z.SetPrec(prec).Set(x)
	case n == -1:
		if x.Sign() == 0 {
			return z.SetPrec(prec).SetInf(x.Signbit())
		}
		return z.SetPrec(prec).Quo(one, x)
	}

	neg := x.Sign() < 0
	switch {
	case x.Sign() == 0:
		if n < 0 {
			return z.SetPrec(prec).SetInf(x.Signbit() && n%2 != 0)
		}
		return z.SetPrec(prec).Set(x)
	case x.IsInf():
		if n < 0 {
			z.SetPrec(prec).SetInt64(0)
		} else {
			z.SetPrec(prec).SetInf(false)
		}
		if neg {
			z.Neg(z)
		}
		return z
	}

	p := workPrec(prec, x)
	a := newFloat(p).Abs(x)
	var r *big.Float
	switch n {
	case 2:
		r = newFloat(p).Sqrt(a)
	case -2:
		r = newFloat(p).Sqrt(a)
		r.Quo(one, r)
	default:
		// n-th root = e**(log(|x|)/n)
		t := Log(newFloat(p+32), a)
		t.Quo(t, newFloat(p+32).SetInt64(n))
		r = Exp(newFloat(p), t)
	}
	if neg {
		r.Neg(r)
	}
	return z.SetPrec(prec).Set(r)
}
