// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

var _ln2 constCache

// Ln2 sets z to log(2) rounded to z's precision and rounding mode and returns
// z. If z's precision is 0, it is set to 64.
func Ln2(z *big.Float) *big.Float {
	if z.Prec() == 0 {
		z.SetPrec(64)
	}
	return z.Set(_ln2.get(z.Prec()+guardBits, ln2))
}

// ln2 computes log(2) = 2×atanh(1/3) to prec bits of precision.
func ln2(prec uint) *big.Float {
	p := prec + guardBits
	t := newFloat(p).Quo(one, three)
	z := atanhSeries(newFloat(p), t)
	return z.Mul(z, two).SetPrec(prec)
}

// atanhSeries sets z to atanh(t) = Σ t^(2k+1)/(2k+1) and returns z. |t| must
// be small enough for the series to converge quickly (|t| <= 1/3). The
// computation is done at z's precision.
func atanhSeries(z, t *big.Float) *big.Float {
	var (
		p    = z.Prec()
		t2   = newFloat(p).Mul(t, t)
		term = newFloat(p).Set(t) // t^(2k+1)
		q    = newFloat(p)
		s    = newFloat(p).Set(t)
	)
	for k := int64(1); ; k++ {
		term.Mul(term, t2)
		q.Quo(term, q.SetInt64(2*k+1))
		s.Add(s, q)
		if negligible(q, s, p) {
			break
		}
	}
	return z.Set(s)
}

// Log sets z to the natural logarithm of x, and returns z.
//
// Log panics with ErrNaN if x < 0. Log(±0) = -Inf and Log(+Inf) = +Inf.
func Log(z, x *big.Float) *big.Float {
	prec := precOf(z, x)

	// special cases
	switch x.Sign() {
	case -1:
		panic(ErrNaN{"natural logarithm of a negative number"})
	case 0:
		return z.SetPrec(prec).SetInf(true)
	}
	if x.IsInf() {
		return z.SetPrec(prec).SetInf(false)
	}
	if x.Cmp(one) == 0 {
		return z.SetPrec(prec).SetInt64(0)
	}

	p := workPrec(prec, x)

	// x = m × 2**e with √½ <= m < √2
	m := new(big.Float)
	e := x.MantExp(m)
	m.SetPrec(p)
	if m.Cmp(sqrtHalf) < 0 {
		m.Mul(m, two)
		e--
	}

	// log(m) = 2×atanh((m-1)/(m+1)), m-1 is exact.
	t := newFloat(p).Sub(m, one)
	t.Quo(t, m.Add(m, one))
	r := atanhSeries(newFloat(p), t)
	r.Mul(r, two)

	if e != 0 {
		l := Ln2(newFloat(p + 32))
		l.Mul(l, newFloat(p+32).SetInt64(int64(e)))
		r.Add(r, l)
	}
	return z.SetPrec(prec).Set(r)
}

// Log1p sets z to log(1+x), and returns z. The result is accurate even for
// values of x close to zero.
//
// Log1p panics with ErrNaN if x < -1.
func Log1p(z, x *big.Float) *big.Float {
	prec := precOf(z, x)

	switch {
	case x.Sign() == 0:
		return z.SetPrec(prec).Set(x)
	case x.IsInf():
		if x.Signbit() {
			panic(ErrNaN{"log1p of -Inf"})
		}
		return z.SetPrec(prec).Set(x)
	}

	p := workPrec(prec, x)
	if x.MantExp(nil) < 0 {
		// |x| < 1/2: log(1+x) = 2×atanh(x/(2+x))
		t := newFloat(p).Add(x, two)
		t.Quo(x, t)
		r := atanhSeries(newFloat(p), t)
		return z.SetPrec(prec).Set(r.Mul(r, two))
	}

	// make 1+x exact or nearly so.
	if e := x.MantExp(nil); e > 0 {
		p += uint(e)
	}
	y := newFloat(p).Add(x, one)
	switch y.Sign() {
	case -1:
		panic(ErrNaN{"log1p of a number less than -1"})
	case 0:
		return z.SetPrec(prec).SetInf(true)
	}
	return Log(z.SetPrec(prec), y)
}

// Log2 sets z to the base 2 logarithm of x, and returns z.
//
// Log2 panics with ErrNaN if x < 0.
func Log2(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() <= 0 || x.IsInf() {
		return Log(z.SetPrec(prec), x)
	}
	if x.Cmp(one) == 0 {
		return z.SetPrec(prec).SetInt64(0)
	}
	p := workPrec(prec, x) + 32
	r := Log(newFloat(p), x)
	r.Quo(r, Ln2(newFloat(p)))
	return z.SetPrec(prec).Set(r)
}

// Log10 sets z to the decimal logarithm of x, and returns z.
//
// Log10 panics with ErrNaN if x < 0.
func Log10(z, x *big.Float) *big.Float {
	prec := precOf(z, x)
	if x.Sign() <= 0 || x.IsInf() {
		return Log(z.SetPrec(prec), x)
	}
	p := workPrec(prec, x) + 32
	r := Log(newFloat(p), x)
	r.Quo(r, Log(newFloat(p), big.NewFloat(10)))
	return z.SetPrec(prec).Set(r)
}
