// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math"
	"math/big"

	"github.com/db47h/interval/bigmath"
)

// maxExactPrec bounds the precision of exact powers computed to detect exact
// results.
const maxExactPrec = 4096

// exactPow returns x**n computed exactly, or nil if the result would need
// more than maxExactPrec bits.
func exactPow(x *big.Float, n uint64) *big.Float {
	if n == 0 {
		return big.NewFloat(1)
	}
	p := uint64(x.MinPrec())
	if p == 0 || p*n > maxExactPrec {
		return nil
	}
	return bigmath.PowInt(new(big.Float).SetPrec(uint(p*n)+1), x, n)
}

// powLimits reports whether |r| = 2**l certainly overflows (1) or underflows
// (-1) T.
func powLimits[T Float](l float64) int {
	f := FormatOf[T]()
	switch {
	case l > float64(f.Emax+3):
		return 1
	case l < float64(f.Emin-int(f.Prec)-3):
		return -1
	}
	return 0
}

// Pown returns x**n rounded in direction m. Pown(x, 0) = 1 for any x.
func Pown[T Float](x T, n int64, m Mode) (T, Accuracy) {
	odd := n%2 != 0
	switch {
	case n == 0:
		return one[T]()
	case IsNaN(x):
		return x, Exact
	case n == 1:
		return x, Exact
	case n == -1:
		return Quo(1, x, m)
	case x == 0:
		if n > 0 {
			if odd {
				return x, Exact
			}
			return 0, Exact
		}
		if odd && Signbit(x) {
			return Inf[T](-1), Exact
		}
		return Inf[T](1), Exact
	case IsInf(x, 0):
		neg := odd && x < 0
		if n > 0 {
			if neg {
				return Inf[T](-1), Exact
			}
			return Inf[T](1), Exact
		}
		if neg {
			return T(math.Copysign(0, -1)), Exact
		}
		return 0, Exact
	}

	neg := odd && x < 0
	switch powLimits[T](math.Log2(math.Abs(float64(x))) * float64(n)) {
	case 1:
		return overflow[T](neg, m)
	case -1:
		return underflow[T](neg, m)
	}

	a := ToBig(x)
	a.Abs(a)
	k := uint64(n)
	if n < 0 {
		k = uint64(-n)
	}
	bracket := func(w uint) (lo, hi *big.Float) {
		lo = bigmath.PowInt(new(big.Float).SetMode(big.ToNegativeInf).SetPrec(w), a, k)
		hi = bigmath.PowInt(new(big.Float).SetMode(big.ToPositiveInf).SetPrec(w), a, k)
		if n < 0 {
			lo, hi = new(big.Float).SetMode(big.ToNegativeInf).SetPrec(w).Quo(bigOne, hi),
				new(big.Float).SetMode(big.ToPositiveInf).SetPrec(w).Quo(bigOne, lo)
		}
		if neg {
			lo, hi = hi.Neg(hi), lo.Neg(lo)
		}
		return lo, hi
	}
	return refine[T](bracket, nil, m)
}

// Rootn returns the n-th root of x rounded in direction m. Rootn returns NaN
// for n == 0 or for x < 0 and n even.
func Rootn[T Float](x T, n int64, m Mode) (T, Accuracy) {
	odd := n%2 != 0
	switch {
	case IsNaN(x) || n == 0 || x < 0 && !odd:
		return NaN[T](), Exact
	case n == 1:
		return x, Exact
	case n == 2:
		return Sqrt(x, m)
	case n == -1:
		return Quo(1, x, m)
	case x == 0:
		if n > 0 {
			return x, Exact
		}
		if Signbit(x) && odd {
			return Inf[T](-1), Exact
		}
		return Inf[T](1), Exact
	case IsInf(x, 0):
		if n > 0 {
			return x, Exact
		}
		if x < 0 {
			return T(math.Copysign(0, -1)), Exact
		}
		return 0, Exact
	}

	bx := ToBig(x)
	k := uint64(n)
	if n < 0 {
		k = uint64(-n)
	}
	exact := func(c *big.Float) bool {
		p := exactPow(c, k)
		if p == nil {
			return false
		}
		if n < 0 {
			p.SetPrec(p.Prec()+64).Mul(p, bx)
			return p.Cmp(bigOne) == 0
		}
		return p.Cmp(bx) == 0
	}
	return eval[T](func(z *big.Float) *big.Float { return bigmath.Root(z, bx, n) }, exact, m)
}

// Pow returns x**y rounded in direction m, for x >= 0. Pow returns NaN for
// x < 0. Pow(x, 0) = 1 for any x and Pow(1, y) = 1 for any y; 0**y is 0 for y >
// 0 and +Inf for y < 0.
func Pow[T Float](x, y T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || IsNaN(y) || x < 0:
		return NaN[T](), Exact
	case y == 0 || x == 1:
		return one[T]()
	case x == 0:
		if y > 0 {
			return zero[T](m), Exact
		}
		return Inf[T](1), Exact
	case IsInf(x, 1):
		if y > 0 {
			return x, Exact
		}
		return zero[T](m), Exact
	case IsInf(y, 1):
		if x < 1 {
			return zero[T](m), Exact
		}
		return y, Exact
	case IsInf(y, -1):
		if x < 1 {
			return Inf[T](1), Exact
		}
		return zero[T](m), Exact
	}

	yf := float64(y)
	if yf == math.Trunc(yf) && math.Abs(yf) <= 1<<53 {
		return Pown(x, int64(yf), m)
	}
	switch powLimits[T](math.Log2(float64(x)) * yf) {
	case 1:
		return overflow[T](false, m)
	case -1:
		return underflow[T](false, m)
	}

	bx, by := ToBig(x), ToBig(y)
	exact := func(c *big.Float) bool {
		// x**y can only be exact for y = num/2**k with small num and k.
		for k := uint64(1); k <= 6; k++ {
			s := math.Ldexp(yf, int(k))
			if s != math.Trunc(s) {
				continue
			}
			num := int64(s)
			if num > 64 || num < -64 {
				return false
			}
			l := exactPow(c, 1<<k)
			r := exactPow(bx, uint64(abs(num)))
			if l == nil || r == nil {
				return false
			}
			if num < 0 {
				l.SetPrec(l.Prec()+r.Prec()).Mul(l, r)
				return l.Cmp(bigOne) == 0
			}
			return l.Cmp(r) == 0
		}
		return false
	}
	return eval[T](func(z *big.Float) *big.Float { return bigmath.Pow(z, bx, by) }, exact, m)
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
