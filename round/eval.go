// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math/big"
)

// Working precision bounds for the refinement loop, in bits.
const (
	extraPrec = 40
	maxPrec   = 1 << 14
)

// A bracketFunc returns lo and hi such that lo <= f <= hi, where f is the
// exact value being computed, with a relative width of about 2**-w.
type bracketFunc func(w uint) (lo, hi *big.Float)

// refine rounds the value enclosed by bracket into T in direction m. The
// working precision is doubled until both ends of the bracket round to the
// same value. exact, if not nil, is called once with the nearest candidate
// and reports whether it is the exact value.
func refine[T Float](bracket bracketFunc, exact func(c *big.Float) bool, m Mode) (T, Accuracy) {
	w := FormatOf[T]().Prec + extraPrec
	for i := 0; ; i++ {
		lo, hi := bracket(w)
		if lo.Cmp(hi) == 0 {
			return Narrow[T](lo, m)
		}
		a, _ := Narrow[T](lo, m)
		b, _ := Narrow[T](hi, m)
		if a == b && Signbit(a) == Signbit(b) {
			switch m {
			case Down:
				return a, Below
			case Up:
				return a, Above
			}
			// the result must lie outside of the bracket for its accuracy to
			// be known.
			c := ToBig(a)
			if c.Cmp(lo) < 0 {
				return a, Below
			}
			if c.Cmp(hi) > 0 {
				return a, Above
			}
		}
		if i == 1 && exact != nil {
			mid := new(big.Float).SetPrec(w+1).Add(lo, hi)
			mid.SetMantExp(mid, -1)
			c, _ := Narrow[T](mid, Nearest)
			if !IsInf(c, 0) && exact(ToBig(c)) {
				return c, Exact
			}
		}
		if w >= maxPrec {
			switch m {
			case Down:
				v, _ := Narrow[T](lo, m)
				return v, Below
			case Up:
				v, _ := Narrow[T](hi, m)
				return v, Above
			}
			mid := new(big.Float).SetPrec(w+1).Add(lo, hi)
			mid.SetMantExp(mid, -1)
			return Narrow[T](mid, m)
		}
		w *= 2
	}
}

// approx returns a bracketFunc for a function f that sets z to an
// approximation of the exact value with a relative error below
// 2**(1-z.Prec()).
func approx(f func(z *big.Float) *big.Float) bracketFunc {
	return func(w uint) (lo, hi *big.Float) {
		y := f(new(big.Float).SetPrec(w))
		if y.Sign() == 0 || y.IsInf() {
			return y, y
		}
		d := new(big.Float).SetPrec(w+4).SetMantExp(y, 2-int(w))
		d.Abs(d)
		lo = new(big.Float).SetMode(big.ToNegativeInf).SetPrec(w+4).Sub(y, d)
		hi = new(big.Float).SetMode(big.ToPositiveInf).SetPrec(w+4).Add(y, d)
		return lo, hi
	}
}

// eval rounds the value computed by f into T in direction m. See approx and
// refine.
func eval[T Float](f func(z *big.Float) *big.Float, exact func(c *big.Float) bool, m Mode) (T, Accuracy) {
	return refine[T](approx(f), exact, m)
}
