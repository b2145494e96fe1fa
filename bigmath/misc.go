// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
)

// guardBits is the number of extra bits of working precision used
// internally by every function.
const guardBits = 64

// constants
var (
	one      = big.NewFloat(1)
	two      = big.NewFloat(2)
	three    = big.NewFloat(3)
	four     = big.NewFloat(4)
	half     = big.NewFloat(0.5)
	quarter  = big.NewFloat(0.25)
	sqrtHalf = big.NewFloat(0.70710678118654752440)
)

// An ErrNaN panic is raised by a function that would lead to a NaN under
// IEEE-754 rules. An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

// newFloat returns a new *big.Float with the given precision and rounding
// mode ToNearestEven.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// precOf returns the precision to use for a result stored in z.
func precOf(z, x *big.Float) uint {
	if p := z.Prec(); p != 0 {
		return p
	}
	if p := x.Prec(); p != 0 {
		return p
	}
	return 64
}

// workPrec returns the working precision for a result of precision prec and
// an argument x, large enough to hold x exactly.
func workPrec(prec uint, x *big.Float) uint {
	p := prec + guardBits
	if mp := x.MinPrec() + 2; mp > p {
		p = mp
	}
	return p
}

// negligible reports whether the series term t no longer contributes to the
// sum s at precision prec.
func negligible(t, s *big.Float, prec uint) bool {
	return t.Sign() == 0 || s.Sign() != 0 && t.MantExp(nil) < s.MantExp(nil)-int(prec)-1
}

// pow sets z to the rounded value of x**n and returns z. The precision of z
// must be non zero; rounding uses z's mode for every intermediate product.
func pow(z, x *big.Float, n uint64) *big.Float {
	if n == 0 {
		return z.SetInt64(1)
	}
	t := new(big.Float).SetMode(z.Mode()).SetPrec(z.Prec())
	y := new(big.Float).SetMode(z.Mode()).SetPrec(z.Prec()).SetInt64(1)
	t.Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(y, t)
		}
		t.Mul(t, t)
		if t.IsInf() || t.Sign() == 0 {
			return z.Set(t)
		}
		n /= 2
	}
	return z.Mul(t, y)
}

// PowInt sets z to x**n, rounded in z's rounding mode at every step, and returns
// z. The precision of z must be non zero. With a directed rounding mode and
// x >= 0, z is a bound of x**n in that direction.
func PowInt(z, x *big.Float, n uint64) *big.Float {
	return pow(z, x, n)
}

// floor returns ⌊x⌋ as a big.Int. x must be finite.
func floor(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	if x.Sign() < 0 && acc != big.Exact {
		i.Sub(i, big.NewInt(1))
	}
	return i
}
