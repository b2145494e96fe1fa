// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math"
	"math/big"
)

// exactPrec returns a precision large enough to hold the exact sum of two
// finite nonzero values with exponents ex and ey and precisions px and py.
func exactPrec(ex, ey int, px, py uint) uint {
	lo := ex - int(px)
	if l := ey - int(py); l < lo {
		lo = l
	}
	hi := ex
	if ey > hi {
		hi = ey
	}
	return uint(hi-lo) + 2
}

// sum returns x+y computed exactly. x and y must be finite.
func sum(x, y *big.Float) *big.Float {
	switch {
	case x.Sign() == 0:
		return new(big.Float).Set(y)
	case y.Sign() == 0:
		return new(big.Float).Set(x)
	}
	p := exactPrec(x.MantExp(nil), y.MantExp(nil), x.MinPrec(), y.MinPrec())
	return new(big.Float).SetPrec(p).Add(x, y)
}

// narrowAcc narrows r, an approximation of the exact result with accuracy
// acc, and combines both accuracies.
func narrowAcc[T Float](r *big.Float, acc big.Accuracy, m Mode) (T, Accuracy) {
	v, a := Narrow[T](r, m)
	if a == Exact {
		a = Accuracy(acc)
	}
	return v, a
}

// Add returns x+y rounded in direction m.
func Add[T Float](x, y T, m Mode) (T, Accuracy) {
	if !IsFinite(x) || !IsFinite(y) {
		return x + y, Exact
	}
	if x == 0 && y == 0 {
		if Signbit(x) && Signbit(y) {
			return x, Exact
		}
		return zero[T](m), Exact
	}
	return Narrow[T](sum(ToBig(x), ToBig(y)), m)
}

// Sub returns x-y rounded in direction m.
func Sub[T Float](x, y T, m Mode) (T, Accuracy) {
	return Add(x, -y, m)
}

// Mul returns x×y rounded in direction m.
func Mul[T Float](x, y T, m Mode) (T, Accuracy) {
	if !IsFinite(x) || !IsFinite(y) || x == 0 || y == 0 {
		return x * y, Exact
	}
	p := 2 * FormatOf[T]().Prec
	return Narrow[T](new(big.Float).SetPrec(p).Mul(ToBig(x), ToBig(y)), m)
}

// Quo returns x/y rounded in direction m.
func Quo[T Float](x, y T, m Mode) (T, Accuracy) {
	if !IsFinite(x) || !IsFinite(y) || x == 0 || y == 0 {
		return x / y, Exact
	}
	p := FormatOf[T]().Prec
	if m == Nearest {
		p = 2*p + 2
	}
	r := new(big.Float).SetMode(m.big()).SetPrec(p).Quo(ToBig(x), ToBig(y))
	return narrowAcc[T](r, r.Acc(), m)
}

// FMA returns x×y+z computed with a single rounding in direction m.
func FMA[T Float](x, y, z T, m Mode) (T, Accuracy) {
	if !IsFinite(x) || !IsFinite(y) || !IsFinite(z) {
		return T(math.FMA(float64(x), float64(y), float64(z))), Exact
	}
	p := 2 * FormatOf[T]().Prec
	xy := new(big.Float).SetPrec(p).Mul(ToBig(x), ToBig(y))
	if xy.Sign() == 0 && z == 0 {
		if xy.Signbit() && Signbit(z) {
			return z, Exact
		}
		return zero[T](m), Exact
	}
	return Narrow[T](sum(xy, ToBig(z)), m)
}

// Sqrt returns the square root of x rounded in direction m. Sqrt returns NaN
// for x < 0.
func Sqrt[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < 0:
		return NaN[T](), Exact
	case x == 0 || IsInf(x, 1):
		return x, Exact
	}

	// The square root of a p-bit number is either exact or farther than
	// 2**-(2p+2) relative from any p+1-bit number, so a 2p+8-bit
	// approximation rounds like the exact value.
	bx := ToBig(x)
	p := 2*FormatOf[T]().Prec + 8
	s := new(big.Float).SetPrec(p).Sqrt(bx)
	v, acc := Narrow[T](s, m)
	if acc == Exact {
		sq := new(big.Float).SetPrec(2*p).Mul(s, s)
		acc = Accuracy(sq.Cmp(bx))
	}
	return v, acc
}
