// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math"
	"math/big"

	"github.com/db47h/interval/bigmath"
)

var bigOne = big.NewFloat(1)

func unary[T Float](x T, m Mode, f func(z, x *big.Float) *big.Float, exact func(c *big.Float) bool) (T, Accuracy) {
	bx := ToBig(x)
	return eval[T](func(z *big.Float) *big.Float { return f(z, bx) }, exact, m)
}

// one returns 1, exact.
func one[T Float]() (T, Accuracy) {
	return 1, Exact
}

// overflow returns the result of an overflow with the given sign.
func overflow[T Float](neg bool, m Mode) (T, Accuracy) {
	max := MaxFloat[T]()
	if neg {
		if m == Up {
			return -max, Above
		}
		return Inf[T](-1), Below
	}
	if m == Down {
		return max, Below
	}
	return Inf[T](1), Above
}

// underflow returns the result of a value smaller in magnitude than half the
// smallest subnormal of T, with the given sign.
func underflow[T Float](neg bool, m Mode) (T, Accuracy) {
	tiny := SmallestNonzero[T]()
	if neg {
		if m == Down {
			return -tiny, Below
		}
		return T(math.Copysign(0, -1)), Above
	}
	if m == Up {
		return tiny, Above
	}
	return 0, Below
}

// expLimits returns the thresholds, in units of the argument of an
// exponential of base b, beyond which b**x certainly overflows or underflows
// T. log2b is log2(b).
func expLimits[T Float](log2b float64) (lo, hi float64) {
	f := FormatOf[T]()
	return (float64(f.Emin-int(f.Prec)) - 1) / log2b, (float64(f.Emax+1) + 1) / log2b
}

// Pi returns π rounded in direction m.
func Pi[T Float](m Mode) (T, Accuracy) {
	return eval[T](bigmath.Pi, nil, m)
}

// piMul returns n×π/d rounded in direction m. d must be a power of two.
func piMul[T Float](n, d int64, m Mode) (T, Accuracy) {
	return eval[T](func(z *big.Float) *big.Float {
		bigmath.Pi(z)
		z.Mul(z, big.NewFloat(float64(n)))
		return z.Quo(z, big.NewFloat(float64(d)))
	}, nil, m)
}

// Exp returns e**x rounded in direction m.
func Exp[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case IsInf(x, 1):
		return x, Exact
	case IsInf(x, -1):
		return zero[T](m), Exact
	case x == 0:
		return one[T]()
	}
	lo, hi := expLimits[T](math.Log2E)
	switch xf := float64(x); {
	case xf > hi:
		return overflow[T](false, m)
	case xf < lo:
		return underflow[T](false, m)
	}
	return unary(x, m, bigmath.Exp, nil)
}

// Exp2 returns 2**x rounded in direction m.
func Exp2[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case IsInf(x, 1):
		return x, Exact
	case IsInf(x, -1):
		return zero[T](m), Exact
	case x == 0:
		return one[T]()
	}
	lo, hi := expLimits[T](1)
	xf := float64(x)
	switch {
	case xf > hi:
		return overflow[T](false, m)
	case xf < lo:
		return underflow[T](false, m)
	case xf == math.Trunc(xf):
		return Narrow[T](new(big.Float).SetMantExp(bigOne, int(xf)), m)
	}
	return unary(x, m, bigmath.Exp2, nil)
}

// Exp10 returns 10**x rounded in direction m.
func Exp10[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case IsInf(x, 1):
		return x, Exact
	case IsInf(x, -1):
		return zero[T](m), Exact
	case x == 0:
		return one[T]()
	}
	lo, hi := expLimits[T](math.Log2(10))
	xf := float64(x)
	switch {
	case xf > hi:
		return overflow[T](false, m)
	case xf < lo:
		return underflow[T](false, m)
	case xf > 0 && xf == math.Trunc(xf):
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(xf)), nil)
		return Narrow[T](new(big.Float).SetInt(p), m)
	}
	return unary(x, m, bigmath.Exp10, nil)
}

// Log returns the natural logarithm of x rounded in direction m.
func Log[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < 0:
		return NaN[T](), Exact
	case x == 0:
		return Inf[T](-1), Exact
	case IsInf(x, 1):
		return x, Exact
	case x == 1:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Log, nil)
}

// Log2 returns the base 2 logarithm of x rounded in direction m.
func Log2[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < 0:
		return NaN[T](), Exact
	case x == 0:
		return Inf[T](-1), Exact
	case IsInf(x, 1):
		return x, Exact
	case x == 1:
		return zero[T](m), Exact
	}
	if frac, exp := math.Frexp(float64(x)); frac == 0.5 {
		return T(exp - 1), Exact
	}
	return unary(x, m, bigmath.Log2, nil)
}

// Log10 returns the decimal logarithm of x rounded in direction m.
func Log10[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < 0:
		return NaN[T](), Exact
	case x == 0:
		return Inf[T](-1), Exact
	case IsInf(x, 1):
		return x, Exact
	case x == 1:
		return zero[T](m), Exact
	}
	// powers of ten up to 1e22 are exact in binary64
	if xf := float64(x); xf >= 10 && xf <= 1e22 {
		for k := 1; k <= 22; k++ {
			if math.Pow10(k) == xf {
				return T(k), Exact
			}
		}
	}
	return unary(x, m, bigmath.Log10, nil)
}

// Sin returns sin(x) rounded in direction m.
func Sin[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case !IsFinite(x):
		return NaN[T](), Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Sin, nil)
}

// Cos returns cos(x) rounded in direction m.
func Cos[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case !IsFinite(x):
		return NaN[T](), Exact
	case x == 0:
		return one[T]()
	}
	return unary(x, m, bigmath.Cos, nil)
}

// Tan returns tan(x) rounded in direction m.
func Tan[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case !IsFinite(x):
		return NaN[T](), Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Tan, nil)
}

// Asin returns asin(x) rounded in direction m.
func Asin[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < -1 || x > 1:
		return NaN[T](), Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Asin, nil)
}

// Acos returns acos(x) rounded in direction m.
func Acos[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < -1 || x > 1:
		return NaN[T](), Exact
	case x == 1:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Acos, nil)
}

// Atan returns atan(x) rounded in direction m.
func Atan[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Atan, nil)
}

// Atan2 returns the arc tangent of y/x rounded in direction m, using the
// signs of the two to determine the quadrant of the result. A zero y is
// treated as +0, so that Atan2(0, x) = π for x < 0. Atan2(0, 0) = 0.
func Atan2[T Float](y, x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(y) || IsNaN(x):
		return NaN[T](), Exact
	case y == 0:
		if x < 0 {
			return Pi[T](m)
		}
		return zero[T](m), Exact
	case IsInf(y, 0):
		s := int64(1)
		if y < 0 {
			s = -1
		}
		switch {
		case IsInf(x, 1):
			return piMul[T](s, 4, m)
		case IsInf(x, -1):
			return piMul[T](3*s, 4, m)
		}
		return piMul[T](s, 2, m)
	case IsInf(x, 1):
		if y < 0 {
			return T(math.Copysign(0, -1)), Exact
		}
		return zero[T](m), Exact
	case IsInf(x, -1):
		if y < 0 {
			return piMul[T](-1, 1, m)
		}
		return Pi[T](m)
	}
	by, bx := ToBig(y), ToBig(x)
	return eval[T](func(z *big.Float) *big.Float { return bigmath.Atan2(z, by, bx) }, nil, m)
}

// Sinh returns sinh(x) rounded in direction m.
func Sinh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || IsInf(x, 0):
		return x, Exact
	case x == 0:
		return zero[T](m), Exact
	}
	if _, hi := expLimits[T](math.Log2E); math.Abs(float64(x)) > hi+1 {
		return overflow[T](x < 0, m)
	}
	return unary(x, m, bigmath.Sinh, nil)
}

// Cosh returns cosh(x) rounded in direction m.
func Cosh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case IsInf(x, 0):
		return Inf[T](1), Exact
	case x == 0:
		return one[T]()
	}
	if _, hi := expLimits[T](math.Log2E); math.Abs(float64(x)) > hi+1 {
		return overflow[T](false, m)
	}
	return unary(x, m, bigmath.Cosh, nil)
}

// Tanh returns tanh(x) rounded in direction m.
func Tanh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x):
		return x, Exact
	case IsInf(x, 1):
		return 1, Exact
	case IsInf(x, -1):
		return -1, Exact
	case x == 0:
		return zero[T](m), Exact
	}
	// beyond this threshold, 1-|tanh(x)| = 2/(e**2|x|+1) < 2**-(prec+3)
	f := FormatOf[T]()
	if math.Abs(float64(x)) >= float64(f.Prec+4)*math.Ln2/2+1 {
		pred := NextDown(T(1))
		if x > 0 {
			if m == Down {
				return pred, Below
			}
			return 1, Above
		}
		if m == Up {
			return -pred, Above
		}
		return -1, Below
	}
	return unary(x, m, bigmath.Tanh, nil)
}

// Asinh returns asinh(x) rounded in direction m.
func Asinh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || IsInf(x, 0):
		return x, Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Asinh, nil)
}

// Acosh returns acosh(x) rounded in direction m.
func Acosh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < 1:
		return NaN[T](), Exact
	case IsInf(x, 1):
		return x, Exact
	case x == 1:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Acosh, nil)
}

// Atanh returns atanh(x) rounded in direction m.
func Atanh[T Float](x T, m Mode) (T, Accuracy) {
	switch {
	case IsNaN(x) || x < -1 || x > 1:
		return NaN[T](), Exact
	case x == 1:
		return Inf[T](1), Exact
	case x == -1:
		return Inf[T](-1), Exact
	case x == 0:
		return zero[T](m), Exact
	}
	return unary(x, m, bigmath.Atanh, nil)
}
