// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package round provides correctly rounded floating-point operations in an
// explicit rounding direction.
//
// Every function takes the rounding direction as its last argument and
// returns the rounded result together with an Accuracy describing the
// rounding error relative to the exact result:
//
//	func F[T Float](x T, m Mode) (T, Accuracy)
//
// There is no global rounding state: intermediate values are computed with
// math/big at an explicit precision and rounding mode and then narrowed into
// the target format, including its subnormal range.
//
// NaN arguments propagate to the result. Arguments outside of a function's
// domain yield NaN.
package round

import (
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of supported bound formats.
type Float interface {
	constraints.Float
}

// Mode is a rounding direction.
type Mode byte

// Rounding directions.
const (
	Down    Mode = iota // toward -Inf
	Up                  // toward +Inf
	Nearest             // to nearest, ties to even
)

// big returns the math/big rounding mode for m.
func (m Mode) big() big.RoundingMode {
	switch m {
	case Down:
		return big.ToNegativeInf
	case Up:
		return big.ToPositiveInf
	}
	return big.ToNearestEven
}

// Accuracy describes the rounding error of a result, relative to the exact
// value.
type Accuracy int8

// Constants describing the Accuracy of a result.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate go tool stringer -type=Mode,Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// A Format describes a binary floating-point interchange format.
type Format struct {
	Prec uint // mantissa precision in bits, including the implicit bit
	Emin int  // exponent of the smallest normal number
	Emax int  // exponent of the largest finite number
}

// IEEE 754 binary interchange formats.
var (
	Binary32 = Format{Prec: 24, Emin: -126, Emax: 127}
	Binary64 = Format{Prec: 53, Emin: -1022, Emax: 1023}
)

// FormatOf returns the format of T.
func FormatOf[T Float]() Format {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return Binary32
	}
	return Binary64
}

// MaxFloat returns the largest finite value of f.
func (f Format) MaxFloat() float64 {
	return math.Ldexp(2-math.Ldexp(1, 1-int(f.Prec)), f.Emax)
}

// SmallestNonzero returns the smallest positive subnormal value of f.
func (f Format) SmallestNonzero() float64 {
	return math.Ldexp(1, f.Emin-int(f.Prec)+1)
}

// SmallestNormal returns the smallest positive normal value of f.
func (f Format) SmallestNormal() float64 {
	return math.Ldexp(1, f.Emin)
}

// MaxFloat returns the largest finite value of T.
func MaxFloat[T Float]() T {
	return T(FormatOf[T]().MaxFloat())
}

// SmallestNonzero returns the smallest positive value of T.
func SmallestNonzero[T Float]() T {
	return T(FormatOf[T]().SmallestNonzero())
}

// Inf returns +Inf if sign >= 0, -Inf if sign < 0.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is a NaN.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity, according to sign (see math.IsInf).
func IsInf[T Float](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !math.IsInf(float64(x), 0)
}

// Signbit reports whether x is negative or negative zero.
func Signbit[T Float](x T) bool {
	return math.Signbit(float64(x))
}

// NextUp returns the smallest value of T greater than x.
func NextUp[T Float](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math.Nextafter32(float32(x), float32(math.Inf(1))))
	}
	return T(math.Nextafter(float64(x), math.Inf(1)))
}

// NextDown returns the largest value of T less than x.
func NextDown[T Float](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math.Nextafter32(float32(x), float32(math.Inf(-1))))
	}
	return T(math.Nextafter(float64(x), math.Inf(-1)))
}

// zero returns a zero with the sign appropriate for an exact zero result
// rounded in direction m: -0 for Down, +0 otherwise.
func zero[T Float](m Mode) T {
	if m == Down {
		return T(math.Copysign(0, -1))
	}
	return 0
}

// Zero returns the zero of T for an exact zero rounded in direction m.
func Zero[T Float](m Mode) T {
	return zero[T](m)
}

// ToBig returns x as a *big.Float. x must not be a NaN.
func ToBig[T Float](x T) *big.Float {
	return new(big.Float).SetFloat64(float64(x))
}

// Narrow rounds x into T in direction m and returns the result and its
// accuracy. Results below the smallest normal value of T are rounded into the
// subnormal range of T with the effective precision of that range; results
// beyond the largest finite value become ±Inf or ±MaxFloat, depending on m.
// An exact zero is -0 for Down and +0 otherwise.
func Narrow[T Float](x *big.Float, m Mode) (T, Accuracy) {
	f := FormatOf[T]()
	switch {
	case x.IsInf():
		return Inf[T](x.Sign()), Exact
	case x.Sign() == 0:
		return zero[T](m), Exact
	}

	neg := x.Sign() < 0
	e := x.MantExp(nil) - 1 // x = 1.xxx × 2**e
	p := int(f.Prec)
	if e < f.Emin {
		p -= f.Emin - e
	}

	if p <= 0 {
		// 0 < |x| < SmallestNonzero
		tiny := f.SmallestNonzero()
		up := false // round the magnitude up to tiny
		switch m {
		case Down:
			up = neg
		case Up:
			up = !neg
		default:
			if p == 0 {
				h := new(big.Float).SetMantExp(big.NewFloat(1), f.Emin-int(f.Prec))
				up = new(big.Float).Abs(x).Cmp(h) > 0
			}
		}
		r := 0.0
		if up {
			r = tiny
		}
		if neg {
			r = -r
			if !up {
				r = math.Copysign(0, -1)
			}
		}
		return T(r), makeAcc(up != neg)
	}

	r := new(big.Float).SetMode(m.big()).SetPrec(uint(p)).Set(x)
	acc := Accuracy(r.Acc())

	if r.MantExp(nil)-1 > f.Emax {
		// overflow
		if neg {
			if m == Up {
				return T(-f.MaxFloat()), Above
			}
			return Inf[T](-1), Below
		}
		if m == Down {
			return T(f.MaxFloat()), Below
		}
		return Inf[T](1), Above
	}
	v, _ := r.Float64()
	return T(v), acc
}

// Convert rounds x into T in direction m. NaNs propagate; infinities are
// exact; a zero is returned with the sign of an exact zero rounded in
// direction m.
func Convert[T, S Float](x S, m Mode) (T, Accuracy) {
	if IsNaN(x) {
		return NaN[T](), Exact
	}
	return Narrow[T](ToBig(x), m)
}
