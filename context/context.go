// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides evaluation contexts for decorated intervals.
//
// Operators of the form:
//
//	func (c *Context[T]) UnaryOp(x interval.Decorated[T]) interval.Decorated[T]
//	func (c *Context[T]) BinaryOp(x, y interval.Decorated[T]) interval.Decorated[T]
//
// return the result of x.Op(args).
//
// A Context catches invalid representations: if an operand, or the bounds
// given to a constructor, violate the decorated interval invariants, the
// operation silently succeeds with a NaI result. Further operations with the
// context will be no-ops (they simply return NaI) until (*Context).Err is
// called to check for errors.
//
// NaI operands are not errors: they propagate to NaI results like they do
// outside of a Context.
package context

import (
	"github.com/db47h/interval"
)

// A Context is a wrapper around decorated interval operations that
// facilitates error handling.
type Context[T interval.Float] struct {
	err error
}

// New creates a new context.
func New[T interval.Float]() *Context[T] {
	return new(Context[T])
}

// Err returns the first error encountered since the last call to Err and clears
// the error state. The error wraps interval.ErrInvalid.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context[T]) fail(op string, x interval.Decorated[T]) {
	c.err = &interval.InvalidError{
		Op:        op,
		Lo:        float64(x.Bare.Lo),
		Hi:        float64(x.Bare.Hi),
		Dec:       x.Dec,
		Decorated: true,
	}
}

// check reports whether the context is error free and all of xs are valid.
func (c *Context[T]) check(op string, xs ...interval.Decorated[T]) bool {
	if c.err != nil {
		return false
	}
	for _, x := range xs {
		if !x.IsValid() {
			c.fail(op, x)
			return false
		}
	}
	return true
}

// New returns [lo, hi] with the strongest decoration it supports.
func (c *Context[T]) New(lo, hi T) interval.Decorated[T] {
	x := interval.Interval[T]{Lo: lo, Hi: hi}
	if c.err != nil {
		return interval.NaI[T]()
	}
	if !x.IsValid() {
		c.err = &interval.InvalidError{Op: "New", Lo: float64(lo), Hi: float64(hi)}
		return interval.NaI[T]()
	}
	return interval.NewDecorated(interval.New(lo, hi))
}

// Point returns the singleton [v, v] decorated with Com.
func (c *Context[T]) Point(v T) interval.Decorated[T] {
	return c.New(v, v)
}

// Make returns [lo, hi]_d. Unlike interval.MakeDecorated, an inconsistent
// combination is an error.
func (c *Context[T]) Make(lo, hi T, d interval.Decoration) interval.Decorated[T] {
	x := interval.Decorated[T]{Bare: interval.Interval[T]{Lo: lo, Hi: hi}, Dec: d}
	if !c.check("Make", x) {
		return interval.NaI[T]()
	}
	return x
}

// Unary returns f(x).
func (c *Context[T]) Unary(op string, f func(x interval.Decorated[T]) interval.Decorated[T], x interval.Decorated[T]) interval.Decorated[T] {
	if !c.check(op, x) {
		return interval.NaI[T]()
	}
	return f(x)
}

// Binary returns f(x, y).
func (c *Context[T]) Binary(op string, f func(x, y interval.Decorated[T]) interval.Decorated[T], x, y interval.Decorated[T]) interval.Decorated[T] {
	if !c.check(op, x, y) {
		return interval.NaI[T]()
	}
	return f(x, y)
}

// Add returns x+y.
func (c *Context[T]) Add(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Add", interval.Decorated[T].Add, x, y)
}

// Sub returns x-y.
func (c *Context[T]) Sub(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Sub", interval.Decorated[T].Sub, x, y)
}

// Mul returns x×y.
func (c *Context[T]) Mul(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Mul", interval.Decorated[T].Mul, x, y)
}

// Div returns x/y.
func (c *Context[T]) Div(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Div", interval.Decorated[T].Div, x, y)
}

// FMA returns x×y+u, computed with only one rounding per bound.
func (c *Context[T]) FMA(x, y, u interval.Decorated[T]) interval.Decorated[T] {
	if !c.check("FMA", x, y, u) {
		return interval.NaI[T]()
	}
	return x.FMA(y, u)
}

// Neg returns -x.
func (c *Context[T]) Neg(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Neg", interval.Decorated[T].Neg, x)
}

// Abs returns |x|.
func (c *Context[T]) Abs(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Abs", interval.Decorated[T].Abs, x)
}

// Sqr returns x².
func (c *Context[T]) Sqr(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Sqr", interval.Decorated[T].Sqr, x)
}

// Sqrt returns √x.
func (c *Context[T]) Sqrt(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Sqrt", interval.Decorated[T].Sqrt, x)
}

// Pown returns xⁿ.
func (c *Context[T]) Pown(x interval.Decorated[T], n int64) interval.Decorated[T] {
	if !c.check("Pown", x) {
		return interval.NaI[T]()
	}
	return x.Pown(n)
}

// Recip returns 1/x.
func (c *Context[T]) Recip(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Recip", interval.Decorated[T].Recip, x)
}

// Exp returns eˣ.
func (c *Context[T]) Exp(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Exp", interval.Decorated[T].Exp, x)
}

// Exp2 returns 2ˣ.
func (c *Context[T]) Exp2(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Exp2", interval.Decorated[T].Exp2, x)
}

// Exp10 returns 10ˣ.
func (c *Context[T]) Exp10(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Exp10", interval.Decorated[T].Exp10, x)
}

// Log returns the natural logarithm of x.
func (c *Context[T]) Log(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Log", interval.Decorated[T].Log, x)
}

// Log2 returns the base 2 logarithm of x.
func (c *Context[T]) Log2(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Log2", interval.Decorated[T].Log2, x)
}

// Log10 returns the base 10 logarithm of x.
func (c *Context[T]) Log10(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Log10", interval.Decorated[T].Log10, x)
}

// Sin returns sin(x).
func (c *Context[T]) Sin(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Sin", interval.Decorated[T].Sin, x)
}

// Cos returns cos(x).
func (c *Context[T]) Cos(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Cos", interval.Decorated[T].Cos, x)
}

// Tan returns tan(x).
func (c *Context[T]) Tan(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Tan", interval.Decorated[T].Tan, x)
}

// Asin returns asin(x).
func (c *Context[T]) Asin(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Asin", interval.Decorated[T].Asin, x)
}

// Acos returns acos(x).
func (c *Context[T]) Acos(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Acos", interval.Decorated[T].Acos, x)
}

// Atan returns atan(x).
func (c *Context[T]) Atan(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Atan", interval.Decorated[T].Atan, x)
}

// Sinh returns sinh(x).
func (c *Context[T]) Sinh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Sinh", interval.Decorated[T].Sinh, x)
}

// Cosh returns cosh(x).
func (c *Context[T]) Cosh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Cosh", interval.Decorated[T].Cosh, x)
}

// Tanh returns tanh(x).
func (c *Context[T]) Tanh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Tanh", interval.Decorated[T].Tanh, x)
}

// Asinh returns asinh(x).
func (c *Context[T]) Asinh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Asinh", interval.Decorated[T].Asinh, x)
}

// Acosh returns acosh(x).
func (c *Context[T]) Acosh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Acosh", interval.Decorated[T].Acosh, x)
}

// Atanh returns atanh(x).
func (c *Context[T]) Atanh(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Atanh", interval.Decorated[T].Atanh, x)
}

// Sign returns the sign of x.
func (c *Context[T]) Sign(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Sign", interval.Decorated[T].Sign, x)
}

// Ceil returns ⌈x⌉.
func (c *Context[T]) Ceil(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Ceil", interval.Decorated[T].Ceil, x)
}

// Floor returns ⌊x⌋.
func (c *Context[T]) Floor(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Floor", interval.Decorated[T].Floor, x)
}

// Trunc returns x rounded toward zero.
func (c *Context[T]) Trunc(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("Trunc", interval.Decorated[T].Trunc, x)
}

// RoundTiesToEven returns x rounded to the nearest integer, ties to even.
func (c *Context[T]) RoundTiesToEven(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("RoundTiesToEven", interval.Decorated[T].RoundTiesToEven, x)
}

// RoundTiesToAway returns x rounded to the nearest integer, ties away from zero.
func (c *Context[T]) RoundTiesToAway(x interval.Decorated[T]) interval.Decorated[T] {
	return c.Unary("RoundTiesToAway", interval.Decorated[T].RoundTiesToAway, x)
}

// Rootn returns the real nth root of x.
func (c *Context[T]) Rootn(x interval.Decorated[T], n int64) interval.Decorated[T] {
	if !c.check("Rootn", x) {
		return interval.NaI[T]()
	}
	return x.Rootn(n)
}

// Pow returns xʸ.
func (c *Context[T]) Pow(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Pow", interval.Decorated[T].Pow, x, y)
}

// Atan2 returns atan2(y, x).
func (c *Context[T]) Atan2(y, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Atan2", interval.Decorated[T].Atan2, y, x)
}

// Min returns the pointwise minimum of x and y.
func (c *Context[T]) Min(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Min", interval.Decorated[T].Min, x, y)
}

// Max returns the pointwise maximum of x and y.
func (c *Context[T]) Max(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Max", interval.Decorated[T].Max, x, y)
}

// Intersection returns x ∩ y.
func (c *Context[T]) Intersection(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("Intersection", interval.Decorated[T].Intersection, x, y)
}

// ConvexHull returns the convex hull of x ∪ y.
func (c *Context[T]) ConvexHull(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("ConvexHull", interval.Decorated[T].ConvexHull, x, y)
}

// CancelMinus returns the tightest z such that y+z ⊆ x.
func (c *Context[T]) CancelMinus(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("CancelMinus", interval.Decorated[T].CancelMinus, x, y)
}

// CancelPlus returns CancelMinus(x, -y).
func (c *Context[T]) CancelPlus(x, y interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("CancelPlus", interval.Decorated[T].CancelPlus, x, y)
}

// SqrRev returns the subset of x that Sqr maps into r.
func (c *Context[T]) SqrRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("SqrRev", interval.Decorated[T].SqrRev, r, x)
}

// AbsRev returns the subset of x that Abs maps into r.
func (c *Context[T]) AbsRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("AbsRev", interval.Decorated[T].AbsRev, r, x)
}

// SinRev returns the subset of x that Sin maps into r.
func (c *Context[T]) SinRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("SinRev", interval.Decorated[T].SinRev, r, x)
}

// CosRev returns the subset of x that Cos maps into r.
func (c *Context[T]) CosRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("CosRev", interval.Decorated[T].CosRev, r, x)
}

// TanRev returns the subset of x that Tan maps into r.
func (c *Context[T]) TanRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("TanRev", interval.Decorated[T].TanRev, r, x)
}

// CoshRev returns the subset of x that Cosh maps into r.
func (c *Context[T]) CoshRev(r, x interval.Decorated[T]) interval.Decorated[T] {
	return c.Binary("CoshRev", interval.Decorated[T].CoshRev, r, x)
}

// PownRev returns the subset of x that Pown(·, n) maps into r.
func (c *Context[T]) PownRev(r, x interval.Decorated[T], n int64) interval.Decorated[T] {
	if !c.check("PownRev", r, x) {
		return interval.NaI[T]()
	}
	return r.PownRev(x, n)
}

// MulRev returns the subset of x whose products with b lie in r.
func (c *Context[T]) MulRev(b, r, x interval.Decorated[T]) interval.Decorated[T] {
	if !c.check("MulRev", b, r, x) {
		return interval.NaI[T]()
	}
	return b.MulRev(r, x)
}

// MulRevToPair returns the subset of the reals whose products with b lie in r,
// as a pair of intervals.
func (c *Context[T]) MulRevToPair(b, r interval.Decorated[T]) (interval.Decorated[T], interval.Decorated[T]) {
	if !c.check("MulRevToPair", b, r) {
		return interval.NaI[T](), interval.NaI[T]()
	}
	return b.MulRevToPair(r)
}

// DivRev1 returns the subset of x whose quotients x/b lie in r.
func (c *Context[T]) DivRev1(b, r, x interval.Decorated[T]) interval.Decorated[T] {
	if !c.check("DivRev1", b, r, x) {
		return interval.NaI[T]()
	}
	return b.DivRev1(r, x)
}

// DivRev2 returns the subset of x whose quotients a/x lie in r.
func (c *Context[T]) DivRev2(a, r, x interval.Decorated[T]) interval.Decorated[T] {
	if !c.check("DivRev2", a, r, x) {
		return interval.NaI[T]()
	}
	return a.DivRev2(r, x)
}
