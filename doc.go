// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package interval implements IEEE 1788-2015 interval arithmetic over binary32
and binary64 bounds, in both bare and decorated flavors.

A bare interval is a closed, connected set of extended reals [Lo, Hi], or the
empty set:

	x := interval.New(1.0, 2.0)         // [1, 2]
	y := interval.Point(0.1)            // [0.1, 0.1]
	z := interval.Add(x, y)             // [1.1, 2.1], rounded outward

Every operation returns an enclosure of the exact range of the underlying
point function over its operands: bounds are computed with directed rounding
(see package round) and elementary functions are evaluated with enough extra
precision for the result to be the tightest representable enclosure.

Operations are generic functions over the bound type:

	func Op[T Float](x Interval[T]) Interval[T]      // unary
	func Op[T Float](x, y Interval[T]) Interval[T]   // binary

Points outside the natural domain of a function are discarded: Sqrt([-4, 4])
is [0, 2], Log([-1, 0]) is empty and Div([1, 1], [-1, 1]) is Entire.

# Decorated intervals

A Decorated interval pairs a bare interval with a Decoration recording what
is known about the evaluation that produced it:

	com  the function is defined and continuous, operands and result bounded
	dac  defined and continuous
	def  defined
	trv  nothing is known
	ill  not an interval (NaI)

Decorated operations are methods. They propagate the weakest decoration of
their operands:

	x := interval.NewDecorated(interval.New(1.0, 2.0))    // [1, 2]_com
	r := x.Div(interval.NewDecorated(interval.New(-1.0, 1.0)))
	// r is [entire]_trv: 0 is outside the domain of division

NaI propagates silently through decorated operations. Numeric functions
return NaN for NaI and boolean functions return false.

# Invalid representations

Operations never panic or return errors on malformed operands such as [2, 1]
or a Com decoration on an unbounded interval. Instead, the invalid value is
reported through a side channel, counted (see InvalidCount) and logged (see
SetLogger), and the operation returns Empty, NaI, NaN, Undefined or false. A
Handler installed with SetHandler receives an *InvalidError for each
occurrence; errors.Is(err, ErrInvalid) reports true for all of them.

Package context offers a per-computation alternative that collects the first
invalid value instead of using the global handler.

# Reverse operations

Reverse functions such as SqrRev or SinRev return an enclosure of the set of
points of x that a function maps into c. They are used to contract boxes in
constraint solvers:

	interval.SqrRev(interval.New(4.0, 4.0), interval.Entire[float64]())  // [-2, 2]

MulRevToPair returns its result as two intervals when the divisor contains
zero in its interior.

# Zero

The zero of a lower bound is always -0 and the zero of an upper bound +0
after normalization, and both are printed as 0.
*/
package interval
