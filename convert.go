// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "github.com/db47h/interval/round"

// ConvertHull returns the tightest interval of T containing x. Widening
// conversions are exact.
func ConvertHull[T, S Float](x Interval[S]) Interval[T] {
	if !checkBare("ConvertHull", x) || x.IsEmpty() {
		return Empty[T]()
	}
	return norm(val(round.Convert[T](x.Lo, round.Down)), val(round.Convert[T](x.Hi, round.Up)))
}

// ConvertDecorated returns the tightest decorated interval of T containing x.
// The decoration is kept, except that Com becomes Dac if a bound overflows to
// infinity.
func ConvertDecorated[T, S Float](x Decorated[S]) Decorated[T] {
	if !checkDecorated("ConvertDecorated", x) {
		return NaI[T]()
	}
	r := ConvertHull[T](x.Bare)
	d := x.Dec
	if d == Com && !r.IsBounded() {
		d = Dac
	}
	return Decorated[T]{r, d}
}

// Mixed1 evaluates f on x widened to float64 and returns the result narrowed
// to T.
func Mixed1[T, S Float](f func(Interval[float64]) Interval[float64], x Interval[S]) Interval[T] {
	return ConvertHull[T](f(ConvertHull[float64](x)))
}

// Mixed2 is the binary version of Mixed1.
func Mixed2[T, S1, S2 Float](f func(x, y Interval[float64]) Interval[float64], x Interval[S1], y Interval[S2]) Interval[T] {
	return ConvertHull[T](f(ConvertHull[float64](x), ConvertHull[float64](y)))
}

// Mixed3 is the ternary version of Mixed1.
func Mixed3[T, S1, S2, S3 Float](f func(x, y, z Interval[float64]) Interval[float64], x Interval[S1], y Interval[S2], z Interval[S3]) Interval[T] {
	return ConvertHull[T](f(ConvertHull[float64](x), ConvertHull[float64](y), ConvertHull[float64](z)))
}
