// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "github.com/db47h/interval/round"

// CancelMinus returns the tightest interval z such that y + z ⊇ x, the
// inverse of addition. It returns Entire if no such z exists: when x or y is
// unbounded, or when y is wider than x.
func CancelMinus[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("CancelMinus", x, y) {
		return Empty[T]()
	}
	return cancelMinus(x, y)
}

func cancelMinus[T Float](x, y Interval[T]) Interval[T] {
	switch {
	case x.IsEmpty() && y.IsBounded():
		return Empty[T]()
	case !x.IsBounded() || !y.IsBounded() || y.IsEmpty():
		return Entire[T]()
	}
	switch OverlapOf(x, y) {
	case Starts, ContainedBy, Finishes:
		return Entire[T]()
	}
	if width(x).Cmp(width(y)) < 0 {
		return Entire[T]()
	}
	return norm(val(round.Sub(x.Lo, y.Lo, round.Down)), val(round.Sub(x.Hi, y.Hi, round.Up)))
}

// CancelPlus returns CancelMinus(x, -y).
func CancelPlus[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("CancelPlus", x, y) {
		return Empty[T]()
	}
	return cancelMinus(x, Neg(y))
}

// CancelMinus returns CancelMinus(x.Bare, y.Bare) decorated with Trv.
func (x Decorated[T]) CancelMinus(y Decorated[T]) Decorated[T] {
	if !checkDecorated("CancelMinus", x, y) {
		return NaI[T]()
	}
	return trivial(cancelMinus(x.Bare, y.Bare))
}

// CancelPlus returns CancelPlus(x.Bare, y.Bare) decorated with Trv.
func (x Decorated[T]) CancelPlus(y Decorated[T]) Decorated[T] {
	if !checkDecorated("CancelPlus", x, y) {
		return NaI[T]()
	}
	return trivial(cancelMinus(x.Bare, Neg(y.Bare)))
}
