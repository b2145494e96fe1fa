// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// Intersection returns x ∩ y.
func Intersection[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("Intersection", x, y) || anyEmpty(x, y) {
		return Empty[T]()
	}
	lo, hi := max(x.Lo, y.Lo), min(x.Hi, y.Hi)
	if lo > hi {
		return Empty[T]()
	}
	return norm(lo, hi)
}

// ConvexHull returns the smallest interval containing both x and y.
func ConvexHull[T Float](x, y Interval[T]) Interval[T] {
	if !checkBare("ConvexHull", x, y) {
		return Empty[T]()
	}
	switch {
	case x.IsEmpty():
		return y
	case y.IsEmpty():
		return x
	}
	return norm(min(x.Lo, y.Lo), max(x.Hi, y.Hi))
}

// Intersection returns x ∩ y, decorated with Trv.
func (x Decorated[T]) Intersection(y Decorated[T]) Decorated[T] {
	if !checkDecorated("Intersection", x, y) {
		return NaI[T]()
	}
	return trivial(Intersection(x.Bare, y.Bare))
}

// ConvexHull returns the convex hull of x and y, decorated with Trv.
func (x Decorated[T]) ConvexHull(y Decorated[T]) Decorated[T] {
	if !checkDecorated("ConvexHull", x, y) {
		return NaI[T]()
	}
	return trivial(ConvexHull(x.Bare, y.Bare))
}
