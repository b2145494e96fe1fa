// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "github.com/db47h/interval/round"

// Equal reports whether x and y denote the same set.
func Equal[T Float](x, y Interval[T]) bool {
	if !checkBare("Equal", x, y) {
		return false
	}
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}
	return x.Lo == y.Lo && x.Hi == y.Hi
}

// Subset reports whether x ⊆ y.
func Subset[T Float](x, y Interval[T]) bool {
	switch {
	case !checkBare("Subset", x, y):
		return false
	case x.IsEmpty():
		return true
	case y.IsEmpty():
		return false
	}
	return y.Lo <= x.Lo && x.Hi <= y.Hi
}

// Less reports whether x ≤ y, comparing bounds pairwise.
func Less[T Float](x, y Interval[T]) bool {
	if !checkBare("Less", x, y) {
		return false
	}
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}
	return x.Lo <= y.Lo && x.Hi <= y.Hi
}

// Precedes reports whether every member of x is less than or equal to every
// member of y.
func Precedes[T Float](x, y Interval[T]) bool {
	switch {
	case !checkBare("Precedes", x, y):
		return false
	case x.IsEmpty() || y.IsEmpty():
		return true
	}
	return x.Hi <= y.Lo
}

// strictlyBelow reports whether a < b, or both are the same infinity.
func strictlyBelow[T Float](a, b T, inf int) bool {
	return a < b || a == b && round.IsInf(a, inf)
}

// Interior reports whether x is contained in the interior of y, in the
// topology of the extended reals.
func Interior[T Float](x, y Interval[T]) bool {
	switch {
	case !checkBare("Interior", x, y):
		return false
	case x.IsEmpty():
		return true
	case y.IsEmpty():
		return false
	}
	return strictlyBelow(y.Lo, x.Lo, -1) && strictlyBelow(x.Hi, y.Hi, 1)
}

// StrictLess is the strict version of Less.
func StrictLess[T Float](x, y Interval[T]) bool {
	if !checkBare("StrictLess", x, y) {
		return false
	}
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}
	return strictlyBelow(x.Lo, y.Lo, -1) && strictlyBelow(x.Hi, y.Hi, 1)
}

// StrictPrecedes is the strict version of Precedes.
func StrictPrecedes[T Float](x, y Interval[T]) bool {
	switch {
	case !checkBare("StrictPrecedes", x, y):
		return false
	case x.IsEmpty() || y.IsEmpty():
		return true
	}
	return x.Hi < y.Lo
}

// Disjoint reports whether x ∩ y is empty.
func Disjoint[T Float](x, y Interval[T]) bool {
	switch {
	case !checkBare("Disjoint", x, y):
		return false
	case x.IsEmpty() || y.IsEmpty():
		return true
	}
	return x.Hi < y.Lo || y.Hi < x.Lo
}

// predicate applies f to the bare parts of x and y, answering false if
// either is NaI.
func predicate[T Float](op string, x, y Decorated[T], f func(x, y Interval[T]) bool) bool {
	if !checkDecorated(op, x, y) {
		return false
	}
	return f(x.Bare, y.Bare)
}

// IsEmpty reports whether x is empty. NaI is not empty.
func (x Decorated[T]) IsEmpty() bool {
	return checkDecorated("IsEmpty", x) && x.Bare.IsEmpty()
}

// IsEntire reports whether x is Entire.
func (x Decorated[T]) IsEntire() bool {
	return checkDecorated("IsEntire", x) && x.Bare.IsEntire()
}

// IsCommon reports whether x is bounded and non-empty.
func (x Decorated[T]) IsCommon() bool {
	return checkDecorated("IsCommon", x) && x.Bare.IsCommon()
}

// IsSingleton reports whether x contains a single real number.
func (x Decorated[T]) IsSingleton() bool {
	return checkDecorated("IsSingleton", x) && x.Bare.IsSingleton()
}

// IsMember reports whether the real number m belongs to x.
func (x Decorated[T]) IsMember(m T) bool {
	return checkDecorated("IsMember", x) && x.Bare.IsMember(m)
}

func (x Decorated[T]) Equal(y Decorated[T]) bool {
	return predicate("Equal", x, y, Equal[T])
}

func (x Decorated[T]) Subset(y Decorated[T]) bool {
	return predicate("Subset", x, y, Subset[T])
}

func (x Decorated[T]) Less(y Decorated[T]) bool {
	return predicate("Less", x, y, Less[T])
}

func (x Decorated[T]) Precedes(y Decorated[T]) bool {
	return predicate("Precedes", x, y, Precedes[T])
}

func (x Decorated[T]) Interior(y Decorated[T]) bool {
	return predicate("Interior", x, y, Interior[T])
}

func (x Decorated[T]) StrictLess(y Decorated[T]) bool {
	return predicate("StrictLess", x, y, StrictLess[T])
}

func (x Decorated[T]) StrictPrecedes(y Decorated[T]) bool {
	return predicate("StrictPrecedes", x, y, StrictPrecedes[T])
}

func (x Decorated[T]) Disjoint(y Decorated[T]) bool {
	return predicate("Disjoint", x, y, Disjoint[T])
}
