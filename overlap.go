// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// Overlap describes the relative position of two intervals on the real line.
// The zero value is Undefined.
//
// With x = [a, b] and y = [c, d] both non-empty, the states are:
//
//	Before        b < c
//	Meets         a < b = c < d
//	Overlaps      a < c < b < d
//	Starts        a = c, b < d
//	ContainedBy   c < a, b < d
//	Finishes      c < a, b = d
//	Equals        a = c, b = d
//	FinishedBy    a < c, b = d
//	Contains      a < c, d < b
//	StartedBy     a = c, d < b
//	OverlappedBy  c < a < d < b
//	MetBy         c < d = a < b
//	After         d < a
type Overlap uint8

//go:generate go tool stringer -type=Overlap -linecomment

// Overlap states.
const (
	Undefined    Overlap = iota // undefined
	BothEmpty                   // both_empty
	FirstEmpty                  // first_empty
	SecondEmpty                 // second_empty
	Before                      // before
	Meets                       // meets
	Overlaps                    // overlaps
	Starts                      // starts
	ContainedBy                 // contained_by
	Finishes                    // finishes
	Equals                      // equal
	FinishedBy                  // finished_by
	Contains                    // contains
	StartedBy                   // started_by
	OverlappedBy                // overlapped_by
	MetBy                       // met_by
	After                       // after
)

// Reverse returns the state of (y, x) given the state o of (x, y).
func (o Overlap) Reverse() Overlap {
	switch o {
	case FirstEmpty:
		return SecondEmpty
	case SecondEmpty:
		return FirstEmpty
	case Before, Meets, Overlaps, Starts, ContainedBy, Finishes:
		return After - (o - Before)
	case FinishedBy, Contains, StartedBy, OverlappedBy, MetBy, After:
		return Before + (After - o)
	}
	return o
}

func cmpBound[T Float](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// OverlapOf returns the relative position of x and y.
func OverlapOf[T Float](x, y Interval[T]) Overlap {
	if !checkBare("Overlap", x, y) {
		return Undefined
	}
	switch xe, ye := x.IsEmpty(), y.IsEmpty(); {
	case xe && ye:
		return BothEmpty
	case xe:
		return FirstEmpty
	case ye:
		return SecondEmpty
	}
	switch lo, hi := cmpBound(x.Lo, y.Lo), cmpBound(x.Hi, y.Hi); {
	case lo == 0 && hi == 0:
		return Equals
	case lo == 0 && hi < 0:
		return Starts
	case lo == 0:
		return StartedBy
	case hi == 0 && lo < 0:
		return FinishedBy
	case hi == 0:
		return Finishes
	case lo > 0 && hi < 0:
		return ContainedBy
	case lo < 0 && hi > 0:
		return Contains
	case lo < 0:
		switch cmpBound(x.Hi, y.Lo) {
		case -1:
			return Before
		case 0:
			return Meets
		}
		return Overlaps
	}
	switch cmpBound(x.Lo, y.Hi) {
	case 1:
		return After
	case 0:
		return MetBy
	}
	return OverlappedBy
}

// Overlap returns the relative position of x and y, or Undefined if either is
// NaI.
func (x Decorated[T]) Overlap(y Decorated[T]) Overlap {
	if !checkDecorated("Overlap", x, y) {
		return Undefined
	}
	return OverlapOf(x.Bare, y.Bare)
}
