// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// A Decorated interval pairs a bare interval with a decoration.
//
// NaI ("not an interval") is the empty bare interval decorated with Ill. A
// decorated interval is valid if Dec is a known decoration, Dec is Ill only
// for NaI, an empty bare interval is only decorated with Trv or Ill and Com
// is only used with a bounded non-empty bare interval.
//
// The zero value is NaI with a non-empty bare part, which is invalid: use
// NewDecorated, MakeDecorated or NaI.
type Decorated[T Float] struct {
	Bare Interval[T]
	Dec  Decoration
}

// NaI returns the "not an interval" value.
func NaI[T Float]() Decorated[T] {
	return Decorated[T]{Empty[T](), Ill}
}

// NewDecorated returns x decorated with the strongest decoration it
// supports: Com if bounded and non-empty, Dac if unbounded, Trv if empty. An
// invalid x is signalled and yields NaI.
func NewDecorated[T Float](x Interval[T]) Decorated[T] {
	if !x.IsValid() {
		signalBare("NewDecorated", x)
		return NaI[T]()
	}
	return Decorated[T]{x, local(x, true, true)}
}

// MakeDecorated returns x decorated with d. Inconsistent combinations are
// signalled and degrade to a safe value: an invalid x or an unknown
// decoration yields NaI, Com on an unbounded x is lowered to Dac, any
// decoration other than Trv or Ill on an empty x is lowered to Trv.
// MakeDecorated(x, Ill) is NaI for an empty x.
func MakeDecorated[T Float](x Interval[T], d Decoration) Decorated[T] {
	r := Decorated[T]{x, d}
	switch {
	case !x.IsValid() || !d.IsValid() || d == Ill && !x.IsEmpty():
		signalDecorated("MakeDecorated", r)
		return NaI[T]()
	case x.IsEmpty() && d > Trv:
		signalDecorated("MakeDecorated", r)
		r.Dec = Trv
	case d == Com && !x.IsBounded():
		signalDecorated("MakeDecorated", r)
		r.Dec = Dac
	}
	return r
}

// IsValid reports whether x satisfies the decorated representation
// invariants.
func (x Decorated[T]) IsValid() bool {
	switch {
	case !x.Dec.IsValid() || !x.Bare.IsValid():
		return false
	case x.Dec == Ill:
		return x.Bare.IsEmpty()
	case x.Bare.IsEmpty():
		return x.Dec == Trv
	case x.Dec == Com:
		return x.Bare.IsBounded()
	}
	return true
}

// IsNaI reports whether x is NaI.
func (x Decorated[T]) IsNaI() bool {
	return x.Dec == Ill
}

// String returns x formatted as [lo, hi]_dec or [nai].
func (x Decorated[T]) String() string {
	if x.Dec == Ill {
		return "[nai]"
	}
	return x.Bare.String() + "_" + x.Dec.String()
}

// checkDecorated reports whether all operands are valid and not NaI,
// signalling invalid ones.
func checkDecorated[T Float](op string, xs ...Decorated[T]) bool {
	ok := true
	for _, x := range xs {
		if !x.IsValid() {
			signalDecorated(op, x)
			ok = false
		} else if x.Dec == Ill {
			ok = false
		}
	}
	return ok
}

// decorate returns r decorated with the weakest of the operand decorations
// and the local decoration of r.
func decorate[T Float](r Interval[T], inDomain, continuous bool, xs ...Decorated[T]) Decorated[T] {
	d := local(r, inDomain, continuous)
	for _, x := range xs {
		d = d.Meet(x.Dec)
	}
	if r.IsEmpty() {
		d = Trv
	}
	return Decorated[T]{r, d}
}

// trivial returns r decorated with Trv.
func trivial[T Float](r Interval[T]) Decorated[T] {
	return Decorated[T]{r, Trv}
}
