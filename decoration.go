// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// A Decoration summarizes what is known about the evaluation that produced an
// interval. Decorations are totally ordered: Ill < Trv < Def < Dac < Com.
type Decoration uint8

//go:generate go tool stringer -type=Decoration -linecomment

// Decorations.
const (
	// Ill marks NaI, "not an interval".
	Ill Decoration = iota // ill
	// Trv (trivial): nothing is known.
	Trv // trv
	// Def (defined): the function is defined over the whole input.
	Def // def
	// Dac (defined and continuous): the function is also continuous over the
	// whole input.
	Dac // dac
	// Com (common): Dac, and the input and result are bounded.
	Com // com
)

// ParseDecoration returns the decoration named s (ill, trv, def, dac or com).
func ParseDecoration(s string) (Decoration, bool) {
	for d := Ill; d <= Com; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return Ill, false
}

// IsValid reports whether d is one of the five known decorations.
func (d Decoration) IsValid() bool {
	return d <= Com
}

// Meet returns the weaker of d and e.
func (d Decoration) Meet(e Decoration) Decoration {
	if e < d {
		return e
	}
	return d
}

// Combine returns the weakest of ds, or Com if ds is empty.
//
// Ill is absorbing for Combine, but decorated operations never rely on it:
// any NaI operand makes the result NaI before decorations are combined.
func Combine(ds ...Decoration) Decoration {
	r := Com
	for _, d := range ds {
		r = r.Meet(d)
	}
	return r
}

// local returns the decoration of an operation result r computed over an
// input that was (inDomain) or was not entirely inside the domain of the
// operation, and on which the operation was (continuous) or was not
// continuous.
func local[T Float](r Interval[T], inDomain, continuous bool) Decoration {
	switch {
	case !inDomain || r.IsEmpty():
		return Trv
	case !continuous:
		return Def
	case !r.IsBounded():
		return Dac
	}
	return Com
}
