// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/db47h/interval"
)

// An operation takes arity intervals, plus an integer exponent if intArg is
// set, and returns a decorated interval, a pair of them, a number, a boolean
// or an overlap state.
type operation[T interval.Float] struct {
	arity  int
	intArg bool
	eval   func(xs []interval.Decorated[T], n int64) any
}

func unary[T interval.Float](f func(x interval.Decorated[T]) interval.Decorated[T]) operation[T] {
	return operation[T]{1, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0]) }}
}

func binary[T interval.Float](f func(x, y interval.Decorated[T]) interval.Decorated[T]) operation[T] {
	return operation[T]{2, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0], xs[1]) }}
}

func ternary[T interval.Float](f func(x, y, z interval.Decorated[T]) interval.Decorated[T]) operation[T] {
	return operation[T]{3, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0], xs[1], xs[2]) }}
}

func numeric[T interval.Float](f func(x interval.Decorated[T]) T) operation[T] {
	return operation[T]{1, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0]) }}
}

func test1[T interval.Float](f func(x interval.Decorated[T]) bool) operation[T] {
	return operation[T]{1, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0]) }}
}

func test2[T interval.Float](f func(x, y interval.Decorated[T]) bool) operation[T] {
	return operation[T]{2, false, func(xs []interval.Decorated[T], _ int64) any { return f(xs[0], xs[1]) }}
}

func operations[T interval.Float]() map[string]operation[T] {
	return map[string]operation[T]{
		"neg":                unary(interval.Decorated[T].Neg),
		"recip":              unary(interval.Decorated[T].Recip),
		"sqr":                unary(interval.Decorated[T].Sqr),
		"sqrt":               unary(interval.Decorated[T].Sqrt),
		"exp":                unary(interval.Decorated[T].Exp),
		"exp2":               unary(interval.Decorated[T].Exp2),
		"exp10":              unary(interval.Decorated[T].Exp10),
		"log":                unary(interval.Decorated[T].Log),
		"log2":               unary(interval.Decorated[T].Log2),
		"log10":              unary(interval.Decorated[T].Log10),
		"sin":                unary(interval.Decorated[T].Sin),
		"cos":                unary(interval.Decorated[T].Cos),
		"tan":                unary(interval.Decorated[T].Tan),
		"asin":               unary(interval.Decorated[T].Asin),
		"acos":               unary(interval.Decorated[T].Acos),
		"atan":               unary(interval.Decorated[T].Atan),
		"sinh":               unary(interval.Decorated[T].Sinh),
		"cosh":               unary(interval.Decorated[T].Cosh),
		"tanh":               unary(interval.Decorated[T].Tanh),
		"asinh":              unary(interval.Decorated[T].Asinh),
		"acosh":              unary(interval.Decorated[T].Acosh),
		"atanh":              unary(interval.Decorated[T].Atanh),
		"sign":               unary(interval.Decorated[T].Sign),
		"ceil":               unary(interval.Decorated[T].Ceil),
		"floor":              unary(interval.Decorated[T].Floor),
		"trunc":              unary(interval.Decorated[T].Trunc),
		"round_ties_to_even": unary(interval.Decorated[T].RoundTiesToEven),
		"round_ties_to_away": unary(interval.Decorated[T].RoundTiesToAway),
		"abs":                unary(interval.Decorated[T].Abs),

		"add":          binary(interval.Decorated[T].Add),
		"sub":          binary(interval.Decorated[T].Sub),
		"mul":          binary(interval.Decorated[T].Mul),
		"div":          binary(interval.Decorated[T].Div),
		"pow":          binary(interval.Decorated[T].Pow),
		"atan2":        binary(interval.Decorated[T].Atan2),
		"min":          binary(interval.Decorated[T].Min),
		"max":          binary(interval.Decorated[T].Max),
		"intersection": binary(interval.Decorated[T].Intersection),
		"convex_hull":  binary(interval.Decorated[T].ConvexHull),
		"cancel_minus": binary(interval.Decorated[T].CancelMinus),
		"cancel_plus":  binary(interval.Decorated[T].CancelPlus),
		"sqr_rev":      binary(interval.Decorated[T].SqrRev),
		"abs_rev":      binary(interval.Decorated[T].AbsRev),
		"cosh_rev":     binary(interval.Decorated[T].CoshRev),
		"sin_rev":      binary(interval.Decorated[T].SinRev),
		"cos_rev":      binary(interval.Decorated[T].CosRev),
		"tan_rev":      binary(interval.Decorated[T].TanRev),

		"fma":      ternary(interval.Decorated[T].FMA),
		"mul_rev":  ternary(interval.Decorated[T].MulRev),
		"div_rev1": ternary(interval.Decorated[T].DivRev1),
		"div_rev2": ternary(interval.Decorated[T].DivRev2),

		"pown":     {1, true, func(xs []interval.Decorated[T], n int64) any { return xs[0].Pown(n) }},
		"rootn":    {1, true, func(xs []interval.Decorated[T], n int64) any { return xs[0].Rootn(n) }},
		"pown_rev": {2, true, func(xs []interval.Decorated[T], n int64) any { return xs[0].PownRev(xs[1], n) }},
		"mul_rev_to_pair": {2, false, func(xs []interval.Decorated[T], _ int64) any {
			p, q := xs[0].MulRevToPair(xs[1])
			return [2]interval.Decorated[T]{p, q}
		}},
		"overlap": {2, false, func(xs []interval.Decorated[T], _ int64) any { return xs[0].Overlap(xs[1]) }},

		"inf": numeric(interval.Decorated[T].Inf),
		"sup": numeric(interval.Decorated[T].Sup),
		"mid": numeric(interval.Decorated[T].Mid),
		"rad": numeric(interval.Decorated[T].Rad),
		"wid": numeric(interval.Decorated[T].Wid),
		"mag": numeric(interval.Decorated[T].Mag),
		"mig": numeric(interval.Decorated[T].Mig),

		"is_empty":        test1(interval.Decorated[T].IsEmpty),
		"is_entire":       test1(interval.Decorated[T].IsEntire),
		"is_common":       test1(interval.Decorated[T].IsCommon),
		"is_singleton":    test1(interval.Decorated[T].IsSingleton),
		"equal":           test2(interval.Decorated[T].Equal),
		"subset":          test2(interval.Decorated[T].Subset),
		"less":            test2(interval.Decorated[T].Less),
		"precedes":        test2(interval.Decorated[T].Precedes),
		"interior":        test2(interval.Decorated[T].Interior),
		"strict_less":     test2(interval.Decorated[T].StrictLess),
		"strict_precedes": test2(interval.Decorated[T].StrictPrecedes),
		"disjoint":        test2(interval.Decorated[T].Disjoint),
	}
}

// OperationNames returns the sorted names of all operations.
func OperationNames() []string {
	ops := operations[float64]()
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// evaluate parses args and applies the operation named name.
func evaluate[T interval.Float](name string, args []string) (any, error) {
	op, ok := operations[T]()[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	want := op.arity
	if op.intArg {
		want++
	}
	if len(args) != want {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	var n int64
	if op.intArg {
		var err error
		if n, err = strconv.ParseInt(args[want-1], 10, 64); err != nil {
			return nil, fmt.Errorf("%s: invalid exponent: %w", name, err)
		}
		args = args[:want-1]
	}
	xs := make([]interval.Decorated[T], len(args))
	for i, a := range args {
		x, err := ParseDecorated[T](a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		xs[i] = x
	}
	return op.eval(xs, n), nil
}
