// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/interval/bigmath"
	"github.com/db47h/interval/round"
)

type unaryCase struct {
	name string
	fn   func(x float64, m round.Mode) (float64, round.Accuracy)
	ref  func(z, x *big.Float) *big.Float
	lo   float64 // argument range
	hi   float64
}

var unaryCases = []unaryCase{
	{"exp", round.Exp[float64], bigmath.Exp, -700, 700},
	{"exp2", round.Exp2[float64], bigmath.Exp2, -1000, 1000},
	{"exp10", round.Exp10[float64], bigmath.Exp10, -300, 300},
	{"log", round.Log[float64], bigmath.Log, 1e-300, 1e300},
	{"log2", round.Log2[float64], bigmath.Log2, 1e-10, 1e10},
	{"log10", round.Log10[float64], bigmath.Log10, 1e-10, 1e10},
	{"sin", round.Sin[float64], bigmath.Sin, -1e6, 1e6},
	{"cos", round.Cos[float64], bigmath.Cos, -100, 100},
	{"tan", round.Tan[float64], bigmath.Tan, -10, 10},
	{"asin", round.Asin[float64], bigmath.Asin, -1, 1},
	{"acos", round.Acos[float64], bigmath.Acos, -1, 1},
	{"atan", round.Atan[float64], bigmath.Atan, -1e5, 1e5},
	{"sinh", round.Sinh[float64], bigmath.Sinh, -20, 20},
	{"cosh", round.Cosh[float64], bigmath.Cosh, -20, 20},
	{"tanh", round.Tanh[float64], bigmath.Tanh, -10, 10},
	{"asinh", round.Asinh[float64], bigmath.Asinh, -1e6, 1e6},
	{"acosh", round.Acosh[float64], bigmath.Acosh, 1, 1e6},
	{"atanh", round.Atanh[float64], bigmath.Atanh, -1, 1},
}

func TestUnaryBracket(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, c := range unaryCases {
		t.Run(c.name, func(t *testing.T) {
			n := 200
			if testing.Short() {
				n = 20
			}
			for i := 0; i < n; i++ {
				var x float64
				if c.lo > 0 {
					// log-uniform
					x = math.Exp(math.Log(c.lo) + r.Float64()*(math.Log(c.hi)-math.Log(c.lo)))
				} else {
					x = c.lo + r.Float64()*(c.hi-c.lo)
				}
				d, accD := c.fn(x, round.Down)
				u, accU := c.fn(x, round.Up)
				want := c.ref(new(big.Float).SetPrec(300), big.NewFloat(x))
				require.LessOrEqual(t, big.NewFloat(d).Cmp(want), 0, "%s(%v) down = %v", c.name, x, d)
				require.GreaterOrEqual(t, big.NewFloat(u).Cmp(want), 0, "%s(%v) up = %v", c.name, x, u)
				if d != u {
					require.Equal(t, round.NextUp(d), u, "%s(%v) not tight", c.name, x)
					require.Equal(t, round.Below, accD)
					require.Equal(t, round.Above, accU)
				}
				near, _ := c.fn(x, round.Nearest)
				require.True(t, near == d || near == u, "%s(%v) nearest", c.name, x)
			}
		})
	}
}

func TestElementaryExact(t *testing.T) {
	td := []struct {
		name string
		fn   func(m round.Mode) (float64, round.Accuracy)
		want float64
	}{
		{"exp(0)", func(m round.Mode) (float64, round.Accuracy) { return round.Exp(0.0, m) }, 1},
		{"exp2(3)", func(m round.Mode) (float64, round.Accuracy) { return round.Exp2(3.0, m) }, 8},
		{"exp2(-1074)", func(m round.Mode) (float64, round.Accuracy) { return round.Exp2(-1074.0, m) }, math.SmallestNonzeroFloat64},
		{"exp10(2)", func(m round.Mode) (float64, round.Accuracy) { return round.Exp10(2.0, m) }, 100},
		{"log2(8)", func(m round.Mode) (float64, round.Accuracy) { return round.Log2(8.0, m) }, 3},
		{"log2(0.25)", func(m round.Mode) (float64, round.Accuracy) { return round.Log2(0.25, m) }, -2},
		{"log10(1000)", func(m round.Mode) (float64, round.Accuracy) { return round.Log10(1000.0, m) }, 3},
		{"cos(0)", func(m round.Mode) (float64, round.Accuracy) { return round.Cos(0.0, m) }, 1},
		{"acosh(1)", func(m round.Mode) (float64, round.Accuracy) { return round.Acosh(1.0, m) }, 0},
		{"rootn(27, 3)", func(m round.Mode) (float64, round.Accuracy) { return round.Rootn(27.0, 3, m) }, 3},
		{"rootn(-8, 3)", func(m round.Mode) (float64, round.Accuracy) { return round.Rootn(-8.0, 3, m) }, -2},
		{"rootn(4, -2)", func(m round.Mode) (float64, round.Accuracy) { return round.Rootn(4.0, -2, m) }, 0.5},
		{"rootn(0.125, -3)", func(m round.Mode) (float64, round.Accuracy) { return round.Rootn(0.125, -3, m) }, 2},
		{"pown(2, -3)", func(m round.Mode) (float64, round.Accuracy) { return round.Pown(2.0, -3, m) }, 0.125},
		{"pown(-2, 3)", func(m round.Mode) (float64, round.Accuracy) { return round.Pown(-2.0, 3, m) }, -8},
		{"pown(-3, 4)", func(m round.Mode) (float64, round.Accuracy) { return round.Pown(-3.0, 4, m) }, 81},
		{"pow(4, 0.5)", func(m round.Mode) (float64, round.Accuracy) { return round.Pow(4.0, 0.5, m) }, 2},
		{"pow(4, 1.5)", func(m round.Mode) (float64, round.Accuracy) { return round.Pow(4.0, 1.5, m) }, 8},
		{"pow(16, -0.25)", func(m round.Mode) (float64, round.Accuracy) { return round.Pow(16.0, -0.25, m) }, 0.5},
		{"pow(0, 2.5)", func(m round.Mode) (float64, round.Accuracy) { return round.Pow(0.0, 2.5, m) }, 0},
		{"atan2(0, 1)", func(m round.Mode) (float64, round.Accuracy) { return round.Atan2(0.0, 1.0, m) }, 0},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			for _, m := range []round.Mode{round.Down, round.Up, round.Nearest} {
				v, acc := d.fn(m)
				assert.Equal(t, d.want, v, "%v", m)
				assert.Equal(t, round.Exact, acc, "%v", m)
			}
		})
	}
}

func TestPi(t *testing.T) {
	d, acc := round.Pi[float64](round.Down)
	assert.Equal(t, math.Pi, d)
	assert.Equal(t, round.Below, acc)
	u, _ := round.Pi[float64](round.Up)
	assert.Equal(t, math.Nextafter(math.Pi, 4), u)
	n, _ := round.Pi[float64](round.Nearest)
	assert.Equal(t, math.Pi, n)

	d32, _ := round.Pi[float32](round.Down)
	u32, _ := round.Pi[float32](round.Up)
	assert.Equal(t, float32(math.Pi), u32)
	assert.Equal(t, math.Nextafter32(math.Pi, 0), d32)

	a, _ := round.Atan2(0.0, -1.0, round.Up)
	assert.Equal(t, u, a)
	a, _ = round.Atan2(math.Inf(1), math.Inf(-1), round.Down)
	assert.LessOrEqual(t, a, 3*math.Pi/4)
	assert.Greater(t, a, 2.35)
}

func TestOverflowUnderflow(t *testing.T) {
	v, acc := round.Exp(1000.0, round.Down)
	assert.Equal(t, math.MaxFloat64, v)
	assert.Equal(t, round.Below, acc)
	v, _ = round.Exp(1000.0, round.Up)
	assert.True(t, math.IsInf(v, 1))
	v, _ = round.Exp(-1000.0, round.Up)
	assert.Equal(t, math.SmallestNonzeroFloat64, v)
	v, _ = round.Exp(-1000.0, round.Down)
	assert.Zero(t, v)
	v, _ = round.Exp(100.0, round.Up)
	assert.False(t, math.IsInf(v, 1))

	f, _ := round.Exp(float32(100), round.Up)
	assert.True(t, math.IsInf(float64(f), 1))
	f, _ = round.Exp(float32(100), round.Down)
	assert.Equal(t, float32(math.MaxFloat32), f)

	v, _ = round.Pown(10.0, 400, round.Down)
	assert.Equal(t, math.MaxFloat64, v)
	v, _ = round.Pown(-10.0, 401, round.Up)
	assert.Equal(t, -math.MaxFloat64, v)
	v, _ = round.Pown(10.0, -400, round.Up)
	assert.Equal(t, math.SmallestNonzeroFloat64, v)

	v, acc = round.Tanh(30.0, round.Down)
	assert.Equal(t, math.Nextafter(1, 0), v)
	assert.Equal(t, round.Below, acc)
	v, _ = round.Tanh(30.0, round.Up)
	assert.Equal(t, 1.0, v)
	v, _ = round.Tanh(-30.0, round.Up)
	assert.Equal(t, -math.Nextafter(1, 0), v)
}

func TestPownBracket(t *testing.T) {
	// 3**40 = 12157665459056928801 needs 64 bits
	want, _ := new(big.Float).SetPrec(100).SetString("12157665459056928801")
	d, _ := round.Pown(3.0, 40, round.Down)
	u, _ := round.Pown(3.0, 40, round.Up)
	assert.Equal(t, -1, big.NewFloat(d).Cmp(want))
	assert.Equal(t, 1, big.NewFloat(u).Cmp(want))
	assert.Equal(t, math.Nextafter(d, math.Inf(1)), u)

	d, _ = round.Pown(3.0, -40, round.Down)
	u, _ = round.Pown(3.0, -40, round.Up)
	assert.Less(t, d, u)
	assert.Equal(t, math.Nextafter(d, math.Inf(1)), u)

	// odd power of a negative number
	d, _ = round.Pown(-3.0, 41, round.Down)
	u, _ = round.Pown(-3.0, 41, round.Up)
	assert.Equal(t, math.Nextafter(d, math.Inf(1)), u)
	assert.Less(t, u, 0.0)
}

func TestDomain(t *testing.T) {
	for _, v := range []float64{
		first(round.Log(-1.0, round.Down)),
		first(round.Sqrt(-1.0, round.Down)),
		first(round.Asin(1.5, round.Down)),
		first(round.Acosh(0.5, round.Down)),
		first(round.Sin(math.Inf(1), round.Down)),
		first(round.Rootn(-4.0, 2, round.Down)),
		first(round.Rootn(4.0, 0, round.Down)),
		first(round.Pow(-1.0, 0.5, round.Down)),
		first(round.Exp(math.NaN(), round.Down)),
	} {
		assert.True(t, math.IsNaN(v))
	}
}

func first(v float64, _ round.Accuracy) float64 {
	return v
}
