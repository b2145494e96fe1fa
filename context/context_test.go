package context_test

import (
	"errors"
	"math"
	"testing"

	"github.com/db47h/interval"
	"github.com/db47h/interval/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dec = interval.Decorated[float64]

func TestContextOps(t *testing.T) {
	x := interval.NewDecorated(interval.New(0.25, 0.5))
	y := interval.NewDecorated(interval.New(1.0, 2.0))
	z := interval.NewDecorated(interval.New(-1.0, 3.0))
	td := []struct {
		name string
		got  func(c *context.Context[float64]) dec
		want dec
	}{
		{"Add", func(c *context.Context[float64]) dec { return c.Add(x, y) }, x.Add(y)},
		{"Sub", func(c *context.Context[float64]) dec { return c.Sub(x, y) }, x.Sub(y)},
		{"Mul", func(c *context.Context[float64]) dec { return c.Mul(x, z) }, x.Mul(z)},
		{"Div", func(c *context.Context[float64]) dec { return c.Div(y, z) }, y.Div(z)},
		{"FMA", func(c *context.Context[float64]) dec { return c.FMA(x, y, z) }, x.FMA(y, z)},
		{"Neg", func(c *context.Context[float64]) dec { return c.Neg(z) }, z.Neg()},
		{"Abs", func(c *context.Context[float64]) dec { return c.Abs(z) }, z.Abs()},
		{"Sqr", func(c *context.Context[float64]) dec { return c.Sqr(z) }, z.Sqr()},
		{"Sqrt", func(c *context.Context[float64]) dec { return c.Sqrt(z) }, z.Sqrt()},
		{"Pown", func(c *context.Context[float64]) dec { return c.Pown(z, -3) }, z.Pown(-3)},
		{"Rootn", func(c *context.Context[float64]) dec { return c.Rootn(z, 3) }, z.Rootn(3)},
		{"Recip", func(c *context.Context[float64]) dec { return c.Recip(z) }, z.Recip()},
		{"Pow", func(c *context.Context[float64]) dec { return c.Pow(x, z) }, x.Pow(z)},
		{"Exp", func(c *context.Context[float64]) dec { return c.Exp(x) }, x.Exp()},
		{"Exp2", func(c *context.Context[float64]) dec { return c.Exp2(x) }, x.Exp2()},
		{"Exp10", func(c *context.Context[float64]) dec { return c.Exp10(x) }, x.Exp10()},
		{"Log", func(c *context.Context[float64]) dec { return c.Log(z) }, z.Log()},
		{"Log2", func(c *context.Context[float64]) dec { return c.Log2(y) }, y.Log2()},
		{"Log10", func(c *context.Context[float64]) dec { return c.Log10(y) }, y.Log10()},
		{"Sin", func(c *context.Context[float64]) dec { return c.Sin(z) }, z.Sin()},
		{"Cos", func(c *context.Context[float64]) dec { return c.Cos(z) }, z.Cos()},
		{"Tan", func(c *context.Context[float64]) dec { return c.Tan(z) }, z.Tan()},
		{"Asin", func(c *context.Context[float64]) dec { return c.Asin(z) }, z.Asin()},
		{"Acos", func(c *context.Context[float64]) dec { return c.Acos(x) }, x.Acos()},
		{"Atan", func(c *context.Context[float64]) dec { return c.Atan(z) }, z.Atan()},
		{"Atan2", func(c *context.Context[float64]) dec { return c.Atan2(z, x) }, z.Atan2(x)},
		{"Sinh", func(c *context.Context[float64]) dec { return c.Sinh(z) }, z.Sinh()},
		{"Cosh", func(c *context.Context[float64]) dec { return c.Cosh(z) }, z.Cosh()},
		{"Tanh", func(c *context.Context[float64]) dec { return c.Tanh(z) }, z.Tanh()},
		{"Asinh", func(c *context.Context[float64]) dec { return c.Asinh(z) }, z.Asinh()},
		{"Acosh", func(c *context.Context[float64]) dec { return c.Acosh(z) }, z.Acosh()},
		{"Atanh", func(c *context.Context[float64]) dec { return c.Atanh(x) }, x.Atanh()},
		{"Sign", func(c *context.Context[float64]) dec { return c.Sign(z) }, z.Sign()},
		{"Ceil", func(c *context.Context[float64]) dec { return c.Ceil(x) }, x.Ceil()},
		{"Floor", func(c *context.Context[float64]) dec { return c.Floor(z) }, z.Floor()},
		{"Trunc", func(c *context.Context[float64]) dec { return c.Trunc(x) }, x.Trunc()},
		{"RoundTiesToEven", func(c *context.Context[float64]) dec { return c.RoundTiesToEven(x) }, x.RoundTiesToEven()},
		{"RoundTiesToAway", func(c *context.Context[float64]) dec { return c.RoundTiesToAway(x) }, x.RoundTiesToAway()},
		{"Min", func(c *context.Context[float64]) dec { return c.Min(x, z) }, x.Min(z)},
		{"Max", func(c *context.Context[float64]) dec { return c.Max(x, z) }, x.Max(z)},
		{"Intersection", func(c *context.Context[float64]) dec { return c.Intersection(y, z) }, y.Intersection(z)},
		{"ConvexHull", func(c *context.Context[float64]) dec { return c.ConvexHull(x, y) }, x.ConvexHull(y)},
		{"CancelMinus", func(c *context.Context[float64]) dec { return c.CancelMinus(z, y) }, z.CancelMinus(y)},
		{"CancelPlus", func(c *context.Context[float64]) dec { return c.CancelPlus(z, y) }, z.CancelPlus(y)},
		{"SqrRev", func(c *context.Context[float64]) dec { return c.SqrRev(y, z) }, y.SqrRev(z)},
		{"AbsRev", func(c *context.Context[float64]) dec { return c.AbsRev(y, z) }, y.AbsRev(z)},
		{"PownRev", func(c *context.Context[float64]) dec { return c.PownRev(y, z, 2) }, y.PownRev(z, 2)},
		{"SinRev", func(c *context.Context[float64]) dec { return c.SinRev(x, z) }, x.SinRev(z)},
		{"CosRev", func(c *context.Context[float64]) dec { return c.CosRev(x, z) }, x.CosRev(z)},
		{"TanRev", func(c *context.Context[float64]) dec { return c.TanRev(x, z) }, x.TanRev(z)},
		{"CoshRev", func(c *context.Context[float64]) dec { return c.CoshRev(y, z) }, y.CoshRev(z)},
		{"MulRev", func(c *context.Context[float64]) dec { return c.MulRev(y, z, z) }, y.MulRev(z, z)},
		{"DivRev1", func(c *context.Context[float64]) dec { return c.DivRev1(y, x, z) }, y.DivRev1(x, z)},
		{"DivRev2", func(c *context.Context[float64]) dec { return c.DivRev2(y, y, z) }, y.DivRev2(y, z)},
	}
	n := interval.InvalidCount()
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c := context.New[float64]()
			got := d.got(c)
			require.NoError(t, c.Err())
			assert.Equal(t, d.want.String(), got.String())
			assert.Equal(t, d.want.Dec, got.Dec)
		})
	}
	assert.Equal(t, n, interval.InvalidCount())
}

func TestContextMulRevToPair(t *testing.T) {
	c := context.New[float64]()
	b := interval.NewDecorated(interval.New(-1.0, 1.0))
	r := interval.NewDecorated(interval.New(1.0, 2.0))
	p, q := c.MulRevToPair(b, r)
	require.NoError(t, c.Err())
	wp, wq := b.MulRevToPair(r)
	assert.Equal(t, wp.String(), p.String())
	assert.Equal(t, wq.String(), q.String())

	bad := interval.Decorated[float64]{Bare: interval.Entire[float64](), Dec: interval.Com}
	p, q = c.MulRevToPair(bad, r)
	assert.True(t, p.IsNaI())
	assert.True(t, q.IsNaI())
	assert.Error(t, c.Err())
}

func TestContextErr(t *testing.T) {
	n := interval.InvalidCount()
	c := context.New[float64]()
	x := c.Point(1)
	bad := interval.Decorated[float64]{Bare: interval.Entire[float64](), Dec: interval.Com}

	r := c.Exp(bad)
	assert.True(t, r.IsNaI())
	// sticky until Err is called
	assert.True(t, c.Add(x, x).IsNaI())
	assert.True(t, c.Point(2).IsNaI())

	err := c.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, interval.ErrInvalid))
	var ie *interval.InvalidError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Exp", ie.Op)
	assert.True(t, ie.Decorated)
	assert.Equal(t, interval.Com, ie.Dec)

	assert.NoError(t, c.Err())
	assert.Equal(t, "[2, 2]_com", c.Add(x, x).String())

	// NaI operands are not errors
	assert.True(t, c.Sin(interval.NaI[float64]()).IsNaI())
	assert.NoError(t, c.Err())

	assert.True(t, c.New(2, 1).IsNaI())
	assert.Error(t, c.Err())
	assert.True(t, c.Make(0, inf(), interval.Com).IsNaI())
	assert.Error(t, c.Err())
	assert.Equal(t, n, interval.InvalidCount())
}

func TestContextNewZero(t *testing.T) {
	c := context.New[float32]()
	x := c.New(0, 0)
	require.NoError(t, c.Err())
	assert.True(t, x.Bare.Lo == 0 && x.Bare.Hi == 0)
	assert.Equal(t, "[0, 0]_com", x.String())
	assert.True(t, signbit32(x.Bare.Lo))
	assert.False(t, signbit32(x.Bare.Hi))
}

func inf() float64 { return math.Inf(1) }

func signbit32(v float32) bool { return math.Signbit(float64(v)) }
