package interval

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	for _, tc := range []struct {
		x, y, want Interval[float64]
	}{
		{iv(1, 2), iv(3, 4), iv(4, 6)},
		{iv(0.1, 0.1), iv(0.2, 0.2), iv(0.3, 0.30000000000000004)},
		{iv(-inf, 1), iv(1, 2), iv(-inf, 3)},
		{whole, iv(1, 1), whole},
		{empty, iv(1, 2), empty},
		{iv(math.MaxFloat64, math.MaxFloat64), iv(math.MaxFloat64, math.MaxFloat64), iv(math.MaxFloat64, inf)},
	} {
		checkInterval(t, tc.x.String()+"+"+tc.y.String(), Add(tc.x, tc.y), tc.want)
	}
}

func TestSub(t *testing.T) {
	checkInterval(t, "sub", Sub(iv(1, 2), iv(3, 5)), iv(-4, -1))
	checkInterval(t, "sub unbounded", Sub(iv(0, inf), iv(-inf, 0)), iv(0, inf))
	checkInterval(t, "neg", Neg(iv(-1, 3)), iv(-3, 1))
	checkInterval(t, "neg empty", Neg(empty), empty)
}

func TestMul(t *testing.T) {
	for _, tc := range []struct {
		x, y, want Interval[float64]
	}{
		{iv(-1, 2), iv(-3, 4), iv(-6, 8)},
		{iv(1, 2), iv(3, 4), iv(3, 8)},
		{iv(-2, -1), iv(3, 4), iv(-8, -3)},
		{iv(-2, -1), iv(-4, -3), iv(3, 8)},
		{iv(0, 0), whole, iv(0, 0)},
		{iv(0, 1), iv(0, inf), iv(0, inf)},
		{iv(-inf, -1), iv(2, 3), iv(-inf, -2)},
		{iv(1, 1), empty, empty},
	} {
		checkInterval(t, tc.x.String()+"*"+tc.y.String(), Mul(tc.x, tc.y), tc.want)
	}
}

func TestDiv(t *testing.T) {
	third := 1.0 / 3
	for _, tc := range []struct {
		x, y, want Interval[float64]
	}{
		{iv(1, 2), iv(4, 8), iv(0.125, 0.5)},
		{iv(1, 2), iv(0, 4), iv(0.25, inf)},
		{iv(1, 2), iv(-4, 0), iv(-inf, -0.25)},
		{iv(-2, -1), iv(0, 4), iv(-inf, -0.25)},
		{iv(-1, 1), iv(0, 2), whole},
		{iv(1, 1), iv(-1, 1), whole},
		{iv(1, 3), iv(-2, -1), iv(-3, -0.5)},
		{iv(-1, 3), iv(2, 4), iv(-0.5, 1.5)},
		{iv(1, 1), iv(3, 3), iv(third, up(third))},
		{iv(0, 0), iv(1, 2), iv(0, 0)},
		{iv(1, 2), iv(0, 0), empty},
		{iv(0, 1), iv(0, 1), iv(0, inf)},
	} {
		checkInterval(t, tc.x.String()+"/"+tc.y.String(), Div(tc.x, tc.y), tc.want)
	}
	checkInterval(t, "recip", Recip(iv(2, 4)), iv(0.25, 0.5))
}

func TestZeroSigns(t *testing.T) {
	for _, tc := range []struct {
		name string
		x    Interval[float64]
	}{
		{"mul zero", Mul(iv(0, 0), whole)},
		{"mul", Mul(iv(0, 1), iv(1, 2))},
		{"div zero", Div(iv(0, 0), iv(1, 2))},
		{"div", Div(iv(0, 1), iv(1, 2))},
		{"div half", Div(iv(0, 1), iv(0, 2))},
		{"add", Add(iv(0, 1), iv(0, 1))},
		{"sub", Sub(iv(0, 1), iv(0, 0))},
		{"fma", FMA(iv(0, 1), iv(1, 1), iv(0, 0))},
		{"sqr", Sqr(iv(-1, 0))},
		{"sqrt", Sqrt(iv(0, 4))},
		{"pow", Pow(iv(0, 1), iv(1, 2))},
		{"new", New(0.0, 0.0)},
		{"point", Point(0.0)},
		{"intersection", Intersection(iv(-1, 0), iv(0, 1))},
		{"sin", Sin(iv(0, 1))},
		{"atan2", Atan2(iv(0, 1), iv(1, 2))},
	} {
		if tc.x.Lo == 0 {
			assert.True(t, math.Signbit(tc.x.Lo), "%s: lower bound %v", tc.name, tc.x)
		}
		if tc.x.Hi == 0 {
			assert.False(t, math.Signbit(tc.x.Hi), "%s: upper bound %v", tc.name, tc.x)
		}
		assert.True(t, tc.x.Lo == 0 || tc.x.Hi == 0, tc.name)
	}
}

func TestSqrSqrt(t *testing.T) {
	checkInterval(t, "sqr", Sqr(iv(-3, 2)), iv(0, 9))
	checkInterval(t, "sqr neg", Sqr(iv(-3, -2)), iv(4, 9))
	checkInterval(t, "sqrt", Sqrt(iv(-4, 4)), iv(0, 2))
	checkInterval(t, "sqrt neg", Sqrt(iv(-4, -1)), empty)
	checkInterval(t, "sqrt 2", Sqrt(iv(2, 2)), iv(down(math.Sqrt2), math.Sqrt2))
}

func TestFMA(t *testing.T) {
	checkInterval(t, "fma", FMA(iv(1, 2), iv(3, 4), iv(-1, 1)), iv(2, 9))
	checkInterval(t, "fma zero", FMA(iv(0, 0), whole, iv(1, 2)), iv(1, 2))
	// 0.1×10 - 1 is not zero when computed with a single rounding
	r := FMA(iv(0.1, 0.1), iv(10, 10), iv(-1, -1))
	assert.Greater(t, r.Lo, 0.0)
	assert.Equal(t, r.Lo, r.Hi)
}

func TestDecoratedArith(t *testing.T) {
	checkDec(t, "add", com(1, 2).Add(com(3, 4)), com(4, 6))
	checkDec(t, "div by zero-straddling", com(1, 2).Div(com(-1, 1)), dv(-inf, inf, Trv))
	checkDec(t, "div", com(1, 2).Div(com(2, 4)), com(0.25, 1))
	checkDec(t, "overflow", com(math.MaxFloat64, math.MaxFloat64).Mul(com(2, 2)), dv(math.MaxFloat64, inf, Dac))
	checkDec(t, "sqrt", com(-4, 4).Sqrt(), dv(0, 2, Trv))
	checkDec(t, "sqrt dac", dv(1, inf, Dac).Sqrt(), dv(1, inf, Dac))
	checkDec(t, "meet", dv(1, 2, Def).Add(com(1, 1)), dv(2, 3, Def))
	checkDec(t, "nai", NaI[float64]().Add(com(1, 1)), NaI[float64]())
	checkDec(t, "empty", dv(math.NaN(), math.NaN(), Trv).Neg(), dv(math.NaN(), math.NaN(), Trv))
}

// randInterval returns a random non-empty interval with bounds in roughly
// [-2**emax, 2**emax]. Some bounds are infinite.
func randInterval(r *rand.Rand, emax int) Interval[float64] {
	b := func() float64 {
		if r.Intn(20) == 0 {
			return 0
		}
		v := math.Ldexp(r.Float64()+0.5, r.Intn(2*emax+1)-emax)
		if r.Intn(2) == 0 {
			v = -v
		}
		return v
	}
	lo, hi := b(), b()
	if lo > hi {
		lo, hi = hi, lo
	}
	switch r.Intn(16) {
	case 0:
		lo = -inf
	case 1:
		hi = inf
	}
	return iv(lo, hi)
}

// sample returns a finite member of the non-empty interval x.
func sample(r *rand.Rand, x Interval[float64]) float64 {
	lo, hi := max(x.Lo, -math.MaxFloat64), min(x.Hi, math.MaxFloat64)
	switch r.Intn(4) {
	case 0:
		return lo
	case 1:
		return hi
	}
	v := lo + (hi-lo)*r.Float64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		v = lo/2 + hi/2
	}
	return min(max(v, lo), hi)
}

// checkEncloses verifies that the real number v, computed with the given
// error direction at high precision, lies in x: lower bounds are compared
// against v rounded up and upper bounds against v rounded down.
func checkEncloses(t *testing.T, op string, x Interval[float64], vUp, vDown *big.Float) {
	t.Helper()
	if x.IsEmpty() {
		t.Errorf("%s: empty result, want a superset of %s", op, vUp.Text('g', 20))
		return
	}
	if !math.IsInf(x.Lo, -1) && big.NewFloat(x.Lo).Cmp(vUp) > 0 {
		t.Errorf("%s: lower bound %g above %s", op, x.Lo, vUp.Text('g', 20))
	}
	if !math.IsInf(x.Hi, 1) && big.NewFloat(x.Hi).Cmp(vDown) < 0 {
		t.Errorf("%s: upper bound %g below %s", op, x.Hi, vDown.Text('g', 20))
	}
}

func TestArithEnclosure(t *testing.T) {
	type op struct {
		name string
		f    func(x, y Interval[float64]) Interval[float64]
		big  func(z, a, b *big.Float) *big.Float
	}
	ops := []op{
		{"add", Add[float64], (*big.Float).Add},
		{"sub", Sub[float64], (*big.Float).Sub},
		{"mul", Mul[float64], (*big.Float).Mul},
		{"div", Div[float64], (*big.Float).Quo},
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 3000; i++ {
		x, y := randInterval(r, 60), randInterval(r, 60)
		for _, o := range ops {
			z := o.f(x, y)
			a, b := sample(r, x), sample(r, y)
			if o.name == "div" && b == 0 {
				continue
			}
			vUp := o.big(new(big.Float).SetPrec(2200).SetMode(big.ToPositiveInf), big.NewFloat(a), big.NewFloat(b))
			vDown := o.big(new(big.Float).SetPrec(2200).SetMode(big.ToNegativeInf), big.NewFloat(a), big.NewFloat(b))
			checkEncloses(t, o.name+" "+x.String()+" "+y.String(), z, vUp, vDown)
		}
	}
}
