package interval

import (
	"math"
	"testing"

	"github.com/db47h/interval/bigmath"
	"github.com/db47h/interval/round"
)

func TestSinCos(t *testing.T) {
	sinDown := func(v float64) float64 { return val(round.Sin(v, round.Down)) }
	cosDown := func(v float64) float64 { return val(round.Cos(v, round.Down)) }
	for _, tc := range []struct {
		name    string
		f       func(Interval[float64]) Interval[float64]
		x, want Interval[float64]
	}{
		{"sin", Sin[float64], iv(0, 0), iv(0, 0)},
		{"sin", Sin[float64], whole, iv(-1, 1)},
		{"sin", Sin[float64], iv(0, 7), iv(-1, 1)},
		{"sin", Sin[float64], iv(0, 3), iv(0, 1)},
		{"sin", Sin[float64], iv(1, 2), iv(sinDown(1), 1)},
		{"sin", Sin[float64], iv(-inf, 0), iv(-1, 1)},
		{"sin", Sin[float64], empty, empty},
		{"cos", Cos[float64], iv(0, 0), iv(1, 1)},
		{"cos", Cos[float64], iv(-1, 1), iv(cosDown(1), 1)},
		{"cos", Cos[float64], iv(0, math.Pi), iv(-1, 1)},
		{"cos", Cos[float64], iv(3, 4), iv(-1, val(round.Cos(4.0, round.Up)))},
		{"cos", Cos[float64], iv(0, 100), iv(-1, 1)},
	} {
		checkInterval(t, tc.name+tc.x.String(), tc.f(tc.x), tc.want)
	}
}

func TestTan(t *testing.T) {
	tan := func(lo, hi float64) Interval[float64] {
		return iv(val(round.Tan(lo, round.Down)), val(round.Tan(hi, round.Up)))
	}
	checkInterval(t, "tan", Tan(iv(-1, 1)), tan(-1, 1))
	checkInterval(t, "tan pole", Tan(iv(1, 2)), whole)
	checkInterval(t, "tan wide", Tan(iv(0, 4)), whole)
	checkInterval(t, "tan same branch", Tan(iv(2, 4)), tan(2, 4))
	checkInterval(t, "tan unbounded", Tan(iv(0, inf)), whole)

	checkDec(t, "tan dec", com(1, 2).Tan(), dv(-inf, inf, Trv))
	checkDec(t, "tan com", com(-1, 1).Tan(), Decorated[float64]{tan(-1, 1), Com})
}

func TestInverseTrig(t *testing.T) {
	piHi := up(math.Pi)
	checkInterval(t, "asin", Asin(iv(-2, 2)), iv(-piHi/2, piHi/2))
	checkInterval(t, "asin out", Asin(iv(2, 3)), empty)
	checkInterval(t, "acos", Acos(iv(-1, 1)), iv(0, piHi))
	checkInterval(t, "acos clip", Acos(iv(1, 5)), iv(0, 0))
	checkInterval(t, "atan", Atan(whole), iv(-piHi/2, piHi/2))
	checkInterval(t, "atan zero", Atan(iv(0, 0)), iv(0, 0))

	checkDec(t, "asin dec", com(-2, 2).Asin(), dv(-piHi/2, piHi/2, Trv))
	checkDec(t, "acos com", com(-1, 1).Acos(), com(0, piHi))
}

func TestAtan2(t *testing.T) {
	piHi := up(math.Pi)
	for _, tc := range []struct {
		y, x, want Interval[float64]
	}{
		{iv(1, 1), iv(1, 1), iv(math.Pi/4, piHi/4)},
		{iv(-1, 1), iv(-1, -1), iv(-piHi, piHi)},
		{iv(0, 1), iv(0, 1), iv(0, piHi/2)},
		{iv(0, 0), iv(0, 0), empty},
		{iv(1, 2), whole, iv(0, piHi)},
		{iv(0, 0), iv(1, 2), iv(0, 0)},
		{iv(0, 0), iv(-2, -1), iv(math.Pi, piHi)},
		{iv(-1, 0), iv(-1, -1), iv(-piHi, piHi)},
		{iv(-1, -1), iv(-1, -1), iv(val(round.Atan2(-1.0, -1.0, round.Down)), val(round.Atan2(-1.0, -1.0, round.Up)))},
		{empty, iv(1, 1), empty},
	} {
		checkInterval(t, "atan2 "+tc.y.String()+" "+tc.x.String(), Atan2(tc.y, tc.x), tc.want)
	}

	checkDec(t, "atan2 cut", com(-1, 1).Atan2(com(-1, -1)), dv(-piHi, piHi, Def))
	checkDec(t, "atan2 origin", com(0, 1).Atan2(com(0, 1)), dv(0, piHi/2, Trv))
	checkDec(t, "atan2 com", com(1, 1).Atan2(com(1, 1)), com(math.Pi/4, piHi/4))
}

func TestTrigEnclosure(t *testing.T) {
	checkUnaryEnclosure(t, []unaryCase{
		{"sin", Sin[float64], bigmath.Sin, iv(-1e6, 1e6)},
		{"cos", Cos[float64], bigmath.Cos, iv(-1e6, 1e6)},
		{"tan", Tan[float64], bigmath.Tan, iv(-1e6, 1e6)},
		{"asin", Asin[float64], bigmath.Asin, iv(-1, 1)},
		{"acos", Acos[float64], bigmath.Acos, iv(-1, 1)},
	}, 4)
}
