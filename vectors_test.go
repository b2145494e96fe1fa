package interval

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vector struct {
	Op   string      `yaml:"op"`
	Args [][]float64 `yaml:"args"`
	Want []float64   `yaml:"want"`
	Dec  string      `yaml:"dec"`
}

func bounds(b []float64) (Interval[float64], error) {
	switch len(b) {
	case 0:
		return empty, nil
	case 2:
		return iv(b[0], b[1]), nil
	}
	return empty, fmt.Errorf("bad interval %v", b)
}

type (
	bare1 func(Interval[float64]) Interval[float64]
	bare2 func(x, y Interval[float64]) Interval[float64]
	dec1  func(Decorated[float64]) Decorated[float64]
	dec2  func(x, y Decorated[float64]) Decorated[float64]
)

type dec64 = Decorated[float64]

var vectorOps = map[string]struct {
	bare any
	dec  any
}{
	"add":          {bare2(Add[float64]), dec2(dec64.Add)},
	"sub":          {bare2(Sub[float64]), dec2(dec64.Sub)},
	"mul":          {bare2(Mul[float64]), dec2(dec64.Mul)},
	"div":          {bare2(Div[float64]), dec2(dec64.Div)},
	"recip":        {bare1(Recip[float64]), dec1(dec64.Recip)},
	"sqr":          {bare1(Sqr[float64]), dec1(dec64.Sqr)},
	"sqrt":         {bare1(Sqrt[float64]), dec1(dec64.Sqrt)},
	"exp":          {bare1(Exp[float64]), dec1(dec64.Exp)},
	"exp2":         {bare1(Exp2[float64]), dec1(dec64.Exp2)},
	"exp10":        {bare1(Exp10[float64]), dec1(dec64.Exp10)},
	"log":          {bare1(Log[float64]), dec1(dec64.Log)},
	"log2":         {bare1(Log2[float64]), dec1(dec64.Log2)},
	"log10":        {bare1(Log10[float64]), dec1(dec64.Log10)},
	"pow":          {bare2(Pow[float64]), dec2(dec64.Pow)},
	"sin":          {bare1(Sin[float64]), dec1(dec64.Sin)},
	"cos":          {bare1(Cos[float64]), dec1(dec64.Cos)},
	"tan":          {bare1(Tan[float64]), dec1(dec64.Tan)},
	"acos":         {bare1(Acos[float64]), dec1(dec64.Acos)},
	"atan":         {bare1(Atan[float64]), dec1(dec64.Atan)},
	"atan2":        {bare2(Atan2[float64]), dec2(dec64.Atan2)},
	"sinh":         {bare1(Sinh[float64]), dec1(dec64.Sinh)},
	"cosh":         {bare1(Cosh[float64]), dec1(dec64.Cosh)},
	"tanh":         {bare1(Tanh[float64]), dec1(dec64.Tanh)},
	"acosh":        {bare1(Acosh[float64]), dec1(dec64.Acosh)},
	"atanh":        {bare1(Atanh[float64]), dec1(dec64.Atanh)},
	"abs":          {bare1(Abs[float64]), dec1(dec64.Abs)},
	"floor":        {bare1(Floor[float64]), dec1(dec64.Floor)},
	"ceil":         {bare1(Ceil[float64]), dec1(dec64.Ceil)},
	"sign":         {bare1(Sign[float64]), dec1(dec64.Sign)},
	"min":          {bare2(Min[float64]), dec2(dec64.Min)},
	"max":          {bare2(Max[float64]), dec2(dec64.Max)},
	"intersection": {bare2(Intersection[float64]), dec2(dec64.Intersection)},
	"convex_hull":  {bare2(ConvexHull[float64]), dec2(dec64.ConvexHull)},
	"sqr_rev":      {bare2(SqrRev[float64]), dec2(dec64.SqrRev)},
	"abs_rev":      {bare2(AbsRev[float64]), dec2(dec64.AbsRev)},
	"cancel_minus": {bare2(CancelMinus[float64]), dec2(dec64.CancelMinus)},
	"cancel_plus":  {bare2(CancelPlus[float64]), dec2(dec64.CancelPlus)},
}

func loadVectors(t *testing.T, name string) []vector {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	var vs []vector
	require.NoError(t, yaml.Unmarshal(data, &vs))
	require.NotEmpty(t, vs)
	return vs
}

func TestVectors(t *testing.T) {
	for i, v := range loadVectors(t, "testdata/vectors.yaml") {
		name := fmt.Sprintf("%d/%s", i, v.Op)
		t.Run(name, func(t *testing.T) {
			op, ok := vectorOps[v.Op]
			require.True(t, ok, "unknown operation %q", v.Op)
			want, err := bounds(v.Want)
			require.NoError(t, err)
			args := make([]Interval[float64], len(v.Args))
			dargs := make([]Decorated[float64], len(v.Args))
			for j, a := range v.Args {
				args[j], err = bounds(a)
				require.NoError(t, err)
				dargs[j] = NewDecorated(args[j])
			}
			d, ok := ParseDecoration(v.Dec)
			require.True(t, ok, "bad decoration %q", v.Dec)

			noSignals(t, func() {
				switch f := op.bare.(type) {
				case bare1:
					require.Len(t, args, 1)
					checkInterval(t, "bare", f(args[0]), want)
					checkDec(t, "decorated", op.dec.(dec1)(dargs[0]), Decorated[float64]{want, d})
				case bare2:
					require.Len(t, args, 2)
					checkInterval(t, "bare", f(args[0], args[1]), want)
					checkDec(t, "decorated", op.dec.(dec2)(dargs[0], dargs[1]), Decorated[float64]{want, d})
				}
			})
		})
	}
}
