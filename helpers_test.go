package interval

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	inf   = math.Inf(1)
	nan   = math.NaN()
	empty = Empty[float64]()
	whole = Entire[float64]()
)

func iv(lo, hi float64) Interval[float64] { return Interval[float64]{lo, hi} }

func dv(lo, hi float64, d Decoration) Decorated[float64] {
	return Decorated[float64]{iv(lo, hi), d}
}

func com(lo, hi float64) Decorated[float64] { return dv(lo, hi, Com) }

// up returns the successor of v.
func up(v float64) float64 { return math.Nextafter(v, inf) }

// down returns the predecessor of v.
func down(v float64) float64 { return math.Nextafter(v, -inf) }

// checkInterval fails t if got and want differ. Empty intervals compare
// equal and zeros compare equal regardless of sign.
func checkInterval[T Float](t *testing.T, name string, got, want Interval[T]) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
	}
}

// checkDec fails t if got and want differ in their bare part or decoration.
// Decorated.Equal is not used: it ignores decorations and is false for NaI.
func checkDec[T Float](t *testing.T, name string, got, want Decorated[T]) {
	t.Helper()
	if diff := cmp.Diff(want, got, decoratedComparer[T]()); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
	}
}

func decoratedComparer[T Float]() cmp.Option {
	return cmp.Comparer(func(x, y Decorated[T]) bool {
		return x.Dec == y.Dec && cmp.Equal(x.Bare, y.Bare, cmpopts.EquateNaNs())
	})
}

// noSignals fails t if f triggers the invalid representation side channel.
func noSignals(t *testing.T, f func()) {
	t.Helper()
	n := InvalidCount()
	f()
	if c := InvalidCount(); c != n {
		t.Errorf("unexpected invalid signals: %d", c-n)
	}
}
