package interval

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSignals installs a handler collecting signalled errors for the
// duration of the test.
func captureSignals(t *testing.T) *[]error {
	t.Helper()
	var errs []error
	old := SetHandler(func(err error) { errs = append(errs, err) })
	t.Cleanup(func() { SetHandler(old) })
	return &errs
}

func TestInvalidBare(t *testing.T) {
	errs := captureSignals(t)
	n := InvalidCount()

	checkInterval(t, "reversed", Add(iv(2, 1), iv(0, 0)), empty)
	checkInterval(t, "new", New(3.0, 1.0), empty)
	checkInterval(t, "point", Point(inf), empty)
	checkInterval(t, "half nan", Neg(iv(nan, 1)), empty)
	assert.False(t, Equal(iv(1, -inf), iv(1, 1)))
	assert.Equal(t, Undefined, OverlapOf(iv(inf, inf), iv(1, 2)))

	require.Len(t, *errs, 6)
	assert.Equal(t, n+6, InvalidCount())

	err := (*errs)[0]
	assert.True(t, errors.Is(err, ErrInvalid))
	var ie *InvalidError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Add", ie.Op)
	assert.Equal(t, 2.0, ie.Lo)
	assert.Equal(t, 1.0, ie.Hi)
	assert.False(t, ie.Decorated)
	assert.Equal(t, "Add: invalid interval [2, 1]", err.Error())
	assert.Equal(t, "New", (*errs)[1].(*InvalidError).Op)
}

func TestInvalidDecorated(t *testing.T) {
	errs := captureSignals(t)

	checkDec(t, "com unbounded", Decorated[float64]{iv(0, inf), Com}.Add(com(1, 1)), NaI[float64]())
	checkDec(t, "zero value", Decorated[float64]{}.Neg(), NaI[float64]())
	checkDec(t, "unknown dec", Decorated[float64]{iv(0, 1), Decoration(9)}.Sqr(), NaI[float64]())
	require.Len(t, *errs, 3)
	var ie *InvalidError
	require.True(t, errors.As((*errs)[0], &ie))
	assert.True(t, ie.Decorated)
	assert.Equal(t, Com, ie.Dec)
	assert.Equal(t, "Add: invalid decorated interval [0, +Inf]_com", ie.Error())

	// NaI operands propagate silently.
	*errs = nil
	checkDec(t, "nai", NaI[float64]().Add(com(1, 1)), NaI[float64]())
	assert.False(t, NaI[float64]().IsMember(0))
	assert.True(t, math.IsNaN(NaI[float64]().Inf()))
	assert.Empty(t, *errs)
}

func TestMakeDecorated(t *testing.T) {
	errs := captureSignals(t)
	for _, tc := range []struct {
		name    string
		x       Interval[float64]
		d       Decoration
		want    Decorated[float64]
		signals int
	}{
		{"com", iv(1, 2), Com, com(1, 2), 0},
		{"def", iv(1, 2), Def, dv(1, 2, Def), 0},
		{"com unbounded", iv(1, inf), Com, dv(1, inf, Dac), 1},
		{"empty def", empty, Def, dv(nan, nan, Trv), 1},
		{"empty ill", empty, Ill, NaI[float64](), 0},
		{"ill non-empty", iv(1, 2), Ill, NaI[float64](), 1},
		{"invalid", iv(2, 1), Dac, NaI[float64](), 1},
	} {
		*errs = nil
		checkDec(t, tc.name, MakeDecorated(tc.x, tc.d), tc.want)
		assert.Len(t, *errs, tc.signals, tc.name)
	}

	checkDec(t, "new bounded", NewDecorated(iv(1, 2)), com(1, 2))
	checkDec(t, "new unbounded", NewDecorated(iv(1, inf)), dv(1, inf, Dac))
	checkDec(t, "new empty", NewDecorated(empty), dv(nan, nan, Trv))
}

func TestDecorations(t *testing.T) {
	assert.Equal(t, Trv, Combine(Com, Dac, Trv, Def))
	assert.Equal(t, Com, Combine())
	assert.Equal(t, Def, Dac.Meet(Def))
	d, ok := ParseDecoration("dac")
	assert.True(t, ok)
	assert.Equal(t, Dac, d)
	_, ok = ParseDecoration("xyz")
	assert.False(t, ok)
	assert.Equal(t, "Decoration(7)", Decoration(7).String())
	assert.Equal(t, "[1, 2]_def", dv(1, 2, Def).String())
	assert.Equal(t, "[nai]", NaI[float64]().String())
	assert.Equal(t, "[empty]_trv", dv(nan, nan, Trv).String())
	assert.Equal(t, "[entire]_dac", dv(-inf, inf, Dac).String())
	assert.Equal(t, "[0, +inf]", iv(math.Copysign(0, -1), inf).String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Sqrt(iv(1, -1))
	assert.Contains(t, buf.String(), "invalid interval")
	assert.Contains(t, buf.String(), "op=Sqrt")
	assert.Contains(t, buf.String(), "decorated=false")

	buf.Reset()
	SetLogger(nil)
	Sqrt(iv(1, -1))
	assert.Empty(t, buf.String())
}

func TestFloat32(t *testing.T) {
	x := Interval[float32]{0.1, 0.1}
	r := Add(x, Interval[float32]{0, 0})
	assert.Equal(t, float32(0.1), r.Lo)
	checkInterval(t, "f32 div", Div(Interval[float32]{1, 1}, Interval[float32]{3, 3}),
		Interval[float32]{math.Nextafter32(1.0/3, 0), 1.0 / 3})
	assert.Equal(t, "[0.1, 0.1]", x.String())
}

func TestDecoratedComparer(t *testing.T) {
	opt := decoratedComparer[float64]()
	noSignals(t, func() {
		assert.True(t, cmp.Equal(NaI[float64](), NaI[float64](), opt))
		assert.True(t, cmp.Equal(dv(nan, nan, Trv), dv(nan, nan, Trv), opt))
		assert.True(t, cmp.Equal(com(1, 2), com(1, 2), opt))
		assert.False(t, cmp.Equal(com(1, 2), dv(1, 2, Def), opt))
		assert.False(t, cmp.Equal(dv(nan, nan, Trv), NaI[float64](), opt))
		assert.False(t, cmp.Equal(com(1, 2), com(1, 3), opt))
	})
	// Equal compares sets only.
	assert.True(t, com(1, 2).Equal(dv(1, 2, Def)))
	assert.True(t, dv(nan, nan, Trv).Equal(dv(nan, nan, Trv)))
}
