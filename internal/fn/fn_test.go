package fn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradop-ml/gradop/internal/dual"
	"github.com/gradop-ml/gradop/internal/fn"
	"github.com/gradop-ml/gradop/internal/gradcheck"
	"github.com/gradop-ml/gradop/internal/op"
)

// TestBuiltins_GradientsMatchFiniteDifferences checks every registered
// operation's hand-written (or auto-derived) gradient against central
// finite differences at random sample points.
func TestBuiltins_GradientsMatchFiniteDifferences(t *testing.T) {
	for _, name := range fn.Names() {
		t.Run(name, func(t *testing.T) {
			arity := 0
			if fn.Parametric(name) {
				arity = 5
			}
			o, err := fn.Lookup(name, arity)
			require.NoError(t, err)

			if o.Arity() == 0 {
				t.Skip("zero-input operation has no gradient to check")
			}

			lo, hi := fn.CheckDomain(name)
			if err := gradcheck.CheckRandom(o, 25, lo, hi, 7, gradcheck.DefaultConfig()); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestHandWrittenVsAutoDerived pairs each hand-written pullback with a
// dual-number rendition of the same function and requires agreement.
func TestHandWrittenVsAutoDerived(t *testing.T) {
	tests := []struct {
		name string
		hand op.Op[float64]
		auto op.Op[float64]
	}{
		{"mul", fn.Mul[float64](), op.FromDual2(func(x, y dual.Num[float64]) dual.Num[float64] {
			return x.Mul(y)
		})},
		{"div", fn.Div[float64](), op.FromDual2(func(x, y dual.Num[float64]) dual.Num[float64] {
			return x.Div(y)
		})},
		{"sigmoid", fn.Sigmoid[float64](), op.FromDual1(func(x dual.Num[float64]) dual.Num[float64] {
			return dual.Const(1.0).Div(dual.Const(1.0).Add(x.Neg().Exp()))
		})},
		{"tanh", fn.Tanh[float64](), op.FromDual1(func(x dual.Num[float64]) dual.Num[float64] {
			return x.Tanh()
		})},
		{"fma", fn.FMA[float64](), op.FromDual3(func(x, y, z dual.Num[float64]) dual.Num[float64] {
			return x.Mul(y).Add(z)
		})},
	}

	points := []float64{-1.7, -0.3, 0.4, 1.1, 2.6}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.auto.Arity(), tt.hand.Arity())
			at := make([]float64, tt.hand.Arity())
			for _, p := range points {
				for i := range at {
					at[i] = p + float64(i)*0.65
				}
				hv, hg := tt.hand.ValueGrad(at)
				av, ag := tt.auto.ValueGrad(at)
				assert.InDelta(t, av, hv, 1e-10, "value at %v", at)
				for i := range hg {
					assert.InDelta(t, ag[i], hg[i], 1e-10, "grad[%d] at %v", i, at)
				}
			}
		})
	}
}

func TestMul_Concrete(t *testing.T) {
	v, g := fn.Mul[float64]().ValueGrad([]float64{3, 5})
	assert.Equal(t, 15.0, v)
	assert.Equal(t, []float64{5, 3}, g)
}

func TestConst_EmptyGradient(t *testing.T) {
	v, g := fn.Const(2.75).ValueGrad(nil)
	assert.Equal(t, 2.75, v)
	assert.Empty(t, g)
}

func TestSumMean(t *testing.T) {
	at := []float64{1, 2, 3, 4}

	v, g := fn.Sum[float64](4).ValueGrad(at)
	assert.Equal(t, 10.0, v)
	assert.Equal(t, []float64{1, 1, 1, 1}, g)

	v, g = fn.Mean[float64](4).ValueGrad(at)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, g)
}

func TestReLU_Kink(t *testing.T) {
	o := fn.ReLU[float64]()

	v, g := o.ValueGrad([]float64{2})
	assert.Equal(t, 2.0, v)
	assert.Equal(t, []float64{1.0}, g)

	v, g = o.ValueGrad([]float64{-2})
	assert.Equal(t, 0.0, v)
	assert.Equal(t, []float64{0.0}, g)

	_, g = o.ValueGrad([]float64{0})
	assert.Equal(t, []float64{0.0}, g)
}

func TestRosenbrock_MinimumAndGradient(t *testing.T) {
	o := fn.Rosenbrock[float64]()

	v, g := o.ValueGrad([]float64{1, 1})
	assert.InDelta(t, 0.0, v, 1e-12)
	assert.InDelta(t, 0.0, g[0], 1e-10)
	assert.InDelta(t, 0.0, g[1], 1e-10)

	// Hand value away from the minimum: f(0,0) = 1.
	assert.InDelta(t, 1.0, o.Value([]float64{0, 0}), 1e-12)
}

func TestSqrt_Concrete(t *testing.T) {
	v, g := fn.Sqrt[float64]().ValueGrad([]float64{4})
	assert.Equal(t, 2.0, v)
	assert.Equal(t, []float64{0.25}, g)
}

func TestPowConst(t *testing.T) {
	o := fn.PowConst(3.0)
	v, g := o.ValueGrad([]float64{2})
	assert.InDelta(t, 8.0, v, 1e-12)
	assert.InDelta(t, 12.0, g[0], 1e-12)
}

func TestLookup(t *testing.T) {
	o, err := fn.Lookup("exp", 0)
	require.NoError(t, err)
	assert.InDelta(t, math.E, o.Value([]float64{1}), 1e-12)

	_, err = fn.Lookup("nope", 0)
	assert.Error(t, err)

	_, err = fn.Lookup("sum", 0)
	assert.Error(t, err, "parametric op needs a positive arity")

	o, err = fn.Lookup("sum", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Arity())
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := fn.Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	assert.Contains(t, names, "rosenbrock")
	assert.Contains(t, names, "mul")
}
