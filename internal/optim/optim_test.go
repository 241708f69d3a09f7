package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradop-ml/gradop/internal/fn"
	"github.com/gradop-ml/gradop/internal/optim"
)

func TestSGD_ConvergesOnSphere(t *testing.T) {
	objective := fn.Sphere[float64](3)
	opt := optim.NewSGD(optim.SGDConfig[float64]{LR: 0.1})

	result := optim.Minimize(objective, []float64{2, -3, 1}, opt, 200)

	assert.InDelta(t, 0.0, result.Value, 1e-8)
	for i, p := range result.Params {
		assert.InDelta(t, 0.0, p, 1e-4, "param %d", i)
	}
	assert.Equal(t, 200, result.Steps)
}

func TestSGD_MomentumConverges(t *testing.T) {
	objective := fn.Sphere[float64](2)
	opt := optim.NewSGD(optim.SGDConfig[float64]{LR: 0.05, Momentum: 0.9})

	result := optim.Minimize(objective, []float64{4, -4}, opt, 500)
	assert.InDelta(t, 0.0, result.Value, 1e-6)
}

func TestSGD_DefaultLR(t *testing.T) {
	opt := optim.NewSGD(optim.SGDConfig[float64]{})
	assert.Equal(t, 0.01, opt.LR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.LR())
}

func TestAdam_ReducesRosenbrock(t *testing.T) {
	objective := fn.Rosenbrock[float64]()
	opt := optim.NewAdam(optim.AdamConfig[float64]{LR: 0.02})

	start := []float64{-1.2, 1}
	startValue := objective.Value(start)

	result := optim.Minimize(objective, start, opt, 5000)

	require.Less(t, result.Value, startValue/100,
		"Adam should make substantial progress down the valley")
	// The valley floor leads to (1, 1).
	assert.InDelta(t, 1.0, result.Params[0], 0.3)
	assert.InDelta(t, 1.0, result.Params[1], 0.5)
}

func TestAdam_DefaultsApplied(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig[float64]{})
	assert.InDelta(t, 0.001, opt.LR(), 1e-12)
}

func TestMinimize_DoesNotMutateInit(t *testing.T) {
	objective := fn.Sphere[float64](2)
	init := []float64{1, 1}

	_ = optim.Minimize(objective, init, optim.NewSGD(optim.SGDConfig[float64]{LR: 0.1}), 10)
	assert.Equal(t, []float64{1, 1}, init)
}

func TestMinimize_ArityMismatchPanics(t *testing.T) {
	objective := fn.Sphere[float64](2)
	assert.Panics(t, func() {
		optim.Minimize(objective, []float64{1}, optim.NewSGD(optim.SGDConfig[float64]{}), 1)
	})
}

func TestMinimize_Float32(t *testing.T) {
	objective := fn.Sphere[float32](2)
	opt := optim.NewSGD(optim.SGDConfig[float32]{LR: 0.1})

	result := optim.Minimize(objective, []float32{1, -1}, opt, 100)
	assert.Less(t, float64(result.Value), 1e-6)
	assert.False(t, math.IsNaN(float64(result.Value)))
}
