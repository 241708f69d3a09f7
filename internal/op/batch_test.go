package op

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradop-ml/gradop/internal/parallel"
)

func TestEvalBatch(t *testing.T) {
	o := square()

	inputs := make([][]float64, 200)
	want := make([]float64, 200)
	for i := range inputs {
		x := float64(i)
		inputs[i] = []float64{x}
		want[i] = x * x
	}

	got := EvalBatch(o, inputs, parallel.Default())
	assert.Equal(t, want, got)

	// Sequential config agrees.
	got = EvalBatch(o, inputs, parallel.Config{Workers: 1})
	assert.Equal(t, want, got)
}

func TestGradBatch(t *testing.T) {
	o := square()

	inputs := [][]float64{{1}, {2}, {3}}
	got := GradBatch(o, inputs, parallel.Default())
	require.Len(t, got, 3)
	assert.Equal(t, [][]float64{{2}, {4}, {6}}, got)
}

func TestEvalBatchM(t *testing.T) {
	o := Lift(square())

	inputs := [][]float64{{1}, {2}, {3}, {4}}
	got, err := EvalBatchM(context.Background(), o, inputs, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9, 16}, got)
}

func TestEvalBatchM_ErrorWins(t *testing.T) {
	sentinel := errors.New("bad row")
	o := NewM(1, func(_ context.Context, xs []float64) (float64, PullbackM[float64], error) {
		if xs[0] == 2 {
			return 0, nil, sentinel
		}
		return xs[0], nil, nil
	})

	_, err := EvalBatchM(context.Background(), o, [][]float64{{1}, {2}, {3}}, 1)
	assert.ErrorIs(t, err, sentinel)
}
