package op

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// effectfulSquare counts forward and pullback invocations.
func effectfulSquare(forwardCalls, pullbackCalls *int) OpM[float64] {
	return NewM(1, func(_ context.Context, xs []float64) (float64, PullbackM[float64], error) {
		*forwardCalls++
		x := xs[0]
		return x * x, func(_ context.Context, delta *float64) ([]float64, error) {
			*pullbackCalls++
			d := 1.0
			if delta != nil {
				d = *delta
			}
			return []float64{2 * d * x}, nil
		}, nil
	})
}

func TestOpM_ValueGrad(t *testing.T) {
	var fw, pb int
	o := effectfulSquare(&fw, &pb)

	v, g, err := o.ValueGrad(context.Background(), []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, []float64{6.0}, g)

	// One evaluation: one forward, one pullback.
	assert.Equal(t, 1, fw)
	assert.Equal(t, 1, pb)
}

func TestOpM_ValueSkipsPullback(t *testing.T) {
	var fw, pb int
	o := effectfulSquare(&fw, &pb)

	_, err := o.Value(context.Background(), []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 1, fw)
	assert.Equal(t, 0, pb)
}

func TestOpM_ForwardErrorPropagates(t *testing.T) {
	sentinel := errors.New("backend unavailable")
	o := NewM(1, func(context.Context, []float64) (float64, PullbackM[float64], error) {
		return 0, nil, sentinel
	})

	_, _, err := o.ValueGrad(context.Background(), []float64{1})
	assert.ErrorIs(t, err, sentinel)
}

func TestLift_MatchesPureOp(t *testing.T) {
	pure := mul()
	lifted := Lift(pure)

	v, g, err := lifted.ValueGrad(context.Background(), []float64{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)
	assert.Equal(t, []float64{5, 3}, g)

	gw, err := lifted.GradWith(context.Background(), []float64{3, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 6}, gw)
}

func TestComposeM_EffectOrderIsInputOrder(t *testing.T) {
	var order []string
	record := func(name string) OpM[float64] {
		return NewM(1, func(_ context.Context, xs []float64) (float64, PullbackM[float64], error) {
			order = append(order, name)
			return xs[0], func(_ context.Context, delta *float64) ([]float64, error) {
				d := 1.0
				if delta != nil {
					d = *delta
				}
				return []float64{d}, nil
			}, nil
		})
	}

	down := NewM(2, func(_ context.Context, xs []float64) (float64, PullbackM[float64], error) {
		order = append(order, "down")
		return xs[0] + xs[1], func(_ context.Context, delta *float64) ([]float64, error) {
			d := 1.0
			if delta != nil {
				d = *delta
			}
			return []float64{d, d}, nil
		}, nil
	})

	composed := ComposeM(down, record("up0"), record("up1"))
	v, err := composed.Value(context.Background(), []float64{4})
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
	assert.Equal(t, []string{"up0", "up1", "down"}, order)
}

func TestComposeM_UpstreamErrorAborts(t *testing.T) {
	sentinel := errors.New("boom")
	failing := NewM(1, func(context.Context, []float64) (float64, PullbackM[float64], error) {
		return 0, nil, sentinel
	})
	downCalled := false
	down := NewM(1, func(_ context.Context, xs []float64) (float64, PullbackM[float64], error) {
		downCalled = true
		return xs[0], nil, nil
	})

	_, err := ComposeM(down, failing).Value(context.Background(), []float64{1})
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, downCalled, "downstream must not run after an upstream error")
}

func TestComposeM_GradSharedInputSums(t *testing.T) {
	sq := Lift(square())
	cb := Lift(cube())
	sum := Lift(add())

	composed := ComposeM(sum, sq, cb)
	g, err := composed.Grad(context.Background(), []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{16.0}, g) // 2x + 3x² at 2
}
