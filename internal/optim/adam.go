package optim

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2014).
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * grad
//	v_t = beta2 * v_{t-1} + (1-beta2) * grad²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param -= lr * m_hat / (sqrt(v_hat) + eps)
type Adam[T op.Float] struct {
	lr    T
	beta1 T
	beta2 T
	eps   T
	t     int // Timestep for bias correction.
	m     []T // First moment estimates.
	v     []T // Second moment estimates.
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig[T op.Float] struct {
	LR    T // Learning rate (default: 0.001)
	Beta1 T // First-moment decay (default: 0.9)
	Beta2 T // Second-moment decay (default: 0.999)
	Eps   T // Division guard (default: 1e-8)
}

// NewAdam creates an Adam optimizer.
func NewAdam[T op.Float](cfg AdamConfig[T]) *Adam[T] {
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = 0.9
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = 0.999
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}
	return &Adam[T]{lr: cfg.LR, beta1: cfg.Beta1, beta2: cfg.Beta2, eps: cfg.Eps}
}

// Step applies one Adam update to params in place.
func (a *Adam[T]) Step(params, grads []T) {
	if a.m == nil {
		a.m = make([]T, len(params))
		a.v = make([]T, len(params))
	}
	a.t++

	bc1 := 1 - T(math.Pow(float64(a.beta1), float64(a.t)))
	bc2 := 1 - T(math.Pow(float64(a.beta2), float64(a.t)))

	for i := range params {
		g := grads[i]
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / bc1
		vHat := a.v[i] / bc2
		params[i] -= a.lr * mHat / (T(math.Sqrt(float64(vHat))) + a.eps)
	}
}

// LR returns the current learning rate.
func (a *Adam[T]) LR() T {
	return a.lr
}
