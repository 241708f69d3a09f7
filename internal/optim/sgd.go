package optim

import "github.com/gradop-ml/gradop/internal/op"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param -= lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param -= lr * velocity
type SGD[T op.Float] struct {
	lr       T
	momentum T
	velocity []T // Lazily sized to the parameter count.
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig[T op.Float] struct {
	LR       T // Learning rate (default: 0.01)
	Momentum T // Momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer.
func NewSGD[T op.Float](cfg SGDConfig[T]) *SGD[T] {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	return &SGD[T]{lr: cfg.LR, momentum: cfg.Momentum}
}

// Step applies one SGD update to params in place.
func (s *SGD[T]) Step(params, grads []T) {
	if s.momentum == 0 {
		for i := range params {
			params[i] -= s.lr * grads[i]
		}
		return
	}

	if s.velocity == nil {
		s.velocity = make([]T, len(params))
	}
	for i := range params {
		s.velocity[i] = s.momentum*s.velocity[i] + grads[i]
		params[i] -= s.lr * s.velocity[i]
	}
}

// LR returns the current learning rate.
func (s *SGD[T]) LR() T {
	return s.lr
}

// SetLR updates the learning rate, for scheduling between steps.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
