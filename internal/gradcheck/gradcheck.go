// Package gradcheck cross-checks operation gradients against central
// finite differences.
//
// The op runtime never verifies the pullbacks it is handed; a
// hand-written derivative that is mathematically wrong is invisible to
// it. This package is the explicit check: it compares the gradient an
// operation reports with (f(x+ε) - f(x-ε)) / 2ε per input, within a
// tolerance that absorbs the inherent finite-difference error. Nothing
// invokes it implicitly.
package gradcheck

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gradop-ml/gradop/internal/op"
)

// Config holds the finite-difference step and the comparison tolerance.
type Config struct {
	Eps float64 // Perturbation per input (default 1e-6).
	Tol float64 // Max |analytic - numeric| accepted (default 1e-4).
}

// DefaultConfig returns the defaults used by the CLI and tests.
func DefaultConfig() Config {
	return Config{Eps: 1e-6, Tol: 1e-4}
}

func (c Config) withDefaults() Config {
	if c.Eps == 0 {
		c.Eps = 1e-6
	}
	if c.Tol == 0 {
		c.Tol = 1e-4
	}
	return c
}

// Check compares the operation's terminal-objective gradient at the given
// point against central finite differences of its value. It returns an
// error naming the first input whose derivative disagrees beyond the
// tolerance.
func Check(o op.Op[float64], at []float64, cfg Config) error {
	cfg = cfg.withDefaults()

	if len(at) != o.Arity() {
		return fmt.Errorf("gradcheck: operation expects %d inputs, got %d", o.Arity(), len(at))
	}

	analytic := o.Grad(at)
	if len(analytic) != o.Arity() {
		return fmt.Errorf("gradcheck: gradient has %d components, want %d", len(analytic), o.Arity())
	}

	probe := make([]float64, len(at))
	copy(probe, at)
	for i := range at {
		probe[i] = at[i] + cfg.Eps
		hi := o.Value(probe)
		probe[i] = at[i] - cfg.Eps
		lo := o.Value(probe)
		probe[i] = at[i]

		numeric := (hi - lo) / (2 * cfg.Eps)
		if diff := math.Abs(analytic[i] - numeric); diff > cfg.Tol {
			return fmt.Errorf("gradcheck: input %d at %v: analytic %g vs numeric %g (diff %g > tol %g)",
				i, at, analytic[i], numeric, diff, cfg.Tol)
		}
	}
	return nil
}

// CheckRandom runs Check at samples points drawn uniformly from [lo, hi)
// per input, with a deterministic seed. The first failure is returned.
func CheckRandom(o op.Op[float64], samples int, lo, hi float64, seed int64, cfg Config) error {
	rng := rand.New(rand.NewSource(seed))
	at := make([]float64, o.Arity())
	for s := 0; s < samples; s++ {
		for i := range at {
			at[i] = lo + rng.Float64()*(hi-lo)
		}
		if err := Check(o, at, cfg); err != nil {
			return fmt.Errorf("sample %d: %w", s, err)
		}
	}
	return nil
}
