package op

import "fmt"

// Compose chains a vector of upstream operations sharing one input set
// into a downstream operation consuming one value per upstream.
//
// The composed operation has the upstreams' arity. Its forward pass runs
// every upstream on the shared inputs and feeds the collected outputs to
// down. Its pullback asks down for the derivative of the output with
// respect to each intermediate, threads each of those through the
// matching upstream pullback, and sums the contributions per shared
// input, so an input used by several upstreams accumulates correctly.
//
// Every pullback along the chain is invoked at most once. With no
// upstreams the result is a zero-arity operation wrapping down.
func Compose[T Float](down Op[T], ups ...Op[T]) Op[T] {
	if down.arity != len(ups) {
		panic(fmt.Sprintf("op: compose: downstream expects %d inputs, got %d upstream operations", down.arity, len(ups)))
	}

	arity := 0
	for i, up := range ups {
		if i == 0 {
			arity = up.arity
			continue
		}
		if up.arity != arity {
			panic(fmt.Sprintf("op: compose: upstream %d has arity %d, want %d", i, up.arity, arity))
		}
	}

	m := len(ups)
	return New(arity, func(xs []T) (T, Pullback[T]) {
		mids := make([]T, m)
		pbs := make([]Pullback[T], m)
		for i, up := range ups {
			mids[i], pbs[i] = up.call(xs)
		}
		out, downPb := down.call(mids)

		return out, func(delta *T) []T {
			dmids := downPb(delta)
			grad := make([]T, arity)
			for i, pb := range pbs {
				d := dmids[i]
				for j, g := range pb(&d) {
					grad[j] += g
				}
			}
			return grad
		}
	})
}
