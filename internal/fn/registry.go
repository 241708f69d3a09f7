package fn

import (
	"fmt"
	"sort"
)

// builders maps operation names to float64 constructors. Parametric
// operations receive n; fixed-arity ones ignore it.
var builders = map[string]func(n int) Op64{
	"add":        func(int) Op64 { return Add[float64]() },
	"sub":        func(int) Op64 { return Sub[float64]() },
	"mul":        func(int) Op64 { return Mul[float64]() },
	"div":        func(int) Op64 { return Div[float64]() },
	"neg":        func(int) Op64 { return Neg[float64]() },
	"sqrt":       func(int) Op64 { return Sqrt[float64]() },
	"exp":        func(int) Op64 { return Exp[float64]() },
	"log":        func(int) Op64 { return Log[float64]() },
	"sin":        func(int) Op64 { return Sin[float64]() },
	"cos":        func(int) Op64 { return Cos[float64]() },
	"tanh":       func(int) Op64 { return Tanh[float64]() },
	"sigmoid":    func(int) Op64 { return Sigmoid[float64]() },
	"relu":       func(int) Op64 { return ReLU[float64]() },
	"fma":        func(int) Op64 { return FMA[float64]() },
	"sum":        func(n int) Op64 { return Sum[float64](n) },
	"mean":       func(n int) Op64 { return Mean[float64](n) },
	"sphere":     func(n int) Op64 { return Sphere[float64](n) },
	"rosenbrock": func(int) Op64 { return Rosenbrock[float64]() },
}

// parametric names operations whose arity comes from the caller.
var parametric = map[string]bool{
	"sum":    true,
	"mean":   true,
	"sphere": true,
}

// restrictedDomain holds sampling bounds for operations that are
// undefined or numerically unstable on parts of the real line: sqrt and
// log need positive inputs, div blows up near a zero denominator.
var restrictedDomain = map[string][2]float64{
	"sqrt": {0.5, 4},
	"log":  {0.5, 4},
	"div":  {0.5, 4},
}

// Parametric reports whether the named operation takes its arity from
// the caller.
func Parametric(name string) bool {
	return parametric[name]
}

// CheckDomain returns the recommended sampling interval for gradient
// checks of the named operation.
func CheckDomain(name string) (lo, hi float64) {
	if d, ok := restrictedDomain[name]; ok {
		return d[0], d[1]
	}
	return -4, 4
}

// Lookup returns the named builtin operation over float64. For the
// parametric operations (sum, mean, sphere) n sets the arity and must be
// positive; fixed-arity operations ignore n.
func Lookup(name string, n int) (Op64, error) {
	build, ok := builders[name]
	if !ok {
		return Op64{}, fmt.Errorf("fn: unknown operation %q", name)
	}
	if parametric[name] && n <= 0 {
		return Op64{}, fmt.Errorf("fn: operation %q needs a positive arity, got %d", name, n)
	}
	return build(n), nil
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
