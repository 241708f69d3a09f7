package gradcheck

import (
	"strings"
	"testing"

	"github.com/gradop-ml/gradop/internal/op"
)

func correctSquare() op.Op[float64] {
	return op.New(1, func(xs []float64) (float64, op.Pullback[float64]) {
		x := xs[0]
		return x * x, func(delta *float64) []float64 {
			d := 1.0
			if delta != nil {
				d = *delta
			}
			return []float64{2 * d * x}
		}
	})
}

// wrongSquare claims d(x²)/dx = 3x.
func wrongSquare() op.Op[float64] {
	return op.New(1, func(xs []float64) (float64, op.Pullback[float64]) {
		x := xs[0]
		return x * x, func(*float64) []float64 {
			return []float64{3 * x}
		}
	})
}

func TestCheck_AcceptsCorrectGradient(t *testing.T) {
	if err := Check(correctSquare(), []float64{3}, DefaultConfig()); err != nil {
		t.Errorf("correct gradient rejected: %v", err)
	}
}

func TestCheck_RejectsWrongGradient(t *testing.T) {
	err := Check(wrongSquare(), []float64{3}, DefaultConfig())
	if err == nil {
		t.Fatal("wrong gradient accepted")
	}
	if !strings.Contains(err.Error(), "input 0") {
		t.Errorf("error should name the offending input: %v", err)
	}
}

func TestCheck_InputCountMismatch(t *testing.T) {
	if err := Check(correctSquare(), []float64{1, 2}, DefaultConfig()); err == nil {
		t.Error("expected an error for the wrong input count")
	}
}

func TestCheckRandom_Deterministic(t *testing.T) {
	err1 := CheckRandom(wrongSquare(), 10, -2, 2, 42, DefaultConfig())
	err2 := CheckRandom(wrongSquare(), 10, -2, 2, 42, DefaultConfig())
	if err1 == nil || err2 == nil {
		t.Fatal("wrong gradient accepted")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("same seed produced different failures:\n%v\n%v", err1, err2)
	}
}

func TestCheckRandom_PassesMultiInput(t *testing.T) {
	o := op.New(2, func(xs []float64) (float64, op.Pullback[float64]) {
		x, y := xs[0], xs[1]
		return x * y, func(delta *float64) []float64 {
			d := 1.0
			if delta != nil {
				d = *delta
			}
			return []float64{d * y, d * x}
		}
	})

	if err := CheckRandom(o, 20, -3, 3, 1, DefaultConfig()); err != nil {
		t.Error(err)
	}
}

func TestConfig_ZeroFieldsGetDefaults(t *testing.T) {
	// A zero config must behave like the defaults, not divide by zero.
	if err := Check(correctSquare(), []float64{1.5}, Config{}); err != nil {
		t.Error(err)
	}
}
