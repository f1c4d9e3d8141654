package curry

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"
)

func TestConsts(t *testing.T) {
	if E != float32(math.E) {
		t.Errorf("E is %v, want %v", E, float32(math.E))
	}
	if Pi != float32(math.Pi) {
		t.Errorf("Pi is %v, want %v", Pi, float32(math.Pi))
	}
}

// TestPowAccuracy checks single-precision exponentiation against a
// higher-precision result.
func TestPowAccuracy(t *testing.T) {
	cases := []struct{ x, y float32 }{
		{2, 10},
		{2, 0.5},
		{10, 3},
		{1.5, 7.25},
		{E, Pi},
		{Pi, E},
		{0.1, 2},
	}
	for _, c := range cases {
		got := binop(Pow, c.x, c.y)
		x := new(big.Float).SetPrec(constprec).SetFloat64(float64(c.x))
		y := new(big.Float).SetPrec(constprec).SetFloat64(float64(c.y))
		z := bigfloat.Pow(new(big.Float).SetPrec(constprec), x, y)
		want, _ := z.Float64()
		if d := math.Abs(float64(got) - want); d > 1e-6*want {
			t.Errorf("%g^%g: want %g, got %g", c.x, c.y, want, got)
		}
	}
}
