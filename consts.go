package curry

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision used to derive constants before rounding them to
// single precision.
const constprec = 64

// E is Euler's number rounded to single precision.
var E = derive(func(out *big.Float) *big.Float {
	var one big.Float
	one.SetFloat64(1)
	return bigfloat.Exp(out, &one)
})

// Pi is pi rounded to single precision.
var Pi = derive(bigfloat.Pi)

// derive computes a constant at high precision and rounds it to float32.
func derive(f func(out *big.Float) *big.Float) float32 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	v, _ := r.Float32()
	return v
}
