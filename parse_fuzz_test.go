package curry_test

import (
	"testing"

	"github.com/zephyrtronium/curry"
)

func FuzzCompile(f *testing.F) {
	f.Add("x")
	f.Add("(x > 10) * x ^ 2 - x * 3")
	f.Add("sin(pi / 2)")
	f.Add("~x ~= 1 || x && 0")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := curry.Compile(s)
		if err != nil {
			return
		}
		if _, err := curry.Compile(a.String()); err != nil {
			t.Errorf("%q formatted as %q, which failed to parse: %v", s, a, err)
		}
	})
}
