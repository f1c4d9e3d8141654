package curry

// CompileOption is an option for compiling.
type CompileOption interface {
	compileOption(compilectx) compilectx
}

// compilectx holds settings for one call to Compile.
type compilectx struct {
	// trailing allows input to remain after the top-level expression.
	trailing bool
}

type trailopt struct{}

// AllowTrailing tells Compile to stop at the end of the longest expression it
// can parse and ignore the rest of the input. By default, anything after the
// expression is an error.
func AllowTrailing() CompileOption {
	return trailopt{}
}

func (trailopt) compileOption(p compilectx) compilectx {
	p.trailing = true
	return p
}
