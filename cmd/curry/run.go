package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/curry"
)

// runner compiles and evaluates jobs, writing one result per line.
type runner struct {
	out  io.Writer
	log  *slog.Logger
	verb string
	opts []curry.CompileOption
	// echo prefixes each result with the expression's parse tree.
	echo bool
	// labels prefixes each result with the expression and the value of x.
	labels bool
}

func (r *runner) run(jobs []job) error {
	failed := 0
	for _, j := range jobs {
		e, err := curry.Compile(j.src, r.opts...)
		if err != nil {
			r.log.Error("compile failed", "expr", j.src, "error", err)
			failed++
			continue
		}
		r.log.Debug("compiled", "expr", j.src, "tree", e.String(), "inputs", len(j.at))
		for _, x := range j.at {
			if r.echo {
				fmt.Fprintf(r.out, "%v : ", e)
			}
			if r.labels {
				fmt.Fprintf(r.out, "%s @ %g = ", j.src, x)
			}
			fmt.Fprintf(r.out, r.verb+"\n", e.Eval(x))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to compile", failed, len(jobs))
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
