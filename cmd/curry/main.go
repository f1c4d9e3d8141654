// Command curry compiles and evaluates expressions of one variable.
//
// Usage:
//
//	# Evaluate the built-in examples
//	curry
//
//	# Evaluate expressions at several inputs
//	curry -x 1,2,3 'x^2 - 1' 'sin(x) > 0'
//
//	# One expression per line from a file, or stdin with --in -
//	curry --in exprs.txt -x 10
//
//	# Expressions and inputs from a YAML or TOML file
//	curry --batch batch.yaml
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/curry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	at      []string
	in      string
	batch   string
	verb    string
	echo    bool
	lenient bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "curry [flags] [expression...]",
		Short: "Evaluate expressions of one variable",
		Long: `curry compiles each expression once and evaluates it for every value of x.

Expressions use x, integers, e, pi, parentheses, sin, cos, ln, and the
operators ^ * / + - ~ < <= > >= == ~= && ||. Comparisons and logical
operators give 1 for true and 0 for false.

With no expressions, curry evaluates a few examples.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), o.verbose)
			jobs, err := o.jobs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			r := runner{
				out:    cmd.OutOrStdout(),
				log:    log,
				verb:   o.verb,
				echo:   o.echo,
				labels: isTerminal(cmd.OutOrStdout()),
			}
			if o.lenient {
				r.opts = append(r.opts, curry.AllowTrailing())
			}
			return r.run(jobs)
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&o.at, "at", "x", []string{"0"}, "values of x at which to evaluate each expression")
	f.StringVar(&o.in, "in", "", "file with one expression per line (- for stdin)")
	f.StringVar(&o.batch, "batch", "", "YAML or TOML file listing expressions and inputs")
	f.StringVar(&o.verb, "fmt", "%g", "result formatting verb")
	f.BoolVar(&o.echo, "echo", false, "print parse trees")
	f.BoolVar(&o.lenient, "lenient", false, "ignore input following a complete expression")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// job is an expression and the inputs to evaluate it at.
type job struct {
	src string
	at  []float32
}

// demos are evaluated when no expressions are given.
var demos = []job{
	{"x + 5", []float32{10}},
	{"(x - 3) * 5", []float32{10}},
	{"(x > 10) * x ^ 2 - x * 3", []float32{10}},
	{"ln e", []float32{10}},
	{"sin(pi / 2)", []float32{10}},
	{"(x + 5) * (x - 3)", []float32{9}},
}

// jobs collects the expressions to evaluate from the batch file, the input
// file, and args, in that order.
func (o *options) jobs(stdin io.Reader, args []string) ([]job, error) {
	at, err := parseInputs(o.at)
	if err != nil {
		return nil, err
	}
	var jobs []job
	if o.batch != "" {
		b, err := loadBatch(o.batch)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, b.jobs(at)...)
	}
	if o.in != "" {
		lines, err := readLines(o.in, stdin)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, lo.Map(lines, func(src string, _ int) job { return job{src, at} })...)
	}
	jobs = append(jobs, lo.Map(args, func(src string, _ int) job { return job{src, at} })...)
	if len(jobs) == 0 && o.batch == "" && o.in == "" {
		return demos, nil
	}
	return jobs, nil
}

// parseInputs parses values of x given on the command line.
func parseInputs(vals []string) ([]float32, error) {
	r := make([]float32, 0, len(vals))
	for _, s := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value for x %q: %w", s, err)
		}
		r = append(r, float32(v))
	}
	return r, nil
}

// readLines reads the non-blank lines of a file, or of stdin if name is "-".
func readLines(name string, stdin io.Reader) ([]string, error) {
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open expressions file: %w", err)
		}
		defer f.Close()
		in = f
	}
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions from %s: %w", name, err)
	}
	return lo.Filter(lines, func(s string, _ int) bool { return strings.TrimSpace(s) != "" }), nil
}
