// Package lisp implements a small Scheme-like interpreter: a
// tokenizer and parser over s-expression syntax, a tagged-sum value
// model, an environment-chain evaluator, a table of special forms,
// and a library of builtin procedures.
package lisp

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Lisp is the top-level facade: a global environment plus the shared
// interpreter state (standard input for the read builtin, standard
// output for display/write/newline).
type Lisp struct {
	env   *Env
	interp *Interp
}

// New builds an interpreter with a freshly populated global
// environment, writing to os.Stdout and with no standard-input reader
// wired up yet (see SetInput).
func New() *Lisp {
	env := NewGlobalEnv()
	return &Lisp{
		env: env,
		interp: &Interp{
			Global: env,
			Stdout: os.Stdout,
		},
	}
}

// SetDebug raises or lowers the package-wide log level. The driver
// wires this to a -debug flag.
func SetDebug(on bool) {
	if on {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// SetInput wires the `read` builtin to pull from r, sharing the same
// Reader the driver uses for top-level forms when r is the driver's
// own input stream.
func (l *Lisp) SetInput(rd *Reader) {
	l.interp.Stdin = rd
}

// SetOutput redirects display/write/newline, primarily for tests that
// want to capture printed output.
func (l *Lisp) SetOutput(w writer) {
	l.interp.Stdout = w
}

func (l *Lisp) Env() *Env { return l.env }

// Eval evaluates a single already-parsed value in the global
// environment.
func (l *Lisp) Eval(expr Value) (Value, error) {
	return Eval(l.interp, l.env, expr)
}

// EvalString parses and evaluates every top-level form in src in
// order, returning the value of the last one (Nil if src contains no
// forms). It wraps src in a Reader and hands it to EvalReader, the
// same loop file mode runs over a source file.
func (l *Lisp) EvalString(src string) (Value, error) {
	return l.EvalReader(NewReader(strings.NewReader(src)))
}

// EvalReader drains rd one form at a time, evaluating each as it is
// read rather than parsing the whole stream up front, so a later
// syntax error doesn't discard the side effects of earlier forms.
func (l *Lisp) EvalReader(rd *Reader) (Value, error) {
	var result Value = Nil
	for {
		expr, err := rd.Read()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result, err = l.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
}
