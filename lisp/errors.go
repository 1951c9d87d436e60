package lisp

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError is produced by the tokenizer or parser (§7). It always
// carries a textual message; in file mode it terminates execution, in
// REPL mode it is reported and the buffered value queue is discarded.
type SyntaxError struct {
	msg string
}

func (e *SyntaxError) Error() string { return e.msg }

func newSyntaxError(format string, args ...interface{}) error {
	return &SyntaxError{msg: fmt.Sprintf(format, args...)}
}

// LispError is produced by the evaluator, builtins, or special forms:
// undefined variable, arity violation, type violation, divide-by-zero,
// and so on (§7).
type LispError struct {
	msg string
}

func (e *LispError) Error() string { return e.msg }

func newLispError(format string, args ...interface{}) error {
	return &LispError{msg: fmt.Sprintf(format, args...)}
}

// tooFewArgsError and tooManyArgsError are the internal subclasses
// mentioned in §7: checkArity builds one of these and rewraps it at
// once (rewrapArityError) into a LispError whose wording depends on
// the noun its caller passes: "arguments" from Apply for procedures,
// "operands" from evalPair for special forms.
type tooFewArgsError struct{ name string }

func (e *tooFewArgsError) Error() string { return "too few arguments: " + e.name }

type tooManyArgsError struct{ name string }

func (e *tooManyArgsError) Error() string { return "too many arguments: " + e.name }

// ExitEvent is the non-local exit raised by the exit builtin (§7,
// §9). It is not an error in the LispError sense: the REPL and file
// drivers catch it by type, not by printing it, and use Code to set
// the process exit status.
type ExitEvent struct {
	Code int
}

func (e *ExitEvent) Error() string { return fmt.Sprintf("exit(%d)", e.Code) }

// InterpreterError reports infrastructure failures outside the
// language itself, such as a source file that cannot be opened (§7).
// It wraps its cause with github.com/pkg/errors so the original OS
// error survives the taxonomy rewrap for %+v-style diagnostics.
type InterpreterError struct {
	msg   string
	cause error
}

func (e *InterpreterError) Error() string { return e.msg }

func (e *InterpreterError) Unwrap() error { return e.cause }

func newInterpreterError(cause error, format string, args ...interface{}) error {
	return &InterpreterError{
		msg:   fmt.Sprintf(format, args...),
		cause: errors.Wrap(cause, "interpreter error"),
	}
}
