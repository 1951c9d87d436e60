package lisp

import log "github.com/sirupsen/logrus"

// Interp carries the state an evaluation needs beyond the current
// environment: the global environment builtins can reach back to, the
// standard-input Reader the `read` builtin pulls from, and the output
// stream the I/O builtins write to (redirectable in tests).
type Interp struct {
	Global *Env
	Stdin  *Reader
	Stdout writer
}

type writer interface {
	WriteString(string) (int, error)
}

// Eval implements the dispatch loop of §4.5.
//
//  1. Booleans, numbers, characters, strings, vectors, promises, and
//     procedures are self-evaluating (the Glossary's general rule:
//     any non-symbol, non-list value evaluates to itself — a
//     superset of §4.5's enumerated list that additionally covers
//     vector and promise literals, which would otherwise be
//     unusable as literal expressions).
//  2. A symbol evaluates to its binding.
//  3. Nil cannot be evaluated.
//  4. A pair is a combination: its car is evaluated, then dispatched
//     as either a special form (unevaluated operands) or a procedure
//     (evaluated arguments).
func Eval(it *Interp, env *Env, expr Value) (Value, error) {
	switch t := expr.(type) {
	case Symbol:
		v, ok := env.Lookup(t)
		if !ok {
			return nil, newLispError("variable %s is not bound", t)
		}
		return v, nil
	case nilValue:
		return nil, newLispError("evaluating nil is prohibited")
	case *Pair:
		return evalPair(it, env, t)
	default:
		return expr, nil
	}
}

func evalPair(it *Interp, env *Env, p *Pair) (Value, error) {
	head, err := Eval(it, env, p.Car)
	if err != nil {
		return nil, err
	}
	if !IsList(p.Cdr) {
		return nil, newLispError("combination has an improper argument list: %s", Print(p))
	}
	operands := listToSlice(p.Cdr)

	switch proc := head.(type) {
	case *SpecialForm:
		log.WithField("form", proc.Name).Debug("eval: dispatching special form")
		if err := checkArity(&proc.Callable, operands, "operands"); err != nil {
			return nil, err
		}
		if err := checkTypes(&proc.Callable, operands); err != nil {
			return nil, err
		}
		return proc.Fn(it, env, operands)
	case *BuiltinProc, *Lambda:
		args := make([]Value, len(operands))
		for i, o := range operands {
			v, err := Eval(it, env, o)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return Apply(it, env, head, args)
	default:
		return nil, newLispError("not a procedure: %s", Print(head))
	}
}

// Apply implements §4.5's Apply: a lambda call builds a child
// environment of the lambda's captured environment binding parameter
// names to A, then evaluates each body expression in turn, returning
// the last result. A builtin call invokes its native body with A and
// the current environment.
func Apply(it *Interp, env *Env, proc Value, args []Value) (Value, error) {
	switch p := proc.(type) {
	case *BuiltinProc:
		if err := checkArity(&p.Callable, args, "arguments"); err != nil {
			return nil, err
		}
		if err := checkTypes(&p.Callable, args); err != nil {
			return nil, err
		}
		log.WithField("builtin", p.Name).Debug("eval: calling builtin")
		return p.Fn(it, env, args)
	case *Lambda:
		arity := Callable{Name: lambdaName(p), MinArity: len(p.Params), MaxArity: len(p.Params)}
		if err := checkArity(&arity, args, "arguments"); err != nil {
			return nil, err
		}
		child := p.Env.CreateChild(p.Params, args)
		var result Value = Nil
		for _, expr := range p.Body {
			v, err := Eval(it, child, expr)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	default:
		return nil, newLispError("not a procedure: %s", Print(proc))
	}
}

func lambdaName(l *Lambda) string {
	if l.Name != "" {
		return l.Name
	}
	return "lambda"
}

// checkArity implements the shared min/max arity check of §4.8. It
// builds the internal tooFewArgsError/tooManyArgsError subclasses and
// rewraps them through rewrapArityError using the noun the caller
// passes, which differs between procedures ("arguments") and special
// forms ("operands").
func checkArity(c *Callable, args []Value, noun string) error {
	if len(args) < c.MinArity {
		return rewrapArityError(&tooFewArgsError{name: c.Name}, noun)
	}
	if c.MaxArity != Unbounded && len(args) > c.MaxArity {
		return rewrapArityError(&tooManyArgsError{name: c.Name}, noun)
	}
	return nil
}

func rewrapArityError(err error, noun string) error {
	switch e := err.(type) {
	case *tooFewArgsError:
		return newLispError("too few %s: %s", noun, e.name)
	case *tooManyArgsError:
		return newLispError("too many %s: %s", noun, e.name)
	}
	return err
}

// checkTypes implements the per-slot type mask check of §4.8. An
// empty mask list, or a leading SameAsLast sentinel, means no type
// checking runs at all (used by builtins like print/display/list that
// accept any value of any type).
func checkTypes(c *Callable, args []Value) error {
	if len(c.Types) == 0 || c.Types[0] == SameAsLast {
		return nil
	}
	var mask Kind
	for i, a := range args {
		if i < len(c.Types) && c.Types[i] != SameAsLast {
			mask = c.Types[i]
		}
		if mask&a.Kind() == 0 {
			return newLispError("%s: argument %d has the wrong type: %s", c.Name, i+1, Print(a))
		}
	}
	return nil
}
