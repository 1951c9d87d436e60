package lisp

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

func registerIOBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"print", 0, Unbounded, nil}, biPrint},
		{Callable{"display", 0, Unbounded, nil}, biDisplay},
		{Callable{"displayln", 0, Unbounded, nil}, biDisplayln},
		{Callable{"write", 1, 1, []Kind{KindAny}}, biWrite},
		{Callable{"newline", 0, 0, nil}, biNewline},
		{Callable{"error", 1, 1, []Kind{KindAny}}, biError},
		{Callable{"read", 0, 0, nil}, biRead},
		{Callable{"eval", 1, 1, []Kind{KindAny}}, biEval},
		{Callable{"apply", 2, 2, []Kind{KindProcedure, KindPair | KindNil}}, biApply},
		{Callable{"force", 1, 1, []Kind{KindPromise}}, biForce},
		{Callable{"exit", 0, 1, []Kind{KindNumber}}, biExit},
		{Callable{"dump", 1, 1, []Kind{KindAny}}, biDump},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

// biPrint prints each argument's print form on its own line (§4.7).
func biPrint(it *Interp, env *Env, args []Value) (Value, error) {
	for _, a := range args {
		it.Stdout.WriteString(Print(a))
		it.Stdout.WriteString("\n")
	}
	return Nil, nil
}

func biDisplay(it *Interp, env *Env, args []Value) (Value, error) {
	for _, a := range args {
		it.Stdout.WriteString(Display(a))
	}
	return Nil, nil
}

func biDisplayln(it *Interp, env *Env, args []Value) (Value, error) {
	if _, err := biDisplay(it, env, args); err != nil {
		return nil, err
	}
	return biNewline(it, env, nil)
}

func biError(it *Interp, env *Env, args []Value) (Value, error) {
	return nil, newLispError("%s", Display(args[0]))
}

func biWrite(it *Interp, env *Env, args []Value) (Value, error) {
	it.Stdout.WriteString(Print(args[0]))
	return Nil, nil
}

func biNewline(it *Interp, env *Env, args []Value) (Value, error) {
	it.Stdout.WriteString("\n")
	return Nil, nil
}

// biRead pulls the next form off the interpreter's standard-input
// reader — the same Reader the REPL/file driver draws top-level forms
// from (§4 supplement: a two-phase reader shared between the driver
// loop and the `read` builtin). End of input is reported as the
// empty-list sentinel rather than propagating io.EOF into the
// language, since Lisp programs have no exception-handling form to
// catch it with.
func biRead(it *Interp, env *Env, args []Value) (Value, error) {
	if it.Stdin == nil {
		return Nil, nil
	}
	v, err := it.Stdin.Read()
	if err == io.EOF {
		return Nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// biEval evaluates its operand in the caller's current environment,
// same as any other builtin call (§4.5).
func biEval(it *Interp, env *Env, args []Value) (Value, error) {
	return Eval(it, env, args[0])
}

func biApply(it *Interp, env *Env, args []Value) (Value, error) {
	if !IsList(args[1]) {
		return nil, newLispError("apply: expected a list of arguments")
	}
	return Apply(it, env, args[0], listToSlice(args[1]))
}

// biForce implements promise memoization (§3): the first force
// evaluates the captured expression in the captured environment and
// caches the result; every later force on the same promise returns
// the cached value without re-evaluating.
func biForce(it *Interp, env *Env, args []Value) (Value, error) {
	p := args[0].(*Promise)
	if p.Evaluated {
		return p.Cached, nil
	}
	v, err := Eval(it, p.Env, p.Expr)
	if err != nil {
		return nil, err
	}
	p.Cached = v
	p.Evaluated = true
	return v, nil
}

func biExit(it *Interp, env *Env, args []Value) (Value, error) {
	code := 0
	if len(args) == 1 {
		code = int(args[0].(Number))
	}
	return nil, &ExitEvent{Code: code}
}

// biDump is a diagnostic builtin with no analogue in the original
// implementation: it prints a deep, field-level dump of a value's Go
// representation, for inspecting the interpreter's own data
// structures rather than the language's print/display forms.
func biDump(it *Interp, env *Env, args []Value) (Value, error) {
	it.Stdout.WriteString(spew.Sdump(args[0]))
	return Nil, nil
}
