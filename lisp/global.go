package lisp

import "math"

// NewGlobalEnv builds the root environment: every special form and
// builtin procedure bound as an ordinary value, so the evaluator's
// combination dispatch (§4.5) needs no special knowledge of their
// names — it just inspects what each symbol happens to be bound to.
func NewGlobalEnv() *Env {
	env := newEnv(nil)
	registerSpecialForms(env)
	registerArithBuiltins(env)
	registerCompareBuiltins(env)
	registerListBuiltins(env)
	registerStringBuiltins(env)
	registerVectorBuiltins(env)
	registerCharBuiltins(env)
	registerTypeBuiltins(env)
	registerIOBuiltins(env)
	env.Define("pi", Number(math.Pi))
	return env
}
