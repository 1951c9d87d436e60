package lisp

func registerCompareBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"=", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biNumEq},
		{Callable{"<", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biLt},
		{Callable{">", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biGt},
		{Callable{"<=", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biLe},
		{Callable{">=", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biGe},
		{Callable{"eq?", 2, 2, []Kind{KindAny, SameAsLast}}, biEqP},
		{Callable{"equal?", 2, 2, []Kind{KindAny, SameAsLast}}, biEqualP},
		{Callable{"not", 1, 1, []Kind{KindAny}}, biNot},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func chainCompare(args []Value, ok func(a, b Number) bool) Value {
	ns := asNumbers(args)
	for i := 1; i < len(ns); i++ {
		if !ok(ns[i-1], ns[i]) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func biNumEq(it *Interp, env *Env, args []Value) (Value, error) {
	return chainCompare(args, func(a, b Number) bool { return a == b }), nil
}

func biLt(it *Interp, env *Env, args []Value) (Value, error) {
	return chainCompare(args, func(a, b Number) bool { return a < b }), nil
}

func biGt(it *Interp, env *Env, args []Value) (Value, error) {
	return chainCompare(args, func(a, b Number) bool { return a > b }), nil
}

func biLe(it *Interp, env *Env, args []Value) (Value, error) {
	return chainCompare(args, func(a, b Number) bool { return a <= b }), nil
}

func biGe(it *Interp, env *Env, args []Value) (Value, error) {
	return chainCompare(args, func(a, b Number) bool { return a >= b }), nil
}

func biEqP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(Eq(args[0], args[1])), nil
}

func biEqualP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(Equal(args[0], args[1])), nil
}

func biNot(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(!IsTruthy(args[0])), nil
}
