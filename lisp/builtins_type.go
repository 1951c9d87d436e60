package lisp

func registerTypeBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"boolean?", 1, 1, []Kind{KindAny}}, biBooleanP},
		{Callable{"symbol?", 1, 1, []Kind{KindAny}}, biSymbolP},
		{Callable{"procedure?", 1, 1, []Kind{KindAny}}, biProcedureP},
		{Callable{"atom?", 1, 1, []Kind{KindAny}}, biAtomP},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func biBooleanP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindBoolean), nil
}

func biSymbolP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindSymbol), nil
}

func biProcedureP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(IsProcedure(args[0])), nil
}

func biAtomP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(IsAtom(args[0])), nil
}
