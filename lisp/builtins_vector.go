package lisp

func registerVectorBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"vector?", 1, 1, []Kind{KindAny}}, biVectorP},
		{Callable{"make-vector", 1, 2, []Kind{KindNumber, KindAny}}, biMakeVector},
		{Callable{"vector", 0, Unbounded, nil}, biVector},
		{Callable{"vector-length", 1, 1, []Kind{KindVector}}, biVectorLength},
		{Callable{"vector-ref", 2, 2, []Kind{KindVector, KindNumber}}, biVectorRef},
		{Callable{"vector-set!", 3, 3, []Kind{KindVector, KindNumber, KindAny}}, biVectorSet},
		{Callable{"vector->list", 1, 1, []Kind{KindVector}}, biVectorToList},
		{Callable{"list->vector", 1, 1, []Kind{KindPair | KindNil}}, biListToVector},
		{Callable{"vector-copy", 1, 1, []Kind{KindVector}}, biVectorCopy},
		{Callable{"vector-fill!", 2, 2, []Kind{KindVector, KindAny}}, biVectorFill},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func biVectorP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindVector), nil
}

func biMakeVector(it *Interp, env *Env, args []Value) (Value, error) {
	n := int(args[0].(Number))
	if n < 0 {
		return nil, newLispError("make-vector: negative length")
	}
	var fill Value = Number(0)
	if len(args) == 2 {
		fill = args[1]
	}
	items := make([]Value, n)
	for i := range items {
		items[i] = fill
	}
	return &Vector{Items: items}, nil
}

// biVector builds a fresh vector whose elements are shallow copies of
// its arguments, mirroring list's §5 copy rule.
func biVector(it *Interp, env *Env, args []Value) (Value, error) {
	items := make([]Value, len(args))
	for i, a := range args {
		items[i] = ShallowCopy(a)
	}
	return &Vector{Items: items}, nil
}

func biVectorLength(it *Interp, env *Env, args []Value) (Value, error) {
	return Number(len(args[0].(*Vector).Items)), nil
}

func biVectorRef(it *Interp, env *Env, args []Value) (Value, error) {
	v := args[0].(*Vector)
	i := int(args[1].(Number))
	if i < 0 || i >= len(v.Items) {
		return nil, newLispError("vector-ref: index out of range")
	}
	return v.Items[i], nil
}

func biVectorSet(it *Interp, env *Env, args []Value) (Value, error) {
	v := args[0].(*Vector)
	i := int(args[1].(Number))
	if i < 0 || i >= len(v.Items) {
		return nil, newLispError("vector-set!: index out of range")
	}
	v.Items[i] = args[2]
	return Nil, nil
}

func biVectorToList(it *Interp, env *Env, args []Value) (Value, error) {
	return sliceToList(args[0].(*Vector).Items), nil
}

func biListToVector(it *Interp, env *Env, args []Value) (Value, error) {
	return &Vector{Items: listToSlice(args[0])}, nil
}

func biVectorCopy(it *Interp, env *Env, args []Value) (Value, error) {
	return ShallowCopy(args[0]), nil
}

func biVectorFill(it *Interp, env *Env, args []Value) (Value, error) {
	v := args[0].(*Vector)
	for i := range v.Items {
		v.Items[i] = args[1]
	}
	return Nil, nil
}
