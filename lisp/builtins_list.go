package lisp

func registerListBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"cons", 2, 2, []Kind{KindAny, KindAny}}, biCons},
		{Callable{"car", 1, 1, []Kind{KindPair}}, biCar},
		{Callable{"cdr", 1, 1, []Kind{KindPair}}, biCdr},
		{Callable{"set-car!", 2, 2, []Kind{KindPair, KindAny}}, biSetCar},
		{Callable{"set-cdr!", 2, 2, []Kind{KindPair, KindAny}}, biSetCdr},
		{Callable{"pair?", 1, 1, []Kind{KindAny}}, biPairP},
		{Callable{"null?", 1, 1, []Kind{KindAny}}, biNullP},
		{Callable{"list?", 1, 1, []Kind{KindAny}}, biListP},
		{Callable{"list", 0, Unbounded, nil}, biList},
		{Callable{"length", 1, 1, []Kind{KindPair | KindNil}}, biLength},
		{Callable{"append", 0, Unbounded, []Kind{KindPair | KindNil, SameAsLast}}, biAppend},
		{Callable{"reverse", 1, 1, []Kind{KindPair | KindNil}}, biReverse},
		{Callable{"list-ref", 2, 2, []Kind{KindPair | KindNil, KindNumber}}, biListRef},
		{Callable{"list-tail", 2, 2, []Kind{KindPair | KindNil, KindNumber}}, biListTail},
		{Callable{"last-pair", 1, 1, []Kind{KindPair}}, biLastPair},
		{Callable{"map", 2, Unbounded, nil}, biMap},
		{Callable{"for-each", 2, Unbounded, nil}, biForEach},
		{Callable{"filter", 2, 2, []Kind{KindProcedure, KindPair | KindNil}}, biFilter},
		{Callable{"reduce", 2, 2, []Kind{KindProcedure, KindPair | KindNil}}, biReduce},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func biCons(it *Interp, env *Env, args []Value) (Value, error) {
	return NewPair(args[0], args[1]), nil
}

func biCar(it *Interp, env *Env, args []Value) (Value, error) {
	return args[0].(*Pair).Car, nil
}

func biCdr(it *Interp, env *Env, args []Value) (Value, error) {
	return args[0].(*Pair).Cdr, nil
}

func biSetCar(it *Interp, env *Env, args []Value) (Value, error) {
	args[0].(*Pair).Car = args[1]
	return Nil, nil
}

func biSetCdr(it *Interp, env *Env, args []Value) (Value, error) {
	args[0].(*Pair).Cdr = args[1]
	return Nil, nil
}

func biPairP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(IsPair(args[0])), nil
}

func biNullP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(IsNil(args[0])), nil
}

func biListP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(IsList(args[0])), nil
}

// biList builds a fresh list whose elements are shallow copies of its
// arguments (§5).
func biList(it *Interp, env *Env, args []Value) (Value, error) {
	return copyListSpine(args), nil
}

func biLength(it *Interp, env *Env, args []Value) (Value, error) {
	n, ok := listLength(args[0])
	if !ok {
		return nil, newLispError("length: improper list")
	}
	return Number(n), nil
}

func biAppend(it *Interp, env *Env, args []Value) (Value, error) {
	return appendLists(args)
}

func biReverse(it *Interp, env *Env, args []Value) (Value, error) {
	var out Value = Nil
	v := args[0]
	for {
		p, ok := v.(*Pair)
		if !ok {
			return out, nil
		}
		out = NewPair(p.Car, out)
		v = p.Cdr
	}
}

func biListRef(it *Interp, env *Env, args []Value) (Value, error) {
	n := int(args[1].(Number))
	v := args[0]
	for i := 0; i < n; i++ {
		p, ok := v.(*Pair)
		if !ok {
			return nil, newLispError("list-ref: index out of range")
		}
		v = p.Cdr
	}
	p, ok := v.(*Pair)
	if !ok {
		return nil, newLispError("list-ref: index out of range")
	}
	return p.Car, nil
}

func biListTail(it *Interp, env *Env, args []Value) (Value, error) {
	n := int(args[1].(Number))
	v := args[0]
	for i := 0; i < n; i++ {
		p, ok := v.(*Pair)
		if !ok {
			return nil, newLispError("list-tail: index out of range")
		}
		v = p.Cdr
	}
	return v, nil
}

func biLastPair(it *Interp, env *Env, args []Value) (Value, error) {
	p := args[0].(*Pair)
	for {
		next, ok := p.Cdr.(*Pair)
		if !ok {
			return p, nil
		}
		p = next
	}
}

// biMap walks N lists in lockstep, applying proc to the N-tuple of
// current heads until the shortest list runs out (§4.7).
func biMap(it *Interp, env *Env, args []Value) (Value, error) {
	proc, lists := args[0], args[1:]
	var results []Value
	for {
		row, ok := nextRow(lists)
		if !ok {
			break
		}
		lists = row.rest
		v, err := Apply(it, env, proc, row.heads)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return copyListSpine(results), nil
}

func biForEach(it *Interp, env *Env, args []Value) (Value, error) {
	proc, lists := args[0], args[1:]
	for {
		row, ok := nextRow(lists)
		if !ok {
			return Nil, nil
		}
		lists = row.rest
		if _, err := Apply(it, env, proc, row.heads); err != nil {
			return nil, err
		}
	}
}

type mapRow struct {
	heads []Value
	rest  []Value
}

func nextRow(lists []Value) (mapRow, bool) {
	heads := make([]Value, len(lists))
	rest := make([]Value, len(lists))
	for i, l := range lists {
		p, ok := l.(*Pair)
		if !ok {
			return mapRow{}, false
		}
		heads[i] = p.Car
		rest[i] = p.Cdr
	}
	return mapRow{heads: heads, rest: rest}, true
}

func biFilter(it *Interp, env *Env, args []Value) (Value, error) {
	proc, v := args[0], args[1]
	var results []Value
	for {
		p, ok := v.(*Pair)
		if !ok {
			break
		}
		keep, err := Apply(it, env, proc, []Value{p.Car})
		if err != nil {
			return nil, err
		}
		if IsTruthy(keep) {
			results = append(results, p.Car)
		}
		v = p.Cdr
	}
	return sliceToList(results), nil
}

// biReduce combines a list's elements right-to-left: an empty list is
// an error (there is no seed value to fall back on), a singleton list
// returns its one element unchanged, and otherwise it is
// f(car, reduce(f, cdr)) (§4.7).
func biReduce(it *Interp, env *Env, args []Value) (Value, error) {
	proc, v := args[0], args[1]
	p, ok := v.(*Pair)
	if !ok {
		return nil, newLispError("reduce: empty list")
	}
	if _, ok := p.Cdr.(*Pair); !ok {
		return p.Car, nil
	}
	rest, err := biReduce(it, env, []Value{proc, p.Cdr})
	if err != nil {
		return nil, err
	}
	return Apply(it, env, proc, []Value{p.Car, rest})
}
