package lisp

func registerStringBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"string?", 1, 1, []Kind{KindAny}}, biStringP},
		{Callable{"make-string", 1, 2, []Kind{KindNumber, KindChar}}, biMakeString},
		{Callable{"string", 0, Unbounded, []Kind{KindChar, SameAsLast}}, biStringCtor},
		{Callable{"string-fill!", 2, 2, []Kind{KindString, KindChar}}, biStringFill},
		{Callable{"string-ci=?", 2, 2, []Kind{KindString, KindString}}, biStringCiEq},
		{Callable{"string-length", 1, 1, []Kind{KindString}}, biStringLength},
		{Callable{"string-ref", 2, 2, []Kind{KindString, KindNumber}}, biStringRef},
		{Callable{"string-set!", 3, 3, []Kind{KindString, KindNumber, KindChar}}, biStringSet},
		{Callable{"string-append", 0, Unbounded, []Kind{KindString, SameAsLast}}, biStringAppend},
		{Callable{"substring", 2, 3, []Kind{KindString, KindNumber, KindNumber}}, biSubstring},
		{Callable{"string->list", 1, 1, []Kind{KindString}}, biStringToList},
		{Callable{"list->string", 1, 1, []Kind{KindPair | KindNil}}, biListToString},
		{Callable{"string->symbol", 1, 1, []Kind{KindString}}, biStringToSymbol},
		{Callable{"symbol->string", 1, 1, []Kind{KindSymbol}}, biSymbolToString},
		{Callable{"string-copy", 1, 1, []Kind{KindString}}, biStringCopy},
		{Callable{"string=?", 2, 2, []Kind{KindString, KindString}}, biStringEq},
		{Callable{"string<?", 2, 2, []Kind{KindString, KindString}}, biStringLt},
		{Callable{"string>?", 2, 2, []Kind{KindString, KindString}}, biStringGt},
		{Callable{"string<=?", 2, 2, []Kind{KindString, KindString}}, biStringLe},
		{Callable{"string>=?", 2, 2, []Kind{KindString, KindString}}, biStringGe},
		{Callable{"string-ci<?", 2, 2, []Kind{KindString, KindString}}, biStringCiLt},
		{Callable{"string-ci>?", 2, 2, []Kind{KindString, KindString}}, biStringCiGt},
		{Callable{"string-ci<=?", 2, 2, []Kind{KindString, KindString}}, biStringCiLe},
		{Callable{"string-ci>=?", 2, 2, []Kind{KindString, KindString}}, biStringCiGe},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func biStringP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindString), nil
}

func biStringLength(it *Interp, env *Env, args []Value) (Value, error) {
	return Number(len(args[0].(*String).Bytes)), nil
}

func biStringRef(it *Interp, env *Env, args []Value) (Value, error) {
	s := args[0].(*String)
	i := int(args[1].(Number))
	if i < 0 || i >= len(s.Bytes) {
		return nil, newLispError("string-ref: index out of range")
	}
	return Char(s.Bytes[i]), nil
}

// biStringSet mutates its argument in place, matching §5's
// reference-shared string handle semantics.
func biStringSet(it *Interp, env *Env, args []Value) (Value, error) {
	s := args[0].(*String)
	i := int(args[1].(Number))
	if i < 0 || i >= len(s.Bytes) {
		return nil, newLispError("string-set!: index out of range")
	}
	s.Bytes[i] = byte(args[2].(Char))
	return Nil, nil
}

func biStringAppend(it *Interp, env *Env, args []Value) (Value, error) {
	var out []byte
	for _, a := range args {
		out = append(out, a.(*String).Bytes...)
	}
	return &String{Bytes: out}, nil
}

func biSubstring(it *Interp, env *Env, args []Value) (Value, error) {
	s := args[0].(*String)
	start := int(args[1].(Number))
	end := len(s.Bytes)
	if len(args) == 3 {
		end = int(args[2].(Number))
	}
	if start < 0 || end > len(s.Bytes) || start > end {
		return nil, newLispError("substring: index out of range")
	}
	b := make([]byte, end-start)
	copy(b, s.Bytes[start:end])
	return &String{Bytes: b}, nil
}

func biStringToList(it *Interp, env *Env, args []Value) (Value, error) {
	s := args[0].(*String)
	out := make([]Value, len(s.Bytes))
	for i, c := range s.Bytes {
		out[i] = Char(c)
	}
	return sliceToList(out), nil
}

func biListToString(it *Interp, env *Env, args []Value) (Value, error) {
	items := listToSlice(args[0])
	b := make([]byte, len(items))
	for i, v := range items {
		c, ok := v.(Char)
		if !ok {
			return nil, newLispError("list->string: expected a list of characters")
		}
		b[i] = byte(c)
	}
	return &String{Bytes: b}, nil
}

func biStringToSymbol(it *Interp, env *Env, args []Value) (Value, error) {
	return Symbol(args[0].(*String).String()), nil
}

func biSymbolToString(it *Interp, env *Env, args []Value) (Value, error) {
	return NewString(string(args[0].(Symbol))), nil
}

func biStringCopy(it *Interp, env *Env, args []Value) (Value, error) {
	return ShallowCopy(args[0]), nil
}

func biStringEq(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(*String).String() == args[1].(*String).String()), nil
}

func biMakeString(it *Interp, env *Env, args []Value) (Value, error) {
	k := int(args[0].(Number))
	if k < 0 {
		return nil, newLispError("make-string: negative length")
	}
	fill := byte(' ')
	if len(args) == 2 {
		fill = byte(args[1].(Char))
	}
	b := make([]byte, k)
	for i := range b {
		b[i] = fill
	}
	return &String{Bytes: b}, nil
}

func biStringCtor(it *Interp, env *Env, args []Value) (Value, error) {
	b := make([]byte, len(args))
	for i, a := range args {
		b[i] = byte(a.(Char))
	}
	return &String{Bytes: b}, nil
}

func biStringFill(it *Interp, env *Env, args []Value) (Value, error) {
	s := args[0].(*String)
	c := byte(args[1].(Char))
	for i := range s.Bytes {
		s.Bytes[i] = c
	}
	return Nil, nil
}

func biStringLt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(*String).String() < args[1].(*String).String()), nil
}

func biStringGt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(*String).String() > args[1].(*String).String()), nil
}

func biStringLe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(*String).String() <= args[1].(*String).String()), nil
}

func biStringGe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(*String).String() >= args[1].(*String).String()), nil
}

// foldedString lowercases a string's ASCII bytes for case-insensitive
// comparison, matching char-ci's per-byte lowerByte rule rather than
// pulling in Unicode case folding (ASCII-only per §9's Non-goals).
func foldedString(s *String) string {
	b := make([]byte, len(s.Bytes))
	for i, c := range s.Bytes {
		b[i] = lowerByte(c)
	}
	return string(b)
}

func biStringCiLt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(foldedString(args[0].(*String)) < foldedString(args[1].(*String))), nil
}

func biStringCiGt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(foldedString(args[0].(*String)) > foldedString(args[1].(*String))), nil
}

func biStringCiLe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(foldedString(args[0].(*String)) <= foldedString(args[1].(*String))), nil
}

func biStringCiGe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(foldedString(args[0].(*String)) >= foldedString(args[1].(*String))), nil
}

func biStringCiEq(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := args[0].(*String).Bytes, args[1].(*String).Bytes
	if len(a) != len(b) {
		return Boolean(false), nil
	}
	for i := range a {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}
