package lisp

func registerCharBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"char?", 1, 1, []Kind{KindAny}}, biCharP},
		{Callable{"char->integer", 1, 1, []Kind{KindChar}}, biCharToInteger},
		{Callable{"integer->char", 1, 1, []Kind{KindNumber}}, biIntegerToChar},
		{Callable{"char-alphabetic?", 1, 1, []Kind{KindChar}}, biCharAlphabetic},
		{Callable{"char-numeric?", 1, 1, []Kind{KindChar}}, biCharNumeric},
		{Callable{"char-whitespace?", 1, 1, []Kind{KindChar}}, biCharWhitespace},
		{Callable{"char-upcase", 1, 1, []Kind{KindChar}}, biCharUpcase},
		{Callable{"char-downcase", 1, 1, []Kind{KindChar}}, biCharDowncase},
		{Callable{"char=?", 2, 2, []Kind{KindChar, KindChar}}, biCharEq},
		{Callable{"char<?", 2, 2, []Kind{KindChar, KindChar}}, biCharLt},
		{Callable{"char>?", 2, 2, []Kind{KindChar, KindChar}}, biCharGt},
		{Callable{"char<=?", 2, 2, []Kind{KindChar, KindChar}}, biCharLe},
		{Callable{"char>=?", 2, 2, []Kind{KindChar, KindChar}}, biCharGe},
		{Callable{"char-ci=?", 2, 2, []Kind{KindChar, KindChar}}, biCharCiEq},
		{Callable{"char-ci<?", 2, 2, []Kind{KindChar, KindChar}}, biCharCiLt},
		{Callable{"char-ci>?", 2, 2, []Kind{KindChar, KindChar}}, biCharCiGt},
		{Callable{"char-ci<=?", 2, 2, []Kind{KindChar, KindChar}}, biCharCiLe},
		{Callable{"char-ci>=?", 2, 2, []Kind{KindChar, KindChar}}, biCharCiGe},
		{Callable{"char-uppercase?", 1, 1, []Kind{KindChar}}, biCharUppercase},
		{Callable{"char-lowercase?", 1, 1, []Kind{KindChar}}, biCharLowercase},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

// Character classification here is deliberately ASCII-only (§9's
// non-goal excludes Unicode-aware classification).

func biCharP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindChar), nil
}

func biCharToInteger(it *Interp, env *Env, args []Value) (Value, error) {
	return Number(byte(args[0].(Char))), nil
}

func biIntegerToChar(it *Interp, env *Env, args []Value) (Value, error) {
	return Char(byte(int(args[0].(Number)))), nil
}

func biCharAlphabetic(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	return Boolean((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')), nil
}

func biCharNumeric(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	return Boolean(c >= '0' && c <= '9'), nil
}

func biCharWhitespace(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	return Boolean(c == ' ' || c == '\t' || c == '\n' || c == '\r'), nil
}

func biCharUpcase(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return Char(c), nil
}

func biCharDowncase(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return Char(c), nil
}

func biCharEq(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Char) == args[1].(Char)), nil
}

func biCharLt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Char) < args[1].(Char)), nil
}

func biCharGt(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Char) > args[1].(Char)), nil
}

func biCharLe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Char) <= args[1].(Char)), nil
}

func biCharGe(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Char) >= args[1].(Char)), nil
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func biCharCiEq(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := byte(args[0].(Char)), byte(args[1].(Char))
	return Boolean(lowerByte(a) == lowerByte(b)), nil
}

func biCharCiLt(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := byte(args[0].(Char)), byte(args[1].(Char))
	return Boolean(lowerByte(a) < lowerByte(b)), nil
}

func biCharCiGt(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := byte(args[0].(Char)), byte(args[1].(Char))
	return Boolean(lowerByte(a) > lowerByte(b)), nil
}

func biCharCiLe(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := byte(args[0].(Char)), byte(args[1].(Char))
	return Boolean(lowerByte(a) <= lowerByte(b)), nil
}

func biCharCiGe(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := byte(args[0].(Char)), byte(args[1].(Char))
	return Boolean(lowerByte(a) >= lowerByte(b)), nil
}

func biCharUppercase(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	return Boolean(c >= 'A' && c <= 'Z'), nil
}

func biCharLowercase(it *Interp, env *Env, args []Value) (Value, error) {
	c := byte(args[0].(Char))
	return Boolean(c >= 'a' && c <= 'z'), nil
}
