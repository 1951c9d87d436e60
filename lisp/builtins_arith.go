package lisp

import "math"

func registerArithBuiltins(env *Env) {
	defs := []*BuiltinProc{
		{Callable{"+", 0, Unbounded, []Kind{KindNumber, SameAsLast}}, biAdd},
		{Callable{"-", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biSub},
		{Callable{"*", 0, Unbounded, []Kind{KindNumber, SameAsLast}}, biMul},
		{Callable{"/", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biDiv},
		{Callable{"quotient", 2, 2, []Kind{KindNumber, SameAsLast}}, biQuotient},
		{Callable{"remainder", 2, 2, []Kind{KindNumber, SameAsLast}}, biRemainder},
		{Callable{"modulo", 2, 2, []Kind{KindNumber, SameAsLast}}, biModulo},
		{Callable{"abs", 1, 1, []Kind{KindNumber}}, biAbs},
		{Callable{"min", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biMin},
		{Callable{"max", 1, Unbounded, []Kind{KindNumber, SameAsLast}}, biMax},
		{Callable{"expt", 2, 2, []Kind{KindNumber, SameAsLast}}, biExpt},
		{Callable{"gcd", 0, Unbounded, []Kind{KindNumber, SameAsLast}}, biGcd},
		{Callable{"lcm", 0, Unbounded, []Kind{KindNumber, SameAsLast}}, biLcm},
		{Callable{"sqrt", 1, 1, []Kind{KindNumber}}, biSqrt},
		{Callable{"1+", 1, 1, []Kind{KindNumber}}, biAdd1},
		{Callable{"1-", 1, 1, []Kind{KindNumber}}, biSub1},
		{Callable{"zero?", 1, 1, []Kind{KindNumber}}, biZero},
		{Callable{"positive?", 1, 1, []Kind{KindNumber}}, biPositive},
		{Callable{"negative?", 1, 1, []Kind{KindNumber}}, biNegative},
		{Callable{"even?", 1, 1, []Kind{KindNumber}}, biEven},
		{Callable{"odd?", 1, 1, []Kind{KindNumber}}, biOdd},
		{Callable{"number?", 1, 1, []Kind{KindAny}}, biNumberP},
		{Callable{"integer?", 1, 1, []Kind{KindAny}}, biIntegerP},
	}
	for _, b := range defs {
		env.Define(Symbol(b.Name), b)
	}
}

func asNumbers(args []Value) []Number {
	ns := make([]Number, len(args))
	for i, a := range args {
		ns[i] = a.(Number)
	}
	return ns
}

func biAdd(it *Interp, env *Env, args []Value) (Value, error) {
	var sum Number
	for _, n := range asNumbers(args) {
		sum += n
	}
	return sum, nil
}

func biSub(it *Interp, env *Env, args []Value) (Value, error) {
	ns := asNumbers(args)
	if len(ns) == 1 {
		return -ns[0], nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return result, nil
}

func biMul(it *Interp, env *Env, args []Value) (Value, error) {
	result := Number(1)
	for _, n := range asNumbers(args) {
		result *= n
	}
	return result, nil
}

func biDiv(it *Interp, env *Env, args []Value) (Value, error) {
	ns := asNumbers(args)
	if len(ns) == 1 {
		if ns[0] == 0 {
			return nil, newLispError("/: division by zero")
		}
		return 1 / ns[0], nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, newLispError("/: division by zero")
		}
		result /= n
	}
	return result, nil
}

// intNearZero truncates toward zero, matching the original
// implementation's integer-division semantics rather than Go's
// math.Trunc-on-float ambiguity for negative operands.
func intNearZero(n Number) int64 {
	return int64(n)
}

func biQuotient(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := args[0].(Number), args[1].(Number)
	if b == 0 {
		return nil, newLispError("quotient: division by zero")
	}
	return Number(intNearZero(a) / intNearZero(b)), nil
}

func biRemainder(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := args[0].(Number), args[1].(Number)
	if b == 0 {
		return nil, newLispError("remainder: division by zero")
	}
	return Number(intNearZero(a) % intNearZero(b)), nil
}

// biModulo's sign follows the divisor, unlike remainder, which follows
// the dividend. Dividing by zero raises a LispError (Open Question #3:
// the original implementation instead silently returned the dividend
// unchanged, which this rewrite treats as a latent bug rather than
// behavior worth preserving).
func biModulo(it *Interp, env *Env, args []Value) (Value, error) {
	a, b := intNearZero(args[0].(Number)), intNearZero(args[1].(Number))
	if b == 0 {
		return nil, newLispError("modulo: division by zero")
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return Number(r), nil
}

func biAbs(it *Interp, env *Env, args []Value) (Value, error) {
	n := args[0].(Number)
	if n < 0 {
		return -n, nil
	}
	return n, nil
}

func biMin(it *Interp, env *Env, args []Value) (Value, error) {
	ns := asNumbers(args)
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m, nil
}

func biMax(it *Interp, env *Env, args []Value) (Value, error) {
	ns := asNumbers(args)
	m := ns[0]
	for _, n := range ns[1:] {
		if n > m {
			m = n
		}
	}
	return m, nil
}

func biExpt(it *Interp, env *Env, args []Value) (Value, error) {
	base, exp := args[0].(Number), args[1].(Number)
	return Number(math.Pow(float64(base), float64(exp))), nil
}

func biSqrt(it *Interp, env *Env, args []Value) (Value, error) {
	n := args[0].(Number)
	if n < 0 {
		return nil, newLispError("sqrt: negative argument")
	}
	return Number(math.Sqrt(float64(n))), nil
}

func gcd2(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func biGcd(it *Interp, env *Env, args []Value) (Value, error) {
	if len(args) == 0 {
		return Number(0), nil
	}
	result := intNearZero(args[0].(Number))
	for _, n := range args[1:] {
		result = gcd2(result, intNearZero(n.(Number)))
	}
	if result < 0 {
		result = -result
	}
	return Number(result), nil
}

func biLcm(it *Interp, env *Env, args []Value) (Value, error) {
	if len(args) == 0 {
		return Number(1), nil
	}
	result := intNearZero(args[0].(Number))
	if result < 0 {
		result = -result
	}
	for _, n := range args[1:] {
		m := intNearZero(n.(Number))
		if m < 0 {
			m = -m
		}
		if result == 0 || m == 0 {
			result = 0
			continue
		}
		result = result / gcd2(result, m) * m
	}
	return Number(result), nil
}

func biAdd1(it *Interp, env *Env, args []Value) (Value, error) {
	return args[0].(Number) + 1, nil
}

func biSub1(it *Interp, env *Env, args []Value) (Value, error) {
	return args[0].(Number) - 1, nil
}

func biZero(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Number) == 0), nil
}

func biPositive(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Number) > 0), nil
}

func biNegative(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].(Number) < 0), nil
}

func biEven(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(intNearZero(args[0].(Number))%2 == 0), nil
}

func biOdd(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(intNearZero(args[0].(Number))%2 != 0), nil
}

func biNumberP(it *Interp, env *Env, args []Value) (Value, error) {
	return Boolean(args[0].Kind() == KindNumber), nil
}

func biIntegerP(it *Interp, env *Env, args []Value) (Value, error) {
	n, ok := args[0].(Number)
	return Boolean(ok && n.IsInteger()), nil
}
