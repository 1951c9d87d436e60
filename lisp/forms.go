package lisp

// This file implements the special forms of §4.6. Each form receives
// its operands unevaluated; it is responsible for evaluating whatever
// subset of them the form's semantics call for.

func registerSpecialForms(env *Env) {
	forms := []*SpecialForm{
		{Callable{"quote", 1, 1, []Kind{KindAny}}, quoteForm},
		{Callable{"if", 2, 3, []Kind{KindAny, KindAny, KindAny}}, ifForm},
		{Callable{"define", 1, Unbounded, nil}, defineForm},
		{Callable{"set!", 2, 2, []Kind{KindSymbol, KindAny}}, setForm},
		{Callable{"lambda", 1, Unbounded, nil}, lambdaForm},
		{Callable{"begin", 0, Unbounded, nil}, beginForm},
		{Callable{"and", 0, Unbounded, nil}, andForm},
		{Callable{"or", 0, Unbounded, nil}, orForm},
		{Callable{"cond", 0, Unbounded, nil}, condForm},
		{Callable{"let", 1, Unbounded, nil}, letForm},
		{Callable{"let*", 1, Unbounded, nil}, letStarForm},
		{Callable{"letrec", 1, Unbounded, nil}, letrecForm},
		{Callable{"do", 2, Unbounded, nil}, doForm},
		{Callable{"delay", 1, 1, []Kind{KindAny}}, delayForm},
		{Callable{"quasiquote", 1, 1, []Kind{KindAny}}, quasiquoteForm},
	}
	for _, f := range forms {
		env.Define(Symbol(f.Name), f)
	}
}

func quoteForm(it *Interp, env *Env, operands []Value) (Value, error) {
	return operands[0], nil
}

func ifForm(it *Interp, env *Env, operands []Value) (Value, error) {
	test, err := Eval(it, env, operands[0])
	if err != nil {
		return nil, err
	}
	if IsTruthy(test) {
		return Eval(it, env, operands[1])
	}
	if len(operands) == 3 {
		return Eval(it, env, operands[2])
	}
	return Nil, nil
}

// defineForm handles both (define name expr) and the procedure-define
// sugar (define (name . params) body...), which desugars to binding
// name to a lambda closing over the defining environment.
func defineForm(it *Interp, env *Env, operands []Value) (Value, error) {
	switch target := operands[0].(type) {
	case Symbol:
		if len(operands) > 2 {
			return nil, newLispError("too many operands: define")
		}
		var v Value = Nil
		if len(operands) == 2 {
			var err error
			v, err = Eval(it, env, operands[1])
			if err != nil {
				return nil, err
			}
		}
		nameLambda(v, target)
		env.Define(target, v)
		return target, nil
	case *Pair:
		name, ok := target.Car.(Symbol)
		if !ok {
			return nil, newLispError("define: expected a symbol name")
		}
		params, err := parseParamList(target.Cdr)
		if err != nil {
			return nil, err
		}
		lam := &Lambda{Params: params, Body: operands[1:], Env: env, Name: string(name)}
		env.Define(name, lam)
		return name, nil
	default:
		return nil, newLispError("define: malformed target")
	}
}

func nameLambda(v Value, name Symbol) {
	if lam, ok := v.(*Lambda); ok && lam.Name == "" {
		lam.Name = string(name)
	}
}

func setForm(it *Interp, env *Env, operands []Value) (Value, error) {
	name := operands[0].(Symbol)
	v, err := Eval(it, env, operands[1])
	if err != nil {
		return nil, err
	}
	if !env.Set(name, v) {
		return nil, newLispError("variable %s is not bound", name)
	}
	return Nil, nil
}

func lambdaForm(it *Interp, env *Env, operands []Value) (Value, error) {
	params, err := parseParamList(operands[0])
	if err != nil {
		return nil, err
	}
	return &Lambda{Params: params, Body: operands[1:], Env: env}, nil
}

func parseParamList(v Value) ([]Symbol, error) {
	if !IsList(v) {
		return nil, newLispError("malformed parameter list")
	}
	items := listToSlice(v)
	out := make([]Symbol, len(items))
	for i, item := range items {
		sym, ok := item.(Symbol)
		if !ok {
			return nil, newLispError("parameter must be a symbol")
		}
		out[i] = sym
	}
	return out, nil
}

func beginForm(it *Interp, env *Env, operands []Value) (Value, error) {
	return evalBody(it, env, operands)
}

func evalBody(it *Interp, env *Env, body []Value) (Value, error) {
	var result Value = Nil
	for _, e := range body {
		v, err := Eval(it, env, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func andForm(it *Interp, env *Env, operands []Value) (Value, error) {
	var result Value = Boolean(true)
	for _, e := range operands {
		v, err := Eval(it, env, e)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func orForm(it *Interp, env *Env, operands []Value) (Value, error) {
	for _, e := range operands {
		v, err := Eval(it, env, e)
		if err != nil {
			return nil, err
		}
		if IsTruthy(v) {
			return v, nil
		}
	}
	return Boolean(false), nil
}

// condForm implements cond's fallthrough and else clauses (§4.6). A
// clause with no body returns the test value itself, matching the
// one-armed cond idiom.
func condForm(it *Interp, env *Env, operands []Value) (Value, error) {
	for _, clause := range operands {
		if !IsList(clause) {
			return nil, newLispError("cond: malformed clause")
		}
		parts := listToSlice(clause)
		if len(parts) == 0 {
			return nil, newLispError("cond: empty clause")
		}
		isElse := false
		if sym, ok := parts[0].(Symbol); ok && sym == "else" {
			isElse = true
		}
		var testVal Value = Boolean(true)
		if !isElse {
			v, err := Eval(it, env, parts[0])
			if err != nil {
				return nil, err
			}
			if !IsTruthy(v) {
				continue
			}
			testVal = v
		}
		if len(parts) == 1 {
			return testVal, nil
		}
		return evalBody(it, env, parts[1:])
	}
	return Nil, nil
}

type binding struct {
	name Symbol
	expr Value
}

func parseBindings(v Value) ([]binding, error) {
	if !IsList(v) {
		return nil, newLispError("let: malformed bindings")
	}
	items := listToSlice(v)
	out := make([]binding, len(items))
	for i, item := range items {
		p, ok := item.(*Pair)
		if !ok {
			return nil, newLispError("let: malformed binding")
		}
		name, ok := p.Car.(Symbol)
		if !ok {
			return nil, newLispError("let: binding name must be a symbol")
		}
		rest, ok := p.Cdr.(*Pair)
		if !ok {
			return nil, newLispError("let: binding missing an expression")
		}
		out[i] = binding{name: name, expr: rest.Car}
	}
	return out, nil
}

// letForm dispatches to the named-let variant when the first operand
// is a symbol instead of a binding list.
func letForm(it *Interp, env *Env, operands []Value) (Value, error) {
	if name, ok := operands[0].(Symbol); ok {
		if len(operands) < 2 {
			return nil, newLispError("let: named let requires bindings")
		}
		return namedLetForm(it, env, name, operands[1], operands[2:])
	}
	bindings, err := parseBindings(operands[0])
	if err != nil {
		return nil, err
	}
	names := make([]Symbol, len(bindings))
	values := make([]Value, len(bindings))
	for i, b := range bindings {
		names[i] = b.name
		v, err := Eval(it, env, b.expr)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	child := env.CreateChild(names, values)
	return evalBody(it, child, operands[1:])
}

// namedLetForm binds name to a self-recursive lambda (§4.6's named let
// sugars to letrec), letting the loop body call itself by name.
func namedLetForm(it *Interp, env *Env, name Symbol, bindingsV Value, body []Value) (Value, error) {
	bindings, err := parseBindings(bindingsV)
	if err != nil {
		return nil, err
	}
	params := make([]Symbol, len(bindings))
	args := make([]Value, len(bindings))
	for i, b := range bindings {
		params[i] = b.name
		v, err := Eval(it, env, b.expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	loopEnv := newEnv(env)
	lam := &Lambda{Params: params, Body: body, Env: loopEnv, Name: string(name)}
	loopEnv.Define(name, lam)
	return Apply(it, loopEnv, lam, args)
}

func letStarForm(it *Interp, env *Env, operands []Value) (Value, error) {
	bindings, err := parseBindings(operands[0])
	if err != nil {
		return nil, err
	}
	child := newEnv(env)
	for _, b := range bindings {
		v, err := Eval(it, child, b.expr)
		if err != nil {
			return nil, err
		}
		child.Define(b.name, v)
	}
	return evalBody(it, child, operands[1:])
}

// letrecForm pre-binds every name to nil so bodies (typically lambdas)
// can capture each other before any are evaluated, then evaluates and
// patches each binding in turn.
func letrecForm(it *Interp, env *Env, operands []Value) (Value, error) {
	bindings, err := parseBindings(operands[0])
	if err != nil {
		return nil, err
	}
	names := make([]Symbol, len(bindings))
	vals := make([]Value, len(bindings))
	for i, b := range bindings {
		names[i] = b.name
		vals[i] = Nil
	}
	child := env.CreateChild(names, vals)
	for _, b := range bindings {
		v, err := Eval(it, child, b.expr)
		if err != nil {
			return nil, err
		}
		nameLambda(v, b.name)
		child.Set(b.name, v)
	}
	return evalBody(it, child, operands[1:])
}

type doSpec struct {
	name Symbol
	init Value
	step Value
}

func parseDoSpecs(v Value) ([]doSpec, error) {
	if !IsList(v) {
		return nil, newLispError("do: malformed variable specs")
	}
	items := listToSlice(v)
	out := make([]doSpec, len(items))
	for i, item := range items {
		if !IsList(item) {
			return nil, newLispError("do: malformed variable spec")
		}
		parts := listToSlice(item)
		if len(parts) < 2 {
			return nil, newLispError("do: malformed variable spec")
		}
		name, ok := parts[0].(Symbol)
		if !ok {
			return nil, newLispError("do: variable spec name must be a symbol")
		}
		spec := doSpec{name: name, init: parts[1]}
		if len(parts) == 3 {
			spec.step = parts[2]
		}
		out[i] = spec
	}
	return out, nil
}

// doForm implements the iterative do loop (§4.6): each pass rebuilds
// a fresh child environment from the stepped values, so a step
// expression always reads the previous iteration's bindings.
func doForm(it *Interp, env *Env, operands []Value) (Value, error) {
	specs, err := parseDoSpecs(operands[0])
	if err != nil {
		return nil, err
	}
	if !IsList(operands[1]) {
		return nil, newLispError("do: malformed test clause")
	}
	testParts := listToSlice(operands[1])
	if len(testParts) == 0 {
		return nil, newLispError("do: empty test clause")
	}
	test := testParts[0]
	resultBody := testParts[1:]
	body := operands[2:]

	names := make([]Symbol, len(specs))
	vals := make([]Value, len(specs))
	for i, s := range specs {
		names[i] = s.name
		v, err := Eval(it, env, s.init)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	loopEnv := env.CreateChild(names, vals)
	for {
		t, err := Eval(it, loopEnv, test)
		if err != nil {
			return nil, err
		}
		if IsTruthy(t) {
			return evalBody(it, loopEnv, resultBody)
		}
		for _, e := range body {
			if _, err := Eval(it, loopEnv, e); err != nil {
				return nil, err
			}
		}
		next := make([]Value, len(specs))
		for i, s := range specs {
			if s.step == nil {
				v, _ := loopEnv.Lookup(s.name)
				next[i] = v
				continue
			}
			v, err := Eval(it, loopEnv, s.step)
			if err != nil {
				return nil, err
			}
			next[i] = v
		}
		loopEnv = env.CreateChild(names, next)
	}
}

func delayForm(it *Interp, env *Env, operands []Value) (Value, error) {
	return &Promise{Expr: operands[0], Env: env}, nil
}

// quasiquoteForm and its helpers implement nested quasiquote/unquote
// per §4.6 and Open Question #1: a depth counter starts at 1 for the
// outermost quasiquote, is incremented by a nested quasiquote, and
// decremented by unquote/unquote-splicing. Only an unquote reaching
// depth 0 actually evaluates its operand; anything else is rebuilt
// with its nesting markers intact, so mismatched depths are preserved
// as data rather than misfiring.
func quasiquoteForm(it *Interp, env *Env, operands []Value) (Value, error) {
	return qqExpand(it, env, operands[0], 1)
}

func qqExpand(it *Interp, env *Env, expr Value, depth int) (Value, error) {
	p, ok := expr.(*Pair)
	if !ok {
		if vec, ok := expr.(*Vector); ok {
			return qqExpandVector(it, env, vec, depth)
		}
		return expr, nil
	}
	if sym, ok := p.Car.(Symbol); ok {
		switch sym {
		case "unquote":
			operand := qqOperand(p)
			if depth == 1 {
				return Eval(it, env, operand)
			}
			inner, err := qqExpand(it, env, operand, depth-1)
			if err != nil {
				return nil, err
			}
			return NewPair(Symbol("unquote"), NewPair(inner, Nil)), nil
		case "quasiquote":
			operand := qqOperand(p)
			inner, err := qqExpand(it, env, operand, depth+1)
			if err != nil {
				return nil, err
			}
			return NewPair(Symbol("quasiquote"), NewPair(inner, Nil)), nil
		}
	}
	return qqExpandList(it, env, p, depth)
}

func qqOperand(p *Pair) Value {
	if cdr, ok := p.Cdr.(*Pair); ok {
		return cdr.Car
	}
	return Nil
}

func qqExpandList(it *Interp, env *Env, p *Pair, depth int) (Value, error) {
	carExpanded, spliced, err := qqExpandElem(it, env, p.Car, depth)
	if err != nil {
		return nil, err
	}

	var cdrExpanded Value
	switch cdr := p.Cdr.(type) {
	case *Pair:
		cdrExpanded, err = qqExpandList(it, env, cdr, depth)
	case nilValue:
		cdrExpanded = Nil
	default:
		cdrExpanded, err = qqExpand(it, env, cdr, depth)
	}
	if err != nil {
		return nil, err
	}

	if spliced != nil {
		return appendLists([]Value{sliceToList(spliced), cdrExpanded})
	}
	return NewPair(carExpanded, cdrExpanded), nil
}

func qqExpandVector(it *Interp, env *Env, v *Vector, depth int) (Value, error) {
	items := make([]Value, 0, len(v.Items))
	for _, item := range v.Items {
		expanded, spliced, err := qqExpandElem(it, env, item, depth)
		if err != nil {
			return nil, err
		}
		if spliced != nil {
			items = append(items, spliced...)
		} else {
			items = append(items, expanded)
		}
	}
	return &Vector{Items: items}, nil
}

// qqExpandElem expands a single list/vector element, returning a
// non-nil spliced slice when elem is an unquote-splicing at the
// evaluating depth (the caller splices it in place of a single slot).
func qqExpandElem(it *Interp, env *Env, elem Value, depth int) (expanded Value, spliced []Value, err error) {
	if p, ok := elem.(*Pair); ok {
		if sym, ok := p.Car.(Symbol); ok && sym == "unquote-splicing" {
			operand := qqOperand(p)
			if depth == 1 {
				v, err := Eval(it, env, operand)
				if err != nil {
					return nil, nil, err
				}
				if !IsList(v) {
					return nil, nil, newLispError("unquote-splicing: expected a list, got %s", Print(v))
				}
				return nil, listToSlice(v), nil
			}
			inner, err := qqExpand(it, env, operand, depth-1)
			if err != nil {
				return nil, nil, err
			}
			return NewPair(Symbol("unquote-splicing"), NewPair(inner, Nil)), nil, nil
		}
	}
	v, err := qqExpand(it, env, elem, depth)
	return v, nil, err
}
