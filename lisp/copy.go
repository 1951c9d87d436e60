package lisp

// ShallowCopy makes a fresh top-level container sharing whatever it
// contains: a new *Pair sharing Car/Cdr, a new *Vector sharing its
// items, a new *String sharing no byte storage (strings are not
// structurally sharable the way pairs are, so a genuine byte copy is
// needed to preserve string-set!'s per-handle mutation semantics).
// Immutable atoms (booleans, numbers, chars, symbols, nil) and
// procedures/promises are returned unchanged — they are shared by
// handle everywhere in the language (§5).
func ShallowCopy(v Value) Value {
	switch t := v.(type) {
	case *String:
		b := make([]byte, len(t.Bytes))
		copy(b, t.Bytes)
		return &String{Bytes: b}
	case *Pair:
		return &Pair{Car: t.Car, Cdr: t.Cdr}
	case *Vector:
		items := make([]Value, len(t.Items))
		copy(items, t.Items)
		return &Vector{Items: items}
	default:
		return v
	}
}

// copyListSpine builds a fresh list whose elements are shallow copies
// of vs, used by the list and map builtins (§5: "list and map build
// fresh lists where each element is a shallow copy").
func copyListSpine(vs []Value) Value {
	var out Value = Nil
	for i := len(vs) - 1; i >= 0; i-- {
		out = NewPair(ShallowCopy(vs[i]), out)
	}
	return out
}

// appendLists implements append's §5 copy rule: every list but the
// last gets its pair spine copied (elements shared), and the final
// list is shared outright as the new tail.
func appendLists(lists []Value) (Value, error) {
	if len(lists) == 0 {
		return Nil, nil
	}
	var head, tail *Pair
	appendCopy := func(l Value) error {
		if !IsList(l) {
			return newLispError("append: expected list, got %s", Print(l))
		}
		for {
			p, ok := l.(*Pair)
			if !ok {
				return nil
			}
			node := &Pair{Car: p.Car, Cdr: Nil}
			if head == nil {
				head = node
			} else {
				tail.Cdr = node
			}
			tail = node
			l = p.Cdr
		}
	}
	for _, l := range lists[:len(lists)-1] {
		if err := appendCopy(l); err != nil {
			return nil, err
		}
	}
	last := lists[len(lists)-1]
	if head == nil {
		return last, nil
	}
	tail.Cdr = last
	return head, nil
}
