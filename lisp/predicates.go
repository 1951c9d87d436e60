package lisp

// IsTruthy implements §4.6: only #f is falsy, everything else is
// truthy (0, "", the empty list included).
func IsTruthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

func IsNil(v Value) bool { return v.Kind() == KindNil }

func IsPair(v Value) bool { return v.Kind() == KindPair }

// IsList reports whether v is a proper list: nil, or a pair whose cdr
// is itself a proper list.
func IsList(v Value) bool {
	for {
		switch t := v.(type) {
		case nilValue:
			return true
		case *Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}

// IsAtom reports the §4.7 atom? predicate: booleans, numbers, strings,
// symbols, nil, and characters.
func IsAtom(v Value) bool { return v.Kind()&KindAtom != 0 }

func IsProcedure(v Value) bool { return v.Kind()&KindProcedure != 0 }

// listToSlice walks a proper list into a Go slice. Callers must have
// already established v IsList; an improper tail panics, matching the
// "this is a programmer error in the evaluator" contract rather than a
// user-facing LispError (user-facing improper-list errors are raised
// by the caller before listToSlice runs).
func listToSlice(v Value) []Value {
	out := []Value{}
	for {
		switch t := v.(type) {
		case nilValue:
			return out
		case *Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			panic("listToSlice: improper list")
		}
	}
}

// sliceToList builds a fresh proper list out of a Go slice, sharing
// the elements themselves (only the spine is fresh).
func sliceToList(vs []Value) Value {
	var out Value = Nil
	for i := len(vs) - 1; i >= 0; i-- {
		out = NewPair(vs[i], out)
	}
	return out
}

// listLength returns the length of a proper list, or ok=false if v is
// not one.
func listLength(v Value) (int, bool) {
	n := 0
	for {
		switch t := v.(type) {
		case nilValue:
			return n, true
		case *Pair:
			n++
			v = t.Cdr
		default:
			return 0, false
		}
	}
}
