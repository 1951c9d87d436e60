package lisp

import (
	"strconv"
	"strings"
)

// Print renders v in print form (§3): strings quoted with escapes,
// characters as #\name, booleans as #t/#f, lists as (a b c) or
// (a . b) for improper tails, vectors as #(...), procedures opaquely.
func Print(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

// Display renders v in display form (§3): identical to Print except
// strings and characters print as raw glyphs instead of escaped/named
// literals.
func Display(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, quoted bool) {
	switch t := v.(type) {
	case Boolean:
		if t {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Number:
		b.WriteString(formatNumber(t))
	case Char:
		if quoted {
			b.WriteString(charLiteral(byte(t)))
		} else {
			b.WriteByte(byte(t))
		}
	case *String:
		if quoted {
			b.WriteString(quoteString(t.String()))
		} else {
			b.WriteString(t.String())
		}
	case Symbol:
		b.WriteString(string(t))
	case nilValue:
		b.WriteString("()")
	case *Pair:
		b.WriteByte('(')
		writePairBody(b, t, quoted)
		b.WriteByte(')')
	case *Vector:
		b.WriteString("#(")
		for i, item := range t.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, item, quoted)
		}
		b.WriteByte(')')
	case *Promise:
		b.WriteString("#<promise>")
	case *BuiltinProc:
		b.WriteString("#<procedure>")
	case *SpecialForm:
		b.WriteString("#<procedure>")
	case *Lambda:
		b.WriteString("#<procedure>")
	default:
		b.WriteString("#<unknown>")
	}
}

func writePairBody(b *strings.Builder, p *Pair, quoted bool) {
	writeValue(b, p.Car, quoted)
	switch cdr := p.Cdr.(type) {
	case nilValue:
		return
	case *Pair:
		b.WriteByte(' ')
		writePairBody(b, cdr, quoted)
	default:
		b.WriteString(" . ")
		writeValue(b, cdr, quoted)
	}
}

// formatNumber uses the shortest round-trippable decimal for
// non-integers, and a bare integer literal (no trailing ".0") for
// integer-valued numbers, matching §3's integer-ness invariant and
// §8's print/parse round-trip invariant.
func formatNumber(n Number) string {
	if n.IsInteger() {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func charLiteral(c byte) string {
	switch c {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	default:
		return `#\` + string(c)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Eq implements eq? (§4.7): identity-or-small-atom equality. Booleans,
// numbers, procedures, symbols, characters, and nil compare by value;
// every other type compares by handle identity.
func Eq(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case Boolean:
		return at == b.(Boolean)
	case Number:
		return at == b.(Number)
	case Char:
		return at == b.(Char)
	case Symbol:
		return at == b.(Symbol)
	case nilValue:
		return true
	case *BuiltinProc:
		return at == b.(*BuiltinProc)
	case *SpecialForm:
		return at == b.(*SpecialForm)
	case *Lambda:
		return at == b.(*Lambda)
	default:
		// strings, pairs, vectors, promises: identity only.
		return a == b
	}
}

// Equal implements equal? (§4.7): structural equality — same tag and
// the same print form (§8's invariant equal?(x,y) => print(x)==print(y)
// holds by construction here).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case *String:
		return at.String() == b.(*String).String()
	case *Pair:
		bt := b.(*Pair)
		return Equal(at.Car, bt.Car) && Equal(at.Cdr, bt.Cdr)
	case *Vector:
		bt := b.(*Vector)
		if len(at.Items) != len(bt.Items) {
			return false
		}
		for i := range at.Items {
			if !Equal(at.Items[i], bt.Items[i]) {
				return false
			}
		}
		return true
	default:
		return Eq(a, b)
	}
}
