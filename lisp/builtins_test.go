package lisp

import "testing"

func TestStringBuiltins(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{`(string-length "hello")`, "5"},
		{`(string-ref "hello" 1)`, "#\\e"},
		{`(string-append "foo" "bar")`, `"foobar"`},
		{`(substring "hello world" 6 11)`, `"world"`},
		{`(string->list "ab")`, `(#\a #\b)`},
		{`(list->string (list #\a #\b))`, `"ab"`},
		{`(symbol->string 'foo)`, `"foo"`},
		{`(string->symbol "foo")`, "foo"},
		{`(string=? "abc" "abc")`, "#t"},
		{`(let ((s (string-copy "abc"))) (string-set! s 0 #\z) s)`, `"zbc"`},
		{`(make-string 3 #\x)`, `"xxx"`},
		{`(string #\f #\o #\o)`, `"foo"`},
		{`(let ((s (make-string 3 #\a))) (string-fill! s #\b) s)`, `"bbb"`},
		{`(string-ci=? "ABC" "abc")`, "#t"},
		{`(string-ci=? "ABC" "abd")`, "#f"},
		{`(string<? "abc" "abd")`, "#t"},
		{`(string>? "abd" "abc")`, "#t"},
		{`(string<=? "abc" "abc")`, "#t"},
		{`(string>=? "abc" "abc")`, "#t"},
		{`(string-ci<? "ABC" "abd")`, "#t"},
		{`(string-ci>? "ABD" "abc")`, "#t"},
		{`(string-ci<=? "ABC" "abc")`, "#t"},
		{`(string-ci>=? "ABC" "abc")`, "#t"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestVectorBuiltins(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{`(vector 1 2 3)`, "#(1 2 3)"},
		{`(vector-length (vector 1 2 3))`, "3"},
		{`(vector-ref (vector 1 2 3) 2)`, "3"},
		{`(vector->list (vector 1 2 3))`, "(1 2 3)"},
		{`(list->vector (list 1 2 3))`, "#(1 2 3)"},
		{`(let ((v (vector 1 2 3))) (vector-fill! v 0) v)`, "#(0 0 0)"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestCharBuiltins(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{`(char->integer #\A)`, "65"},
		{`(integer->char 97)`, "#\\a"},
		{`(char-upcase #\a)`, "#\\A"},
		{`(char-downcase #\Z)`, "#\\z"},
		{`(char-alphabetic? #\9)`, "#f"},
		{`(char-numeric? #\9)`, "#t"},
		{`(char-whitespace? #\space)`, "#t"},
		{`(char<? #\a #\b)`, "#t"},
		{`(char>=? #\b #\b)`, "#t"},
		{`(char-ci=? #\A #\a)`, "#t"},
		{`(char-uppercase? #\A)`, "#t"},
		{`(char-lowercase? #\A)`, "#f"},
		{`(char-ci<? #\A #\b)`, "#t"},
		{`(char-ci>? #\B #\a)`, "#t"},
		{`(char-ci<=? #\A #\a)`, "#t"},
		{`(char-ci>=? #\A #\a)`, "#t"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestListCopySemantics(t *testing.T) {
	l := New()
	// list->vector copies the list's elements into a fresh vector:
	// mutating the original pair afterwards must not affect the copy.
	mustEval(t, l, "(define original (list 1 2 3))")
	mustEval(t, l, "(define copy (list->vector original))")
	mustEval(t, l, "(set-car! original 99)")
	if got := Print(mustEval(t, l, "copy")); got != "#(1 2 3)" {
		t.Errorf("copy should be unaffected by mutating original, got %s", got)
	}
}

func TestAppendSharesLastList(t *testing.T) {
	l := New()
	mustEval(t, l, "(define tail (list 3 4))")
	mustEval(t, l, "(define whole (append (list 1 2) tail))")
	mustEval(t, l, "(set-car! tail 99)")
	if got := Print(mustEval(t, l, "whole")); got != "(1 2 99 4)" {
		t.Errorf("append should share its last list, got %s", got)
	}
}

func TestArithExtras(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{"(gcd 12 18)", "6"},
		{"(gcd 12 18 30)", "6"},
		{"(lcm 4 6)", "12"},
		{"(lcm)", "1"},
		{"(gcd)", "0"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestReduce(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{"(reduce + (list 1))", "1"},
		{"(reduce + (list 1 2 3 4))", "10"},
		{"(reduce (lambda (a b) (cons a b)) (list 1 2 3))", "(1 2 . 3)"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestIOBuiltins(t *testing.T) {
	l := New()
	buf := &stringBuf{}
	l.SetOutput(buf)

	mustEval(t, l, `(display "hi")`)
	mustEval(t, l, `(displayln "there")`)
	mustEval(t, l, `(print 42)`)
	want := "hithere\n42\n"
	if buf.s != want {
		t.Errorf("display/displayln/print: got %q, want %q", buf.s, want)
	}

	if _, err := l.EvalString(`(error "boom")`); err == nil {
		t.Error("expected error builtin to raise an error")
	}
}

func TestEvalUsesCurrentEnvironment(t *testing.T) {
	l := New()
	mustEval(t, l, "(define (f) (define y 10) (eval 'y))")
	got := Print(mustEval(t, l, "(f)"))
	if got != "10" {
		t.Errorf("(f): got %s, want 10", got)
	}
}

func TestTypePredicates(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{"(boolean? #t)", "#t"},
		{"(symbol? 'x)", "#t"},
		{"(procedure? car)", "#t"},
		{"(procedure? if)", "#t"},
		{"(atom? 5)", "#t"},
		{"(atom? (list 1 2))", "#f"},
	} {
		v := mustEval(t, l, tt.src)
		if got := Print(v); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}
