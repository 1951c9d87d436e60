package lisp

import "testing"

func mustEval(t *testing.T, l *Lisp, src string) Value {
	t.Helper()
	v, err := l.EvalString(src)
	if err != nil {
		t.Fatalf("EvalString(%q): unexpected error: %v", src, err)
	}
	return v
}

func TestEvalSelfEvaluating(t *testing.T) {
	l := New()
	for _, tt := range []struct{ src, want string }{
		{"5", "5"},
		{"2.5", "2.5"},
		{"#t", "#t"},
		{`"hi"`, `"hi"`},
		{"#\\a", "#\\a"},
		{"#(1 2)", "#(1 2)"},
	} {
		if got := Print(mustEval(t, l, tt.src)); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	l := New()
	for _, tt := range []struct {
		src     string
		wantErr bool
	}{
		{"undefined-name", true},
		{"()", true},
		{"(5 1 2)", true},
		{"(+ 1 \"x\")", true},
		{"(car '())", true},
		{"(+ )", false}, // zero-arity + is valid (identity 0)
	} {
		_, err := l.EvalString(tt.src)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected an error, got none", tt.src)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.src, err)
		}
	}
}

func TestApplyArityErrors(t *testing.T) {
	l := New()
	if _, err := l.EvalString("(define (f x y) (+ x y)) (f 1)"); err == nil {
		t.Error("expected too-few-arguments error")
	}
	if _, err := l.EvalString("(define (g x) x) (g 1 2)"); err == nil {
		t.Error("expected too-many-arguments error")
	}
}

func TestSpecialFormOperandErrors(t *testing.T) {
	l := New()
	if _, err := l.EvalString("(if)"); err == nil {
		t.Error("expected too-few-operands error for if")
	}
}

func TestSetUnboundVariable(t *testing.T) {
	l := New()
	if _, err := l.EvalString("(set! nope 1)"); err == nil {
		t.Error("expected an error setting an unbound variable")
	}
}
