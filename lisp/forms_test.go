package lisp

import "testing"

func TestCondBareTestClause(t *testing.T) {
	l := New()
	// A clause with no body returns the test's own value (§4.6's
	// one-armed cond idiom), not an error.
	got := mustEval(t, l, "(cond (42))")
	if Print(got) != "42" {
		t.Errorf("got %s, want 42", Print(got))
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	l := New()
	if _, err := l.EvalString("(define hits 0)"); err != nil {
		t.Fatal(err)
	}
	mustEval(t, l, "(and #f (begin (set! hits (+ hits 1)) #t))")
	if got := mustEval(t, l, "hits"); Print(got) != "0" {
		t.Errorf("and should short-circuit, hits = %s", Print(got))
	}
	mustEval(t, l, "(or #t (begin (set! hits (+ hits 1)) #t))")
	if got := mustEval(t, l, "hits"); Print(got) != "0" {
		t.Errorf("or should short-circuit, hits = %s", Print(got))
	}
}

func TestDoLoop(t *testing.T) {
	l := New()
	got := mustEval(t, l, `(do ((vec (make-vector 5))
	                           (i 0 (+ i 1)))
	                          ((= i 5) vec)
	                        (vector-set! vec i i))`)
	if Print(got) != "#(0 1 2 3 4)" {
		t.Errorf("got %s", Print(got))
	}
}

func TestQuasiquoteNesting(t *testing.T) {
	l := New()
	got := mustEval(t, l, "`(1 `(2 ,(+ 1 ,(+ 2 3))))")
	want := "(1 (quasiquote (2 (unquote (+ 1 5)))))"
	if Print(got) != want {
		t.Errorf("got %s, want %s", Print(got), want)
	}
}

func TestDelayIsMemoized(t *testing.T) {
	l := New()
	mustEval(t, l, "(define calls 0)")
	mustEval(t, l, "(define p (delay (begin (set! calls (+ calls 1)) calls)))")
	mustEval(t, l, "(force p)")
	mustEval(t, l, "(force p)")
	got := mustEval(t, l, "calls")
	if Print(got) != "1" {
		t.Errorf("promise body ran %s times, want 1", Print(got))
	}
}
