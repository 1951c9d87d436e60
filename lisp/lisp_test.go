package lisp

import "testing"

func TestLisp(t *testing.T) {
	// NOTE: one shared interpreter across the table, so order matters:
	// later rows rely on defines made by earlier ones.
	l := New()
	var buf stringBuf
	l.SetOutput(&buf)

	for i, tt := range []struct {
		input string
		want  string
	}{
		{
			input: "(begin (define r 10) (* pi (* r r)))",
			want:  "314.1592653589793",
		},
		{
			input: "(if (> (* 11 11) 120) (* 7 6) oops)",
			want:  "42",
		},
		{
			input: "(define circle-area (lambda (r) (* pi (* r r))))",
		},
		{
			input: "(circle-area 3)",
			want:  "28.274333882308138",
		},
		{input: "(quote quoted)", want: "quoted"},
		{input: "'quoted", want: "quoted"},
		{input: "(if (number? (quote ())) 4 5)", want: "5"},
		{input: "(car (quote (1 2 3)))", want: "1"},
		{input: "(cdr (quote (1 2 3)))", want: "(2 3)"},
		{
			input: `(define fact
			  (lambda (n)
			    (if (<= n 1) 1 (* n (fact (- n 1))))))`,
		},
		{input: "(fact 10)", want: "3628800"},
		{input: "(define twice (lambda (x) (* 2 x)))"},
		{input: "(twice 5)", want: "10"},
		{input: "(define repeat (lambda (f) (lambda (x) (f (f x)))))"},
		{input: "((repeat twice) 10)", want: "40"},
		{input: "((repeat (repeat twice)) 10)", want: "160"},
		{
			input: `((lambda (a b) (cond ((= a 4) 6)
			                      ((= b 4) (+ 6 7))
			                      (else 25))) 1 4)`,
			want: "13",
		},
		{input: "(define x 5)"},
		{input: "(+ (let ((x 3)) (+ x (* x 10))) x)", want: "38"},
		{
			input: `(let loop ((i 0) (acc 0))
			           (if (> i 5) acc (loop (+ i 1) (+ acc i))))`,
			want: "15",
		},
		{
			input: `(let* ((a 1) (b (+ a 1)) (c (+ b 1))) (list a b c))`,
			want:  "(1 2 3)",
		},
		{
			input: `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
			                   (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
			           (even? 10))`,
			want: "#t",
		},
		{
			input: `(do ((i 0 (+ i 1)) (sum 0 (+ sum i))) ((= i 5) sum))`,
			want:  "10",
		},
		{input: "`(1 2 ,(+ 1 2))", want: "(1 2 3)"},
		{input: "`(1 ,@(list 2 3) 4)", want: "(1 2 3 4)"},
		{input: "``(a ,(b ,(+ 1 2)))", want: "(quasiquote (a (unquote (b 3))))"},
		{input: "(force (delay (+ 1 2)))", want: "3"},
		{
			input: `(define p (delay (begin (display "forced") 99)))
			         (force p)
			         (force p)`,
			want: "99",
		},
		{input: "(map (lambda (x) (* x x)) (list 1 2 3 4))", want: "(1 4 9 16)"},
		{input: "(filter even? (list 1 2 3 4 5 6))", want: "(2 4 6)"},
		{
			input: `(define v (make-vector 3 0))
			         (vector-set! v 1 7)
			         v`,
			want: "#(0 7 0)",
		},
		{input: `(equal? (list 1 2 (list 3 4)) (list 1 2 (list 3 4)))`, want: "#t"},
		{input: `(eq? (list 1 2) (list 1 2))`, want: "#f"},
		{input: "(modulo -7 2)", want: "1"},
		{input: "(modulo 7 -2)", want: "-1"},
		{input: "(remainder -7 2)", want: "-1"},
	} {
		v, err := l.EvalString(tt.input)
		if err != nil {
			t.Fatalf("case %d (%s): unexpected error: %v", i, tt.input, err)
		}
		if tt.want == "" {
			continue
		}
		if got := Print(v); got != tt.want {
			t.Errorf("case %d (%s): got %s, want %s", i, tt.input, got, tt.want)
		}
	}
}

type stringBuf struct {
	s string
}

func (b *stringBuf) WriteString(s string) (int, error) {
	b.s += s
	return len(s), nil
}
