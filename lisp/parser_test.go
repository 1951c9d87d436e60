package lisp

import "testing"

func parseOne(t *testing.T, src string) Value {
	t.Helper()
	toks, err := tokenize(src)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", src, err)
	}
	p := NewParser()
	p.Feed(toks)
	v, err := p.Parse()
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return v
}

func TestParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		"(+ 1 2)",
		"(a . b)",
		"(a b . c)",
		"'quoted",
		"`(a ,b ,@c)",
		"#(1 2 3)",
		"#t",
		"()",
		`"a string"`,
	} {
		v := parseOne(t, src)
		if v == nil {
			t.Errorf("parse(%q): got nil value", src)
		}
	}
}

func TestParseIncomplete(t *testing.T) {
	toks, err := tokenize("(+ 1 2")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	p := NewParser()
	p.Feed(toks)
	if _, err := p.Parse(); err != errIncomplete {
		t.Fatalf("got %v, want errIncomplete", err)
	}
	p.Feed([]Token{{Kind: TokNumber, Num: 3}, {Kind: TokRParen}})
	v, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Print(v); got != "(+ 1 2 3)" {
		t.Errorf("got %s, want (+ 1 2 3)", got)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, src := range []string{")", "(1 . 2 . 3)"} {
		toks, err := tokenize(src)
		if err != nil {
			continue
		}
		p := NewParser()
		p.Feed(toks)
		if _, err := p.Parse(); err == nil {
			t.Errorf("parse(%q): expected error, got none", src)
		}
	}
}
