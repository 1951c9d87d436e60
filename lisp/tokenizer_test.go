package lisp

import "testing"

func TestTokenize(t *testing.T) {
	for i, tt := range []struct {
		input string
		want  []TokenKind
	}{
		{"(+ 1 2)", []TokenKind{TokLParen, TokIdentifier, TokNumber, TokNumber, TokRParen}},
		{"'(a . b)", []TokenKind{TokQuote, TokLParen, TokIdentifier, TokDot, TokIdentifier, TokRParen}},
		{"`(a ,b ,@c)", []TokenKind{TokQuasiquote, TokLParen, TokIdentifier, TokUnquote, TokIdentifier, TokUnquoteSplicing, TokIdentifier, TokRParen}},
		{"#t #f #(1 2)", []TokenKind{TokBool, TokBool, TokVectorBegin, TokNumber, TokNumber, TokRParen}},
		{`"hi\n\"there\""`, []TokenKind{TokString}},
		{`#\a #\space #\newline`, []TokenKind{TokChar, TokChar, TokChar}},
		{"; a comment", nil},
		{"-5 -x 1+ +", []TokenKind{TokNumber, TokIdentifier, TokIdentifier, TokIdentifier}},
	} {
		toks, err := tokenize(tt.input)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if len(toks) != len(tt.want) {
			t.Fatalf("case %d: got %d tokens, want %d (%v)", i, len(toks), len(tt.want), toks)
		}
		for j, k := range tt.want {
			if toks[j].Kind != k {
				t.Errorf("case %d token %d: got %s, want %s", i, j, toks[j].Kind, k)
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, input := range []string{
		`"unterminated`,
		`#`,
		`#\`,
		`#z`,
	} {
		if _, err := tokenize(input); err == nil {
			t.Errorf("tokenize(%q): expected error, got none", input)
		}
	}
}
