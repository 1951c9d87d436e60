package lisp

import (
	"io"
	"strings"
	"testing"
)

func TestReaderMultipleFormsPerLine(t *testing.T) {
	rd := NewReader(strings.NewReader("(+ 1 2) (* 3 4)\n"))
	vs, err := ReadAll(rd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d forms, want 2", len(vs))
	}
	if Print(vs[0]) != "(+ 1 2)" || Print(vs[1]) != "(* 3 4)" {
		t.Errorf("got %s %s", Print(vs[0]), Print(vs[1]))
	}
}

func TestReaderFormAcrossLines(t *testing.T) {
	rd := NewReader(strings.NewReader("(+ 1\n   2\n   3)\n"))
	v, err := rd.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Print(v); got != "(+ 1 2 3)" {
		t.Errorf("got %s, want (+ 1 2 3)", got)
	}
}

func TestReaderEOF(t *testing.T) {
	rd := NewReader(strings.NewReader(""))
	if _, err := rd.Read(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestReaderUnexpectedEOFMidForm(t *testing.T) {
	rd := NewReader(strings.NewReader("(+ 1 2"))
	if _, err := rd.Read(); err == nil {
		t.Fatal("expected a syntax error for an unterminated form")
	}
}
