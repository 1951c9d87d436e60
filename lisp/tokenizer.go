package lisp

import (
	"strconv"
	"strings"
)

// tokenize turns one line of source text into a token sequence (§4.1).
// It never reads across a newline: the Reader is responsible for
// pulling additional lines when a form spans more than one.
func tokenize(line string) ([]Token, error) {
	toks := []Token{}
	i, n := 0, len(line)
	for i < n {
		c := line[i]
		switch {
		case c == ';':
			i = n
		case isSpace(c):
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokLParen})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokRParen})
			i++
		case c == '\'':
			toks = append(toks, Token{Kind: TokQuote})
			i++
		case c == '`':
			toks = append(toks, Token{Kind: TokQuasiquote})
			i++
		case c == ',':
			if i+1 < n && line[i+1] == '@' {
				toks = append(toks, Token{Kind: TokUnquoteSplicing})
				i += 2
			} else {
				toks = append(toks, Token{Kind: TokUnquote})
				i++
			}
		case c == '"':
			s, next, err := scanString(line, i+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: TokString, Str: s})
			i = next
		case c == '#':
			tok, next, err := scanHash(line, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		default:
			word, next := scanWord(line, i)
			toks = append(toks, wordToken(word))
			i = next
		}
	}
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isTerminator matches the character set that ends a bare word: open
// paren, whitespace, or the start of another token.
func isTerminator(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '\'' || c == '`' || c == ',' || c == '"' || c == ';'
}

func scanWord(line string, start int) (string, int) {
	i := start
	for i < len(line) && !isTerminator(line[i]) {
		i++
	}
	return line[start:i], i
}

// scanString consumes the body of a "..." literal starting just past
// the opening quote, honoring \\, \" and \n escapes. EOF before the
// closing quote is a lex error (§4.1).
func scanString(line string, start int) (string, int, error) {
	var b strings.Builder
	i, n := start, len(line)
	for i < n {
		c := line[i]
		if c == '"' {
			return b.String(), i + 1, nil
		}
		if c == '\\' && i+1 < n {
			switch line[i+1] {
			case '\\':
				b.WriteByte('\\')
				i += 2
				continue
			case '"':
				b.WriteByte('"')
				i += 2
				continue
			case 'n':
				b.WriteByte('\n')
				i += 2
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, newSyntaxError("unterminated string literal")
}

// scanHash handles every #-prefixed token: #t/#f booleans, #( vector
// markers, and #\x character literals.
func scanHash(line string, start int) (Token, int, error) {
	n := len(line)
	if start+1 >= n {
		return Token{}, 0, newSyntaxError("stray '#' at end of input")
	}
	switch line[start+1] {
	case 't':
		return Token{Kind: TokBool, Bool: true}, start + 2, nil
	case 'f':
		return Token{Kind: TokBool, Bool: false}, start + 2, nil
	case '(':
		return Token{Kind: TokVectorBegin}, start + 2, nil
	case '\\':
		body, next := scanWord(line, start+2)
		if body == "" {
			if start+2 < n {
				body = string(line[start+2])
				next = start + 3
			} else {
				return Token{}, 0, newSyntaxError("malformed character literal")
			}
		}
		ch, err := charFromName(body)
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Kind: TokChar, Char: ch}, next, nil
	default:
		return Token{}, 0, newSyntaxError("unexpected character after '#'")
	}
}

// charFromName implements the #\name rules of §4.1: "space" and
// "newline" (case-insensitively) map to their ASCII codes, otherwise
// the body must be exactly one character.
func charFromName(body string) (byte, error) {
	switch strings.ToLower(body) {
	case "space":
		return ' ', nil
	case "newline":
		return '\n', nil
	}
	if len(body) != 1 {
		return 0, newSyntaxError("malformed character literal #\\%s", body)
	}
	return body[0], nil
}

func wordToken(word string) Token {
	if word == "." {
		return Token{Kind: TokDot}
	}
	if n, err := strconv.ParseFloat(word, 64); err == nil && looksNumeric(word) {
		return Token{Kind: TokNumber, Num: n}
	}
	return Token{Kind: TokIdentifier, Ident: word}
}

// looksNumeric restricts ParseFloat's liberal grammar to the §4.1
// rule: a word is a Number only if its first character is a digit, a
// leading sign, or a period. Otherwise ParseFloat would happily accept
// "inf"/"nan" as numbers, which are meant to be ordinary identifiers.
func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	if c >= '0' && c <= '9' {
		return true
	}
	if c == '+' || c == '-' || c == '.' {
		return len(word) > 1
	}
	return false
}
