package lisp

import (
	"bufio"
	"io"
)

// Reader glues the tokenizer and parser over a line-buffered input
// stream, pulling further lines in as needed until at least one
// complete top-level form is available (§4.3). End of input with
// nothing pending is reported as io.EOF, the designated end marker.
type Reader struct {
	scanner *bufio.Scanner
	parser  *Parser
	pending []Value
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		parser:  NewParser(),
	}
}

// Read pulls the next parsed value, reading more source lines as
// needed. If tokenizing a line fails, the buffered-but-unparsed queue
// is discarded (§4.3) before the error is returned.
func (rd *Reader) Read() (Value, error) {
	for len(rd.pending) == 0 {
		more, err := rd.fill()
		if err != nil {
			return nil, err
		}
		if !more && len(rd.pending) == 0 {
			return nil, io.EOF
		}
	}
	v := rd.pending[0]
	rd.pending = rd.pending[1:]
	return v, nil
}

// fill tokenizes and parses one more line of input, appending every
// complete top-level form it yields to the pending queue. It reports
// more=false once the underlying stream is exhausted.
func (rd *Reader) fill() (more bool, err error) {
	line, more := rd.readLine()
	toks, terr := tokenize(line)
	if terr != nil {
		rd.parser.Reset()
		return more, terr
	}
	rd.parser.Feed(toks)
	for rd.parser.HasMore() {
		v, perr := rd.parser.Parse()
		if perr == errIncomplete {
			break
		}
		if perr != nil {
			rd.parser.Reset()
			return more, perr
		}
		rd.pending = append(rd.pending, v)
	}
	if !more && rd.parser.HasMore() {
		rd.parser.Reset()
		return false, newSyntaxError("unexpected end of input")
	}
	return more, nil
}

func (rd *Reader) readLine() (string, bool) {
	if rd.scanner.Scan() {
		return rd.scanner.Text(), true
	}
	return "", false
}

// ReadAll drains every remaining top-level form from rd without
// evaluating any of them, returning the forms in source order.
func ReadAll(rd *Reader) ([]Value, error) {
	var out []Value
	for {
		v, err := rd.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
