// Command golisp is the driver for the lisp package: a REPL when
// given no arguments, or a file evaluator when given a source path.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/mattdhall/golisp/lisp"
)

// Exit codes distinguish the three error taxonomies a run can end on
// (§7, §9): a syntax error in the source, a runtime error in the
// language, or an infrastructure failure such as a file that can't be
// opened.
const (
	exitSyntaxError      = 1
	exitLispError        = 2
	exitInterpreterError = 3
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	lisp.SetDebug(*debug)

	if flag.NArg() > 0 {
		runFile(flag.Arg(0))
		return
	}
	runREPL()
}

func runFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "InterpreterError: %s\n", err)
		os.Exit(exitInterpreterError)
	}
	defer f.Close()

	it := lisp.New()
	rd := lisp.NewReader(f)
	it.SetInput(rd)
	if _, err := it.EvalReader(rd); err != nil {
		reportAndExit(err)
	}
}

// runREPL reads one line at a time via liner (history + line editing),
// feeding every line into one Reader shared for the whole session, so
// a single line containing several forms, or a form spanning several
// lines, both work the same way they do in file mode.
func runREPL() {
	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)

	it := lisp.New()
	rd := lisp.NewReader(&stdinFeeder{term: term})
	it.SetInput(rd)

	for {
		v, err := rd.Read()
		if err != nil {
			if isCancelled(err) {
				return
			}
			printErr(err)
			continue
		}
		result, err := it.Eval(v)
		if err != nil {
			if ee, ok := err.(*lisp.ExitEvent); ok {
				os.Exit(ee.Code)
			}
			printErr(err)
			continue
		}
		fmt.Println(lisp.Print(result))
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF)
}

// stdinFeeder adapts liner's line-at-a-time prompting to the io.Reader
// interface lisp.Reader expects, so the REPL gets liner's history and
// editing without lisp.Reader needing to know liner exists.
type stdinFeeder struct {
	term *liner.State
	buf  strings.Reader
}

func (f *stdinFeeder) Read(p []byte) (int, error) {
	if f.buf.Len() == 0 {
		line, err := f.term.Prompt(">>> ")
		if err != nil {
			return 0, err
		}
		f.term.AppendHistory(line)
		f.buf = *strings.NewReader(line + "\n")
	}
	return f.buf.Read(p)
}

func reportAndExit(err error) {
	switch e := err.(type) {
	case *lisp.ExitEvent:
		os.Exit(e.Code)
	case *lisp.SyntaxError:
		printErr(e)
		os.Exit(exitSyntaxError)
	case *lisp.LispError:
		printErr(e)
		os.Exit(exitLispError)
	case *lisp.InterpreterError:
		printErr(e)
		os.Exit(exitInterpreterError)
	default:
		printErr(err)
		os.Exit(exitInterpreterError)
	}
}

// printErr writes err to stderr prefixed by its class name, per §6's
// external-interface contract (SyntaxError:, LispError:,
// InterpreterError:).
func printErr(err error) {
	switch e := err.(type) {
	case *lisp.SyntaxError:
		fmt.Fprintf(os.Stderr, "SyntaxError: %s\n", e)
	case *lisp.LispError:
		fmt.Fprintf(os.Stderr, "LispError: %s\n", e)
	case *lisp.InterpreterError:
		fmt.Fprintf(os.Stderr, "InterpreterError: %s\n", e)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
