// Package repl implements the interactive read-eval-print loop described in
// §6.3: it reads one query at a time, drives pkg/logic's resolver, and
// prints the answer bindings. It is the REPL "external collaborator" — it
// owns the user-facing protocol, not any resolution logic.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/goprolog/pkg/logic"
	"github.com/gitrdm/goprolog/pkg/parser"
)

// REPL owns one session: a clause database, an input/output pair, and a
// logger for the engine-internal diagnostics described in §7.
type REPL struct {
	db  *logic.Database
	in  *bufio.Reader
	out io.Writer
	log *logrus.Logger
}

// New builds a REPL over db, reading queries from in and writing the
// prompt/bindings/yes-no protocol to out.
func New(db *logic.Database, in io.Reader, out io.Writer, log *logrus.Logger) *REPL {
	return &REPL{db: db, in: bufio.NewReader(in), out: out, log: log}
}

// Run drives the prompt loop until EOF, returning the process exit code:
// 0 on normal EOF (§6.3). A recovered engine-internal panic logs a fatal
// diagnostic and terminates the process directly, so Run never returns in
// that case.
func (r *REPL) Run() int {
	for {
		fmt.Fprint(r.out, "> ")

		text, err := r.readQueryText()
		if err == io.EOF {
			return 0
		}

		query, perr := parser.ParseQuery(text)
		if perr != nil {
			fmt.Fprintln(r.out, perr)
			continue
		}

		r.runQuery(query)
	}
}

// runQuery drives one query to completion (until the user accepts an
// answer, declines further answers, or the search is exhausted).
func (r *REPL) runQuery(query *logic.Rule) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.WithField("panic", fmt.Sprint(rec)).Fatal("engine-internal error")
		}
	}()

	vars := logic.CollectVars(query.Body)
	answer := logic.Advance(r.db, logic.NewRootFrame(query))
	if answer == nil {
		fmt.Fprintln(r.out, "no")
		return
	}

	for {
		for _, v := range vars {
			fmt.Fprintf(r.out, "%s = %s\n", v.Name, logic.Deref(v))
		}

		again, err := r.wantAnother()
		if err != nil {
			// EOF while waiting for accept/continue input: treat the
			// current answer as accepted and end the session gracefully
			// on the next prompt's EOF check.
			fmt.Fprintln(r.out, "yes")
			return
		}
		if !again {
			fmt.Fprintln(r.out, "yes")
			return
		}

		answer = logic.Advance(r.db, answer)
		if answer == nil {
			fmt.Fprintln(r.out, "no")
			return
		}
	}
}

// wantAnother reads one line of input and reports whether it was
// non-blank ("ask for another") as opposed to blank ("accept this
// answer"), per §6.3.
func (r *REPL) wantAnother() (bool, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	return strings.TrimSpace(line) != "", nil
}

// readQueryText reads bytes up to and including the next '.' (the
// surface grammar's clause terminator is never part of an identifier, so
// scanning for it at the byte level is safe — §6.1). It returns io.EOF if
// the stream ends with nothing but whitespace still pending.
func (r *REPL) readQueryText() (string, error) {
	var sb strings.Builder
	sawContent := false
	for {
		b, err := r.in.ReadByte()
		if err != nil {
			if err == io.EOF {
				if !sawContent {
					return "", io.EOF
				}
				return sb.String(), nil
			}
			return "", err
		}
		sb.WriteByte(b)
		if b == '.' {
			return sb.String(), nil
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			sawContent = true
		}
	}
}
