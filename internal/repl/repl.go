// Package repl is the read-evaluate-print loop around the evaluator.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"

	"lispy-lang/impl/internal/evaluator"
)

const (
	DefaultPrompt = "lispy> "
	ExitCommand   = "exit"
)

type REPL struct {
	lines LineReader
	out   io.Writer
	ev    *evaluator.Evaluator
	log   *logger.Logger
	errc  *color.Color
}

// New returns a REPL reading from lines and printing to out. log may be nil.
func New(lines LineReader, out io.Writer, ev *evaluator.Evaluator, log *logger.Logger) *REPL {
	return &REPL{
		lines: lines,
		out:   out,
		ev:    ev,
		log:   log,
		errc:  color.New(color.FgRed),
	}
}

// Run loops until the exit command or the end of input. Evaluation errors
// are printed and never stop the loop.
func (r *REPL) Run() error {
	if r.log != nil {
		r.log.Info("session started")
	}
	for {
		line, err := r.lines.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "repl")
		}
		if r.Handle(line) {
			break
		}
	}
	if r.log != nil {
		r.log.Info("session ended")
	}
	return nil
}

// Handle processes one line and reports whether the loop should stop.
func (r *REPL) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == ExitCommand {
		return true
	}
	n, err := r.ev.EvalString(line)
	if err != nil {
		if r.log != nil {
			r.log.Debugf("evaluating %q: %s", line, err)
		}
		fmt.Fprintln(r.out, r.errc.Sprint("error: "+err.Error()))
		return false
	}
	fmt.Fprintln(r.out, n)
	return false
}
