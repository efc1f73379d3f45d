package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// LineReader yields one line of input per call and io.EOF at the end.
// *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

type scanner struct {
	sc     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewScanner reads lines from r, writing prompt to w before each one.
func NewScanner(r io.Reader, w io.Writer, prompt string) LineReader {
	return &scanner{sc: bufio.NewScanner(r), out: w, prompt: prompt}
}

func (s *scanner) ReadLine() (string, error) {
	if s.prompt != "" {
		if _, err := fmt.Fprint(s.out, s.prompt); err != nil {
			return "", errors.Wrap(err, "writing prompt")
		}
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// NewTerminal puts in into raw mode and returns a line editor over in and out,
// the writer results should go to, and a func that restores the terminal.
func NewTerminal(in, out *os.File, prompt string) (LineReader, io.Writer, func(), error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "entering raw mode")
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(rw, prompt)
	restore := func() { _ = term.Restore(fd, state) }
	return t, t, restore, nil
}
