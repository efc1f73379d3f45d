package value

import "github.com/pkg/errors"

// Failures surfaced by the interpreter. Callers match them with errors.Is;
// the returned errors carry extra context via errors.Wrapf.
var (
	ErrNumberOverflow = errors.New("number does not fit in 32 bits")
	ErrNotApplicable  = errors.New("not applicable")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmptyInput     = errors.New("empty input")
)
