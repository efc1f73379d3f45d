package lexer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lispy-lang/impl/internal/value"
)

// Tokenize converts src into a token stream. It never fails: at the first
// position where no token matches it stops and returns the unconsumed input
// in rest, including any whitespace skipped just before it.
func Tokenize(src []byte) (toks []value.Value, rest []byte) {
	i := 0
	n := len(src)

	emit := func(v value.Value) { toks = append(toks, v) }

	for {
		// Every alternative starts with optional whitespace, so skip it once
		// and only commit the new position when a token follows.
		j := i
		for j < n && isSpace(src[j]) {
			j++
		}
		if j >= n {
			return toks, src[i:]
		}
		ch := src[j]
		switch {
		case isOperator(ch):
			emit(operator(ch))
			i = j + 1
		case isDigit(ch):
			start := j
			for j < n && isDigit(src[j]) {
				j++
			}
			emit(number(src[start:j]))
			i = j
		case ch == '(':
			emit(value.GroupBegin())
			i = j + 1
		case ch == ')':
			emit(value.GroupEnd())
			i = j + 1
		default:
			return toks, src[i:]
		}
	}
}

// Lex is Tokenize for strings, discarding the remainder.
func Lex(src string) []value.Value {
	toks, _ := Tokenize([]byte(src))
	return toks
}

// Format renders tokens back to canonical source text. Lex(Format(toks))
// yields toks again for every stream Format accepts.
func Format(toks []value.Value) (string, error) {
	var b strings.Builder
	for i, t := range toks {
		switch t.Kind() {
		case value.KindNumber:
			if t.Int() < 0 {
				return "", errors.Errorf("token %d: negative number %d has no literal form", i, t.Int())
			}
		case value.KindFunction, value.KindGroupBegin, value.KindGroupEnd:
		default:
			return "", errors.Errorf("token %d: %s is not a source token", i, t.Kind())
		}
		if i > 0 && toks[i-1].Kind() != value.KindGroupBegin && t.Kind() != value.KindGroupEnd {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String(), nil
}

func operator(ch byte) value.Value {
	op, ok := value.OpFromSymbol(ch)
	if !ok {
		return value.Error("bad operation provided: " + string(ch))
	}
	return value.Function(op)
}

func number(digits []byte) value.Value {
	n, err := strconv.ParseInt(string(digits), 10, 32)
	if err != nil {
		return value.Error(errors.Wrapf(value.ErrNumberOverflow, "%s", digits).Error())
	}
	return value.Number(int32(n))
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOperator(b byte) bool { return b == '+' || b == '-' || b == '*' || b == '/' }
