// Package builtins implements the four arithmetic folds.
//
// Every fold treats a non-number argument as 0 and returns 0 for an empty
// argument list. That includes product: (*) is 0, not 1.
package builtins

import (
	"github.com/pkg/errors"

	"lispy-lang/impl/internal/value"
)

// Fold reduces evaluated arguments to a single value.
type Fold func(args []value.Value) (value.Value, error)

// Apply runs the fold for op.
func Apply(op value.Op, args []value.Value) (value.Value, error) {
	f, ok := Lookup(op)
	if !ok {
		return value.Value{}, errors.Wrapf(value.ErrNotApplicable, "unknown operation %d", int(op))
	}
	return f(args)
}

func Lookup(op value.Op) (Fold, bool) {
	switch op {
	case value.OpSum:
		return Sum, true
	case value.OpSubtract:
		return Subtract, true
	case value.OpProduct:
		return Product, true
	case value.OpDivide:
		return Divide, true
	}
	return nil, false
}

func Sum(args []value.Value) (value.Value, error) {
	return arithmetic(args, func(acc, x int32) (int32, error) { return acc + x, nil })
}

// Subtract is left-associative: (- 4 2 1) is (4-2)-1.
func Subtract(args []value.Value) (value.Value, error) {
	return arithmetic(args, func(acc, x int32) (int32, error) { return acc - x, nil })
}

func Product(args []value.Value) (value.Value, error) {
	return arithmetic(args, func(acc, x int32) (int32, error) { return acc * x, nil })
}

// Divide truncates toward zero.
func Divide(args []value.Value) (value.Value, error) {
	return arithmetic(args, func(acc, x int32) (int32, error) {
		if x == 0 {
			return 0, errors.Wrapf(value.ErrDivisionByZero, "%d / 0", acc)
		}
		return acc / x, nil
	})
}

func toInt(v value.Value) int32 {
	if v.IsNumber() {
		return v.Int()
	}
	return 0
}

func arithmetic(args []value.Value, step func(acc, x int32) (int32, error)) (value.Value, error) {
	if len(args) == 0 {
		return value.Number(0), nil
	}
	acc := toInt(args[0])
	for _, a := range args[1:] {
		var err error
		acc, err = step(acc, toInt(a))
		if err != nil {
			return value.Value{}, err
		}
	}
	return value.Number(acc), nil
}
