// Package value holds the tagged datum shared by the tokenizer, the tree
// builder and the evaluator.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNumber Kind = iota
	KindFunction
	KindGroupBegin
	KindGroupEnd
	KindList
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFunction:
		return "function"
	case KindGroupBegin:
		return "begin"
	case KindGroupEnd:
		return "end"
	case KindList:
		return "list"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Op identifies a built-in arithmetic fold.
type Op int

const (
	OpSum Op = iota
	OpSubtract
	OpProduct
	OpDivide
)

// Symbol is the source character for the op.
func (o Op) Symbol() string {
	switch o {
	case OpSum:
		return "+"
	case OpSubtract:
		return "-"
	case OpProduct:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

func (o Op) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpSubtract:
		return "subtract"
	case OpProduct:
		return "product"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// OpFromSymbol maps one of + - * / to its Op.
func OpFromSymbol(c byte) (Op, bool) {
	switch c {
	case '+':
		return OpSum, true
	case '-':
		return OpSubtract, true
	case '*':
		return OpProduct, true
	case '/':
		return OpDivide, true
	}
	return 0, false
}

// Value is immutable once constructed; copies are safe to share.
type Value struct {
	kind  Kind
	num   int32
	op    Op
	items []Value
	msg   string
}

func Number(n int32) Value   { return Value{kind: KindNumber, num: n} }
func Function(op Op) Value   { return Value{kind: KindFunction, op: op} }
func GroupBegin() Value      { return Value{kind: KindGroupBegin} }
func GroupEnd() Value        { return Value{kind: KindGroupEnd} }
func Error(msg string) Value { return Value{kind: KindError, msg: msg} }

// List copies items, so later changes to the caller's slice are not seen.
func List(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

func (v Value) Kind() Kind { return v.kind }

// Int is the payload of a Number; zero for every other kind.
func (v Value) Int() int32 { return v.num }

func (v Value) Op() Op { return v.op }

// Items returns a copy of a List's elements.
func (v Value) Items() []Value {
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

func (v Value) Len() int { return len(v.items) }

func (v Value) Message() string { return v.msg }

func (v Value) IsNumber() bool   { return v.kind == KindNumber }
func (v Value) IsFunction() bool { return v.kind == KindFunction }

// IsMarker reports whether v is a GroupBegin or GroupEnd delimiter.
func (v Value) IsMarker() bool {
	return v.kind == KindGroupBegin || v.kind == KindGroupEnd
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFunction:
		return v.op.Symbol()
	case KindGroupBegin:
		return "("
	case KindGroupEnd:
		return ")"
	case KindList:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = it.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindError:
		return "#<error: " + v.msg + ">"
	default:
		return "#<unknown>"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Equal compares two values deeply. Functions are equal iff they name the
// same Op.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNumber:
		return a.num == b.num
	case KindFunction:
		return a.op == b.op
	case KindGroupBegin, KindGroupEnd:
		return true
	case KindList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindError:
		return a.msg == b.msg
	}
	return false
}

// Contains reports whether pred holds for v or, for lists, any nested item.
func Contains(v Value, pred func(Value) bool) bool {
	if pred(v) {
		return true
	}
	for _, it := range v.items {
		if Contains(it, pred) {
			return true
		}
	}
	return false
}
