package evaluator

import (
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"

	"lispy-lang/impl/internal/builtins"
	"lispy-lang/impl/internal/lexer"
	"lispy-lang/impl/internal/parser"
	"lispy-lang/impl/internal/value"
)

// Evaluator reduces trees to values. It keeps no state between calls.
type Evaluator struct {
	log *logger.Logger
}

// New returns an Evaluator that logs to log; a nil log disables logging.
func New(log *logger.Logger) *Evaluator { return &Evaluator{log: log} }

// Evaluate runs src through a silent Evaluator.
func Evaluate(src string) (int32, error) { return New(nil).EvalString(src) }

func (ev *Evaluator) debugf(format string, args ...interface{}) {
	if ev.log != nil {
		ev.log.Debugf(format, args...)
	}
}

// EvalString evaluates one line of source and requires a number result.
func (ev *Evaluator) EvalString(src string) (int32, error) {
	v, err := ev.EvalValue(src)
	if err != nil {
		return 0, err
	}
	if !v.IsNumber() {
		return 0, errors.Wrapf(value.ErrNotApplicable, "result %s is a %s, not a number", v, v.Kind())
	}
	return v.Int(), nil
}

// EvalValue evaluates one line of source and returns whatever value it
// reduces to.
func (ev *Evaluator) EvalValue(src string) (value.Value, error) {
	toks, rest := lexer.Tokenize([]byte(src))
	ev.debugf("tokenized %d tokens from %q", len(toks), src)
	if len(rest) > 0 {
		ev.debugf("ignoring unrecognized input %q", rest)
	}
	p := parser.New(toks)
	tree := p.Parse()
	if tree == nil {
		return value.Value{}, errors.Wrapf(value.ErrEmptyInput, "nothing to evaluate in %q", src)
	}
	if n := p.Remaining(); n > 0 {
		ev.debugf("ignoring %d tokens after %s", n, tree)
	}
	return ev.Eval(tree)
}

// Eval reduces a node.
func (ev *Evaluator) Eval(n *parser.Node) (value.Value, error) {
	if n == nil {
		return value.Value{}, errors.Wrap(value.ErrNotApplicable, "nil node")
	}
	v := n.Value
	switch v.Kind() {
	case value.KindNumber, value.KindList:
		return v, nil
	case value.KindFunction:
		args, err := ev.evalAll(n.Children)
		if err != nil {
			return value.Value{}, err
		}
		return builtins.Apply(v.Op(), args)
	case value.KindGroupBegin:
		if n.Tag == parser.TagSexpr {
			return ev.evalSexpr(n)
		}
	case value.KindError:
		return value.Value{}, errors.Wrapf(value.ErrNotApplicable, "%s node: %s", n.Tag, v.Message())
	}
	return value.Value{}, errors.Wrapf(value.ErrNotApplicable, "%s node carrying %s", n.Tag, v.Kind())
}

func (ev *Evaluator) evalSexpr(n *parser.Node) (value.Value, error) {
	if len(n.Children) == 0 {
		return value.List(nil), nil
	}
	head, rest := n.Children[0], n.Children[1:]
	if head.Value.IsFunction() {
		args, err := ev.evalAll(rest)
		if err != nil {
			return value.Value{}, err
		}
		return builtins.Apply(head.Value.Op(), args)
	}
	// Not an operator: the group is a plain list of everything after the
	// head. The head is still evaluated so its failures are reported.
	if _, err := ev.Eval(head); err != nil {
		return value.Value{}, err
	}
	items, err := ev.evalAll(rest)
	if err != nil {
		return value.Value{}, err
	}
	return value.List(items), nil
}

func (ev *Evaluator) evalAll(nodes []*parser.Node) ([]value.Value, error) {
	out := make([]value.Value, 0, len(nodes))
	for _, c := range nodes {
		v, err := ev.Eval(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
