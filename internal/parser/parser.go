package parser

import (
	"lispy-lang/impl/internal/value"
)

// Parser builds one tree from a token stream. Its cursor only moves forward
// and is shared by every level of the recursion.
type Parser struct {
	toks []value.Value
	i    int
}

func New(toks []value.Value) *Parser { return &Parser{toks: toks} }

// Build returns the tree for the first expression in toks, or nil when there
// is none.
func Build(toks []value.Value) *Node { return New(toks).Parse() }

func (p *Parser) next() (value.Value, bool) {
	if p.i >= len(p.toks) {
		return value.Value{}, false
	}
	t := p.toks[p.i]
	p.i++
	return t, true
}

// Remaining is the number of tokens not consumed yet.
func (p *Parser) Remaining() int { return len(p.toks) - p.i }

// Parse reads the next expression. It returns nil on an exhausted stream or
// when the next token is a stray ')'.
func (p *Parser) Parse() *Node {
	t, ok := p.next()
	if !ok {
		return nil
	}
	return p.fromToken(t)
}

func (p *Parser) fromToken(t value.Value) *Node {
	switch t.Kind() {
	case value.KindNumber:
		return leaf(TagNumber, t)
	case value.KindFunction:
		return leaf(TagFunc, t)
	case value.KindGroupBegin:
		return p.sexpr()
	case value.KindGroupEnd:
		return nil
	case value.KindList:
		return leaf(TagList, t)
	default:
		return leaf(TagError, t)
	}
}

// sexpr collects children until a ')' or the end of the stream, so an
// unclosed group takes everything that is left.
func (p *Parser) sexpr() *Node {
	n := &Node{Tag: TagSexpr, Value: value.GroupBegin(), Children: []*Node{}}
	for {
		t, ok := p.next()
		if !ok {
			break
		}
		child := p.fromToken(t)
		if child == nil {
			break
		}
		if len(n.Children) == 0 && child.Tag == TagFunc {
			child.Tag = TagOperator
		}
		n.Children = append(n.Children, child)
	}
	return n
}
