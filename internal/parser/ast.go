package parser

import (
	"strings"

	"lispy-lang/impl/internal/value"
)

// Diagnostic tags. Field order below fixes the JSON field order.
const (
	TagNumber   = "number"
	TagOperator = "operator"
	TagSexpr    = "sexpr"
	TagFunc     = "func"
	TagError    = "error"
	TagList     = "list"
)

// Node is one element of the tree. Only sexpr nodes have children.
type Node struct {
	Tag      string      `json:"tag"`
	Value    value.Value `json:"value"`
	Children []*Node     `json:"children"`
}

func leaf(tag string, v value.Value) *Node {
	return &Node{Tag: tag, Value: v, Children: []*Node{}}
}

func (n *Node) IsLeaf() bool { return len(n.Children) == 0 && n.Tag != TagSexpr }

// String renders the tree as s-expression text.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Tag != TagSexpr {
		return n.Value.String()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
