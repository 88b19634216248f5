package arith

import (
	"strings"
	"unicode/utf8"
)

// Tree renders the expression as a box-drawing diagram for diagnostics. Each
// node is a small box holding its operator or literal, and the children of a
// binary node hang indented beneath it, the left child joined with ├ and the
// right with └.
func (e *Expr) Tree() string {
	var b strings.Builder
	e.n.tree(&b, "", false)
	return b.String()
}

func (n *node) tree(b *strings.Builder, prefix string, left bool) {
	label := n.name
	if label == "" {
		label = n.kind.op()
	}
	w := utf8.RuneCountInString(label)
	if w < 2 {
		w = 2
	}
	tee, gut := "└", " "
	if left {
		tee, gut = "├", "│"
	}
	b.WriteString(prefix + tee + "┬" + strings.Repeat("─", w+2) + "┐\n")
	b.WriteString(prefix + gut + "│ " + strings.Repeat(" ", w-utf8.RuneCountInString(label)) + label + " │\n")
	if n.left == nil && n.right == nil {
		b.WriteString(prefix + gut + "└" + strings.Repeat("─", w+2) + "┘\n")
		return
	}
	// The ┬ in the bottom edge lines up with the tee the children draw.
	b.WriteString(prefix + gut + "└──┬" + strings.Repeat("─", w-1) + "┘\n")
	next := prefix + "    "
	if left {
		next = prefix + "│   "
	}
	if n.right != nil {
		n.left.tree(b, next, true)
		n.right.tree(b, next, false)
		return
	}
	// Unary node: a single child beneath.
	n.left.tree(b, next, false)
}
