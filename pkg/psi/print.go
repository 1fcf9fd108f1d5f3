package psi

import (
	"strings"
)

// Sprint renders the subtree rooted at n, one node per line.
func Sprint(n Node) string {
	var buf strings.Builder
	sprint(&buf, n, "", "")
	return buf.String()
}

func sprint(buf *strings.Builder, n Node, first, rest string) {
	buf.WriteString(first)
	buf.WriteString(n.label())
	if t := n.Type(); t != nil {
		buf.WriteString(" <")
		buf.WriteString(t.String())
		buf.WriteRune('>')
	}
	buf.WriteRune('\n')
	children := n.Children()
	for i, child := range children {
		if i == len(children)-1 {
			sprint(buf, child, rest+"└ ", rest+"  ")
		} else {
			sprint(buf, child, rest+"├ ", rest+"│ ")
		}
	}
}
