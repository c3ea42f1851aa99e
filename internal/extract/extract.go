// Package extract collects operator type names from a loaded model graph.
package extract

import "github.com/danieljhkim/irops/internal/xmltree"

const (
	// LayerTag is the element name that describes one operator in the graph.
	LayerTag = "layer"

	// TypeAttr is the layer attribute naming the operator kind.
	TypeAttr = "type"
)

// OperatorTypes walks the tree rooted at root in document order and returns
// the type attribute of every layer element, duplicates included. A node is
// checked before its children and children are visited left to right.
// Layers without a type attribute are skipped. The walk uses an explicit
// stack, so document depth is bounded only by memory.
func OperatorTypes(root *xmltree.Element) []string {
	ops := []string{}
	if root == nil {
		return ops
	}

	stack := []*xmltree.Element{root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if el.Name == LayerTag {
			if typ, ok := el.Attr(TypeAttr); ok {
				ops = append(ops, typ)
			}
		}

		// Push in reverse so the leftmost child is popped first.
		children := el.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return ops
}
