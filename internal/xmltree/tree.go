// Package xmltree loads XML documents into an in-memory element tree.
//
// The tree is fully materialized before it is returned: a load either yields
// a complete root element or an error, never a partial document. Element and
// attribute names are stored as local names, so a namespace prefix does not
// change how an element is matched.
package xmltree

// Node is a child of an element. It is implemented by *Element, Text,
// Comment and ProcInst.
type Node interface {
	node()
}

// Element is a single XML element.
type Element struct {
	// Name is the local tag name.
	Name string

	// Attributes maps local attribute names to their values.
	Attributes map[string]string

	// Children holds element and non-element child nodes in document order.
	Children []Node
}

// Text is character data, including CDATA sections.
type Text string

// Comment is the body of an XML comment.
type Comment string

// ProcInst is a processing instruction inside the root element.
type ProcInst struct {
	Target string
	Inst   string
}

func (*Element) node() {}
func (Text) node()     {}
func (Comment) node()  {}
func (ProcInst) node() {}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attributes == nil {
		return "", false
	}
	v, ok := e.Attributes[name]
	return v, ok
}

// ChildElements returns the element children of e in document order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}
