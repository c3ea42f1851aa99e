package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrMalformed marks documents that are not well-formed XML.
var ErrMalformed = errors.New("malformed XML")

// Parse reads a complete XML document from r and returns its root element.
// Read failures are returned as-is; anything the decoder rejects is wrapped
// with ErrMalformed.
func Parse(r io.Reader) (*Element, error) {
	src := &trackingReader{r: r}
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if src.err != nil {
				return nil, fmt.Errorf("failed to read document: %w", src.err)
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs, err := attributes(t.Attr)
			if err != nil {
				return nil, err
			}
			el := &Element{
				Name:       t.Name.Local,
				Attributes: attrs,
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements (%q after %q)", ErrMalformed, el.Name, root.Name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			// The decoder has already matched start and end names.
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("%w: character data outside root element", ErrMalformed)
				}
				continue
			}
			appendChild(stack, Text(string(t)))

		case xml.Comment:
			if len(stack) > 0 {
				appendChild(stack, Comment(string(t)))
			}

		case xml.ProcInst:
			if len(stack) > 0 {
				appendChild(stack, ProcInst{Target: t.Target, Inst: string(t.Inst)})
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element %q", ErrMalformed, stack[len(stack)-1].Name)
	}
	return root, nil
}

func appendChild(stack []*Element, n Node) {
	parent := stack[len(stack)-1]
	parent.Children = append(parent.Children, n)
}

// attributes converts decoder attributes to a map keyed by local name.
// Namespace declarations are dropped. An attribute name that appears twice
// on one element is malformed.
func attributes(attrs []xml.Attr) (map[string]string, error) {
	m := make(map[string]string, len(attrs))
	seen := make(map[xml.Name]struct{}, len(attrs))
	for _, a := range attrs {
		if _, dup := seen[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate attribute %q", ErrMalformed, qualified(a.Name))
		}
		seen[a.Name] = struct{}{}

		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		m[a.Name.Local] = a.Value
	}
	return m, nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// trackingReader remembers the first non-EOF read error so it can be told
// apart from decoder syntax errors.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
