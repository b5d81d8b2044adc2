package xml

import (
	"bytes"
	"strings"
)

// Node is an XML element in a document tree. A Node holds either text
// content or child elements. The Encoder only ever builds one of the two;
// trees produced by Parse may carry both, which the Decoder reports as
// mixed content.
type Node struct {
	Name     Name
	Attr     []Attr
	Children []*Node

	// Text is the character data of the element. When CDATA is set the
	// text is written as a CDATA section instead of escaped text.
	Text  string
	CDATA bool
}

// NewNode returns an element node with the given name and attributes.
func NewNode(name Name, attr ...Attr) *Node {
	return &Node{Name: name, Attr: attr}
}

// AddChild appends the nodes as children of n, preserving their order.
func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// SetText sets the character data of the element.
func (n *Node) SetText(v string) {
	n.Text, n.CDATA = v, false
}

// SetCDATA sets the character data of the element, marking it to be
// written as a CDATA section.
func (n *Node) SetCDATA(v string) {
	n.Text, n.CDATA = v, true
}

// Attribute returns the value of the first attribute with the given local
// name, ignoring its namespace.
func (n *Node) Attribute(local string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given local name, or nil.
func (n *Node) Child(local string) *Node {
	for _, c := range n.Children {
		if c.Name.Local == local {
			return c
		}
	}
	return nil
}

// TrimmedText returns the character data with surrounding whitespace removed.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// IsEmpty reports whether the element has neither text content nor child
// elements. Whitespace-only text counts as no text.
func (n *Node) IsEmpty() bool {
	return len(n.Children) == 0 && len(n.TrimmedText()) == 0
}

// String returns the compact XML rendering of the element, without an XML
// declaration.
func (n *Node) String() string {
	var buf bytes.Buffer
	writeNode(&buf, n, "", 0)
	return buf.String()
}
