package xml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Header is the XML declaration written in front of every encoded document.
const Header = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	equals            = '='
	quote             = '"'
	newline           = '\n'

	cdataStart = "<![CDATA["
	cdataEnd   = "]]>"
)

// Document is an encoded XML document ready to be sent as a request body.
type Document struct {
	Root *Node

	// Indent is the string repeated once per nesting level when the
	// document is rendered. An empty Indent renders the tree compact.
	Indent string
}

// Bytes returns the document as UTF-8 encoded bytes, starting with the XML
// declaration and ending with a newline.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	if d.Root != nil {
		writeNode(&buf, d.Root, d.Indent, 0)
	}
	buf.WriteRune(newline)
	return buf.Bytes()
}

// String returns the string form of Bytes.
func (d *Document) String() string {
	return string(d.Bytes())
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

// writeNode writes the element and its subtree. With a non-empty indent
// every child element starts on its own line, indented by depth. Elements
// holding text are always written on a single line.
func writeNode(w *bytes.Buffer, n *Node, indent string, depth int) {
	writeStartElement(w, n)

	switch {
	case len(n.Children) != 0:
		w.WriteRune(rightAngleBracket)
		if len(n.Text) != 0 {
			writeText(w, n)
		}
		for _, c := range n.Children {
			if len(indent) != 0 {
				w.WriteRune(newline)
				w.WriteString(strings.Repeat(indent, depth+1))
			}
			writeNode(w, c, indent, depth+1)
		}
		if len(indent) != 0 {
			w.WriteRune(newline)
			w.WriteString(strings.Repeat(indent, depth))
		}
		writeEndElement(w, n.Name)

	case len(n.Text) != 0 || n.CDATA:
		w.WriteRune(rightAngleBracket)
		writeText(w, n)
		writeEndElement(w, n.Name)

	default:
		w.WriteRune(forwardSlash)
		w.WriteRune(rightAngleBracket)
	}
}

// writeStartElement writes the open tag of n without its closing bracket.
// It handles the namespace prefix and attributes of the element.
func writeStartElement(w *bytes.Buffer, n *Node) {
	w.WriteRune(leftAngleBracket)
	w.WriteString(n.Name.String())

	for _, attr := range n.Attr {
		w.WriteRune(' ')
		w.WriteString(attr.qualified())
		w.WriteRune(equals)
		w.WriteRune(quote)
		xml.EscapeText(w, []byte(attr.Value))
		w.WriteRune(quote)
	}
}

func writeEndElement(w *bytes.Buffer, name Name) {
	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)
	w.WriteString(name.String())
	w.WriteRune(rightAngleBracket)
}

func writeText(w *bytes.Buffer, n *Node) {
	if !n.CDATA {
		xml.EscapeText(w, []byte(n.Text))
		return
	}

	// a CDATA section cannot contain its own terminator, split it across
	// two sections instead.
	w.WriteString(cdataStart)
	w.WriteString(strings.ReplaceAll(n.Text, cdataEnd, "]]"+cdataEnd+cdataStart+">"))
	w.WriteString(cdataEnd)
}
