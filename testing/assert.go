package testing

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/bpost/shm-go/xml"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// element is the comparable form of an xml.Node. Attributes are sorted,
// text is trimmed and child order is kept, as the carrier's schema is
// order sensitive.
type element struct {
	Name     string
	Attr     []string
	Text     string
	Children []element
}

func newElement(n *xml.Node) element {
	e := element{Name: n.Name.String(), Text: n.TrimmedText()}
	for _, attr := range n.Attr {
		e.Attr = append(e.Attr, attr.Name.String()+"="+attr.Value)
	}
	sort.Strings(e.Attr)
	for _, c := range n.Children {
		e.Children = append(e.Children, newElement(c))
	}
	return e
}

// XMLEqual compares two XML documents ignoring indentation and attribute
// order. Returns an error in case of mismatch or malformed documents. In
// case of mismatched XML, the error string will contain the diff between
// the two documents.
func XMLEqual(expectBytes, actualBytes []byte) error {
	expect, err := xml.Parse(bytes.NewReader(expectBytes))
	if err != nil {
		return fmt.Errorf("failed to parse expected document, %v", err)
	}

	actual, err := xml.Parse(bytes.NewReader(actualBytes))
	if err != nil {
		return fmt.Errorf("failed to parse actual document, %v", err)
	}

	if diff := cmp.Diff(newElement(expect), newElement(actual)); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML documents to be equal, %v", err)
		return false
	}

	return true
}
