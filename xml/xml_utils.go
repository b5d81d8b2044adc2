package xml

import (
	"io"
	"strings"
)

// Fault is the code and message carried by an error response body.
type Fault struct {
	Code    string
	Message string
}

// GetFault returns the fault held by n when n is an element named root.
// The code and message children are matched without regard to case, the
// carrier has used both `Code` and `code` over schema versions.
func GetFault(n *Node, root string) (Fault, bool) {
	if n == nil || n.Name.Local != root {
		return Fault{}, false
	}

	var f Fault
	for _, c := range n.Children {
		switch {
		case strings.EqualFold(c.Name.Local, "code"):
			f.Code = c.TrimmedText()
		case strings.EqualFold(c.Name.Local, "message"):
			f.Message = c.TrimmedText()
		}
	}
	return f, true
}

// GetResponseFault parses the response body and returns its fault when the
// root element is named root.
func GetResponseFault(r io.Reader, root string) (Fault, bool, error) {
	n, err := Parse(r)
	if err != nil {
		return Fault{}, false, err
	}
	f, ok := GetFault(n, root)
	return f, ok, nil
}
