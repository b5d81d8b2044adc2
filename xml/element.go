package xml

// A Name represents an XML name (Local) annotated with a namespace prefix
// (Space). Unlike the standard library, Space holds the short prefix written
// in the document (`common:address`), not a resolved URL, when a Node is
// built by the Encoder. Nodes produced by Parse carry the resolved namespace
// URL instead.
type Name struct {
	Space, Local string
}

// String returns the qualified `prefix:local` form of the name.
func (n Name) String() string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (n Name) isZero() bool {
	return len(n.Local) == 0
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// NewAttribute returns a pointer to an attribute.
// It takes in a local name aka attribute name, and value
// representing the attribute value.
func NewAttribute(local, value string) *Attr {
	return &Attr{
		Name: Name{
			Local: local,
		},
		Value: value,
	}
}

// NewNamespaceAttribute returns a pointer to an attribute.
// It takes in a local name aka attribute name, and value
// representing the attribute value.
//
// NewNamespaceAttribute appends `xmlns:` in front of namespace
// prefix. For creating a default namespace attribute pass an empty
// prefix.
func NewNamespaceAttribute(prefix, url string) *Attr {
	attr := &Attr{
		Name: Name{
			Space: "xmlns",
		},
		Value: url,
	}
	if len(prefix) != 0 {
		attr.Name.Local = prefix
	}
	return attr
}

// qualified returns the name as written in the start tag. A namespace
// attribute without a local part is the default `xmlns` declaration.
func (a Attr) qualified() string {
	if len(a.Name.Local) == 0 {
		return a.Name.Space
	}
	return a.Name.String()
}
