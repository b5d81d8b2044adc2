package xml

// Value is a node of the mapping handed to the Encoder.
//
// Value is implemented by Scalar, Null, Record, Attributed, List and
// RepeatedGroup. Callers pick the variant explicitly; the Encoder never
// guesses the shape of a value from its contents.
type Value interface {
	isValue()
}

// Scalar is a leaf value. The wrapped value must be a bool, a Go integer
// type, a float32/float64 or a string; any other type is rejected by the
// Encoder with an UnsupportedTypeError.
type Scalar struct {
	V interface{}
}

// ScalarOf wraps v as a Scalar without checking its type.
func ScalarOf(v interface{}) Scalar {
	return Scalar{V: v}
}

// String returns a string Scalar.
func String(v string) Scalar { return Scalar{V: v} }

// Int returns an integer Scalar.
func Int(v int64) Scalar { return Scalar{V: v} }

// Float returns a floating point Scalar.
func Float(v float64) Scalar { return Scalar{V: v} }

// Bool returns a boolean Scalar.
func Bool(v bool) Scalar { return Scalar{V: v} }

// Null is an explicit null value. A field holding Null is omitted from the
// encoded document.
type Null struct{}

// Field is a named member of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered collection of named fields. Field order is the
// order child elements are emitted in.
type Record []Field

// Set appends the named field to the record, replacing the value in place
// if the name is already present.
func (r *Record) Set(name string, v Value) {
	for i := range *r {
		if (*r)[i].Name == name {
			(*r)[i].Value = v
			return
		}
	}
	*r = append(*r, Field{Name: name, Value: v})
}

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Attributed is a value applied to an element that carries attributes.
//
// A nil Value emits an element holding just the attributes, a Scalar value
// collapses into an attributed text element and any other value is encoded
// as the element's content.
type Attributed struct {
	Attr  []Attr
	Value Value
}

// List is an ordered sequence of values. Record entries are flattened into
// the list's element, other entries are dropped.
type List []Value

// RepeatedGroup is a list of flat records. Every entry is emitted as a
// sibling element named after the group's field, with one leaf element per
// entry field.
type RepeatedGroup []Record

func (Scalar) isValue()        {}
func (Null) isValue()          {}
func (Record) isValue()        {}
func (Attributed) isValue()    {}
func (List) isValue()          {}
func (RepeatedGroup) isValue() {}
