// Package xml maps between the nested values the bpost Shipping Manager
// domain model is built from and the carrier's XML wire format.
//
// Encoding walks a Value (Scalar, Null, Record, Attributed, List or
// RepeatedGroup) and builds a Node tree, applying the carrier's leaf rules:
// booleans as `true`/`false`, numbers in locale independent form, strings
// holding one of `& < > " '` as CDATA sections, null fields omitted.
// The tree is rendered by Document with the XML declaration and the
// carrier's indentation.
//
// Decoding walks a parsed Node tree and builds a map[string]interface{}.
// The format does not tell a single element list from a singular field, or
// a number from a string, so the Decoder is configured with fixed field
// tables: names that always decode to a list and names that always decode
// to an integer. An element with the nil attribute set decodes to nil, an
// empty element decodes to an empty mapping, and duplicate siblings outside
// the repeated table overwrite each other.
package xml
