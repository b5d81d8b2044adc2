package httpbinding

import (
	"net/url"
	"strconv"
)

// QueryValue is used to encode query key values
type QueryValue struct {
	query  url.Values
	key    string
	append bool
}

func newQueryValue(query url.Values, key string, append bool) QueryValue {
	return QueryValue{
		query:  query,
		key:    key,
		append: append,
	}
}

func (qv QueryValue) updateKey(value string) {
	if qv.append {
		qv.query.Add(qv.key, value)
	} else {
		qv.query.Set(qv.key, value)
	}
}

// String encodes the value v as a query string value
func (qv QueryValue) String(v string) {
	qv.updateKey(v)
}

// Integer encodes the value v as a query string value
func (qv QueryValue) Integer(v int64) {
	qv.updateKey(strconv.FormatInt(v, 10))
}

// Boolean encodes the value v as a query string value
func (qv QueryValue) Boolean(v bool) {
	qv.updateKey(strconv.FormatBool(v))
}
