package httpbinding

import (
	"net/http"
	"strconv"
	"strings"
)

// HeaderValue is used to encode values to an HTTP header
type HeaderValue struct {
	header http.Header
	key    string
	append bool
}

func newHeaderValue(header http.Header, key string, append bool) HeaderValue {
	return HeaderValue{
		header: header,
		key:    http.CanonicalHeaderKey(strings.TrimSpace(key)),
		append: append,
	}
}

func (h HeaderValue) modifyHeader(value string) {
	if h.append {
		h.header[h.key] = append(h.header[h.key], value)
	} else {
		h.header[h.key] = append(h.header[h.key][:0], value)
	}
}

// String encodes the value v as the header string value
func (h HeaderValue) String(v string) {
	h.modifyHeader(v)
}

// Integer encodes the value v as the header string value
func (h HeaderValue) Integer(v int64) {
	h.modifyHeader(strconv.FormatInt(v, 10))
}
