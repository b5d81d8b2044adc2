// Package httpbinding binds operation parameters to the path, query and
// headers of an HTTP request.
package httpbinding

import (
	"fmt"
	"net/http"
	"net/url"
)

// An Encoder provides encoding of REST URI path, query, and header components
// of an HTTP request.
type Encoder struct {
	path, rawPath []byte

	query  url.Values
	header http.Header
}

// NewEncoder creates a new encoder for the path template, such as
// `/orders/{reference}/pdf`. The query and header values are kept, values
// set on the encoder overwrite them.
func NewEncoder(path, query string, headers http.Header) (*Encoder, error) {
	parseQuery, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query string: %w", err)
	}

	header := headers.Clone()
	if header == nil {
		header = http.Header{}
	}

	return &Encoder{
		path:    []byte(path),
		rawPath: []byte(path),
		query:   parseQuery,
		header:  header,
	}, nil
}

// Encode sets the path, query and headers of req. Returns an error if a
// path label was left unset.
func (e *Encoder) Encode(req *http.Request) (*http.Request, error) {
	if label, ok := unsetLabel(e.path); ok {
		return nil, fmt.Errorf("path label %s was not set, %s", label, e.path)
	}

	req.URL.Path, req.URL.RawPath = string(e.path), string(e.rawPath)
	req.URL.RawQuery = e.query.Encode()
	req.Header = e.header

	return req, nil
}

// AddHeader returns a HeaderValue for appending to the given header name
func (e *Encoder) AddHeader(key string) HeaderValue {
	return newHeaderValue(e.header, key, true)
}

// SetHeader returns a HeaderValue for setting the given header name
func (e *Encoder) SetHeader(key string) HeaderValue {
	return newHeaderValue(e.header, key, false)
}

// SetURI returns a URIValue used for setting the given path key
func (e *Encoder) SetURI(key string) URIValue {
	return newURIValue(&e.path, &e.rawPath, key)
}

// SetQuery returns a QueryValue used for setting the given query key
func (e *Encoder) SetQuery(key string) QueryValue {
	return newQueryValue(e.query, key, false)
}

// AddQuery returns a QueryValue used for appending the given query key
func (e *Encoder) AddQuery(key string) QueryValue {
	return newQueryValue(e.query, key, true)
}
