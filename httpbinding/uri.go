package httpbinding

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	uriTokenStart = '{'
	uriTokenStop  = '}'
	uriTokenSkip  = '+'
)

// URIValue is used to encode named URI parameters
type URIValue struct {
	path, rawPath *[]byte
	key           string
}

func newURIValue(path *[]byte, rawPath *[]byte, key string) URIValue {
	return URIValue{path: path, rawPath: rawPath, key: key}
}

// String encodes v as the path label. Labels must not be empty.
func (u URIValue) String(v string) error {
	if len(v) == 0 {
		return fmt.Errorf("path label %s must not be empty", u.key)
	}

	var err error
	if *u.path, err = replacePathElement(*u.path, u.key, v, false); err != nil {
		return err
	}
	*u.rawPath, err = replacePathElement(*u.rawPath, u.key, v, true)
	return err
}

// Integer encodes v as the path label.
func (u URIValue) Integer(v int64) error {
	return u.String(strconv.FormatInt(v, 10))
}

// replacePathElement replaces the `{key}` label of path with val. A
// `{key+}` label keeps the slashes of val when escaping.
func replacePathElement(path []byte, key, val string, escape bool) ([]byte, error) {
	label := append([]byte{uriTokenStart}, key...)

	start := bytes.Index(path, label)
	end := start + len(label)
	if start < 0 || end >= len(path) {
		return path, fmt.Errorf("path label %s not found, %s", key, path)
	}

	encodeSep := true
	if path[end] == uriTokenSkip {
		encodeSep = false
		end++
	}
	if end >= len(path) || path[end] != uriTokenStop {
		return path, fmt.Errorf("invalid path element, does not contain token stop, %s", path)
	}
	end++

	if escape {
		val = EscapePath(val, encodeSep)
	}

	out := make([]byte, 0, len(path)-(end-start)+len(val))
	out = append(out, path[:start]...)
	out = append(out, val...)
	out = append(out, path[end:]...)
	return out, nil
}

// EscapePath escapes part of a URL path. Slashes are kept unless encodeSep
// is set.
func EscapePath(path string, encodeSep bool) string {
	if encodeSep {
		return url.PathEscape(path)
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// unsetLabel returns the first label of path left unset.
func unsetLabel(path []byte) (string, bool) {
	start := bytes.IndexByte(path, uriTokenStart)
	if start < 0 {
		return "", false
	}
	end := bytes.IndexByte(path[start:], uriTokenStop)
	if end < 0 {
		return string(path[start:]), true
	}
	return string(path[start : start+end+1]), true
}
