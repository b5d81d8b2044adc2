package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestRequestRewindable(t *testing.T) {
	cases := map[string]struct {
		Stream    io.Reader
		ExpectErr string
	}{
		"rewindable": {
			Stream: bytes.NewReader([]byte{}),
		},
		"not rewindable": {
			Stream:    bytes.NewBuffer([]byte("abc123")),
			ExpectErr: "stream is not seekable",
		},
		"nil stream": {},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := &Request{
				Request: &http.Request{
					URL:    &url.URL{},
					Header: http.Header{},
				},
			}

			req, err := req.SetStream(c.Stream)
			if err != nil {
				t.Fatalf("expect no error setting stream, %v", err)
			}

			err = req.RewindStream()
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expect error to contain %v, got %v", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
		})
	}
}

func TestRequestBuild(t *testing.T) {
	cases := map[string]struct {
		Stream        io.Reader
		ExpectLength  int64
		ExpectBody    string
		ExpectNilBody bool
	}{
		"bytes reader": {
			Stream:       bytes.NewReader([]byte("<order/>")),
			ExpectLength: 8,
			ExpectBody:   "<order/>",
		},
		"strings reader": {
			Stream:       strings.NewReader("abc"),
			ExpectLength: 3,
			ExpectBody:   "abc",
		},
		"no body": {
			ExpectNilBody: true,
		},
		"empty buffer": {
			Stream:        &bytes.Buffer{},
			ExpectNilBody: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := NewStackRequest()
			req.Method = http.MethodPost

			req, err := req.SetStream(c.Stream)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			built := req.Build(context.Background())
			if c.ExpectNilBody {
				if built.Body != nil {
					t.Errorf("expect nil body, got %T", built.Body)
				}
				if e, a := int64(0), built.ContentLength; e != a {
					t.Errorf("expect %v content length, got %v", e, a)
				}
				return
			}

			if e, a := c.ExpectLength, built.ContentLength; e != a {
				t.Errorf("expect %v content length, got %v", e, a)
			}
			b, err := io.ReadAll(built.Body)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.ExpectBody, string(b); e != a {
				t.Errorf("expect %q body, got %q", e, a)
			}
		})
	}
}
