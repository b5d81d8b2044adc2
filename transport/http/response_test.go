package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCheckResponse(t *testing.T) {
	cases := map[string]struct {
		StatusCode int
		Status     string
		Body       string
		ExpectErr  string
	}{
		"ok": {
			StatusCode: 200,
		},
		"created": {
			StatusCode: 201,
		},
		"no content": {
			StatusCode: 204,
		},
		"unauthorized": {
			StatusCode: 401,
			Status:     "401 Unauthorized",
			Body:       "<error>invalid credentials</error>",
			ExpectErr:  "StatusCode: 401, Status: 401 Unauthorized, Body: <error>invalid credentials</error>",
		},
		"no status text": {
			StatusCode: 500,
			ExpectErr:  "StatusCode: 500, Status: Internal Server Error",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			body := &closeRecorder{Reader: strings.NewReader(c.Body)}
			resp := &Response{Response: &http.Response{
				StatusCode: c.StatusCode,
				Status:     c.Status,
				Body:       body,
			}}

			err := CheckResponse(resp)
			if len(c.ExpectErr) == 0 {
				if err != nil {
					t.Fatalf("expect no error, got %v", err)
				}
				if body.closed {
					t.Errorf("expect body to be left open")
				}
				return
			}

			var respErr *ResponseError
			if !errors.As(err, &respErr) {
				t.Fatalf("expect %T error, got %v", respErr, err)
			}
			if e, a := c.StatusCode, respErr.HTTPStatusCode(); e != a {
				t.Errorf("expect %v status, got %v", e, a)
			}
			if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect error to contain %q, got %q", e, a)
			}
			if !body.closed {
				t.Errorf("expect body to be closed")
			}
		})
	}
}

func TestCheckResponseBodyLimit(t *testing.T) {
	big := bytes.Repeat([]byte("a"), maxErrorBodySize+10)
	resp := &Response{Response: &http.Response{
		StatusCode: 502,
		Body:       io.NopCloser(bytes.NewReader(big)),
	}}

	var respErr *ResponseError
	if !errors.As(CheckResponse(resp), &respErr) {
		t.Fatalf("expect %T error", respErr)
	}
	if e, a := maxErrorBodySize, len(respErr.Body); e != a {
		t.Errorf("expect %v body bytes, got %v", e, a)
	}
	if respErr.Unwrap() == nil {
		t.Errorf("expect body overflow to be reported")
	}
}

func TestEnsureBodyClosed(t *testing.T) {
	body := &closeRecorder{Reader: strings.NewReader("leftover")}
	EnsureBodyClosed(&Response{Response: &http.Response{Body: body}})
	if !body.closed {
		t.Errorf("expect body to be closed")
	}

	// nil values are ignored.
	EnsureBodyClosed(nil)
	EnsureBodyClosed(&Response{})
}
