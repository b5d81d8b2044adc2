package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bpost/shm-go/logging"
	"github.com/bpost/shm-go/middleware"
	"github.com/bpost/shm-go/middleware/id"
)

func newTestStack(t *testing.T) *middleware.Stack {
	t.Helper()

	stack := middleware.NewStack("test")
	for _, fn := range []func(*middleware.Stack) error{
		AddErrorCloseResponseBodyMiddleware,
		func(s *middleware.Stack) error { return AddUserAgentMiddleware(s, "Go bpost/1.0.0 shop/2.1") },
		func(s *middleware.Stack) error { return AddBasicAuthMiddleware(s, "107423", "secret") },
		AddRequestLoggerMiddleware,
		AddResponseErrorMiddleware,
		AddCloseResponseBodyMiddleware,
	} {
		if err := fn(stack); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
	}
	return stack
}

func newTestRequest(t *testing.T, rawURL string) *Request {
	t.Helper()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	req := NewStackRequest()
	req.Method = http.MethodGet
	req.URL = u
	req.Host = u.Host
	return req
}

func TestMiddlewareStackOrder(t *testing.T) {
	expect := []string{
		id.ErrorCloseResponseBody,
		id.UserAgent,
		id.BasicAuth,
		id.RequestLogger,
		id.ResponseErrorHandler,
		id.CloseResponseBody,
	}
	if diff := cmp.Diff(expect, newTestStack(t).List()); len(diff) != 0 {
		t.Errorf("expect stack order match\n%s", diff)
	}
}

func TestMiddlewareStack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, a := "Go bpost/1.0.0 shop/2.1", r.Header.Get("User-Agent"); e != a {
			t.Errorf("expect %v user agent, got %v", e, a)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "107423" || pass != "secret" {
			t.Errorf("expect basic auth credentials, got %q %q %v", user, pass, ok)
		}

		switch r.URL.Path {
		case "/ok":
			io.WriteString(w, "<order/>")
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, "not found")
		}
	}))
	defer server.Close()

	var logged []string
	ctx := middleware.SetLogger(context.Background(), logging.LoggerFunc(
		func(c logging.Classification, format string, v ...interface{}) {
			logged = append(logged, string(c)+" "+fmt.Sprintf(format, v...))
		}))

	stack := newTestStack(t)
	handler := NewClientHandler(server.Client())

	out, err := stack.HandleMiddleware(ctx, newTestRequest(t, server.URL+"/ok"), handler)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	b, err := io.ReadAll(out.(*Response).Body)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "<order/>", string(b); e != a {
		t.Errorf("expect %q body, got %q", e, a)
	}

	_, err = stack.HandleMiddleware(ctx, newTestRequest(t, server.URL+"/missing"), handler)
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expect %T error, got %v", respErr, err)
	}
	if e, a := http.StatusNotFound, respErr.HTTPStatusCode(); e != a {
		t.Errorf("expect %v status, got %v", e, a)
	}
	if e, a := "not found", string(respErr.Body); e != a {
		t.Errorf("expect %q body, got %q", e, a)
	}

	if e, a := 2, len(logged); e != a {
		t.Fatalf("expect %v log entries, got %v, %v", e, a, logged)
	}
	if e, a := "DEBUG GET /ok 200", logged[0]; !strings.HasPrefix(a, e) {
		t.Errorf("expect %q prefix, got %q", e, a)
	}
	if e, a := "WARN GET /missing failed", logged[1]; !strings.HasPrefix(a, e) {
		t.Errorf("expect %q prefix, got %q", e, a)
	}
}
