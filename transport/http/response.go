package http

import (
	"fmt"
	"io"
	"net/http"
)

// maxErrorBodySize bounds how much of an error response body is kept.
const maxErrorBodySize = 1 * 1024 * 1024 // 1 MiB

// Response provides the HTTP specific response structure for HTTP specific
// middleware to use to deserialize the response from an operation call.
type Response struct {
	*http.Response
}

// ResponseError provides the HTTP centric error type wrapping the status
// and body of a response the service rejected.
type ResponseError struct {
	Response *Response

	// Body holds up to 1 MiB of the response body.
	Body []byte

	Err error
}

// HTTPStatusCode returns the HTTP response status code received from the
// service.
func (e *ResponseError) HTTPStatusCode() int { return e.Response.StatusCode }

// Error returns the formatted error.
func (e *ResponseError) Error() string {
	status := e.Response.Status
	if len(status) == 0 {
		status = http.StatusText(e.Response.StatusCode)
	}

	msg := fmt.Sprintf("http response error StatusCode: %d, Status: %s", e.Response.StatusCode, status)
	if len(e.Body) != 0 {
		msg += fmt.Sprintf(", Body: %s", e.Body)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(", %v", e.Err)
	}
	return msg
}

// Unwrap returns the nested error if any, or nil.
func (e *ResponseError) Unwrap() error { return e.Err }

// CheckResponse returns a *ResponseError when the response status is not a
// 2xx. The body of a rejected response is read, bounded, and closed.
func CheckResponse(resp *Response) error {
	if resp == nil || resp.Response == nil {
		return nil
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{Response: resp}
	if resp.Body != nil {
		defer resp.Body.Close()

		bodyR := &io.LimitedReader{R: resp.Body, N: maxErrorBodySize}
		body, err := io.ReadAll(bodyR)
		if err != nil {
			respErr.Err = fmt.Errorf("failed to read response body, %w", err)
		} else if bodyR.N == 0 {
			respErr.Err = fmt.Errorf("response body exceeds %d bytes", maxErrorBodySize)
		}
		respErr.Body = body
	}
	return respErr
}

// EnsureBodyClosed drains up to 512 bytes and closes the body to let the
// transport reuse the connection.
func EnsureBodyClosed(resp *Response) {
	if resp != nil && resp.Response != nil && resp.Body != nil {
		_, _ = io.CopyN(io.Discard, resp.Body, 512)
		_ = resp.Body.Close()
	}
}
