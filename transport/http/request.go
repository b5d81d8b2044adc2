package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Request provides the HTTP specific request structure for HTTP specific
// middleware to use to send an operation's request.
type Request struct {
	*http.Request
	stream           io.Reader
	isStreamSeekable bool
	streamStartPos   int64
}

// NewStackRequest returns an initialized request ready to be populated with
// the HTTP request details.
func NewStackRequest() *Request {
	return &Request{
		Request: &http.Request{
			URL:    &url.URL{},
			Header: http.Header{},
		},
	}
}

// Clone returns a deep copy of the Request for the new context. A reference to
// the Stream is copied, but the underlying stream is not copied.
func (r *Request) Clone() *Request {
	rc := *r
	rc.Request = rc.Request.Clone(context.TODO())
	return &rc
}

// RewindStream will rewind the io.Reader to the relative start position if it
// is an io.Seeker.
func (r *Request) RewindStream() error {
	// If there is no stream there is nothing to rewind.
	if r.stream == nil {
		return nil
	}

	if !r.isStreamSeekable {
		return fmt.Errorf("request stream is not seekable")
	}
	_, err := r.stream.(io.Seeker).Seek(r.streamStartPos, io.SeekStart)
	return err
}

// GetStream returns the request stream io.Reader if a stream is set. If no
// stream is present nil will be returned.
func (r *Request) GetStream() io.Reader {
	return r.stream
}

// SetStream returns a clone of the request with the stream set to the
// provided reader. May return an error if the provided reader is seekable
// but returns an error.
func (r *Request) SetStream(reader io.Reader) (rc *Request, err error) {
	rc = r.Clone()

	if reader == http.NoBody {
		reader = nil
	}

	var isStreamSeekable bool
	var streamStartPos int64
	switch v := reader.(type) {
	case io.Seeker:
		n, err := v.Seek(0, io.SeekCurrent)
		if err != nil {
			return r, err
		}
		isStreamSeekable = true
		streamStartPos = n
	default:
		// If the stream length can be determined, and is determined to be
		// empty, use a nil stream to prevent confusion between empty vs not
		// empty stream.
		if l, ok := streamLength(reader); ok && l == 0 {
			reader = nil
		}
	}

	rc.stream = reader
	rc.isStreamSeekable = isStreamSeekable
	rc.streamStartPos = streamStartPos

	return rc, err
}

// Build returns a standard HTTP request value from the request. The
// request's stream is wrapped so the HTTP transport cannot close it.
func (r *Request) Build(ctx context.Context) *http.Request {
	req := r.Request.Clone(ctx)

	if r.stream == nil && req.ContentLength == -1 {
		req.ContentLength = 0
	}

	switch stream := r.stream.(type) {
	case *io.PipeReader:
		req.Body = io.NopCloser(stream)
		req.ContentLength = -1
	default:
		if r.stream != nil {
			req.Body = io.NopCloser(stream)
			if l, ok := streamLength(r.stream); ok {
				req.ContentLength = l
			}
		}
	}

	return req
}

func streamLength(stream io.Reader) (int64, bool) {
	type lener interface {
		Len() int
	}

	switch v := stream.(type) {
	case nil:
		return 0, true
	case lener:
		return int64(v.Len()), true
	}
	return -1, false
}
