package bpost

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bpost/shm-go/config"
	"github.com/bpost/shm-go/httpbinding"
	"github.com/bpost/shm-go/logging"
	"github.com/bpost/shm-go/middleware"
	shmhttp "github.com/bpost/shm-go/transport/http"
	"github.com/bpost/shm-go/xml"
	"github.com/jmespath/go-jmespath"
)

// Client is a Shipping Manager API client. A Client is safe for concurrent
// use.
type Client struct {
	options Options
	encoder *xml.Encoder
	decoder *xml.Decoder
}

// New returns a client for the options, modified by optFns.
func New(options Options, optFns ...func(*Options)) *Client {
	options = options.Copy()
	for _, fn := range optFns {
		fn(&options)
	}
	options.setDefaults()

	repeatedGroups := fieldSet(options.RepeatedGroups, DefaultRepeatedGroups)
	repeatedFields := fieldSet(options.RepeatedFields, DefaultRepeatedFields)
	integerFields := fieldSet(options.IntegerFields, DefaultIntegerFields)

	return &Client{
		options: options,
		encoder: xml.NewEncoder(func(o *xml.EncoderOptions) {
			o.RepeatedGroups = repeatedGroups
		}),
		decoder: xml.NewDecoder(func(o *xml.DecoderOptions) {
			o.RepeatedFields = repeatedFields
			o.IntegerFields = integerFields
		}),
	}
}

// NewFromConfig returns a client for the file configuration, logging to a
// zap logger at the configured level.
func NewFromConfig(cfg *config.Config, optFns ...func(*Options)) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config, %w", err)
	}

	logger, err := logging.NewZapProductionLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return New(Options{
		AccountID:      cfg.AccountID,
		Passphrase:     cfg.Passphrase,
		BaseURL:        cfg.BaseURL,
		Port:           cfg.Port,
		Timeout:        cfg.Timeout.Duration,
		UserAgent:      cfg.UserAgent,
		Logger:         logger,
		MaxConcurrency: cfg.MaxConcurrency,
		RepeatedFields: nonEmpty(cfg.Schema.RepeatedFields),
		IntegerFields:  nonEmpty(cfg.Schema.IntegerFields),
		RepeatedGroups: nonEmpty(cfg.Schema.RepeatedGroups),
	}, optFns...), nil
}

// Options returns a copy of the client options.
func (c *Client) Options() Options {
	return c.options.Copy()
}

// request describes the HTTP call of an operation.
type request struct {
	operation string
	method    string

	// path follows the account identifier, its {labels} are set from uri.
	path   string
	uri    map[string]string
	query  url.Values
	header http.Header

	contentType string
	body        *xml.Document
}

// response is a successful response of an operation.
type response struct {
	Body []byte

	// Root is the parsed body, nil when the body is not an XML document.
	Root *xml.Node

	parseErr error
}

// document returns the root element of the body, or an error when the body
// is not an XML document.
func (r *response) document() (*xml.Node, error) {
	if r.Root != nil {
		return r.Root, nil
	}
	if r.parseErr != nil {
		return nil, fmt.Errorf("%w, %v", ErrInvalidResponse, r.parseErr)
	}
	if len(r.Body) == 0 {
		return nil, fmt.Errorf("%w, empty body", ErrInvalidResponse)
	}
	return nil, fmt.Errorf("%w, body is not an XML document", ErrInvalidResponse)
}

func (c *Client) invoke(ctx context.Context, r request) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.options.Timeout)
	defer cancel()
	ctx = middleware.SetLogger(ctx, c.options.Logger)

	req, err := c.newRequest(r)
	if err != nil {
		return nil, &OperationError{OperationName: r.operation, Err: err}
	}

	stack, err := c.newStack(r.operation)
	if err != nil {
		return nil, &OperationError{OperationName: r.operation, Err: err}
	}

	handler := middleware.DecorateHandler(shmhttp.NewClientHandler(c.options.HTTPClient), stack)
	out, err := handler.Handle(ctx, req)
	if err != nil {
		return nil, &OperationError{OperationName: r.operation, Err: err}
	}

	resp, ok := out.(*shmhttp.Response)
	if !ok {
		return nil, &OperationError{
			OperationName: r.operation,
			Err:           fmt.Errorf("unexpected transport response type %T", out),
		}
	}

	var body []byte
	if resp.Body != nil {
		if body, err = io.ReadAll(resp.Body); err != nil {
			return nil, &OperationError{OperationName: r.operation, Err: err}
		}
	}

	result := &response{Body: body}
	if !isXML(body) {
		return result, nil
	}
	if result.Root, result.parseErr = xml.ParseBytes(body); result.parseErr != nil {
		return result, nil
	}

	if f, ok := xml.GetFault(result.Root, businessExceptionRootElement); ok {
		middleware.GetLogger(ctx).Logf(logging.Warn, "%s business exception %s, %s",
			r.operation, f.Code, f.Message)
		return nil, &OperationError{
			OperationName: r.operation,
			Err:           &BusinessError{Code: f.Code, Message: f.Message},
		}
	}
	return result, nil
}

func (c *Client) newRequest(r request) (*shmhttp.Request, error) {
	u, err := url.Parse(c.options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q, %w", c.options.BaseURL, err)
	}
	if c.options.Port != 0 {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(c.options.Port))
	}

	enc, err := httpbinding.NewEncoder(strings.TrimRight(u.Path, "/")+"/{accountId}"+r.path, "", r.header)
	if err != nil {
		return nil, err
	}
	if err := enc.SetURI("accountId").String(c.options.AccountID); err != nil {
		return nil, err
	}
	for k, v := range r.uri {
		if err := enc.SetURI(k).String(v); err != nil {
			return nil, err
		}
	}
	for k, vs := range r.query {
		for _, v := range vs {
			enc.AddQuery(k).String(v)
		}
	}

	req := shmhttp.NewStackRequest()
	req.Method = r.method
	req.URL = u
	req.Host = u.Host
	if req.Request, err = enc.Encode(req.Request); err != nil {
		return nil, err
	}

	if r.body == nil {
		return req, nil
	}
	req.Header.Set("Content-Type", r.contentType)
	return req.SetStream(bytes.NewReader(r.body.Bytes()))
}

func (c *Client) newStack(operation string) (*middleware.Stack, error) {
	stack := middleware.NewStack(operation)

	for _, fn := range []func(*middleware.Stack) error{
		shmhttp.AddErrorCloseResponseBodyMiddleware,
		func(s *middleware.Stack) error {
			return shmhttp.AddUserAgentMiddleware(s, c.options.userAgent())
		},
		func(s *middleware.Stack) error {
			return shmhttp.AddBasicAuthMiddleware(s, c.options.AccountID, c.options.Passphrase)
		},
		shmhttp.AddRequestLoggerMiddleware,
		shmhttp.AddResponseErrorMiddleware,
		shmhttp.AddCloseResponseBodyMiddleware,
	} {
		if err := fn(stack); err != nil {
			return nil, err
		}
	}

	for _, fn := range c.options.APIOptions {
		if err := fn(stack); err != nil {
			return nil, err
		}
	}
	return stack, nil
}

// decode returns the mapping of the response document, narrowed by the
// JMESPath expression when not empty. The narrowed value must be a mapping.
func (c *Client) decode(resp *response, expression string) (map[string]interface{}, error) {
	root, err := resp.document()
	if err != nil {
		return nil, err
	}

	m, err := c.decoder.Decode(root)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s, %w", root.Name.Local, err)
	}
	if len(expression) == 0 {
		return m, nil
	}

	v, err := jmespath.Search(expression, m)
	if err != nil {
		return nil, fmt.Errorf("failed to search response %q, %w", expression, err)
	}
	result, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w, %s element not found", ErrInvalidResponse, expression)
	}
	return result, nil
}

func isXML(body []byte) bool {
	body = bytes.TrimSpace(body)
	return len(body) != 0 && body[0] == '<'
}

func nonEmpty(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return v
}
