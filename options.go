package bpost

import (
	"net/http"
	"time"

	"github.com/bpost/shm-go/logging"
	"github.com/bpost/shm-go/middleware"
	shmhttp "github.com/bpost/shm-go/transport/http"
)

// DefaultBaseURL is the Shipping Manager endpoint, the account identifier
// is appended to it.
const DefaultBaseURL = "https://api.bpost.be/services/shm"

// DefaultTimeout bounds every operation that was not given a timeout.
const DefaultTimeout = 10 * time.Second

// DefaultMaxConcurrency bounds the concurrent calls of the batch
// operations.
const DefaultMaxConcurrency = 4

// Options configures a Client.
type Options struct {
	// AccountID and Passphrase are the Shipping Manager credentials.
	AccountID  string
	Passphrase string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// Port overrides the port of BaseURL when not zero.
	Port int

	// HTTPClient sends the requests, defaults to a new http.Client.
	HTTPClient shmhttp.ClientDo

	// Timeout bounds each operation, defaults to DefaultTimeout.
	Timeout time.Duration

	// UserAgent is appended to the client's own User-Agent.
	UserAgent string

	// Logger receives the request log, defaults to logging.Nop.
	Logger logging.Logger

	// APIOptions are applied to the middleware stack of every operation.
	APIOptions []func(*middleware.Stack) error

	// MaxConcurrency bounds RetrievePDFLabelsForBoxes, defaults to
	// DefaultMaxConcurrency.
	MaxConcurrency int

	// Field tables of the XML wire format. Nil keeps the defaults of the
	// v2 schema.
	RepeatedFields []string
	IntegerFields  []string
	RepeatedGroups []string
}

// Copy returns a copy of the options, the field tables are not shared.
func (o Options) Copy() Options {
	to := o
	to.RepeatedFields = copyStrings(o.RepeatedFields)
	to.IntegerFields = copyStrings(o.IntegerFields)
	to.RepeatedGroups = copyStrings(o.RepeatedGroups)
	to.APIOptions = append([]func(*middleware.Stack) error{}, o.APIOptions...)
	return to
}

func (o *Options) setDefaults() {
	if len(o.BaseURL) == 0 {
		o.BaseURL = DefaultBaseURL
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Logger == nil {
		o.Logger = logging.Nop{}
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = DefaultMaxConcurrency
	}
}

func (o Options) userAgent() string {
	ua := shmhttp.NewUserAgentBuilder()
	ua.AddProduct("Go", "")
	ua.AddProduct("bpost", Version)
	ua.AddRaw(o.UserAgent)
	return ua.Build()
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string{}, v...)
}
