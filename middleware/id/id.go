package id

const (
	// UserAgent is the slot ID for middleware that sets the User-Agent header.
	UserAgent = "UserAgent"
	// BasicAuth is the slot ID for middleware that signs requests with the account credentials.
	BasicAuth = "BasicAuth"
	// RequestLogger is the slot ID for middleware that logs requests and their outcome.
	RequestLogger = "RequestLogger"
	// ResponseErrorHandler is the slot ID for middleware that turns non 2xx responses into errors.
	ResponseErrorHandler = "ResponseErrorHandler"
	// CloseResponseBody is the slot ID for middleware that handles closing the transport layer response body.
	CloseResponseBody = "CloseResponseBody"
	// ErrorCloseResponseBody is the slot ID for middleware that handles closing the transport layer response body if an error occurred.
	ErrorCloseResponseBody = "ErrorCloseResponseBody"
)
