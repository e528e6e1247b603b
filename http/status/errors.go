package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrMalformedStartLine    = NewError(BadRequest, "malformed start line")
	ErrUnknownMethod         = NewError(BadRequest, "invalid request method")
	ErrMalformedHeader       = NewError(BadRequest, "invalid header")
	ErrConnectionRead        = NewError(BadRequest, "could not read the request")
	ErrNotFound              = NewError(NotFound, "not found")
	ErrUnsupportedStatusCode = NewError(InternalServerError, "unsupported status code")
	ErrInternalServerError   = NewError(InternalServerError, "internal server error")

	// ErrShutdown is returned by the accept loop after it was stopped.
	ErrShutdown = NewError(ServiceUnavailable, "shutdown")
)
