package inbuilt

import (
	"errors"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/status"
)

// NotFoundBody is the body of the default response when no route matched.
const NotFoundBody = "Not found"

type errorHandlers struct {
	universal Handler
	byCode    map[status.Code]Handler
}

func newErrorHandlers() errorHandlers {
	return errorHandlers{
		byCode: map[status.Code]Handler{
			status.NotFound: notFoundHandler,
		},
	}
}

func (e *errorHandlers) Set(code status.Code, handler Handler) {
	e.byCode[code] = handler
}

func (e *errorHandlers) SetUniversal(handler Handler) {
	e.universal = handler
}

// Handle fills the response with the error message and the code it carries (or 500 if
// it carries none), then lets the registered handler adjust it.
func (e *errorHandlers) Handle(request *http.Request, response *http.Response, err error) {
	response.Error(err)

	code := status.InternalServerError
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	if handler, found := e.byCode[code]; found {
		handler(request, response)
	} else if e.universal != nil {
		e.universal(request, response)
	}
}

func notFoundHandler(_ *http.Request, response *http.Response) {
	response.
		Code(status.NotFound).
		String(NotFoundBody)
}
