package http

import (
	"errors"

	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/internal/response"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Response is filled by exactly one handler and serialized afterward. Its status code
// defaults to 200 OK and the body is empty.
type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK.
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code: status.OK,
		},
	}
}

// Code sets a Response code. Codes with no known reason phrase are still written, but
// with a generic one.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface by appending to the body. It always returns
// n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON serializes the model into the body and returns an error if failed.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	if err == nil {
		err = stream.Error
	}
	json.ConfigDefault.ReturnStream(stream)

	return r, err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error sets the response to represent the error. If passed err is nil, nothing will happen.
// If the error is (or wraps) status.HTTPError, its code is used. Custom codes can be passed,
// however only first will be used. By default, the code is status.InternalServerError.
// The error message becomes the body.
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	c := status.InternalServerError
	var httpErr status.HTTPError

	switch {
	case len(code) > 0:
		// peek the first, ignore the rest
		c = code[0]
	case errors.As(err, &httpErr):
		c = httpErr.Code
	}

	return r.
		Code(c).
		String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	*r.fields = r.fields.Clear()
	return r
}
