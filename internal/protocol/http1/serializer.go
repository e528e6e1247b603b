package http1

import (
	"fmt"
	"strconv"

	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/internal/response"
)

const protocol = "HTTP/1.1 "

// AppendResponse serializes the response into the buffer:
//
//	HTTP/1.1 <code> <reason>\r\nContent-Length: <n>\r\n\r\n<body>
//
// No other headers are ever written. Content-Length is always computed from the body.
//
// Codes missing in the reason phrase table get status.Unknown as a phrase and codes which
// don't fit into three digits are replaced by 500 Internal Server Error. In both cases the
// response is still fully serialized, but the error wrapping status.ErrUnsupportedStatusCode
// is returned along with it, so the caller can report the gap.
func AppendResponse(buff []byte, resp *response.Fields) ([]byte, error) {
	var err error

	code := resp.Code
	if code < 100 || code > 999 {
		err = fmt.Errorf("%w: %d", status.ErrUnsupportedStatusCode, code)
		code = status.InternalServerError
	}

	text, known := status.Text(code)
	if !known {
		err = fmt.Errorf("%w: %d", status.ErrUnsupportedStatusCode, code)
	}

	buff = append(buff, protocol...)
	buff = append(buff, status.StringCode(code)...)
	buff = append(buff, ' ')
	buff = append(buff, text...)
	buff = append(buff, crlf...)
	buff = append(buff, "Content-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(resp.Body)), 10)
	buff = append(buff, crlf+crlf...)
	buff = append(buff, resp.Body...)

	return buff, err
}
