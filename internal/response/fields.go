package response

import "github.com/florence-web/florence/http/status"

// Fields is everything a handler is able to affect in the outgoing bytes.
type Fields struct {
	Body []byte
	Code status.Code
}

func (f Fields) Clear() Fields {
	f.Code = status.OK
	f.Body = nil

	return f
}
