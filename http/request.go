package http

import (
	"net"

	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Params  = *kv.Storage
)

// Request represents HTTP request. It's constructed once per connection by the parser and
// must be treated as read-only by handlers.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the raw request-target as it was received. Neither decoding nor query
	// splitting are done.
	Path string
	// Protocol is the protocol version token, e.g. HTTP/1.1. Its format isn't validated.
	Protocol string
	// Headers holds header pairs exactly as they were received. Lookup is case-sensitive and
	// only the last occurrence of each name is kept.
	Headers Headers
	// Params are the dynamic routing segments captured by the matched route.
	Params Params
	// Body is everything after the headers block, with NUL padding stripped.
	Body string
	// Remote holds the remote address, if the transport knows it.
	Remote net.Addr
}

func NewRequest() *Request {
	return &Request{
		Headers: kv.New(),
		Params:  kv.New(),
	}
}
