package inbuilt

import (
	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/kv"
	"github.com/florence-web/florence/router/inbuilt/internal/pattern"
)

// WildcardParam is the name of the param holding the path suffix absorbed by a trailing *.
const WildcardParam = pattern.WildcardParam

type (
	// Handler fills the response. It must not retain neither the request nor the response
	// after returning.
	Handler func(request *http.Request, response *http.Response)
	// Middleware wraps a handler. Calling next is up to the middleware.
	Middleware func(next Handler, request *http.Request, response *http.Response)
)

// Route is a registered binding of a method and a pattern to a handler. Routes are immutable
// once the router is started.
type Route struct {
	Method      method.Method
	Pattern     string
	pattern     pattern.Pattern
	handler     Handler
	middlewares []Middleware
	fun         Handler
}

// RouteMatch is the outcome of successfully matching a request against a route.
type RouteMatch struct {
	Route  *Route
	Params *kv.Storage
}

func (r *Route) match(request *http.Request, params *kv.Storage) bool {
	return request.Method == r.Method && r.pattern.Match(request.Path, params)
}
