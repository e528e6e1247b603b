package inbuilt

import (
	"fmt"

	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/router/inbuilt/internal/pattern"
)

// AllErrors is used to be passed into Router.RouteError, indicating by that,
// that the handler must handle ALL errors (if concrete error's handler won't
// override it)
const AllErrors = status.Code(0)

// Route is a base method for registering handlers. Routes are never deduplicated nor
// reordered, so registering an overlapping pattern twice leaves the second one unreachable.
// Invalid patterns result in panicking.
func (r *Router) Route(
	m method.Method, path string, handler Handler,
	middlewares ...Middleware,
) *Router {
	if m == method.Unknown || m > method.Count {
		panic(fmt.Errorf("route %s: unsupported method", path))
	}

	path = r.prefix + path
	compiled, err := pattern.Parse(path)
	if err != nil {
		panic(fmt.Errorf("route %s %s: %w", m, path, err))
	}

	route := &Route{
		Method:      m,
		Pattern:     path,
		pattern:     compiled,
		handler:     handler,
		middlewares: append(append([]Middleware(nil), r.middlewares...), middlewares...),
	}
	route.fun = compose(route.handler, route.middlewares)

	r.own = append(r.own, route)
	r.root.routes = append(r.root.routes, route)

	return r
}

// RouteError adds an error handler for a corresponding HTTP error code. The codes the
// server produces on its own are:
// - status.BadRequest
// - status.NotFound
// - status.InternalServerError
//
// You can set your own handler and override default response. The error is passed
// into the handler in the response body, as the default handler would do.
// If the request couldn't be parsed, the handler gets an empty request: unknown method,
// empty path and no headers. A panicking error handler results in 500 Internal Server Error.
//
// WARNING: calling this method from groups will affect ALL routers, including root
func (r *Router) RouteError(handler Handler, codes ...status.Code) *Router {
	for _, code := range codes {
		if code == AllErrors {
			r.root.errHandlers.SetUniversal(handler)
			continue
		}

		r.root.errHandlers.Set(code, handler)
	}

	return r
}
