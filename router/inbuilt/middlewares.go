package inbuilt

import "github.com/florence-web/florence/http"

// Use adds middlewares to every route registered via this router (or its groups created
// after the call), including the ones already registered. Middlewares are called in order
// of their registration, so the first one is the outermost.
func (r *Router) Use(middlewares ...Middleware) *Router {
	for _, route := range r.own {
		route.middlewares = append(route.middlewares, middlewares...)
		route.fun = compose(route.handler, route.middlewares)
	}

	r.middlewares = append(r.middlewares, middlewares...)

	return r
}

// compose makes a single Handler out of a chain of middlewares and the handler in the end.
func compose(handler Handler, middlewares []Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = wrap(handler, middlewares[i])
	}

	return handler
}

func wrap(next Handler, mw Middleware) Handler {
	return func(request *http.Request, response *http.Response) {
		mw(next, request, response)
	}
}
