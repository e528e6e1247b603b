package inbuilt

import (
	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/kv"
	"github.com/florence-web/florence/router"
)

var _ router.Router = new(Router)

// Router is a built-in implementation of router.Router interface. Routes are kept in a single
// ordered table, shared by all the groups, and searched in registration order: the first
// matching route wins, no matter how specific other routes are.
type Router struct {
	root *Router

	prefix      string
	middlewares []Middleware
	// routes registered via this very router, used by Use
	own []*Route

	// the fields below are meaningful for the root only
	routes      []*Route
	errHandlers errorHandlers
}

// New constructs a new instance of inbuilt router
func New() *Router {
	r := &Router{
		errHandlers: newErrorHandlers(),
	}
	r.root = r

	return r
}

// OnStart composes middlewares. Routes mustn't be registered after it was called.
func (r *Router) OnStart() error {
	for _, route := range r.root.routes {
		route.fun = compose(route.handler, route.middlewares)
	}

	return nil
}

// Match returns the first route matching the request along with the captured params.
func (r *Router) Match(request *http.Request) (RouteMatch, bool) {
	params := kv.New()

	for _, route := range r.root.routes {
		if route.match(request, params) {
			return RouteMatch{
				Route:  route,
				Params: params,
			}, true
		}
	}

	return RouteMatch{}, false
}

// OnRequest dispatches the request to the first matching route. The captured params
// are available via request.Params
func (r *Router) OnRequest(request *http.Request, response *http.Response) error {
	match, found := r.Match(request)
	if !found {
		return status.ErrNotFound
	}

	request.Params = match.Params
	match.Route.fun(request, response)

	return nil
}

// OnError fills the response using the error handler registered for the error's code.
func (r *Router) OnError(request *http.Request, response *http.Response, err error) {
	r.root.errHandlers.Handle(request, response, err)
}

// Routes returns all the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.root.routes
}
