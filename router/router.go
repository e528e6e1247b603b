package router

import "github.com/florence-web/florence/http"

// Router is what the connection handler dispatches requests to.
type Router interface {
	// OnStart is called once before the server starts accepting connections.
	OnStart() error
	// OnRequest fills the response for the request. If no route matches, the response is
	// left untouched and status.ErrNotFound is returned.
	OnRequest(request *http.Request, response *http.Response) error
	// OnError fills the response representing the error. The request is never nil, but is
	// empty if the error happened before it was parsed.
	OnError(request *http.Request, response *http.Response, err error)
}
