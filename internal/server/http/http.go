package http

import (
	"errors"
	"fmt"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/internal/protocol/http1"
	"github.com/florence-web/florence/router"
	"github.com/florence-web/florence/transport"
	"github.com/rs/zerolog"
)

// Server serves exactly one request per connection. It isn't safe for concurrent use,
// as the serialization buffer is reused between connections.
type Server struct {
	router router.Router
	logger zerolog.Logger
	buff   []byte
	// onTransition is called on every state change. Used by tests only
	onTransition func(State)
}

func NewServer(r router.Router, logger zerolog.Logger) *Server {
	return &Server{
		router: r,
		logger: logger,
		buff:   make([]byte, 0, 512),
	}
}

// Serve walks the connection through all the states until it is closed. Errors never
// leave this method: parse failures, unmatched routes and panics in handlers (including
// the error handlers) are all turned into responses, and IO errors abandon the connection.
func (s *Server) Serve(client transport.Client) {
	s.transit(AwaitingRead)
	resp := http.NewResponse()
	req, err := s.read(client)

	switch {
	case err != nil:
		// error handlers always get a request, even if there's nothing to fill it with
		req = http.NewRequest()
		req.Remote = client.Remote()
		s.onError(req, resp, err)
	default:
		s.transit(Matching)
		req.Remote = client.Remote()

		if err = s.dispatch(req, resp); err != nil {
			// whatever the handlers managed to write before failing must not leak out
			resp.Clear()
			s.onError(req, resp, err)
		}
	}

	s.transit(Responding)
	s.respond(client, req, resp)
	_ = client.Close()
	s.transit(Closed)
}

func (s *Server) read(client transport.Client) (*http.Request, error) {
	data, err := client.Read()
	if err != nil {
		if len(data) == 0 {
			s.logger.Debug().Err(err).Msg("failed to read the request")
			return nil, fmt.Errorf("%w: %s", status.ErrConnectionRead, err)
		}

		s.logger.Debug().Err(err).Int("read", len(data)).Msg("read error, proceeding with partial data")
	}

	s.transit(Parsing)
	req, err := http1.Parse(data)
	if err != nil {
		s.logger.Debug().Err(err).Msg("malformed request")
	}

	return req, err
}

// dispatch passes the request to the router. The connection is considered Dispatched
// only if some route actually took the request.
func (s *Server) dispatch(req *http.Request, resp *http.Response) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic(req, r, "handler panicked")
			err = status.ErrInternalServerError
		}

		if !errors.Is(err, status.ErrNotFound) {
			s.transit(Dispatched)
		}
	}()

	err = s.router.OnRequest(req, resp)
	if errors.Is(err, status.ErrNotFound) {
		s.logger.Debug().Stringer("method", req.Method).Str("path", req.Path).Msg("no route matched")
	}

	return err
}

// onError lets the router fill the response for the error. If the error handler panics,
// the response falls back to a bare 500.
func (s *Server) onError(req *http.Request, resp *http.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic(req, r, "error handler panicked")
			resp.Clear().Error(status.ErrInternalServerError)
		}
	}()

	s.router.OnError(req, resp, err)
}

func (s *Server) logPanic(req *http.Request, r any, msg string) {
	s.logger.Error().
		Interface("panic", r).
		Stringer("method", req.Method).
		Str("path", req.Path).
		Msg(msg)
}

func (s *Server) respond(client transport.Client, req *http.Request, resp *http.Response) {
	var err error
	s.buff, err = http1.AppendResponse(s.buff[:0], resp.Reveal())
	if err != nil {
		s.logger.Warn().Err(err).Str("path", req.Path).Msg("response status code has no reason phrase")
	}

	if err = client.Write(s.buff); err == nil {
		err = client.Flush()
	}

	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to write the response")
	}
}

func (s *Server) transit(state State) {
	if s.onTransition != nil {
		s.onTransition(state)
	}
}
