package middleware

import (
	"fmt"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/router/inbuilt"
	"github.com/rs/zerolog"
)

// Recover catches any panics and responds with 500 Internal Server Error instead. The response
// is cleared first, so a half-cooked one is never sent.
func Recover(logger zerolog.Logger) inbuilt.Middleware {
	return func(next inbuilt.Handler, request *http.Request, response *http.Response) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("method", request.Method.String()).
					Str("path", request.Path).
					Str("panic", fmt.Sprint(r)).
					Msg("handler panicked")

				response.Clear().Error(status.ErrInternalServerError)
			}
		}()

		next(request, response)
	}
}
