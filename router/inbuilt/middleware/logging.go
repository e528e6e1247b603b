package middleware

import (
	"time"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/router/inbuilt"
	"github.com/rs/zerolog"
)

// LogRequests logs every request served by the wrapped handlers along with the resulting
// status code and the time the handler took.
func LogRequests(logger zerolog.Logger) inbuilt.Middleware {
	return func(next inbuilt.Handler, request *http.Request, response *http.Response) {
		start := time.Now()
		next(request, response)

		logger.Info().
			Str("method", request.Method.String()).
			Str("path", request.Path).
			Uint16("code", uint16(response.Reveal().Code)).
			Dur("took", time.Since(start)).
			Msg("request served")
	}
}
