package middleware

import (
	"bytes"
	"testing"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/router/inbuilt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func getRequest(m method.Method, path string) *http.Request {
	request := http.NewRequest()
	request.Method = m
	request.Path = path

	return request
}

func TestLogRequests(t *testing.T) {
	var out bytes.Buffer
	r := inbuilt.New().
		Use(LogRequests(zerolog.New(&out))).
		Get("/foo/:id", func(_ *http.Request, response *http.Response) {
			response.Code(status.Accepted)
		})
	require.NoError(t, r.OnStart())

	response := http.NewResponse()
	require.NoError(t, r.OnRequest(getRequest(method.GET, "/foo/3"), response))
	require.Equal(t, status.Accepted, response.Reveal().Code)

	line := out.String()
	require.Contains(t, line, `"method":"GET"`)
	require.Contains(t, line, `"path":"/foo/3"`)
	require.Contains(t, line, `"code":202`)
	require.Contains(t, line, `"message":"request served"`)
}

func TestRecover(t *testing.T) {
	var out bytes.Buffer
	r := inbuilt.New().
		Use(Recover(zerolog.New(&out))).
		Get("/", func(_ *http.Request, response *http.Response) {
			response.Code(status.Created).String("half-cooked")
			panic("oops")
		})
	require.NoError(t, r.OnStart())

	response := http.NewResponse()
	require.NotPanics(t, func() {
		require.NoError(t, r.OnRequest(getRequest(method.GET, "/"), response))
	})
	require.Equal(t, status.InternalServerError, response.Reveal().Code)
	require.Equal(t, "internal server error", string(response.Reveal().Body))
	require.Contains(t, out.String(), `"panic":"oops"`)
}
