package http1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/http/status"
	"github.com/stretchr/testify/require"
)

func BenchmarkParser(b *testing.B) {
	for _, n := range []int{5, 10, 50} {
		b.Run(fmt.Sprintf("with %d headers", n), func(b *testing.B) {
			data := generateRequest(strings.Repeat("a", 500), generateHeaders(n))
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Parse(data)
			}
		})
	}
}

func TestStartLine(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, m := range method.List {
			for _, uri := range []string{"/", "/foo/3", "/foo/*blah", "*", "http://example.com/x?y=z"} {
				for _, version := range []string{"HTTP/1.1", "HTTP/1.0", "whatever"} {
					line, err := ParseStartLine(m.String() + " " + uri + " " + version)
					require.NoError(t, err)
					require.Equal(t, StartLine{Method: m.String(), URI: uri, Version: version}, line)
				}
			}
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, line := range []string{
			"",
			"GET",
			"GET /",
			"GET / HTTP/1.1 extra",
			"GET  HTTP/1.1",
			" / HTTP/1.1",
			"GET / ",
		} {
			_, err := ParseStartLine(line)
			require.ErrorIs(t, err, status.ErrMalformedStartLine, line)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("headers and body", func(t *testing.T) {
		request, err := Parse([]byte("GET / HTTP/1.1\r\nHost: x\r\nX-Foo: bar\r\n\r\nBODY"))
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, "HTTP/1.1", request.Protocol)
		require.Equal(t, map[string]string{"Host": "x", "X-Foo": "bar"}, request.Headers.Map())
		require.Equal(t, "BODY", request.Body)
		require.True(t, request.Params.Empty())
	})

	t.Run("no headers", func(t *testing.T) {
		request, err := Parse([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.True(t, request.Headers.Empty())
		require.Empty(t, request.Body)
	})

	t.Run("multiline body", func(t *testing.T) {
		request, err := Parse([]byte("POST /submit HTTP/1.1\r\nContent-Length: 12\r\n\r\nline1\r\nline2"))
		require.NoError(t, err)
		require.Equal(t, method.POST, request.Method)
		require.Equal(t, "line1\r\nline2", request.Body)
	})

	t.Run("NUL padding", func(t *testing.T) {
		buff := make([]byte, 1024)
		copy(buff, "GET / HTTP/1.1\r\n")
		request, err := Parse(buff)
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", request.Protocol)
		require.True(t, request.Headers.Empty())
		require.Empty(t, request.Body)

		buff = make([]byte, 1024)
		copy(buff, "PUT /x HTTP/1.1\r\nHost: x\r\n\r\n\x00\x00payload")
		request, err = Parse(buff)
		require.NoError(t, err)
		require.Equal(t, "payload", request.Body)
	})

	t.Run("truncated headers", func(t *testing.T) {
		request, err := Parse([]byte("GET /foo HTTP/1.1\r\nHost: x"))
		require.NoError(t, err)
		require.Equal(t, "x", request.Headers.Value("Host"))
		require.Empty(t, request.Body)
	})

	t.Run("lowercase method", func(t *testing.T) {
		request, err := Parse([]byte("delete /foo HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, method.DELETE, request.Method)
	})

	t.Run("repeated header keeps the last", func(t *testing.T) {
		request, err := Parse([]byte("GET / HTTP/1.1\r\nAccept: a\r\naccept: b\r\nAccept: c\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, 2, request.Headers.Len())
		require.Equal(t, "c", request.Headers.Value("Accept"))
		require.Equal(t, "b", request.Headers.Value("accept"))
	})

	t.Run("empty header value", func(t *testing.T) {
		request, err := Parse([]byte("GET / HTTP/1.1\r\nX-Empty: \r\n\r\n"))
		require.NoError(t, err)
		value, found := request.Headers.Get("X-Empty")
		require.True(t, found)
		require.Empty(t, value)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		request, err := Parse([]byte("GET /\xff\xfe HTTP/1.1\r\nX-Name: \xc3\x28\r\n\r\nbody\xff"))
		require.NoError(t, err)
		require.Equal(t, "/�", request.Path)
		require.Equal(t, "�(", request.Headers.Value("X-Name"))
		require.Equal(t, "body�", request.Body)
	})

	t.Run("random headers", func(t *testing.T) {
		headers := generateHeaders(20)
		request, err := Parse(generateRequest("/", headers))
		require.NoError(t, err)
		require.Equal(t, len(headers), request.Headers.Len())

		for _, header := range headers {
			key, value, _ := strings.Cut(header, ": ")
			require.Equal(t, value, request.Headers.Value(key))
		}
	})

	t.Run("the buffer may be reused", func(t *testing.T) {
		buff := []byte("GET /foo HTTP/1.1\r\nHost: x\r\n\r\n")
		request, err := Parse(buff)
		require.NoError(t, err)
		copy(buff, strings.Repeat("z", len(buff)))
		require.Equal(t, "/foo", request.Path)
		require.Equal(t, "x", request.Headers.Value("Host"))
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed header", func(t *testing.T) {
		for _, line := range []string{"BadHeaderLine", "Host:x", "A: b: c"} {
			_, err := Parse([]byte("GET / HTTP/1.1\r\n" + line + "\r\n\r\n"))
			require.ErrorIs(t, err, status.ErrMalformedHeader, line)
			require.Contains(t, err.Error(), line)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := Parse([]byte("BREW /pot HTTP/1.1\r\n\r\n"))
		require.ErrorIs(t, err, status.ErrUnknownMethod)
		require.Contains(t, err.Error(), "BREW")
	})

	t.Run("malformed start line", func(t *testing.T) {
		for _, data := range []string{"", "\x00\x00\x00", "GET\r\n\r\n", "GET /\r\nHost: x\r\n\r\n"} {
			_, err := Parse([]byte(data))
			require.ErrorIs(t, err, status.ErrMalformedStartLine, data)
		}
	})
}

func generateHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("%s-%d: %s", uniuri.NewLen(16), i, uniuri.NewLen(16))
	}

	return headers
}

func generateRequest(uri string, headers []string) []byte {
	request := "GET " + uri + " HTTP/1.1\r\n"
	for _, header := range headers {
		request += header + "\r\n"
	}

	return []byte(request + "\r\n")
}
