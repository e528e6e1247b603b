package http1

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/florence-web/florence/http"
	"github.com/florence-web/florence/http/method"
	"github.com/florence-web/florence/http/status"
)

const (
	crlf            = "\r\n"
	headerSeparator = ": "
	// fixed-size read buffers may leave the tail zeroed
	nul = "\x00"
)

// StartLine is the first line of a request, split but not validated.
type StartLine struct {
	Method, URI, Version string
}

// ParseStartLine splits the line (without the line terminator) on single spaces. Exactly three
// non-empty tokens are required, otherwise status.ErrMalformedStartLine is returned.
func ParseStartLine(line string) (StartLine, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 || tokens[0] == "" || tokens[1] == "" || tokens[2] == "" {
		return StartLine{}, fmt.Errorf("%w: %q", status.ErrMalformedStartLine, line)
	}

	return StartLine{
		Method:  tokens[0],
		URI:     tokens[1],
		Version: tokens[2],
	}, nil
}

// Parse builds a request out of the raw bytes read from a connection. Invalid UTF-8 sequences
// are substituted instead of failing the whole parse. The headers block ends either on the
// first blank line or when the lines are exhausted; everything after the blank line is the
// body. Header names repeated more than once keep the last value.
//
// The data is copied, so the read buffer may be reused right after the call.
func Parse(data []byte) (*http.Request, error) {
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	lines := strings.Split(text, crlf)

	startLine, err := ParseStartLine(strings.TrimRight(lines[0], nul))
	if err != nil {
		return nil, err
	}

	m := method.Parse(startLine.Method)
	if m == method.Unknown {
		return nil, fmt.Errorf("%w: %q", status.ErrUnknownMethod, startLine.Method)
	}

	request := http.NewRequest()
	request.Method = m
	request.Path = startLine.URI
	request.Protocol = startLine.Version

	end := headersEnd(lines)
	for _, line := range lines[1:end] {
		key, value, err := parseHeader(strings.TrimRight(line, nul))
		if err != nil {
			return nil, err
		}

		request.Headers.Set(key, value)
	}

	if end < len(lines) {
		request.Body = strings.Trim(strings.Join(lines[end+1:], crlf), nul)
	}

	return request, nil
}

// headersEnd returns the index of the first blank line after the start line or len(lines),
// if there is none.
func headersEnd(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if len(strings.Trim(lines[i], nul)) == 0 {
			return i
		}
	}

	return len(lines)
}

func parseHeader(line string) (key, value string, err error) {
	if strings.Count(line, headerSeparator) != 1 {
		return "", "", fmt.Errorf("%w: %q", status.ErrMalformedHeader, line)
	}

	key, value, _ = strings.Cut(line, headerSeparator)
	return key, value, nil
}
