package status

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringCode(t *testing.T) {
	for _, code := range KnownCodes {
		require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
	}

	require.Equal(t, "599", StringCode(599))
}

func TestText(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		text, ok := Text(OK)
		require.True(t, ok)
		require.Equal(t, Status("OK"), text)

		text, ok = Text(NotFound)
		require.True(t, ok)
		require.Equal(t, Status("Not Found"), text)
	})

	t.Run("every known code has a phrase", func(t *testing.T) {
		require.True(t, slices.IsSorted(KnownCodes))

		for _, code := range KnownCodes {
			text, ok := Text(code)
			require.True(t, ok)
			require.NotEmpty(t, text)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, code := range []Code{0, 99, 306, 299, 600, 999} {
			text, ok := Text(code)
			require.False(t, ok)
			require.Equal(t, Unknown, text)
		}
	})
}

func TestHTTPError(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrMalformedHeader, "BadHeaderLine")
	require.True(t, errors.Is(err, ErrMalformedHeader))
	require.False(t, errors.Is(err, ErrMalformedStartLine))

	var httpErr HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, BadRequest, httpErr.Code)
	require.Equal(t, `invalid header: "BadHeaderLine"`, err.Error())
}

func BenchmarkStringCode(b *testing.B) {
	code := KnownCodes[rand.IntN(len(KnownCodes))]
	b.ResetTimer()

	for range b.N {
		_ = StringCode(code)
	}
}
