package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/florence-web/florence/kv"
)

var (
	ErrEmptyPattern   = errors.New("route pattern cannot be empty")
	ErrEmptyParamName = errors.New("route parameter must have a name")
	ErrDuplicateParam = errors.New("route parameter is declared more than once")
)

// WildcardParam is the name the suffix absorbed by a trailing wildcard is bound to.
const WildcardParam = "*"

const (
	separator      = "/"
	paramPrefix    = ':'
	wildcardMarker = "*"
)

type kind uint8

const (
	literal kind = iota
	param
	wildcard
)

type segment struct {
	kind kind
	// value is the literal text for literal segments and the name for parameters
	value string
}

// Pattern is a compiled route pattern. It consists of /-delimited segments, each of which is
// either:
//   - :name, matching any single non-empty segment and binding it to the name,
//   - *, matching exactly one non-empty segment; being the last segment, it matches the whole
//     non-empty remainder of the path instead, which is bound to WildcardParam,
//   - anything else (including *blah), matching literally and case-sensitively.
type Pattern struct {
	raw      string
	segments []segment
	// trailing wildcard absorbs the rest of the path
	tail bool
}

func Parse(raw string) (Pattern, error) {
	if len(raw) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	parts := strings.Split(raw, separator)
	p := Pattern{
		raw:      raw,
		segments: make([]segment, len(parts)),
	}
	names := make(map[string]struct{})

	for i, part := range parts {
		switch {
		case part == wildcardMarker:
			p.segments[i] = segment{kind: wildcard}
		case len(part) > 0 && part[0] == paramPrefix:
			name := part[1:]
			if len(name) == 0 {
				return Pattern{}, fmt.Errorf("%w: %s", ErrEmptyParamName, raw)
			}

			if _, seen := names[name]; seen {
				return Pattern{}, fmt.Errorf("%w: %s in %s", ErrDuplicateParam, name, raw)
			}

			names[name] = struct{}{}
			p.segments[i] = segment{kind: param, value: name}
		default:
			p.segments[i] = segment{kind: literal, value: part}
		}
	}

	p.tail = p.segments[len(p.segments)-1].kind == wildcard

	return p, nil
}

func MustParse(raw string) Pattern {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// Static reports whether the pattern consists of literal segments only.
func (p Pattern) Static() bool {
	for _, seg := range p.segments {
		if seg.kind != literal {
			return false
		}
	}

	return true
}

func (p Pattern) String() string {
	return p.raw
}

// Match reports whether the path satisfies the pattern. Captured parameters are written into
// params (if not nil) only in case of success, so a failed attempt leaves it untouched.
func (p Pattern) Match(path string, params *kv.Storage) bool {
	parts := strings.Split(path, separator)
	fixed := len(p.segments)

	if p.tail {
		fixed--
		if len(parts) <= fixed {
			return false
		}
	} else if len(parts) != fixed {
		return false
	}

	for i, seg := range p.segments[:fixed] {
		switch seg.kind {
		case literal:
			if parts[i] != seg.value {
				return false
			}
		case param, wildcard:
			if len(parts[i]) == 0 {
				return false
			}
		}
	}

	var rest string
	if p.tail {
		rest = strings.Join(parts[fixed:], separator)
		if len(rest) == 0 {
			return false
		}
	}

	if params == nil {
		return true
	}

	for i, seg := range p.segments[:fixed] {
		if seg.kind == param {
			params.Set(seg.value, parts[i])
		}
	}

	if p.tail {
		params.Set(WildcardParam, rest)
	}

	return true
}
