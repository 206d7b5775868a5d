package router

import (
	"fmt"
	"strings"
)

// segmentKind classifies a single pattern segment.
type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
	segWildcard
)

// segment is one path-segment matcher. For literals, value holds the exact
// text to match; for params and wildcards it holds the binding name.
type segment struct {
	value string
	kind  segmentKind
}

// parsePattern splits a route pattern into segment matchers.
//
// Pattern syntax:
//   - a plain segment matches exactly that text
//   - <name> matches exactly one non-empty segment and binds it under name
//   - <name...> matches the remaining suffix (zero or more segments, joined
//     with "/") and is only valid as the final segment
//
// Parse failures are reported here, at registration time; matching a parsed
// pattern never errors.
func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	raw := strings.Split(pattern[1:], "/")
	segments := make([]segment, 0, len(raw))
	var seen map[string]struct{}

	for i, s := range raw {
		switch {
		case len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>':
			name := s[1 : len(s)-1]
			kind := segParam
			if strings.HasSuffix(name, "...") {
				name = name[:len(name)-3]
				kind = segWildcard
			}
			if name == "" {
				return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, pattern)
			}
			if kind == segWildcard && i != len(raw)-1 {
				return nil, fmt.Errorf("%w: %q", ErrWildcardPosition, pattern)
			}
			if seen == nil {
				seen = make(map[string]struct{})
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
			}
			seen[name] = struct{}{}
			segments = append(segments, segment{value: name, kind: kind})
		case strings.ContainsAny(s, "<>"):
			return nil, fmt.Errorf("%w: malformed segment %q in %q", ErrInvalidPattern, s, pattern)
		default:
			segments = append(segments, segment{value: s, kind: segLiteral})
		}
	}

	return segments, nil
}

// matchSegments tests parsed segments against the already-split request path.
// parts is the path split on "/" with the leading slash removed, so "/a/b"
// arrives as ["a", "b"] and "/" as [""].
//
// A param binds exactly one non-empty segment. A wildcard binds the raw
// remaining suffix including separators, which may be empty. A mismatch is
// not an error, just a non-match.
func matchSegments(segments []segment, parts []string) (map[string]string, bool) {
	last := len(segments) - 1
	wildcard := last >= 0 && segments[last].kind == segWildcard

	if wildcard {
		if len(parts) < last {
			return nil, false
		}
	} else if len(parts) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range segments {
		switch seg.kind {
		case segWildcard:
			rest := ""
			if i < len(parts) {
				rest = strings.Join(parts[i:], "/")
			}
			params = bindParam(params, seg.value, rest)
		case segParam:
			if parts[i] == "" {
				return nil, false
			}
			params = bindParam(params, seg.value, parts[i])
		default:
			if parts[i] != seg.value {
				return nil, false
			}
		}
	}

	return params, true
}

func bindParam(params map[string]string, key, value string) map[string]string {
	if params == nil {
		params = make(map[string]string, 2)
	}
	params[key] = value
	return params
}
