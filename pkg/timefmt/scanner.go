package timefmt

import "strings"

// scanner consumes a string from its right end. All style parsers are
// built from its two primitives: require a literal suffix, or take a
// fixed-width run of digits validated against a closed range.
type scanner struct {
	rest string
}

// literal strips lit from the end of the remaining text. The empty
// literal always matches.
func (s *scanner) literal(lit string) bool {
	rest, ok := strings.CutSuffix(s.rest, lit)
	if ok {
		s.rest = rest
	}
	return ok
}

// field strips exactly width digit characters from the end and validates
// the value against [0, max].
func (s *scanner) field(width int, max int64) (int64, error) {
	if len(s.rest) < width {
		return 0, errNotNumeric
	}
	v, err := parseDigits(s.rest[len(s.rest)-width:])
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, errFieldRange
	}
	s.rest = s.rest[:len(s.rest)-width]
	return v, nil
}

// tail consumes all remaining text as a single variable-width digit field
// in [0, max]. It is used for the leftmost days field, which must be
// entirely numeric.
func (s *scanner) tail(max int64) (int64, error) {
	v, err := parseDigits(s.rest)
	if err != nil {
		return 0, err
	}
	s.rest = ""
	if v > max {
		return 0, errFieldRange
	}
	return v, nil
}

// parseDigits converts a run of ASCII digits. Signs, spaces and anything
// non-ASCII fail; a value past DecadeSeconds fails early so that
// arbitrarily long input cannot overflow.
func parseDigits(text string) (int64, error) {
	if text == "" {
		return 0, errNotNumeric
	}
	var v int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, errNotNumeric
		}
		v = v*10 + int64(c-'0')
		if v > DecadeSeconds {
			return 0, errFieldRange
		}
	}
	return v, nil
}
