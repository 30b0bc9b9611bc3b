package rgba

import "fmt"

// InvalidHexDigitError reports a consumed two-character pair that contains
// a character outside 0-9/A-F.
type InvalidHexDigitError struct {
	Pair string
}

func (e *InvalidHexDigitError) Error() string {
	return fmt.Sprintf("invalid hex color pair %q: valid characters are 0-9 and A-F", e.Pair)
}

// InsufficientLengthError reports an input that ran out before the six
// mandatory red, green and blue characters were consumed. Len counts the
// characters that were available.
type InsufficientLengthError struct {
	Len int
}

func (e *InsufficientLengthError) Error() string {
	return fmt.Sprintf("insufficient hex color length %d: need 6 or 8 characters", e.Len)
}

// Parse decodes a color from 6 or 8 hex characters, byte pairs in red,
// green, blue, alpha order, case-insensitive, no prefix. With only 6
// characters the alpha pair is omitted and defaults to fully opaque. The
// input is consumed left to right in two-character steps; a malformed or
// missing alpha pair degrades to opaque rather than failing.
func Parse(s string) (Color, error) {
	var out [4]uint8
	for i := range out {
		lo := 2 * i
		if lo+2 <= len(s) {
			v, ok := hexByte(s[lo], s[lo+1])
			switch {
			case ok:
				out[i] = v
			case i != 3:
				return 0, &InvalidHexDigitError{Pair: s[lo : lo+2]}
			default:
				out[3] = 0xFF
			}
		} else if i != 3 {
			n := lo
			if lo < len(s) {
				n++
			}
			return 0, &InsufficientLengthError{Len: n}
		} else {
			out[3] = 0xFF
		}
	}

	return New(out[0], out[1], out[2], out[3]), nil
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
