package rgba

import (
	"errors"
	"fmt"
	"testing"
)

// TestParseSixChars verifies the short form: alpha is omitted and defaults
// to fully opaque.
func TestParseSixChars(t *testing.T) {
	got, err := Parse("AA0055")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := New(0xAA, 0x00, 0x55, 0xFF); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestParseEightChars verifies the long form and that the packed result
// matches direct construction from the four byte values.
func TestParseEightChars(t *testing.T) {
	got, err := Parse("01abCD7f")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := New(0x01, 0xAB, 0xCD, 0x7F)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Uint32() != want.Uint32() {
		t.Errorf("packed form: got %#08x, want %#08x", got.Uint32(), want.Uint32())
	}
}

// TestParseRoundTrip formats opaque colors as six hex chars and parses
// them back.
func TestParseRoundTrip(t *testing.T) {
	samples := []uint8{0, 1, 16, 127, 128, 200, 255}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				c := NewOpaque(r, g, b)
				s := fmt.Sprintf("%02X%02X%02X", r, g, b)
				got, err := Parse(s)
				if err != nil {
					t.Fatalf("Parse(%q): %v", s, err)
				}
				if got != c {
					t.Fatalf("Parse(%q): got %v, want %v", s, got, c)
				}
			}
		}
	}
}

// TestParseInsufficientLength verifies inputs shorter than the six
// mandatory characters fail and report the available character count.
func TestParseInsufficientLength(t *testing.T) {
	cases := []struct {
		in  string
		len int
	}{
		{"", 0},
		{"A", 1},
		{"AB", 2},
		{"ABC", 3},
		{"ABCD", 4},
		{"12345", 5},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var lenErr *InsufficientLengthError
		if !errors.As(err, &lenErr) {
			t.Errorf("Parse(%q): got %v, want InsufficientLengthError", tc.in, err)
			continue
		}
		if lenErr.Len != tc.len {
			t.Errorf("Parse(%q): reported length %d, want %d", tc.in, lenErr.Len, tc.len)
		}
	}
}

// TestParseInvalidDigit verifies a malformed mandatory pair fails and
// reports the offending pair.
func TestParseInvalidDigit(t *testing.T) {
	cases := []struct {
		in   string
		pair string
	}{
		{"GGRRBB", "GG"},
		{"00GG00", "GG"},
		{"0000 0", " 0"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var digitErr *InvalidHexDigitError
		if !errors.As(err, &digitErr) {
			t.Errorf("Parse(%q): got %v, want InvalidHexDigitError", tc.in, err)
			continue
		}
		if digitErr.Pair != tc.pair {
			t.Errorf("Parse(%q): reported pair %q, want %q", tc.in, digitErr.Pair, tc.pair)
		}
	}
}

// TestParseMalformedAlphaDegradesToOpaque verifies the one forgiving case:
// a present but invalid alpha pair falls back to 255 instead of failing.
func TestParseMalformedAlphaDegradesToOpaque(t *testing.T) {
	got, err := Parse("AABBCCZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := New(0xAA, 0xBB, 0xCC, 0xFF); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A dangling single alpha character behaves the same way.
	got, err = Parse("AABBCCD")
	if err != nil {
		t.Fatalf("Parse with 7 chars: %v", err)
	}
	if want := New(0xAA, 0xBB, 0xCC, 0xFF); got != want {
		t.Errorf("7 chars: got %v, want %v", got, want)
	}
}
