package rgba

import (
	"fmt"
	"image/color"
)

// Channel selects one of the four color channels. The numeric value of a
// Channel is its byte position inside the packed Color, so indexing by
// channel and indexing by raw byte position always agree.
type Channel int

const (
	ChanBlue  Channel = 0
	ChanGreen Channel = 1
	ChanRed   Channel = 2
	ChanAlpha Channel = 3
)

// Color is a packed 32-bit RGBA value laid out as
// (alpha<<24)|(red<<16)|(green<<8)|blue. Equality and ordering are defined
// on the packed integer. Color is a plain value: copy freely, never shared.
type Color uint32

const (
	Black = Color(0xFF000000)
	White = Color(0xFFFFFFFF)

	Gray     = Color(0xFFAAAAAA)
	DarkGray = Color(0xFF373737)

	// Primary additive colors.
	Red   = Color(0xFFFF0000)
	Green = Color(0xFF00FF00)
	Blue  = Color(0xFF0000FF)

	// Primary subtractive colors.
	Magenta = Color(0xFFFF00FF)
	Cyan    = Color(0xFF00FFFF)
	Yellow  = Color(0xFFFFFF00)
)

// New packs four 8-bit channels into a Color.
func New(red, green, blue, alpha uint8) Color {
	return Color(uint32(alpha)<<24 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue))
}

// NewOpaque packs three 8-bit channels with alpha fixed at 255.
func NewOpaque(red, green, blue uint8) Color {
	return New(red, green, blue, 0xFF)
}

// FromUint32 reinterprets a packed 32-bit value as a Color. Bit-preserving;
// Uint32 is its exact inverse.
func FromUint32(v uint32) Color {
	return Color(v)
}

// Uint32 returns the packed 32-bit form, the encoding handed to the
// presentation layer.
func (c Color) Uint32() uint32 {
	return uint32(c)
}

// At reads the channel at byte position ch (0..3). Panics on any other
// position.
func (c Color) At(ch Channel) uint8 {
	if ch < ChanBlue || ch > ChanAlpha {
		panic(fmt.Sprintf("rgba: channel index out of range: %d", ch))
	}
	return uint8(c >> (8 * ch))
}

// Set overwrites the channel at byte position ch (0..3). Panics on any
// other position.
func (c *Color) Set(ch Channel, v uint8) {
	if ch < ChanBlue || ch > ChanAlpha {
		panic(fmt.Sprintf("rgba: channel index out of range: %d", ch))
	}
	shift := 8 * ch
	*c = *c&^(0xFF<<shift) | Color(v)<<shift
}

// Blend linearly interpolates each of the red, green and blue channels
// between c and other: proportion 0 keeps c's channel, 255 lands within
// one step of other's (fixed-point rounding). The alpha channel is copied
// from c untouched; this is an appearance blend, not alpha compositing.
func (c Color) Blend(other Color, proportion uint8) Color {
	out := c
	for _, ch := range []Channel{ChanRed, ChanBlue, ChanGreen} {
		out.Set(ch, blendChannel(c.At(ch), other.At(ch), proportion))
	}
	return out
}

// blendChannel computes (b*t + a*(255-t) + 1) >> 8 in uint16 fixed point,
// keeping the result in a byte without floating point.
func blendChannel(a, b, t uint8) uint8 {
	aw, bw, tw := uint16(a), uint16(b), uint16(t)
	return uint8((bw*tw + aw*(255-tw) + 1) >> 8)
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.At(ChanRed), c.At(ChanGreen), c.At(ChanBlue), c.At(ChanAlpha))
}

// RGBA implements image/color.Color, reporting alpha-premultiplied 16-bit
// channels like color.NRGBA does.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.At(ChanAlpha))
	r = uint32(c.At(ChanRed)) * 0x101 * a / 0xFF
	g = uint32(c.At(ChanGreen)) * 0x101 * a / 0xFF
	b = uint32(c.At(ChanBlue)) * 0x101 * a / 0xFF
	a *= 0x101
	return
}

// Model converts any image/color.Color into a packed Color.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(nc.R, nc.G, nc.B, nc.A)
}
