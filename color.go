package gg3d

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB colour packed as 0xRRGGBB.
type Color uint32

// Named colours.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0xFF0000
	Green   Color = 0x00FF00
	Blue    Color = 0x0000FF
	Yellow  Color = 0xFFFF00
	Cyan    Color = 0x00FFFF
	Magenta Color = 0xFF00FF
)

// RGB creates a colour from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("%w: invalid hex colour %q", ErrInvalidShape, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex colour %q: %w", ErrInvalidShape, hex, err)
	}
	return Color(v), nil
}

// MustHex is like ParseHex but panics on malformed input. It is meant for
// package-level colour tables.
func MustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Channels returns the three channels in order.
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.R(), c.G(), c.B()}
}

// Add returns the channel-wise sum modulo 256.
func (c Color) Add(o Color) Color {
	return RGB(c.R()+o.R(), c.G()+o.G(), c.B()+o.B())
}

// RGBA implements color.Color. The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c Color) String() string {
	return c.Hex()
}
