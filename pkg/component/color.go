package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/richtext/pkg/errors"
)

// TextColor is a 24-bit RGB color.
type TextColor struct {
	rgb uint32
}

// RGB creates a color from a 0xRRGGBB value. Higher bits are dropped.
func RGB(rgb uint32) TextColor {
	return TextColor{rgb: rgb & 0xFFFFFF}
}

// The sixteen named colors.
var (
	Black       = RGB(0x000000)
	DarkBlue    = RGB(0x0000AA)
	DarkGreen   = RGB(0x00AA00)
	DarkAqua    = RGB(0x00AAAA)
	DarkRed     = RGB(0xAA0000)
	DarkPurple  = RGB(0xAA00AA)
	Gold        = RGB(0xFFAA00)
	Gray        = RGB(0xAAAAAA)
	DarkGray    = RGB(0x555555)
	Blue        = RGB(0x5555FF)
	Green       = RGB(0x55FF55)
	Aqua        = RGB(0x55FFFF)
	Red         = RGB(0xFF5555)
	LightPurple = RGB(0xFF55FF)
	Yellow      = RGB(0xFFFF55)
	White       = RGB(0xFFFFFF)
)

var namedColors = []struct {
	name  string
	color TextColor
}{
	{"black", Black},
	{"dark_blue", DarkBlue},
	{"dark_green", DarkGreen},
	{"dark_aqua", DarkAqua},
	{"dark_red", DarkRed},
	{"dark_purple", DarkPurple},
	{"gold", Gold},
	{"gray", Gray},
	{"dark_gray", DarkGray},
	{"blue", Blue},
	{"green", Green},
	{"aqua", Aqua},
	{"red", Red},
	{"light_purple", LightPurple},
	{"yellow", Yellow},
	{"white", White},
}

// ParseColor accepts a named color ("gold") or a hex string ("#FFAA00").
func ParseColor(s string) (TextColor, error) {
	if s == "" {
		return TextColor{}, errors.NewInputParseError("color", s, "empty color")
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return TextColor{}, errors.NewInputParseError("color", s, "hex colors must be #RRGGBB")
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return TextColor{}, errors.NewInputParseError("color", s, "invalid hex digits")
		}
		return RGB(uint32(v)), nil
	}
	name := strings.ToLower(s)
	for _, nc := range namedColors {
		if nc.name == name {
			return nc.color, nil
		}
	}
	return TextColor{}, errors.NewNotFoundError("color", s)
}

// Value returns the 0xRRGGBB value.
func (c TextColor) Value() uint32 { return c.rgb }

// Name returns the named color matching c exactly, if any.
func (c TextColor) Name() (string, bool) {
	for _, nc := range namedColors {
		if nc.color == c {
			return nc.name, true
		}
	}
	return "", false
}

// Hex returns "#rrggbb".
func (c TextColor) Hex() string {
	return fmt.Sprintf("#%06x", c.rgb)
}

// String returns the color's name when it has one, otherwise its hex form.
func (c TextColor) String() string {
	if name, ok := c.Name(); ok {
		return name
	}
	return c.Hex()
}

// ApplyTo sets the color on a style builder.
func (c TextColor) ApplyTo(b *StyleBuilder) {
	b.Color(c)
}
