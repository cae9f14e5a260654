package core

import "strings"

// Color is a bit-set over the three primaries.
// Secondary colors and white are the bitwise OR of their primaries, so merge
// arithmetic is plain bit arithmetic on the value.
type Color uint8

const (
	ColorNone    Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = ColorRed | ColorGreen
	ColorBlue    Color = 4
	ColorMagenta Color = ColorRed | ColorBlue
	ColorCyan    Color = ColorGreen | ColorBlue
	ColorWhite   Color = ColorRed | ColorGreen | ColorBlue
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorMagenta:
		return 'M'
	case ColorCyan:
		return 'C'
	case ColorWhite:
		return 'W'
	case ColorNone:
		return '.'
	default:
		return '?'
	}
}

// Valid reports whether c is one of the eight defined values.
func (c Color) Valid() bool {
	return c <= ColorWhite
}

// bits returns the number of primaries in c.
func (c Color) bits() int {
	n := 0
	for v := c & ColorWhite; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// IsPrimary reports whether exactly one primary bit is set.
func IsPrimary(c Color) bool {
	return c.Valid() && c.bits() == 1
}

// IsSecondary reports whether exactly two primary bits are set.
func IsSecondary(c Color) bool {
	return c.Valid() && c.bits() == 2
}

// Combine merges two colors. A result of ColorWhite means fully combined.
func Combine(a, b Color) Color {
	return a | b
}

// MissingPrimary reports whether primary is exactly the primary that
// secondary lacks to become white.
func MissingPrimary(secondary, primary Color) bool {
	return secondary&primary == 0 && secondary|primary == ColorWhite
}

// Primaries returns the three primary colors in bit order.
func Primaries() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue}
}

// AllColors returns every defined color including none and white.
func AllColors() []Color {
	return []Color{
		ColorNone, ColorRed, ColorGreen, ColorYellow,
		ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	}
}

// ParseColor converts a name or single-letter code to a Color.
// Returns ColorNone and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", ".", "":
		return ColorNone, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorNone, false
	}
}

// Size is the ordered block size.
type Size uint8

const (
	SizeNone Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// String returns the lowercase size name.
func (s Size) String() string {
	switch s {
	case SizeNone:
		return "none"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (s Size) Char() rune {
	switch s {
	case SizeSmall:
		return 's'
	case SizeMedium:
		return 'm'
	case SizeLarge:
		return 'l'
	default:
		return '.'
	}
}

// Promote returns the next size. Large has no successor and returns false.
func (s Size) Promote() (Size, bool) {
	if s >= SizeLarge {
		return s, false
	}
	return s + 1, true
}

// ParseSize converts a name or single-letter code to a Size.
func ParseSize(s string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", ".", "":
		return SizeNone, true
	case "small", "s":
		return SizeSmall, true
	case "medium", "m":
		return SizeMedium, true
	case "large", "l":
		return SizeLarge, true
	default:
		return SizeNone, false
	}
}
