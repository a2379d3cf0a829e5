package termbox

import (
	"fmt"
	"strings"
)

// Color is one of the 8 base terminal colors
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Style is a text style applied to the foreground attribute word
type Style uint8

const (
	Normal Style = iota
	Bold
	Underline
	BoldUnderline
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var styleNames = [...]string{"normal", "bold", "underline", "bold_underline"}

// ConvertColor returns the attribute bits for a color
func ConvertColor(c Color) uint16 {
	switch c {
	case Black:
		return 0x00
	case Red:
		return 0x01
	case Green:
		return 0x02
	case Yellow:
		return 0x03
	case Blue:
		return 0x04
	case Magenta:
		return 0x05
	case Cyan:
		return 0x06
	case White:
		return 0x07
	}
	return 0x00
}

// ConvertStyle returns the attribute bits for a style
func ConvertStyle(sty Style) uint16 {
	switch sty {
	case Normal:
		return 0x00
	case Bold:
		return 0x10
	case Underline:
		return 0x20
	case BoldUnderline:
		return 0x30
	}
	return 0x00
}

// Attribute packs a style and color into a foreground attribute word
func Attribute(sty Style, c Color) uint16 {
	return ConvertColor(c) | ConvertStyle(sty)
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

func (sty Style) String() string {
	if int(sty) < len(styleNames) {
		return styleNames[sty]
	}
	return fmt.Sprintf("Style(%d)", uint8(sty))
}

// ParseColor resolves a color name, case-insensitive
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// ParseStyle resolves a style name, case-insensitive; "-" and " " separate words
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_", "+", "_").Replace(n)
	for i, sn := range styleNames {
		if sn == n {
			return Style(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown style %q", name)
}
