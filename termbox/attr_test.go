package termbox

import (
	"testing"
)

func TestConvertColor(t *testing.T) {
	want := map[Color]uint16{
		Black:   0x00,
		Red:     0x01,
		Green:   0x02,
		Yellow:  0x03,
		Blue:    0x04,
		Magenta: 0x05,
		Cyan:    0x06,
		White:   0x07,
	}
	for c, bits := range want {
		if got := ConvertColor(c); got != bits {
			t.Errorf("ConvertColor(%v) = %#02x, want %#02x", c, got, bits)
		}
		// Pure: repeated calls agree
		if ConvertColor(c) != ConvertColor(c) {
			t.Errorf("ConvertColor(%v) not stable", c)
		}
	}
}

func TestConvertStyle(t *testing.T) {
	want := map[Style]uint16{
		Normal:        0x00,
		Bold:          0x10,
		Underline:     0x20,
		BoldUnderline: 0x30,
	}
	for s, bits := range want {
		if got := ConvertStyle(s); got != bits {
			t.Errorf("ConvertStyle(%v) = %#02x, want %#02x", s, got, bits)
		}
	}
	if ConvertStyle(BoldUnderline) != ConvertStyle(Bold)|ConvertStyle(Underline) {
		t.Error("BoldUnderline should be the union of Bold and Underline")
	}
}

func TestAttribute(t *testing.T) {
	if got := Attribute(Bold, White); got != 0x17 {
		t.Errorf("Attribute(Bold, White) = %#x, want 0x17", got)
	}
	if got := Attribute(Underline, Red); got != 0x21 {
		t.Errorf("Attribute(Underline, Red) = %#x, want 0x21", got)
	}
	// Style bits never overlap color bits
	for c := Black; c <= White; c++ {
		for s := Normal; s <= BoldUnderline; s++ {
			if ConvertColor(c)&ConvertStyle(s) != 0 {
				t.Errorf("color %v overlaps style %v", c, s)
			}
		}
	}
}

func TestParseColor(t *testing.T) {
	for c := Black; c <= White; c++ {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := ParseColor("  MAGENTA "); err != nil || got != Magenta {
		t.Errorf("ParseColor mixed case = %v, %v", got, err)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Error("ParseColor(orange) should fail")
	}
	if s := Color(12).String(); s != "Color(12)" {
		t.Errorf("out of range color String = %q", s)
	}
}

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"normal":         Normal,
		"Bold":           Bold,
		"underline":      Underline,
		"bold_underline": BoldUnderline,
		"bold-underline": BoldUnderline,
		"bold+underline": BoldUnderline,
	}
	for in, want := range cases {
		got, err := ParseStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseStyle("italic"); err == nil {
		t.Error("ParseStyle(italic) should fail")
	}
}
