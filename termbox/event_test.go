package termbox

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnpackEvent(t *testing.T) {
	raw := RawEvent{Type: 9, Mod: 0x01, Key: 0xFFEB, Ch: 'z', W: 132, H: 43}

	tests := []struct {
		code int
		want Event
	}{
		{0, NoEvent{}},
		{1, KeyEvent{Mod: 0x01, Key: 0xFFEB, Ch: 'z'}},
		{2, ResizeEvent{W: 132, H: 43}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("code=%d", tt.code), func(t *testing.T) {
			got := UnpackEvent(tt.code, &raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UnpackEvent mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnpackEvent_UnknownPanics(t *testing.T) {
	for _, code := range []int{-1, 3, 4, 255} {
		t.Run(fmt.Sprintf("code=%d", code), func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("UnpackEvent(%d) did not panic", code)
				}
			}()
			ev := NilRawEvent()
			UnpackEvent(code, &ev)
		})
	}
}

func TestNilRawEvent(t *testing.T) {
	if diff := cmp.Diff(RawEvent{}, NilRawEvent()); diff != "" {
		t.Errorf("NilRawEvent not zero (-want +got):\n%s", diff)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NoEvent{}, "none"},
		{KeyEvent{Ch: 'q'}, "key 'q'"},
		{KeyEvent{Mod: ModAlt, Ch: 'x'}, "key Alt+'x'"},
		{KeyEvent{Ch: 0x263A}, "key U+263A"},
		{KeyEvent{Key: KeyArrowUp}, "key up"},
		{KeyEvent{Key: KeyCtrlC}, "key ctrl_c"},
		{KeyEvent{Key: 0x8000}, "key 0x8000"},
		{ResizeEvent{W: 80, H: 24}, "resize 80x24"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestKeyEventAccessors(t *testing.T) {
	ev := KeyEvent{Mod: ModAlt, Ch: 'é'}
	if ev.Rune() != 'é' {
		t.Errorf("Rune() = %q", ev.Rune())
	}
	if !ev.Alt() {
		t.Error("Alt() should be true")
	}
	if (KeyEvent{}).Alt() {
		t.Error("zero KeyEvent should not be Alt")
	}
}

func TestKeyByName(t *testing.T) {
	if k, ok := KeyByName("ctrl_q"); !ok || k != KeyCtrlQ {
		t.Errorf("KeyByName(ctrl_q) = %#x, %v", k, ok)
	}
	if k, ok := KeyByName(KeyName(KeyArrowDown)); !ok || k != KeyArrowDown {
		t.Errorf("round trip of arrow down = %#x, %v", k, ok)
	}
	if _, ok := KeyByName("meta"); ok {
		t.Error("unknown name should not resolve")
	}
}
