package termbox

import (
	"fmt"

	"github.com/lixenwraith/termbox/native"
)

// RawEvent is the native event record, copied verbatim from the library
type RawEvent = native.RawEvent

// NilRawEvent returns a zeroed record for the library to fill
func NilRawEvent() RawEvent {
	return RawEvent{Type: 0, Mod: 0, Key: 0, Ch: 0, W: 0, H: 0}
}

// Event is a decoded input event: NoEvent, KeyEvent or ResizeEvent
type Event interface {
	fmt.Stringer
	isEvent()
}

// NoEvent reports that no input arrived before the peek timeout
type NoEvent struct{}

// KeyEvent carries the record's modifier, key code and character unchanged
// Exactly one of Key or Ch is meaningful: Ch is 0 for special keys
type KeyEvent struct {
	Mod uint8
	Key uint16
	Ch  uint32
}

// ResizeEvent carries the new terminal dimensions
type ResizeEvent struct {
	W int32
	H int32
}

func (NoEvent) isEvent()     {}
func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}

func (NoEvent) String() string { return "none" }

// Rune returns the typed character, 0 for special keys
func (e KeyEvent) Rune() rune { return rune(e.Ch) }

// Alt reports the alt modifier (only set in InputAlt mode)
func (e KeyEvent) Alt() bool { return e.Mod&ModAlt != 0 }

func (e KeyEvent) String() string {
	var mods string
	if e.Alt() {
		mods = "Alt+"
	}

	if e.Ch != 0 {
		r := e.Rune()
		if r >= 0x20 && r < 0x7f {
			return fmt.Sprintf("key %s'%c'", mods, r)
		}
		return fmt.Sprintf("key %sU+%04X", mods, r)
	}
	if name := native.KeyName(e.Key); name != "" {
		return fmt.Sprintf("key %s%s", mods, name)
	}
	return fmt.Sprintf("key %s0x%04X", mods, e.Key)
}

func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize %dx%d", e.W, e.H)
}

// UnpackEvent decodes a native event kind and record into an Event
// Event kinds other than none, key and resize are unrecoverable and panic
func UnpackEvent(evType int, ev *RawEvent) Event {
	switch evType {
	case native.EventNone:
		return NoEvent{}
	case native.EventKey:
		return KeyEvent{Mod: ev.Mod, Key: ev.Key, Ch: ev.Ch}
	case native.EventResize:
		return ResizeEvent{W: ev.W, H: ev.H}
	}
	panic(fmt.Sprintf("termbox: unknown event type %d", evType))
}
