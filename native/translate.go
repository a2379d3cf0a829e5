package native

import (
	"github.com/gdamore/tcell/v2"
)

// specialKeys maps tcell named keys to native key codes
var specialKeys = map[tcell.Key]uint16{
	tcell.KeyF1:     KeyF1,
	tcell.KeyF2:     KeyF2,
	tcell.KeyF3:     KeyF3,
	tcell.KeyF4:     KeyF4,
	tcell.KeyF5:     KeyF5,
	tcell.KeyF6:     KeyF6,
	tcell.KeyF7:     KeyF7,
	tcell.KeyF8:     KeyF8,
	tcell.KeyF9:     KeyF9,
	tcell.KeyF10:    KeyF10,
	tcell.KeyF11:    KeyF11,
	tcell.KeyF12:    KeyF12,
	tcell.KeyInsert: KeyInsert,
	tcell.KeyDelete: KeyDelete,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPgup,
	tcell.KeyPgDn:   KeyPgdn,
	tcell.KeyUp:     KeyArrowUp,
	tcell.KeyDown:   KeyArrowDown,
	tcell.KeyLeft:   KeyArrowLeft,
	tcell.KeyRight:  KeyArrowRight,
}

// translateKey converts a tcell key triple into a key event record
// Returns false for keys with no native code
func translateKey(key tcell.Key, r rune, mod tcell.ModMask) (RawEvent, bool) {
	ev := RawEvent{Type: EventKey}
	if mod&tcell.ModAlt != 0 {
		ev.Mod = ModAlt
	}

	switch {
	case key == tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 {
			if c, ok := ctrlCode(r); ok {
				ev.Key = c
				return ev, true
			}
		}
		if r == ' ' {
			ev.Key = KeySpace
			return ev, true
		}
		ev.Ch = uint32(r)
		return ev, true

	case key >= tcell.KeyCtrlSpace && key <= tcell.KeyCtrlUnderscore:
		// tcell numbers Ctrl keys from 64; native codes are the control bytes
		ev.Key = uint16(key - tcell.KeyCtrlSpace)
		return ev, true

	case key >= tcell.KeyNUL && key <= tcell.KeyUS, key == tcell.KeyDEL:
		// Backspace, Tab, Enter, Esc and raw control bytes keep their ASCII value
		ev.Key = uint16(key)
		return ev, true
	}

	if k, ok := specialKeys[key]; ok {
		ev.Key = k
		return ev, true
	}
	return ev, false
}

// ctrlCode maps a rune typed with Ctrl to its control code
func ctrlCode(r rune) (uint16, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return uint16(r-'a') + KeyCtrlA, true
	case r >= 'A' && r <= 'Z':
		return uint16(r-'A') + KeyCtrlA, true
	}
	switch r {
	case ' ', '@', '2', '~', '`':
		return KeyCtrlSpace, true
	case '[', '3':
		return KeyCtrlLsqBracket, true
	case '\\', '4':
		return KeyCtrlBackslash, true
	case ']', '5':
		return KeyCtrlRsqBracket, true
	case '^', '6':
		return KeyCtrl6, true
	case '_', '/', '7':
		return KeyCtrlUnderscore, true
	case '8':
		return KeyCtrl8, true
	}
	return 0, false
}

// attrStyle converts a foreground/background attribute word pair to a tcell style
func attrStyle(fg, bg uint16) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg & AttrColorMask))).
		Background(tcell.PaletteColor(int(bg & AttrColorMask)))
	if fg&AttrBold != 0 {
		st = st.Bold(true)
	}
	if fg&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	return st
}

// effectiveInputMode normalizes a requested input mode
// Esc wins over Alt; a request with neither bit selects Esc
func effectiveInputMode(mode int) int {
	mode &= inputMask
	if mode&InputEsc != 0 {
		return InputEsc
	}
	if mode&InputAlt != 0 {
		return InputAlt
	}
	return InputEsc
}
