package native

// Key codes carried in RawEvent.Key. Special keys count down from 0xFFFF,
// control keys share their ASCII values.
const (
	KeyF1 uint16 = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

const (
	KeyCtrlTilde      uint16 = 0x00
	KeyCtrl2          uint16 = 0x00 // Same as KeyCtrlTilde
	KeyCtrlSpace      uint16 = 0x00
	KeyCtrlA          uint16 = 0x01
	KeyCtrlB          uint16 = 0x02
	KeyCtrlC          uint16 = 0x03
	KeyCtrlD          uint16 = 0x04
	KeyCtrlE          uint16 = 0x05
	KeyCtrlF          uint16 = 0x06
	KeyCtrlG          uint16 = 0x07
	KeyBackspace      uint16 = 0x08
	KeyCtrlH          uint16 = 0x08 // Same as KeyBackspace
	KeyTab            uint16 = 0x09
	KeyCtrlI          uint16 = 0x09 // Same as KeyTab
	KeyCtrlJ          uint16 = 0x0A
	KeyCtrlK          uint16 = 0x0B
	KeyCtrlL          uint16 = 0x0C
	KeyEnter          uint16 = 0x0D
	KeyCtrlM          uint16 = 0x0D // Same as KeyEnter
	KeyCtrlN          uint16 = 0x0E
	KeyCtrlO          uint16 = 0x0F
	KeyCtrlP          uint16 = 0x10
	KeyCtrlQ          uint16 = 0x11
	KeyCtrlR          uint16 = 0x12
	KeyCtrlS          uint16 = 0x13
	KeyCtrlT          uint16 = 0x14
	KeyCtrlU          uint16 = 0x15
	KeyCtrlV          uint16 = 0x16
	KeyCtrlW          uint16 = 0x17
	KeyCtrlX          uint16 = 0x18
	KeyCtrlY          uint16 = 0x19
	KeyCtrlZ          uint16 = 0x1A
	KeyEsc            uint16 = 0x1B
	KeyCtrlLsqBracket uint16 = 0x1B // Same as KeyEsc
	KeyCtrl3          uint16 = 0x1B // Same as KeyEsc
	KeyCtrl4          uint16 = 0x1C
	KeyCtrlBackslash  uint16 = 0x1C // Same as KeyCtrl4
	KeyCtrl5          uint16 = 0x1D
	KeyCtrlRsqBracket uint16 = 0x1D // Same as KeyCtrl5
	KeyCtrl6          uint16 = 0x1E
	KeyCtrl7          uint16 = 0x1F
	KeyCtrlSlash      uint16 = 0x1F // Same as KeyCtrl7
	KeyCtrlUnderscore uint16 = 0x1F // Same as KeyCtrl7
	KeySpace          uint16 = 0x20
	KeyBackspace2     uint16 = 0x7F // Screen reports DEL as KeyBackspace
	KeyCtrl8          uint16 = 0x7F // Same as KeyBackspace2
)

// keyToName maps key codes to canonical names; aliases resolve to one entry
var keyToName = map[uint16]string{
	KeyF1:         "f1",
	KeyF2:         "f2",
	KeyF3:         "f3",
	KeyF4:         "f4",
	KeyF5:         "f5",
	KeyF6:         "f6",
	KeyF7:         "f7",
	KeyF8:         "f8",
	KeyF9:         "f9",
	KeyF10:        "f10",
	KeyF11:        "f11",
	KeyF12:        "f12",
	KeyInsert:     "insert",
	KeyDelete:     "delete",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPgup:       "page_up",
	KeyPgdn:       "page_down",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",

	KeyCtrlSpace:      "ctrl_space",
	KeyCtrlA:          "ctrl_a",
	KeyCtrlB:          "ctrl_b",
	KeyCtrlC:          "ctrl_c",
	KeyCtrlD:          "ctrl_d",
	KeyCtrlE:          "ctrl_e",
	KeyCtrlF:          "ctrl_f",
	KeyCtrlG:          "ctrl_g",
	KeyBackspace:      "backspace",
	KeyTab:            "tab",
	KeyCtrlJ:          "ctrl_j",
	KeyCtrlK:          "ctrl_k",
	KeyCtrlL:          "ctrl_l",
	KeyEnter:          "enter",
	KeyCtrlN:          "ctrl_n",
	KeyCtrlO:          "ctrl_o",
	KeyCtrlP:          "ctrl_p",
	KeyCtrlQ:          "ctrl_q",
	KeyCtrlR:          "ctrl_r",
	KeyCtrlS:          "ctrl_s",
	KeyCtrlT:          "ctrl_t",
	KeyCtrlU:          "ctrl_u",
	KeyCtrlV:          "ctrl_v",
	KeyCtrlW:          "ctrl_w",
	KeyCtrlX:          "ctrl_x",
	KeyCtrlY:          "ctrl_y",
	KeyCtrlZ:          "ctrl_z",
	KeyEsc:            "escape",
	KeyCtrlBackslash:  "ctrl_backslash",
	KeyCtrlRsqBracket: "ctrl_bracket_right",
	KeyCtrl6:          "ctrl_caret",
	KeyCtrlUnderscore: "ctrl_underscore",
	KeySpace:          "space",
	KeyBackspace2:     "backspace2",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]uint16

func init() {
	nameToKey = make(map[string]uint16, len(keyToName)+4)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEsc
	nameToKey["ctrl_h"] = KeyCtrlH
	nameToKey["ctrl_i"] = KeyCtrlI
	nameToKey["ctrl_m"] = KeyCtrlM
}

// KeyName returns the canonical name for a key code
// Returns empty string for codes without a name (plain characters use Ch)
func KeyName(k uint16) string {
	return keyToName[k]
}

// KeyByName resolves a name to a key code
func KeyByName(name string) (uint16, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
