package termbox

import (
	"github.com/lixenwraith/termbox/native"
)

// Key codes reported in KeyEvent.Key
const (
	KeyF1         = native.KeyF1
	KeyF2         = native.KeyF2
	KeyF3         = native.KeyF3
	KeyF4         = native.KeyF4
	KeyF5         = native.KeyF5
	KeyF6         = native.KeyF6
	KeyF7         = native.KeyF7
	KeyF8         = native.KeyF8
	KeyF9         = native.KeyF9
	KeyF10        = native.KeyF10
	KeyF11        = native.KeyF11
	KeyF12        = native.KeyF12
	KeyInsert     = native.KeyInsert
	KeyDelete     = native.KeyDelete
	KeyHome       = native.KeyHome
	KeyEnd        = native.KeyEnd
	KeyPgup       = native.KeyPgup
	KeyPgdn       = native.KeyPgdn
	KeyArrowUp    = native.KeyArrowUp
	KeyArrowDown  = native.KeyArrowDown
	KeyArrowLeft  = native.KeyArrowLeft
	KeyArrowRight = native.KeyArrowRight

	KeyCtrlTilde      = native.KeyCtrlTilde
	KeyCtrl2          = native.KeyCtrl2
	KeyCtrlSpace      = native.KeyCtrlSpace
	KeyCtrlA          = native.KeyCtrlA
	KeyCtrlB          = native.KeyCtrlB
	KeyCtrlC          = native.KeyCtrlC
	KeyCtrlD          = native.KeyCtrlD
	KeyCtrlE          = native.KeyCtrlE
	KeyCtrlF          = native.KeyCtrlF
	KeyCtrlG          = native.KeyCtrlG
	KeyBackspace      = native.KeyBackspace
	KeyCtrlH          = native.KeyCtrlH
	KeyTab            = native.KeyTab
	KeyCtrlI          = native.KeyCtrlI
	KeyCtrlJ          = native.KeyCtrlJ
	KeyCtrlK          = native.KeyCtrlK
	KeyCtrlL          = native.KeyCtrlL
	KeyEnter          = native.KeyEnter
	KeyCtrlM          = native.KeyCtrlM
	KeyCtrlN          = native.KeyCtrlN
	KeyCtrlO          = native.KeyCtrlO
	KeyCtrlP          = native.KeyCtrlP
	KeyCtrlQ          = native.KeyCtrlQ
	KeyCtrlR          = native.KeyCtrlR
	KeyCtrlS          = native.KeyCtrlS
	KeyCtrlT          = native.KeyCtrlT
	KeyCtrlU          = native.KeyCtrlU
	KeyCtrlV          = native.KeyCtrlV
	KeyCtrlW          = native.KeyCtrlW
	KeyCtrlX          = native.KeyCtrlX
	KeyCtrlY          = native.KeyCtrlY
	KeyCtrlZ          = native.KeyCtrlZ
	KeyEsc            = native.KeyEsc
	KeyCtrlLsqBracket = native.KeyCtrlLsqBracket
	KeyCtrl3          = native.KeyCtrl3
	KeyCtrl4          = native.KeyCtrl4
	KeyCtrlBackslash  = native.KeyCtrlBackslash
	KeyCtrl5          = native.KeyCtrl5
	KeyCtrlRsqBracket = native.KeyCtrlRsqBracket
	KeyCtrl6          = native.KeyCtrl6
	KeyCtrl7          = native.KeyCtrl7
	KeyCtrlSlash      = native.KeyCtrlSlash
	KeyCtrlUnderscore = native.KeyCtrlUnderscore
	KeySpace          = native.KeySpace
	KeyBackspace2     = native.KeyBackspace2
	KeyCtrl8          = native.KeyCtrl8
)

// ModAlt marks alt-modified keys in KeyEvent.Mod
const ModAlt = native.ModAlt

// InputMode selects how the library reports Alt-modified keys
type InputMode int

const (
	InputCurrent InputMode = native.InputCurrent // Query without changing
	InputEsc     InputMode = native.InputEsc     // Alt+key arrives as ESC then key
	InputAlt     InputMode = native.InputAlt     // Alt+key arrives with ModAlt set
)

// HideCursor passed as both SetCursor coordinates hides the cursor
const HideCursor = native.HideCursor

// KeyName returns the canonical name of a special key code
func KeyName(k uint16) string {
	return native.KeyName(k)
}

// KeyByName resolves a canonical key name such as "ctrl_q" or "f1"
func KeyByName(name string) (uint16, bool) {
	return native.KeyByName(name)
}
