package termbox

import (
	"github.com/lixenwraith/termbox/native"
)

// cellWrite is one recorded ChangeCell call
type cellWrite struct {
	X, Y   uint
	Ch     uint32
	Fg, Bg uint16
}

// queuedEvent is a scripted return from PollEvent/PeekEvent
type queuedEvent struct {
	Code int
	Ev   RawEvent
}

// fakeLibrary records calls and replays scripted events
type fakeLibrary struct {
	initCode  int
	width     uint
	height    uint
	inputMode int

	calls        []string
	cells        []cellWrite
	cursorX      int
	cursorY      int
	clearFg      uint16
	clearBg      uint16
	peekTimeouts []uint
	events       []queuedEvent
}

var _ native.Library = (*fakeLibrary)(nil)

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{width: 80, height: 24, inputMode: native.InputEsc}
}

func (f *fakeLibrary) Init() int {
	f.calls = append(f.calls, "init")
	return f.initCode
}

func (f *fakeLibrary) Shutdown() { f.calls = append(f.calls, "shutdown") }

func (f *fakeLibrary) Width() uint  { return f.width }
func (f *fakeLibrary) Height() uint { return f.height }

func (f *fakeLibrary) Clear()   { f.calls = append(f.calls, "clear") }
func (f *fakeLibrary) Present() { f.calls = append(f.calls, "present") }

func (f *fakeLibrary) SetCursor(cx, cy int) {
	f.calls = append(f.calls, "set_cursor")
	f.cursorX, f.cursorY = cx, cy
}

func (f *fakeLibrary) ChangeCell(x, y uint, ch uint32, fg, bg uint16) {
	f.cells = append(f.cells, cellWrite{X: x, Y: y, Ch: ch, Fg: fg, Bg: bg})
}

func (f *fakeLibrary) SelectInputMode(mode int) int {
	if mode != native.InputCurrent {
		f.inputMode = mode
	}
	return f.inputMode
}

func (f *fakeLibrary) SetClearAttributes(fg, bg uint16) {
	f.clearFg, f.clearBg = fg, bg
}

func (f *fakeLibrary) next(ev *RawEvent) int {
	if len(f.events) == 0 {
		return native.EventNone
	}
	q := f.events[0]
	f.events = f.events[1:]
	*ev = q.Ev
	return q.Code
}

func (f *fakeLibrary) PeekEvent(ev *RawEvent, timeout uint) int {
	f.peekTimeouts = append(f.peekTimeouts, timeout)
	return f.next(ev)
}

func (f *fakeLibrary) PollEvent(ev *RawEvent) int {
	return f.next(ev)
}
