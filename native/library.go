package native

// Library is the termbox-shaped ABI. Every call is a direct forward target
// for one binding function.
type Library interface {
	// Init enters the terminal session. Returns 0 or a negative Code* value
	Init() int

	// Shutdown restores the terminal. Safe to call multiple times
	Shutdown()

	// Width and Height return back buffer dimensions, 0 before Init
	Width() uint
	Height() uint

	// Clear fills the back buffer using the clear attributes
	Clear()

	// Present writes the back buffer to the terminal
	Present()

	// SetCursor places the cursor; (HideCursor, HideCursor) hides it
	SetCursor(cx, cy int)

	// ChangeCell writes one back buffer cell, out of range writes are ignored
	ChangeCell(x, y uint, ch uint32, fg, bg uint16)

	// SelectInputMode sets the input mode and returns the effective one.
	// InputCurrent queries without changing
	SelectInputMode(mode int) int

	// SetClearAttributes sets the attribute words used by Clear
	SetClearAttributes(fg, bg uint16)

	// PeekEvent waits at most timeout milliseconds for an event
	PeekEvent(ev *RawEvent, timeout uint) int

	// PollEvent blocks until the next event
	PollEvent(ev *RawEvent) int
}

// RawEvent matches the native event record layout
type RawEvent struct {
	Type uint8
	Mod  uint8
	Key  uint16
	Ch   uint32
	W    int32
	H    int32
}

// Event kind codes returned by PollEvent/PeekEvent
const (
	EventError  = -1
	EventNone   = 0
	EventKey    = 1
	EventResize = 2
)

// Init error codes
const (
	CodeOK                  = 0
	CodeUnsupportedTerminal = -1
	CodeFailedToOpenTTY     = -2
	CodePipeTrapError       = -3 // Reserved; tcell owns SIGWINCH handling
)

// Input modes (bitmask)
const (
	InputCurrent = 0
	InputEsc     = 1 << 0
	InputAlt     = 1 << 1

	inputMask = InputEsc | InputAlt
)

// HideCursor passed as both coordinates to SetCursor hides the cursor
const HideCursor = -1

// Attribute word layout
const (
	AttrColorMask uint16 = 0x07
	AttrBold      uint16 = 0x10
	AttrUnderline uint16 = 0x20
)

// ModAlt is set in RawEvent.Mod for alt-modified keys in InputAlt mode
const ModAlt uint8 = 0x01
