package native

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventBufferSize bounds tcell events queued ahead of PollEvent
const eventBufferSize = 256

// Screen implements Library on top of a tcell.Screen
type Screen struct {
	// newScreen creates the underlying screen at Init; nil when wrapping a caller's screen
	newScreen func() (tcell.Screen, error)
	afterInit func(tcell.Screen)

	mu          sync.Mutex
	screen      tcell.Screen
	initialized bool

	inputMode        int
	clearFg, clearBg uint16
	width, height    int // Last reported size, for resize dedup

	events  chan tcell.Event
	stopCh  chan struct{}
	pending []RawEvent
}

// NewTerminal creates a Library bound to the controlling terminal
func NewTerminal() *Screen {
	return &Screen{newScreen: tcell.NewScreen}
}

// NewScreen creates a Library over an existing tcell screen
// The screen is owned by the Library after Init and cannot be re-initialized after Shutdown
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// NewSimulation creates a headless Library of fixed size
func NewSimulation(width, height int) *Screen {
	sim := tcell.NewSimulationScreen("UTF-8")
	l := NewScreen(sim)
	l.afterInit = func(tcell.Screen) {
		sim.SetSize(width, height)
	}
	return l
}

// Init enters the terminal session
func (s *Screen) Init() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return CodeOK
	}

	scr := s.screen
	if scr == nil {
		if s.newScreen == nil {
			return CodeFailedToOpenTTY
		}
		var err error
		scr, err = s.newScreen()
		if err != nil {
			log.Printf("native: screen create failed: %v", err)
			return initCode(err)
		}
	}

	if err := scr.Init(); err != nil {
		log.Printf("native: screen init failed: %v", err)
		return initCode(err)
	}
	if s.afterInit != nil {
		s.afterInit(scr)
	}

	s.screen = scr
	s.inputMode = InputEsc
	s.width, s.height = scr.Size()
	s.pending = s.pending[:0]
	s.events = make(chan tcell.Event, eventBufferSize)
	s.stopCh = make(chan struct{})

	scr.HideCursor()
	scr.Fill(' ', attrStyle(s.clearFg, s.clearBg))

	go pump(scr, s.events, s.stopCh)

	s.initialized = true
	return CodeOK
}

// initCode maps tcell init failures to native error codes
func initCode(err error) int {
	if errors.Is(err, tcell.ErrTermNotFound) {
		return CodeUnsupportedTerminal
	}
	return CodeFailedToOpenTTY
}

// pump forwards tcell events until the screen is finalized
func pump(scr tcell.Screen, out chan<- tcell.Event, stopCh <-chan struct{}) {
	defer close(out)
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-stopCh:
			return
		}
	}
}

// Shutdown restores the terminal
func (s *Screen) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	close(s.stopCh)
	s.screen.Fini()

	if s.newScreen != nil {
		s.screen = nil
	}
	s.pending = s.pending[:0]
	s.initialized = false
}

// Width returns the back buffer width
func (s *Screen) Width() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return 0
	}
	w, _ := s.screen.Size()
	return uint(w)
}

// Height returns the back buffer height
func (s *Screen) Height() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return 0
	}
	_, h := s.screen.Size()
	return uint(h)
}

// Clear fills the back buffer with blanks in the clear attributes
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.screen.Fill(' ', attrStyle(s.clearFg, s.clearBg))
}

// Present shows the back buffer
func (s *Screen) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.screen.Show()
}

// SetCursor positions or hides the cursor
func (s *Screen) SetCursor(cx, cy int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	if cx == HideCursor && cy == HideCursor {
		s.screen.HideCursor()
		return
	}
	s.screen.ShowCursor(cx, cy)
}

// ChangeCell writes one cell to the back buffer
func (s *Screen) ChangeCell(x, y uint, ch uint32, fg, bg uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	w, h := s.screen.Size()
	if x >= uint(w) || y >= uint(h) {
		return
	}
	s.screen.SetContent(int(x), int(y), rune(ch), nil, attrStyle(fg, bg))
}

// SelectInputMode sets or queries the input mode
func (s *Screen) SelectInputMode(mode int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == InputCurrent {
		return s.inputMode
	}
	s.inputMode = effectiveInputMode(mode)
	return s.inputMode
}

// SetClearAttributes sets the attributes used by Clear
func (s *Screen) SetClearAttributes(fg, bg uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearFg, s.clearBg = fg, bg
}

// PollEvent blocks until the next event
func (s *Screen) PollEvent(ev *RawEvent) int {
	return s.waitEvent(ev, nil)
}

// PeekEvent waits up to timeout milliseconds for the next event
func (s *Screen) PeekEvent(ev *RawEvent, timeout uint) int {
	timer := time.NewTimer(time.Duration(timeout) * time.Millisecond)
	defer timer.Stop()
	return s.waitEvent(ev, timer.C)
}

// waitEvent delivers a pending record or translates the next tcell event
// A nil timeout blocks indefinitely
func (s *Screen) waitEvent(ev *RawEvent, timeout <-chan time.Time) int {
	for {
		s.mu.Lock()
		if !s.initialized {
			s.mu.Unlock()
			return EventError
		}
		if len(s.pending) > 0 {
			*ev = s.pending[0]
			s.pending = s.pending[1:]
			s.mu.Unlock()
			return int(ev.Type)
		}
		events := s.events
		s.mu.Unlock()

		select {
		case tev, ok := <-events:
			if !ok {
				return EventError
			}
			s.mu.Lock()
			s.enqueue(tev)
			s.mu.Unlock()
		case <-timeout:
			return EventNone
		}
	}
}

// enqueue translates a tcell event into zero or more pending records
// Caller holds mu
func (s *Screen) enqueue(tev tcell.Event) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		raw, ok := translateKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if !ok {
			log.Printf("native: dropping key %v with no native code", ev.Key())
			return
		}
		if raw.Mod&ModAlt != 0 && s.inputMode == InputEsc {
			// Esc mode reports Alt+key as ESC then key
			s.pending = append(s.pending, RawEvent{Type: EventKey, Key: KeyEsc})
			raw.Mod &^= ModAlt
		}
		s.pending = append(s.pending, raw)

	case *tcell.EventResize:
		w, h := ev.Size()
		if w == s.width && h == s.height {
			return
		}
		// Superseded by a later resize still in the queue
		if cw, ch := s.screen.Size(); cw != w || ch != h {
			return
		}
		s.width, s.height = w, h
		s.pending = append(s.pending, RawEvent{Type: EventResize, W: int32(w), H: int32(h)})

	default:
		log.Printf("native: skipping event %T", tev)
	}
}
