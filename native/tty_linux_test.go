//go:build linux

package native

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"
)

// ptyOutput accumulates everything written to the terminal side of a pty
type ptyOutput struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (o *ptyOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

func (o *ptyOutput) contains(s string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return bytes.Contains(o.buf.Bytes(), []byte(s))
}

func TestTTY_RoundTrip(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}
	t.Setenv("TERM", "xterm")

	out := &ptyOutput{}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				out.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	lib := NewTTY(tty.Name())
	if code := lib.Init(); code != CodeOK {
		t.Fatalf("Init() = %d", code)
	}
	defer lib.Shutdown()

	if lib.Width() != 80 || lib.Height() != 24 {
		t.Errorf("size = %dx%d, want 80x24", lib.Width(), lib.Height())
	}

	for i, r := range "hello" {
		lib.ChangeCell(uint(1+i), 1, uint32(r), 0x07|AttrBold, 0x00)
	}
	lib.Present()

	deadline := time.Now().Add(2 * time.Second)
	for !out.contains("hello") {
		if time.Now().After(deadline) {
			t.Fatal("presented text never reached the terminal")
		}
		time.Sleep(10 * time.Millisecond)
	}

	tests := []struct {
		name  string
		input string
		want  []RawEvent
	}{
		{"ctrl c", "\x03", []RawEvent{{Type: EventKey, Key: KeyCtrlC}}},
		{"ctrl q", "\x11", []RawEvent{{Type: EventKey, Key: KeyCtrlQ}}},
		{"space", " ", []RawEvent{{Type: EventKey, Key: KeySpace}}},
		{"delete", "\x7f", []RawEvent{{Type: EventKey, Key: KeyBackspace}}},
		{"rune", "q", []RawEvent{{Type: EventKey, Ch: 'q'}}},
		{"alt x splits in esc mode", "\x1bx", []RawEvent{
			{Type: EventKey, Key: KeyEsc},
			{Type: EventKey, Ch: 'x'},
		}},
	}

	for _, tt := range tests {
		if _, err := ptmx.Write([]byte(tt.input)); err != nil {
			t.Fatalf("%s: write input: %v", tt.name, err)
		}
		for i, want := range tt.want {
			got := nextKey(t, lib)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: event %d mismatch (-want +got):\n%s", tt.name, i, diff)
			}
		}
	}

	lib.SelectInputMode(InputAlt)
	if _, err := ptmx.Write([]byte("\x1by")); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if got, want := nextKey(t, lib), (RawEvent{Type: EventKey, Mod: ModAlt, Ch: 'y'}); got != want {
		t.Errorf("alt mode event = %+v, want %+v", got, want)
	}
}

// nextKey waits for the next key record, skipping resizes
func nextKey(t *testing.T, lib Library) RawEvent {
	t.Helper()
	for {
		var ev RawEvent
		code := lib.PeekEvent(&ev, 2000)
		if code == EventResize {
			continue
		}
		if code != EventKey {
			t.Fatalf("PeekEvent() = %d, want key", code)
		}
		return ev
	}
}
