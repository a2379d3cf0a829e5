// Package native is the cell-buffer terminal library the termbox binding calls into.
//
// The API mirrors the classic termbox C ABI one call at a time:
//   - Integer return codes (0 success, negative failure)
//   - 16-bit attribute words packing an 8-color index with bold/underline bits
//   - Out-parameter event records filled by PollEvent/PeekEvent
//
// Terminal control itself (raw mode, terminfo, double buffering, diffing and
// input decoding) is delegated to tcell. Screen adapts a tcell.Screen to the
// ABI; the same adapter drives a real terminal, a specific tty device, or a
// headless simulation screen.
package native
