// Package termbox binds the native cell-buffer terminal library to Go.
//
// Each call is a one-to-one forward to native.Library with value conversion:
//   - Color/Style enums are packed into 16-bit attribute words
//   - Raw event records are decoded into the Event tagged union
//   - Print expands to one ChangeCell per rune
//
// The wrapped library owns a single global terminal session, so the package
// level functions operate on a default Session bound to the controlling
// terminal. Sessions over other libraries (a tty device, a simulation screen)
// are created with New.
//
// A minimal program:
//
//	termbox.Init()
//	termbox.Print(1, 1, termbox.Bold, termbox.White, termbox.Black, "Hello, world!")
//	termbox.Present()
//	time.Sleep(time.Second)
//	termbox.Shutdown()
//
// Output is double-buffered: writes land in the back buffer until Present.
package termbox
