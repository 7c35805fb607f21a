package generator

import (
	"fmt"
	"io"
)

// Observer receives progress notifications from a run. Calls arrive in
// write order from the goroutine executing Run.
type Observer interface {
	// DirectoryCreated fires only when a directory did not exist before.
	DirectoryCreated(path string)
	// FrameWritten fires for frame 1, every 25th frame, and the last frame.
	FrameWritten(n int, name string)
	FramesDone(count int, dir string)
	FallbackWritten(name string)
	FallbacksDone(dir string)
}

// ConsoleObserver prints one human-readable line per notification.
type ConsoleObserver struct {
	W io.Writer
}

func (o ConsoleObserver) DirectoryCreated(path string) {
	fmt.Fprintf(o.W, "Created directory: %s\n", path)
}

func (o ConsoleObserver) FrameWritten(n int, name string) {
	fmt.Fprintf(o.W, "Created %s\n", name)
}

func (o ConsoleObserver) FramesDone(count int, dir string) {
	fmt.Fprintf(o.W, "Generated all %d frame placeholders in %s/\n", count, dir)
}

func (o ConsoleObserver) FallbackWritten(name string) {
	fmt.Fprintf(o.W, "Created %s\n", name)
}

func (o ConsoleObserver) FallbacksDone(dir string) {
	fmt.Fprintf(o.W, "Generated placeholder images in %s/\n", dir)
}

type nopObserver struct{}

func (nopObserver) DirectoryCreated(string)  {}
func (nopObserver) FrameWritten(int, string) {}
func (nopObserver) FramesDone(int, string)   {}
func (nopObserver) FallbackWritten(string)   {}
func (nopObserver) FallbacksDone(string)     {}
