// Package viewport classifies the output surface as mobile- or
// desktop-class and keeps that classification current across terminal
// resizes. The class drives both page size and render strategy.
package viewport

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Class is the layout class of the output surface.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// BreakpointCols is the terminal width below which the layout is
// mobile-class: narrow terminals get the scrolling card list, wide ones
// the paginated table.
const BreakpointCols = 100

// Page sizes per class. On mobile the pagination window is not applied
// (the whole filtered list scrolls), so its size only feeds totalPages.
const (
	MobilePageSize  = 6
	DesktopPageSize = 4
)

// PageSize returns the page size for the class.
func (c Class) PageSize() int {
	if c == Mobile {
		return MobilePageSize
	}
	return DesktopPageSize
}

// Paginated reports whether the class slices a page window out of the
// filtered list.
func (c Class) Paginated() bool { return c == Desktop }

// ParseClass maps a config override to a class. Unknown or empty values
// report ok=false, meaning the caller should detect instead.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "mobile":
		return Mobile, true
	case "desktop":
		return Desktop, true
	}
	return Desktop, false
}

// Detect classifies the terminal attached to fd. Non-terminals (pipes,
// redirects) are desktop-class.
func Detect(fd int) Class {
	if !term.IsTerminal(fd) {
		return Desktop
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return Desktop
	}
	return classify(width)
}

func classify(width int) Class {
	if width > 0 && width < BreakpointCols {
		return Mobile
	}
	return Desktop
}

// Signal is a reactive viewport source: Current is re-evaluated on every
// resize notification rather than snapshotted once at startup.
type Signal struct {
	fd       int
	override *Class
	stop     chan struct{}
	closing  sync.Once
}

// NewSignal creates a signal for the given output fd. A non-nil override
// pins the class (config takes precedence over detection).
func NewSignal(fd int, override *Class) *Signal {
	return &Signal{fd: fd, override: override, stop: make(chan struct{})}
}

// NewStdoutSignal is NewSignal for standard output.
func NewStdoutSignal(override *Class) *Signal {
	return NewSignal(int(os.Stdout.Fd()), override)
}

// Current returns the viewport class as of now.
func (s *Signal) Current() Class {
	if s.override != nil {
		return *s.override
	}
	return Detect(s.fd)
}

// Watch invokes onChange with the new class whenever a resize crosses the
// breakpoint. Returns immediately; Close stops the watcher.
func (s *Signal) Watch(onChange func(Class)) {
	if s.override != nil {
		return
	}
	watchResize(s, onChange)
}

// Close stops any active watcher. Safe to call more than once, from any
// goroutine.
func (s *Signal) Close() {
	s.closing.Do(func() { close(s.stop) })
}
