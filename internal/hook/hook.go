// Package hook turns low-level mouse and keyboard events into media commands.
//
// The decision logic in this file and handlers.go is platform independent.
// hooks_windows.go adapts it to WH_MOUSE_LL / WH_KEYBOARD_LL callbacks and
// owns the message loop that drives them.
package hook

import "errors"

var (
	// ErrUnsupportedPlatform is returned when low-level hooks are unavailable
	ErrUnsupportedPlatform = errors.New("low-level input hooks not supported on this platform")

	// ErrHookInstall is returned when SetWindowsHookEx fails
	ErrHookInstall = errors.New("failed to install input hook")
)

// Hook codes and message identifiers delivered to low-level hooks.
const (
	HC_ACTION = 0

	WM_KEYDOWN     = 0x0100
	WM_KEYUP       = 0x0101
	WM_SYSKEYDOWN  = 0x0104
	WM_SYSKEYUP    = 0x0105
	WM_XBUTTONDOWN = 0x020B
	WM_XBUTTONUP   = 0x020C

	XBUTTON1 = 0x0001
	XBUTTON2 = 0x0002

	VK_PAUSE   = 0x13
	VK_NUMLOCK = 0x90
)

// MouseEvent is the part of MSLLHOOKSTRUCT the handlers look at.
type MouseEvent struct {
	Message   uint32 // wParam, e.g. WM_XBUTTONDOWN
	MouseData uint32
}

// XButton returns the X button number packed into the high word of MouseData.
func (e MouseEvent) XButton() uint16 {
	return uint16(e.MouseData >> 16)
}

// KeyEvent is the part of KBDLLHOOKSTRUCT the handlers look at.
type KeyEvent struct {
	Message uint32 // wParam, e.g. WM_KEYDOWN
	VKCode  uint32
}

// ChainAction tells the adapter what to do with an event after a handler saw it.
type ChainAction int

const (
	// Pass forwards the event to the next hook in the chain.
	Pass ChainAction = iota
	// Swallow stops the event from reaching the rest of the system.
	Swallow
)

func (a ChainAction) String() string {
	switch a {
	case Pass:
		return "pass"
	case Swallow:
		return "swallow"
	}
	return "unknown"
}

// Event is the set of events a Handler can receive.
type Event interface {
	MouseEvent | KeyEvent
}

// Handler inspects one event. It runs on the hook thread inside the OS
// callback and must return quickly.
type Handler[E Event] interface {
	OnEvent(ev E) ChainAction
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[E Event] func(ev E) ChainAction

// OnEvent calls f(ev).
func (f HandlerFunc[E]) OnEvent(ev E) ChainAction {
	return f(ev)
}

// Relay runs h for HC_ACTION events and then calls next, unless h asked to
// swallow the event. Events with any other nCode go straight to next, as
// CallNextHookEx requires.
func Relay[E Event](h Handler[E], nCode int32, ev E, next func() uintptr) uintptr {
	if nCode == HC_ACTION && h.OnEvent(ev) == Swallow {
		return 1
	}
	return next()
}
