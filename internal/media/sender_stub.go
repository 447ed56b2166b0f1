//go:build !windows

package media

import (
	"errors"
	"log"
	"time"
)

// ErrUnsupportedPlatform is returned when window messages are unavailable.
var ErrUnsupportedPlatform = errors.New("window messages not supported on this platform")

// WindowSender is a stub for non-Windows platforms
type WindowSender struct {
	hwnd uintptr
}

// NewWindowSender creates a stub sender
func NewWindowSender(hwnd uintptr, timeout time.Duration) *WindowSender {
	return &WindowSender{hwnd: hwnd}
}

// Send logs that delivery is unsupported (stub)
func (s *WindowSender) Send(cmd Command) {
	log.Printf("Media: %s not delivered: %v", cmd, ErrUnsupportedPlatform)
}
