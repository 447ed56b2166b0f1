//go:build windows

package media

import (
	"fmt"
	"log"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	SMTO_NORMAL        = 0x0000
	SMTO_ABORTIFHUNG   = 0x0002
	defaultSendTimeout = 250 * time.Millisecond
)

// WindowSender sends WM_APPCOMMAND to one window. The handle is captured at
// construction and never changes; if the player exits the sends simply fail.
type WindowSender struct {
	hwnd    uintptr
	timeout time.Duration
}

// NewWindowSender returns a sender bound to hwnd. A timeout <= 0 selects the
// default.
func NewWindowSender(hwnd uintptr, timeout time.Duration) *WindowSender {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &WindowSender{hwnd: hwnd, timeout: timeout}
}

// Send delivers cmd synchronously. Failures are logged, never retried.
func (s *WindowSender) Send(cmd Command) {
	if err := s.send(cmd); err != nil {
		log.Printf("Media: %s not delivered: %v", cmd, err)
	}
}

func (s *WindowSender) send(cmd Command) error {
	var result uintptr
	ret, _, err := procSendMessageTimeoutW.Call(
		s.hwnd,
		WM_APPCOMMAND,
		0,
		uintptr(cmd.Code()),
		SMTO_NORMAL|SMTO_ABORTIFHUNG,
		uintptr(s.timeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return fmt.Errorf("SendMessageTimeoutW to 0x%X failed: %v", s.hwnd, err)
	}
	return nil
}
