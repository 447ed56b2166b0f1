//go:build windows

package window

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

type winSystem struct{}

// NewSystem returns the Win32 window manager.
func NewSystem() System {
	return winSystem{}
}

func (winSystem) EnumWindows(visit func(hwnd Handle) bool) error {
	stopped := false
	cb := syscall.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		if visit(Handle(hwnd)) {
			return 1
		}
		stopped = true
		return 0
	})

	err := windows.EnumWindows(cb, nil)
	if stopped {
		// EnumWindows reports FALSE when the callback ends it early.
		return nil
	}
	return err
}

func (winSystem) ProcessID(hwnd Handle) (uint32, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &pid); err != nil {
		return 0, err
	}
	return pid, nil
}

func (winSystem) OpenProcess(pid uint32) (Process, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return nil, fmt.Errorf("OpenProcess(%d): %w", pid, err)
	}
	return winProcess{h: h}, nil
}

type winProcess struct {
	h windows.Handle
}

func (p winProcess) ImagePath() (string, error) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(p.h, 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func (p winProcess) Close() error {
	return windows.CloseHandle(p.h)
}
