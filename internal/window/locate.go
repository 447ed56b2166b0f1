// Package window finds the top-level window owned by a given executable.
package window

import (
	"errors"
	"log"
	"strings"
)

// ErrUnsupportedPlatform is returned when the window manager cannot be queried
var ErrUnsupportedPlatform = errors.New("window enumeration not supported on this platform")

// Handle identifies a top-level window.
type Handle uintptr

// System is the slice of the OS window manager the locator needs.
type System interface {
	// EnumWindows calls visit for every top-level window until visit
	// returns false.
	EnumWindows(visit func(hwnd Handle) bool) error
	ProcessID(hwnd Handle) (uint32, error)
	// OpenProcess opens pid with query-only rights.
	OpenProcess(pid uint32) (Process, error)
}

// Process is an open, query-only process handle.
type Process interface {
	ImagePath() (string, error)
	Close() error
}

// Locate returns the first top-level window whose owning process image path
// ends with exe. The comparison is case-sensitive and suffix-only, so
// "Spotify.exe" also matches "NotSpotify.exe".
func Locate(sys System, exe string) (Handle, bool) {
	var (
		found Handle
		path  string
		ok    bool
	)

	err := sys.EnumWindows(func(hwnd Handle) bool {
		p, matched := matchWindow(sys, hwnd, exe)
		if !matched {
			return true
		}
		found, path, ok = hwnd, p, true
		return false
	})
	if ok {
		log.Printf("Locator: Found %s (hwnd 0x%X)", path, uintptr(found))
		return found, true
	}
	if err != nil {
		log.Printf("Locator: Window enumeration failed: %v", err)
	}
	return 0, false
}

// matchWindow reports whether hwnd belongs to exe. Any failure along the way
// means "not this window".
func matchWindow(sys System, hwnd Handle, exe string) (string, bool) {
	pid, err := sys.ProcessID(hwnd)
	if err != nil || pid == 0 {
		return "", false
	}

	proc, err := sys.OpenProcess(pid)
	if err != nil {
		return "", false
	}
	defer proc.Close()

	path, err := proc.ImagePath()
	if err != nil || len(path) == 0 {
		return "", false
	}
	return path, strings.HasSuffix(path, exe)
}
