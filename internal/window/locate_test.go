package window

import (
	"errors"
	"testing"
)

type fakeWindow struct {
	hwnd    Handle
	pid     uint32
	path    string
	openErr error
	pathErr error
}

// fakeSystem serves a fixed window list and counts what the locator touches.
type fakeSystem struct {
	windows []fakeWindow
	enumErr error

	visits int
	opens  int
	closes int
}

type fakeProcess struct {
	sys *fakeSystem
	w   fakeWindow
}

func (p *fakeProcess) ImagePath() (string, error) {
	return p.w.path, p.w.pathErr
}

func (p *fakeProcess) Close() error {
	p.sys.closes++
	return nil
}

func (s *fakeSystem) EnumWindows(visit func(hwnd Handle) bool) error {
	if s.enumErr != nil {
		return s.enumErr
	}
	for _, w := range s.windows {
		s.visits++
		if !visit(w.hwnd) {
			return nil
		}
	}
	return nil
}

func (s *fakeSystem) lookup(hwnd Handle) (fakeWindow, bool) {
	for _, w := range s.windows {
		if w.hwnd == hwnd {
			return w, true
		}
	}
	return fakeWindow{}, false
}

func (s *fakeSystem) ProcessID(hwnd Handle) (uint32, error) {
	w, ok := s.lookup(hwnd)
	if !ok {
		return 0, errors.New("no such window")
	}
	return w.pid, nil
}

func (s *fakeSystem) OpenProcess(pid uint32) (Process, error) {
	for _, w := range s.windows {
		if w.pid != pid {
			continue
		}
		if w.openErr != nil {
			return nil, w.openErr
		}
		s.opens++
		return &fakeProcess{sys: s, w: w}, nil
	}
	return nil, errors.New("no such process")
}

func TestLocateStopsAtFirstMatch(t *testing.T) {
	sys := &fakeSystem{windows: []fakeWindow{
		{hwnd: 0x10, pid: 1, path: `C:\Windows\explorer.exe`},
		{hwnd: 0x20, pid: 2, path: `C:\Program Files\Git\bash.exe`},
		{hwnd: 0x30, pid: 3, path: `C:\Users\me\AppData\Roaming\Spotify\Spotify.exe`},
		{hwnd: 0x40, pid: 4, path: `C:\Windows\notepad.exe`},
		{hwnd: 0x50, pid: 5, path: `C:\Windows\System32\cmd.exe`},
	}}

	hwnd, ok := Locate(sys, "Spotify.exe")
	if !ok {
		t.Fatal("expected Spotify window to be found")
	}
	if hwnd != 0x30 {
		t.Errorf("Expected hwnd 0x30, got 0x%X", uintptr(hwnd))
	}
	if sys.visits != 3 {
		t.Errorf("Expected enumeration to stop after 3 windows, visited %d", sys.visits)
	}
	if sys.opens != sys.closes {
		t.Errorf("Opened %d processes but closed %d", sys.opens, sys.closes)
	}
}

func TestLocateNotFound(t *testing.T) {
	sys := &fakeSystem{windows: []fakeWindow{
		{hwnd: 0x10, pid: 1, path: `C:\Windows\explorer.exe`},
		{hwnd: 0x20, pid: 2, path: `C:\Windows\notepad.exe`},
	}}

	if hwnd, ok := Locate(sys, "Spotify.exe"); ok {
		t.Errorf("Expected not found, got 0x%X", uintptr(hwnd))
	}
	if sys.visits != 2 {
		t.Errorf("Expected all 2 windows visited, got %d", sys.visits)
	}
	if sys.opens != 2 || sys.closes != 2 {
		t.Errorf("Expected 2 opens and 2 closes, got %d/%d", sys.opens, sys.closes)
	}
}

func TestLocateSkipsUnreadableProcesses(t *testing.T) {
	sys := &fakeSystem{windows: []fakeWindow{
		{hwnd: 0x10, pid: 1, openErr: errors.New("access denied")},
		{hwnd: 0x20, pid: 2, pathErr: errors.New("partial copy")},
		{hwnd: 0x30, pid: 3, path: ""},
		{hwnd: 0x40, pid: 0, path: `C:\idle`},
		{hwnd: 0x50, pid: 5, path: `D:\Apps\Spotify.exe`},
	}}

	hwnd, ok := Locate(sys, "Spotify.exe")
	if !ok || hwnd != 0x50 {
		t.Fatalf("Expected 0x50, got 0x%X (found=%v)", uintptr(hwnd), ok)
	}
	// pid 1 fails to open, pid 0 is never opened.
	if sys.opens != 3 {
		t.Errorf("Expected 3 opens, got %d", sys.opens)
	}
	if sys.opens != sys.closes {
		t.Errorf("Opened %d processes but closed %d", sys.opens, sys.closes)
	}
}

func TestLocateIsCaseSensitive(t *testing.T) {
	sys := &fakeSystem{windows: []fakeWindow{
		{hwnd: 0x10, pid: 1, path: `C:\Apps\spotify.exe`},
		{hwnd: 0x20, pid: 2, path: `C:\Apps\SPOTIFY.EXE`},
	}}

	if _, ok := Locate(sys, "Spotify.exe"); ok {
		t.Error("Expected case-sensitive comparison to reject lowercase names")
	}
}

func TestLocateEnumerationFailure(t *testing.T) {
	sys := &fakeSystem{enumErr: errors.New("desktop unavailable")}

	if _, ok := Locate(sys, "Spotify.exe"); ok {
		t.Error("Expected not found when enumeration fails")
	}
}
