//go:build !windows

package window

type stubSystem struct{}

// NewSystem returns a stub whose enumeration always fails
func NewSystem() System {
	return stubSystem{}
}

func (stubSystem) EnumWindows(visit func(hwnd Handle) bool) error {
	return ErrUnsupportedPlatform
}

func (stubSystem) ProcessID(hwnd Handle) (uint32, error) {
	return 0, ErrUnsupportedPlatform
}

func (stubSystem) OpenProcess(pid uint32) (Process, error) {
	return nil, ErrUnsupportedPlatform
}
