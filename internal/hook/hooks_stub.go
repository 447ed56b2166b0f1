//go:build !windows

package hook

// Hooks is a stub for non-Windows platforms
type Hooks struct{}

// Install always fails on this platform
func Install(mouse Handler[MouseEvent], keyboard Handler[KeyEvent]) (*Hooks, error) {
	return nil, ErrUnsupportedPlatform
}

// Run returns immediately (stub)
func (h *Hooks) Run() error {
	return ErrUnsupportedPlatform
}

// Quit does nothing (stub)
func (h *Hooks) Quit() {}
