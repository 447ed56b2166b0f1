// Package autostart registers spotkeys to start on login.
package autostart

import "errors"

// ErrUnsupportedPlatform is returned when login items cannot be managed
var ErrUnsupportedPlatform = errors.New("auto-start not supported on this platform")

const valueName = "spotkeys"

// Sync enables or disables auto-start to match want, doing nothing when the
// current state already matches.
func Sync(want bool) error {
	if IsEnabled() == want {
		return nil
	}
	if want {
		return Enable()
	}
	return Disable()
}
