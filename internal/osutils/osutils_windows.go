//go:build windows

// Package osutils holds small process-level OS queries.
package osutils

import "golang.org/x/sys/windows"

// IsElevated reports whether the process runs with an elevated token.
// Low-level hooks of a non-elevated process do not see input aimed at
// elevated windows, and OpenProcess on elevated processes is refused.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
