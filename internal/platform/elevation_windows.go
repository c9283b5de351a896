//go:build windows

package platform

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token carries administrator
// elevation. Any failure to query the token reads as not elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
