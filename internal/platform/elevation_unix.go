//go:build !windows

package platform

import "os"

// IsElevated reports whether the effective user is the superuser.
// Platforms without user ids report -1, which reads as not elevated.
func IsElevated() bool {
	return os.Geteuid() == 0
}
