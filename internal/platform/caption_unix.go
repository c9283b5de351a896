//go:build !windows

package platform

// osCaption is Windows-only; elsewhere the gopsutil platform string is
// already the best available name.
func osCaption() string {
	return ""
}
