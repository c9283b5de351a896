//go:build windows

package platform

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

type win32OperatingSystem struct {
	Caption string
}

// osCaption returns the marketing name of the installed Windows edition
// ("Microsoft Windows 11 Pro") with the build number appended. Empty on
// any WMI failure; callers fall back to the gopsutil platform string.
func osCaption() string {
	var rows []win32OperatingSystem
	if err := wmi.Query("SELECT Caption FROM Win32_OperatingSystem", &rows); err != nil || len(rows) == 0 {
		return ""
	}
	caption := strings.TrimSpace(rows[0].Caption)
	if caption == "" {
		return ""
	}

	// RtlGetNtVersionNumbers works on all Windows versions without
	// manifest requirements; the build comes back with high bits set.
	_, _, build := windows.RtlGetNtVersionNumbers()
	build &= 0xFFFF
	return fmt.Sprintf("%s (Build %d)", caption, build)
}
