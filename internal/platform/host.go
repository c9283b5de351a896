package platform

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo is a human-readable summary of the machine, shown by the
// status command. Purely informational; no operation dispatches on it.
type HostInfo struct {
	OS       string        // e.g. "Windows 11 Pro", "Ubuntu 24.04"
	Hostname string
	Uptime   time.Duration
}

// Describe collects a host summary via gopsutil. On Windows the generic
// platform string is replaced by the WMI OS caption when available.
func Describe() (HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return HostInfo{}, fmt.Errorf("collect host info: %w", err)
	}

	osName := info.Platform
	if info.PlatformVersion != "" {
		osName = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	}
	if caption := osCaption(); caption != "" {
		osName = caption
	}

	return HostInfo{
		OS:       osName,
		Hostname: info.Hostname,
		Uptime:   time.Duration(info.Uptime) * time.Second,
	}, nil
}
