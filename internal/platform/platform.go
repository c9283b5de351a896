package platform

import "runtime"

// Kind identifies the operating system family an operation dispatches on.
type Kind int

const (
	// Other covers every OS without a cleanup strategy (BSDs, plan9, ...).
	Other Kind = iota
	Windows
	Linux
	Darwin
)

// String returns the display name of the platform kind.
func (k Kind) String() string {
	switch k {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case Darwin:
		return "macos"
	default:
		return "other"
	}
}

// Detect returns the kind of the OS the process is running on.
func Detect() Kind {
	return kindFor(runtime.GOOS)
}

// kindFor maps a GOOS value to a Kind. Split out so tests can exercise
// the mapping without cross-compiling.
func kindFor(goos string) Kind {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Other
	}
}
