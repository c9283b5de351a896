package config

import (
	"path/filepath"

	"github.com/JonathanEhlinger/superflush/internal/platform"
)

// ─── Types ───────────────────────────────────────────────────────────────────

// BrowserProfile maps a browser name to its default profile directory.
// The path may not exist on a given machine; absence is not an error.
type BrowserProfile struct {
	// Name is the unique identifier for this browser.
	Name string

	// Path is the profile directory holding the deletable artifacts.
	Path string

	// SweepProfiles marks multi-profile roots (Firefox) where every
	// immediate child directory is a distinct user profile removed
	// wholesale.
	SweepProfiles bool
}

// ServiceCredential describes a desktop service's locally cached auth
// material: an optional credential file plus the generic credential-store
// targets removed on Windows.
type ServiceCredential struct {
	// Name is the display name used as the error prefix.
	Name string

	// CredentialFile is the cached credential file, empty when the
	// service keeps nothing on disk.
	CredentialFile string

	// StoreTargets are Windows Credential Manager generic targets to
	// delete. Ignored on every other platform.
	StoreTargets []string
}

// ArtifactNames are the sub-paths under a browser profile considered
// deletable. Chromium-family browsers keep history and cookies in SQLite
// files under these names.
func ArtifactNames() []string {
	return []string{"History", "Cookies", "Login Data", "Cache"}
}

// ─── Default tables ──────────────────────────────────────────────────────────

// DefaultBrowserProfiles returns the fixed browser table for the given
// platform, rooted at home. A fresh slice is returned on every call so
// callers can never mutate the table for the rest of the process.
func DefaultBrowserProfiles(kind platform.Kind, home string) []BrowserProfile {
	switch kind {
	case platform.Windows:
		local := filepath.Join(home, "AppData", "Local")
		roaming := filepath.Join(home, "AppData", "Roaming")
		return []BrowserProfile{
			{Name: "chrome", Path: filepath.Join(local, "Google", "Chrome", "User Data", "Default")},
			{Name: "edge", Path: filepath.Join(local, "Microsoft", "Edge", "User Data", "Default")},
			{Name: "firefox", Path: filepath.Join(roaming, "Mozilla", "Firefox", "Profiles"), SweepProfiles: true},
		}
	case platform.Darwin:
		appSupport := filepath.Join(home, "Library", "Application Support")
		return []BrowserProfile{
			{Name: "chrome", Path: filepath.Join(appSupport, "Google", "Chrome", "Default")},
			{Name: "edge", Path: filepath.Join(appSupport, "Microsoft Edge", "Default")},
			{Name: "firefox", Path: filepath.Join(appSupport, "Firefox", "Profiles"), SweepProfiles: true},
		}
	default:
		// Linux layout doubles as the fallback for unclassified unixes.
		return []BrowserProfile{
			{Name: "chrome", Path: filepath.Join(home, ".config", "google-chrome", "Default")},
			{Name: "edge", Path: filepath.Join(home, ".config", "microsoft-edge", "Default")},
			{Name: "firefox", Path: filepath.Join(home, ".mozilla", "firefox"), SweepProfiles: true},
		}
	}
}

// DefaultServiceCredentials returns the fixed service table for the given
// platform, rooted at home. Additional services are added here, never by
// branching logic in the revoker.
func DefaultServiceCredentials(kind platform.Kind, home string) []ServiceCredential {
	var desktopDir string
	switch kind {
	case platform.Windows:
		desktopDir = filepath.Join(home, "AppData", "Roaming", "GitHub Desktop")
	case platform.Darwin:
		desktopDir = filepath.Join(home, "Library", "Application Support", "GitHub Desktop")
	default:
		desktopDir = filepath.Join(home, ".config", "GitHub Desktop")
	}

	return []ServiceCredential{
		{
			Name:           "GitHub Desktop",
			CredentialFile: filepath.Join(desktopDir, "git-credential-desktop.json"),
			StoreTargets:   []string{"git:", "github", "chrome", "edge"},
		},
	}
}
