package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanEhlinger/superflush/internal/platform"
)

func TestDefaultBrowserProfilesWindows(t *testing.T) {
	home := filepath.Join("C:", "Users", "test")
	profiles := DefaultBrowserProfiles(platform.Windows, home)
	require.Len(t, profiles, 3)

	byName := profilesByName(profiles)
	assert.Equal(t, filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default"),
		byName["chrome"].Path)
	assert.Equal(t, filepath.Join(home, "AppData", "Local", "Microsoft", "Edge", "User Data", "Default"),
		byName["edge"].Path)
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"),
		byName["firefox"].Path)
}

func TestDefaultBrowserProfilesLinuxAndFallback(t *testing.T) {
	for _, kind := range []platform.Kind{platform.Linux, platform.Other} {
		profiles := DefaultBrowserProfiles(kind, "/home/test")
		require.Len(t, profiles, 3)

		byName := profilesByName(profiles)
		assert.Equal(t, "/home/test/.config/google-chrome/Default", byName["chrome"].Path)
		assert.Equal(t, "/home/test/.mozilla/firefox", byName["firefox"].Path)
	}
}

func TestDefaultBrowserProfilesDarwin(t *testing.T) {
	profiles := DefaultBrowserProfiles(platform.Darwin, "/Users/test")
	byName := profilesByName(profiles)
	assert.Equal(t, "/Users/test/Library/Application Support/Google/Chrome/Default",
		byName["chrome"].Path)
	assert.Equal(t, "/Users/test/Library/Application Support/Firefox/Profiles",
		byName["firefox"].Path)
}

func TestOnlyFirefoxSweepsProfiles(t *testing.T) {
	for _, kind := range []platform.Kind{platform.Windows, platform.Linux, platform.Darwin} {
		for _, p := range DefaultBrowserProfiles(kind, "/home/test") {
			assert.Equal(t, p.Name == "firefox", p.SweepProfiles,
				"kind %s browser %s", kind, p.Name)
		}
	}
}

func TestTablesReturnFreshCopies(t *testing.T) {
	first := DefaultBrowserProfiles(platform.Linux, "/home/test")
	first[0].Name = "mutated"
	first[0].Path = "/tmp/elsewhere"

	second := DefaultBrowserProfiles(platform.Linux, "/home/test")
	assert.Equal(t, "chrome", second[0].Name)
	assert.NotEqual(t, "/tmp/elsewhere", second[0].Path)
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, []string{"History", "Cookies", "Login Data", "Cache"}, ArtifactNames())

	// Callers cannot poison the table.
	ArtifactNames()[0] = "mutated"
	assert.Equal(t, "History", ArtifactNames()[0])
}

func TestDefaultServiceCredentials(t *testing.T) {
	svcs := DefaultServiceCredentials(platform.Windows, `C:\Users\test`)
	require.Len(t, svcs, 1)

	gh := svcs[0]
	assert.Equal(t, "GitHub Desktop", gh.Name)
	assert.Equal(t, filepath.Join(`C:\Users\test`, "AppData", "Roaming", "GitHub Desktop", "git-credential-desktop.json"),
		gh.CredentialFile)
	assert.Equal(t, []string{"git:", "github", "chrome", "edge"}, gh.StoreTargets)

	linux := DefaultServiceCredentials(platform.Linux, "/home/test")[0]
	assert.Equal(t, "/home/test/.config/GitHub Desktop/git-credential-desktop.json", linux.CredentialFile)
	// Store targets stay configured everywhere; the revoker decides
	// whether to use them.
	assert.NotEmpty(t, linux.StoreTargets)
}

func profilesByName(profiles []BrowserProfile) map[string]BrowserProfile {
	m := make(map[string]BrowserProfile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return m
}
