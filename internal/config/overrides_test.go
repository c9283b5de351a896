package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanEhlinger/superflush/internal/platform"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "superflush.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesMissingFileIsZero(t *testing.T) {
	ov, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Overrides{}, ov)
}

func TestLoadOverridesParsesFields(t *testing.T) {
	path := writeOverrides(t, `
log_file: /var/tmp/cleanup.log
skip_browsers:
  - edge
skip_services:
  - GitHub Desktop
`)

	ov, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/cleanup.log", ov.LogFile)
	assert.Equal(t, []string{"edge"}, ov.SkipBrowsers)
	assert.Equal(t, []string{"GitHub Desktop"}, ov.SkipServices)
}

func TestLoadOverridesRejectsBrokenFile(t *testing.T) {
	path := writeOverrides(t, "log_file: [unterminated")
	_, err := LoadOverrides(path)
	assert.Error(t, err)
}

func TestOverridesApply(t *testing.T) {
	cfg := &Config{
		Kind:     platform.Linux,
		Browsers: DefaultBrowserProfiles(platform.Linux, "/home/test"),
		Services: DefaultServiceCredentials(platform.Linux, "/home/test"),
		LogFile:  DefaultLogFile,
	}

	ov := Overrides{
		LogFile:      "custom.log",
		SkipBrowsers: []string{"edge", "chrome"},
		SkipServices: []string{"GitHub Desktop"},
	}
	ov.apply(cfg)

	assert.Equal(t, "custom.log", cfg.LogFile)
	require.Len(t, cfg.Browsers, 1)
	assert.Equal(t, "firefox", cfg.Browsers[0].Name)
	assert.Empty(t, cfg.Services)
}

func TestOverridesApplyZeroValueChangesNothing(t *testing.T) {
	cfg := &Config{
		Kind:     platform.Linux,
		Browsers: DefaultBrowserProfiles(platform.Linux, "/home/test"),
		Services: DefaultServiceCredentials(platform.Linux, "/home/test"),
		LogFile:  DefaultLogFile,
	}

	Overrides{}.apply(cfg)

	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Len(t, cfg.Browsers, 3)
	assert.Len(t, cfg.Services, 1)
}
