package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanEhlinger/superflush/internal/config"
	"github.com/JonathanEhlinger/superflush/internal/core"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
	"github.com/JonathanEhlinger/superflush/internal/platform"
)

type fakeRunner struct {
	calls []string
}

func (r *fakeRunner) Run(name string, args ...string) error {
	r.calls = append(r.calls, core.CommandLine(name, args...))
	return nil
}

// testEngine builds an engine over fakes and a real temp filesystem.
func testEngine(t *testing.T, kind platform.Kind, elevated bool) (*Engine, *fakeRunner, string) {
	t.Helper()

	chrome := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(chrome, "History"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(chrome, "Cookies"), []byte("x"), 0o644))

	r := &fakeRunner{}
	eng := &Engine{
		kind:     kind,
		elevated: func() bool { return elevated },
		runner:   r,
		log:      oplog.Nop{},
		browsers: []config.BrowserProfile{
			{Name: "chrome", Path: chrome},
			{Name: "ghostbrowser", Path: filepath.Join(t.TempDir(), "missing")},
		},
		services: []config.ServiceCredential{
			{Name: "GitHub Desktop", StoreTargets: []string{"git:", "github"}},
		},
	}
	return eng, r, chrome
}

func TestRunAllOnLinux(t *testing.T) {
	eng, r, chrome := testEngine(t, platform.Linux, false)

	rep := eng.RunAll()

	assert.True(t, rep.Clean())
	assert.True(t, rep.Flush.Succeeded)
	assert.Empty(t, rep.BrowserErrors)
	assert.Empty(t, rep.ServiceErrors)

	// DNS flushed, artifacts gone, no cmdkey off Windows.
	assert.Equal(t, []string{"systemd-resolve --flush-caches"}, r.calls)
	assert.NoFileExists(t, filepath.Join(chrome, "History"))
	assert.NoFileExists(t, filepath.Join(chrome, "Cookies"))
}

func TestRunAllContinuesPastFlushFailure(t *testing.T) {
	eng, r, chrome := testEngine(t, platform.Windows, false)

	rep := eng.RunAll()

	assert.False(t, rep.Clean())
	assert.Equal(t, core.PermissionDenied, rep.Flush.FailKind)
	// Later operations still ran: browser data gone, store swept.
	assert.NoFileExists(t, filepath.Join(chrome, "History"))
	assert.Equal(t, []string{"cmdkey /delete:git:", "cmdkey /delete:github"}, r.calls)
}

func TestReportLines(t *testing.T) {
	rep := Report{
		Flush:         core.Success("DNS cache flushed successfully."),
		BrowserErrors: []string{"chrome: locked"},
		ServiceErrors: []string{"GitHub Desktop: denied"},
	}

	assert.False(t, rep.Clean())
	assert.Equal(t, []string{
		"DNS cache flushed successfully.",
		"chrome: locked",
		"GitHub Desktop: denied",
	}, rep.Lines())
}

func TestNewUsesConfigTables(t *testing.T) {
	cfg := &config.Config{
		Kind:     platform.Linux,
		Browsers: config.DefaultBrowserProfiles(platform.Linux, "/home/test"),
		Services: config.DefaultServiceCredentials(platform.Linux, "/home/test"),
		LogFile:  config.DefaultLogFile,
	}

	eng := New(cfg, oplog.Nop{})
	assert.Equal(t, platform.Linux, eng.Kind())
	assert.Len(t, eng.browsers, 3)
	assert.Len(t, eng.services, 1)
}
