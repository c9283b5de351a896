// Package flush clears the operating system's DNS resolver cache by
// dispatching to the OS-appropriate flush command.
package flush

import (
	"github.com/JonathanEhlinger/superflush/internal/core"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
	"github.com/JonathanEhlinger/superflush/internal/platform"
)

// SuccessMessage is the fixed confirmation returned on a successful flush.
const SuccessMessage = "DNS cache flushed successfully."

// Deps are the injected collaborators of the flusher. Elevated is only
// consulted on Windows.
type Deps struct {
	Kind     platform.Kind
	Elevated func() bool
	Runner   core.Runner
	Log      oplog.Logger
}

// ─── Strategies ──────────────────────────────────────────────────────────────

// strategy flushes the resolver cache on one platform family.
type strategy interface {
	flush(d Deps) error
}

// strategies keys each supported platform to its flush procedure. Kinds
// absent from the table fail with UnsupportedPlatform.
var strategies = map[platform.Kind]strategy{
	platform.Windows: windowsFlush{},
	platform.Linux:   linuxFlush{},
	platform.Darwin:  darwinFlush{},
}

type windowsFlush struct{}

func (windowsFlush) flush(d Deps) error {
	// Fail before touching the command: ipconfig /flushdns silently
	// needs an elevated token.
	if d.Elevated == nil || !d.Elevated() {
		return core.Errorf(core.PermissionDenied,
			"administrator privileges required to flush DNS on Windows")
	}
	return run(d, "ipconfig", "/flushdns")
}

type linuxFlush struct{}

func (linuxFlush) flush(d Deps) error {
	return run(d, "systemd-resolve", "--flush-caches")
}

type darwinFlush struct{}

func (darwinFlush) flush(d Deps) error {
	if err := run(d, "dscacheutil", "-flushcache"); err != nil {
		return err
	}
	// mDNSResponder reloads its cache on SIGHUP.
	return run(d, "killall", "-HUP", "mDNSResponder")
}

// run invokes one external command, classifying a non-success exit.
func run(d Deps, name string, args ...string) error {
	if err := d.Runner.Run(name, args...); err != nil {
		return core.WrapError(core.ExternalCommandFailed,
			core.CommandLine(name, args...), err)
	}
	return nil
}

// ─── Operation ───────────────────────────────────────────────────────────────

// Flush clears the DNS cache for the detected platform and reports a
// structured result. Failures are appended to the log before returning;
// the operation is never retried automatically.
func Flush(d Deps) core.OperationResult {
	s, ok := strategies[d.Kind]
	if !ok {
		err := core.Errorf(core.UnsupportedPlatform, "unsupported OS: %s", d.Kind)
		d.Log.Logf("DNS flush error: %v", err)
		return core.Failure(err)
	}

	if err := s.flush(d); err != nil {
		d.Log.Logf("DNS flush error: %v", err)
		return core.Failure(err)
	}
	return core.Success(SuccessMessage)
}
