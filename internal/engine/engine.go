// Package engine is the caller-facing surface of the cleanup core. The
// CLI and the interactive menu consume these four operations and render
// the results; they own no business logic of their own.
package engine

import (
	"github.com/JonathanEhlinger/superflush/internal/browser"
	"github.com/JonathanEhlinger/superflush/internal/config"
	"github.com/JonathanEhlinger/superflush/internal/core"
	"github.com/JonathanEhlinger/superflush/internal/flush"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
	"github.com/JonathanEhlinger/superflush/internal/platform"
	"github.com/JonathanEhlinger/superflush/internal/signout"
)

// Engine binds the static configuration tables to the shared log sink
// and exec runner. Operations share no other state, so invoking
// different operations concurrently is safe.
type Engine struct {
	kind     platform.Kind
	elevated func() bool
	runner   core.Runner
	log      oplog.Logger
	browsers []config.BrowserProfile
	services []config.ServiceCredential
}

// New builds an engine over the real platform facilities.
func New(cfg *config.Config, log oplog.Logger) *Engine {
	return &Engine{
		kind:     cfg.Kind,
		elevated: platform.IsElevated,
		runner:   core.ExecRunner{},
		log:      log,
		browsers: cfg.Browsers,
		services: cfg.Services,
	}
}

// Kind returns the platform the engine dispatches on.
func (e *Engine) Kind() platform.Kind { return e.kind }

// FlushDNS clears the OS resolver cache.
func (e *Engine) FlushDNS() core.OperationResult {
	return flush.Flush(flush.Deps{
		Kind:     e.kind,
		Elevated: e.elevated,
		Runner:   e.runner,
		Log:      e.log,
	})
}

// ClearBrowserData deletes known browser artifacts and returns per-item
// failures.
func (e *Engine) ClearBrowserData() []string {
	er := browser.Eraser{Profiles: e.browsers, Log: e.log}
	return er.Clear()
}

// PreviewBrowserData reports what ClearBrowserData would delete.
func (e *Engine) PreviewBrowserData() []browser.Deletion {
	er := browser.Eraser{Profiles: e.browsers, Log: e.log}
	return er.Preview()
}

// SignOutServices revokes cached service credentials and returns
// per-service failures.
func (e *Engine) SignOutServices() []string {
	rv := signout.Revoker{
		Services: e.services,
		Kind:     e.kind,
		Runner:   e.runner,
		Log:      e.log,
	}
	return rv.SignOut()
}

// ─── Run all ─────────────────────────────────────────────────────────────────

// Report is the combined outcome of running all three operations in
// sequence.
type Report struct {
	Flush         core.OperationResult
	BrowserErrors []string
	ServiceErrors []string
}

// Clean reports whether every operation fully succeeded.
func (r Report) Clean() bool {
	return r.Flush.Succeeded && len(r.BrowserErrors) == 0 && len(r.ServiceErrors) == 0
}

// Lines flattens the report into the textual form callers render: the
// flush message first, then every per-item error.
func (r Report) Lines() []string {
	lines := []string{r.Flush.Message}
	lines = append(lines, r.BrowserErrors...)
	lines = append(lines, r.ServiceErrors...)
	return lines
}

// RunAll executes flush, browser erase, and service sign-out in
// sequence. Operations stay independent; an early failure never stops
// the later ones.
func (e *Engine) RunAll() Report {
	return Report{
		Flush:         e.FlushDNS(),
		BrowserErrors: e.ClearBrowserData(),
		ServiceErrors: e.SignOutServices(),
	}
}
