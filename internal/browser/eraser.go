// Package browser removes locally stored history, cookie, login, and
// cache artifacts from known browser profiles. Deletion is best-effort:
// each failure is recorded and processing moves on, it never aborts.
package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonathanEhlinger/superflush/internal/config"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
)

// TreePolicy is the error policy for whole-directory removals.
type TreePolicy int

const (
	// SuppressSubtreeErrors removes what it can and swallows failures
	// inside the subtree; stray locked files must not block cleanup.
	SuppressSubtreeErrors TreePolicy = iota

	// SurfaceSubtreeErrors reports directory-removal failures like any
	// other. Used by tests asserting on the policy split.
	SurfaceSubtreeErrors
)

// Eraser walks the browser table and deletes known artifacts. The zero
// value is not usable; fill Profiles and Log.
type Eraser struct {
	Profiles []config.BrowserProfile
	Log      oplog.Logger
	Policy   TreePolicy

	// Remove and RemoveAll default to the os functions; tests inject
	// failures here instead of fighting filesystem permissions.
	Remove    func(path string) error
	RemoveAll func(path string) error
}

func (e *Eraser) remove(path string) error {
	if e.Remove != nil {
		return e.Remove(path)
	}
	return os.Remove(path)
}

func (e *Eraser) removeAll(path string) error {
	if e.RemoveAll != nil {
		return e.RemoveAll(path)
	}
	return os.RemoveAll(path)
}

// ─── Clear ───────────────────────────────────────────────────────────────────

// Clear deletes every existing artifact under every existing profile and
// returns per-item failure descriptions; an empty slice is full success.
// Profiles whose path does not exist are silently skipped, so a second
// run right after a clean first one reports nothing.
func (e *Eraser) Clear() []string {
	var errs []string

	for _, p := range e.Profiles {
		if _, err := os.Stat(p.Path); err != nil {
			continue // browser not installed on this machine
		}

		for _, name := range config.ArtifactNames() {
			target := filepath.Join(p.Path, name)
			info, err := os.Stat(target)
			if err != nil {
				continue
			}
			if info.IsDir() {
				e.removeTree(p.Name, target, &errs)
			} else if err := e.remove(target); err != nil {
				e.fail(p.Name, err, &errs)
			}
		}

		if p.SweepProfiles {
			// Every immediate child of the root is a distinct user
			// profile folder, removed wholesale.
			entries, err := os.ReadDir(p.Path)
			if err != nil {
				e.fail(p.Name, err, &errs)
				continue
			}
			for _, entry := range entries {
				e.removeTree(p.Name, filepath.Join(p.Path, entry.Name()), &errs)
			}
		}
	}

	return errs
}

// removeTree removes a directory and its contents under the configured
// policy.
func (e *Eraser) removeTree(browser, path string, errs *[]string) {
	err := e.removeAll(path)
	if err != nil && e.Policy == SurfaceSubtreeErrors {
		e.fail(browser, err, errs)
	}
}

// fail formats, logs, and collects one per-item failure.
func (e *Eraser) fail(browser string, err error, errs *[]string) {
	msg := fmt.Sprintf("%s: %v", browser, err)
	e.Log.Logf("%s", msg)
	*errs = append(*errs, msg)
}
