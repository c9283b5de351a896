// Package signout revokes cached desktop-service credentials: known
// credential files are deleted, and on Windows the matching generic
// entries are removed from the Credential Manager via cmdkey.
package signout

import (
	"fmt"
	"os"

	"github.com/JonathanEhlinger/superflush/internal/config"
	"github.com/JonathanEhlinger/superflush/internal/core"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
	"github.com/JonathanEhlinger/superflush/internal/platform"
)

// Revoker deletes cached service credentials. New services are added to
// the configuration table, never by branching here.
type Revoker struct {
	Services []config.ServiceCredential
	Kind     platform.Kind
	Runner   core.Runner
	Log      oplog.Logger

	// Remove defaults to os.Remove; tests inject failures here.
	Remove func(path string) error
}

func (r *Revoker) remove(path string) error {
	if r.Remove != nil {
		return r.Remove(path)
	}
	return os.Remove(path)
}

// SignOut revokes credentials for every configured service and returns
// per-service failure descriptions; an empty slice is full success.
func (r *Revoker) SignOut() []string {
	var errs []string

	// Step 1: delete credential files that exist on disk.
	for _, svc := range r.Services {
		if svc.CredentialFile == "" {
			continue
		}
		if _, err := os.Stat(svc.CredentialFile); err != nil {
			continue
		}
		if err := r.remove(svc.CredentialFile); err != nil {
			msg := fmt.Sprintf("%s: %v", svc.Name, err)
			r.Log.Logf("%s", msg)
			errs = append(errs, msg)
		}
	}

	// Step 2: sweep the Windows Credential Manager. Skipped entirely
	// elsewhere; there is nothing equivalent to call.
	if r.Kind != platform.Windows {
		return errs
	}

	for _, svc := range r.Services {
		for _, target := range svc.StoreTargets {
			err := r.Runner.Run("cmdkey", "/delete:"+target)
			if err == nil || core.IsExitError(err) {
				// cmdkey exits nonzero when the credential does not
				// exist, which is routine here, not a failure.
				continue
			}
			msg := fmt.Sprintf("Windows Credentials: %v", err)
			r.Log.Logf("%s", msg)
			errs = append(errs, msg)
		}
	}

	return errs
}
