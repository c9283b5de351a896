// Package config holds the read-only configuration tables the cleanup
// operations walk: browser profile paths, service credential locations,
// and the failure-log destination. Tables are built once at process start
// and never mutated at runtime.
package config

import (
	"fmt"
	"os"

	"github.com/JonathanEhlinger/superflush/internal/platform"
)

// DefaultLogFile is the append-only failure log, created in the process's
// working directory on first failure.
const DefaultLogFile = "superflush.log"

// Config is the immutable configuration snapshot passed into every
// operation.
type Config struct {
	Kind     platform.Kind
	Browsers []BrowserProfile
	Services []ServiceCredential
	LogFile  string
}

// Load builds the configuration for the detected platform, applying the
// optional overrides file at overridesPath ("" means the default lookup;
// a missing file is not an error).
func Load(kind platform.Kind, overridesPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	ov, err := LoadOverrides(overridesPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Kind:     kind,
		Browsers: DefaultBrowserProfiles(kind, home),
		Services: DefaultServiceCredentials(kind, home),
		LogFile:  DefaultLogFile,
	}
	ov.apply(cfg)
	return cfg, nil
}
