package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/spf13/viper"
)

// Overrides are the few knobs the optional config file exposes. The
// tables themselves stay fixed; overrides can only disable entries or
// move the failure log.
type Overrides struct {
	LogFile      string   `mapstructure:"log_file"`
	SkipBrowsers []string `mapstructure:"skip_browsers"`
	SkipServices []string `mapstructure:"skip_services"`
}

// LoadOverrides reads the overrides file. With path == "" the default
// lookup applies: superflush.yaml in the working directory or under the
// user config dir. A missing file yields zero overrides, not an error.
func LoadOverrides(path string) (Overrides, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("superflush")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/superflush")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Overrides{}, nil
		}
		// An explicit path that doesn't exist is also fine; a broken
		// file is not.
		if path != "" && errors.Is(err, fs.ErrNotExist) {
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf("read overrides file: %w", err)
	}

	var ov Overrides
	if err := v.Unmarshal(&ov); err != nil {
		return Overrides{}, fmt.Errorf("parse overrides file: %w", err)
	}
	return ov, nil
}

// apply filters disabled entries out of cfg and redirects the log file.
func (ov Overrides) apply(cfg *Config) {
	if ov.LogFile != "" {
		cfg.LogFile = ov.LogFile
	}
	if len(ov.SkipBrowsers) > 0 {
		cfg.Browsers = slices.DeleteFunc(cfg.Browsers, func(b BrowserProfile) bool {
			return slices.Contains(ov.SkipBrowsers, b.Name)
		})
	}
	if len(ov.SkipServices) > 0 {
		cfg.Services = slices.DeleteFunc(cfg.Services, func(s ServiceCredential) bool {
			return slices.Contains(ov.SkipServices, s.Name)
		})
	}
}
