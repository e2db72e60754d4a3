package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

/* Structs */

type Configuration struct {
	Scan          ScanConfig
	Notifications NotificationsConfig
}

type ScanConfig struct {
	// Regex patterns; matching paths are excluded from discovery.
	IgnorePatterns []string `koanf:"ignore_patterns"`
	// Expressions evaluated per file; a match excludes the file from discovery.
	SkipFilters []string `koanf:"skip_filters"`
}

/* Vars */

var (
	Config *Configuration
)

/* Public */

// Init loads configuration from the given YAML file into the global Config.
// A missing config file is not an error; defaults apply.
func Init(configFilePath string) error {
	Config = &Configuration{}

	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return nil
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "failed loading config file: %q", configFilePath)
	}

	if err := k.Unmarshal("", Config); err != nil {
		return errors.Wrap(err, "failed unmarshalling config")
	}

	return nil
}

// GetDefaultConfigDirectory returns the default config directory for the app,
// preferring an existing config beside the executable.
func GetDefaultConfigDirectory(appName string, configFile string) string {
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		if _, err := os.Stat(filepath.Join(exeDir, configFile)); err == nil {
			return exeDir
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", appName)
	}

	return "."
}
