package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/dupemark/dupemark/pkg/config"
	"github.com/dupemark/dupemark/pkg/logger"
	"github.com/dupemark/dupemark/pkg/runtime"
)

var (
	// Global flags
	FlagLogLevel     = 0
	FlagConfigFile   = "config.yaml"
	FlagConfigFolder = config.GetDefaultConfigDirectory("dupemark", "config.yaml")
	FlagLogFile      = "activity.log"

	FlagDryRun bool

	// Global vars
	log         *logrus.Entry
	initialized bool
)

// initCore loads configuration and initializes logging. Safe to call once
// per process, guarded by the initialized flag in each command.
func initCore(showAppInfo bool) {
	// init config
	configFilePath := filepath.Join(FlagConfigFolder, FlagConfigFile)
	if err := config.Init(configFilePath); err != nil {
		fmt.Printf("Failed initializing config: %v\n", err)
		os.Exit(1)
	}

	// init logging
	logFilePath := filepath.Join(FlagConfigFolder, FlagLogFile)
	if err := logger.Init(FlagLogLevel, logFilePath); err != nil {
		fmt.Printf("Failed initializing logger: %v\n", err)
		os.Exit(1)
	}

	log = logger.GetLogger("app")

	// show app info
	if showAppInfo {
		showUsing()
	}
}

func showUsing() {
	log.Infof("Using VERSION = %s (%s@%s)", runtime.Version, runtime.GitCommit, runtime.Timestamp)
	log.Infof("Using CONFIG  = %q", filepath.Join(FlagConfigFolder, FlagConfigFile))
	log.Infof("Using LOG     = %q", filepath.Join(FlagConfigFolder, FlagLogFile))
}
