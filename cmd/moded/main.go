// Package main is the entry point for the moded editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modedev/moded/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logPath, logLevel := parseFlags()

	logger := app.NullLogger
	if logPath != "" {
		l, err := app.FileLogger(logPath, app.ParseLogLevel(logLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		logger = l
	}
	opts.Logger = logger

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, string, string) {
	var opts app.Options
	var logPath, logLevel string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&logPath, "log", "", "Write logs to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "moded - modal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: moded [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("moded %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts, logPath, logLevel
}

// defaultConfigPath resolves ~/.config/moded/config.toml, or empty
// when no home directory is available.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "moded", "config.toml")
}
