// ABOUTME: Shared command setup: config, diagnostic logger and store path
// ABOUTME: Every subcommand builds its store through here
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"

	"github.com/harper/diary/internal/config"
	"github.com/harper/diary/internal/journal"
	"github.com/harper/diary/internal/logging"
)

type environment struct {
	cfg      *config.Config
	log      zerolog.Logger
	logFile  io.Closer
	dataPath string
}

func loadEnvironment() (*environment, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	cfg, err := config.Resolve(configPath, cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var dataPath string
	if dataFile != "" {
		dataPath, err = homedir.Expand(dataFile)
	} else {
		dataPath, err = cfg.DataPath()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve diary file: %w", err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log file: %w", err)
	}
	log, logFile, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	log.Debug().
		Str("config", cfg.Source).
		Str("data", dataPath).
		Msg("environment ready")

	return &environment{
		cfg:      cfg,
		log:      log,
		logFile:  logFile,
		dataPath: dataPath,
	}, nil
}

// openStore loads the diary. Non-interactive commands refuse to continue on a
// load failure so a later save cannot overwrite the unread file.
func (e *environment) openStore() (*journal.Store, error) {
	store, err := journal.Open(e.dataPath, journal.WithLogger(e.log))
	if err != nil {
		e.log.Error().Err(err).Str("path", e.dataPath).Msg("load failed")
		return nil, fmt.Errorf("failed to load diary: %w", err)
	}
	return store, nil
}

func (e *environment) Close() {
	if err := e.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", err)
	}
}
