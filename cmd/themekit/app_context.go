package main

import (
	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/themekit/internal/app/theme"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
	Themes *apptheme.Service
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Check the config file path and its YAML syntax")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human && !flags.jsonLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("create logger", level, err, "Use one of trace, debug, info, warn or error")
	}

	themes, err := apptheme.NewService(cfg, log)
	if err != nil {
		return nil, newCommandError("prepare theme service", cfg.Cache.Path, err, "Check that the cache path is writable or remove cache.path from the config")
	}

	return &AppContext{Config: cfg, Log: log, Themes: themes}, nil
}
