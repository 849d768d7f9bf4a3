package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"myclock/internal/config"
	"myclock/internal/logging"
	"myclock/internal/notify"
	"myclock/internal/sound"
	"myclock/internal/storage"
	"myclock/internal/ticker"
	"myclock/internal/ui"
	"myclock/internal/version"
)

const appID = "io.github.myclock"

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "myclock",
		Short:         "A stopwatch and countdown timer",
		Long:          "My Clock opens a window with a stopwatch on the left and a countdown timer on the right.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $HOME/.myclock/config.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func loadConfig(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerAt(path)
	}
	return config.NewManager()
}

// newLogger 按配置创建日志，配置无效时退回默认日志并记录原因
func newLogger(cfg config.LogConfig) *logging.Logger {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Level,
		Development: cfg.Development,
		OutputPaths: cfg.Output,
	})
	if err == nil {
		return logger
	}

	logger = logging.NewDefault()
	logger.Warn("Invalid log config, using defaults",
		zap.String("level", cfg.Level),
		zap.Strings("output", cfg.Output),
		zap.Error(err),
	)
	return logger
}

func run(configPath string) error {
	mgr, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := mgr.GetConfig()

	logger := newLogger(cfg.Log)
	defer logger.Close()

	myApp := app.NewWithID(appID)

	deps := ui.Dependencies{
		Config:    mgr,
		Scheduler: ticker.NewReal(fyne.Do),
		Logger:    logger.Logger,
	}

	if cfg.History.Enabled {
		db, err := storage.NewDatabase(mgr.HistoryPath())
		if err != nil {
			logger.Warn("History disabled", zap.String("path", mgr.HistoryPath()), zap.Error(err))
		} else {
			defer db.Close()
			deps.Store = db
		}
	}

	chime := sound.NewChime(cfg.Sound.Enabled, cfg.Sound.File, cfg.Sound.Volume)
	deps.Chime = chime
	deps.Notifier = notify.NewMultiNotifier(
		notify.NewLogNotifier(logger.Logger),
		notify.NewDesktopNotifier(myApp, cfg.Notify.Desktop),
		chime,
	)

	mainWindow := ui.NewMainWindow(myApp, deps)
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	logger.Info("Starting",
		zap.String("version", version.Version),
		zap.String("config", mgr.Path()),
	)
	mainWindow.Show()
	return nil
}
