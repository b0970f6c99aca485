package main

import (
	"fmt"
	"log/slog"

	"github.com/jgoulah/freelancestats/internal/config"
	"github.com/jgoulah/freelancestats/internal/loader"
	"github.com/jgoulah/freelancestats/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	sheet    int

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "freelancestats",
	Short: "Summarise a year of freelance bookings",
	Long: `FreelanceStats reads a spreadsheet of work bookings and prints an overview of the year:
days worked, longest consecutive bookings, monthly profit, work types, studios,
booking frequency and days worked from home.

The spreadsheet (.ods, .xlsx or .csv) needs exactly five columns in this order, below a header row:
Date, Studio, Type, Rate, WFH (1 = worked from home, 0 = on-site).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config, then info)")
	rootCmd.PersistentFlags().IntVar(&sheet, "sheet", 0, "1-based sheet to read from a workbook (default from config, then 1)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// saveConfig saves the configuration file
func saveConfig(c *config.Config) error {
	return config.Save(getConfigPath(), c)
}

// setup loads the config and installs the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if sheet > 0 {
		cfg.Sheet = sheet
	}

	level, err := logging.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return err
	}
	logger = logging.New(cmd.ErrOrStderr(), level)
	slog.SetDefault(logger)

	logger.Debug("Loaded config", "path", getConfigPath(), "command", cmd.Name())
	return nil
}

// loadBookings reads the spreadsheet at path using the configured options
func loadBookings(path string) (*loader.Result, error) {
	return loader.Read(path, loader.Options{
		Sheet:       cfg.GetSheet(),
		DateLayouts: cfg.GetDateLayouts(),
		Logger:      logging.Component(logger, "loader"),
	})
}
