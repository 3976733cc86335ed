// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fintrack/internal/analytics"
	"fintrack/internal/categorizer"
	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/persistence"
	"fintrack/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// DataFile is the path of the persisted transactions file, settable
	// with the --file persistent flag.
	DataFile string

	// Store, Categorizer and Analytics are wired in PersistentPreRun and
	// shared by every subcommand.
	Store       *store.Store
	Categorizer *categorizer.Engine
	Analytics   *analytics.Engine

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A CLI personal-finance tracker with keyword-based auto-categorization.",
		Long: `fintrack records income and expense transactions in a local JSON file,
suggests spending categories from free-text descriptions, and derives
trend, habit, budget and anomaly reports from the stored data.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Log = config.ConfigureLogging(cfg)
			models.SetLogger(Log)

			if DataFile == "" {
				DataFile = cfg.Data.File
			}

			Categorizer = categorizer.New(Log)
			if cfg.Categorization.RulesFile != "" {
				if err := Categorizer.LoadUserRules(cfg.Categorization.RulesFile); err != nil {
					Log.Warnf("Failed to load user categorization rules: %v", err)
				}
			}

			gateway := persistence.NewJSONGateway(Log)
			Store = store.New(gateway, Log)
			Store.Load(DataFile)

			Analytics = analytics.New(Store, Log)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "file", "f", "", "Path to the transactions data file")
}

// Save persists the current collection back to the data file.
func Save() {
	Store.SaveAll(DataFile)
}
