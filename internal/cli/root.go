package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cbodonnell/playerdata/pkg/config"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	output     string
	repository repositories.Repository
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var loadErr error
	cfg, loadErr = config.Load()
	if loadErr != nil {
		cfg = &config.Config{}
	}
	output = "text"

	rootCmd := &cobra.Command{
		Use:   "savetool",
		Short: "Inspect and edit player save data",
		Long: `savetool reads and writes the player profile used by the game client.

It works against any save backend (file, sqlite, postgres, redis) and can
move profiles between backends through the JSON export format.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}

			level, err := log.ParseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, level))

			repository, err = repositories.Open(cmd.Context(), cfg.RepositoryOptions())
			if err != nil {
				return fmt.Errorf("failed to open %s repository: %w", cfg.Backend, err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if repository == nil {
				return nil
			}
			err := repository.Close(context.Background())
			repository = nil
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory (env: PLAYERDATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.Backend, "backend", cfg.Backend, "Save backend: file, sqlite, postgres, redis, memory (env: PLAYERDATA_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&cfg.Slot, "slot", cfg.Slot, "Save slot (env: PLAYERDATA_SLOT)")
	rootCmd.PersistentFlags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres connection string (env: DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newWeaponCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
