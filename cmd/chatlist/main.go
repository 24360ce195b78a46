package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chatlist/internal/config"
	"chatlist/internal/database"
	"chatlist/internal/services"
)

var (
	// Global flags
	dbPath  string
	verbose bool

	logger  *zap.Logger
	store   *services.DbServices
	dbClose func() error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chatlist",
	Short: "ChatList - local prompt and model-response store",
	Long: `chatlist manages the local store behind the ChatList desktop app:
user prompts, registered AI-model endpoints, saved responses and settings,
all in a single SQLite file.

The store only ever holds the *name* of a credential slot per model
(e.g. OPENAI_API_KEY); resolving it to an actual key is the caller's job.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		db, err := database.Init(database.Config{
			Path:   cfg.DBPath,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("open store at %s: %w", cfg.DBPath, err)
		}
		if sqlDB, err := db.DB(); err == nil {
			dbClose = sqlDB.Close
		}
		store = services.NewDbServices(db, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbClose != nil {
			_ = dbClose()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite store (default: "+database.GetDefaultDBPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		promptCmd,
		modelCmd,
		resultCmd,
		settingCmd,
		exportCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
