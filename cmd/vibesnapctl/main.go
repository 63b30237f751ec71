// cmd/vibesnapctl/main.go
// Operator CLI for the VibeSnap state store

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/logger"
	"github.com/imadgeboyega/vibesnap-backend/internal/config"
	"github.com/imadgeboyega/vibesnap-backend/internal/persistence"
	"github.com/imadgeboyega/vibesnap-backend/internal/seed"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/storage"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "vibesnapctl [command] [flags]",
	Short:         "Inspect and manage the VibeSnap state store",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg = config.Load()

		l, err := logger.Init(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log = l
		return nil
	},
}

func main() {
	rootCmd.AddCommand(resetCmd, dumpCmd, captionCmd, storiesCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "🚨 %v\n", err)
		os.Exit(1)
	}
}

// openStorage connects the configured backend and wraps it in the persistence adapter.
func openStorage(ctx context.Context) (storage.KV, *persistence.Adapter, error) {
	kv, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		KeyPrefix:   cfg.KeyPrefix,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.StoreDriver, err)
	}
	return kv, persistence.New(kv, log.Named("persistence")), nil
}

// loadState returns the fixtures overlaid with whatever the store holds.
func loadState(ctx context.Context) (state.AppState, error) {
	kv, adapter, err := openStorage(ctx)
	if err != nil {
		return state.AppState{}, err
	}
	defer kv.Close()

	base, err := seed.Load(time.Now())
	if err != nil {
		return state.AppState{}, err
	}

	s, err := adapter.Hydrate(ctx, base)
	if err != nil {
		log.Warn("some saved state could not be read", zap.Error(err))
	}
	return s, nil
}
