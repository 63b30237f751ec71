// cmd/vibesnapctl/reset.go

package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imadgeboyega/vibesnap-backend/internal/seed"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the saved state with the fixtures and log out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		kv, adapter, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		initial, err := seed.Load(time.Now())
		if err != nil {
			return err
		}
		if err := adapter.Save(ctx, initial); err != nil {
			return fmt.Errorf("failed to reset saved state: %w", err)
		}

		color.New(color.FgGreen, color.Bold).Printf("✅ Saved state reset to fixtures (%d users, %d posts)\n", len(initial.Users), len(initial.Posts))
		return nil
	},
}
