// cmd/vibesnapctl/caption.go

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imadgeboyega/vibesnap-backend/internal/caption"
)

var captionCmd = &cobra.Command{
	Use:   "caption",
	Short: "Ask the caption service for one suggestion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		generator := caption.NewGenerator(caption.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.CaptionModel,
			BaseURL: cfg.CaptionBaseURL,
		}, log.Named("caption"))

		text, err := generator.Generate(cmd.Context())
		if err != nil {
			return err
		}
		if text == "" {
			color.New(color.Faint).Println("(empty caption)")
			return nil
		}
		fmt.Println(text)
		return nil
	},
}
