// cmd/vibesnapctl/stories.go

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
	"github.com/imadgeboyega/vibesnap-backend/internal/stories"
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Story rail commands",
}

var storiesPlayCmd = &cobra.Command{
	Use:   "play [story-id]",
	Short: "Play the story rail in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadState(cmd.Context())
		if err != nil {
			return err
		}

		startID := ""
		if len(args) == 1 {
			startID = args[0]
		}

		svc := stories.NewService(store.New(s), cfg.StoryTick, log.Named("stories"))
		player := svc.Play(startID, func(f stories.Frame) {
			printFrame(s, f)
		})

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		player.Start()
		select {
		case <-player.Done():
		case <-interrupt:
			player.Close()
		}
		fmt.Println()
		return nil
	},
}

func init() {
	storiesCmd.AddCommand(storiesPlayCmd)
}

const barWidth = 30

func printFrame(s state.AppState, f stories.Frame) {
	if f.Done {
		fmt.Print("\r\033[K")
		color.New(color.FgGreen).Print("✅ All stories watched")
		return
	}

	author := f.Story.UserID
	if u, ok := s.FindUser(f.Story.UserID); ok {
		author = u.Username
	}

	filled := f.Progress * barWidth / stories.ProgressFull
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Print("\r\033[K")
	color.New(color.Bold).Printf("%d/%d %-16s", f.Index+1, len(s.Stories), author)
	color.New(color.FgMagenta).Printf(" %s ", bar)
	color.New(color.Faint).Printf("%s", f.Story.Timestamp)
}
