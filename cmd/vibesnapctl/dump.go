// cmd/vibesnapctl/dump.go

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the users and posts the server would start with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadState(cmd.Context())
		if err != nil {
			return err
		}

		if s.CurrentUser != nil {
			color.New(color.Bold).Printf("Logged in as %s (%s)\n\n", s.CurrentUser.Username, s.CurrentUser.ID)
		} else {
			color.New(color.Faint).Println("Nobody is logged in")
			fmt.Println()
		}

		renderUsers(s)
		fmt.Println()
		renderPosts(s)
		return nil
	},
}

func renderUsers(s state.AppState) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Username", "Name", "Followers", "Flags"})

	for _, u := range s.Users {
		flags := ""
		if u.IsAdmin {
			flags += "admin "
		}
		if u.IsVerified {
			flags += "verified "
		}
		if u.IsBanned {
			flags += "banned"
		}

		row := []string{u.ID, u.Username, u.FullName, strconv.Itoa(u.Followers), flags}
		var style []tablewriter.Colors
		switch {
		case u.IsBanned:
			style = []tablewriter.Colors{{tablewriter.FgRedColor}, {tablewriter.FgRedColor}, {}, {}, {tablewriter.FgRedColor}}
		case s.CurrentUser != nil && u.ID == s.CurrentUser.ID:
			style = []tablewriter.Colors{{tablewriter.FgGreenColor, tablewriter.Bold}, {tablewriter.FgGreenColor, tablewriter.Bold}, {}, {}, {}}
		default:
			style = []tablewriter.Colors{{}, {tablewriter.Bold}, {}, {}, {}}
		}
		table.Rich(row, style)
	}
	table.Render()
}

func renderPosts(s state.AppState) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Author", "Likes", "Liked", "Saved", "Caption"})

	for _, p := range s.Posts {
		author := p.UserID
		if u, ok := s.FindUser(p.UserID); ok {
			author = u.Username
		}
		table.Append([]string{
			p.ID,
			author,
			strconv.Itoa(p.Likes),
			mark(p.IsLiked),
			mark(p.IsSaved),
			truncate(p.Caption, 40),
		})
	}
	table.Render()
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
