package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/plexart/internal/plex"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Plex connection status and libraries",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(configPath, opts, cmd.Flags().Changed, stdinPrompter())
	if err != nil {
		return err
	}

	client := plex.New(plexConfig(cfg), newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose))
	id, err := client.GetIdentity(cmd.Context())
	if err != nil {
		return connectError(err)
	}
	sections, err := client.GetSections(cmd.Context())
	if err != nil {
		return fmt.Errorf("list libraries: %w", err)
	}

	printStatus(cmd.OutOrStdout(), client.BaseURL(), id, sections)
	return nil
}

func printStatus(w io.Writer, url string, id *plex.Identity, sections []plex.Section) {
	fmt.Fprintf(w, "Plex: %s (%s)\n", id.Name, id.Version)
	fmt.Fprintf(w, "URL:  %s\n", url)
	fmt.Fprintln(w)

	if len(sections) == 0 {
		fmt.Fprintln(w, "No libraries found")
		return
	}

	fmt.Fprintln(w, "Libraries:")
	for _, s := range sections {
		status := ""
		if s.Refreshing() {
			status = " (scanning)"
		}
		if s.Type != plex.TypeMovie && s.Type != plex.TypeShow {
			status += " (no artwork export)"
		}
		fmt.Fprintf(w, "  %-16s %-8s scanned %s%s\n", s.Title, s.Type, formatTimeAgo(s.ScannedAt), status)
	}
}

func formatTimeAgo(unixTime int64) string {
	if unixTime == 0 {
		return "never"
	}

	ago := time.Since(time.Unix(unixTime, 0))

	switch {
	case ago < time.Minute:
		return "just now"
	case ago < time.Hour:
		return fmt.Sprintf("%dm ago", int(ago.Minutes()))
	case ago < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(ago.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(ago.Hours()/24))
	}
}
