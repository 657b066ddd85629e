package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/plexart/internal/plex"
)

var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List the movie and show libraries artwork can be exported from",
	Args:  cobra.NoArgs,
	RunE:  runLibrariesCmd,
}

func init() {
	rootCmd.AddCommand(librariesCmd)
}

func runLibrariesCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(configPath, opts, cmd.Flags().Changed, stdinPrompter())
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose)
	client := plex.New(plexConfig(cfg), log)

	sections, err := client.ArtworkSections(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		count := "?"
		if n, err := client.GetLibraryCount(cmd.Context(), s.Key); err == nil {
			count = fmt.Sprint(n)
		} else {
			log.Debug("library count failed", "library", s.Title, "error", err)
		}
		rows = append(rows, libraryRow(s, count))
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Library", "Type", "Items", "Location", "Scanned"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	))
	return nil
}

func libraryRow(s plex.Section, count string) []string {
	locations := make([]string, len(s.Locations))
	for i, l := range s.Locations {
		locations[i] = l.Path
	}
	scanned := formatTimeAgo(s.ScannedAt)
	if s.Refreshing() {
		scanned += " (scanning)"
	}
	return []string{s.Title, s.Type, count, strings.Join(locations, ", "), scanned}
}
