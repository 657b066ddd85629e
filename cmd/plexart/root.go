package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "plexart",
	Short: "Export Plex artwork next to your media files",
	Long: `plexart - export Plex artwork next to your media files

Mirrors posters, fanart, banners, theme music, season covers and
episode thumbnails from a Plex library into the media folders, so
other players (Jellyfin, Kodi, Emby) find them without a scrape.

Assets are only fetched again when Plex reports a newer version.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderMarker(markerError, "ERROR", err.Error(), shouldColorize(os.Stderr)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show extra information")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "baseurl", "", "Base URL of the Plex server")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Plex authentication token")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("plexart v{{.Version}}\n")
}
