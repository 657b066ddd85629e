package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/plexart/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration file",
	Long: `Writes a commented configuration file (default: $XDG_CONFIG_HOME/plexart/config.toml).

When --baseurl or --token are given the file is generated from them instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates the config file syntax, required fields and environment variable substitution without contacting Plex.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configTestCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	var err error
	changed := cmd.Flags().Changed
	if changed("baseurl") || changed("token") {
		cfg := config.Default()
		opts.applyTo(cfg, changed)
		err = cfg.Write(path, force)
	} else {
		err = config.WriteDefault(path, force)
	}
	if errors.Is(err, config.ErrExists) {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Plex:       %s (timeout %s)\n", cfg.Plex.URL, cfg.Plex.Timeout)

	library := cfg.Plex.Library
	if library == "" {
		library = "(ask)"
	}
	fmt.Fprintf(w, "  Library:    %s\n", library)

	if pm := cfg.Plex.PathMapping; pm != nil && pm.Remote != "" {
		fmt.Fprintf(w, "  Paths:      %s -> %s\n", pm.Remote, pm.Local)
	}

	output := cfg.Sync.OutputPath
	if output == "" || output == "/" {
		output = "media folders"
	}
	fmt.Fprintf(w, "  Assets:     %s -> %s\n", cfg.Sync.Assets, output)
	fmt.Fprintf(w, "  Overwrite:  %t (dry run: %t)\n", cfg.Sync.Overwrite, cfg.Sync.DryRun)
	fmt.Fprintf(w, "  Lock:       %s\n", cfg.Sync.LockFile)
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
}
