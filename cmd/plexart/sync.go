package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"github.com/vmunix/plexart/internal/artwork"
	"github.com/vmunix/plexart/internal/config"
	"github.com/vmunix/plexart/internal/plex"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Export artwork for a library",
	Long: `Export artwork for every item of a Plex movie or show library.

Writes poster.jpg, fanart.jpg, banner.jpg and theme.mp3 into each item
folder, folder.jpg into each season folder and <episode>-thumb.jpg next
to each episode. Existing files are kept unless Plex has a newer
version or --overwrite is given.

Examples:
  plexart sync --library Movies
  plexart sync --library "TV Shows" --assets posters -v
  plexart sync --library Movies --output-path /backup/artwork --dry-run`,
	Args: cobra.NoArgs,
	RunE: runSyncCmd,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	f := syncCmd.Flags()
	f.StringVar(&opts.library, "library", "", "Plex library name")
	f.StringVar(&opts.assets, "assets", "all", "Assets to export: all, posters, backgrounds, banners, themes")
	f.StringVar(&opts.outputPath, "output-path", "", "Mirror assets under this path instead of the media folders")
	f.BoolVar(&opts.overwrite, "overwrite", false, "Download assets even when the local copy is current")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Report what would be downloaded without writing anything")
}

func runSyncCmd(cmd *cobra.Command, args []string) error {
	prompt := stdinPrompter()
	cfg, err := resolveConfig(configPath, opts, cmd.Flags().Changed, prompt)
	if err != nil {
		return err
	}

	lock, err := acquireLock(cfg.Sync.LockFile)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose)
	run := &syncRun{
		client:  plex.New(plexConfig(cfg), log),
		cfg:     cfg,
		out:     newPrinter(cmd.OutOrStdout()),
		prompt:  prompt,
		log:     log,
		verbose: verbose,
	}
	return run.run(ctx)
}

// acquireLock takes the run lock so two syncs never write the same tree.
func acquireLock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another plexart sync is already running (lock %s)", path)
	}
	return lock, nil
}

// syncRun is one export of one library.
type syncRun struct {
	client  *plex.Client
	cfg     *config.Config
	out     *printer
	prompt  *prompter // nil when nobody can answer
	log     *slog.Logger
	verbose bool
}

func (s *syncRun) run(ctx context.Context) error {
	filter, err := artwork.ParseFilter(s.cfg.Sync.Assets)
	if err != nil {
		return err
	}

	id, err := s.client.GetIdentity(ctx)
	if err != nil {
		return connectError(err)
	}
	if s.verbose {
		s.out.marker(markerInfo, "SERVER", id.Name)
	}

	sections, err := s.client.ArtworkSections(ctx)
	if err != nil {
		return err
	}
	section, err := s.pickLibrary(sections)
	if err != nil {
		return err
	}

	if s.verbose {
		s.out.marker(markerInfo, "LIBRARY", section.Title)
		s.out.marker(markerInfo, "ASSETS", string(filter))
		s.out.marker(markerInfo, "OVERWRITE", fmt.Sprint(s.cfg.Sync.Overwrite))
		if s.cfg.Sync.DryRun {
			s.out.marker(markerInfo, "DRY RUN", "nothing will be written")
		}
		s.out.blank()
		fmt.Fprintln(s.out.out, "Getting library items...")
	}

	catalog := plex.NewCatalog(s.client)
	items, err := catalog.Items(ctx, *section)
	if err != nil {
		return fmt.Errorf("list library items: %w", err)
	}

	engine := artwork.NewEngine(catalog, artwork.EngineConfig{
		OutputPath: s.cfg.Sync.OutputPath,
		DryRun:     s.cfg.Sync.DryRun,
	}, s.log)
	driver := artwork.NewDriver(catalog, engine, newTerminalReporter(s.out, s.verbose), s.log)
	tally := driver.Run(ctx, items, filter, s.cfg.Sync.Overwrite)

	if s.verbose {
		s.out.blank()
		fmt.Fprintln(s.out.out, renderSummary(tally))
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sync interrupted: %w", err)
	}
	return nil
}

// pickLibrary resolves the configured library, falling back to an
// interactive choice when a terminal is attached.
func (s *syncRun) pickLibrary(sections []plex.Section) (*plex.Section, error) {
	titles := make([]string, len(sections))
	for i, sec := range sections {
		titles[i] = sec.Title
	}

	if name := s.cfg.Plex.Library; name != "" {
		section, err := plex.MatchSection(sections, name)
		if err == nil {
			return section, nil
		}
		if s.prompt == nil {
			return nil, err
		}
		s.out.marker(markerWarn, "WARNING", err.Error())
	} else if s.prompt == nil {
		return nil, fmt.Errorf("no library given, use --library (available: %s)", strings.Join(titles, ", "))
	}

	idx, err := s.prompt.choose("Select Library", titles)
	if err != nil {
		if errors.Is(err, errNoAnswer) {
			return nil, errors.New("no library selected")
		}
		return nil, err
	}
	return &sections[idx], nil
}

func renderSummary(t artwork.Tally) string {
	rows := [][]string{
		{"Downloaded", fmt.Sprint(t.Downloaded)},
		{"Skipped", fmt.Sprint(t.Skipped)},
		{"Missing", fmt.Sprint(t.Missing)},
		{"Failed", fmt.Sprint(t.Failed)},
		{"Items", fmt.Sprint(t.Items)},
		{"Item errors", fmt.Sprint(t.ItemErrors)},
		{"Transferred", humanize.Bytes(uint64(t.Bytes))},
	}
	return renderTable([]string{"Total", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
