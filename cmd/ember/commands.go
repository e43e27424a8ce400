package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrhq/ember/pkg/config"
	"github.com/entrhq/ember/pkg/export"
	"github.com/entrhq/ember/pkg/journal"
	"github.com/entrhq/ember/pkg/logging"
	"github.com/entrhq/ember/pkg/photo"
	"github.com/entrhq/ember/pkg/store"
	"github.com/entrhq/ember/pkg/tui"
)

const version = "0.1.0"

// app bundles everything a command needs after setup.
type app struct {
	cfg    *config.Config
	store  *store.Store
	logger *logging.Logger

	// loadNotice describes a tolerated journal load problem (corrupt data
	// that was set aside). Empty when the load was clean.
	loadNotice string
}

// setup loads configuration, opens the journal store, and hydrates it.
// A corrupt journal is reported but not fatal: the original file is moved
// aside by the store and the session starts empty.
func setup(configPath string) (*app, error) {
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, logErr := logging.NewLogger("cli")
	if logErr != nil {
		// The fallback logger still works; nothing else to do.
		logger.Warnf("file logging unavailable: %v", logErr)
	}

	backend, err := store.NewFileBackend(cfg.JournalPath())
	if err != nil {
		return nil, err
	}
	st := store.New(backend)

	a := &app{cfg: cfg, store: st, logger: logger}
	if err := st.Load(); err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		logger.Errorf("journal load: %v", err)
		a.loadNotice = fmt.Sprintf(
			"The journal file could not be decoded and was moved to %s.corrupt. Starting with an empty journal.",
			backend.Path(),
		)
	}
	return a, nil
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ember",
		Short:   "A terminal mood journal",
		Long:    "Ember is a keyboard-driven daily journal: dated, mood-tagged entries with optional photos, stored locally and exportable to JSON.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(configPath)
			if err != nil {
				return err
			}
			defer a.logger.Close()
			return tui.Run(a.cfg, a.store, a.logger, a.loadNotice)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.ember/config.yaml)")

	rootCmd.AddCommand(newAddCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))
	return rootCmd
}

func newAddCommand(configPath *string) *cobra.Command {
	var moodFlag string
	var photoFlag string

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a journal entry without opening the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Close()
			if a.loadNotice != "" {
				fmt.Fprintln(os.Stderr, "Warning:", a.loadNotice)
			}

			draft := journal.NewDraft()
			if err := draft.SetMood(a.cfg.Mood()); err != nil {
				return err
			}
			if moodFlag != "" {
				mood, err := journal.ParseMood(moodFlag)
				if err != nil {
					return err
				}
				if err := draft.SetMood(mood); err != nil {
					return err
				}
			}
			if photoFlag != "" {
				matcher, err := a.cfg.Matcher()
				if err != nil {
					return err
				}
				if !matcher.Match(photoFlag) {
					return fmt.Errorf("photo %s does not match the allowed patterns (%s)",
						photoFlag, strings.Join(a.cfg.Photo.AllowedPatterns, ", "))
				}
				dataURI, err := photo.Load(photoFlag, a.cfg.Photo.MaxBytes)
				if err != nil {
					return err
				}
				draft.AttachPhoto(dataURI, draft.Generation())
			}
			draft.SetContent(args[0])

			entry, saved, err := draft.Save(a.store)
			if !saved {
				return fmt.Errorf("nothing to save: entry text is empty")
			}
			if err != nil {
				return err
			}
			fmt.Printf("Saved entry for %s (%s %s)\n", entry.Date, entry.Mood.Icon(), entry.Mood.Label())
			return nil
		},
	}
	addCmd.Flags().StringVar(&moodFlag, "mood", "", "mood for the entry (happy, sad, neutral, excited, angry)")
	addCmd.Flags().StringVar(&photoFlag, "photo", "", "path to an image file to attach")
	return addCmd
}

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the date-grouped journal history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Close()
			if a.loadNotice != "" {
				fmt.Fprintln(os.Stderr, "Warning:", a.loadNotice)
			}
			fmt.Println(tui.RenderHistory(a.store.Entries(), 80))
			return nil
		},
	}
}

func newExportCommand(configPath *string) *cobra.Command {
	var outPath string
	var toClipboard bool

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the journal as a JSON file",
		Long:  "Export every entry as a flat JSON record (date, mood, content, photo yes/no). Photo bytes are never exported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Close()
			if a.loadNotice != "" {
				fmt.Fprintln(os.Stderr, "Warning:", a.loadNotice)
			}

			entries := a.store.Entries()
			if toClipboard {
				if err := export.ToClipboard(entries); err != nil {
					return err
				}
				fmt.Printf("Copied %d entries to the clipboard\n", len(entries))
				return nil
			}

			path := outPath
			if path == "" {
				path = a.cfg.ExportPath
			}
			if err := export.WriteFile(path, entries); err != nil {
				return err
			}
			fmt.Printf("Exported %d entries to %s\n", len(entries), path)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (default from config, journal_entries.json)")
	exportCmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy the JSON to the clipboard instead of writing a file")
	return exportCmd
}
