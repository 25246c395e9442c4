package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencapture/opencapture/pkg/controls"
	"github.com/opencapture/opencapture/pkg/script"
	"github.com/opencapture/opencapture/pkg/telemetry"
)

func newValidateCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate <script>",
		Short: "Compile a capture script against the device control catalog",
		Long: `Compile a capture script and report the frames and controls it sets,
or the precise position and reason of the first failure.

With --watch the script is recompiled whenever the file changes, which is
useful while editing a script against a known catalog.`,
		Example: `  # Validate a script once
  capture validate session.yaml

  # Revalidate on every edit
  capture validate --watch session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			path := args[0]
			logger = telemetry.WithScript(logger, path)
			catalog := controls.DefaultCatalog()

			if !watch {
				return compileScript(path, catalog, logger)
			}
			return watchScript(cmd, path, catalog, logger)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "recompile the script on file changes")

	return cmd
}

// compileScript compiles the script once and logs a summary.
func compileScript(path string, catalog controls.Catalog, logger zerolog.Logger) error {
	s, err := script.Load(path, catalog, logger)
	if err != nil {
		return err
	}

	frames := s.Frames()
	total := 0
	for _, f := range frames {
		total += s.ControlsForFrame(f).Len()
	}

	logger.Info().
		Int("frames", len(frames)).
		Int("controls", total).
		Msg("Capture script is valid")
	return nil
}

// watchScript recompiles the script on every write until the command context
// is cancelled. Compilation failures are logged, not fatal, so the edit loop
// keeps running.
func watchScript(cmd *cobra.Command, path string, catalog controls.Catalog, logger zerolog.Logger) error {
	if err := compileScript(path, catalog, logger); err != nil {
		logger.Error().Err(err).Msg("Capture script is invalid")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// watches registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	logger.Info().Msg("Watching capture script for changes")

	// Debounce recompiles
	var timer *time.Timer
	const delay = 300 * time.Millisecond

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(delay, func() {
				if err := compileScript(path, catalog, logger); err != nil {
					logger.Error().Err(err).Msg("Capture script is invalid")
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Watcher error")
		}
	}
}
