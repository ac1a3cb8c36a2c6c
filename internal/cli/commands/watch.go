package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the model file changes",
		Long: `Generate once, then watch the model file and regenerate after every
change. Bursts of writes closer together than --debounce trigger a single run.
Generation errors are logged and watching continues.`,
		Example: `  coder watch --model model.yaml --dialect golang`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewCommandContext(cmd).Watch(cmd.Context(), func(err error) {
				if err == nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Regenerated")
				}
			})
		},
	}
	cmd.Flags().Duration("debounce", 0, "Quiet period before regenerating (default 100ms)")
	return cmd
}

// Watch generates once and again after each debounced change of the model
// file until ctx is done. done, if not nil, is called after every run with
// its result.
func (c *CommandContext) Watch(ctx context.Context, done func(error)) error {
	path, err := filepath.Abs(c.Cfg.Model)
	if err != nil {
		return fmt.Errorf("resolve model path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	run := func() {
		_, err := c.Generate(ctx)
		if err != nil && ctx.Err() == nil {
			c.Logger.Error("generation failed", "model", path, "error", err)
		}
		if done != nil {
			done(err)
		}
	}
	run()

	c.Logger.Info("watching for changes", "model", path, "debounce", c.Cfg.Debounce)
	changed := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(event.Name) != path {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(c.Cfg.Debounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})
		case <-changed:
			c.Logger.Debug("model changed, regenerating", "model", path)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Error("watcher error", "error", err)
		}
	}
}
