package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/spf13/cobra"
)

const defaultDebounce = 300 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the registry whenever the manifest or installed satellites change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := &watcher{
				discover:    a.discover,
				logger:      a.logger,
				out:         cmd.OutOrStdout(),
				debounce:    debounce,
				manifest:    a.cfg.Manifest,
				packagesDir: a.cfg.PackagesDir,
			}
			return w.run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before rebuilding")
	return cmd
}

// watcher keeps the latest good registry and swaps it on every successful rebuild.
type watcher struct {
	current     atomic.Pointer[registry.Registry]
	discover    func(context.Context) (*registry.Registry, error)
	logger      *slog.Logger
	out         io.Writer
	manifest    string
	packagesDir string
	debounce    time.Duration
}

// Registry returns the last successfully built registry, or nil.
func (w *watcher) Registry() *registry.Registry {
	return w.current.Load()
}

// rebuild runs discovery. On failure the previous registry stays current.
func (w *watcher) rebuild(ctx context.Context) error {
	reg, err := w.discover(ctx)
	if err != nil {
		w.logger.Error("rebuild failed, keeping previous registry", "error", err)
		return err
	}

	w.current.Store(reg)
	fmt.Fprintf(w.out, "%s  %d packages, %d modules\n",
		time.Now().Format(time.TimeOnly), len(reg.PackageNames()), reg.Len())
	return nil
}

func (w *watcher) run(ctx context.Context) error {
	manifestPath, err := filepath.Abs(w.manifest)
	if err != nil {
		return err
	}
	packagesDir, err := filepath.Abs(w.packagesDir)
	if err != nil {
		return err
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(manifestPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(manifestPath), err)
	}
	w.watchTree(fsw, packagesDir)

	_ = w.rebuild(ctx)

	relevant := func(name string) bool {
		name = filepath.Clean(name)
		return name == manifestPath || name == packagesDir ||
			strings.HasPrefix(name, packagesDir+string(os.PathSeparator))
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Chmod) || !relevant(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				w.watchTree(fsw, ev.Name)
			}
			w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			_ = w.rebuild(ctx)
		}
	}
}

// watchTree adds dir and its immediate subdirectories, which covers
// <packages>/<satellite>/ layouts. Missing directories are skipped.
func (w *watcher) watchTree(fsw *fsnotify.Watcher, dir string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}
	if err := fsw.Add(dir); err != nil {
		w.logger.Warn("cannot watch directory", "dir", dir, "error", err)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if err := fsw.Add(sub); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
			w.logger.Warn("cannot watch directory", "dir", sub, "error", err)
		}
	}
}
