package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/wippyai/sigdiff/errors"
)

// settle absorbs the burst of events an editor produces for one save.
const settle = 100 * time.Millisecond

// watch runs generate once, then again after every change to one of paths,
// until ctx is done. Failures after the first run are logged, not returned,
// so a listing saved half-way through an edit does not end the session.
func watch(ctx context.Context, log *zap.Logger, paths []string, generate func() error) error {
	if err := generate(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.PhaseRead, errors.KindIO, err, "create watcher")
	}
	defer w.Close()

	// Editors often replace files instead of writing them in place, so
	// watch the directories and filter by name.
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.IO(errors.PhaseRead, p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return errors.IO(errors.PhaseRead, d, err)
		}
	}
	log.Info("watching listings", zap.Strings("paths", paths))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.After(settle)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			if err := generate(); err != nil {
				log.Error("regenerate report", zap.Error(err))
				continue
			}
			log.Info("report regenerated")
		}
	}
}
