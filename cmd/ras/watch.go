package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch assembles cfg.Input once, then again every time it changes, until ctx
// is cancelled. Assembly errors are logged and do not stop the loop. The
// directory is watched rather than the file, so editors that save by
// renaming a new file over the old one keep triggering rebuilds.
func watch(ctx context.Context, cfg Config, log *Logger) error {
	if cfg.readsStdin() {
		return errors.New("watch mode needs an input file")
	}
	target, err := filepath.Abs(cfg.Input)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	rebuild := func() {
		if err := assembleFile(cfg, os.Stdin, log); err != nil {
			log.Error("%v", err)
			return
		}
		log.Info("assembled %s", cfg.Input)
	}
	rebuild()
	log.Info("watching %s", cfg.Input)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !affects(ev, target) {
				continue
			}
			log.Debug("%s: %s", ev.Op, ev.Name)
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch: %v", err)
		}
	}
}

// affects reports whether ev changed the contents of the file at target.
func affects(ev fsnotify.Event, target string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == target
}
