// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchLag is how long the source must stay unchanged before it is
// run again, as editors often write a file several times when saving.
var WatchLag = 100 * time.Millisecond

// Watch runs the job once and then again every time its source file
// changes, until the context is canceled. Errors from each run are
// passed to report rather than stopping the watch.
func Watch(ctx context.Context, j *Job, report func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	src, err := filepath.Abs(j.Source)
	if err != nil {
		return err
	}
	// the directory is watched, so that files replaced by a rename still match
	if err := w.Add(filepath.Dir(src)); err != nil {
		return err
	}
	report(j.Run())
	var settled <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != src || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("source changed", "source", j.Source, "op", event.Op.String())
			settled = time.After(WatchLag)
		case <-settled:
			settled = nil
			report(j.Run())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching", "source", j.Source, "error", err)
		}
	}
}
