// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchConfig calls reload, from another goroutine, with the newly
// read config each time the given config file is written or
// replaced. Files that fail to read are logged and skipped. Close
// the returned watcher to stop watching.
func WatchConfig(filename string, reload func(Config)) (io.Closer, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched, as editors often replace the file on save
	name := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(name)); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := OpenConfig(name)
				if errors.Log(err) != nil {
					continue
				}
				slog.Debug("garden config reloaded", "file", name)
				reload(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return w, nil
}
