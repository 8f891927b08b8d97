// Package watch re-runs a build function whenever its input file changes,
// the Go analogue of the original AssemblerListener/FileWatcher pairing:
// one fsnotify watcher on the input's directory, filtered down to write
// and create events naming the file being watched.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Run calls build once immediately, then again every time path is written
// to or created, until the watcher errors or ctx-like cancellation is signalled via
// stop. build is expected to report its own errors; Run only decides when
// to call it.
func Run(path string, stop <-chan struct{}, build func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	name := filepath.Base(path)
	build()

	for {
		select {
		case <-stop:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			build()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
