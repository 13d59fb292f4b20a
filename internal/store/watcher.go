package store

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reports external modifications to a FileStore's directory as
// key names on the returned channel. Used to reload the note list when
// another process (or a sync tool) rewrites a store file. Rapid write
// bursts for the same file are debounced. Closing stop shuts the
// watcher down and closes the channel.
func Watch(dir string, stop <-chan struct{}) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	keys := make(chan string, 16)

	go func() {
		defer watcher.Close()
		defer close(keys)

		var debounce *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-stop:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, ".json") {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				// Captured by value: the timer callback runs on its own
				// goroutine after this loop has moved on.
				name := event.Name
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					key := strings.TrimSuffix(filepath.Base(name), ".json")
					select {
					case keys <- key:
					default:
						// Channel full, drop; the reader refreshes
						// on the next event anyway.
					}
				})

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return keys, nil
}
