// Package watch refreshes the file listing when the displayed directory
// changes on disk.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DebounceInterval coalesces bursts of filesystem events into one refresh.
const DebounceInterval = 200 * time.Millisecond

// DirWatcher watches a single directory and invokes a callback when its
// contents change. The watched directory is swapped on navigation.
type DirWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	current  string
	onChange func()
	log      zerolog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewDirWatcher creates a watcher. onChange is called from the watcher
// goroutine; callers marshal to the UI thread themselves.
func NewDirWatcher(onChange func(), log zerolog.Logger) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dw := &DirWatcher{
		watcher:  watcher,
		onChange: onChange,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	go dw.run()
	return dw, nil
}

// Watch switches the watcher to the given directory, dropping the previous
// one.
func (dw *DirWatcher) Watch(dir string) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.current == dir {
		return nil
	}

	if dw.current != "" {
		// Removal can fail if the directory is already gone; the new Add
		// is what matters.
		if err := dw.watcher.Remove(dw.current); err != nil {
			dw.log.Debug().Str("dir", dw.current).Err(err).Msg("remove watch failed")
		}
	}

	if err := dw.watcher.Add(dir); err != nil {
		dw.current = ""
		return err
	}

	dw.current = dir
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (dw *DirWatcher) Stop() {
	close(dw.stopCh)
	dw.watcher.Close()
	<-dw.doneCh
}

func (dw *DirWatcher) run() {
	defer close(dw.doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-dw.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			// Restart the debounce window on every relevant event.
			if timer == nil {
				timer = time.NewTimer(DebounceInterval)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(DebounceInterval)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if dw.onChange != nil {
				dw.onChange()
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.log.Warn().Err(err).Msg("directory watcher error")
		}
	}
}
