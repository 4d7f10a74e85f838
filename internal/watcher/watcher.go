package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the delay applied before a config change is reported,
// long enough to coalesce an editor's write-then-rename sequence.
const DefaultDebounce = 500 * time.Millisecond

// ConfigWatcher watches a configuration file for changes.
// The containing directory is watched rather than the file itself, because
// editors and atomic writers typically replace the file by rename, which
// would silently detach a direct file watch.
type ConfigWatcher struct {
	path      string // absolute path of the config file
	onChange  func() // invoked after changes settle
	onError   func(error)
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates a ConfigWatcher for the given config file path.
// onChange is called after file activity settles; onError receives watch
// errors and may be nil.
func New(path string, onChange func(), onError func(error)) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &ConfigWatcher{
		path:     abs,
		onChange: onChange,
		onError:  onError,
	}
	w.debouncer = NewDebouncer(DefaultDebounce, func(string) {
		w.onChange()
	})
	return w, nil
}

// Start begins watching. It returns an error if the watch cannot be
// established, e.g. when the config directory does not exist.
func (w *ConfigWatcher) Start() error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		fsWatcher.Close()
		return err
	}

	w.fsWatcher = fsWatcher
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts the watcher down and drops any pending change notification.
// The event goroutine is waited for before the watcher is torn down, so no
// event can arrive after Stop returns.
func (w *ConfigWatcher) Stop() {
	if w.fsWatcher == nil {
		return
	}
	close(w.done)
	w.wg.Wait()
	w.fsWatcher.Close()
	w.debouncer.CancelAll()
	w.fsWatcher = nil
}

// processEvents filters directory events down to the watched file.
func (w *ConfigWatcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debouncer.Add(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
