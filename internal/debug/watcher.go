package debug

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// BreakpointWatcher reloads a BreakpointManager when its persistence file
// is changed externally (another editor instance, a tool writing the
// workspace file). It watches the containing directory so the file may be
// created after the watcher starts.
type BreakpointWatcher struct {
	mu sync.Mutex

	manager *BreakpointManager
	path    string
	watcher *fsnotify.Watcher
	log     zerolog.Logger

	// onReload is invoked after a successful reload.
	onReload func()

	// debounce collapses editor write bursts into one reload
	debounce time.Duration

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewBreakpointWatcher starts watching the manager's persistence file at
// path. The returned watcher runs until Close.
func NewBreakpointWatcher(manager *BreakpointManager, path string, log zerolog.Logger) (*BreakpointWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve breakpoint file %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &BreakpointWatcher{
		manager:  manager,
		path:     absPath,
		watcher:  fsw,
		log:      log,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// SetOnReload sets a callback invoked after each successful reload.
func (w *BreakpointWatcher) SetOnReload(fn func()) {
	w.mu.Lock()
	w.onReload = fn
	w.mu.Unlock()
}

// Close stops the watcher.
func (w *BreakpointWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events, debouncing write bursts.
func (w *BreakpointWatcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("breakpoint watcher error")
		}
	}
}

// reload re-reads the persistence file into the manager.
func (w *BreakpointWatcher) reload() {
	if err := w.manager.Load(); err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("breakpoint reload failed")
		return
	}
	w.log.Debug().Str("path", w.path).Msg("breakpoints reloaded")

	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}
