package monitor

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Trigger signals that the document may have changed.
type Trigger interface {
	// Events delivers one value per (debounced) change. It is closed by Close.
	Events() <-chan struct{}

	// Close stops the trigger and releases its resources.
	Close() error
}

// FileTrigger watches a single file through its parent directory so that
// editors which save by rename keep being observed.
type FileTrigger struct {
	path     string
	debounce time.Duration

	watcher *fsnotify.Watcher
	events  chan struct{}
	errs    chan error
	done    chan struct{}
	wg      sync.WaitGroup

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	closeOnce sync.Once
	closeErr  error
}

// NewFileTrigger starts watching path. Events are coalesced until no change
// has been seen for the debounce period.
func NewFileTrigger(path string, debounce time.Duration) (*FileTrigger, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	trigger := &FileTrigger{
		path:     absPath,
		debounce: debounce,
		watcher:  watcher,
		events:   make(chan struct{}, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}

	trigger.wg.Add(1)
	go trigger.loop()

	return trigger, nil
}

// Events implements Trigger.
func (t *FileTrigger) Events() <-chan struct{} {
	return t.events
}

// Errors delivers watcher errors. Errors are dropped while a previous one is unread.
func (t *FileTrigger) Errors() <-chan error {
	return t.errs
}

// Path returns the absolute path being watched.
func (t *FileTrigger) Path() string {
	return t.path
}

// Close implements Trigger.
func (t *FileTrigger) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.closeErr = t.watcher.Close()
		t.wg.Wait()

		t.mu.Lock()
		t.closed = true
		if t.timer != nil {
			t.timer.Stop()
		}
		close(t.events)
		t.mu.Unlock()
	})
	return t.closeErr
}

func (t *FileTrigger) loop() {
	defer t.wg.Done()

	for {
		select {
		case <-t.done:
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if !t.relevant(event) {
				continue
			}
			t.schedule()
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			select {
			case t.errs <- err:
			default:
			}
		}
	}
}

func (t *FileTrigger) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != t.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (t *FileTrigger) schedule() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, t.fire)
}

func (t *FileTrigger) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	select {
	case t.events <- struct{}{}:
	default:
	}
}
