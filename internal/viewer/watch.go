package viewer

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to a single model file. It watches the file's
// directory so that editors which save by rename are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *zap.Logger
	debounce time.Duration
	onChange func(path string)

	mu     sync.Mutex
	path   string
	dir    string
	timer  *time.Timer
	closed bool

	inflight sync.WaitGroup // onChange calls currently running
	done     chan struct{}
}

// NewWatcher starts a watcher that calls onChange with the watched path
// after changes settle for debounce.
func NewWatcher(debounce time.Duration, onChange func(path string), log *zap.Logger) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fsWatch,
		log:      log,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch retargets the watcher at path, dropping the previous file.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.New("watcher already closed")
	}
	if w.dir != dir {
		if w.dir != "" {
			_ = w.fs.Remove(w.dir)
			w.dir = ""
		}
		if err := w.fs.Add(dir); err != nil {
			return err
		}
		w.dir = dir
	}
	// Reports use the caller's spelling so they compare equal to Scene's path.
	w.path = path
	return nil
}

// Close stops watching. Pending notifications are dropped and a
// notification already running finishes before Close returns.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	w.inflight.Wait()
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("model watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.path == "" {
		return
	}
	abs, err := filepath.Abs(w.path)
	if err != nil || filepath.Clean(ev.Name) != abs {
		return
	}

	path := w.path
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(path) })
}

func (w *Watcher) fire(path string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()

	defer w.inflight.Done()
	w.onChange(path)
}
