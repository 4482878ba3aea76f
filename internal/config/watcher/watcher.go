// Package watcher notifies about changes to configuration and keymap files.
//
// Files are watched through their parent directory so that editors which
// save by rename still produce events. Rapid changes to the same path are
// coalesced into one event after a debounce delay.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op is a bitmask of file operations.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed away.
	OpRename
)

// Has reports whether op includes o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// String returns the operation names joined by "|".
func (op Op) String() string {
	var parts []string
	for _, n := range []struct {
		op   Op
		name string
	}{{OpCreate, "CREATE"}, {OpWrite, "WRITE"}, {OpRemove, "REMOVE"}, {OpRename, "RENAME"}} {
		if op.Has(n.op) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Event is a debounced change to one file.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the delay used to coalesce rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithExtensions limits directory events to files with these extensions.
// Extensions include the dot, e.g. ".toml".
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		w.exts = exts
	}
}

// WithBufferSize sets the capacity of the event and error channels.
func WithBufferSize(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.bufSize = n
		}
	}
}

type pending struct {
	event Event
	timer *time.Timer
}

// Watcher watches files and directories for changes.
type Watcher struct {
	mu sync.Mutex

	fs      *fsnotify.Watcher
	delay   time.Duration
	exts    []string
	bufSize int

	// files holds explicitly watched files; dirs holds explicitly watched
	// directories. A directory added only to observe a file is in neither.
	files map[string]bool
	dirs  map[string]bool
	added map[string]bool

	pending map[string]*pending
	events  chan Event
	errors  chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New creates and starts a watcher.
func New(opts ...Option) (*Watcher, error) {
	w := &Watcher{
		delay:   100 * time.Millisecond,
		bufSize: 16,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		added:   make(map[string]bool),
		pending: make(map[string]*pending),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fs = fsw
	w.events = make(chan Event, w.bufSize)
	w.errors = make(chan error, w.bufSize)

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Watch starts watching path. A file is watched through its directory and
// may not exist yet; a directory must exist.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	dir := filepath.Dir(abs)
	info, statErr := os.Stat(abs)
	switch {
	case statErr == nil && info.IsDir():
		dir = abs
		w.dirs[abs] = true
	case statErr == nil || os.IsNotExist(statErr):
		w.files[abs] = true
	default:
		return statErr
	}

	if w.added[dir] {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.added[dir] = true
	return nil
}

// WatchedPaths returns the files and directories passed to Watch, sorted.
func (w *Watcher) WatchedPaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files)+len(w.dirs))
	for p := range w.files {
		paths = append(paths, p)
	}
	for p := range w.dirs {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Events returns the debounced event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and drops pending events.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	err := w.fs.Close()
	w.wg.Wait()

	close(w.events)
	close(w.errors)
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op.Has(fsnotify.Create) {
		out |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		out |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		out |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		out |= OpRename
	}
	return out
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.interested(ev.Name) {
		return
	}

	if p, ok := w.pending[ev.Name]; ok {
		p.event.Op |= op
		p.event.Timestamp = time.Now()
		p.timer.Reset(w.delay)
		return
	}

	path := ev.Name
	w.pending[path] = &pending{
		event: Event{Path: path, Op: op, Timestamp: time.Now()},
		timer: time.AfterFunc(w.delay, func() { w.fire(path) }),
	}
}

// interested reports whether path is a watched file or a file with a
// matching extension inside a watched directory. Callers hold w.mu.
func (w *Watcher) interested(path string) bool {
	if w.files[path] {
		return true
	}
	if !w.dirs[filepath.Dir(path)] {
		return false
	}
	if len(w.exts) == 0 {
		return true
	}
	return slices.Contains(w.exts, strings.ToLower(filepath.Ext(path)))
}

func (w *Watcher) fire(path string) {
	w.mu.Lock()
	p, ok := w.pending[path]
	if !ok || w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	select {
	case w.events <- p.event:
	case <-w.closeCh:
	}
}
