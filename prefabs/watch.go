package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// ChangeKind says which kind of reloadable file changed.
type ChangeKind uint8

const (
	ChangeTuning ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one debounced edit to a reloadable file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Classify reports the kind of reloadable file at path.
func Classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeTuning, true
	case ".tengo":
		return ChangeScript, true
	default:
		return 0, false
	}
}

// Watcher reports edits to tuning and difficulty scripts under a set of
// directories. The game loop drains it with Poll once per frame.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	stop    chan struct{}
	stopped chan struct{}
	close   sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Poll returns the next pending change without blocking.
func (w *Watcher) Poll() (Change, bool) {
	if w == nil {
		return Change{}, false
	}
	select {
	case c := <-w.changes:
		return c, true
	default:
		return Change{}, false
	}
}

// PollError returns a pending watch error without blocking.
func (w *Watcher) PollError() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.close.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := Classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if at, ok := seen[event.Name]; ok && now.Sub(at) < debounceWindow {
				continue
			}
			seen[event.Name] = now
			select {
			case w.changes <- Change{Path: event.Name, Kind: kind}:
			default:
				// a full buffer already holds a reload
			}
		}
	}
}
