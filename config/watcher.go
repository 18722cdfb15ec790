package config

import (
	"context"
	"sync"
	"time"

	"github.com/crucible-fi/crucible/logging"

	"github.com/fsnotify/fsnotify"
)

const namedLogger = "config-watcher"

// Watcher watches the node configuration file and notifies listeners on
// change. A broken edit keeps the previous configuration in force.
type Watcher struct {
	log  *logging.Logger
	home string

	mu        sync.Mutex
	cfg       Config
	listeners []func(Config)
}

// NewWatcher loads the configuration and starts watching the file until
// the context is cancelled.
func NewWatcher(ctx context.Context, log *logging.Logger, home string) (*Watcher, error) {
	log = log.Named(namedLogger)

	cfg, err := Read(home)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		log:  log,
		home: home,
		cfg:  *cfg,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(home); err != nil {
		watcher.Close()
		return nil, err
	}
	go w.watch(ctx, watcher)
	return w, nil
}

// Get returns the current configuration.
func (w *Watcher) Get() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// OnConfigUpdate registers a listener called with every reloaded
// configuration.
func (w *Watcher) OnConfigUpdate(fn func(Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != FilePath(w.home) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// editors often fire several events per save
			time.Sleep(50 * time.Millisecond)
			w.reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("configuration watcher failed", logging.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Read(w.home)
	if err != nil {
		w.log.Error("could not reload configuration, keeping the previous one",
			logging.Error(err),
		)
		return
	}

	w.mu.Lock()
	w.cfg = *cfg
	listeners := make([]func(Config), len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	w.log.Info("configuration reloaded")
	for _, fn := range listeners {
		fn(*cfg)
	}
}
