package checkpoint

import (
	"encoding/json"
	"time"

	"github.com/crucible-fi/crucible/logging"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

var (
	// ErrUnknownComponent is returned when a stored checkpoint names a
	// component no engine registered for.
	ErrUnknownComponent = errors.New("checkpoint for unknown component")

	metaKey = []byte("meta")
)

// State is the slice of an engine the checkpoint store persists. Every
// stateful engine registers one.
type State interface {
	Checkpoint() ([]byte, error)
	Load(data []byte) error
}

type meta struct {
	Taken      time.Time `json:"taken"`
	Components []string  `json:"components"`
}

// Engine persists the registered engines' state to a leveldb store and
// restores it on startup. Components are written in registration order
// and restored in the same order, so the registry always loads before the
// ledgers that reference it.
type Engine struct {
	Config
	log *logging.Logger
	db  *leveldb.DB

	order      []string
	components map[string]State
}

// New opens (or creates) the on-disk checkpoint store.
func New(log *logging.Logger, config Config, path string) (*Engine, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not open checkpoint store")
	}
	return newEngine(log, config, db), nil
}

// NewInMemory creates a checkpoint engine over a memory-backed store,
// used by tests and by nodes running without persistence.
func NewInMemory(log *logging.Logger, config Config) (*Engine, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not open checkpoint store")
	}
	return newEngine(log, config, db), nil
}

func newEngine(log *logging.Logger, config Config, db *leveldb.DB) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:     config,
		log:        log,
		db:         db,
		components: map[string]State{},
	}
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// Register adds a component under a unique name. Registration order is
// restore order.
func (e *Engine) Register(name string, c State) {
	if _, ok := e.components[name]; ok {
		e.log.Panic("duplicate checkpoint component", logging.String("component", name))
	}
	e.order = append(e.order, name)
	e.components[name] = c
}

// Snapshot collects every component's state and writes it in one batch.
func (e *Engine) Snapshot(now time.Time) error {
	batch := new(leveldb.Batch)
	for _, name := range e.order {
		data, err := e.components[name].Checkpoint()
		if err != nil {
			return errors.Wrapf(err, "checkpointing %s", name)
		}
		batch.Put(componentKey(name), data)
	}
	m, err := json.Marshal(meta{Taken: now, Components: e.order})
	if err != nil {
		return err
	}
	batch.Put(metaKey, m)

	if err := e.db.Write(batch, nil); err != nil {
		return errors.Wrap(err, "could not write checkpoint")
	}
	e.log.Info("checkpoint taken",
		logging.Time("at", now),
		logging.Int("components", len(e.order)),
	)
	return nil
}

// Restore loads the last checkpoint into the registered components. A
// store with no checkpoint is a fresh start, not an error.
func (e *Engine) Restore() error {
	m, err := e.db.Get(metaKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		e.log.Info("no checkpoint found, starting fresh")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "could not read checkpoint meta")
	}
	stored := meta{}
	if err := json.Unmarshal(m, &stored); err != nil {
		return err
	}

	for _, name := range stored.Components {
		c, ok := e.components[name]
		if !ok {
			return errors.Wrap(ErrUnknownComponent, name)
		}
		data, err := e.db.Get(componentKey(name), nil)
		if err != nil {
			return errors.Wrapf(err, "could not read checkpoint for %s", name)
		}
		if err := c.Load(data); err != nil {
			return errors.Wrapf(err, "could not restore %s", name)
		}
	}
	e.log.Info("checkpoint restored",
		logging.Time("taken", stored.Taken),
		logging.Int("components", len(stored.Components)),
	)
	return nil
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	return e.db.Close()
}

func componentKey(name string) []byte {
	return []byte("cp:" + name)
}
