package checkpoint

import (
	"time"

	"github.com/crucible-fi/crucible/config/encoding"
	"github.com/crucible-fi/crucible/logging"
)

const namedLogger = "checkpoint"

// Config represents the configuration of the checkpoint engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// DBPath is the on-disk location of the checkpoint store, relative
	// paths resolve against the node home.
	DBPath string `long:"db-path"`
	// Interval is how often a running node takes a checkpoint.
	Interval encoding.Duration `long:"interval"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:    encoding.LogLevel{Level: logging.InfoLevel},
		DBPath:   "checkpoints",
		Interval: encoding.Duration{Duration: time.Minute},
	}
}
