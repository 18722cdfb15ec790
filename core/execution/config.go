package execution

import (
	"github.com/crucible-fi/crucible/config/encoding"
	"github.com/crucible-fi/crucible/logging"
)

const namedLogger = "execution"

// Config represents the configuration of the execution engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
