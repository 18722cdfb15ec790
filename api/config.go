package api

import (
	"time"

	"github.com/crucible-fi/crucible/config/encoding"
	"github.com/crucible-fi/crucible/logging"
)

const namedLogger = "api"

// Config represents the configuration of the REST API server.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	IP      string            `long:"ip" description:"Bind to address"`
	Port    int               `long:"port" description:"Bind to port"`
	Timeout encoding.Duration `long:"timeout"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		IP:      "0.0.0.0",
		Port:    3003,
		Timeout: encoding.Duration{Duration: 5 * time.Second},
	}
}
