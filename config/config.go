package config

import (
	"os"
	"path/filepath"

	"github.com/crucible-fi/crucible/api"
	"github.com/crucible-fi/crucible/config/encoding"
	"github.com/crucible-fi/crucible/core/broker"
	"github.com/crucible-fi/crucible/core/checkpoint"
	"github.com/crucible-fi/crucible/core/execution"
	"github.com/crucible-fi/crucible/core/governance"
	"github.com/crucible-fi/crucible/core/ledger"
	"github.com/crucible-fi/crucible/core/liquidation"
	"github.com/crucible-fi/crucible/core/metrics"
	"github.com/crucible-fi/crucible/logging"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configFileName = "config.toml"

// Config aggregates every engine's configuration into the single file a
// node runs from.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	API         api.Config         `group:"API" namespace:"api"`
	Broker      broker.Config      `group:"Broker" namespace:"broker"`
	Checkpoint  checkpoint.Config  `group:"Checkpoint" namespace:"checkpoint"`
	Execution   execution.Config   `group:"Execution" namespace:"execution"`
	Governance  governance.Config  `group:"Governance" namespace:"governance"`
	Ledger      ledger.Config      `group:"Ledger" namespace:"ledger"`
	Liquidation liquidation.Config `group:"Liquidation" namespace:"liquidation"`
	Metrics     metrics.Config     `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a fully populated default configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		API:         api.NewDefaultConfig(),
		Broker:      broker.NewDefaultConfig(),
		Checkpoint:  checkpoint.NewDefaultConfig(),
		Execution:   execution.NewDefaultConfig(),
		Governance:  governance.NewDefaultConfig(),
		Ledger:      ledger.NewDefaultConfig(),
		Liquidation: liquidation.NewDefaultConfig(),
		Metrics:     metrics.NewDefaultConfig(),
	}
}

// FilePath returns the config file location inside a node home.
func FilePath(home string) string {
	return filepath.Join(home, configFileName)
}

// Read loads the configuration from the node home.
func Read(home string) (*Config, error) {
	buf, err := os.ReadFile(FilePath(home))
	if err != nil {
		return nil, errors.Wrap(err, "could not read configuration")
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}
	return &cfg, nil
}

// Write saves the configuration into the node home, creating it if
// needed.
func Write(home string, cfg *Config) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return errors.Wrap(err, "could not create node home")
	}
	f, err := os.Create(FilePath(home))
	if err != nil {
		return errors.Wrap(err, "could not create configuration file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(err, "could not write configuration")
	}
	return nil
}
