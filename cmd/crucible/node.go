package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/crucible-fi/crucible/api"
	"github.com/crucible-fi/crucible/config"
	"github.com/crucible-fi/crucible/core/broker"
	"github.com/crucible-fi/crucible/core/checkpoint"
	"github.com/crucible-fi/crucible/core/custody"
	"github.com/crucible-fi/crucible/core/debttoken"
	"github.com/crucible-fi/crucible/core/execution"
	"github.com/crucible-fi/crucible/core/governance"
	"github.com/crucible-fi/crucible/core/ledger"
	"github.com/crucible-fi/crucible/core/liquidation"
	"github.com/crucible-fi/crucible/core/metrics"
	"github.com/crucible-fi/crucible/core/oracles"
	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/logging"

	"github.com/jessevdk/go-flags"
)

// builtinOracleName is the name the node's own oracle is registered
// under. Governance references it when configuring collateral terms and
// lending oracles.
const builtinOracleName = "builtin"

type NodeCmd struct {
	HomeFlag

	ctx context.Context
}

var nodeCmd NodeCmd

func Node(ctx context.Context, parser *flags.Parser) error {
	nodeCmd = NodeCmd{ctx: ctx}
	_, err := parser.AddCommand(
		"node",
		"Run a crucible node",
		"Run a crucible node as defined by the configuration in the node home",
		&nodeCmd,
	)
	return err
}

// stdClock is the production time source.
type stdClock struct{}

func (stdClock) GetTimeNow() time.Time {
	return time.Now().UTC()
}

func (cmd *NodeCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv(os.Getenv("CRUCIBLE_ENV"))
	defer log.AtExit()

	home, err := cmd.HomeDir()
	if err != nil {
		return err
	}

	watcher, err := config.NewWatcher(cmd.ctx, log, home)
	if err != nil {
		return err
	}
	cfg := watcher.Get()
	log.SetLevel(cfg.Level.Get())

	metrics.Start(log, cfg.Metrics)

	reg := registry.New()
	oracle := oracles.NewBuiltin()
	svc := oracles.NewService()
	svc.RegisterPriceOracle(builtinOracleName, oracle)
	svc.RegisterRateOracle(builtinOracleName, oracle)

	gateway := custody.NewBuiltin()
	tokens := debttoken.NewBuiltin()
	brk := broker.New(log, cfg.Broker)
	clock := stdClock{}

	led := ledger.New(log, cfg.Ledger, reg, svc, brk)
	liq := liquidation.New(log, cfg.Liquidation, led, reg, clock, brk)
	exec := execution.New(log, cfg.Execution, led, liq, gateway, tokens, reg)
	gov := governance.New(log, cfg.Governance, reg, gateway, tokens)

	cpPath := cfg.Checkpoint.DBPath
	if !filepath.IsAbs(cpPath) {
		cpPath = filepath.Join(home, cpPath)
	}
	cp, err := checkpoint.New(log, cfg.Checkpoint, cpPath)
	if err != nil {
		return err
	}
	defer cp.Close()

	// registration order is restore order, the registry must load
	// before the engines that read from it
	cp.Register("registry", reg)
	cp.Register("custody", gateway)
	cp.Register("debttoken", tokens)
	cp.Register("ledger", led)
	cp.Register("liquidation", liq)
	if err := cp.Restore(); err != nil {
		return err
	}

	srv := api.NewServer(log, cfg.API, exec, led, liq, gov, reg, oracle, clock)

	watcher.OnConfigUpdate(func(c config.Config) {
		log.SetLevel(c.Level.Get())
		led.ReloadConf(c.Ledger)
		liq.ReloadConf(c.Liquidation)
		exec.ReloadConf(c.Execution)
		gov.ReloadConf(c.Governance)
		cp.ReloadConf(c.Checkpoint)
		srv.ReloadConf(c.API)
	})

	go func() {
		ticker := time.NewTicker(cfg.Checkpoint.Interval.Get())
		defer ticker.Stop()
		for {
			select {
			case <-cmd.ctx.Done():
				return
			case now := <-ticker.C:
				if err := cp.Snapshot(now); err != nil {
					log.Error("periodic checkpoint failed", logging.Error(err))
				}
			}
		}
	}()

	err = srv.Start(cmd.ctx)

	if serr := cp.Snapshot(time.Now().UTC()); serr != nil {
		log.Error("final checkpoint failed", logging.Error(serr))
	}
	return err
}
