package governance

import (
	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/logging"
)

// AssetActivator is notified when governance registers an asset, so the
// custody side can start accepting it.
type AssetActivator interface {
	EnableAsset(assetID string)
}

// TokenActivator is notified when governance registers a series, so the
// debt token side can start minting its instrument.
type TokenActivator interface {
	EnableToken(tokenID string)
}

// Engine is the write surface over the configuration registry. Every
// change flows through here so it can be validated, logged and propagated
// to the custody and debt token layers in one place.
type Engine struct {
	Config
	log     *logging.Logger
	reg     *registry.Registry
	custody AssetActivator
	tokens  TokenActivator
}

func New(log *logging.Logger, config Config, reg *registry.Registry, custody AssetActivator, tokens TokenActivator) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:  config,
		log:     log,
		reg:     reg,
		custody: custody,
		tokens:  tokens,
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

// RegisterAsset adds an asset type and enables it with the custody
// gateway.
func (e *Engine) RegisterAsset(a *types.AssetType) error {
	if err := e.reg.AddAsset(a); err != nil {
		return err
	}
	e.custody.EnableAsset(a.ID)
	e.log.Info("asset registered",
		logging.AssetID(a.ID),
		logging.String("symbol", a.Symbol),
	)
	return nil
}

// RegisterSeries adds a series and enables its debt token.
func (e *Engine) RegisterSeries(s *types.Series) error {
	if err := e.reg.AddSeries(s); err != nil {
		return err
	}
	e.tokens.EnableToken(s.DebtToken)
	e.log.Info("series registered",
		logging.SeriesID(s.ID),
		logging.AssetID(s.BaseAsset),
		logging.Time("maturity", s.Maturity),
	)
	return nil
}

// AddIlks grows the accepted collateral set of a series.
func (e *Engine) AddIlks(seriesID string, ilkIDs []string) error {
	if err := e.reg.AddIlks(seriesID, ilkIDs); err != nil {
		return err
	}
	e.log.Info("collateral accepted",
		logging.SeriesID(seriesID),
		logging.Strings("ilks", ilkIDs),
	)
	return nil
}

// SetDebtLimits configures the ceiling and dust floor of a pair.
func (e *Engine) SetDebtLimits(seriesID, ilkID string, limits *types.DebtLimits) error {
	if err := e.reg.SetDebtLimits(seriesID, ilkID, limits); err != nil {
		return err
	}
	e.log.Info("debt limits set",
		logging.SeriesID(seriesID),
		logging.AssetID(ilkID),
		logging.String("ceiling", limits.Ceiling.String()),
		logging.String("floor", limits.Floor.String()),
	)
	return nil
}

// SetCollateralTerms configures the ratio and spot oracle of a pair.
func (e *Engine) SetCollateralTerms(seriesID, ilkID string, terms *types.CollateralTerms) error {
	if err := e.reg.SetCollateralTerms(seriesID, ilkID, terms); err != nil {
		return err
	}
	e.log.Info("collateral terms set",
		logging.SeriesID(seriesID),
		logging.AssetID(ilkID),
		logging.String("ratio", terms.Ratio.String()),
		logging.String("oracle", terms.Oracle),
	)
	return nil
}

// SetAuctionParams configures the liquidation auction shape for an ilk.
// Running auctions keep the parameters they started with.
func (e *Engine) SetAuctionParams(ilkID string, params *types.AuctionParams) error {
	if err := e.reg.SetAuctionParams(ilkID, params); err != nil {
		return err
	}
	e.log.Info("auction params set",
		logging.AssetID(ilkID),
		logging.Duration("duration", params.Duration),
		logging.String("initialProportion", params.InitialProportion.String()),
		logging.String("floorProportion", params.FloorProportion.String()),
	)
	return nil
}

// SetLendingOracle binds a series to its accrual oracle.
func (e *Engine) SetLendingOracle(seriesID, oracle string) error {
	if err := e.reg.SetLendingOracle(seriesID, oracle); err != nil {
		return err
	}
	e.log.Info("lending oracle set",
		logging.SeriesID(seriesID),
		logging.String("oracle", oracle),
	)
	return nil
}
