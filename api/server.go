package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crucible-fi/crucible/core/execution"
	"github.com/crucible-fi/crucible/core/governance"
	"github.com/crucible-fi/crucible/core/ledger"
	"github.com/crucible-fi/crucible/core/liquidation"
	"github.com/crucible-fi/crucible/core/oracles"
	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/logging"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// TimeService supplies the current time for price reads.
type TimeService interface {
	GetTimeNow() time.Time
}

// Server exposes the node over REST: reads straight off the engines,
// writes through the execution facade, configuration through governance.
type Server struct {
	Config
	log *logging.Logger

	exec    *execution.Engine
	ledger  *ledger.Engine
	liq     *liquidation.Engine
	gov     *governance.Engine
	reg     *registry.Registry
	oracle  *oracles.Builtin
	timeSvc TimeService

	srv *http.Server
}

func NewServer(
	log *logging.Logger,
	config Config,
	exec *execution.Engine,
	ledgerEngine *ledger.Engine,
	liqEngine *liquidation.Engine,
	gov *governance.Engine,
	reg *registry.Registry,
	oracle *oracles.Builtin,
	timeSvc TimeService,
) *Server {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Server{
		Config:  config,
		log:     log,
		exec:    exec,
		ledger:  ledgerEngine,
		liq:     liqEngine,
		gov:     gov,
		reg:     reg,
		oracle:  oracle,
		timeSvc: timeSvc,
	}
}

// ReloadConf updates the internal configuration of the server.
func (s *Server) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.SetLevel(cfg.Level.Get())
	}
	s.Config = cfg
}

// Router builds the route table. Exposed so tests can drive the handlers
// without a listening socket.
func (s *Server) Router() http.Handler {
	router := httprouter.New()

	router.GET("/health", s.health)

	router.GET("/assets", s.listAssets)
	router.GET("/series", s.listSeries)
	router.GET("/vaults", s.listVaults)
	router.GET("/vaults/:id", s.getVault)
	router.GET("/auctions", s.listAuctions)
	router.GET("/auctions/:id", s.getAuction)
	router.GET("/auctions/:id/price", s.getAuctionPrice)

	router.POST("/vaults", s.buildVault)
	router.POST("/vaults/:id/destroy", s.destroyVault)
	router.POST("/vaults/:id/pour", s.pour)
	router.POST("/vaults/:id/tweak", s.tweakVault)
	router.POST("/vaults/:id/give", s.giveVault)
	router.POST("/vaults/:id/roll", s.rollVault)
	router.POST("/stir", s.stir)

	router.POST("/auctions", s.startAuction)
	router.POST("/auctions/:id/pay", s.payDebt)
	router.POST("/auctions/:id/cancel", s.cancelAuction)

	router.POST("/governance/assets", s.registerAsset)
	router.POST("/governance/series", s.registerSeries)
	router.POST("/governance/ilks", s.addIlks)
	router.POST("/governance/debt-limits", s.setDebtLimits)
	router.POST("/governance/collateral-terms", s.setCollateralTerms)
	router.POST("/governance/auction-params", s.setAuctionParams)
	router.POST("/governance/lending-oracle", s.setLendingOracle)

	router.POST("/oracles/spot", s.setSpotPrice)
	router.POST("/oracles/accrual", s.setAccrual)

	return cors.AllowAll().Handler(router)
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.IP, s.Port)
	s.srv = &http.Server{
		Addr:        addr,
		Handler:     s.Router(),
		ReadTimeout: s.Timeout.Get(),
	}
	s.log.Info("REST API listening", logging.String("address", addr))

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			s.log.Error("API shutdown failed", logging.Error(err))
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("could not write response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}
