package api

import (
	"net/http"
	"time"

	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"

	"github.com/julienschmidt/httprouter"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- reads ---

func (s *Server) listAssets(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, s.reg.Assets())
}

func (s *Server) listSeries(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, s.reg.AllSeries())
}

type vaultView struct {
	Vault     *types.Vault    `json:"vault"`
	Balances  *types.Balances `json:"balances"`
	InAuction bool            `json:"inAuction"`
	Level     string          `json:"level,omitempty"`
}

func (s *Server) listVaults(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	vaults := s.ledger.Vaults()
	out := make([]vaultView, 0, len(vaults))
	for _, v := range vaults {
		b, err := s.ledger.Balances(v.ID)
		if err != nil {
			continue
		}
		out = append(out, vaultView{
			Vault:     v,
			Balances:  b,
			InAuction: s.ledger.InAuction(v.ID),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getVault(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	v, err := s.ledger.Vault(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := s.ledger.Balances(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	view := vaultView{
		Vault:     v,
		Balances:  b,
		InAuction: s.ledger.InAuction(id),
	}
	// the level is best effort, oracles may be stale on a pure read
	if level, err := s.ledger.Level(id); err == nil {
		view.Level = level.String()
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) listAuctions(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, s.liq.Auctions())
}

func (s *Server) getAuction(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	a, err := s.liq.Auction(p.ByName("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, a)
}

func (s *Server) getAuctionPrice(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	now := s.timeSvc.GetTimeNow()
	if at := r.URL.Query().Get("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid at timestamp"})
			return
		}
		now = parsed
	}
	price, err := s.liq.Price(p.ByName("id"), now)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"vaultId":    p.ByName("id"),
		"at":         now.Format(time.RFC3339),
		"proportion": price.String(),
	})
}

// --- vault writes ---

type buildVaultRequest struct {
	Owner  string `json:"owner"`
	Series string `json:"series"`
	Ilk    string `json:"ilk"`
}

func (s *Server) buildVault(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := buildVaultRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.exec.BuildVault(r.Context(), req.Owner, req.Series, req.Ilk)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, v)
}

type partyRequest struct {
	Party string `json:"party"`
}

func (s *Server) destroyVault(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := partyRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.exec.DestroyVault(r.Context(), p.ByName("id"), req.Party); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "destroyed"})
}

type pourRequest struct {
	Party    string `json:"party"`
	InkDelta string `json:"inkDelta"`
	ArtDelta string `json:"artDelta"`
}

func (s *Server) pour(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := pourRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	ink, bad := num.IntFromString(req.InkDelta)
	if bad {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid inkDelta"})
		return
	}
	art, bad := num.IntFromString(req.ArtDelta)
	if bad {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid artDelta"})
		return
	}
	b, err := s.exec.Pour(r.Context(), p.ByName("id"), req.Party, ink, art)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, b)
}

type tweakRequest struct {
	Party  string `json:"party"`
	Series string `json:"series"`
	Ilk    string `json:"ilk"`
}

func (s *Server) tweakVault(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := tweakRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.exec.TweakVault(r.Context(), p.ByName("id"), req.Party, req.Series, req.Ilk)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

type giveRequest struct {
	Party    string `json:"party"`
	NewOwner string `json:"newOwner"`
}

func (s *Server) giveVault(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := giveRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.exec.GiveVault(r.Context(), p.ByName("id"), req.Party, req.NewOwner)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

type rollRequest struct {
	Party  string `json:"party"`
	Series string `json:"series"`
}

func (s *Server) rollVault(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := rollRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	b, err := s.exec.RollVault(r.Context(), p.ByName("id"), req.Party, req.Series)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, b)
}

type stirRequest struct {
	Party string `json:"party"`
	Src   string `json:"src"`
	Dst   string `json:"dst"`
	Ink   string `json:"ink"`
	Art   string `json:"art"`
}

func (s *Server) stir(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := stirRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	ink, overflow := num.UintFromString(req.Ink)
	if overflow {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ink"})
		return
	}
	art, overflow := num.UintFromString(req.Art)
	if overflow {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid art"})
		return
	}
	if err := s.exec.StirVaults(r.Context(), req.Src, req.Dst, req.Party, ink, art); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- auction writes ---

type startAuctionRequest struct {
	VaultID string `json:"vaultId"`
	Caller  string `json:"caller"`
}

func (s *Server) startAuction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := startAuctionRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	a, err := s.exec.StartAuction(r.Context(), req.VaultID, req.Caller)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, a)
}

type payDebtRequest struct {
	Caller       string `json:"caller"`
	MaxDebtRepay string `json:"maxDebtRepay"`
}

func (s *Server) payDebt(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	req := payDebtRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	max, overflow := num.UintFromString(req.MaxDebtRepay)
	if overflow {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid maxDebtRepay"})
		return
	}
	repaid, granted, err := s.exec.PayDebt(r.Context(), p.ByName("id"), req.Caller, max)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"debtRepaid":        repaid.String(),
		"collateralGranted": granted.String(),
	})
}

func (s *Server) cancelAuction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := s.exec.CancelAuction(r.Context(), p.ByName("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// --- governance ---

func (s *Server) registerAsset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := types.AssetType{}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.gov.RegisterAsset(&req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, req)
}

func (s *Server) registerSeries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := types.Series{}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.gov.RegisterSeries(&req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, req)
}

type addIlksRequest struct {
	Series string   `json:"series"`
	Ilks   []string `json:"ilks"`
}

func (s *Server) addIlks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := addIlksRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.gov.AddIlks(req.Series, req.Ilks); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type debtLimitsRequest struct {
	Series string            `json:"series"`
	Ilk    string            `json:"ilk"`
	Limits *types.DebtLimits `json:"limits"`
}

func (s *Server) setDebtLimits(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := debtLimitsRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Limits == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing limits"})
		return
	}
	if err := s.gov.SetDebtLimits(req.Series, req.Ilk, req.Limits); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type collateralTermsRequest struct {
	Series string                 `json:"series"`
	Ilk    string                 `json:"ilk"`
	Terms  *types.CollateralTerms `json:"terms"`
}

func (s *Server) setCollateralTerms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := collateralTermsRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Terms == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing terms"})
		return
	}
	if err := s.gov.SetCollateralTerms(req.Series, req.Ilk, req.Terms); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type auctionParamsRequest struct {
	Ilk    string               `json:"ilk"`
	Params *types.AuctionParams `json:"params"`
}

func (s *Server) setAuctionParams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := auctionParamsRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Params == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing params"})
		return
	}
	if err := s.gov.SetAuctionParams(req.Ilk, req.Params); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type lendingOracleRequest struct {
	Series string `json:"series"`
	Oracle string `json:"oracle"`
}

func (s *Server) setLendingOracle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := lendingOracleRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.gov.SetLendingOracle(req.Series, req.Oracle); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type spotPriceRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Rate  string `json:"rate"`
}

func (s *Server) setSpotPrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := spotPriceRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	rate, err := num.DecimalFromString(req.Rate)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid rate"})
		return
	}
	s.oracle.SetSpot(req.Base, req.Quote, rate)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type accrualRequest struct {
	Series string `json:"series"`
	Rate   string `json:"rate"`
}

func (s *Server) setAccrual(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := accrualRequest{}
	if !s.decode(w, r, &req) {
		return
	}
	rate, err := num.DecimalFromString(req.Rate)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid rate"})
		return
	}
	s.oracle.SetAccrual(req.Series, rate)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
