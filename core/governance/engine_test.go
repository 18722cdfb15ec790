package governance_test

import (
	"testing"
	"time"

	"github.com/crucible-fi/crucible/core/custody"
	"github.com/crucible-fi/crucible/core/debttoken"
	"github.com/crucible-fi/crucible/core/governance"
	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
	"github.com/crucible-fi/crucible/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestEngine(t *testing.T) (*governance.Engine, *registry.Registry, *custody.Builtin, *debttoken.Builtin) {
	t.Helper()
	reg := registry.New()
	gateway := custody.NewBuiltin()
	tokens := debttoken.NewBuiltin()
	eng := governance.New(logging.NewTestLogger(), governance.NewDefaultConfig(), reg, gateway, tokens)
	return eng, reg, gateway, tokens
}

func TestRegisterAssetEnablesCustody(t *testing.T) {
	eng, reg, gateway, _ := getTestEngine(t)

	require.NoError(t, eng.RegisterAsset(&types.AssetType{ID: "weth", Symbol: "WETH", Decimals: 18}))

	_, err := reg.Asset("weth")
	assert.NoError(t, err)
	// the gateway accepts the asset from now on
	assert.NoError(t, gateway.Mint("weth", "alice", num.NewUint(1)))

	err = eng.RegisterAsset(&types.AssetType{ID: "weth", Symbol: "WETH", Decimals: 18})
	assert.ErrorIs(t, err, registry.ErrAlreadyExists)
}

func TestRegisterSeriesEnablesDebtToken(t *testing.T) {
	eng, _, _, tokens := getTestEngine(t)
	require.NoError(t, eng.RegisterAsset(&types.AssetType{ID: "dai", Symbol: "DAI", Decimals: 18}))

	require.NoError(t, eng.RegisterSeries(&types.Series{
		ID:        "fydai-2703",
		BaseAsset: "dai",
		Maturity:  time.Now().Add(time.Hour),
		DebtToken: "fyDAI-2703",
	}))
	assert.NoError(t, tokens.Mint("fyDAI-2703", "alice", num.NewUint(1)))

	err := eng.RegisterSeries(&types.Series{ID: "fydai-2706", BaseAsset: "nope"})
	assert.ErrorIs(t, err, types.ErrAssetNotFound)
}

func TestPairConfiguration(t *testing.T) {
	eng, reg, _, _ := getTestEngine(t)
	require.NoError(t, eng.RegisterAsset(&types.AssetType{ID: "dai", Symbol: "DAI", Decimals: 18}))
	require.NoError(t, eng.RegisterAsset(&types.AssetType{ID: "weth", Symbol: "WETH", Decimals: 18}))
	require.NoError(t, eng.RegisterSeries(&types.Series{
		ID:        "fydai-2703",
		BaseAsset: "dai",
		Maturity:  time.Now().Add(time.Hour),
		DebtToken: "fyDAI-2703",
	}))

	t.Run("terms need the ilk configured first", func(t *testing.T) {
		err := eng.SetCollateralTerms("fydai-2703", "weth", &types.CollateralTerms{
			Ratio:  num.MustDecimalFromString("1.5"),
			Oracle: "spot",
		})
		assert.ErrorIs(t, err, types.ErrIlkNotConfigured)
	})

	t.Run("full pair setup round trips", func(t *testing.T) {
		require.NoError(t, eng.AddIlks("fydai-2703", []string{"weth"}))
		require.NoError(t, eng.SetDebtLimits("fydai-2703", "weth", &types.DebtLimits{
			Ceiling:  num.NewUint(1000000),
			Floor:    num.NewUint(100),
			Decimals: 18,
		}))
		require.NoError(t, eng.SetCollateralTerms("fydai-2703", "weth", &types.CollateralTerms{
			Ratio:  num.MustDecimalFromString("1.5"),
			Oracle: "spot",
		}))
		require.NoError(t, eng.SetAuctionParams("weth", &types.AuctionParams{
			Duration:          4 * time.Hour,
			InitialProportion: num.MustDecimalFromString("0.5"),
			FloorProportion:   num.MustDecimalFromString("0.5"),
		}))
		require.NoError(t, eng.SetLendingOracle("fydai-2703", "rate"))

		terms, err := reg.CollateralTerms("fydai-2703", "weth")
		require.NoError(t, err)
		assert.Equal(t, "1.5", terms.Ratio.String())
	})

	t.Run("a ratio below one is rejected", func(t *testing.T) {
		err := eng.SetCollateralTerms("fydai-2703", "weth", &types.CollateralTerms{
			Ratio:  num.MustDecimalFromString("0.9"),
			Oracle: "spot",
		})
		assert.ErrorIs(t, err, registry.ErrRatioBelowOne)
	})

	t.Run("inverted auction proportions are rejected", func(t *testing.T) {
		err := eng.SetAuctionParams("weth", &types.AuctionParams{
			Duration:          time.Hour,
			InitialProportion: num.MustDecimalFromString("0.5"),
			FloorProportion:   num.DecimalOne(),
		})
		assert.ErrorIs(t, err, registry.ErrInvalidAuctionParams)
	})
}
