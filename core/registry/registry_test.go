package registry_test

import (
	"testing"
	"time"

	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.AddAsset(&types.AssetType{ID: "dai", Symbol: "DAI", Decimals: 18}))
	require.NoError(t, reg.AddAsset(&types.AssetType{ID: "weth", Symbol: "WETH", Decimals: 18}))
	require.NoError(t, reg.AddSeries(&types.Series{
		ID:        "fydai-2703",
		BaseAsset: "dai",
		Maturity:  time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
		DebtToken: "fyDAI-2703",
	}))
	return reg
}

func TestRegistry(t *testing.T) {
	t.Run("assets and series are immutable once registered", testImmutableRecords)
	t.Run("series require a registered base asset", testSeriesNeedsAsset)
	t.Run("ilks only accept registered assets", testIlkValidation)
	t.Run("pair configuration requires an accepted ilk", testPairConfiguration)
	t.Run("auction parameter validation", testAuctionParamsValidation)
	t.Run("list accessors sort their output", testSortedAccessors)
	t.Run("matured series filter", testMaturedSeries)
}

func testImmutableRecords(t *testing.T) {
	reg := getTestRegistry(t)

	err := reg.AddAsset(&types.AssetType{ID: "dai", Symbol: "DAI2"})
	assert.ErrorIs(t, err, registry.ErrAlreadyExists)

	err = reg.AddSeries(&types.Series{ID: "fydai-2703", BaseAsset: "dai"})
	assert.ErrorIs(t, err, registry.ErrAlreadyExists)

	// the registered record is untouched
	a, err := reg.Asset("dai")
	require.NoError(t, err)
	assert.Equal(t, "DAI", a.Symbol)
}

func testSeriesNeedsAsset(t *testing.T) {
	reg := getTestRegistry(t)

	err := reg.AddSeries(&types.Series{ID: "fyusdc-2703", BaseAsset: "usdc"})
	assert.ErrorIs(t, err, types.ErrAssetNotFound)
}

func testIlkValidation(t *testing.T) {
	reg := getTestRegistry(t)

	err := reg.AddIlks("fydai-2703", []string{"weth", "doge"})
	assert.ErrorIs(t, err, types.ErrAssetNotFound)
	// rejected as a whole, nothing was added
	assert.False(t, reg.IlkAccepted("fydai-2703", "weth"))

	err = reg.AddIlks("nope", []string{"weth"})
	assert.ErrorIs(t, err, types.ErrSeriesNotFound)

	require.NoError(t, reg.AddIlks("fydai-2703", []string{"weth"}))
	assert.True(t, reg.IlkAccepted("fydai-2703", "weth"))
	assert.False(t, reg.IlkAccepted("fydai-2703", "dai"))
}

func testPairConfiguration(t *testing.T) {
	reg := getTestRegistry(t)
	limits := &types.DebtLimits{Ceiling: num.NewUint(1000), Floor: num.NewUint(10)}
	terms := &types.CollateralTerms{Ratio: num.MustDecimalFromString("1.5"), Oracle: "builtin"}

	assert.ErrorIs(t, reg.SetDebtLimits("fydai-2703", "weth", limits), types.ErrIlkNotConfigured)
	assert.ErrorIs(t, reg.SetCollateralTerms("fydai-2703", "weth", terms), types.ErrIlkNotConfigured)

	require.NoError(t, reg.AddIlks("fydai-2703", []string{"weth"}))
	require.NoError(t, reg.SetDebtLimits("fydai-2703", "weth", limits))
	require.NoError(t, reg.SetCollateralTerms("fydai-2703", "weth", terms))

	badTerms := &types.CollateralTerms{Ratio: num.MustDecimalFromString("0.9"), Oracle: "builtin"}
	assert.ErrorIs(t, reg.SetCollateralTerms("fydai-2703", "weth", badTerms), registry.ErrRatioBelowOne)

	got, err := reg.DebtLimits("fydai-2703", "weth")
	require.NoError(t, err)
	assert.Equal(t, "1000", got.Ceiling.String())

	// the returned value is a clone, mutating it does not leak back
	got.Ceiling = num.NewUint(1)
	again, err := reg.DebtLimits("fydai-2703", "weth")
	require.NoError(t, err)
	assert.Equal(t, "1000", again.Ceiling.String())
}

func testAuctionParamsValidation(t *testing.T) {
	reg := getTestRegistry(t)

	_, err := reg.AuctionParams("weth")
	assert.ErrorIs(t, err, registry.ErrNoAuctionParams)

	err = reg.SetAuctionParams("weth", &types.AuctionParams{
		Duration:          0,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	})
	assert.ErrorIs(t, err, registry.ErrInvalidAuctionParams)

	err = reg.SetAuctionParams("weth", &types.AuctionParams{
		Duration:          time.Hour,
		InitialProportion: num.MustDecimalFromString("0.5"),
		FloorProportion:   num.DecimalOne(),
	})
	assert.ErrorIs(t, err, registry.ErrInvalidAuctionParams)

	err = reg.SetAuctionParams("doge", &types.AuctionParams{
		Duration:          time.Hour,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	})
	assert.ErrorIs(t, err, types.ErrAssetNotFound)

	require.NoError(t, reg.SetAuctionParams("weth", &types.AuctionParams{
		Duration:          4 * time.Hour,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	}))
	p, err := reg.AuctionParams("weth")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, p.Duration)
}

func testSortedAccessors(t *testing.T) {
	reg := getTestRegistry(t)

	assets := reg.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, "dai", assets[0].ID)
	assert.Equal(t, "weth", assets[1].ID)
}

func testMaturedSeries(t *testing.T) {
	reg := getTestRegistry(t)

	before := time.Date(2027, 3, 30, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, reg.MaturedSeries(before))

	after := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
	matured := reg.MaturedSeries(after)
	require.Len(t, matured, 1)
	assert.Equal(t, "fydai-2703", matured[0].ID)
}

func TestRegistryCheckpointRoundTrip(t *testing.T) {
	reg := getTestRegistry(t)
	require.NoError(t, reg.AddIlks("fydai-2703", []string{"weth"}))
	require.NoError(t, reg.SetDebtLimits("fydai-2703", "weth", &types.DebtLimits{
		Ceiling: num.NewUint(1000), Floor: num.NewUint(10),
	}))
	require.NoError(t, reg.SetCollateralTerms("fydai-2703", "weth", &types.CollateralTerms{
		Ratio: num.MustDecimalFromString("1.5"), Oracle: "builtin",
	}))
	require.NoError(t, reg.SetAuctionParams("weth", &types.AuctionParams{
		Duration:          4 * time.Hour,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	}))
	require.NoError(t, reg.SetLendingOracle("fydai-2703", "builtin"))

	data, err := reg.Checkpoint()
	require.NoError(t, err)

	restored := registry.New()
	require.NoError(t, restored.Load(data))

	assert.True(t, restored.IlkAccepted("fydai-2703", "weth"))
	limits, err := restored.DebtLimits("fydai-2703", "weth")
	require.NoError(t, err)
	assert.Equal(t, "1000", limits.Ceiling.String())
	oracle, err := restored.LendingOracle("fydai-2703")
	require.NoError(t, err)
	assert.Equal(t, "builtin", oracle)

	// identical state serializes to identical bytes
	data2, err := restored.Checkpoint()
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}
