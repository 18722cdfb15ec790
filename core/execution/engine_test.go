package execution_test

import (
	"context"
	"testing"
	"time"

	bmocks "github.com/crucible-fi/crucible/core/broker/mocks"
	"github.com/crucible-fi/crucible/core/custody"
	"github.com/crucible-fi/crucible/core/debttoken"
	"github.com/crucible-fi/crucible/core/execution"
	"github.com/crucible-fi/crucible/core/ledger"
	"github.com/crucible-fi/crucible/core/liquidation"
	"github.com/crucible-fi/crucible/core/oracles"
	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
	"github.com/crucible-fi/crucible/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dai     = "dai"
	weth    = "weth"
	series  = "fydai-2703"
	series2 = "fydai-2709"
	fyDAI   = "fyDAI-2703"
	fyDAI2  = "fyDAI-2709"
	alice   = "alice"
	bob     = "bob"
	keeper  = "keeper"
)

type testClock struct {
	now time.Time
}

func (c *testClock) GetTimeNow() time.Time {
	return c.now
}

type testEngine struct {
	*execution.Engine
	ctrl    *gomock.Controller
	ledger  *ledger.Engine
	custody *custody.Builtin
	tokens  *debttoken.Builtin
	oracle  *oracles.Builtin
	clock   *testClock
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	brk := bmocks.NewMockInterface(ctrl)
	brk.EXPECT().Send(gomock.Any()).AnyTimes()
	brk.EXPECT().SendBatch(gomock.Any()).AnyTimes()

	reg := registry.New()
	require.NoError(t, reg.AddAsset(&types.AssetType{ID: dai, Symbol: "DAI", Decimals: 18}))
	require.NoError(t, reg.AddAsset(&types.AssetType{ID: weth, Symbol: "WETH", Decimals: 18}))
	maturity := time.Now().Add(90 * 24 * time.Hour)
	for id, token := range map[string]string{series: fyDAI, series2: fyDAI2} {
		require.NoError(t, reg.AddSeries(&types.Series{
			ID:        id,
			BaseAsset: dai,
			Maturity:  maturity,
			DebtToken: token,
		}))
		require.NoError(t, reg.AddIlks(id, []string{weth}))
		require.NoError(t, reg.SetDebtLimits(id, weth, &types.DebtLimits{
			Ceiling:  num.NewUint(10000),
			Floor:    num.NewUint(10),
			Decimals: 0,
		}))
		require.NoError(t, reg.SetCollateralTerms(id, weth, &types.CollateralTerms{
			Ratio:  num.MustDecimalFromString("1.1"),
			Oracle: "spot",
		}))
		require.NoError(t, reg.SetLendingOracle(id, "rate"))
	}
	require.NoError(t, reg.SetAuctionParams(weth, &types.AuctionParams{
		Duration:          4 * time.Hour,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	}))

	builtin := oracles.NewBuiltin()
	builtin.SetSpot(weth, dai, num.DecimalFromInt64(2))
	builtin.SetAccrual(series, num.DecimalOne())
	builtin.SetAccrual(series2, num.DecimalOne())
	svc := oracles.NewService()
	svc.RegisterPriceOracle("spot", builtin)
	svc.RegisterRateOracle("rate", builtin)

	gateway := custody.NewBuiltin()
	gateway.EnableAsset(weth)
	require.NoError(t, gateway.Mint(weth, alice, num.NewUint(1000)))

	tokens := debttoken.NewBuiltin()
	tokens.EnableToken(fyDAI)
	tokens.EnableToken(fyDAI2)

	log := logging.NewTestLogger()
	led := ledger.New(log, ledger.NewDefaultConfig(), reg, svc, brk)
	clock := &testClock{now: time.Unix(1700000000, 0)}
	liq := liquidation.New(log, liquidation.NewDefaultConfig(), led, reg, clock, brk)
	eng := execution.New(log, execution.NewDefaultConfig(), led, liq, gateway, tokens, reg)

	return &testEngine{
		Engine:  eng,
		ctrl:    ctrl,
		ledger:  led,
		custody: gateway,
		tokens:  tokens,
		oracle:  builtin,
		clock:   clock,
	}
}

func (te *testEngine) wethBalance(t *testing.T, holder string) string {
	t.Helper()
	b, err := te.custody.BalanceOf(weth, holder)
	require.NoError(t, err)
	return b.String()
}

func (te *testEngine) tokenBalance(t *testing.T, token, holder string) string {
	t.Helper()
	b, err := te.tokens.BalanceOf(token, holder)
	require.NoError(t, err)
	return b.String()
}

func TestPourMovesAssets(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	v, err := te.BuildVault(ctx, alice, series, weth)
	require.NoError(t, err)

	t.Run("borrowing pulls collateral and mints debt tokens", func(t *testing.T) {
		b, err := te.Pour(ctx, v.ID, alice, num.NewInt(150), num.NewInt(100))
		require.NoError(t, err)
		assert.Equal(t, "150", b.Ink.String())
		assert.Equal(t, "850", te.wethBalance(t, alice))
		held, _ := te.custody.Held(weth)
		assert.Equal(t, "150", held.String())
		assert.Equal(t, "100", te.tokenBalance(t, fyDAI, alice))
	})

	t.Run("repaying burns debt tokens", func(t *testing.T) {
		_, err := te.Pour(ctx, v.ID, alice, num.NewInt(0), num.NewInt(-40))
		require.NoError(t, err)
		assert.Equal(t, "60", te.tokenBalance(t, fyDAI, alice))
		supply, _ := te.tokens.TotalSupply(fyDAI)
		assert.Equal(t, "60", supply.String())
	})

	t.Run("withdrawing releases collateral from custody", func(t *testing.T) {
		_, err := te.Pour(ctx, v.ID, alice, num.NewInt(-10), num.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, "860", te.wethBalance(t, alice))
		held, _ := te.custody.Held(weth)
		assert.Equal(t, "140", held.String())
	})
}

func TestPourAbortsOnFailedTransfer(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	// bob holds no weth, the deposit fails and nothing is recorded
	v, err := te.BuildVault(ctx, bob, series, weth)
	require.NoError(t, err)

	_, err = te.Pour(ctx, v.ID, bob, num.NewInt(100), num.NewInt(50))
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)

	b, err := te.ledger.Balances(v.ID)
	require.NoError(t, err)
	assert.True(t, b.IsZero())
	held, _ := te.custody.Held(weth)
	assert.Equal(t, "0", held.String())
	supply, _ := te.tokens.TotalSupply(fyDAI)
	assert.Equal(t, "0", supply.String())
}

func TestRollVaultSwapsDebtTokens(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	v, err := te.BuildVault(ctx, alice, series, weth)
	require.NoError(t, err)
	_, err = te.Pour(ctx, v.ID, alice, num.NewInt(150), num.NewInt(100))
	require.NoError(t, err)

	b, err := te.RollVault(ctx, v.ID, alice, series2)
	require.NoError(t, err)
	assert.Equal(t, "100", b.Art.String())
	assert.Equal(t, "0", te.tokenBalance(t, fyDAI, alice))
	assert.Equal(t, "100", te.tokenBalance(t, fyDAI2, alice))
}

func TestLiquidationSettlement(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	v, err := te.BuildVault(ctx, alice, series, weth)
	require.NoError(t, err)
	_, err = te.Pour(ctx, v.ID, alice, num.NewInt(150), num.NewInt(100))
	require.NoError(t, err)

	// the keeper funds itself with debt tokens to bid with
	require.NoError(t, te.tokens.Mint(fyDAI, keeper, num.NewUint(100)))

	te.oracle.SetSpot(weth, dai, num.MustDecimalFromString("0.5"))
	_, err = te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	t.Run("a fill burns the bid and releases collateral", func(t *testing.T) {
		repaid, granted, err := te.PayDebt(ctx, v.ID, keeper, num.NewUint(40))
		require.NoError(t, err)
		assert.Equal(t, "40", repaid.String())
		assert.Equal(t, "60", granted.String())
		assert.Equal(t, "60", te.tokenBalance(t, fyDAI, keeper))
		assert.Equal(t, "60", te.wethBalance(t, keeper))
		held, _ := te.custody.Held(weth)
		assert.Equal(t, "90", held.String())
	})

	t.Run("cancel needs the market to recover first", func(t *testing.T) {
		err := te.CancelAuction(ctx, v.ID)
		assert.ErrorIs(t, err, types.ErrStillUndercollateralized)

		te.oracle.SetSpot(weth, dai, num.DecimalFromInt64(2))
		require.NoError(t, te.CancelAuction(ctx, v.ID))
		assert.False(t, te.ledger.InAuction(v.ID))
	})

	t.Run("a bidder without tokens cannot fill", func(t *testing.T) {
		te.oracle.SetSpot(weth, dai, num.MustDecimalFromString("0.5"))
		_, err := te.StartAuction(ctx, v.ID, keeper)
		require.NoError(t, err)

		_, _, err = te.PayDebt(ctx, v.ID, bob, num.NewUint(10))
		assert.ErrorIs(t, err, debttoken.ErrInsufficientBalance)
		b, _ := te.ledger.Balances(v.ID)
		assert.Equal(t, "60", b.Art.String())
	})
}
