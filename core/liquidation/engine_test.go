package liquidation_test

import (
	"context"
	"testing"
	"time"

	bmocks "github.com/crucible-fi/crucible/core/broker/mocks"
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
	dai    = "dai"
	weth   = "weth"
	series = "fydai-2703"
	alice  = "alice"
	keeper = "keeper"
)

type testClock struct {
	now time.Time
}

func (c *testClock) GetTimeNow() time.Time {
	return c.now
}

type testEngine struct {
	*liquidation.Engine
	ctrl   *gomock.Controller
	ledger *ledger.Engine
	oracle *oracles.Builtin
	clock  *testClock
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
	require.NoError(t, reg.AddSeries(&types.Series{
		ID:        series,
		BaseAsset: dai,
		Maturity:  time.Now().Add(90 * 24 * time.Hour),
		DebtToken: "fyDAI",
	}))
	require.NoError(t, reg.AddIlks(series, []string{weth}))
	require.NoError(t, reg.SetDebtLimits(series, weth, &types.DebtLimits{
		Ceiling:  num.NewUint(10000),
		Floor:    num.NewUint(10),
		Decimals: 0,
	}))
	require.NoError(t, reg.SetCollateralTerms(series, weth, &types.CollateralTerms{
		Ratio:  num.MustDecimalFromString("1.1"),
		Oracle: "spot",
	}))
	require.NoError(t, reg.SetLendingOracle(series, "rate"))
	require.NoError(t, reg.SetAuctionParams(weth, &types.AuctionParams{
		Duration:          4 * time.Hour,
		InitialProportion: num.DecimalOne(),
		FloorProportion:   num.MustDecimalFromString("0.5"),
	}))

	builtin := oracles.NewBuiltin()
	builtin.SetSpot(weth, dai, num.DecimalFromInt64(2))
	builtin.SetAccrual(series, num.DecimalOne())
	svc := oracles.NewService()
	svc.RegisterPriceOracle("spot", builtin)
	svc.RegisterRateOracle("rate", builtin)

	log := logging.NewTestLogger()
	led := ledger.New(log, ledger.NewDefaultConfig(), reg, svc, brk)
	clock := &testClock{now: time.Unix(1700000000, 0)}
	eng := liquidation.New(log, liquidation.NewDefaultConfig(), led, reg, clock, brk)

	return &testEngine{
		Engine: eng,
		ctrl:   ctrl,
		ledger: led,
		oracle: builtin,
		clock:  clock,
	}
}

// underwater builds a vault with 150 collateral backing 100 of debt, then
// drops the spot price so the position fails the solvency check.
func (te *testEngine) underwater(t *testing.T) *types.Vault {
	t.Helper()
	v, err := te.ledger.Build(context.Background(), alice, series, weth)
	require.NoError(t, err)
	_, err = te.ledger.Pour(context.Background(), v.ID, alice, num.NewInt(150), num.NewInt(100))
	require.NoError(t, err)
	te.oracle.SetSpot(weth, dai, num.MustDecimalFromString("0.5"))
	return v
}

func TestStartAuction(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()

	t.Run("a collateralized vault cannot be auctioned", func(t *testing.T) {
		v, err := te.ledger.Build(ctx, alice, series, weth)
		require.NoError(t, err)
		_, err = te.ledger.Pour(ctx, v.ID, alice, num.NewInt(150), num.NewInt(100))
		require.NoError(t, err)

		_, err = te.StartAuction(ctx, v.ID, keeper)
		assert.ErrorIs(t, err, types.ErrStillCollateralized)
	})

	t.Run("an undercollateralized vault is auctioned and snapshotted", func(t *testing.T) {
		v := te.underwater(t)
		a, err := te.StartAuction(ctx, v.ID, keeper)
		require.NoError(t, err)
		assert.Equal(t, keeper, a.Auctioneer)
		assert.Equal(t, "150", a.Ink0.String())
		assert.Equal(t, "100", a.Art0.String())
		assert.True(t, te.ledger.InAuction(v.ID))

		_, err = te.StartAuction(ctx, v.ID, keeper)
		assert.ErrorIs(t, err, types.ErrAlreadyAuctioning)
	})
}

func TestPrice(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	v := te.underwater(t)
	start := te.clock.now
	_, err := te.StartAuction(context.Background(), v.ID, keeper)
	require.NoError(t, err)

	cases := []struct {
		at   time.Duration
		want string
	}{
		{0, "1"},
		{time.Hour, "0.875"},
		{2 * time.Hour, "0.75"},
		{4 * time.Hour, "0.5"},
		{12 * time.Hour, "0.5"},
	}
	for _, c := range cases {
		p, err := te.Price(v.ID, start.Add(c.at))
		require.NoError(t, err)
		assert.Equal(t, c.want, p.String(), "price at %s", c.at)
	}

	_, err = te.Price("nope", start)
	assert.ErrorIs(t, err, types.ErrNotAuctioning)
}

func TestFullLiquidation(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	v := te.underwater(t)
	_, err := te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	// at the start of the auction the full debt buys the full snapshot
	repaid, granted, err := te.PayDebt(ctx, v.ID, keeper, num.NewUint(100))
	require.NoError(t, err)
	assert.Equal(t, "100", repaid.String())
	assert.Equal(t, "150", granted.String())

	b, err := te.ledger.Balances(v.ID)
	require.NoError(t, err)
	assert.True(t, b.IsZero())
	assert.False(t, te.ledger.InAuction(v.ID))
	_, err = te.Auction(v.ID)
	assert.ErrorIs(t, err, types.ErrNotAuctioning)
}

func TestPartialLiquidation(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	v := te.underwater(t)
	_, err := te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	repaid, granted, err := te.PayDebt(ctx, v.ID, keeper, num.NewUint(40))
	require.NoError(t, err)
	assert.Equal(t, "40", repaid.String())
	// 40/100 x 150 x 1.0
	assert.Equal(t, "60", granted.String())

	b, err := te.ledger.Balances(v.ID)
	require.NoError(t, err)
	assert.Equal(t, "90", b.Ink.String())
	assert.Equal(t, "60", b.Art.String())
	assert.True(t, te.ledger.InAuction(v.ID))

	// the snapshot stays frozen, the remaining debt still prices
	// against ink0/art0
	repaid, granted, err = te.PayDebt(ctx, v.ID, keeper, num.NewUint(1000))
	require.NoError(t, err)
	assert.Equal(t, "60", repaid.String())
	assert.Equal(t, "90", granted.String())
	assert.False(t, te.ledger.InAuction(v.ID))
}

func TestPayDebtAtTheFloor(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	v := te.underwater(t)
	_, err := te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	// well past the duration the proportion is pinned at the floor
	te.clock.now = te.clock.now.Add(48 * time.Hour)
	repaid, granted, err := te.PayDebt(ctx, v.ID, keeper, num.NewUint(100))
	require.NoError(t, err)
	assert.Equal(t, "100", repaid.String())
	// 100/100 x 150 x 0.5
	assert.Equal(t, "75", granted.String())

	// debt cleared, the leftover collateral stays with the vault
	b, _ := te.ledger.Balances(v.ID)
	assert.Equal(t, "75", b.Ink.String())
	assert.Equal(t, "0", b.Art.String())
	assert.False(t, te.ledger.InAuction(v.ID))
}

func TestCancel(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	v := te.underwater(t)
	_, err := te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	t.Run("cancel fails while the vault is still underwater", func(t *testing.T) {
		err := te.Cancel(ctx, v.ID)
		assert.ErrorIs(t, err, types.ErrStillUndercollateralized)
	})

	t.Run("cancel succeeds once the market recovers", func(t *testing.T) {
		te.oracle.SetSpot(weth, dai, num.DecimalFromInt64(2))
		require.NoError(t, te.Cancel(ctx, v.ID))
		assert.False(t, te.ledger.InAuction(v.ID))

		err := te.Cancel(ctx, v.ID)
		assert.ErrorIs(t, err, types.ErrNotAuctioning)
	})

	t.Run("the owner is back in control", func(t *testing.T) {
		_, err := te.ledger.Pour(ctx, v.ID, alice, num.NewInt(0), num.NewInt(-100))
		assert.NoError(t, err)
	})
}

func TestCheckpointRoundTrip(t *testing.T) {
	te := getTestEngine(t)
	defer te.ctrl.Finish()
	ctx := context.Background()
	v := te.underwater(t)
	a, err := te.StartAuction(ctx, v.ID, keeper)
	require.NoError(t, err)

	data, err := te.Checkpoint()
	require.NoError(t, err)

	restored := getTestEngine(t)
	require.NoError(t, restored.Load(data))

	got, err := restored.Auction(v.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Start.Unix(), got.Start.Unix())
	assert.Equal(t, "150", got.Ink0.String())
	assert.Equal(t, "100", got.Art0.String())
	assert.Equal(t, 1, len(restored.Auctions()))
}
