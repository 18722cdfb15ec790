package oracles_test

import (
	"testing"

	"github.com/crucible-fi/crucible/core/oracles"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDispatch(t *testing.T) {
	builtin := oracles.NewBuiltin()
	builtin.SetSpot("weth", "dai", num.DecimalFromInt64(2000))
	builtin.SetAccrual("fydai-2703", num.MustDecimalFromString("1.01"))

	svc := oracles.NewService()
	svc.RegisterPriceOracle("builtin", builtin)
	svc.RegisterRateOracle("builtin", builtin)

	rate, err := svc.Spot("builtin", "weth", "dai")
	require.NoError(t, err)
	assert.Equal(t, "2000", rate.String())

	accrual, err := svc.Accrual("builtin", "fydai-2703")
	require.NoError(t, err)
	assert.Equal(t, "1.01", accrual.String())

	_, err = svc.Spot("chainlink", "weth", "dai")
	assert.ErrorIs(t, err, types.ErrOracleNotFound)

	_, err = svc.Accrual("chainlink", "fydai-2703")
	assert.ErrorIs(t, err, types.ErrOracleNotFound)
}

func TestStaleOracleAborts(t *testing.T) {
	builtin := oracles.NewBuiltin()
	builtin.SetSpot("weth", "dai", num.DecimalFromInt64(2000))
	builtin.SetStale(true)

	svc := oracles.NewService()
	svc.RegisterPriceOracle("builtin", builtin)

	_, err := svc.Spot("builtin", "weth", "dai")
	assert.ErrorIs(t, err, types.ErrStaleOracle)

	builtin.SetStale(false)
	_, err = svc.Spot("builtin", "weth", "dai")
	assert.NoError(t, err)
}

func TestUnknownSources(t *testing.T) {
	builtin := oracles.NewBuiltin()
	svc := oracles.NewService()
	svc.RegisterPriceOracle("builtin", builtin)
	svc.RegisterRateOracle("builtin", builtin)

	_, err := svc.Spot("builtin", "weth", "dai")
	assert.Error(t, err)

	_, err = svc.Accrual("builtin", "fydai-2703")
	assert.Error(t, err)
}
