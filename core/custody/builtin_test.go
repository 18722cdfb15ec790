package custody_test

import (
	"testing"

	"github.com/crucible-fi/crucible/core/custody"
	"github.com/crucible-fi/crucible/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGateway(t *testing.T) {
	gw := custody.NewBuiltin()
	gw.EnableAsset("weth")

	err := gw.Mint("doge", "alice", num.NewUint(1))
	assert.ErrorIs(t, err, custody.ErrUnknownAsset)

	require.NoError(t, gw.Mint("weth", "alice", num.NewUint(100)))

	err = gw.Deposit("weth", "alice", num.NewUint(150))
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)

	require.NoError(t, gw.Deposit("weth", "alice", num.NewUint(60)))
	bal, err := gw.BalanceOf("weth", "alice")
	require.NoError(t, err)
	assert.Equal(t, "40", bal.String())
	held, err := gw.Held("weth")
	require.NoError(t, err)
	assert.Equal(t, "60", held.String())

	err = gw.Withdraw("weth", "bob", num.NewUint(100))
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)

	require.NoError(t, gw.Withdraw("weth", "bob", num.NewUint(25)))
	bal, err = gw.BalanceOf("weth", "bob")
	require.NoError(t, err)
	assert.Equal(t, "25", bal.String())
	held, err = gw.Held("weth")
	require.NoError(t, err)
	assert.Equal(t, "35", held.String())
}

func TestGatewayCheckpointRoundTrip(t *testing.T) {
	gw := custody.NewBuiltin()
	gw.EnableAsset("weth")
	gw.EnableAsset("dai")
	require.NoError(t, gw.Mint("weth", "alice", num.NewUint(100)))
	require.NoError(t, gw.Deposit("weth", "alice", num.NewUint(60)))

	data, err := gw.Checkpoint()
	require.NoError(t, err)

	restored := custody.NewBuiltin()
	require.NoError(t, restored.Load(data))

	bal, err := restored.BalanceOf("weth", "alice")
	require.NoError(t, err)
	assert.Equal(t, "40", bal.String())
	held, err := restored.Held("weth")
	require.NoError(t, err)
	assert.Equal(t, "60", held.String())
	// the asset with no activity survives too
	_, err = restored.Held("dai")
	assert.NoError(t, err)

	data2, err := restored.Checkpoint()
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}
