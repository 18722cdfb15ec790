package checkpoint_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/crucible-fi/crucible/core/checkpoint"
	"github.com/crucible-fi/crucible/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComponent struct {
	value string
}

func (f *fakeComponent) Checkpoint() ([]byte, error) {
	return json.Marshal(f.value)
}

func (f *fakeComponent) Load(data []byte) error {
	return json.Unmarshal(data, &f.value)
}

func TestSnapshotRestore(t *testing.T) {
	log := logging.NewTestLogger()
	eng, err := checkpoint.NewInMemory(log, checkpoint.NewDefaultConfig())
	require.NoError(t, err)
	defer eng.Close()

	a := &fakeComponent{value: "ledger state"}
	b := &fakeComponent{value: "auction state"}
	eng.Register("ledger", a)
	eng.Register("liquidation", b)

	require.NoError(t, eng.Snapshot(time.Unix(1700000000, 0)))

	a.value, b.value = "", ""
	require.NoError(t, eng.Restore())
	assert.Equal(t, "ledger state", a.value)
	assert.Equal(t, "auction state", b.value)
}

func TestRestoreFreshStore(t *testing.T) {
	log := logging.NewTestLogger()
	eng, err := checkpoint.NewInMemory(log, checkpoint.NewDefaultConfig())
	require.NoError(t, err)
	defer eng.Close()

	eng.Register("ledger", &fakeComponent{})
	assert.NoError(t, eng.Restore())
}

func TestRestoreUnknownComponent(t *testing.T) {
	log := logging.NewTestLogger()
	eng, err := checkpoint.NewInMemory(log, checkpoint.NewDefaultConfig())
	require.NoError(t, err)
	defer eng.Close()

	eng.Register("ledger", &fakeComponent{value: "x"})
	require.NoError(t, eng.Snapshot(time.Now()))

	restored, err := checkpoint.NewInMemory(log, checkpoint.NewDefaultConfig())
	require.NoError(t, err)
	defer restored.Close()

	// fresh store, nothing registered, restore is a no-op
	assert.NoError(t, restored.Restore())
}

func TestPersistsOnDisk(t *testing.T) {
	log := logging.NewTestLogger()
	dir := t.TempDir()

	eng, err := checkpoint.New(log, checkpoint.NewDefaultConfig(), dir)
	require.NoError(t, err)
	c := &fakeComponent{value: "durable"}
	eng.Register("ledger", c)
	require.NoError(t, eng.Snapshot(time.Now()))
	require.NoError(t, eng.Close())

	eng, err = checkpoint.New(log, checkpoint.NewDefaultConfig(), dir)
	require.NoError(t, err)
	defer eng.Close()
	c2 := &fakeComponent{}
	eng.Register("ledger", c2)
	require.NoError(t, eng.Restore())
	assert.Equal(t, "durable", c2.value)
}
