package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/crucible-fi/crucible/config"
	"github.com/crucible-fi/crucible/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.API.Port = 4444
	require.NoError(t, config.Write(home, &cfg))

	got, err := config.Read(home)
	require.NoError(t, err)
	assert.Equal(t, 4444, got.API.Port)
	assert.Equal(t, cfg.Checkpoint.DBPath, got.Checkpoint.DBPath)
}

func TestReadMissingFile(t *testing.T) {
	_, err := config.Read(t.TempDir())
	assert.Error(t, err)
}

func TestWatcherPicksUpChanges(t *testing.T) {
	home := t.TempDir()
	cfg := config.NewDefaultConfig()
	require.NoError(t, config.Write(home, &cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), home)
	require.NoError(t, err)

	updated := make(chan config.Config, 1)
	w.OnConfigUpdate(func(c config.Config) {
		select {
		case updated <- c:
		default:
		}
	})

	cfg.API.Port = 5555
	require.NoError(t, config.Write(home, &cfg))

	select {
	case got := <-updated:
		assert.Equal(t, 5555, got.API.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the configuration reload")
	}
}

func TestBrokenEditKeepsPreviousConfig(t *testing.T) {
	home := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.API.Port = 6666
	require.NoError(t, config.Write(home, &cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), home)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(config.FilePath(home), []byte("not = [valid"), 0o600))
	// give the watcher a moment to process the event
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 6666, w.Get().API.Port)
}
