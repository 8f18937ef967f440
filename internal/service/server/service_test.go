package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/face-sentinel/internal/config"
)

// TestResolveListenAddress covers override, config, and error paths.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	// Override wins regardless of config.
	addr, err := resolveListenAddress("127.0.0.1:50051", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	// The configured host is preserved, not widened to all interfaces.
	addr, err = resolveListenAddress("127.0.0.1:50051", "")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:50051", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port-here", "")
	require.Error(t, err)
}

// TestDetectionDefaults verifies config values cross into domain settings.
func TestDetectionDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDetection()
	settings := detectionDefaults(&cfg)

	require.Equal(t, config.DefaultEARThreshold, settings.EARThreshold)
	require.Equal(t, config.DefaultMARThreshold, settings.MARThreshold)
	require.Equal(t, 2*time.Second, settings.DrowsyTime)
	require.Equal(t, time.Second, settings.YawnTime)
	require.Equal(t, 3*time.Second, settings.AlertCooldown)
	require.NoError(t, settings.Validate())
}
