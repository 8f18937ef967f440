package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestTemporalState_CloneIsIndependent ensures clones share no pointers.
func TestTemporalState_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	onset := time.Unix(100, 0)
	state := &TemporalState{
		EyesClosedSince:   &onset,
		LastDrowsyAlertAt: time.Unix(90, 0),
	}

	cloned := state.Clone()
	require.Equal(t, state, cloned)
	require.NotSame(t, state.EyesClosedSince, cloned.EyesClosedSince)

	// Mutating the clone must not leak back.
	later := time.Unix(200, 0)
	cloned.EyesClosedSince = &later
	require.Equal(t, onset, *state.EyesClosedSince)

	require.Nil(t, (*TemporalState)(nil).Clone())
}

// TestTemporalState_Durations verifies accumulation reporting from onset.
func TestTemporalState_Durations(t *testing.T) {
	t.Parallel()

	state := NewTemporalState()
	now := time.Unix(10, 0)

	require.Zero(t, state.EyesClosedFor(now))
	require.Zero(t, state.MouthOpenFor(now))

	onset := time.Unix(8, 0)
	state.EyesClosedSince = &onset
	state.MouthOpenSince = &onset
	require.Equal(t, 2*time.Second, state.EyesClosedFor(now))

	state.ClearOnsets()
	require.Zero(t, state.EyesClosedFor(now))
	require.Zero(t, state.MouthOpenFor(now))
}

// TestSettings_Validate rejects invariant violations.
func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	valid := Settings{
		EARThreshold:  0.22,
		MARThreshold:  0.6,
		DrowsyTime:    2 * time.Second,
		YawnTime:      time.Second,
		AlertCooldown: 3 * time.Second,
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.EARThreshold = 0
	require.ErrorIs(t, broken.Validate(), ErrNonPositiveThreshold)

	broken = valid
	broken.AlertCooldown = -time.Second
	require.ErrorIs(t, broken.Validate(), ErrNegativeDuration)
}

// TestSettings_Merge applies only non-zero patch fields.
func TestSettings_Merge(t *testing.T) {
	t.Parallel()

	base := Settings{
		EARThreshold:  0.22,
		MARThreshold:  0.6,
		DrowsyTime:    2 * time.Second,
		YawnTime:      time.Second,
		AlertCooldown: 3 * time.Second,
	}

	merged := base.Merge(Settings{EARThreshold: 0.3, YawnTime: 500 * time.Millisecond})
	require.Equal(t, 0.3, merged.EARThreshold)
	require.Equal(t, 500*time.Millisecond, merged.YawnTime)
	require.Equal(t, base.MARThreshold, merged.MARThreshold)
	require.Equal(t, base.DrowsyTime, merged.DrowsyTime)
	require.Equal(t, base.AlertCooldown, merged.AlertCooldown)
}
