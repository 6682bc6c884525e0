package collision

import (
	"testing"

	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("user.name", 0x1234567890abcdef))
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())

	require.NoError(t, tracker.Track("user.age", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"user.name", "user.age"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrInvalidFieldName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("user.name", 0x1234567890abcdef))
	require.False(t, tracker.HasCollision())

	require.NoError(t, tracker.Track("user.handle", 0x1234567890abcdef))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("user.name", 0x1234567890abcdef))

	err := tracker.Track("user.name", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrFieldAlreadyTracked)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Names_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	names := []string{"a", "b", "c", "d"}
	for i, name := range names {
		require.NoError(t, tracker.Track(name, uint64(i)))
	}

	require.Equal(t, names, tracker.Names())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.Track("user.name", 0x1234567890abcdef)
	_ = tracker.Track("user.age", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())

	require.NoError(t, tracker.Track("user.email", 0x1111111111111111))
	require.Equal(t, 1, tracker.Count())
}
