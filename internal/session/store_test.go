package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndWith(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	token, err := s.Put(newMachine([]int{0}, nil))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = s.With(token, func(m *Machine) error {
		return m.Start("Jean", "jean@example.com")
	})
	require.NoError(t, err)

	err = s.With(token, func(m *Machine) error {
		assert.Equal(t, PhaseInProgress, m.Phase())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_UnknownToken(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	err := s.With("nope", func(*Machine) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_RemoveDropsSession(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	token, err := s.Put(newMachine([]int{0}, nil))
	require.NoError(t, err)

	s.Remove(token)
	assert.ErrorIs(t, s.With(token, func(*Machine) error { return nil }), ErrSessionNotFound)
}

func TestStore_ReapDropsIdleSessions(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	token, err := s.Put(newMachine([]int{0}, nil))
	require.NoError(t, err)

	s.reap(time.Now().Add(2 * time.Minute))
	assert.ErrorIs(t, s.With(token, func(*Machine) error { return nil }), ErrSessionNotFound)
}

func TestStore_StopTimerIsIdempotent(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	token, err := s.Put(newMachine([]int{0}, nil))
	require.NoError(t, err)

	s.StopTimer(token)
	s.StopTimer(token) // second call must not panic
	s.StopTimer("unknown")
}
