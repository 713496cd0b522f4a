package session

import (
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("session not found")

const tokenLength = 21

// Store holds in-flight session machines keyed by an opaque token. Each
// entry carries its own mutex, so sessions of different candidates never
// contend; within one session every operation (including the countdown tick)
// is serialized, which is what makes the single-use submit guard airtight.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	done     chan struct{}
}

type entry struct {
	mu       sync.Mutex
	machine  *Machine
	stop     chan struct{}
	stopOnce sync.Once
	lastSeen time.Time
}

// stopTimer is idempotent so both the tick loop and a manual submit can
// release the countdown without racing.
func (e *entry) stopTimer() {
	e.stopOnce.Do(func() { close(e.stop) })
}

// NewStore creates a store whose abandoned sessions are reaped after ttl of
// inactivity. Abandonment persists nothing: closing the browser mid-session
// never produces a partial submission.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.reapLoop()
	return s
}

// Put registers a machine and returns its session token.
func (s *Store) Put(m *Machine) (string, error) {
	token, err := gonanoid.New(tokenLength)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = &entry{
		machine:  m,
		stop:     make(chan struct{}),
		lastSeen: time.Now(),
	}
	s.mu.Unlock()
	return token, nil
}

// With runs fn against the session's machine while holding its lock.
func (s *Store) With(token string, fn func(*Machine) error) error {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = time.Now()
	return fn(e.machine)
}

// StartTimer launches the one-second countdown for a timed session. When the
// budget reaches zero while still in progress, onExpire is invoked exactly
// once, under the session's lock. The loop stops as soon as the session
// leaves in_progress for any reason.
func (s *Store) StartTimer(token string, onExpire func(token string, m *Machine)) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-e.stop:
				return
			case <-s.done:
				return
			case <-ticker.C:
				e.mu.Lock()
				if e.machine.Phase() != PhaseInProgress {
					e.mu.Unlock()
					e.stopTimer()
					return
				}
				expired := e.machine.Tick()
				if expired {
					log.Info().Str("session", token).Msg("Time budget exhausted, forcing submit")
					onExpire(token, e.machine)
				}
				e.mu.Unlock()
				if expired {
					e.stopTimer()
					return
				}
			}
		}
	}()
}

// StopTimer cancels the countdown, if any. Called when the session leaves
// in_progress so a stale tick can never fire a duplicate auto-submit.
func (s *Store) StopTimer(token string) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if ok {
		e.stopTimer()
	}
}

// Remove drops a session and cancels its timer.
func (s *Store) Remove(token string) {
	s.mu.Lock()
	e, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	if ok {
		e.stopTimer()
	}
}

// Close stops the reaper and all timers.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) reapLoop() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.reap(time.Now())
		}
	}
}

func (s *Store) reap(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			e.stopTimer()
			delete(s.sessions, token)
			log.Debug().Str("session", token).Msg("Reaped idle session")
		}
	}
}
