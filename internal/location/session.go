package location

import (
	"context"
	"sync"
	"sync/atomic"

	"store-locator/internal/types"
)

// Session serializes resolution attempts for one user session. At most one
// attempt is in flight: a new Resolve cancels the pending one rather than
// queueing behind it, so a stale attempt can never overwrite a newer result.
// The current result is replaced atomically as a whole value.
type Session struct {
	resolver Service

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64

	current atomic.Pointer[types.LocationResult]
}

func NewSession(resolver Service) *Session {
	return &Session{resolver: resolver}
}

// Resolve runs the automatic chain, superseding any in-flight attempt.
// A superseded attempt returns ErrSuperseded and leaves no trace in Current.
func (s *Session) Resolve(ctx context.Context, sensor SensorProvider) (*types.LocationResult, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	attemptCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	result, err := s.resolver.Resolve(attemptCtx, sensor)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer cancel()

	if gen != s.gen {
		return nil, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		return nil, err
	}

	s.current.Store(result)
	return result, nil
}

// ResolveManual geocodes an address and, on success, replaces the current
// result. Manual entry does not race the automatic chain: it also supersedes
// any pending attempt.
func (s *Session) ResolveManual(ctx context.Context, address string) (*types.LocationResult, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	result, err := s.resolver.ResolveManual(ctx, address)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return nil, ErrSuperseded
	}

	if err != nil {
		return nil, err
	}

	s.current.Store(result)
	return result, nil
}

// Current returns the most recently resolved location, or nil if none yet.
func (s *Session) Current() *types.LocationResult {
	return s.current.Load()
}
