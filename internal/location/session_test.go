package location

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"store-locator/internal/types"
)

// scriptedResolver blocks its first Resolve call until the context is
// cancelled; later calls succeed immediately.
type scriptedResolver struct {
	mu           sync.Mutex
	calls        int
	firstStarted chan struct{}
	result       *types.LocationResult
}

func newScriptedResolver(result *types.LocationResult) *scriptedResolver {
	return &scriptedResolver{
		firstStarted: make(chan struct{}),
		result:       result,
	}
}

func (r *scriptedResolver) Resolve(ctx context.Context, _ SensorProvider) (*types.LocationResult, error) {
	r.mu.Lock()
	r.calls++
	n := r.calls
	r.mu.Unlock()

	if n == 1 {
		close(r.firstStarted)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return r.result, nil
}

func (r *scriptedResolver) ResolveManual(ctx context.Context, _ string) (*types.LocationResult, error) {
	return r.result, nil
}

func TestSession_CurrentStartsNil(t *testing.T) {
	s := NewSession(newScriptedResolver(nil))
	if s.Current() != nil {
		t.Fatal("Current() should be nil before any resolution")
	}
}

func TestSession_ResolveStoresResult(t *testing.T) {
	want := &types.LocationResult{
		Coordinates:    types.NewCoords(3.1390, 101.6869),
		AccuracyMeters: types.IPAccuracyMeters,
		Method:         types.MethodIP,
	}
	r := newScriptedResolver(want)
	// Skip the blocking first call
	r.calls = 1

	s := NewSession(r)
	got, err := s.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
	if s.Current() != want {
		t.Errorf("Current() = %+v, want %+v", s.Current(), want)
	}
}

func TestSession_NewResolveSupersedesPending(t *testing.T) {
	want := &types.LocationResult{
		Coordinates: types.NewCoords(3.1579, 101.7123),
		Method:      types.MethodIP,
	}
	r := newScriptedResolver(want)
	s := NewSession(r)

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Resolve(context.Background(), nil)
		firstErr <- err
	}()

	// Wait until the first attempt is actually in flight before superseding.
	select {
	case <-r.firstStarted:
	case <-time.After(5 * time.Second):
		t.Fatal("first attempt never started")
	}

	got, err := s.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("second Resolve() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("second Resolve() = %+v, want %+v", got, want)
	}

	select {
	case err := <-firstErr:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("first Resolve() error = %v, want ErrSuperseded", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first attempt never returned")
	}

	if s.Current() != want {
		t.Errorf("Current() = %+v, want the superseding result", s.Current())
	}
}

// failingResolver always fails the automatic chain.
type failingResolver struct{}

func (failingResolver) Resolve(ctx context.Context, _ SensorProvider) (*types.LocationResult, error) {
	return nil, ErrLocationUnavailable
}

func (failingResolver) ResolveManual(ctx context.Context, _ string) (*types.LocationResult, error) {
	return nil, ErrGeocodingNoResult
}

func TestSession_FailedResolveLeavesCurrentUntouched(t *testing.T) {
	want := &types.LocationResult{Method: types.MethodGPS}
	r := newScriptedResolver(want)
	r.calls = 1

	s := NewSession(r)
	if _, err := s.Resolve(context.Background(), nil); err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	s.resolver = failingResolver{}
	if _, err := s.Resolve(context.Background(), nil); !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("Resolve() error = %v, want ErrLocationUnavailable", err)
	}

	if s.Current() != want {
		t.Error("failed attempt must not replace the current result")
	}
}

func TestSession_ResolveManualStoresResult(t *testing.T) {
	want := &types.LocationResult{
		Coordinates: types.NewCoords(3.1436, 101.6983),
		Method:      types.MethodManual,
	}
	s := NewSession(newScriptedResolver(want))

	got, err := s.ResolveManual(context.Background(), "jalan sultan")
	if err != nil {
		t.Fatalf("ResolveManual() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("ResolveManual() = %+v, want %+v", got, want)
	}
	if s.Current() != want {
		t.Errorf("Current() = %+v, want %+v", s.Current(), want)
	}
}
