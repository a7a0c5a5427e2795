package location

import (
	"context"
	"fmt"
	"log/slog"

	"store-locator/internal/config"
	"store-locator/internal/providers/ipgeo"
	"store-locator/internal/providers/nominatim"
	"store-locator/internal/types"
)

// Service resolves the user's position, trying progressively lower-fidelity
// strategies. Resolve is stateless and idempotent: retries are the caller's
// choice, never automatic.
type Service interface {
	// Resolve runs the automatic chain: device sensor, then IP providers.
	// Exhaustion of both yields ErrLocationUnavailable.
	Resolve(ctx context.Context, sensor SensorProvider) (*types.LocationResult, error)

	// ResolveManual geocodes a free-text address. It is never entered
	// automatically, only by explicit user action.
	ResolveManual(ctx context.Context, address string) (*types.LocationResult, error)
}

// state is a step in the resolution chain. The chain is linear: each state
// either terminates or hands over to the next-lower-fidelity strategy.
type state int

const (
	stateSensorAttempt state = iota
	stateIPAttempt
	stateFailed
)

type resolver struct {
	ipLocator  IPLocator
	geocoder   Geocoder
	sensorOpts SensorOptions
	logger     *slog.Logger
}

// NewResolver creates a resolver backed by the configured IP-geolocation
// providers and geocoder.
func NewResolver(cfg *config.Config, logger *slog.Logger) Service {
	providers := make([]ipgeo.Provider, 0, len(cfg.Resolver.IPProviders))
	for _, p := range cfg.Resolver.IPProviders {
		providers = append(providers, ipgeo.Provider{
			Name:  p.Name,
			URL:   p.URL,
			Shape: ipgeo.Shape(p.Shape),
		})
	}

	return NewResolverWithProviders(
		ipgeo.NewClient(providers, cfg.Resolver.ProviderTimeout, logger),
		nominatim.NewClient(cfg.Resolver.GeocoderBaseURL),
		SensorOptions{
			HighAccuracy: true,
			Timeout:      cfg.Resolver.SensorTimeout,
			MaxCacheAge:  cfg.Resolver.SensorMaxCacheAge,
		},
		logger,
	)
}

// NewResolverWithProviders creates a resolver with custom collaborators.
// This is useful for testing with mock providers.
func NewResolverWithProviders(
	ipLocator IPLocator,
	geocoder Geocoder,
	sensorOpts SensorOptions,
	logger *slog.Logger,
) Service {
	return &resolver{
		ipLocator:  ipLocator,
		geocoder:   geocoder,
		sensorOpts: sensorOpts,
		logger:     logger,
	}
}

// Resolve walks the strategy chain as an explicit state machine. Failures
// inside a state are absorbed into a transition; only the terminal FAILED
// state surfaces an error.
func (r *resolver) Resolve(ctx context.Context, sensor SensorProvider) (*types.LocationResult, error) {
	st := stateSensorAttempt

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch st {
		case stateSensorAttempt:
			result, ok := r.trySensor(ctx, sensor)
			if ok {
				return result, nil
			}
			st = stateIPAttempt

		case stateIPAttempt:
			result, ok := r.tryIP(ctx)
			if ok {
				return result, nil
			}
			st = stateFailed

		case stateFailed:
			return nil, ErrLocationUnavailable
		}
	}
}

// trySensor requests a device fix. Denied, timed-out, unsupported, and
// out-of-range readings all report not-ok so the chain falls through.
func (r *resolver) trySensor(ctx context.Context, sensor SensorProvider) (*types.LocationResult, bool) {
	if sensor == nil {
		r.logger.Debug("no sensor available, falling back to ip lookup")
		return nil, false
	}

	sensorCtx, cancel := context.WithTimeout(ctx, r.sensorOpts.Timeout)
	defer cancel()

	reading, err := sensor.CurrentPosition(sensorCtx, r.sensorOpts)
	if err != nil {
		r.logger.Info("sensor attempt failed, falling back to ip lookup", "error", err)
		return nil, false
	}

	if err := reading.Coordinates.Validate(); err != nil {
		r.logger.Warn("sensor returned out-of-range coordinate", "error", err)
		return nil, false
	}

	return &types.LocationResult{
		Coordinates:    reading.Coordinates,
		AccuracyMeters: reading.AccuracyMeters,
		Method:         types.MethodGPS,
	}, true
}

// tryIP runs the sequential provider chain. The chain already rejects
// out-of-range coordinates per provider, so a success here is final.
func (r *resolver) tryIP(ctx context.Context) (*types.LocationResult, bool) {
	coords, err := r.ipLocator.Locate(ctx)
	if err != nil {
		r.logger.Info("ip lookup failed", "error", err)
		return nil, false
	}

	return &types.LocationResult{
		Coordinates: coords,
		// Fixed band: IP geolocation precision is not measured per provider.
		AccuracyMeters: types.IPAccuracyMeters,
		Method:         types.MethodIP,
	}, true
}

// ResolveManual geocodes the address and uses the top-ranked candidate.
// Accuracy is address-level and unknown, reported as 0.
func (r *resolver) ResolveManual(ctx context.Context, address string) (*types.LocationResult, error) {
	candidates, err := r.geocoder.Search(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	for _, c := range candidates {
		if err := c.Coordinates.Validate(); err != nil {
			r.logger.Warn("geocoder returned out-of-range candidate",
				"display_name", c.DisplayName,
				"error", err,
			)
			continue
		}

		r.logger.Info("address geocoded", "display_name", c.DisplayName)
		return &types.LocationResult{
			Coordinates:    c.Coordinates,
			AccuracyMeters: 0,
			Method:         types.MethodManual,
		}, nil
	}

	return nil, ErrGeocodingNoResult
}
