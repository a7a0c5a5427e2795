package location

import (
	"context"
	"time"

	"store-locator/internal/providers/nominatim"
	"store-locator/internal/types"
)

// SensorOptions configures a device-sensor position request.
type SensorOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaxCacheAge  time.Duration
}

// SensorReading is one fix from a device location sensor.
type SensorReading struct {
	Coordinates    types.Coords
	AccuracyMeters float64
}

// SensorProvider is the device location sensor. In production the sensor
// lives on the client; the API layer adapts the client-reported fix (or its
// error code) into this interface per request.
type SensorProvider interface {
	CurrentPosition(ctx context.Context, opts SensorOptions) (*SensorReading, error)
}

// IPLocator infers a coordinate from the caller's network address.
type IPLocator interface {
	Locate(ctx context.Context) (types.Coords, error)
}

// Geocoder resolves a free-text address into ranked coordinate candidates.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]nominatim.Candidate, error)
}

// reportedSensor adapts a client-supplied fix or error code into a
// SensorProvider.
type reportedSensor struct {
	reading *SensorReading
	errCode SensorErrorCode
}

// NewReportedSensor wraps a sensor outcome already observed on the client.
// Exactly one of reading or errCode should be set; with neither, the sensor
// is treated as unsupported.
func NewReportedSensor(reading *SensorReading, errCode SensorErrorCode) SensorProvider {
	return &reportedSensor{
		reading: reading,
		errCode: errCode,
	}
}

func (s *reportedSensor) CurrentPosition(_ context.Context, _ SensorOptions) (*SensorReading, error) {
	if s.reading != nil {
		return s.reading, nil
	}
	code := s.errCode
	if code == "" {
		code = SensorUnsupported
	}
	return nil, &SensorError{Code: code}
}
