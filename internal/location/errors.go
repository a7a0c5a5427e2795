package location

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationUnavailable means every automatic strategy was exhausted.
	// The caller should fall back to manual address entry.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrGeocodingNoResult means the geocoder found nothing for the given
	// address. The caller should ask the user to refine it.
	ErrGeocodingNoResult = errors.New("no geocoding result for address")

	// ErrSuperseded means a newer resolution attempt replaced this one
	// before it completed; its result has been discarded.
	ErrSuperseded = errors.New("resolution superseded by a newer attempt")
)

// SensorErrorCode mirrors the error codes a device location sensor reports.
type SensorErrorCode string

const (
	SensorPermissionDenied    SensorErrorCode = "PERMISSION_DENIED"
	SensorPositionUnavailable SensorErrorCode = "POSITION_UNAVAILABLE"
	SensorTimeout             SensorErrorCode = "TIMEOUT"
	SensorUnsupported         SensorErrorCode = "UNSUPPORTED"
)

// SensorError is a sensor failure. It is always recovered locally by falling
// through to the IP strategy, never surfaced on its own.
type SensorError struct {
	Code SensorErrorCode
}

func (e *SensorError) Error() string {
	return fmt.Sprintf("sensor error: %s", e.Code)
}
