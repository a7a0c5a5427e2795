package types

// LocationMethod identifies which strategy produced a resolved location.
type LocationMethod string

const (
	MethodGPS    LocationMethod = "GPS"
	MethodIP     LocationMethod = "IP"
	MethodManual LocationMethod = "MANUAL"
)

// LocationResult is the outcome of one resolution attempt. Results are
// immutable; a new attempt produces a whole new value.
type LocationResult struct {
	Coordinates    Coords         `json:"coordinates"`
	AccuracyMeters float64        `json:"accuracy_meters"`
	Method         LocationMethod `json:"method"`
}

// IPAccuracyMeters is the assumed uncertainty radius for IP-derived
// locations. IP geolocation is city-level at best, so a single fixed
// band is reported instead of a per-provider measurement.
const IPAccuracyMeters = 50000
