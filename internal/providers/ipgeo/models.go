package ipgeo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"store-locator/internal/types"
)

// Shape names the payload layout a provider responds with. The free lookup
// services agree on nothing: some return {"latitude":..,"longitude":..},
// some {"lat":..,"lon":..}, and some a combined "lat,lon" string field.
type Shape string

const (
	ShapeLatitudeLongitude Shape = "latlong" // {"latitude": .., "longitude": ..}
	ShapeLatLon            Shape = "latlon"  // {"lat": .., "lon": ..}
	ShapeLoc               Shape = "loc"     // {"loc": "lat,lon"}
)

// extractFunc normalizes one payload layout into a Coords.
type extractFunc func(payload map[string]json.RawMessage) (types.Coords, error)

// extractors is the single place a new provider payload layout is added.
var extractors = map[Shape]extractFunc{
	ShapeLatitudeLongitude: extractFields("latitude", "longitude"),
	ShapeLatLon:            extractFields("lat", "lon"),
	ShapeLoc:               extractLoc,
}

// extractFields builds an extractor reading two separately-named numeric
// fields. Providers are sloppy about types, so both JSON numbers and
// numeric strings are accepted.
func extractFields(latKey, lonKey string) extractFunc {
	return func(payload map[string]json.RawMessage) (types.Coords, error) {
		lat, err := numericField(payload, latKey)
		if err != nil {
			return types.Coords{}, err
		}
		lon, err := numericField(payload, lonKey)
		if err != nil {
			return types.Coords{}, err
		}
		return types.NewCoords(lat, lon), nil
	}
}

// extractLoc reads a combined "lat,lon" string field.
func extractLoc(payload map[string]json.RawMessage) (types.Coords, error) {
	raw, ok := payload["loc"]
	if !ok {
		return types.Coords{}, fmt.Errorf("missing field %q", "loc")
	}

	var loc string
	if err := json.Unmarshal(raw, &loc); err != nil {
		return types.Coords{}, fmt.Errorf("field %q is not a string: %w", "loc", err)
	}

	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return types.Coords{}, fmt.Errorf("malformed loc field %q", loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("malformed latitude in loc field %q", loc)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("malformed longitude in loc field %q", loc)
	}

	return types.NewCoords(lat, lon), nil
}

func numericField(payload map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := payload[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("field %q is neither number nor string", key)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
	}
	return f, nil
}
