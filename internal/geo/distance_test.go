package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"store-locator/internal/types"
)

func TestDistanceKm_Identity(t *testing.T) {
	points := []types.Coords{
		types.NewCoords(0, 0),
		types.NewCoords(3.1390, 101.6869),
		types.NewCoords(-33.8688, 151.2093),
		types.NewCoords(90, 0),
		types.NewCoords(-90, 180),
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p), "distance to self must be zero for %+v", p)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b types.Coords
	}{
		{"kl to shah alam", types.NewCoords(3.1390, 101.6869), types.NewCoords(3.0733, 101.5185)},
		{"across equator", types.NewCoords(1.3521, 103.8198), types.NewCoords(-6.2088, 106.8456)},
		{"across date line", types.NewCoords(35.6762, 139.6503), types.NewCoords(37.7749, -122.4194)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DistanceKm(tt.a, tt.b), DistanceKm(tt.b, tt.a))
		})
	}
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// Kuala Lumpur to Singapore is roughly 309 km great-circle.
	kl := types.NewCoords(3.1390, 101.6869)
	sg := types.NewCoords(1.3521, 103.8198)
	d := DistanceKm(kl, sg)
	assert.InDelta(t, 309.3, d, 2)

	// One degree of latitude is about 111.19 km on a 6371 km sphere.
	d = DistanceKm(types.NewCoords(0, 0), types.NewCoords(1, 0))
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestDistanceKm_RoundedToTwoDecimals(t *testing.T) {
	a := types.NewCoords(3.1390, 101.6869)
	b := types.NewCoords(3.0733, 101.5185)

	d := DistanceKm(a, b)
	assert.Equal(t, roundKm(d), d, "distance must carry at most 2 decimal places")
	assert.Greater(t, d, 10.0)
}
