package geo

import (
	"errors"
	"sort"

	"store-locator/internal/types"
)

var (
	ErrNegativeRadius = errors.New("radius must not be negative")
	ErrNegativeStep   = errors.New("radius step must not be negative")
)

// ExpandResult is the outcome of one radius expansion.
type ExpandResult struct {
	Results []types.MerchantWithDistance
	// HasMore reports whether the expanded radius picked up strictly more
	// merchants than the previous one, i.e. expanding again may be worthwhile.
	HasMore bool
}

// SearchWithinRadius computes the distance from center to every record,
// keeps those within radiusKm (inclusive), and returns them sorted ascending
// by distance. Equal distances retain input order.
//
// A negative radius is a caller bug and is rejected rather than clamped.
func SearchWithinRadius(center types.Coords, records []types.Merchant, radiusKm float64) ([]types.MerchantWithDistance, error) {
	if radiusKm < 0 {
		return nil, ErrNegativeRadius
	}

	results := make([]types.MerchantWithDistance, 0, len(records))
	for _, m := range records {
		d := DistanceKm(center, m.Coordinates)
		if d <= radiusKm {
			results = append(results, types.MerchantWithDistance{
				Merchant:   m,
				DistanceKm: d,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results, nil
}

// ExpandRadius recomputes the search at currentRadiusKm+stepKm. HasMore is
// true when the larger radius yields strictly more results than
// currentRadiusKm alone did.
func ExpandRadius(center types.Coords, records []types.Merchant, currentRadiusKm, stepKm float64) (ExpandResult, error) {
	if currentRadiusKm < 0 {
		return ExpandResult{}, ErrNegativeRadius
	}
	if stepKm < 0 {
		return ExpandResult{}, ErrNegativeStep
	}

	expanded, err := SearchWithinRadius(center, records, currentRadiusKm+stepKm)
	if err != nil {
		return ExpandResult{}, err
	}

	// Results are sorted ascending, so the count inside the old radius is
	// the prefix still within currentRadiusKm.
	within := 0
	for _, r := range expanded {
		if r.DistanceKm > currentRadiusKm {
			break
		}
		within++
	}

	return ExpandResult{
		Results: expanded,
		HasMore: len(expanded) > within,
	}, nil
}
