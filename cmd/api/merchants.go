package main

import (
	"errors"
	"net/http"

	"store-locator/internal/geo"
	"store-locator/internal/types"

	"github.com/gin-gonic/gin"
)

// ListMerchantsInput defines the optional filters for the merchant list
type ListMerchantsInput struct {
	State string `form:"state"` // Exact state match, case-insensitive
	Query string `form:"q"`     // Substring over trading name, city, postal code
}

// MerchantListResponse wraps a filtered merchant list
type MerchantListResponse struct {
	Merchants []types.Merchant `json:"merchants"`
	Count     int              `json:"count"`
}

// handleListMerchants godoc
// @Summary List merchants
// @Description List the merchant dataset, optionally filtered by state and free-text query
// @Tags merchants
// @Produce json
// @Param state query string false "State filter" example("Selangor")
// @Param q query string false "Search text" example("coffee")
// @Success 200 {object} MerchantListResponse
// @Router /api/v1/merchants [get]
func (app *App) handleListMerchants(c *gin.Context) {
	var input ListMerchantsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := app.store.Filter(input.State, input.Query)
	c.JSON(http.StatusOK, MerchantListResponse{
		Merchants: results,
		Count:     len(results),
	})
}

// handleGetMerchant godoc
// @Summary Get one merchant
// @Tags merchants
// @Produce json
// @Param id path string true "Merchant id"
// @Success 200 {object} types.Merchant
// @Failure 404 {object} map[string]string
// @Router /api/v1/merchants/{id} [get]
func (app *App) handleGetMerchant(c *gin.Context) {
	m, ok := app.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// StatesResponse lists the distinct states in the dataset
type StatesResponse struct {
	States []string `json:"states"`
}

// handleListStates godoc
// @Summary List merchant states
// @Description Distinct states present in the dataset, for the state filter
// @Tags merchants
// @Produce json
// @Success 200 {object} StatesResponse
// @Router /api/v1/merchants/states [get]
func (app *App) handleListStates(c *gin.Context) {
	c.JSON(http.StatusOK, StatesResponse{States: app.store.States()})
}

// NearbyMerchantsInput defines the query parameters for proximity search
type NearbyMerchantsInput struct {
	// Pointers so a legitimate 0 coordinate still satisfies "required"
	Latitude  *float64 `form:"latitude" binding:"required"`  // Center latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Center longitude in decimal degrees
	RadiusKm  *float64 `form:"radius_km"`                    // Search radius; defaults from config
	StepKm    *float64 `form:"step_km"`                      // If set, expand radius_km by this step ("load more")
}

// NearbyMerchantsResponse is a distance-sorted result set
type NearbyMerchantsResponse struct {
	Merchants []types.MerchantWithDistance `json:"merchants"`
	Count     int                          `json:"count"`
	RadiusKm  float64                      `json:"radius_km"`
	HasMore   *bool                        `json:"has_more,omitempty"` // Only present for expansion requests
}

// handleNearbyMerchants godoc
// @Summary Find merchants near a coordinate
// @Description Haversine distance to every merchant, filtered by radius (inclusive) and sorted ascending. Pass step_km to expand a previous radius and learn whether further expansion is worthwhile.
// @Tags merchants
// @Produce json
// @Param latitude query number true "Center latitude" minimum(-90) maximum(90) example(3.1390)
// @Param longitude query number true "Center longitude" minimum(-180) maximum(180) example(101.6869)
// @Param radius_km query number false "Search radius in km" example(10)
// @Param step_km query number false "Expansion step in km"
// @Success 200 {object} NearbyMerchantsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/merchants/nearby [get]
func (app *App) handleNearbyMerchants(c *gin.Context) {
	var input NearbyMerchantsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center := types.NewCoords(*input.Latitude, *input.Longitude)
	if err := center.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	radius := app.cfg.Search.DefaultRadiusKm
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}

	records := app.store.All()

	if input.StepKm != nil {
		expanded, err := geo.ExpandRadius(center, records, radius, *input.StepKm)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, NearbyMerchantsResponse{
			Merchants: expanded.Results,
			Count:     len(expanded.Results),
			RadiusKm:  radius + *input.StepKm,
			HasMore:   &expanded.HasMore,
		})
		return
	}

	results, err := geo.SearchWithinRadius(center, records, radius)
	if err != nil {
		if errors.Is(err, geo.ErrNegativeRadius) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("proximity search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, NearbyMerchantsResponse{
		Merchants: results,
		Count:     len(results),
		RadiusKm:  radius,
	})
}
