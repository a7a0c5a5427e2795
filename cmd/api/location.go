package main

import (
	"errors"
	"io"
	"net/http"

	"store-locator/internal/location"
	"store-locator/internal/types"

	"github.com/gin-gonic/gin"
)

// SensorReadingInput is a device fix observed on the client.
type SensorReadingInput struct {
	Latitude       float64 `json:"latitude"`        // Latitude in decimal degrees
	Longitude      float64 `json:"longitude"`       // Longitude in decimal degrees
	AccuracyMeters float64 `json:"accuracy_meters"` // Sensor-reported uncertainty radius
}

// ResolveLocationInput carries the client-side sensor outcome, if any.
// With neither field set the sensor is treated as unsupported and the
// resolver goes straight to IP lookup.
type ResolveLocationInput struct {
	Sensor      *SensorReadingInput `json:"sensor,omitempty"`
	SensorError string              `json:"sensor_error,omitempty" example:"PERMISSION_DENIED"` // PERMISSION_DENIED, POSITION_UNAVAILABLE, TIMEOUT
}

// handleResolveLocation godoc
// @Summary Resolve the user's location
// @Description Run the fallback chain: the client-reported device fix first, then IP geolocation providers in order
// @Tags location
// @Accept json
// @Produce json
// @Param input body ResolveLocationInput false "Client sensor outcome"
// @Success 200 {object} types.LocationResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/location/resolve [post]
func (app *App) handleResolveLocation(c *gin.Context) {
	var input ResolveLocationInput
	// An empty body is a valid "no sensor" request
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reading *location.SensorReading
	if input.Sensor != nil {
		reading = &location.SensorReading{
			Coordinates:    types.NewCoords(input.Sensor.Latitude, input.Sensor.Longitude),
			AccuracyMeters: input.Sensor.AccuracyMeters,
		}
	}
	sensor := location.NewReportedSensor(reading, location.SensorErrorCode(input.SensorError))

	result, err := app.session.Resolve(c.Request.Context(), sensor)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrLocationUnavailable):
			// Caller should present manual address entry
			c.JSON(http.StatusNotFound, gin.H{"error": "location unavailable"})
		case errors.Is(err, location.ErrSuperseded):
			c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		default:
			app.logger.Error("failed to resolve location", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GeocodeAddressInput defines the query parameters for manual address entry
type GeocodeAddressInput struct {
	Query string `form:"q" binding:"required"` // Free-text address
}

// handleGeocodeAddress godoc
// @Summary Resolve a manually entered address
// @Description Geocode a free-text address and use the top-ranked candidate as the user's location
// @Tags location
// @Produce json
// @Param q query string true "Free-text address" example("jalan ampang kuala lumpur")
// @Success 200 {object} types.LocationResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/location/geocode [get]
func (app *App) handleGeocodeAddress(c *gin.Context) {
	var input GeocodeAddressInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := app.session.ResolveManual(c.Request.Context(), input.Query)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrGeocodingNoResult):
			// Caller should ask the user to refine the address
			c.JSON(http.StatusNotFound, gin.H{"error": "no results for address"})
		case errors.Is(err, location.ErrSuperseded):
			c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		default:
			app.logger.Error("failed to geocode address", "query", input.Query, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to geocode address"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleCurrentLocation godoc
// @Summary Get the current resolved location
// @Description Return the most recent resolution result for this session, if any
// @Tags location
// @Produce json
// @Success 200 {object} types.LocationResult
// @Failure 404 {object} map[string]string
// @Router /api/v1/location/current [get]
func (app *App) handleCurrentLocation(c *gin.Context) {
	result := app.session.Current()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location resolved yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}
