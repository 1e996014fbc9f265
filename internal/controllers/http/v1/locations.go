package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
)

// LocationRequest is the create/update body of a saved location.
type LocationRequest struct {
	City      string  `json:"city" validate:"required,cityname" example:"Moscow"`
	Country   string  `json:"country" validate:"required,min=2,max=56" example:"RU"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90" example:"55.7558"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180" example:"37.6173"`
}

func locationIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListLocations godoc
// @Summary List the requester's saved locations
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Location
// @Router /api/locations/ [get]
func (r *routes) handleListLocations(c *fiber.Ctx) error {
	list, err := r.locations.List(c.Context(), currentUserID(c))
	if err != nil {
		r.l.Error(err, map[string]any{"user_id": currentUserID(c)})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to list locations",
		})
	}

	return c.JSON(list)
}

// CreateLocation godoc
// @Summary Save a new location
// @Description Saves a named location for the requester. The first saved location becomes the default. A (city, country) pair can be saved only once per user.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationRequest true "Location to save"
// @Success 201 {object} models.Location
// @Failure 400 {object} ErrorResponse "Validation failed or duplicate location"
// @Router /api/locations/ [post]
func (r *routes) handleCreateLocation(c *fiber.Ctx) error {
	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	created, err := r.locations.Create(c.Context(), models.Location{
		UserID:    currentUserID(c),
		City:      req.City,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if errors.Is(err, repositories.ErrDuplicateLocation) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Location already saved",
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"user_id": currentUserID(c)})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to save location",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetLocation godoc
// @Summary Get one saved location
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/ [get]
func (r *routes) handleGetLocation(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	loc, err := r.locations.Get(c.Context(), currentUserID(c), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to load location",
		})
	}

	return c.JSON(loc)
}

// UpdateLocation godoc
// @Summary Update a saved location
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param location body LocationRequest true "New location fields"
// @Success 200 {object} models.Location
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/ [put]
func (r *routes) handleUpdateLocation(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	updated, err := r.locations.Update(c.Context(), models.Location{
		ID:        id,
		UserID:    currentUserID(c),
		City:      req.City,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if errors.Is(err, repositories.ErrDuplicateLocation) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Location already saved",
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to update location",
		})
	}

	return c.JSON(updated)
}

// DeleteLocation godoc
// @Summary Delete a saved location
// @Tags Locations
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/ [delete]
func (r *routes) handleDeleteLocation(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	err = r.locations.Delete(c.Context(), currentUserID(c), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to delete location",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SetDefaultLocation godoc
// @Summary Mark a location as the default
// @Description Clears the default flag on every other location of the requester and sets it on the target, atomically.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/set_default/ [post]
func (r *routes) handleSetDefault(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	userID := currentUserID(c)
	err = r.locations.SetDefault(c.Context(), userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to set default location",
		})
	}

	loc, err := r.locations.Get(c.Context(), userID, id)
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to load location",
		})
	}

	return c.JSON(loc)
}

// GetLocationHistory godoc
// @Summary List stored weather readings of a location
// @Description Readings are listed newest first.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {array} models.WeatherReading
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/history/ [get]
func (r *routes) handleLocationHistory(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	history, err := r.locations.History(c.Context(), currentUserID(c), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to load history",
		})
	}

	return c.JSON(history)
}

// GetLocationWeather godoc
// @Summary Fetch current weather at a saved location
// @Description Fetches current conditions at the location's coordinates and appends the result to its reading history.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} models.CurrentWeather
// @Failure 400 {object} ErrorResponse "Provider lookup failed"
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Router /api/locations/{id}/weather/ [get]
func (r *routes) handleLocationWeather(c *fiber.Ctx) error {
	id, err := locationIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid location id"})
	}

	current, err := r.locations.WeatherFor(c.Context(), currentUserID(c), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Location not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(current)
}
