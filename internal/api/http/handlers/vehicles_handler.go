package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/vehicle-registry/internal/api/dto"
	"github.com/spec-kit/vehicle-registry/internal/auth"
	"github.com/spec-kit/vehicle-registry/internal/repository"
	"github.com/spec-kit/vehicle-registry/internal/service"
	apperrors "github.com/spec-kit/vehicle-registry/pkg/util"
)

// VehiclesHandler exposes vehicle CRUD endpoints.
type VehiclesHandler struct {
	vehicles *service.VehicleService
}

// NewVehiclesHandler constructs handler.
func NewVehiclesHandler(vehicles *service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{vehicles: vehicles}
}

// Create handles POST /vehicles.
func (h *VehiclesHandler) Create(c *fiber.Ctx) error {
	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if messages := req.Validate(); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	actor, _ := auth.IdentityFromContext(c)
	vehicle := req.Vehicle()
	if err := h.vehicles.Create(c.Context(), actor, &vehicle); err != nil {
		return apperrors.MapError(err)
	}

	c.Location(fmt.Sprintf("/vehicles/%d", vehicle.ID))
	return c.Status(http.StatusCreated).JSON(dto.NewVehicleView(vehicle))
}

// List handles GET /vehicles.
func (h *VehiclesHandler) List(c *fiber.Ctx) error {
	filter := repository.VehicleFilter{
		Page: c.QueryInt("pagina", 0),
		Name: c.Query("nome"),
	}

	vehicles, err := h.vehicles.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewVehicleViews(vehicles))
}

// Get handles GET /vehicles/:id.
func (h *VehiclesHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError([]string{"invalid id"})
	}

	vehicle, err := h.vehicles.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewVehicleView(*vehicle))
}

// Update handles PUT /vehicles/:id. The existence check runs before
// body validation, so an unknown id answers 404 even for an invalid
// payload.
func (h *VehiclesHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError([]string{"invalid id"})
	}

	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}

	vehicle, err := h.vehicles.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", nil)
		}
		return apperrors.MapError(err)
	}

	if messages := req.Validate(); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year

	actor, _ := auth.IdentityFromContext(c)
	if err := h.vehicles.Update(c.Context(), actor, vehicle); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewVehicleView(*vehicle))
}

// Delete handles DELETE /vehicles/:id.
func (h *VehiclesHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError([]string{"invalid id"})
	}

	vehicle, err := h.vehicles.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", nil)
		}
		return apperrors.MapError(err)
	}

	actor, _ := auth.IdentityFromContext(c)
	if err := h.vehicles.Delete(c.Context(), actor, vehicle); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
