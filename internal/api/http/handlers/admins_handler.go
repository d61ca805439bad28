package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/vehicle-registry/internal/api/dto"
	"github.com/spec-kit/vehicle-registry/internal/auth"
	"github.com/spec-kit/vehicle-registry/internal/domain"
	"github.com/spec-kit/vehicle-registry/internal/service"
	apperrors "github.com/spec-kit/vehicle-registry/pkg/util"
)

// AdminsHandler exposes login and administrator CRUD endpoints.
type AdminsHandler struct {
	admins *service.AdministratorService
}

// NewAdminsHandler constructs handler.
func NewAdminsHandler(admins *service.AdministratorService) *AdminsHandler {
	return &AdminsHandler{admins: admins}
}

// Login handles POST /admins/login.
func (h *AdminsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}

	identity, token, err := h.admins.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid credentials")
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.LoggedAdminResponse{
		Email:   identity.Email,
		Profile: identity.Role.String(),
		Token:   token,
	})
}

// List handles GET /admins.
func (h *AdminsHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("pagina", 0)

	admins, err := h.admins.List(c.Context(), page)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAdminViews(admins))
}

// Get handles GET /admins/:id.
func (h *AdminsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError([]string{"invalid id"})
	}

	admin, err := h.admins.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("administrator", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAdminView(*admin))
}

// Create handles POST /admins.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if messages := req.Validate(); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	role, err := domain.ParseRole(req.Profile)
	if err != nil {
		return apperrors.NewValidationError([]string{"Perfil inválido."})
	}

	actor, _ := auth.IdentityFromContext(c)
	admin := &domain.Administrator{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
	if err := h.admins.Create(c.Context(), actor, admin); err != nil {
		return apperrors.MapError(err)
	}

	c.Location(fmt.Sprintf("/admins/%d", admin.ID))
	return c.Status(http.StatusCreated).JSON(dto.NewAdminView(*admin))
}
