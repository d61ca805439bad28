package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vehicle-registry/internal/api/docs"
	"github.com/spec-kit/vehicle-registry/internal/observability"
	"github.com/spec-kit/vehicle-registry/internal/service"
	apperrors "github.com/spec-kit/vehicle-registry/pkg/util"
)

// SystemHandler serves the welcome page, the API document and
// operational introspection endpoints.
type SystemHandler struct {
	metrics *observability.Metrics
	audit   *service.AuditService
}

// NewSystemHandler constructs handler.
func NewSystemHandler(metrics *observability.Metrics, audit *service.AuditService) *SystemHandler {
	return &SystemHandler{metrics: metrics, audit: audit}
}

// Home handles GET /.
func (h *SystemHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensagem": "Bem vindo a API de veículos - Minimal API",
		"doc":      "/swagger",
	})
}

// Docs handles GET /swagger, serving the embedded OpenAPI document.
func (h *SystemHandler) Docs(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(docs.OpenAPI)
}

// Metrics handles GET /metrics with the in-memory counters.
func (h *SystemHandler) Metrics(c *fiber.Ctx) error {
	requests, errs := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errs,
	})
}

// Audit handles GET /audit, returning the newest audit trail entries.
func (h *SystemHandler) Audit(c *fiber.Ctx) error {
	entries, err := h.audit.Recent(c.Context(), int64(c.QueryInt("limite", 50)))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(entries)
}
