package events

import (
	"time"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdministratorCreated EventType = "administrator_created"
	EventVehicleCreated       EventType = "vehicle_created"
	EventVehicleUpdated       EventType = "vehicle_updated"
	EventVehicleDeleted       EventType = "vehicle_deleted"
)

// Event represents a domain event emitted by services after a store
// mutation. Actor is the identity that performed the operation.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Actor     domain.Identity `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   interface{}     `json:"payload"`
}

// AdministratorPayload accompanies administrator events. The password
// never leaves the service layer.
type AdministratorPayload struct {
	ID    int         `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// VehiclePayload accompanies vehicle events.
type VehiclePayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
