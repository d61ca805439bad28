package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/vehicle-registry/internal/domain"
	"github.com/spec-kit/vehicle-registry/internal/events"
	"github.com/spec-kit/vehicle-registry/internal/repository"
)

// VehicleService coordinates vehicle CRUD and publishes audit events
// on mutations.
type VehicleService struct {
	vehicles   repository.VehicleRepository
	dispatcher events.Dispatcher
}

// NewVehicleService builds the service.
func NewVehicleService(vehicles repository.VehicleRepository, dispatcher events.Dispatcher) *VehicleService {
	return &VehicleService{vehicles: vehicles, dispatcher: dispatcher}
}

// List returns vehicles matching the filter.
func (s *VehicleService) List(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, filter)
}

// Get returns a single vehicle by id.
func (s *VehicleService) Get(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

// Create persists a new vehicle.
func (s *VehicleService) Create(ctx context.Context, actor domain.Identity, vehicle *domain.Vehicle) error {
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return err
	}
	s.publish(ctx, events.EventVehicleCreated, actor, vehicle)
	return nil
}

// Update rewrites an existing vehicle.
func (s *VehicleService) Update(ctx context.Context, actor domain.Identity, vehicle *domain.Vehicle) error {
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return err
	}
	s.publish(ctx, events.EventVehicleUpdated, actor, vehicle)
	return nil
}

// Delete removes a vehicle by id.
func (s *VehicleService) Delete(ctx context.Context, actor domain.Identity, vehicle *domain.Vehicle) error {
	if err := s.vehicles.Delete(ctx, vehicle.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventVehicleDeleted, actor, vehicle)
	return nil
}

func (s *VehicleService) publish(ctx context.Context, eventType events.EventType, actor domain.Identity, vehicle *domain.Vehicle) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.VehiclePayload{
			ID:    vehicle.ID,
			Name:  vehicle.Name,
			Brand: vehicle.Brand,
			Year:  vehicle.Year,
		},
	})
}
