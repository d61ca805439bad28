package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/vehicle-registry/internal/auth"
	"github.com/spec-kit/vehicle-registry/internal/domain"
	"github.com/spec-kit/vehicle-registry/internal/events"
	"github.com/spec-kit/vehicle-registry/internal/repository"
)

// ErrInvalidCredentials is returned for every failed login, whether
// the email is unknown or the password is wrong. Callers must not be
// able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdministratorService coordinates login and administrator CRUD.
type AdministratorService struct {
	admins     repository.AdministratorRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAdministratorService builds the service.
func NewAdministratorService(admins repository.AdministratorRepository, tokens *auth.TokenManager, dispatcher events.Dispatcher) *AdministratorService {
	return &AdministratorService{admins: admins, tokens: tokens, dispatcher: dispatcher}
}

// Login matches email and password against the store and issues a
// token for the matching record's identity.
func (s *AdministratorService) Login(ctx context.Context, email, password string) (domain.Identity, string, error) {
	admin, err := s.admins.GetByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Identity{}, "", ErrInvalidCredentials
		}
		return domain.Identity{}, "", err
	}

	identity := admin.Identity()
	token, _, err := s.tokens.Generate(identity)
	if err != nil {
		return domain.Identity{}, "", err
	}
	return identity, token, nil
}

// List returns a page of administrators.
func (s *AdministratorService) List(ctx context.Context, page int) ([]domain.Administrator, error) {
	return s.admins.List(ctx, page)
}

// Get returns a single administrator by id.
func (s *AdministratorService) Get(ctx context.Context, id int) (*domain.Administrator, error) {
	return s.admins.GetByID(ctx, id)
}

// Create persists a new administrator and publishes an audit event.
func (s *AdministratorService) Create(ctx context.Context, actor domain.Identity, admin *domain.Administrator) error {
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	s.publish(ctx, events.EventAdministratorCreated, actor, events.AdministratorPayload{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
	})
	return nil
}

func (s *AdministratorService) publish(ctx context.Context, eventType events.EventType, actor domain.Identity, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
