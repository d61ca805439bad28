package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vehicle-registry/internal/domain"
	"github.com/spec-kit/vehicle-registry/internal/events"
	"github.com/spec-kit/vehicle-registry/internal/repository"
)

func TestVehicleCRUDPublishesEvents(t *testing.T) {
	repo := repository.NewMemoryVehicleRepository()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewVehicleService(repo, dispatcher)
	actor := domain.Identity{Email: "adm@teste.com", Role: domain.RoleAdmin}

	var seen []events.EventType
	record := func(_ context.Context, event events.Event) error {
		seen = append(seen, event.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventVehicleCreated, record)
	dispatcher.Subscribe(events.EventVehicleUpdated, record)
	dispatcher.Subscribe(events.EventVehicleDeleted, record)

	vehicle := domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 2020}
	require.NoError(t, svc.Create(context.Background(), actor, &vehicle))
	require.NotZero(t, vehicle.ID)

	vehicle.Year = 2021
	require.NoError(t, svc.Update(context.Background(), actor, &vehicle))

	got, err := svc.Get(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 2021, got.Year)

	require.NoError(t, svc.Delete(context.Background(), actor, &vehicle))

	_, err = svc.Get(context.Background(), vehicle.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	assert.Equal(t, []events.EventType{
		events.EventVehicleCreated,
		events.EventVehicleUpdated,
		events.EventVehicleDeleted,
	}, seen)
}

func TestVehicleUpdateUnknownID(t *testing.T) {
	svc := NewVehicleService(repository.NewMemoryVehicleRepository(), events.NewInMemoryDispatcher())

	err := svc.Update(context.Background(), domain.Identity{}, &domain.Vehicle{ID: 99, Name: "Uno", Brand: "Fiat", Year: 2020})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestVehicleListFilterAndPagination(t *testing.T) {
	repo := repository.NewMemoryVehicleRepository()
	svc := NewVehicleService(repo, events.NewInMemoryDispatcher())

	for i := 0; i < 15; i++ {
		repo.Seed(domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 2000 + i})
	}
	repo.Seed(domain.Vehicle{Name: "Gol", Brand: "VW", Year: 2010})

	all, err := svc.List(context.Background(), repository.VehicleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 16)

	page1, err := svc.List(context.Background(), repository.VehicleFilter{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1, 10)

	page2, err := svc.List(context.Background(), repository.VehicleFilter{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 6)

	filtered, err := svc.List(context.Background(), repository.VehicleFilter{Name: "gol"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gol", filtered[0].Name)
}
