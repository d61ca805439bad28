package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

// MemoryAdministratorRepository is an in-memory double satisfying
// AdministratorRepository. Services take the interface, so tests swap
// this in for the Postgres implementation.
type MemoryAdministratorRepository struct {
	mu     sync.Mutex
	nextID int
	admins map[int]domain.Administrator
}

// NewMemoryAdministratorRepository builds an empty store.
func NewMemoryAdministratorRepository() *MemoryAdministratorRepository {
	return &MemoryAdministratorRepository{nextID: 1, admins: map[int]domain.Administrator{}}
}

// Seed inserts records directly, assigning ids when absent.
func (r *MemoryAdministratorRepository) Seed(admins ...domain.Administrator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range admins {
		if admin.ID == 0 {
			admin.ID = r.nextID
		}
		if admin.ID >= r.nextID {
			r.nextID = admin.ID + 1
		}
		r.admins[admin.ID] = admin
	}
}

func (r *MemoryAdministratorRepository) GetByCredentials(_ context.Context, email, password string) (*domain.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email && admin.Password == password {
			found := admin
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryAdministratorRepository) GetByID(_ context.Context, id int) (*domain.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := admin
	return &found, nil
}

func (r *MemoryAdministratorRepository) List(_ context.Context, page int) ([]domain.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admins := make([]domain.Administrator, 0, len(r.admins))
	for _, admin := range r.admins {
		admins = append(admins, admin)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].ID < admins[j].ID })
	return paginate(admins, page), nil
}

func (r *MemoryAdministratorRepository) Create(_ context.Context, admin *domain.Administrator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.ID = r.nextID
	r.nextID++
	r.admins[admin.ID] = *admin
	return nil
}

// MemoryVehicleRepository is the in-memory double for vehicles.
type MemoryVehicleRepository struct {
	mu       sync.Mutex
	nextID   int
	vehicles map[int]domain.Vehicle
}

// NewMemoryVehicleRepository builds an empty store.
func NewMemoryVehicleRepository() *MemoryVehicleRepository {
	return &MemoryVehicleRepository{nextID: 1, vehicles: map[int]domain.Vehicle{}}
}

// Seed inserts records directly, assigning ids when absent.
func (r *MemoryVehicleRepository) Seed(vehicles ...domain.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vehicle := range vehicles {
		if vehicle.ID == 0 {
			vehicle.ID = r.nextID
		}
		if vehicle.ID >= r.nextID {
			r.nextID = vehicle.ID + 1
		}
		r.vehicles[vehicle.ID] = vehicle
	}
}

func (r *MemoryVehicleRepository) Create(_ context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle.ID = r.nextID
	r.nextID++
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *MemoryVehicleRepository) Update(_ context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *MemoryVehicleRepository) GetByID(_ context.Context, id int) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := vehicle
	return &found, nil
}

func (r *MemoryVehicleRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.vehicles, id)
	return nil
}

func (r *MemoryVehicleRepository) List(_ context.Context, filter VehicleFilter) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicles := make([]domain.Vehicle, 0, len(r.vehicles))
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	for _, vehicle := range r.vehicles {
		if name != "" && !strings.Contains(strings.ToLower(vehicle.Name), name) {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return paginate(vehicles, filter.Page), nil
}

func paginate[T any](items []T, page int) []T {
	if page <= 0 {
		return items
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

var (
	_ AdministratorRepository = (*MemoryAdministratorRepository)(nil)
	_ VehicleRepository       = (*MemoryVehicleRepository)(nil)
)
