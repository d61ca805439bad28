package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

// VehicleFilter captures list parameters. Page 0 means no pagination;
// Name filters by case-insensitive substring.
type VehicleFilter struct {
	Page int
	Name string
}

// VehicleRepository encapsulates vehicle persistence.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository instantiates repository.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        INSERT INTO vehicles (name, brand, year)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Year,
	).Scan(&vehicle.ID)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        UPDATE vehicles SET name=$1, brand=$2, year=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Year,
		vehicle.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	const query = `
        SELECT id, name, brand, year
        FROM vehicles WHERE id=$1`

	var vehicle domain.Vehicle
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Brand,
		&vehicle.Year,
	); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT id, name, brand, year FROM vehicles`
	args := []any{}

	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, "%"+strings.ToLower(name)+"%")
		query += ` WHERE LOWER(name) LIKE $1`
	}
	query += ` ORDER BY id`

	if filter.Page > 0 {
		args = append(args, PageSize, (filter.Page-1)*PageSize)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, rows.Err()
}
