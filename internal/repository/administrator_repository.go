package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

// PageSize is the number of records returned per page on list
// endpoints.
const PageSize = 10

// AdministratorRepository defines persistence access for administrator
// records. GetByCredentials performs the exact, case-sensitive match
// login relies on; it returns pgx.ErrNoRows for both unknown email and
// wrong password so callers cannot tell the cases apart.
type AdministratorRepository interface {
	GetByCredentials(ctx context.Context, email, password string) (*domain.Administrator, error)
	GetByID(ctx context.Context, id int) (*domain.Administrator, error)
	List(ctx context.Context, page int) ([]domain.Administrator, error)
	Create(ctx context.Context, admin *domain.Administrator) error
}

type administratorRepository struct {
	pool *pgxpool.Pool
}

// NewAdministratorRepository returns a Postgres-backed implementation.
func NewAdministratorRepository(pool *pgxpool.Pool) AdministratorRepository {
	return &administratorRepository{pool: pool}
}

func (r *administratorRepository) GetByCredentials(ctx context.Context, email, password string) (*domain.Administrator, error) {
	const query = `
        SELECT id, email, password, role
        FROM administrators WHERE email=$1 AND password=$2`

	var admin domain.Administrator
	if err := r.pool.QueryRow(ctx, query, email, password).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Password,
		&admin.Role,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administratorRepository) GetByID(ctx context.Context, id int) (*domain.Administrator, error) {
	const query = `
        SELECT id, email, password, role
        FROM administrators WHERE id=$1`

	var admin domain.Administrator
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Password,
		&admin.Role,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administratorRepository) List(ctx context.Context, page int) ([]domain.Administrator, error) {
	query := `SELECT id, email, password, role FROM administrators ORDER BY id`
	args := []any{}
	if page > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, PageSize, (page-1)*PageSize)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []domain.Administrator{}
	for rows.Next() {
		var admin domain.Administrator
		if err := rows.Scan(&admin.ID, &admin.Email, &admin.Password, &admin.Role); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *administratorRepository) Create(ctx context.Context, admin *domain.Administrator) error {
	const query = `
        INSERT INTO administrators (email, password, role)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		admin.Email,
		admin.Password,
		admin.Role,
	).Scan(&admin.ID)
}
