package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

func TestMemoryAdministratorCredentialLookup(t *testing.T) {
	repo := NewMemoryAdministratorRepository()
	repo.Seed(domain.Administrator{Email: "adm@teste.com", Password: "123456", Role: domain.RoleAdmin})

	admin, err := repo.GetByCredentials(context.Background(), "adm@teste.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, err = repo.GetByCredentials(context.Background(), "adm@teste.com", "654321")
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = repo.GetByCredentials(context.Background(), "other@teste.com", "123456")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMemoryAdministratorListPagination(t *testing.T) {
	repo := NewMemoryAdministratorRepository()
	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Create(context.Background(), &domain.Administrator{
			Email: "a@b.com", Password: "x", Role: domain.RoleEditor,
		}))
	}

	all, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	page1, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page1, PageSize)

	page2, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2, 2)

	page3, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestMemoryVehicleDeleteUnknown(t *testing.T) {
	repo := NewMemoryVehicleRepository()
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), pgx.ErrNoRows)
}
