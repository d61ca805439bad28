package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

func TestVehicleRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  VehicleRequest
		want []string
	}{
		{
			name: "valid",
			req:  VehicleRequest{Name: "Uno", Brand: "Fiat", Year: 2020},
			want: []string{},
		},
		{
			name: "blank name",
			req:  VehicleRequest{Name: "", Brand: "Fiat", Year: 2020},
			want: []string{"O nome não pode ficar em branco."},
		},
		{
			name: "blank brand",
			req:  VehicleRequest{Name: "Uno", Brand: "", Year: 2020},
			want: []string{"A marca não pode ficar em branco."},
		},
		{
			name: "too old",
			req:  VehicleRequest{Name: "Uno", Brand: "Fiat", Year: 1940},
			want: []string{"Veículo muito antigo. Aceitamos apenas veículos com anos superiores a 1950."},
		},
		{
			name: "boundary year accepted",
			req:  VehicleRequest{Name: "Uno", Brand: "Fiat", Year: 1950},
			want: []string{},
		},
		{
			name: "everything wrong",
			req:  VehicleRequest{},
			want: []string{
				"O nome não pode ficar em branco.",
				"A marca não pode ficar em branco.",
				"Veículo muito antigo. Aceitamos apenas veículos com anos superiores a 1950.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Validate())
		})
	}
}

func TestAdminCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  AdminCreateRequest
		want []string
	}{
		{
			name: "valid",
			req:  AdminCreateRequest{Email: "a@b.com", Password: "123456", Profile: "Editor"},
			want: []string{},
		},
		{
			name: "all empty",
			req:  AdminCreateRequest{},
			want: []string{
				"Email não pode ser vazio.",
				"Senha não pode ser vazia.",
				"Perfil não pode ser vazio.",
			},
		},
		{
			name: "unknown profile",
			req:  AdminCreateRequest{Email: "a@b.com", Password: "123456", Profile: "Root"},
			want: []string{"Perfil inválido."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Validate())
		})
	}
}

func TestAdminViewHidesPassword(t *testing.T) {
	view := NewAdminView(domain.Administrator{ID: 1, Email: "a@b.com", Password: "123456", Role: domain.RoleAdmin})
	assert.Equal(t, AdminView{ID: 1, Email: "a@b.com", Profile: "Adm"}, view)
}
