package dto

import "github.com/spec-kit/vehicle-registry/internal/domain"

// VehicleRequest is the payload for vehicle create and update.
type VehicleRequest struct {
	Name  string `json:"nome"`
	Brand string `json:"marca"`
	Year  int    `json:"ano"`
}

// Validate collects the human-readable messages for every failed rule.
func (r VehicleRequest) Validate() []string {
	messages := []string{}
	if r.Name == "" {
		messages = append(messages, "O nome não pode ficar em branco.")
	}
	if r.Brand == "" {
		messages = append(messages, "A marca não pode ficar em branco.")
	}
	if r.Year < domain.MinVehicleYear {
		messages = append(messages, "Veículo muito antigo. Aceitamos apenas veículos com anos superiores a 1950.")
	}
	return messages
}

// Vehicle applies the request onto a domain record.
func (r VehicleRequest) Vehicle() domain.Vehicle {
	return domain.Vehicle{Name: r.Name, Brand: r.Brand, Year: r.Year}
}

// VehicleView is the public projection of a vehicle.
type VehicleView struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Brand string `json:"marca"`
	Year  int    `json:"ano"`
}

// NewVehicleView projects a domain record.
func NewVehicleView(vehicle domain.Vehicle) VehicleView {
	return VehicleView{ID: vehicle.ID, Name: vehicle.Name, Brand: vehicle.Brand, Year: vehicle.Year}
}

// NewVehicleViews projects a list.
func NewVehicleViews(vehicles []domain.Vehicle) []VehicleView {
	views := make([]VehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		views = append(views, NewVehicleView(vehicle))
	}
	return views
}
