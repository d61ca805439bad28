package domain

// MinVehicleYear is the oldest model year the registry accepts.
const MinVehicleYear = 1950

// Vehicle is the registry's vehicle record.
type Vehicle struct {
	ID    int
	Name  string
	Brand string
	Year  int
}
