package domain

// VehicleType is the vehicle category a service may be restricted to.
type VehicleType string

const (
	VehicleMobil VehicleType = "MOBIL"
	VehicleMotor VehicleType = "MOTOR"
)

// Vehicle is owned by exactly one customer; the plate is unique.
type Vehicle struct {
	ID      int64
	OwnerID int64
	Plate   string
	Type    VehicleType
	Model   *string
}

// Service is a named wash package. Price is copied onto the booking at
// creation time, never joined afterwards.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	VehicleType *VehicleType
}

// Location is a physical wash site.
type Location struct {
	ID        int64
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Phone     string
	PhotoURL  *string
}
