package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType enumerates supported vehicle categories
type VehicleType string

const (
	VehicleTypeCar     VehicleType = "CAR"
	VehicleTypeBicycle VehicleType = "BICYCLE"
	VehicleTypeTaxi    VehicleType = "TAXI"
	VehicleTypeCycle   VehicleType = "CYCLE"
)

// VehicleSpecifications holds free-form performance fields shown in listings
type VehicleSpecifications struct {
	MaxPower    string `json:"max_power,omitempty"`
	Fuel        string `json:"fuel,omitempty"`
	MaxSpeed    string `json:"max_speed,omitempty"`
	ZeroToSixty string `json:"zero_to_sixty,omitempty"`
}

// VehicleFeatures holds descriptive fields shown in listings
type VehicleFeatures struct {
	Model    string `json:"model,omitempty"`
	Capacity string `json:"capacity,omitempty"`
	Color    string `json:"color,omitempty"`
	FuelType string `json:"fuel_type,omitempty"`
	GearType string `json:"gear_type,omitempty"`
}

// Vehicle represents a vehicle in a driver's fleet
type Vehicle struct {
	ID             uuid.UUID             `json:"id" db:"id"`
	DriverID       uuid.UUID             `json:"driver_id" db:"driver_id"`
	VehicleType    VehicleType           `json:"vehicle_type" db:"vehicle_type"`
	Model          string                `json:"model" db:"model"`
	LicensePlate   string                `json:"license_plate" db:"license_plate"`
	Image          string                `json:"image,omitempty" db:"image"`
	Documents      []string              `json:"documents,omitempty"`
	IsVerified     bool                  `json:"is_verified" db:"is_verified"`
	Specifications VehicleSpecifications `json:"specifications"`
	Features       VehicleFeatures       `json:"features"`
	CreatedAt      time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at" db:"updated_at"`
}

// RegisterVehicleRequest represents a vehicle registration request
type RegisterVehicleRequest struct {
	VehicleType    VehicleType           `json:"vehicle_type" validate:"required"`
	Model          string                `json:"model" validate:"required"`
	LicensePlate   string                `json:"license_plate" validate:"required"`
	Specifications VehicleSpecifications `json:"specifications,omitempty"`
	Features       VehicleFeatures       `json:"features,omitempty"`
}
