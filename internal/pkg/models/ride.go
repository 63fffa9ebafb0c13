package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "REQUESTED"
	RideStatusAccepted  RideStatus = "ACCEPTED"
	RideStatusStarted   RideStatus = "STARTED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// PaymentStatus represents the settlement state of a ride or payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Ride is a referential record connecting rider, driver, vehicle and
// endpoints. Matching and dispatch are out of scope; ratings reference rides
// by ID only.
type Ride struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	RiderID       uuid.UUID     `json:"rider_id" db:"rider_id"`
	DriverID      uuid.UUID     `json:"driver_id,omitempty" db:"driver_id"`
	VehicleID     uuid.UUID     `json:"vehicle_id,omitempty" db:"vehicle_id"`
	PickupID      uuid.UUID     `json:"pickup_id" db:"pickup_id"`
	DestinationID uuid.UUID     `json:"destination_id" db:"destination_id"`
	Status        RideStatus    `json:"status" db:"status"`
	Fare          float64       `json:"fare,omitempty" db:"fare"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	StartTime     *time.Time    `json:"start_time,omitempty" db:"start_time"`
	EndTime       *time.Time    `json:"end_time,omitempty" db:"end_time"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// PaymentMethod enumerates accepted payment methods
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// Payment is a referential settlement record for a ride
type Payment struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	RideID        uuid.UUID     `json:"ride_id" db:"ride_id"`
	Amount        float64       `json:"amount" db:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	TransactionID string        `json:"transaction_id,omitempty" db:"transaction_id"`
	Status        PaymentStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}
