package model

import "time"

// Vehicle belongs to the user who registered it; the owner's email is where
// parking receipts for the plate are sent.
type Vehicle struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	Brand       string    `json:"brand" db:"brand"`
	Model       string    `json:"model" db:"model"`
	Color       *string   `json:"color,omitempty" db:"color"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateVehicleRequest struct {
	PlateNumber string  `json:"plate_number" binding:"required"`
	Brand       string  `json:"brand" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Color       *string `json:"color"`
}

type UpdateVehicleParams struct {
	PlateNumber *string
	Brand       *string
	Model       *string
	Color       *string
}

type VehiclePage struct {
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
	Vehicles []*Vehicle `json:"vehicles"`
}
