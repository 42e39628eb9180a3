package model

import "time"

// ParkingSlot is a parking area with a fixed total capacity and a mutable
// available count. available_spaces is only ever mutated through conditional
// updates, so 0 <= available_spaces <= total_spaces always holds.
type ParkingSlot struct {
	ID              int       `json:"id" db:"id"`
	Code            string    `json:"code" db:"code"`
	Name            string    `json:"name" db:"name"`
	Location        string    `json:"location" db:"location"`
	FeePerHour      float64   `json:"fee_per_hour" db:"fee_per_hour"`
	TotalSpaces     int       `json:"total_spaces" db:"total_spaces"`
	AvailableSpaces int       `json:"available_spaces" db:"available_spaces"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsFull reports whether the slot has no spaces left.
func (s *ParkingSlot) IsFull() bool {
	return s.AvailableSpaces <= 0
}

type CreateSlotRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	TotalSpaces int     `json:"total_spaces" binding:"required,min=1"`
	FeePerHour  float64 `json:"fee_per_hour" binding:"required,min=0"`
}

type UpdateSlotParams struct {
	Name        *string
	Location    *string
	FeePerHour  *float64
	TotalSpaces *int
}

// SlotPage is the paginated slot listing payload.
type SlotPage struct {
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Slots []*ParkingSlot `json:"slots"`
}
