package apperrors

import "errors"

var (
	ErrSlotNotFound        = errors.New("parking slot not found")
	ErrSlotCodeTaken       = errors.New("parking slot code already exists")
	ErrNoAvailableSpaces   = errors.New("no available spaces")
	ErrEntryNotFound       = errors.New("car entry not found")
	ErrAlreadyExited       = errors.New("car already exited")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrPlateTaken          = errors.New("plate number already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidOTP          = errors.New("invalid or expired otp")
	ErrTooManyOTPAttempts  = errors.New("too many otp attempts")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
