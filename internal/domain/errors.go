package domain

import "errors"

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrPickupNotFound    = errors.New("pickup not found")
	ErrInvalidWasteType  = errors.New("invalid waste type")
	ErrOverflowNotFound  = errors.New("overflow report not found")
	ErrLocationRequired  = errors.New("location is required")
	ErrNoPendingPickups  = errors.New("no pending pickups to route")
	ErrNoActiveRoute     = errors.New("no active route")
)
