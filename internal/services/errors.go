package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrRideFull          = errors.New("no seats available")
	ErrRideClosed        = errors.New("carpool is not active")
	ErrOwnRide           = errors.New("cannot join your own carpool")
	ErrAlreadyJoined     = errors.New("already requested this carpool")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrDuplicateFeedback = errors.New("feedback already submitted for this carpool")
	ErrInvalidState      = errors.New("payment is not refundable")
)
