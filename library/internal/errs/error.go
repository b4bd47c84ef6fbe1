package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrIneligible           = errors.New("member is not eligible to borrow")
	ErrBookUnavailable      = errors.New("book is not available for loan")
	ErrBookAvailable        = errors.New("book is currently available, no reservation needed")
	ErrDuplicateReservation = errors.New("member already has a reservation for this book")
	ErrAlreadyReturned      = errors.New("book already returned")
	ErrTerminalState        = errors.New("reservation is already in a terminal state")
	ErrHasOtherOverdue      = errors.New("cannot extend loan while having other overdue books")
	ErrHasActiveLoans       = errors.New("entity has active loans")
	ErrHasReservations      = errors.New("entity has pending reservations")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
