package pilot

import (
	"errors"
	"fmt"
)

var (
	ErrUserIDRequired     = errors.New("user ID is required")
	ErrOrgIDRequired      = errors.New("org ID is required")
	ErrInvalidCheckin     = errors.New("invalid emotional check-in")
	ErrFutureDate         = errors.New("date is after the current day")
	ErrPersistenceFailure = errors.New("could not persist daily recommendation")
	ErrCheckinPersistence = errors.New("could not persist emotional check-in")
	ErrFetchHistory       = errors.New("error fetching recommendation history")
)

// PilotError carrega contexto adicional para a camada HTTP
type PilotError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *PilotError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PilotError) Unwrap() error {
	return e.Err
}

func NewPilotError(err error, code string, userID string, details string) *PilotError {
	return &PilotError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
