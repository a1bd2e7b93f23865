package usecase

import (
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// DomainError is a business-rule failure the caller can act on. It maps to a
// 400-class response at the HTTP boundary.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure. The boundary logs it and
// returns a generic message, never the internal detail.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// persistenceFailed wraps a store failure as a TechnicalError. Not-found
// sentinels pass through untouched so the boundary still maps them to 404.
func persistenceFailed(op string, err error) error {
	if errors.Is(err, entity.ErrLeadNotFound) || errors.Is(err, entity.ErrConversationNotFound) {
		return err
	}
	return &TechnicalError{
		Code:    "DATABASE_ERROR",
		Message: "failed to " + op + ": " + err.Error(),
	}
}
