package database

import (
	"errors"

	domainErr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper turns gorm and postgres errors into domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error.
// Errors that already carry a domain meaning are returned unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrUserNotFound
	}

	if m.classifier.IsDuplicateKeyError(err) {
		return domainErr.ErrDuplicateUser
	}

	return domainErr.NewStorageError(operation, "", err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domainErr.ErrStorageUnavailable,
		domainErr.ErrUserNotFound,
		domainErr.ErrDuplicateUser,
		domainErr.ErrValidation,
		domainErr.ErrInsufficientStock,
		domainErr.ErrRateLimited,
		domainErr.ErrUnauthenticated,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
