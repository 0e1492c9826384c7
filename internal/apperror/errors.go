package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds surfaced by the service layer. Controllers map these
// to HTTP statuses in serverutils.ErrorHandlerMiddleware.
var (
	ErrNotFound       = errors.New("not found")
	ErrCreationFailed = errors.New("creation failed")
	ErrValidation     = errors.New("validation failed")
	ErrStoreFailure   = errors.New("store failure")
)

func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

func CreationFailed(entity string, cause error) error {
	return fmt.Errorf("%s: %w: %w", entity, ErrCreationFailed, cause)
}

func StoreFailure(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, cause)
}
