package serverutils

import (
	"fmt"

	"notesai-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags. Failures are
// surfaced as apperror.ErrValidation so the error middleware answers 422.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err.Error())
	}
	return nil
}
