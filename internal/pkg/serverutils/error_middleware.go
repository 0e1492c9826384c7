package serverutils

import (
	"errors"

	"notesai-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps typed service errors to HTTP statuses:
// NotFound -> 404, CreationFailed -> 400, Validation -> 422, everything
// else from the store -> 500. Callers never need to string-match messages.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperror.ErrValidation):
			status = fiber.StatusUnprocessableEntity
		case errors.Is(err, apperror.ErrCreationFailed):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrStoreFailure):
			status = fiber.StatusInternalServerError
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
