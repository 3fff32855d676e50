package usecase

import (
	"strings"

	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/validation"
)

// validationError turns a validator error into a 400 with field-labelled
// messages instead of the raw struct-tag dump.
func validationError(err error) *apperror.AppError {
	messages := validation.FormatValidationErrors(err)
	return apperror.BadRequest("Validation failed: " + strings.Join(messages, "; "))
}
