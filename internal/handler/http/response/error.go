package response

import (
	"errors"
	"net/http"

	"github.com/insightai/split-backend-go/internal/domain/auth"
	"github.com/insightai/split-backend-go/internal/domain/owner"
	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/insightai/split-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")

	// Owner domain errors
	case errors.Is(err, owner.ErrOwnerNotFound):
		NotFound(w, "Owner not found")
	case errors.Is(err, owner.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Payee domain errors
	case errors.Is(err, payee.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, payee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Profit domain errors
	case errors.Is(err, profit.ErrNoProfitData):
		BadRequest(w, "No profits found for this owner", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
