package auth

import (
	"github.com/insightai/split-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type OwnerSignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	BankAccount string `json:"bank_account"`
	IFSC        string `json:"ifsc"`
}

func (r *OwnerSignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerSignupRequest struct {
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	BankAccount string          `json:"bank_account"`
	IFSC        string          `json:"ifsc"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
}

func (r *WorkerSignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerID) {
		errs = append(errs, validator.ValidationError{Field: "owner_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if validator.IsNegativeAmount(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// No tokens or sessions here: a successful signup or login only hands back
// the principal id.
type OwnerAuthResponse struct {
	OwnerID string `json:"owner_id"`
}

type WorkerAuthResponse struct {
	WorkerID string `json:"worker_id"`
}
