package payee

import (
	"github.com/insightai/split-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddFixedPayeeRequest struct {
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
}

func (r *AddFixedPayeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerID) {
		errs = append(errs, validator.ValidationError{Field: "owner_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsNegativeAmount(r.FixedAmount) {
		errs = append(errs, validator.ValidationError{Field: "fixed_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixedPayeeResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
}
