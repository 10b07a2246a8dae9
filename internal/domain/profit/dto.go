package profit

import (
	"github.com/insightai/split-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RecordProfitRequest - revenue and expenses default to zero when absent.
// Negative figures are accepted as-is.
type RecordProfitRequest struct {
	OwnerID  string          `json:"owner_id"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

func (r *RecordProfitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerID) {
		errs = append(errs, validator.ValidationError{Field: "owner_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordProfitResponse struct {
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// MonthlyProfit - one aggregated row of the owner's profit chart feed
type MonthlyProfit struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}
