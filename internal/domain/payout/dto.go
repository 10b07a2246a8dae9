package payout

import (
	"time"

	"github.com/insightai/split-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayoutRequest struct {
	OwnerID string `json:"owner_id"`
}

func (r *RunPayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerID) {
		errs = append(errs, validator.ValidationError{Field: "owner_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayoutResult - one line of the payout run response
type PayoutResult struct {
	Payee string          `json:"payee"`
	Type  string          `json:"type"`
	Base  decimal.Decimal `json:"base"`
	Bonus decimal.Decimal `json:"bonus"`
	Final decimal.Decimal `json:"final"`
}

type PayoutRecordResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	PayeeID     string          `json:"payee_id"`
	PayeeType   string          `json:"payee_type"`
	PayeeName   string          `json:"payee_name"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	BonusAmount decimal.Decimal `json:"bonus_amount"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
