package payout

import (
	"time"

	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/shopspring/decimal"
)

// PayoutRecord - one committed payout for one payee in one payout run.
// The payee reference is a tagged variant: PayeeType discriminates between
// the workers and fixed_payees tables so receipt lookups never scan both.
// Append-only; re-running a payout for the same owner writes new rows.
type PayoutRecord struct {
	ID          string
	OwnerID     string
	PayeeID     string
	PayeeType   payee.Type
	PayeeName   string
	BaseAmount  decimal.Decimal
	BonusAmount decimal.Decimal
	FinalAmount decimal.Decimal
	CreatedAt   time.Time
}
