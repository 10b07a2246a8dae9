package profit

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitRecord - one recorded revenue/expense period. Append-only: profit
// and margin are derived at write time and never mutated afterwards.
// Period is the recording date; multiple records per month are expected.
type ProfitRecord struct {
	ID           string
	OwnerID      string
	Period       time.Time
	Revenue      decimal.Decimal
	Expenses     decimal.Decimal
	Profit       decimal.Decimal
	ProfitMargin decimal.Decimal
	CreatedAt    time.Time
}
