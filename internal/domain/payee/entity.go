package payee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type tags a payout target. Workers are bonus-eligible; expenses are
// fixed recurring payees (rent, utilities) that never receive a bonus.
type Type string

const (
	TypeWorker  Type = "worker"
	TypeExpense Type = "expense"
)

// Worker - bonus-eligible payee employed by one owner
type Worker struct {
	ID           string
	OwnerID      string
	Name         string
	Email        string
	PasswordHash string
	BankAccount  string
	IFSCCode     string
	BaseSalary   decimal.Decimal
	CreatedAt    time.Time
}

// FixedPayee - recurring expense recipient with a fixed payout amount
type FixedPayee struct {
	ID          string
	OwnerID     string
	Name        string
	FixedAmount decimal.Decimal
	CreatedAt   time.Time
}
