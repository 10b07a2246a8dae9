package owner

import "time"

// Owner - tenant who records financials and triggers payout runs
type Owner struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	BankAccount  string
	IFSCCode     string
	CreatedAt    time.Time
}
