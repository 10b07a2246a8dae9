package payout

import "context"

type PayoutRepository interface {
	// Create commits a single payout row. The payout run calls this once
	// per payee with no surrounding transaction, so rows written before a
	// failure stay committed.
	Create(ctx context.Context, record PayoutRecord) (PayoutRecord, error)
	ListByPayee(ctx context.Context, payeeID string) ([]PayoutRecord, error)
}
