package payee

import "context"

// PayeeRepository covers both payee classes. List methods return rows in
// insertion order; the payout run preserves that order per class.
type PayeeRepository interface {
	CreateWorker(ctx context.Context, w Worker) (Worker, error)
	GetWorkerByEmail(ctx context.Context, email string) (Worker, error)
	ListWorkersByOwner(ctx context.Context, ownerID string) ([]Worker, error)

	CreateFixedPayee(ctx context.Context, p FixedPayee) (FixedPayee, error)
	ListFixedPayeesByOwner(ctx context.Context, ownerID string) ([]FixedPayee, error)
}
