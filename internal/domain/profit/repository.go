package profit

import "context"

type ProfitRepository interface {
	Create(ctx context.Context, record ProfitRecord) (ProfitRecord, error)
	// GetLatestByOwner returns the last-written record, not the latest
	// period. Returns ErrNoProfitData when the owner has no records.
	GetLatestByOwner(ctx context.Context, ownerID string) (ProfitRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]ProfitRecord, error)
}
