package owner

import "context"

type OwnerRepository interface {
	Create(ctx context.Context, o Owner) (Owner, error)
	GetByID(ctx context.Context, id string) (Owner, error)
	GetByEmail(ctx context.Context, email string) (Owner, error)
}
