package auth

import (
	"context"
)

type AuthService interface {
	RegisterOwner(ctx context.Context, req OwnerSignupRequest) (OwnerAuthResponse, error)
	LoginOwner(ctx context.Context, req LoginRequest) (OwnerAuthResponse, error)
	RegisterWorker(ctx context.Context, req WorkerSignupRequest) (WorkerAuthResponse, error)
	LoginWorker(ctx context.Context, req LoginRequest) (WorkerAuthResponse, error)
}
