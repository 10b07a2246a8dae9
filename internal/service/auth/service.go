package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/insightai/split-backend-go/internal/domain/auth"
	"github.com/insightai/split-backend-go/internal/domain/owner"
	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/insightai/split-backend-go/internal/pkg/database"
	"github.com/insightai/split-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db        *database.DB
	ownerRepo owner.OwnerRepository
	payeeRepo payee.PayeeRepository
}

func NewAuthService(db *database.DB, ownerRepo owner.OwnerRepository, payeeRepo payee.PayeeRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:        db,
		ownerRepo: ownerRepo,
		payeeRepo: payeeRepo,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RegisterOwner implements auth.AuthService.
func (a *AuthServiceImpl) RegisterOwner(ctx context.Context, req auth.OwnerSignupRequest) (auth.OwnerAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.OwnerAuthResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.OwnerAuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.ownerRepo.Create(ctx, owner.Owner{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		BankAccount:  req.BankAccount,
		IFSCCode:     req.IFSC,
	})
	if err != nil {
		return auth.OwnerAuthResponse{}, err
	}

	return auth.OwnerAuthResponse{OwnerID: created.ID}, nil
}

// LoginOwner implements auth.AuthService.
func (a *AuthServiceImpl) LoginOwner(ctx context.Context, req auth.LoginRequest) (auth.OwnerAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.OwnerAuthResponse{}, err
	}

	ownerData, err := a.ownerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.OwnerAuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.OwnerAuthResponse{}, fmt.Errorf("failed to get owner by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ownerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.OwnerAuthResponse{}, auth.ErrInvalidCredentials
	}

	return auth.OwnerAuthResponse{OwnerID: ownerData.ID}, nil
}

// RegisterWorker implements auth.AuthService.
func (a *AuthServiceImpl) RegisterWorker(ctx context.Context, req auth.WorkerSignupRequest) (auth.WorkerAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.WorkerAuthResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.WorkerAuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created payee.Worker
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		// The worker must belong to an existing owner.
		if _, err := a.ownerRepo.GetByID(txCtx, req.OwnerID); err != nil {
			return err
		}

		created, err = a.payeeRepo.CreateWorker(txCtx, payee.Worker{
			ID:           uuid.NewString(),
			OwnerID:      req.OwnerID,
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hashed,
			BankAccount:  req.BankAccount,
			IFSCCode:     req.IFSC,
			BaseSalary:   req.BaseSalary,
		})
		return err
	})
	if err != nil {
		return auth.WorkerAuthResponse{}, err
	}

	return auth.WorkerAuthResponse{WorkerID: created.ID}, nil
}

// LoginWorker implements auth.AuthService.
func (a *AuthServiceImpl) LoginWorker(ctx context.Context, req auth.LoginRequest) (auth.WorkerAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.WorkerAuthResponse{}, err
	}

	workerData, err := a.payeeRepo.GetWorkerByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.WorkerAuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.WorkerAuthResponse{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(workerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.WorkerAuthResponse{}, auth.ErrInvalidCredentials
	}

	return auth.WorkerAuthResponse{WorkerID: workerData.ID}, nil
}
