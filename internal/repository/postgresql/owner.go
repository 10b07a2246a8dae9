package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/insightai/split-backend-go/internal/domain/owner"
	"github.com/insightai/split-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ownerRepositoryImpl struct {
	db *database.DB
}

func NewOwnerRepository(db *database.DB) owner.OwnerRepository {
	return &ownerRepositoryImpl{db: db}
}

func (r *ownerRepositoryImpl) Create(ctx context.Context, o owner.Owner) (owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO owners (id, name, email, password_hash, bank_account, ifsc_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, name, email, password_hash, bank_account, ifsc_code, created_at
	`

	var created owner.Owner
	err := q.QueryRow(ctx, query,
		o.ID, o.Name, o.Email, o.PasswordHash, o.BankAccount, o.IFSCCode,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.PasswordHash,
		&created.BankAccount, &created.IFSCCode, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "owners_email_key") {
			return owner.Owner{}, owner.ErrEmailExists
		}
		return owner.Owner{}, fmt.Errorf("failed to create owner: %w", err)
	}

	return created, nil
}

func (r *ownerRepositoryImpl) GetByID(ctx context.Context, id string) (owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, bank_account, ifsc_code, created_at
		FROM owners
		WHERE id = $1
	`

	var o owner.Owner
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Email, &o.PasswordHash,
		&o.BankAccount, &o.IFSCCode, &o.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return owner.Owner{}, owner.ErrOwnerNotFound
		}
		return owner.Owner{}, fmt.Errorf("failed to get owner: %w", err)
	}

	return o, nil
}

func (r *ownerRepositoryImpl) GetByEmail(ctx context.Context, email string) (owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, bank_account, ifsc_code, created_at
		FROM owners
		WHERE email = $1
	`

	var o owner.Owner
	err := q.QueryRow(ctx, query, email).Scan(
		&o.ID, &o.Name, &o.Email, &o.PasswordHash,
		&o.BankAccount, &o.IFSCCode, &o.CreatedAt,
	)
	if err != nil {
		// pgx.ErrNoRows is passed through so callers can map it to
		// their own credential errors.
		return owner.Owner{}, err
	}

	return o, nil
}
