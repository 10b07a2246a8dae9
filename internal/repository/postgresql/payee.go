package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/insightai/split-backend-go/internal/pkg/database"
)

type payeeRepositoryImpl struct {
	db *database.DB
}

func NewPayeeRepository(db *database.DB) payee.PayeeRepository {
	return &payeeRepositoryImpl{db: db}
}

// ========== WORKERS ==========

func (r *payeeRepositoryImpl) CreateWorker(ctx context.Context, w payee.Worker) (payee.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, owner_id, name, email, password_hash, bank_account, ifsc_code, base_salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, owner_id, name, email, password_hash, bank_account, ifsc_code, base_salary, created_at
	`

	var created payee.Worker
	err := q.QueryRow(ctx, query,
		w.ID, w.OwnerID, w.Name, w.Email, w.PasswordHash, w.BankAccount, w.IFSCCode, w.BaseSalary,
	).Scan(
		&created.ID, &created.OwnerID, &created.Name, &created.Email, &created.PasswordHash,
		&created.BankAccount, &created.IFSCCode, &created.BaseSalary, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "workers_email_key") {
			return payee.Worker{}, payee.ErrEmailExists
		}
		return payee.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

func (r *payeeRepositoryImpl) GetWorkerByEmail(ctx context.Context, email string) (payee.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, email, password_hash, bank_account, ifsc_code, base_salary, created_at
		FROM workers
		WHERE email = $1
	`

	var w payee.Worker
	err := q.QueryRow(ctx, query, email).Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.Email, &w.PasswordHash,
		&w.BankAccount, &w.IFSCCode, &w.BaseSalary, &w.CreatedAt,
	)
	if err != nil {
		// pgx.ErrNoRows is passed through so callers can map it to
		// their own credential errors.
		return payee.Worker{}, err
	}

	return w, nil
}

func (r *payeeRepositoryImpl) ListWorkersByOwner(ctx context.Context, ownerID string) ([]payee.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, email, password_hash, bank_account, ifsc_code, base_salary, created_at
		FROM workers
		WHERE owner_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []payee.Worker
	for rows.Next() {
		var w payee.Worker
		if err := rows.Scan(
			&w.ID, &w.OwnerID, &w.Name, &w.Email, &w.PasswordHash,
			&w.BankAccount, &w.IFSCCode, &w.BaseSalary, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// ========== FIXED PAYEES ==========

func (r *payeeRepositoryImpl) CreateFixedPayee(ctx context.Context, p payee.FixedPayee) (payee.FixedPayee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fixed_payees (id, owner_id, name, fixed_amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, owner_id, name, fixed_amount, created_at
	`

	var created payee.FixedPayee
	err := q.QueryRow(ctx, query,
		p.ID, p.OwnerID, p.Name, p.FixedAmount,
	).Scan(
		&created.ID, &created.OwnerID, &created.Name, &created.FixedAmount, &created.CreatedAt,
	)
	if err != nil {
		return payee.FixedPayee{}, fmt.Errorf("failed to create fixed payee: %w", err)
	}

	return created, nil
}

func (r *payeeRepositoryImpl) ListFixedPayeesByOwner(ctx context.Context, ownerID string) ([]payee.FixedPayee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, fixed_amount, created_at
		FROM fixed_payees
		WHERE owner_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed payees: %w", err)
	}
	defer rows.Close()

	var payees []payee.FixedPayee
	for rows.Next() {
		var p payee.FixedPayee
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.FixedAmount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fixed payee: %w", err)
		}
		payees = append(payees, p)
	}

	return payees, nil
}
