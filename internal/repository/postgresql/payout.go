package postgresql

import (
	"context"
	"fmt"

	"github.com/insightai/split-backend-go/internal/domain/payout"
	"github.com/insightai/split-backend-go/internal/pkg/database"
)

type payoutRepositoryImpl struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepositoryImpl{db: db}
}

func (r *payoutRepositoryImpl) Create(ctx context.Context, record payout.PayoutRecord) (payout.PayoutRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payouts (id, owner_id, payee_id, payee_type, payee_name, base_amount, bonus_amount, final_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, owner_id, payee_id, payee_type, payee_name, base_amount, bonus_amount, final_amount, created_at
	`

	var created payout.PayoutRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.OwnerID, record.PayeeID, record.PayeeType, record.PayeeName,
		record.BaseAmount, record.BonusAmount, record.FinalAmount,
	).Scan(
		&created.ID, &created.OwnerID, &created.PayeeID, &created.PayeeType, &created.PayeeName,
		&created.BaseAmount, &created.BonusAmount, &created.FinalAmount, &created.CreatedAt,
	)
	if err != nil {
		return payout.PayoutRecord{}, fmt.Errorf("failed to create payout record: %w", err)
	}

	return created, nil
}

func (r *payoutRepositoryImpl) ListByPayee(ctx context.Context, payeeID string) ([]payout.PayoutRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, payee_id, payee_type, payee_name, base_amount, bonus_amount, final_amount, created_at
		FROM payouts
		WHERE payee_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, payeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout records: %w", err)
	}
	defer rows.Close()

	var records []payout.PayoutRecord
	for rows.Next() {
		var p payout.PayoutRecord
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.PayeeID, &p.PayeeType, &p.PayeeName,
			&p.BaseAmount, &p.BonusAmount, &p.FinalAmount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payout record: %w", err)
		}
		records = append(records, p)
	}

	return records, nil
}
